// Package attr holds the closed road-type enumeration and the reference
// speeds used to derive edge costs from geodesic distance.
package attr

import (
	"errors"
	"strings"
)

// ErrUnknownRoadType is returned when a road type outside the closed
// enumeration is requested, e.g. an OSM highway tag with no match.
var ErrUnknownRoadType = errors.New("attr: unknown road type")

// RoadType is a closed classification of road segments.
type RoadType int8

const (
	MOTORWAY RoadType = iota + 1
	TRUNK
	PRIMARY
	SECONDARY
	TERTIARY
	MOTORWAY_LINK
	TRUNK_LINK
	PRIMARY_LINK
	SECONDARY_LINK
	ROAD
	UNCLASSIFIED
	RESIDENTIAL
	UNSURFACED
	LIVING_STREET
	SERVICE
)

// speedKmh holds the reference speed, in km/h, for every road type.
var speedKmh = map[RoadType]float32{
	MOTORWAY:       110,
	TRUNK:          110,
	PRIMARY:        70,
	SECONDARY:      60,
	TERTIARY:       50,
	MOTORWAY_LINK:  50,
	TRUNK_LINK:     50,
	PRIMARY_LINK:   50,
	SECONDARY_LINK: 50,
	ROAD:           40,
	UNCLASSIFIED:   40,
	RESIDENTIAL:    30,
	UNSURFACED:     30,
	LIVING_STREET:  10,
	SERVICE:        5,
}

var nameToType = map[string]RoadType{
	"motorway":       MOTORWAY,
	"trunk":          TRUNK,
	"primary":        PRIMARY,
	"secondary":      SECONDARY,
	"tertiary":       TERTIARY,
	"motorway_link":  MOTORWAY_LINK,
	"trunk_link":     TRUNK_LINK,
	"primary_link":   PRIMARY_LINK,
	"secondary_link": SECONDARY_LINK,
	"road":           ROAD,
	"unclassified":   UNCLASSIFIED,
	"residential":    RESIDENTIAL,
	"unsurfaced":     UNSURFACED,
	"living_street":  LIVING_STREET,
	"service":        SERVICE,
}

// String returns the canonical lower-case name of the road type, or "" if
// the type is not part of the enumeration.
func (t RoadType) String() string {
	for name, typ := range nameToType {
		if typ == t {
			return name
		}
	}
	return ""
}

// AverageSpeedKmh returns the reference speed, in km/h, for the road type.
func AverageSpeedKmh(t RoadType) (float32, error) {
	speed, ok := speedKmh[t]
	if !ok {
		return 0, ErrUnknownRoadType
	}
	return speed, nil
}

// FastestRoadType returns the road type with the fastest reference speed.
func FastestRoadType() RoadType {
	return MOTORWAY
}

// FromOSM maps an OSM `highway` tag value to a road type by case-insensitive
// name match against the enumeration.
func FromOSM(highway string) (RoadType, error) {
	typ, ok := nameToType[strings.ToLower(highway)]
	if !ok {
		return 0, ErrUnknownRoadType
	}
	return typ, nil
}
