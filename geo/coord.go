// Package geo provides the coordinate and distance primitives shared by the
// road graph and the region partitioner.
package geo

import "math"

// earthRadiusMean is the mean radius of planet earth in meters, used as a
// fast approximation for short-range distance computation.
const earthRadiusMean = 6_371_000

const halfCircleDeg = 180

// msToKmh and its inverse convert between speed units used by road types.
const msToKmh = 3.6

// Coord is a geographic position in degrees. Single precision is sufficient
// for road-network node storage.
type Coord struct {
	Lat float32
	Lon float32
}

// DegToRad converts a value in degree to radians.
func DegToRad(deg float64) float64 {
	return deg * math.Pi / halfCircleDeg
}

// RadToDeg converts a value in radians to degree.
func RadToDeg(rad float64) float64 {
	return rad * halfCircleDeg / math.Pi
}

// DistanceEquiRect computes the distance between two positions using an
// equirectangular approximation of the earth. Intermediate trigonometry is
// computed in double precision and the result is rounded to single precision
// at the boundary, so that scenario expected values stay reproducible.
func DistanceEquiRect(firstLatDeg, firstLonDeg, secondLatDeg, secondLonDeg float32) float32 {
	firstLatRad := DegToRad(float64(firstLatDeg))
	firstLonRad := DegToRad(float64(firstLonDeg))
	secondLatRad := DegToRad(float64(secondLatDeg))
	secondLonRad := DegToRad(float64(secondLonDeg))

	x := (secondLonRad - firstLonRad) * math.Cos((firstLatRad+secondLatRad)/2)
	y := secondLatRad - firstLatRad
	distance := math.Sqrt(x*x+y*y) * earthRadiusMean

	return float32(distance)
}

// Distance computes the equirectangular distance between two coordinates.
func Distance(a, b Coord) float32 {
	return DistanceEquiRect(a.Lat, a.Lon, b.Lat, b.Lon)
}

// KmhToMs converts a speed given in kilometer per hour to meter per second.
func KmhToMs(kmh float32) float32 {
	return kmh / msToKmh
}

// TravelTime returns the time needed to travel distance meters at speed kmh.
func TravelTime(distance, speedKmh float32) float32 {
	return distance / KmhToMs(speedKmh)
}
