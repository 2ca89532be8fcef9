package main

// ErrorResponse is the JSON body written back for any failed request.
type ErrorResponse struct {
	Request string `json:"request"`
	Error   any    `json:"error"`
}

// NewErrorResponse builds an ErrorResponse for the given request path.
func NewErrorResponse(request string, err any) ErrorResponse {
	return ErrorResponse{Request: request, Error: err}
}

// RouteRequest is the query bound from a GET /route request's parameters.
type RouteRequest struct {
	SourceLat      float64 `json:"source_lat"`
	SourceLon      float64 `json:"source_lon"`
	DestinationLat float64 `json:"destination_lat"`
	DestinationLon float64 `json:"destination_lon"`
}

// RouteResponse describes one computed route.
type RouteResponse struct {
	CostSeconds float64   `json:"cost_seconds"`
	Lats        []float32 `json:"lats"`
	Lons        []float32 `json:"lons"`
}
