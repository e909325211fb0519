package route

// Coordinate is a WGS-84 point in decimal degrees. Immutable once produced.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Maneuver describes the turn instruction attached to a step.
// Location is [lng, lat], the order the routing provider uses.
type Maneuver struct {
	Type     string    `json:"type"`
	Modifier string    `json:"modifier"`
	Location []float64 `json:"location"`
}

// Step is a single maneuver segment of a route leg. Distance is in meters,
// duration in seconds. Name and Ref identify the road being traveled.
type Step struct {
	Distance float64  `json:"distance"`
	Duration float64  `json:"duration"`
	Name     string   `json:"name"`
	Ref      string   `json:"ref"`
	Maneuver Maneuver `json:"maneuver"`
}

// Leg is an ordered sequence of steps between two waypoints.
type Leg struct {
	Steps []Step `json:"steps"`
}

// Geometry is the route shape as a GeoJSON LineString,
// coordinates ordered [lng, lat].
type Geometry struct {
	Type        string      `json:"type"`
	Coordinates [][]float64 `json:"coordinates"`
}

// Candidate is one raw alternative route as returned by the routing
// provider, typed once at the provider boundary. Distance is in meters,
// Duration in seconds. Source of truth for all derived safety metrics.
type Candidate struct {
	Distance float64
	Duration float64
	Legs     []Leg
	Geometry Geometry
}

// Steps flattens all steps from all legs in order.
func (c Candidate) Steps() []Step {
	var steps []Step
	for _, leg := range c.Legs {
		steps = append(steps, leg.Steps...)
	}
	return steps
}
