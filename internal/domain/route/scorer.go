package route

import "math"

const (
	baseScore  = 100
	scoreFloor = 10
)

// Penalties is the named breakdown of non-positive adjustments applied to
// the base score.
type Penalties struct {
	RoadType    int `json:"road_type"`
	TurnDensity int `json:"turn_density"`
	Isolation   int `json:"isolation"`
	Duration    int `json:"duration"`
	Traffic     int `json:"traffic"`
}

// Sum returns the total adjustment.
func (p Penalties) Sum() int {
	return p.RoadType + p.TurnDensity + p.Isolation + p.Duration + p.Traffic
}

// Assessment is the immutable result of one route's safety analysis.
// Metrics are rounded for presentation; the penalty thresholds were applied
// to the unrounded values.
type Assessment struct {
	Score             float64
	HighwayRatio      float64
	TurnDensity       float64
	LongestIsolatedKm float64
	Traffic           TrafficLevel
	Quality           RoadQuality
	DominantRoad      string
	Penalties         Penalties
	DistanceKm        float64
	DurationHours     float64
}

// Score runs the deterministic weighted penalty model over one candidate.
//
// Components and weight intent:
//
//	A. highway ratio   30%
//	B. turn density    20%
//	C. isolation risk  20%
//	D. duration risk   10%
//	E. traffic         10%
//
// Night mode multiplies the isolation penalty by 1.5 and a negative
// road-type penalty by 1.3, both truncated toward zero. The final score is
// (100 + penalties) floored at 10, normalized to a 1.0-10.0 scale.
func Score(c Candidate, mode Mode) Assessment {
	f := ExtractFeatures(c)

	var p Penalties

	// A. Highway ratio
	switch {
	case f.HighwayRatio > 0.7:
		p.RoadType = 0
	case f.HighwayRatio >= 0.4:
		p.RoadType = -5
	default:
		p.RoadType = -10
	}

	// B. Turn density
	switch {
	case f.TurnDensity < 1:
		p.TurnDensity = 0
	case f.TurnDensity <= 2:
		p.TurnDensity = -5
	default:
		p.TurnDensity = -10
	}

	// C. Isolation risk
	switch {
	case f.LongestIsolatedKm > 50:
		p.Isolation = -15
	case f.LongestIsolatedKm > 20:
		p.Isolation = -7
	}
	if mode == ModeNight {
		p.Isolation = int(float64(p.Isolation) * 1.5)
	}

	// D. Duration risk
	switch {
	case f.DurationHours > 8:
		p.Duration = -10
	case f.DurationHours > 6:
		p.Duration = -5
	}

	// E. Traffic modifier
	switch f.Traffic {
	case TrafficHigh:
		p.Traffic = -10
	case TrafficModerate:
		p.Traffic = -5
	}

	// Night rural multiplier on an already-penalized road type.
	if mode == ModeNight && p.RoadType < 0 {
		p.RoadType = int(float64(p.RoadType) * 1.3)
	}

	raw := baseScore + p.Sum()
	clamped := raw
	if clamped < scoreFloor {
		clamped = scoreFloor
	}

	return Assessment{
		Score:             roundTo(float64(clamped)/10.0, 1),
		HighwayRatio:      roundTo(f.HighwayRatio, 3),
		TurnDensity:       roundTo(f.TurnDensity, 2),
		LongestIsolatedKm: roundTo(f.LongestIsolatedKm, 1),
		Traffic:           f.Traffic,
		Quality:           f.Quality,
		DominantRoad:      f.DominantRoad,
		Penalties:         p,
		DistanceKm:        roundTo(f.DistanceKm, 1),
		DurationHours:     roundTo(f.DurationHours, 2),
	}
}

// roundTo rounds v to the given number of decimal places.
func roundTo(v float64, places int) float64 {
	factor := math.Pow(10, float64(places))
	return math.Round(v*factor) / factor
}
