package route

import "strings"

// Features holds the scoring-relevant metrics derived from one candidate.
// All values are unrounded; presentation rounding happens in the scorer.
type Features struct {
	DistanceKm        float64
	DurationHours     float64
	HighwayRatio      float64
	TurnDensity       float64
	LongestIsolatedKm float64
	Traffic           TrafficLevel
	Quality           RoadQuality
	DominantRoad      string
}

// ExtractFeatures derives all safety metrics from a raw route candidate.
// Pure and mode-independent.
func ExtractFeatures(c Candidate) Features {
	steps := c.Steps()
	distanceKm := c.Distance / 1000.0
	durationHours := c.Duration / 3600.0

	ratio := highwayRatio(steps, c.Distance)
	return Features{
		DistanceKm:        distanceKm,
		DurationHours:     durationHours,
		HighwayRatio:      ratio,
		TurnDensity:       turnDensity(steps, distanceKm),
		LongestIsolatedKm: longestIsolatedSegment(steps),
		Traffic:           classifyTraffic(c.Duration, c.Distance),
		Quality:           classifyQuality(ratio),
		DominantRoad:      dominantRoad(steps),
	}
}

// highwayRatio is the fraction of route distance on highway-class roads.
func highwayRatio(steps []Step, totalDistanceM float64) float64 {
	if totalDistanceM <= 0 {
		return 0
	}
	var highwayDist float64
	for _, s := range steps {
		if IsHighwayRoad(s.Name, s.Ref) {
			highwayDist += s.Distance
		}
	}
	return highwayDist / totalDistanceM
}

// turnDensity counts non-trivial maneuvers per kilometer. Depart and arrive
// markers are not turns.
func turnDensity(steps []Step, totalDistanceKm float64) float64 {
	if totalDistanceKm <= 0 {
		return 0
	}
	turns := 0
	for _, s := range steps {
		if s.Maneuver.Type != "depart" && s.Maneuver.Type != "arrive" {
			turns++
		}
	}
	return float64(turns) / totalDistanceKm
}

// longestIsolatedSegment returns the longest contiguous run of steps, in km,
// whose road name and reference are both empty. The run resets on any named
// step; a trailing unterminated run still counts.
func longestIsolatedSegment(steps []Step) float64 {
	var currentM, longestM float64
	for _, s := range steps {
		isolated := strings.TrimSpace(s.Name) == "" && strings.TrimSpace(s.Ref) == ""
		if isolated {
			currentM += s.Distance
			continue
		}
		if currentM > longestM {
			longestM = currentM
		}
		currentM = 0
	}
	if currentM > longestM {
		longestM = currentM
	}
	return longestM / 1000.0
}

// classifyTraffic buckets a route by average speed in km/h.
func classifyTraffic(durationS, distanceM float64) TrafficLevel {
	if distanceM <= 0 || durationS <= 0 {
		return TrafficModerate
	}
	avgSpeedKmh := (distanceM / 1000.0) / (durationS / 3600.0)
	switch {
	case avgSpeedKmh >= 70:
		return TrafficLow
	case avgSpeedKmh >= 45:
		return TrafficModerate
	default:
		return TrafficHigh
	}
}

// classifyQuality buckets road quality by highway prevalence.
func classifyQuality(highwayRatio float64) RoadQuality {
	switch {
	case highwayRatio >= 0.6:
		return QualityExcellent
	case highwayRatio >= 0.3:
		return QualityGood
	default:
		return QualityAverage
	}
}

// dominantRoad returns the highway-class road name with the greatest
// cumulative step distance, falling back to the longest road of any kind,
// then to "Local Roads" when no step is named. Ties keep first-seen order.
func dominantRoad(steps []Step) string {
	distances := make(map[string]float64)
	var order []string
	for _, s := range steps {
		name := strings.TrimSpace(s.Name)
		if name == "" {
			continue
		}
		if _, seen := distances[name]; !seen {
			order = append(order, name)
		}
		distances[name] += s.Distance
	}

	if len(order) == 0 {
		return "Local Roads"
	}

	var bestHighway, bestAny string
	var bestHighwayDist, bestAnyDist float64
	for _, name := range order {
		d := distances[name]
		if d > bestAnyDist {
			bestAny, bestAnyDist = name, d
		}
		if IsHighwayRoad(name, "") && d > bestHighwayDist {
			bestHighway, bestHighwayDist = name, d
		}
	}
	if bestHighway != "" {
		return bestHighway
	}
	return bestAny
}
