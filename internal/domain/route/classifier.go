package route

import "regexp"

// highwayPattern matches Indian national/state highway naming plus the OSM
// motorway and trunk classes. Shared by road-quality classification, the
// highway-ratio metric, and road-summary selection so the three never diverge.
var highwayPattern = regexp.MustCompile(`(?i)\b(NH|SH|National Highway|State Highway|Expressway|motorway|trunk)\b`)

// IsHighwayRoad reports whether a step's road name or reference identifies
// a highway, expressway, or trunk road.
func IsHighwayRoad(name, ref string) bool {
	return highwayPattern.MatchString(name + " " + ref)
}
