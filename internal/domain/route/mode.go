package route

import (
	"fmt"
	"strings"
)

// Mode selects the scoring variant. Night mode weighs isolation and rural
// segments more heavily. A mode is an input to a single scoring call and is
// never stored.
type Mode string

const (
	ModeDay   Mode = "day"
	ModeNight Mode = "night"
)

// IsValid returns true if the mode is a recognized scoring mode.
func (m Mode) IsValid() bool {
	return m == ModeDay || m == ModeNight
}

// String returns the string representation of the mode.
func (m Mode) String() string {
	return string(m)
}

// ParseMode normalizes and validates a mode string. The empty string
// defaults to day mode.
func ParseMode(s string) (Mode, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	if normalized == "" {
		return ModeDay, nil
	}
	mode := Mode(normalized)
	if !mode.IsValid() {
		return "", fmt.Errorf("invalid mode: %s", s)
	}
	return mode, nil
}

// TrafficLevel classifies expected traffic along a route from its average speed.
type TrafficLevel string

const (
	TrafficLow      TrafficLevel = "Low"
	TrafficModerate TrafficLevel = "Moderate"
	TrafficHigh     TrafficLevel = "High"
)

// RoadQuality classifies a route's road surface from highway prevalence.
type RoadQuality string

const (
	QualityExcellent RoadQuality = "Excellent"
	QualityGood      RoadQuality = "Good"
	QualityAverage   RoadQuality = "Average"
)
