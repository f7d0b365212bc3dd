package planner

import "github.com/travigo/shuttle-planner/pkg/trips"

type TrafficLevel string

const (
	TrafficLevelAverage  TrafficLevel = "Average"
	TrafficLevelModerate TrafficLevel = "Moderate"
	TrafficLevelHigh     TrafficLevel = "High"
)

var TrafficLevels = []TrafficLevel{TrafficLevelAverage, TrafficLevelModerate, TrafficLevelHigh}

// Multipliers are kept in tenths so the shuttle count ceiling is taken on an
// exact quotient rather than on a rounded float.
var trafficMultiplierTenths = map[TrafficLevel]int{
	TrafficLevelAverage:  10,
	TrafficLevelModerate: 12,
	TrafficLevelHigh:     14,
}

func ParseTrafficLevel(label string) (TrafficLevel, error) {
	level := TrafficLevel(label)
	if _, exists := trafficMultiplierTenths[level]; !exists {
		return "", &trips.UnknownTrafficLevelError{Level: label}
	}

	return level, nil
}

func (l TrafficLevel) Multiplier() float64 {
	return float64(trafficMultiplierTenths[l]) / 10
}
