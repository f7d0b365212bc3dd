package planner

import (
	"strings"

	"github.com/travigo/shuttle-planner/pkg/trips"
	"golang.org/x/exp/slices"
)

// MeanVolumeByDay averages passenger counts per time block and weekday. The
// columns are always Monday to Sunday; a weekday without trips reads 0.
func MeanVolumeByDay(table trips.TripTable) View[float64] {
	groups := groupRecords(table, false)

	return materialise(ViewMeanVolumeByDay, timeBlocks(table), weekdayColumns(), func(timeBlock string, column Column) float64 {
		group, exists := groups[groupKey{TimeBlock: timeBlock, DayOfWeek: column.DayOfWeek}]
		if !exists {
			return 0
		}

		return group.Mean()
	})
}

// MeanVolumeByLocation averages passenger counts per time block, weekday and
// pickup location. Only the (weekday, location) pairs present in the table
// become columns, sorted by weekday name and then location.
func MeanVolumeByLocation(table trips.TripTable) View[float64] {
	groups := groupRecords(table, true)

	columns := []Column{}
	for key := range groups {
		column := Column{DayOfWeek: key.DayOfWeek, PickupLocation: key.PickupLocation}
		if !slices.Contains(columns, column) {
			columns = append(columns, column)
		}
	}

	slices.SortFunc(columns, func(a, b Column) int {
		if byDay := strings.Compare(a.DayOfWeek, b.DayOfWeek); byDay != 0 {
			return byDay
		}
		return strings.Compare(a.PickupLocation, b.PickupLocation)
	})

	return materialise(ViewMeanVolumeByLocation, timeBlocks(table), columns, func(timeBlock string, column Column) float64 {
		group, exists := groups[groupKey{TimeBlock: timeBlock, DayOfWeek: column.DayOfWeek, PickupLocation: column.PickupLocation}]
		if !exists {
			return 0
		}

		return group.Mean()
	})
}

// ShuttleCount works out how many shuttles each time block and weekday needs:
// ceil(passengers * traffic multiplier / capacity). Empty cells are filled with
// 0 passengers before the multiplier is applied.
func (p *Planner) ShuttleCount(table trips.TripTable, level TrafficLevel) (View[int], error) {
	multiplierTenths, exists := trafficMultiplierTenths[level]
	if !exists {
		return View[int]{}, &trips.UnknownTrafficLevelError{Level: string(level)}
	}

	groups := groupRecords(table, false)
	divisor := p.capacity * 10

	return materialise(ViewShuttleCount, timeBlocks(table), weekdayColumns(), func(timeBlock string, column Column) int {
		passengers := 0
		if group, exists := groups[groupKey{TimeBlock: timeBlock, DayOfWeek: column.DayOfWeek}]; exists {
			passengers = group.Sum
		}

		return ceilDiv(passengers*multiplierTenths, divisor)
	}), nil
}

func ceilDiv(numerator int, denominator int) int {
	if numerator <= 0 {
		return 0
	}

	return (numerator + denominator - 1) / denominator
}
