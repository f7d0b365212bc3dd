package planner

import "github.com/travigo/shuttle-planner/pkg/trips"

type groupKey struct {
	TimeBlock      string
	DayOfWeek      string
	PickupLocation string
}

type accumulator struct {
	Sum   int
	Count int
}

func (a *accumulator) Mean() float64 {
	if a.Count == 0 {
		return 0
	}

	return float64(a.Sum) / float64(a.Count)
}

// groupRecords sums passenger counts per (time block, weekday) and, when
// byLocation is set, per pickup location as well.
func groupRecords(table trips.TripTable, byLocation bool) map[groupKey]*accumulator {
	groups := map[groupKey]*accumulator{}

	for _, record := range table.Records {
		key := groupKey{
			TimeBlock: record.TimeBlock,
			DayOfWeek: record.DayOfWeek,
		}
		if byLocation {
			key.PickupLocation = record.PickupLocation
		}

		group, exists := groups[key]
		if !exists {
			group = &accumulator{}
			groups[key] = group
		}

		group.Sum += record.PassengerCount
		group.Count++
	}

	return groups
}

// timeBlocks lists the distinct time blocks in the order they first appear.
func timeBlocks(table trips.TripTable) []string {
	seen := map[string]bool{}
	blocks := []string{}

	for _, record := range table.Records {
		if !seen[record.TimeBlock] {
			seen[record.TimeBlock] = true
			blocks = append(blocks, record.TimeBlock)
		}
	}

	return blocks
}
