package planner

import (
	"github.com/rs/zerolog/log"
	"github.com/travigo/shuttle-planner/pkg/trips"
)

// DefaultCapacity is the number of passengers a single shuttle carries.
const DefaultCapacity = 14

type Planner struct {
	capacity int
}

func NewPlanner(capacity int) (*Planner, error) {
	if capacity <= 0 {
		return nil, &trips.InvalidCapacityError{Capacity: capacity}
	}

	return &Planner{
		capacity: capacity,
	}, nil
}

func (p *Planner) Capacity() int {
	return p.capacity
}

// Plan holds every view derived for one month and traffic level.
type Plan struct {
	Month        string       `json:"month" groups:"basic,detailed"`
	TrafficLevel TrafficLevel `json:"traffic_level" groups:"basic,detailed"`
	Multiplier   float64      `json:"multiplier" groups:"detailed"`
	Capacity     int          `json:"capacity" groups:"detailed"`
	Trips        int          `json:"trips" groups:"detailed"`

	MeanVolumeByDay      View[float64] `json:"mean_volume_by_day" groups:"basic,detailed"`
	MeanVolumeByLocation View[float64] `json:"mean_volume_by_location" groups:"basic,detailed"`
	ShuttleCount         View[int]     `json:"shuttle_count" groups:"basic,detailed"`
}

// Compute filters an enriched table to the month and derives the three views.
func (p *Planner) Compute(table trips.TripTable, month string, level TrafficLevel) (*Plan, error) {
	if _, err := ParseTrafficLevel(string(level)); err != nil {
		return nil, err
	}

	monthTable := table.FilterMonth(month)

	shuttleCount, err := p.ShuttleCount(monthTable, level)
	if err != nil {
		return nil, err
	}

	plan := &Plan{
		Month:        month,
		TrafficLevel: level,
		Multiplier:   level.Multiplier(),
		Capacity:     p.capacity,
		Trips:        monthTable.Len(),

		MeanVolumeByDay:      MeanVolumeByDay(monthTable),
		MeanVolumeByLocation: MeanVolumeByLocation(monthTable),
		ShuttleCount:         shuttleCount,
	}

	log.Debug().
		Str("month", month).
		Str("traffic", string(level)).
		Int("trips", plan.Trips).
		Int("timeblocks", len(plan.ShuttleCount.Rows)).
		Msg("Computed shuttle plan")

	return plan, nil
}
