package planner

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travigo/shuttle-planner/pkg/trips"
)

func enrich(t *testing.T, records ...trips.TripRecord) trips.TripTable {
	t.Helper()

	table, err := trips.Enrich(trips.TripTable{Records: records})
	require.NoError(t, err)

	return table
}

func newTestPlanner(t *testing.T) *Planner {
	t.Helper()

	planner, err := NewPlanner(DefaultCapacity)
	require.NoError(t, err)

	return planner
}

func TestEndToEndExample(t *testing.T) {
	table := enrich(t,
		trips.TripRecord{Date: "2024-01-01", TimeBlock: "08:00", PickupLocation: "A", PassengerCount: 10},
		trips.TripRecord{Date: "2024-01-08", TimeBlock: "08:00", PickupLocation: "A", PassengerCount: 12},
	)

	january := table.FilterMonth("January")
	require.Equal(t, 2, january.Len())

	meanByDay := MeanVolumeByDay(january)
	mean, ok := meanByDay.Cell("08:00", Column{DayOfWeek: "Monday"})
	require.True(t, ok)
	assert.Equal(t, 11.0, mean)

	shuttles, err := newTestPlanner(t).ShuttleCount(january, TrafficLevelAverage)
	require.NoError(t, err)
	count, ok := shuttles.Cell("08:00", Column{DayOfWeek: "Monday"})
	require.True(t, ok)
	assert.Equal(t, 2, count)
}

func TestMeanVolumeByDayAlwaysHasSevenWeekdays(t *testing.T) {
	table := enrich(t,
		trips.TripRecord{Date: "2024-01-03", TimeBlock: "08:00", PickupLocation: "A", PassengerCount: 4},
	)

	view := MeanVolumeByDay(table)

	require.Len(t, view.Columns, 7)
	for i, day := range []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"} {
		assert.Equal(t, Column{DayOfWeek: day}, view.Columns[i])
	}
	assert.Equal(t, [][]float64{{0, 0, 4, 0, 0, 0, 0}}, view.Cells)

	empty := MeanVolumeByDay(trips.TripTable{})
	assert.Len(t, empty.Columns, 7)
	assert.Empty(t, empty.Rows)
	assert.Empty(t, empty.Cells)
}

func TestRowsFollowFirstSeenOrder(t *testing.T) {
	table := enrich(t,
		trips.TripRecord{Date: "2024-01-01", TimeBlock: "17:00", PickupLocation: "A", PassengerCount: 1},
		trips.TripRecord{Date: "2024-01-01", TimeBlock: "08:00", PickupLocation: "A", PassengerCount: 2},
		trips.TripRecord{Date: "2024-01-02", TimeBlock: "17:00", PickupLocation: "B", PassengerCount: 3},
		trips.TripRecord{Date: "2024-01-02", TimeBlock: "12:00", PickupLocation: "B", PassengerCount: 4},
	)

	expected := []string{"17:00", "08:00", "12:00"}
	assert.Equal(t, expected, MeanVolumeByDay(table).Rows)
	assert.Equal(t, expected, MeanVolumeByLocation(table).Rows)

	shuttles, err := newTestPlanner(t).ShuttleCount(table, TrafficLevelHigh)
	require.NoError(t, err)
	assert.Equal(t, expected, shuttles.Rows)
}

func TestMeanVolumeByLocation(t *testing.T) {
	table := enrich(t,
		// Monday
		trips.TripRecord{Date: "2024-01-01", TimeBlock: "08:00", PickupLocation: "Lobby", PassengerCount: 10},
		trips.TripRecord{Date: "2024-01-08", TimeBlock: "08:00", PickupLocation: "Lobby", PassengerCount: 6},
		trips.TripRecord{Date: "2024-01-01", TimeBlock: "09:00", PickupLocation: "Gate", PassengerCount: 5},
		// Friday
		trips.TripRecord{Date: "2024-01-05", TimeBlock: "08:00", PickupLocation: "Gate", PassengerCount: 3},
		// Wednesday
		trips.TripRecord{Date: "2024-01-03", TimeBlock: "09:00", PickupLocation: "Annex", PassengerCount: 9},
	)

	view := MeanVolumeByLocation(table)

	assert.Equal(t, []Column{
		{DayOfWeek: "Friday", PickupLocation: "Gate"},
		{DayOfWeek: "Monday", PickupLocation: "Gate"},
		{DayOfWeek: "Monday", PickupLocation: "Lobby"},
		{DayOfWeek: "Wednesday", PickupLocation: "Annex"},
	}, view.Columns)
	assert.Equal(t, []string{"08:00", "09:00"}, view.Rows)
	assert.Equal(t, [][]float64{
		{3, 0, 8, 0},
		{0, 5, 0, 9},
	}, view.Cells)
	assert.Equal(t, []float64{11, 14}, view.RowTotals)
}

func TestMeanVolumeByLocationEmpty(t *testing.T) {
	view := MeanVolumeByLocation(trips.TripTable{})

	assert.Empty(t, view.Rows)
	assert.Empty(t, view.Columns)
	assert.Empty(t, view.Cells)
}

func TestShuttleCountMultiplierOrder(t *testing.T) {
	// ceil(20 * 1.2 / 14) = ceil(1.714) = 2
	table := enrich(t,
		trips.TripRecord{Date: "2024-01-01", TimeBlock: "08:00", PickupLocation: "A", PassengerCount: 20},
	)

	view, err := newTestPlanner(t).ShuttleCount(table, TrafficLevelModerate)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{2, 0, 0, 0, 0, 0, 0}}, view.Cells)
}

func TestShuttleCountExactMultiples(t *testing.T) {
	planner := newTestPlanner(t)

	tests := []struct {
		passengers int
		level      TrafficLevel
		expected   int
	}{
		{0, TrafficLevelHigh, 0},
		{1, TrafficLevelAverage, 1},
		{14, TrafficLevelAverage, 1},
		{15, TrafficLevelAverage, 2},
		{35, TrafficLevelModerate, 3},
		{70, TrafficLevelHigh, 7},
		{71, TrafficLevelHigh, 8},
		{10, TrafficLevelHigh, 1},
	}

	for _, test := range tests {
		table := enrich(t, trips.TripRecord{Date: "2024-01-02", TimeBlock: "08:00", PickupLocation: "A", PassengerCount: test.passengers})

		view, err := planner.ShuttleCount(table, test.level)
		require.NoError(t, err)

		count, ok := view.Cell("08:00", Column{DayOfWeek: "Tuesday"})
		require.True(t, ok)
		assert.Equal(t, test.expected, count, "%d passengers at %s", test.passengers, test.level)
	}
}

func TestShuttleCountNeverUnderProvisions(t *testing.T) {
	random := rand.New(rand.NewSource(42))
	planner := newTestPlanner(t)

	dates := []string{"2024-05-01", "2024-05-02", "2024-05-03", "2024-05-04", "2024-05-05", "2024-05-06", "2024-05-07", "2024-05-13"}
	blocks := []string{"06:00", "07:00", "08:00", "17:00"}

	records := []trips.TripRecord{}
	for i := 0; i < 300; i++ {
		records = append(records, trips.TripRecord{
			Date:           dates[random.Intn(len(dates))],
			TimeBlock:      blocks[random.Intn(len(blocks))],
			PickupLocation: "A",
			PassengerCount: random.Intn(40),
		})
	}
	table := enrich(t, records...)

	sums := map[groupKey]int{}
	for _, record := range table.Records {
		sums[groupKey{TimeBlock: record.TimeBlock, DayOfWeek: record.DayOfWeek}] += record.PassengerCount
	}

	for _, level := range TrafficLevels {
		view, err := planner.ShuttleCount(table, level)
		require.NoError(t, err)

		tenths := trafficMultiplierTenths[level]
		for i, timeBlock := range view.Rows {
			for j, column := range view.Columns {
				cell := view.Cells[i][j]
				demandTenths := sums[groupKey{TimeBlock: timeBlock, DayOfWeek: column.DayOfWeek}] * tenths

				assert.GreaterOrEqual(t, cell*DefaultCapacity*10, demandTenths)
				if demandTenths > 0 {
					assert.Less(t, (cell-1)*DefaultCapacity*10, demandTenths)
				} else {
					assert.Equal(t, 0, cell)
				}
			}
		}
	}
}

func TestShuttleCountUnknownTrafficLevel(t *testing.T) {
	_, err := newTestPlanner(t).ShuttleCount(trips.TripTable{}, TrafficLevel("Gridlock"))

	var levelErr *trips.UnknownTrafficLevelError
	require.True(t, errors.As(err, &levelErr))
	assert.Equal(t, "Gridlock", levelErr.Level)
}

func TestNewPlannerInvalidCapacity(t *testing.T) {
	for _, capacity := range []int{0, -14} {
		_, err := NewPlanner(capacity)

		var capacityErr *trips.InvalidCapacityError
		require.True(t, errors.As(err, &capacityErr))
		assert.Equal(t, capacity, capacityErr.Capacity)
	}
}

func TestParseTrafficLevel(t *testing.T) {
	for label, multiplier := range map[string]float64{"Average": 1.0, "Moderate": 1.2, "High": 1.4} {
		level, err := ParseTrafficLevel(label)
		require.NoError(t, err)
		assert.InDelta(t, multiplier, level.Multiplier(), 1e-9)
	}

	for _, label := range []string{"", "average", "Extreme"} {
		_, err := ParseTrafficLevel(label)

		var levelErr *trips.UnknownTrafficLevelError
		assert.True(t, errors.As(err, &levelErr), label)
	}
}

func TestComputeEmptyMonth(t *testing.T) {
	table := enrich(t,
		trips.TripRecord{Date: "2024-01-01", TimeBlock: "08:00", PickupLocation: "A", PassengerCount: 10},
	)

	plan, err := newTestPlanner(t).Compute(table, "March", TrafficLevelHigh)
	require.NoError(t, err)

	assert.Equal(t, 0, plan.Trips)
	assert.Empty(t, plan.MeanVolumeByDay.Rows)
	assert.Empty(t, plan.MeanVolumeByLocation.Rows)
	assert.Empty(t, plan.ShuttleCount.Rows)
	assert.Len(t, plan.ShuttleCount.Columns, 7)
}

func TestComputeIsIdempotent(t *testing.T) {
	table := enrich(t,
		trips.TripRecord{Date: "2024-01-01", TimeBlock: "08:00", PickupLocation: "A", PassengerCount: 10},
		trips.TripRecord{Date: "2024-01-02", TimeBlock: "09:00", PickupLocation: "B", PassengerCount: 7},
		trips.TripRecord{Date: "2024-01-09", TimeBlock: "09:00", PickupLocation: "C", PassengerCount: 8},
	)
	planner := newTestPlanner(t)

	first, err := planner.Compute(table, "January", TrafficLevelModerate)
	require.NoError(t, err)
	second, err := planner.Compute(table, "January", TrafficLevelModerate)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1.2, first.Multiplier)
	assert.Equal(t, DefaultCapacity, first.Capacity)
}

func TestComputeRejectsUnknownTrafficLevel(t *testing.T) {
	_, err := newTestPlanner(t).Compute(trips.TripTable{}, "January", TrafficLevel("Light"))

	var levelErr *trips.UnknownTrafficLevelError
	assert.True(t, errors.As(err, &levelErr))
}
