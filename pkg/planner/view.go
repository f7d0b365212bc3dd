package planner

import "github.com/travigo/shuttle-planner/pkg/trips"

const (
	ViewMeanVolumeByDay      = "mean_volume_by_day"
	ViewMeanVolumeByLocation = "mean_volume_by_location"
	ViewShuttleCount         = "shuttle_count"
)

type Number interface {
	~int | ~float64
}

type Column struct {
	DayOfWeek      string `json:"day_of_week" groups:"basic,detailed"`
	PickupLocation string `json:"pickup_location,omitempty" groups:"basic,detailed"`
}

// View is a matrix keyed by time block (rows) and a weekday or weekday/location
// column. Cells[i][j] belongs to Rows[i] and Columns[j].
type View[T Number] struct {
	Name    string   `json:"name" groups:"basic,detailed"`
	Rows    []string `json:"rows" groups:"basic,detailed"`
	Columns []Column `json:"columns" groups:"basic,detailed"`
	Cells   [][]T    `json:"cells" groups:"basic,detailed"`

	RowTotals []T `json:"row_totals" groups:"detailed"`
}

func (v View[T]) Cell(timeBlock string, column Column) (T, bool) {
	var empty T

	row := -1
	for i, name := range v.Rows {
		if name == timeBlock {
			row = i
			break
		}
	}
	if row < 0 {
		return empty, false
	}

	for j, candidate := range v.Columns {
		if candidate == column {
			return v.Cells[row][j], true
		}
	}

	return empty, false
}

func weekdayColumns() []Column {
	columns := make([]Column, len(trips.Weekdays))
	for i, day := range trips.Weekdays {
		columns[i] = Column{DayOfWeek: day}
	}

	return columns
}

// materialise builds the view cell by cell so that column order is decided by
// the caller, never by map iteration.
func materialise[T Number](name string, rows []string, columns []Column, value func(timeBlock string, column Column) T) View[T] {
	view := View[T]{
		Name:      name,
		Rows:      rows,
		Columns:   columns,
		Cells:     make([][]T, len(rows)),
		RowTotals: make([]T, len(rows)),
	}

	for i, timeBlock := range rows {
		view.Cells[i] = make([]T, len(columns))

		for j, column := range columns {
			cell := value(timeBlock, column)

			view.Cells[i][j] = cell
			view.RowTotals[i] += cell
		}
	}

	return view
}
