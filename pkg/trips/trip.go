package trips

import "time"

const (
	ColumnDate           = "date"
	ColumnTimeBlock      = "time_block"
	ColumnPickupLocation = "pickup_location"
	ColumnPassengerCount = "passenger_count"
)

// RequiredColumns are the columns every uploaded file must carry, in the order
// they are reported back to the uploader.
var RequiredColumns = []string{ColumnDate, ColumnTimeBlock, ColumnPickupLocation, ColumnPassengerCount}

type TripRecord struct {
	// Data row in the source file, counted from 1 after the header
	Row int

	Date           string
	TimeBlock      string
	PickupLocation string
	PassengerCount int

	// Filled in by Enrich
	ServiceDate time.Time
	DayOfWeek   string
	Month       string
}

// TripTable is an ordered set of trip records taken from a single uploaded file.
type TripTable struct {
	Records []TripRecord
}

func (t TripTable) Len() int {
	return len(t.Records)
}

func (t TripTable) IsEmpty() bool {
	return len(t.Records) == 0
}
