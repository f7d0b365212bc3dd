package trips

import (
	"fmt"
	"strings"
)

// FormatError is returned when an uploaded file has an extension that no reader supports.
type FormatError struct {
	Extension string
	Supported []string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("unsupported file format %q, expected one of: %s", e.Extension, strings.Join(e.Supported, ", "))
}

// SchemaError is returned when required columns are absent from the header, or
// when a row leaves one of them empty. The message always lists every required
// column so the uploader can fix the file in one go.
type SchemaError struct {
	Missing []string
	Row     int
}

func (e *SchemaError) Error() string {
	required := strings.Join(RequiredColumns, ", ")

	if e.Row > 0 {
		return fmt.Sprintf("row %d has no value for %s; uploaded file must contain columns: %s", e.Row, strings.Join(e.Missing, ", "), required)
	}

	return fmt.Sprintf("uploaded file must contain columns: %s (missing: %s)", required, strings.Join(e.Missing, ", "))
}

type DateParseError struct {
	Row   int
	Value string
}

func (e *DateParseError) Error() string {
	return fmt.Sprintf("row %d: cannot parse date %q", e.Row, e.Value)
}

type InvalidCountError struct {
	Row   int
	Value string
}

func (e *InvalidCountError) Error() string {
	return fmt.Sprintf("row %d: passenger_count must be a non-negative whole number, got %q", e.Row, e.Value)
}

type UnknownTrafficLevelError struct {
	Level string
}

func (e *UnknownTrafficLevelError) Error() string {
	return fmt.Sprintf("unknown traffic level %q, expected one of: Average, Moderate, High", e.Level)
}

type InvalidCapacityError struct {
	Capacity int
}

func (e *InvalidCapacityError) Error() string {
	return fmt.Sprintf("shuttle capacity must be greater than zero, got %d", e.Capacity)
}

type UnknownMonthOrderError struct {
	Order string
}

func (e *UnknownMonthOrderError) Error() string {
	return fmt.Sprintf("unknown month order %q, expected %s or %s", e.Order, MonthOrderAlphabetical, MonthOrderChronological)
}
