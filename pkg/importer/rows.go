package importer

import (
	"math"
	"strconv"
	"strings"

	"github.com/travigo/shuttle-planner/pkg/trips"
)

const byteOrderMark = "\ufeff"

func normaliseHeader(header []string) []string {
	normalised := make([]string, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, byteOrderMark)
		}
		normalised[i] = strings.TrimSpace(name)
	}

	return normalised
}

// checkHeader returns the index of each required column, or a SchemaError listing
// the ones that are absent.
func checkHeader(header []string) (map[string]int, error) {
	indexes := map[string]int{}
	for i, name := range header {
		if _, exists := indexes[name]; !exists {
			indexes[name] = i
		}
	}

	var missing []string
	for _, column := range trips.RequiredColumns {
		if _, exists := indexes[column]; !exists {
			missing = append(missing, column)
		}
	}

	if len(missing) > 0 {
		return nil, &trips.SchemaError{Missing: missing}
	}

	return indexes, nil
}

type rawRecord struct {
	Date           string
	TimeBlock      string
	PickupLocation string
	PassengerCount string
}

func (r rawRecord) blank() bool {
	return strings.TrimSpace(r.Date) == "" &&
		strings.TrimSpace(r.TimeBlock) == "" &&
		strings.TrimSpace(r.PickupLocation) == "" &&
		strings.TrimSpace(r.PassengerCount) == ""
}

func (r rawRecord) toTripRecord(row int) (trips.TripRecord, error) {
	values := map[string]string{
		trips.ColumnDate:           strings.TrimSpace(r.Date),
		trips.ColumnTimeBlock:      strings.TrimSpace(r.TimeBlock),
		trips.ColumnPickupLocation: strings.TrimSpace(r.PickupLocation),
		trips.ColumnPassengerCount: strings.TrimSpace(r.PassengerCount),
	}

	var missing []string
	for _, column := range trips.RequiredColumns {
		if values[column] == "" {
			missing = append(missing, column)
		}
	}
	if len(missing) > 0 {
		return trips.TripRecord{}, &trips.SchemaError{Missing: missing, Row: row}
	}

	count, err := parsePassengerCount(values[trips.ColumnPassengerCount])
	if err != nil {
		return trips.TripRecord{}, &trips.InvalidCountError{Row: row, Value: r.PassengerCount}
	}

	return trips.TripRecord{
		Row:            row,
		Date:           values[trips.ColumnDate],
		TimeBlock:      values[trips.ColumnTimeBlock],
		PickupLocation: values[trips.ColumnPickupLocation],
		PassengerCount: count,
	}, nil
}

func parsePassengerCount(value string) (int, error) {
	if count, err := strconv.Atoi(value); err == nil {
		if count < 0 {
			return 0, strconv.ErrRange
		}
		return count, nil
	}

	// spreadsheets tend to hand back whole numbers as "12.0"
	count, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, err
	}
	if count < 0 || math.IsInf(count, 0) || math.IsNaN(count) || count != math.Trunc(count) || count > math.MaxInt32 {
		return 0, strconv.ErrRange
	}

	return int(count), nil
}

// buildTable turns raw rows into a table. Row numbers in errors count data rows
// from 1, so the header is not counted.
func buildTable(rawRecords []rawRecord) (trips.TripTable, error) {
	table := trips.TripTable{
		Records: make([]trips.TripRecord, 0, len(rawRecords)),
	}

	for i, raw := range rawRecords {
		if raw.blank() {
			continue
		}

		record, err := raw.toTripRecord(i + 1)
		if err != nil {
			return trips.TripTable{}, err
		}

		table.Records = append(table.Records, record)
	}

	return table, nil
}
