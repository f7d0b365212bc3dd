package trips

import (
	"strings"
	"time"

	"github.com/jinzhu/copier"
)

var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"2006-1-2",
	"2006/1/2",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"01/02/2006",
	"1/2/2006",
	"01-02-06",
	"1/2/06",
}

func ParseDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)

	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, true
		}
	}

	return time.Time{}, false
}

// Enrich returns a copy of the table with ServiceDate, DayOfWeek and Month set on
// every record. A single unparseable date fails the whole table.
func Enrich(table TripTable) (TripTable, error) {
	enriched := TripTable{}
	if err := copier.CopyWithOption(&enriched, &table, copier.Option{DeepCopy: true}); err != nil {
		return TripTable{}, err
	}

	for i := range enriched.Records {
		record := &enriched.Records[i]

		serviceDate, ok := ParseDate(record.Date)
		if !ok {
			row := record.Row
			if row == 0 {
				row = i + 1
			}
			return TripTable{}, &DateParseError{Row: row, Value: record.Date}
		}

		record.ServiceDate = serviceDate
		record.DayOfWeek = serviceDate.Weekday().String()
		record.Month = serviceDate.Month().String()
	}

	return enriched, nil
}
