package trips

import (
	"golang.org/x/exp/slices"
)

// FilterMonth keeps the records whose Month matches, in their original order.
// No match gives an empty table rather than an error.
func (t TripTable) FilterMonth(month string) TripTable {
	filtered := TripTable{
		Records: []TripRecord{},
	}

	for _, record := range t.Records {
		if record.Month == month {
			filtered.Records = append(filtered.Records, record)
		}
	}

	return filtered
}

// Months lists the distinct months present in an enriched table.
//
// MonthOrderAlphabetical sorts the names as plain strings, so "April" comes
// before "January". MonthOrderChronological sorts January to December.
func (t TripTable) Months(order MonthOrder) []string {
	months := []string{}

	for _, record := range t.Records {
		if record.Month != "" && !slices.Contains(months, record.Month) {
			months = append(months, record.Month)
		}
	}

	if order == MonthOrderChronological {
		slices.SortFunc(months, func(a, b string) int {
			return monthNumber(a) - monthNumber(b)
		})
	} else {
		slices.Sort(months)
	}

	return months
}
