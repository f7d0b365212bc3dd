package trips

import "time"

// Weekdays is the canonical Monday-first column ordering used by the weekday views.
var Weekdays = []string{
	time.Monday.String(),
	time.Tuesday.String(),
	time.Wednesday.String(),
	time.Thursday.String(),
	time.Friday.String(),
	time.Saturday.String(),
	time.Sunday.String(),
}

type MonthOrder string

const (
	MonthOrderAlphabetical  MonthOrder = "alphabetical"
	MonthOrderChronological MonthOrder = "chronological"
)

func ParseMonthOrder(value string) (MonthOrder, error) {
	switch MonthOrder(value) {
	case "", MonthOrderAlphabetical:
		return MonthOrderAlphabetical, nil
	case MonthOrderChronological:
		return MonthOrderChronological, nil
	default:
		return "", &UnknownMonthOrderError{Order: value}
	}
}

func monthNumber(name string) int {
	for month := time.January; month <= time.December; month++ {
		if month.String() == name {
			return int(month)
		}
	}

	return 0
}
