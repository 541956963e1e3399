package tripdata

import (
	"strings"
	"time"
)

// Months and Days list the filter values the supported datasets actually cover.
var Months = []string{"january", "february", "march", "april", "may", "june"}
var Days = []string{"monday", "tuesday", "wednesday", "thursday", "friday"}

// WeekdayOrder returns the position of a weekday with Monday first.
func WeekdayOrder(day time.Weekday) int {
	return (int(day) + 6) % 7
}

func MonthMatches(t time.Time, month string) bool {
	return strings.EqualFold(t.Month().String(), strings.TrimSpace(month))
}

func WeekdayMatches(t time.Time, day string) bool {
	return strings.EqualFold(t.Weekday().String(), strings.TrimSpace(day))
}
