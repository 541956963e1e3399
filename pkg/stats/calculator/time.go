package calculator

import (
	"time"

	"github.com/travigo/bikeshare/pkg/tripdata"
)

type TimeStats struct {
	Month   time.Month
	Weekday time.Weekday
	Hour    int
}

// GetTimeStats finds the busiest month, weekday and start hour. Weekday ties
// are broken Monday first.
func GetTimeStats(collection *tripdata.Collection) (TimeStats, error) {
	if collection.Empty() {
		return TimeStats{}, ErrUndefinedStatistic
	}

	months := map[time.Month]int{}
	weekdays := map[time.Weekday]int{}
	hours := map[int]int{}

	for _, record := range collection.Records {
		months[record.StartTime.Month()] += 1
		weekdays[record.StartTime.Weekday()] += 1
		hours[record.StartTime.Hour()] += 1
	}

	month, _ := Mode(months)
	weekday, _ := ModeFunc(weekdays, func(a, b time.Weekday) bool {
		return tripdata.WeekdayOrder(a) < tripdata.WeekdayOrder(b)
	})
	hour, _ := Mode(hours)

	return TimeStats{
		Month:   month,
		Weekday: weekday,
		Hour:    hour,
	}, nil
}
