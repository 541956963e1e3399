package calculator

import (
	"time"

	"github.com/travigo/bikeshare/pkg/tripdata"
)

type DurationStats struct {
	Trips int
	Total time.Duration
	Mean  time.Duration
}

// Components is a duration split into whole days, hours, minutes and seconds.
// Days is floored so the remaining parts are never negative.
type Components struct {
	Days    int64
	Hours   int64
	Minutes int64
	Seconds int64
}

func (c Components) TotalSeconds() int64 {
	return c.Days*86400 + c.Hours*3600 + c.Minutes*60 + c.Seconds
}

// GetDurationStats sums end minus start over every trip. Trips that end before
// they start contribute a negative duration.
func GetDurationStats(collection *tripdata.Collection) (DurationStats, error) {
	if collection.Empty() {
		return DurationStats{}, ErrUndefinedStatistic
	}

	var total time.Duration
	for _, record := range collection.Records {
		total += record.Duration()
	}

	trips := collection.Len()

	return DurationStats{
		Trips: trips,
		Total: total,
		Mean:  total / time.Duration(trips),
	}, nil
}

// Decompose drops anything below a second, rounding towards negative infinity.
func Decompose(d time.Duration) Components {
	seconds := int64(d / time.Second)
	if d%time.Second < 0 {
		seconds -= 1
	}

	days := seconds / 86400
	remainder := seconds % 86400
	if remainder < 0 {
		days -= 1
		remainder += 86400
	}

	return Components{
		Days:    days,
		Hours:   remainder / 3600,
		Minutes: remainder % 3600 / 60,
		Seconds: remainder % 60,
	}
}
