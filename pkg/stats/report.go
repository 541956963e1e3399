package stats

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc"
	"github.com/travigo/bikeshare/pkg/stats/calculator"
	"github.com/travigo/bikeshare/pkg/tripdata"
)

// Section is one calculated block of a report along with how long it took.
type Section[T any] struct {
	Stats   T
	Err     error
	Elapsed time.Duration
}

type Report struct {
	ID        uuid.UUID
	City      string
	Trips     int
	Generated time.Time

	Time     Section[calculator.TimeStats]
	Stations Section[calculator.StationStats]
	Duration Section[calculator.DurationStats]
	Users    Section[calculator.UserStats]
}

// Calculate runs every calculator over the collection. They only read the
// collection so they run side by side.
func Calculate(collection *tripdata.Collection) *Report {
	report := &Report{
		ID:        uuid.New(),
		City:      collection.City,
		Trips:     collection.Len(),
		Generated: time.Now(),
	}

	var wg conc.WaitGroup
	wg.Go(func() {
		measure(&report.Time, func() (calculator.TimeStats, error) {
			return calculator.GetTimeStats(collection)
		})
	})
	wg.Go(func() {
		measure(&report.Stations, func() (calculator.StationStats, error) {
			return calculator.GetStationStats(collection)
		})
	})
	wg.Go(func() {
		measure(&report.Duration, func() (calculator.DurationStats, error) {
			return calculator.GetDurationStats(collection)
		})
	})
	wg.Go(func() {
		measure(&report.Users, func() (calculator.UserStats, error) {
			return calculator.GetUserStats(collection)
		})
	})
	wg.Wait()

	log.Debug().
		Str("report", report.ID.String()).
		Str("city", report.City).
		Int("trips", report.Trips).
		Dur("time", report.Time.Elapsed).
		Dur("stations", report.Stations.Elapsed).
		Dur("duration", report.Duration.Elapsed).
		Dur("users", report.Users.Elapsed).
		Msg("Calculated report")

	return report
}

func measure[T any](section *Section[T], calculate func() (T, error)) {
	startTime := time.Now()
	section.Stats, section.Err = calculate()
	section.Elapsed = time.Since(startTime)
}
