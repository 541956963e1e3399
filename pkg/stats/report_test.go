package stats

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travigo/bikeshare/pkg/stats/calculator"
	"github.com/travigo/bikeshare/pkg/tripdata"
)

func threeMondays() *tripdata.Collection {
	monday := time.Date(2017, time.January, 2, 8, 0, 0, 0, time.UTC)

	collection := &tripdata.Collection{City: "chicago", Schema: tripdata.Schema{Gender: true, BirthYear: true}}
	for i, station := range []string{"A", "A", "B"} {
		start := monday.Add(time.Duration(i) * time.Hour)
		collection.Records = append(collection.Records, tripdata.TripRecord{
			Index:        i,
			StartTime:    start,
			EndTime:      start.Add(15 * time.Minute),
			StartStation: station,
			EndStation:   "C",
			UserType:     "Subscriber",
			Gender:       "Female",
			BirthYear:    1990 + i,
			HasBirthYear: true,
		})
	}

	return collection
}

func TestCalculate(t *testing.T) {
	report := Calculate(threeMondays())

	assert.Equal(t, "chicago", report.City)
	assert.Equal(t, 3, report.Trips)
	assert.NotEqual(t, uuid.Nil, report.ID)

	require.NoError(t, report.Time.Err)
	assert.Equal(t, time.January, report.Time.Stats.Month)
	assert.Equal(t, time.Monday, report.Time.Stats.Weekday)

	require.NoError(t, report.Stations.Err)
	assert.Equal(t, "A", report.Stations.Stats.StartStation)
	assert.Equal(t, "A -> C", report.Stations.Stats.Trip)

	require.NoError(t, report.Duration.Err)
	assert.Equal(t, 45*time.Minute, report.Duration.Stats.Total)
	assert.Equal(t, 15*time.Minute, report.Duration.Stats.Mean)

	require.NoError(t, report.Users.Err)
	assert.Equal(t, 3, report.Users.Stats.UserTypes.Total)
	require.NotNil(t, report.Users.Stats.BirthYears)
	assert.Equal(t, 1990, report.Users.Stats.BirthYears.MostCommon)
}

func TestCalculateEmpty(t *testing.T) {
	report := Calculate(&tripdata.Collection{City: "chicago", Schema: tripdata.Schema{Gender: true, BirthYear: true}})

	assert.Equal(t, 0, report.Trips)
	assert.ErrorIs(t, report.Time.Err, calculator.ErrUndefinedStatistic)
	assert.ErrorIs(t, report.Stations.Err, calculator.ErrUndefinedStatistic)
	assert.ErrorIs(t, report.Duration.Err, calculator.ErrUndefinedStatistic)
	assert.ErrorIs(t, report.Users.Err, calculator.ErrUndefinedStatistic)
	assert.ErrorIs(t, report.Users.Stats.UserTypesErr, calculator.ErrUndefinedStatistic)
	assert.ErrorIs(t, report.Users.Stats.GendersErr, calculator.ErrUndefinedStatistic)
	assert.ErrorIs(t, report.Users.Stats.BirthYearsErr, calculator.ErrUndefinedStatistic)
}

func TestCalculateDoesNotModifyCollection(t *testing.T) {
	collection := threeMondays()
	before := append([]tripdata.TripRecord(nil), collection.Records...)

	first := Calculate(collection)
	second := Calculate(collection)

	assert.NotEqual(t, first.ID, second.ID)

	assert.Equal(t, before, collection.Records)
}
