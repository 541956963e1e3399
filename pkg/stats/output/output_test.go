package output

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/senseyeio/duration"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travigo/bikeshare/pkg/stats"
	"github.com/travigo/bikeshare/pkg/stats/calculator"
	"github.com/travigo/bikeshare/pkg/stats/viewer"
)

func fixtureReport() *stats.Report {
	report := &stats.Report{
		ID:        uuid.MustParse("5f0e8b1c-3a7d-4c52-9a0e-2d6f1b7c8e41"),
		City:      "chicago",
		Trips:     5,
		Generated: time.Date(2017, time.July, 1, 12, 0, 0, 0, time.UTC),
	}

	report.Time.Stats = calculator.TimeStats{Month: time.January, Weekday: time.Monday, Hour: 17}
	report.Time.Elapsed = 1234 * time.Microsecond
	report.Stations.Stats = calculator.StationStats{StartStation: "A", EndStation: "B", Trip: "A -> B"}
	report.Duration.Stats = calculator.DurationStats{
		Trips: 5,
		Total: 26*time.Hour + 33*time.Minute + 5*time.Second,
		Mean:  5*time.Minute + 30*time.Second,
	}
	report.Users.Stats = calculator.UserStats{
		UserTypes: calculator.Distribution{Total: 3, Shares: []calculator.Share{
			{Category: "Subscriber", Count: 2, Percent: 200.0 / 3},
			{Category: "Customer", Count: 1, Percent: 100.0 / 3},
		}},
		Genders: &calculator.Distribution{Total: 1, Shares: []calculator.Share{
			{Category: "Female", Count: 1, Percent: 100},
		}},
		BirthYears: &calculator.BirthYearStats{Earliest: 1950, Latest: 2001, MostCommon: 1989},
	}

	return report
}

func TestWriteReport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, fixtureReport()))
	text := buf.String()

	assert.Contains(t, text, "Calculating The Most Frequent Times of Travel...")
	assert.Contains(t, text, "> Most common month:\n  January\n")
	assert.Contains(t, text, "> Most common day of week:\n  Monday\n")
	assert.Contains(t, text, "> Most common start hour:\n  17\n")
	assert.Contains(t, text, "This took 0.001 seconds.")

	assert.Contains(t, text, "> Most common trip:\n  A -> B\n")

	assert.Contains(t, text, "> Total travel time:\n  1 day(s), 2 hour(s), 33 minute(s), 5 second(s)\n")
	assert.Contains(t, text, "> Mean travel time:\n  0 day(s), 0 hour(s), 5 minute(s), 30 second(s)\n")

	assert.Contains(t, text, "Subscriber:\t2 (66.67%)\n")
	assert.Contains(t, text, "Customer:\t1 (33.33%)\n")
	assert.Contains(t, text, "Distribution by gender:")
	assert.Contains(t, text, "Female:\t1 (100.00%)\n")
	assert.Contains(t, text, "> Birth year of oldest user:\n  1950\n")
	assert.Contains(t, text, "> Birth year of youngest user:\n  2001\n")
	assert.Contains(t, text, "> Most common birth year:\n  1989\n")
	assert.NotContains(t, text, Undefined)
}

func TestWriteReportOmitsAbsentColumns(t *testing.T) {
	report := fixtureReport()
	report.Users.Stats.Genders = nil
	report.Users.Stats.BirthYears = nil

	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, report))

	assert.NotContains(t, buf.String(), "gender")
	assert.NotContains(t, buf.String(), "Birth year")
}

func TestWriteReportUndefined(t *testing.T) {
	report := stats.Calculate(emptyCollection())

	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, report))
	text := buf.String()

	assert.Contains(t, text, "> Most common month:\n  "+Undefined)
	assert.Contains(t, text, "> Most common start station:\n  "+Undefined)
	assert.Contains(t, text, "> Total travel time:\n  "+Undefined)
	assert.Contains(t, text, "Distribution by user types:\n"+rule+"\n\n"+Undefined)
	assert.Contains(t, text, "Distribution by gender:\n"+rule+"\n\n"+Undefined)
	assert.Contains(t, text, "> Birth year of oldest user:\n  "+Undefined)
}

func TestWritePage(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePage(&buf, viewer.Page{Number: 1, Entries: []viewer.Entry{
		{ID: 7, Fields: []viewer.Field{{Name: "Start Station", Value: "A"}, {Name: "Gender", Value: ""}}},
		{ID: 9, Fields: []viewer.Field{{Name: "Start Station", Value: "B"}}},
	}}))

	assert.Equal(t, "\nTrip ID: 7\nStart Station: A\nGender: \n\nTrip ID: 9\nStart Station: B\n\n", buf.String())
}

func TestWriteHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteHeader(&buf, "new york", "", "friday", 12))

	assert.Equal(t, "\nNew York: All Months, Friday (12 trips)\n\n", buf.String())
}

func decodeJSON(t *testing.T, report *stats.Report, groups ...string) map[string]interface{} {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, WriteReportJSON(&buf, report, groups...))

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	return decoded
}

func TestWriteReportJSONBasic(t *testing.T) {
	decoded := decodeJSON(t, fixtureReport())

	assert.Equal(t, "chicago", decoded["city"])
	assert.Equal(t, float64(5), decoded["trips"])
	assert.NotContains(t, decoded, "elapsed")
	assert.NotContains(t, decoded, "generated")
	assert.NotContains(t, decoded, "id")

	timeStats := decoded["time"].(map[string]interface{})
	assert.Equal(t, "January", timeStats["month"])
	assert.Equal(t, "Monday", timeStats["weekday"])
	assert.Equal(t, float64(17), timeStats["hour"])

	durationStats := decoded["duration"].(map[string]interface{})
	assert.Equal(t, ISO8601(26*time.Hour+33*time.Minute+5*time.Second), durationStats["total"])
	assert.NotContains(t, durationStats, "total_components")

	users := decoded["users"].(map[string]interface{})
	userTypes := users["user_types"].([]interface{})
	require.Len(t, userTypes, 2)
	assert.Equal(t, "Subscriber", userTypes[0].(map[string]interface{})["category"])

	assert.Empty(t, decoded["undefined"])
}

func TestWriteReportJSONDetailed(t *testing.T) {
	decoded := decodeJSON(t, fixtureReport(), GroupDetailed)

	assert.Equal(t, "2017-07-01T12:00:00Z", decoded["generated"])
	assert.Equal(t, "5f0e8b1c-3a7d-4c52-9a0e-2d6f1b7c8e41", decoded["id"])
	assert.Contains(t, decoded, "elapsed")

	components := decoded["duration"].(map[string]interface{})["total_components"].(map[string]interface{})
	assert.Equal(t, float64(1), components["days"])
	assert.Equal(t, float64(2), components["hours"])
	assert.Equal(t, float64(33), components["minutes"])
	assert.Equal(t, float64(5), components["seconds"])
}

func TestWriteReportJSONUndefined(t *testing.T) {
	decoded := decodeJSON(t, stats.Calculate(emptyCollection()))

	assert.Nil(t, decoded["time"])
	assert.Nil(t, decoded["stations"])
	assert.Nil(t, decoded["duration"])
	assert.ElementsMatch(t,
		[]interface{}{"time", "stations", "duration", "user_types", "genders", "birth_years"},
		decoded["undefined"],
	)
}

func TestISO8601(t *testing.T) {
	d := 26*time.Hour + 33*time.Minute + 5*time.Second

	parsed, err := duration.ParseISO8601(ISO8601(d))
	require.NoError(t, err)
	assert.Equal(t, 1, parsed.D)
	assert.Equal(t, 2, parsed.TH)
	assert.Equal(t, 33, parsed.TM)
	assert.Equal(t, 5, parsed.TS)

	assert.Equal(t, "PT0S", ISO8601(0))
	assert.Equal(t, "-"+ISO8601(90*time.Second), ISO8601(-90*time.Second))
}
