package output

import (
	"encoding/json"
	"io"
	"time"

	"github.com/liip/sheriff"
	"github.com/senseyeio/duration"
	"github.com/travigo/bikeshare/pkg/stats"
	"github.com/travigo/bikeshare/pkg/stats/calculator"
)

const (
	GroupBasic    = "basic"
	GroupDetailed = "detailed"
)

type reportJSON struct {
	ID        string `json:"id" groups:"detailed"`
	City      string `json:"city" groups:"basic,detailed"`
	Trips     int    `json:"trips" groups:"basic,detailed"`
	Generated string `json:"generated" groups:"detailed"`

	Time     *timeJSON     `json:"time" groups:"basic,detailed"`
	Stations *stationsJSON `json:"stations" groups:"basic,detailed"`
	Duration *durationJSON `json:"duration" groups:"basic,detailed"`
	Users    *usersJSON    `json:"users" groups:"basic,detailed"`

	Elapsed   *elapsedJSON `json:"elapsed" groups:"detailed"`
	Undefined []string     `json:"undefined" groups:"basic,detailed"`
}

type timeJSON struct {
	Month   string `json:"month" groups:"basic,detailed"`
	Weekday string `json:"weekday" groups:"basic,detailed"`
	Hour    int    `json:"hour" groups:"basic,detailed"`
}

type stationsJSON struct {
	StartStation string `json:"start_station" groups:"basic,detailed"`
	EndStation   string `json:"end_station" groups:"basic,detailed"`
	Trip         string `json:"trip" groups:"basic,detailed"`
}

type durationJSON struct {
	Total           string          `json:"total" groups:"basic,detailed"`
	Mean            string          `json:"mean" groups:"basic,detailed"`
	TotalComponents *componentsJSON `json:"total_components" groups:"detailed"`
	MeanComponents  *componentsJSON `json:"mean_components" groups:"detailed"`
}

type componentsJSON struct {
	Days    int64 `json:"days" groups:"detailed"`
	Hours   int64 `json:"hours" groups:"detailed"`
	Minutes int64 `json:"minutes" groups:"detailed"`
	Seconds int64 `json:"seconds" groups:"detailed"`
}

type usersJSON struct {
	UserTypes  []shareJSON     `json:"user_types" groups:"basic,detailed"`
	Genders    []shareJSON     `json:"genders" groups:"basic,detailed"`
	BirthYears *birthYearsJSON `json:"birth_years" groups:"basic,detailed"`
}

type shareJSON struct {
	Category string  `json:"category" groups:"basic,detailed"`
	Count    int     `json:"count" groups:"basic,detailed"`
	Percent  float64 `json:"percent" groups:"basic,detailed"`
}

type birthYearsJSON struct {
	Earliest   int `json:"earliest" groups:"basic,detailed"`
	Latest     int `json:"latest" groups:"basic,detailed"`
	MostCommon int `json:"most_common" groups:"basic,detailed"`
}

type elapsedJSON struct {
	Time     float64 `json:"time" groups:"detailed"`
	Stations float64 `json:"stations" groups:"detailed"`
	Duration float64 `json:"duration" groups:"detailed"`
	Users    float64 `json:"users" groups:"detailed"`
}

// WriteReportJSON encodes the report restricted to the given field groups.
// Sections that could not be calculated are left null and listed under
// "undefined".
func WriteReportJSON(w io.Writer, report *stats.Report, groups ...string) error {
	if len(groups) == 0 {
		groups = []string{GroupBasic}
	}

	data, err := sheriff.Marshal(&sheriff.Options{Groups: groups}, newReportJSON(report))
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	return encoder.Encode(data)
}

func newReportJSON(report *stats.Report) *reportJSON {
	view := &reportJSON{
		ID:        report.ID.String(),
		City:      report.City,
		Trips:     report.Trips,
		Generated: report.Generated.Format(time.RFC3339),
		Elapsed: &elapsedJSON{
			Time:     report.Time.Elapsed.Seconds(),
			Stations: report.Stations.Elapsed.Seconds(),
			Duration: report.Duration.Elapsed.Seconds(),
			Users:    report.Users.Elapsed.Seconds(),
		},
		Undefined: []string{},
	}

	if report.Time.Err == nil {
		view.Time = &timeJSON{
			Month:   report.Time.Stats.Month.String(),
			Weekday: report.Time.Stats.Weekday.String(),
			Hour:    report.Time.Stats.Hour,
		}
	} else {
		view.Undefined = append(view.Undefined, "time")
	}

	if report.Stations.Err == nil {
		view.Stations = &stationsJSON{
			StartStation: report.Stations.Stats.StartStation,
			EndStation:   report.Stations.Stats.EndStation,
			Trip:         report.Stations.Stats.Trip,
		}
	} else {
		view.Undefined = append(view.Undefined, "stations")
	}

	if report.Duration.Err == nil {
		view.Duration = &durationJSON{
			Total:           ISO8601(report.Duration.Stats.Total),
			Mean:            ISO8601(report.Duration.Stats.Mean),
			TotalComponents: newComponentsJSON(calculator.Decompose(report.Duration.Stats.Total)),
			MeanComponents:  newComponentsJSON(calculator.Decompose(report.Duration.Stats.Mean)),
		}
	} else {
		view.Undefined = append(view.Undefined, "duration")
	}

	users := report.Users.Stats
	view.Users = &usersJSON{}
	if users.UserTypesErr == nil {
		view.Users.UserTypes = newSharesJSON(users.UserTypes)
	} else {
		view.Undefined = append(view.Undefined, "user_types")
	}
	if users.GendersErr != nil {
		view.Undefined = append(view.Undefined, "genders")
	} else if users.Genders != nil {
		view.Users.Genders = newSharesJSON(*users.Genders)
	}
	if users.BirthYearsErr != nil {
		view.Undefined = append(view.Undefined, "birth_years")
	} else if users.BirthYears != nil {
		view.Users.BirthYears = &birthYearsJSON{
			Earliest:   users.BirthYears.Earliest,
			Latest:     users.BirthYears.Latest,
			MostCommon: users.BirthYears.MostCommon,
		}
	}

	return view
}

func newSharesJSON(distribution calculator.Distribution) []shareJSON {
	shares := make([]shareJSON, 0, len(distribution.Shares))
	for _, share := range distribution.Shares {
		shares = append(shares, shareJSON{
			Category: share.Category,
			Count:    share.Count,
			Percent:  share.Percent,
		})
	}
	return shares
}

func newComponentsJSON(c calculator.Components) *componentsJSON {
	return &componentsJSON{
		Days:    c.Days,
		Hours:   c.Hours,
		Minutes: c.Minutes,
		Seconds: c.Seconds,
	}
}

// ISO8601 formats a duration to whole seconds, e.g. P1DT2H33M5S. Negative
// durations get a leading minus.
func ISO8601(d time.Duration) string {
	if d < 0 {
		return "-" + ISO8601(-d)
	}

	c := calculator.Decompose(d)
	if c.TotalSeconds() == 0 {
		return "PT0S"
	}

	return duration.Duration{
		D:  int(c.Days),
		TH: int(c.Hours),
		TM: int(c.Minutes),
		TS: int(c.Seconds),
	}.String()
}
