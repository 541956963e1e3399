package output

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/travigo/bikeshare/pkg/stats"
	"github.com/travigo/bikeshare/pkg/stats/calculator"
	"github.com/travigo/bikeshare/pkg/stats/viewer"
	"github.com/travigo/bikeshare/pkg/util"
)

const Undefined = "undefined (no matching trips)"

var banner = strings.Repeat("=", 80)
var rule = strings.Repeat("-", 40)

func Banner(w io.Writer, title string) error {
	_, err := fmt.Fprintf(w, "%s\n%s\n%s\n", banner, title, banner)
	return err
}

// WriteReport prints every section of the report in the fixed order time,
// stations, duration, users.
func WriteReport(w io.Writer, report *stats.Report) error {
	out := bufio.NewWriter(w)

	writeTimeStats(out, report.Time)
	writeStationStats(out, report.Stations)
	writeDurationStats(out, report.Duration)
	writeUserStats(out, report.Users)

	return out.Flush()
}

func writeTimeStats(out *bufio.Writer, section stats.Section[calculator.TimeStats]) {
	Banner(out, "Calculating The Most Frequent Times of Travel...")

	month, day, hour := Undefined, Undefined, Undefined
	if section.Err == nil {
		month = section.Stats.Month.String()
		day = section.Stats.Weekday.String()
		hour = fmt.Sprintf("%d", section.Stats.Hour)
	}

	statistic(out, "Most common month", month)
	statistic(out, "Most common day of week", day)
	statistic(out, "Most common start hour", hour)

	elapsed(out, section.Elapsed.Seconds())
}

func writeStationStats(out *bufio.Writer, section stats.Section[calculator.StationStats]) {
	Banner(out, "Calculating The Most Popular Stations and Trip...")

	start, end, trip := Undefined, Undefined, Undefined
	if section.Err == nil {
		start = section.Stats.StartStation
		end = section.Stats.EndStation
		trip = section.Stats.Trip
	}

	statistic(out, "Most common start station", start)
	statistic(out, "Most common end station", end)
	statistic(out, "Most common trip", trip)

	elapsed(out, section.Elapsed.Seconds())
}

func writeDurationStats(out *bufio.Writer, section stats.Section[calculator.DurationStats]) {
	Banner(out, "Calculating Trip Duration...")

	total, mean := Undefined, Undefined
	if section.Err == nil {
		total = FormatComponents(calculator.Decompose(section.Stats.Total))
		mean = FormatComponents(calculator.Decompose(section.Stats.Mean))
	}

	statistic(out, "Total travel time", total)
	statistic(out, "Mean travel time", mean)

	elapsed(out, section.Elapsed.Seconds())
}

func writeUserStats(out *bufio.Writer, section stats.Section[calculator.UserStats]) {
	Banner(out, "Calculating User Stats...")

	users := section.Stats

	heading(out, "Distribution by user types")
	if users.UserTypesErr != nil {
		fmt.Fprintf(out, "%s\n", Undefined)
	} else {
		writeDistribution(out, users.UserTypes)
	}

	if users.GendersErr != nil || users.Genders != nil {
		heading(out, "Distribution by gender")
		if users.GendersErr != nil {
			fmt.Fprintf(out, "%s\n", Undefined)
		} else {
			writeDistribution(out, *users.Genders)
		}
	}

	if users.BirthYearsErr != nil || users.BirthYears != nil {
		heading(out, "Birth year statistics")

		oldest, youngest, common := Undefined, Undefined, Undefined
		if users.BirthYearsErr == nil {
			oldest = fmt.Sprintf("%d", users.BirthYears.Earliest)
			youngest = fmt.Sprintf("%d", users.BirthYears.Latest)
			common = fmt.Sprintf("%d", users.BirthYears.MostCommon)
		}

		fmt.Fprintf(out, "> Birth year of oldest user:\n  %s\n", oldest)
		statistic(out, "Birth year of youngest user", youngest)
		statistic(out, "Most common birth year", common)
	}

	fmt.Fprintln(out)
	elapsed(out, section.Elapsed.Seconds())
}

func writeDistribution(out *bufio.Writer, distribution calculator.Distribution) {
	for _, share := range distribution.Shares {
		fmt.Fprintf(out, "%s:\t%d (%.2f%%)\n", share.Category, share.Count, share.Percent)
	}
}

func FormatComponents(c calculator.Components) string {
	return fmt.Sprintf("%d day(s), %d hour(s), %d minute(s), %d second(s)", c.Days, c.Hours, c.Minutes, c.Seconds)
}

func statistic(out *bufio.Writer, label string, value string) {
	fmt.Fprintf(out, "\n> %s:\n  %s\n", label, value)
}

func heading(out *bufio.Writer, title string) {
	fmt.Fprintf(out, "\n%s:\n%s\n\n", title, rule)
}

func elapsed(out *bufio.Writer, seconds float64) {
	fmt.Fprintf(out, "\nThis took %.3f seconds.\n\n", seconds)
}

// WritePage prints each trip as "Trip ID: n" followed by its fields.
func WritePage(w io.Writer, page viewer.Page) error {
	out := bufio.NewWriter(w)

	fmt.Fprintln(out)
	for _, entry := range page.Entries {
		fmt.Fprintf(out, "Trip ID: %d\n", entry.ID)
		for _, field := range entry.Fields {
			fmt.Fprintf(out, "%s: %s\n", field.Name, field.Value)
		}
		fmt.Fprintln(out)
	}

	return out.Flush()
}

// WriteHeader introduces a report with the query it answers.
func WriteHeader(w io.Writer, city string, month string, day string, trips int) error {
	if month == "" {
		month = "all months"
	}
	if day == "" {
		day = "all days"
	}

	_, err := fmt.Fprintf(w, "\n%s: %s, %s (%d trips)\n\n", util.TitleCase(city), util.TitleCase(month), util.TitleCase(day), trips)
	return err
}
