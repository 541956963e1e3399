package dataimporter

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/jinzhu/copier"
	"github.com/travigo/bikeshare/pkg/tripdata"
)

const (
	// The leading index column has no name in the city files; it is renamed
	// to this before decoding.
	columnTripID       = "Trip ID"
	columnStartTime    = "Start Time"
	columnEndTime      = "End Time"
	columnTripDuration = "Trip Duration"
	columnStartStation = "Start Station"
	columnEndStation   = "End Station"
	columnUserType     = "User Type"
	columnGender       = "Gender"
	columnBirthYear    = "Birth Year"
)

var requiredColumns = []string{columnStartTime, columnEndTime, columnStartStation, columnEndStation, columnUserType}

const (
	minBirthYear = 1800
	maxBirthYear = 2100
)

var timestampLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// tripRow is one raw line of a city file. Names that differ from TripRecord
// are converted by hand, the rest are copied across.
type tripRow struct {
	TripID       string `csv:"Trip ID"`
	StartedAt    string `csv:"Start Time"`
	EndedAt      string `csv:"End Time"`
	TripDuration string `csv:"Trip Duration"`
	StartStation string `csv:"Start Station"`
	EndStation   string `csv:"End Station"`
	UserType     string `csv:"User Type"`
	Gender       string `csv:"Gender"`
	Born         string `csv:"Birth Year"`
}

// toRecord converts the row at position. When the file carries an index
// column its value is the record's ID, otherwise the position is.
func (r *tripRow) toRecord(position int, indexed bool, schema tripdata.Schema) (tripdata.TripRecord, error) {
	record := tripdata.TripRecord{}
	if err := copier.Copy(&record, r); err != nil {
		return record, err
	}

	record.Index = position
	if indexed {
		id, err := strconv.Atoi(strings.TrimSpace(r.TripID))
		if err != nil {
			return record, fmt.Errorf("%s: invalid id %q", columnTripID, r.TripID)
		}
		record.Index = id
	}

	var err error
	if record.StartTime, err = parseTimestamp(r.StartedAt); err != nil {
		return record, fmt.Errorf("%s: %w", columnStartTime, err)
	}
	if record.EndTime, err = parseTimestamp(r.EndedAt); err != nil {
		return record, fmt.Errorf("%s: %w", columnEndTime, err)
	}

	if !schema.TripDuration {
		record.TripDuration = ""
	}
	if !schema.Gender {
		record.Gender = ""
	}

	if schema.BirthYear {
		record.BirthYear, record.HasBirthYear, err = parseBirthYear(r.Born)
		if err != nil {
			return record, fmt.Errorf("%s: %w", columnBirthYear, err)
		}
	}

	return record, nil
}

func parseTimestamp(value string) (time.Time, error) {
	value = strings.TrimSpace(value)

	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognised timestamp %q", value)
}

// parseBirthYear accepts "1992" and "1992.0"; blank means not recorded.
func parseBirthYear(value string) (int, bool, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, false, nil
	}

	year, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsInf(year, 0) || math.IsNaN(year) || year != math.Trunc(year) {
		return 0, false, fmt.Errorf("invalid year %q", value)
	}
	if year < minBirthYear || year > maxBirthYear {
		return 0, false, fmt.Errorf("year %q outside %d-%d", value, minBirthYear, maxBirthYear)
	}

	return int(year), true, nil
}
