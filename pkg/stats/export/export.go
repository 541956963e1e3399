package export

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/rs/zerolog/log"
	"github.com/travigo/bikeshare/pkg/stats/viewer"
	"github.com/travigo/bikeshare/pkg/tripdata"
	"github.com/xuri/excelize/v2"
)

const (
	FormatParquet = "parquet"
	FormatXLSX    = "xlsx"
)

var Formats = []string{FormatParquet, FormatXLSX}

var ErrUnknownFormat = errors.New("unknown export format")

const sheetName = "Trips"

// batchSize is how many trips are buffered between parquet flushes and how
// many spreadsheet rows are built per viewer page.
const batchSize = 1000

type TripRow struct {
	ID           int64     `parquet:"id"`
	StartTime    time.Time `parquet:"start_time"`
	EndTime      time.Time `parquet:"end_time"`
	StartStation string    `parquet:"start_station"`
	EndStation   string    `parquet:"end_station"`
	UserType     string    `parquet:"user_type"`
	Gender       *string   `parquet:"gender"`
	BirthYear    *int64    `parquet:"birth_year"`
}

func newTripRow(record tripdata.TripRecord, schema tripdata.Schema) TripRow {
	row := TripRow{
		ID:           int64(record.Index),
		StartTime:    record.StartTime,
		EndTime:      record.EndTime,
		StartStation: record.StartStation,
		EndStation:   record.EndStation,
		UserType:     record.UserType,
	}

	if schema.Gender && record.Gender != "" {
		gender := record.Gender
		row.Gender = &gender
	}
	if schema.BirthYear && record.HasBirthYear {
		birthYear := int64(record.BirthYear)
		row.BirthYear = &birthYear
	}

	return row
}

// Write exports every trip in the collection in the given format and returns
// how many were written.
func Write(w io.Writer, format string, collection *tripdata.Collection) (int, error) {
	var written int
	var err error

	switch format {
	case FormatParquet:
		written, err = WriteParquet(w, collection)
	case FormatXLSX:
		written, err = WriteSpreadsheet(w, collection)
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	if err != nil {
		return written, err
	}

	log.Info().
		Str("city", collection.City).
		Str("format", format).
		Int("trips", written).
		Msg("Exported trips")

	return written, nil
}

func WriteParquet(w io.Writer, collection *tripdata.Collection) (int, error) {
	writer := parquet.NewWriter(w, parquet.SchemaOf(new(TripRow)))

	written := 0
	for _, record := range collection.Records {
		if err := writer.Write(newTripRow(record, collection.Schema)); err != nil {
			return written, fmt.Errorf("writing trip %d: %w", record.Index, err)
		}
		written += 1

		if written%batchSize == 0 {
			if err := writer.Flush(); err != nil {
				return written, err
			}
		}
	}

	if err := writer.Close(); err != nil {
		return written, err
	}

	return written, nil
}

// WriteSpreadsheet lays the trips out one per row with the same columns the
// trip viewer shows, headed by the trip ID.
func WriteSpreadsheet(w io.Writer, collection *tripdata.Collection) (int, error) {
	file := excelize.NewFile()
	defer file.Close()

	if err := file.SetSheetName("Sheet1", sheetName); err != nil {
		return 0, err
	}

	cursor, err := viewer.NewCursor(collection, batchSize)
	if err != nil {
		return 0, err
	}

	header := []interface{}{"Trip ID"}
	for _, column := range viewer.Columns(collection.Schema) {
		header = append(header, column)
	}
	if err := file.SetSheetRow(sheetName, "A1", &header); err != nil {
		return 0, err
	}

	written := 0
	viewer.Walk(cursor, func(page viewer.Page) bool {
		for _, entry := range page.Entries {
			row := []interface{}{entry.ID}
			for _, field := range entry.Fields {
				row = append(row, field.Value)
			}

			var cell string
			cell, err = excelize.CoordinatesToCellName(1, written+2)
			if err != nil {
				return false
			}
			if err = file.SetSheetRow(sheetName, cell, &row); err != nil {
				return false
			}
			written += 1
		}
		return true
	})
	if err != nil {
		return written, err
	}

	if err := file.Write(w); err != nil {
		return written, err
	}

	return written, nil
}
