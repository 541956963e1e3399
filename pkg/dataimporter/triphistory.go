package dataimporter

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/rs/zerolog/log"
	"github.com/travigo/bikeshare/pkg/tripdata"
	"golang.org/x/exp/slices"
)

// TripHistory is the parsed contents of one city's trip-history CSV.
type TripHistory struct {
	Schema  tripdata.Schema
	Records []tripdata.TripRecord
}

func (t *TripHistory) ParseFile(reader io.Reader) error {
	// Allow rows with a trailing column missing, washington.csv has a few
	gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		r := csv.NewReader(in)
		r.FieldsPerRecord = -1
		return &indexedReader{Reader: r}
	})

	body, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	body = bytes.TrimPrefix(body, []byte("\xef\xbb\xbf"))

	header, err := csv.NewReader(bytes.NewReader(body)).Read()
	if errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: file is empty", ErrParse)
	} else if err != nil {
		return fmt.Errorf("%w: header: %s", ErrParse, err)
	}

	for _, column := range requiredColumns {
		if !slices.Contains(header, column) {
			return fmt.Errorf("%w: missing column %q", ErrParse, column)
		}
	}

	indexed := strings.TrimSpace(header[0]) == ""

	t.Schema = tripdata.Schema{
		TripDuration: slices.Contains(header, columnTripDuration),
		Gender:       slices.Contains(header, columnGender),
		BirthYear:    slices.Contains(header, columnBirthYear),
	}

	var rows []*tripRow
	if err := gocsv.UnmarshalBytes(body, &rows); err != nil {
		return fmt.Errorf("%w: %s", ErrParse, err)
	}

	records := make([]tripdata.TripRecord, 0, len(rows))
	for position, row := range rows {
		record, err := row.toRecord(position, indexed, t.Schema)
		if err != nil {
			// +2 for the header and 1-based line numbers
			return fmt.Errorf("%w: line %d: %s", ErrParse, position+2, err)
		}

		records = append(records, record)
	}
	t.Records = records

	log.Debug().
		Int("records", len(records)).
		Bool("indexed", indexed).
		Bool("gender", t.Schema.Gender).
		Bool("birthyear", t.Schema.BirthYear).
		Msg("Parsed trip history")

	return nil
}

func (t *TripHistory) Collection(city string) *tripdata.Collection {
	return &tripdata.Collection{
		City:    city,
		Schema:  t.Schema,
		Records: t.Records,
	}
}

// indexedReader names the blank first header cell so gocsv can decode the
// index column into tripRow.TripID.
type indexedReader struct {
	*csv.Reader
	headerDone bool
}

func (r *indexedReader) Read() ([]string, error) {
	row, err := r.Reader.Read()
	if err == nil && !r.headerDone {
		r.headerDone = true
		nameIndexColumn(row)
	}

	return row, err
}

func (r *indexedReader) ReadAll() ([][]string, error) {
	rows, err := r.Reader.ReadAll()
	if err == nil && !r.headerDone && len(rows) > 0 {
		r.headerDone = true
		nameIndexColumn(rows[0])
	}

	return rows, err
}

func nameIndexColumn(header []string) {
	if len(header) > 0 && strings.TrimSpace(header[0]) == "" {
		header[0] = columnTripID
	}
}
