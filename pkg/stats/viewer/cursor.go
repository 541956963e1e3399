package viewer

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/travigo/bikeshare/pkg/tripdata"
)

const DefaultPageSize = 5

var ErrInvalidPageSize = errors.New("page size must be a positive integer")

const timestampFormat = "2006-01-02 15:04:05"

type Field struct {
	Name  string
	Value string
}

type Entry struct {
	ID     int
	Fields []Field
}

type Page struct {
	// 1-based
	Number  int
	Entries []Entry
}

// Cursor walks a collection a page at a time. It only moves forward; start a
// new cursor from the collection to see earlier pages again.
type Cursor struct {
	collection *tripdata.Collection
	pageSize   int
	position   int
	pages      int
}

func NewCursor(collection *tripdata.Collection, pageSize int) (*Cursor, error) {
	if pageSize <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPageSize, pageSize)
	}

	return &Cursor{
		collection: collection,
		pageSize:   pageSize,
	}, nil
}

// Next returns the following page, or false once every record has been shown.
func (c *Cursor) Next() (Page, bool) {
	if c.position >= c.collection.Len() {
		return Page{}, false
	}

	end := min(c.position+c.pageSize, c.collection.Len())

	page := Page{Number: c.pages + 1}
	for _, record := range c.collection.Records[c.position:end] {
		page.Entries = append(page.Entries, Entry{
			ID:     record.Index,
			Fields: fields(record, c.collection.Schema),
		})
	}

	c.position = end
	c.pages += 1

	return page, true
}

func (c *Cursor) Remaining() int {
	return c.collection.Len() - c.position
}

// Walk hands pages to visit until it returns false or the records run out.
// It returns the number of pages shown.
func Walk(cursor *Cursor, visit func(Page) bool) int {
	shown := 0

	for {
		page, ok := cursor.Next()
		if !ok {
			return shown
		}

		shown += 1
		if !visit(page) {
			return shown
		}
	}
}

// Columns names the fields every entry carries for the given schema.
func Columns(schema tripdata.Schema) []string {
	var names []string
	for _, field := range fields(tripdata.TripRecord{}, schema) {
		names = append(names, field.Name)
	}

	return names
}

func fields(record tripdata.TripRecord, schema tripdata.Schema) []Field {
	recordFields := []Field{
		{Name: "Start Time", Value: record.StartTime.Format(timestampFormat)},
		{Name: "End Time", Value: record.EndTime.Format(timestampFormat)},
	}

	if schema.TripDuration {
		recordFields = append(recordFields, Field{Name: "Trip Duration", Value: record.TripDuration})
	}

	recordFields = append(recordFields,
		Field{Name: "Start Station", Value: record.StartStation},
		Field{Name: "End Station", Value: record.EndStation},
		Field{Name: "User Type", Value: record.UserType},
	)

	if schema.Gender {
		recordFields = append(recordFields, Field{Name: "Gender", Value: record.Gender})
	}
	if schema.BirthYear {
		birthYear := ""
		if record.HasBirthYear {
			birthYear = strconv.Itoa(record.BirthYear)
		}
		recordFields = append(recordFields, Field{Name: "Birth Year", Value: birthYear})
	}

	return recordFields
}
