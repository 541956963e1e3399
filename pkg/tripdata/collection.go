package tripdata

// Schema describes which optional columns a city's source exposes.
type Schema struct {
	TripDuration bool
	Gender       bool
	BirthYear    bool
}

// Collection is the working set of trips for one query. It is built once by
// the loader and only read afterwards.
type Collection struct {
	City    string
	Schema  Schema
	Records []TripRecord
}

func (c *Collection) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Records)
}

func (c *Collection) Empty() bool {
	return c.Len() == 0
}

// WithRecords returns a new collection sharing the city and schema but
// holding the given records.
func (c *Collection) WithRecords(records []TripRecord) *Collection {
	return &Collection{
		City:    c.City,
		Schema:  c.Schema,
		Records: records,
	}
}
