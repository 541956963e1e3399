package tripdata

import "time"

type TripRecord struct {
	// The source file's index label, or the row position when it has none.
	// Kept through filtering.
	Index int

	StartTime time.Time
	EndTime   time.Time

	// As reported by the source, in seconds. Statistics use EndTime - StartTime.
	TripDuration string

	StartStation string
	EndStation   string

	UserType string

	// Only meaningful when the collection Schema says the column exists
	Gender       string
	BirthYear    int
	HasBirthYear bool
}

func (t *TripRecord) Duration() time.Duration {
	return t.EndTime.Sub(t.StartTime)
}

func (t *TripRecord) Trip() string {
	return t.StartStation + TripSeparator + t.EndStation
}

const TripSeparator = " -> "
