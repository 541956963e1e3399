package dataimporter

import (
	"github.com/travigo/bikeshare/pkg/tripdata"
	"github.com/travigo/bikeshare/pkg/util"
)

// Filter narrows a collection to trips starting in month and on day. Empty
// values match everything. The input collection is not modified.
func Filter(collection *tripdata.Collection, month string, day string) *tripdata.Collection {
	return FilterDay(FilterMonth(collection, month), day)
}

func FilterMonth(collection *tripdata.Collection, month string) *tripdata.Collection {
	if month == "" {
		return collection
	}

	return collection.WithRecords(util.Filter(collection.Records, func(record tripdata.TripRecord) bool {
		return tripdata.MonthMatches(record.StartTime, month)
	}))
}

func FilterDay(collection *tripdata.Collection, day string) *tripdata.Collection {
	if day == "" {
		return collection
	}

	return collection.WithRecords(util.Filter(collection.Records, func(record tripdata.TripRecord) bool {
		return tripdata.WeekdayMatches(record.StartTime, day)
	}))
}
