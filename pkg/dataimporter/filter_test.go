package dataimporter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/travigo/bikeshare/pkg/tripdata"
)

func filterFixture() *tripdata.Collection {
	starts := []time.Time{
		time.Date(2017, time.January, 2, 9, 0, 0, 0, time.UTC),  // Monday
		time.Date(2017, time.February, 3, 9, 0, 0, 0, time.UTC), // Friday
		time.Date(2017, time.January, 6, 9, 0, 0, 0, time.UTC),  // Friday
		time.Date(2017, time.March, 6, 9, 0, 0, 0, time.UTC),    // Monday
		time.Date(2017, time.January, 9, 9, 0, 0, 0, time.UTC),  // Monday
	}

	collection := &tripdata.Collection{City: "chicago", Schema: tripdata.Schema{Gender: true}}
	for i, start := range starts {
		collection.Records = append(collection.Records, tripdata.TripRecord{
			Index:     i,
			StartTime: start,
			EndTime:   start.Add(10 * time.Minute),
		})
	}

	return collection
}

func TestFilterNoPredicates(t *testing.T) {
	collection := filterFixture()

	assert.Equal(t, collection.Records, Filter(collection, "", "").Records)
}

func TestFilterMonthIsOrderedSubset(t *testing.T) {
	collection := filterFixture()

	for _, month := range tripdata.Months {
		filtered := FilterMonth(collection, month)

		position := 0
		for _, record := range filtered.Records {
			assert.True(t, tripdata.MonthMatches(record.StartTime, month))

			for position < len(collection.Records) && collection.Records[position].Index != record.Index {
				position++
			}
			assert.Less(t, position, len(collection.Records), "record %d out of order", record.Index)
			position++
		}
	}
}

func TestFilterCombined(t *testing.T) {
	collection := filterFixture()

	assert.Equal(t, []int{0, 2, 4}, indexes(FilterMonth(collection, "JANUARY")))
	assert.Equal(t, []int{1, 2}, indexes(FilterDay(collection, "friday")))
	assert.Equal(t, []int{0, 4}, indexes(Filter(collection, "january", "monday")))
	assert.Equal(t, indexes(Filter(collection, "january", "monday")), indexes(FilterMonth(FilterDay(collection, "monday"), "january")))

	assert.Len(t, collection.Records, 5)
	assert.Equal(t, tripdata.Schema{Gender: true}, Filter(collection, "june", "").Schema)
}

func TestFilterEmpty(t *testing.T) {
	empty := &tripdata.Collection{City: "chicago"}

	assert.True(t, Filter(empty, "january", "monday").Empty())
	assert.True(t, FilterDay(filterFixture(), "saturday").Empty())
}
