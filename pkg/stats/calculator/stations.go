package calculator

import (
	"github.com/travigo/bikeshare/pkg/tripdata"
)

type StationStats struct {
	StartStation string
	EndStation   string
	Trip         string
}

func GetStationStats(collection *tripdata.Collection) (StationStats, error) {
	if collection.Empty() {
		return StationStats{}, ErrUndefinedStatistic
	}

	startStations := map[string]int{}
	endStations := map[string]int{}
	trips := map[string]int{}

	for _, record := range collection.Records {
		startStations[record.StartStation] += 1
		endStations[record.EndStation] += 1
		trips[record.Trip()] += 1
	}

	startStation, _ := Mode(startStations)
	endStation, _ := Mode(endStations)
	trip, _ := Mode(trips)

	return StationStats{
		StartStation: startStation,
		EndStation:   endStation,
		Trip:         trip,
	}, nil
}
