package output

import "github.com/travigo/bikeshare/pkg/tripdata"

func emptyCollection() *tripdata.Collection {
	return &tripdata.Collection{City: "chicago", Schema: tripdata.Schema{Gender: true, BirthYear: true}}
}
