package dataimporter

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/kr/pretty"
	"github.com/rs/zerolog/log"
	"github.com/travigo/bikeshare/pkg/dataimporter/datasets"
	"github.com/travigo/bikeshare/pkg/tripdata"
)

type Loader struct {
	registry datasets.Registry
}

func NewLoader(registry datasets.Registry) *Loader {
	return &Loader{registry: registry}
}

func (l *Loader) Registry() datasets.Registry {
	return l.registry
}

// Load resolves the city, parses its file and applies the month then the day
// filter. An empty result is not an error.
func (l *Loader) Load(criteria tripdata.Criteria) (*tripdata.Collection, error) {
	criteria = criteria.Normalise()

	dataset, err := l.registry.Get(criteria.City)
	if err != nil {
		return nil, err
	}

	log.Debug().Msgf("Loading %s", pretty.Sprint(dataset))

	collection, err := l.Parse(dataset)
	if err != nil {
		return nil, err
	}
	total := collection.Len()

	collection = FilterMonth(collection, criteria.Month)
	collection = FilterDay(collection, criteria.Day)

	log.Info().
		Str("city", dataset.Identifier).
		Str("month", criteria.Month).
		Str("day", criteria.Day).
		Int("total", total).
		Int("matched", collection.Len()).
		Msg("Loaded trip history")

	return collection, nil
}

// Parse reads a dataset's full, unfiltered trip history.
func (l *Loader) Parse(dataset datasets.DataSet) (*tripdata.Collection, error) {
	file, err := os.Open(dataset.Source)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrSourceMissing, dataset.Source)
	} else if err != nil {
		return nil, err
	}
	defer file.Close()

	history := &TripHistory{}
	if err := history.ParseFile(file); err != nil {
		return nil, fmt.Errorf("%s: %w", dataset.Source, err)
	}

	return history.Collection(dataset.Identifier), nil
}
