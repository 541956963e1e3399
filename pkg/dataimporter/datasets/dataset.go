package datasets

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"golang.org/x/exp/slices"
)

var ErrUnknownCity = errors.New("unknown city")

// DataSet maps one supported city to its trip-history file.
type DataSet struct {
	Identifier string `yaml:"identifier"`
	Name       string `yaml:"name"`
	Source     string `yaml:"source"`
}

// Registry is the fixed table of supported cities. It is built once and never
// modified, so it can be handed to a loader and shared freely.
type Registry struct {
	datasets map[string]DataSet
}

func NewRegistry(dataDir string, datasets ...DataSet) (Registry, error) {
	registry := Registry{datasets: map[string]DataSet{}}

	for _, dataset := range datasets {
		identifier := strings.ToLower(strings.TrimSpace(dataset.Identifier))
		if identifier == "" {
			return Registry{}, errors.New("dataset has no identifier")
		}
		if dataset.Source == "" {
			return Registry{}, fmt.Errorf("dataset %s has no source", identifier)
		}
		if _, exists := registry.datasets[identifier]; exists {
			return Registry{}, fmt.Errorf("dataset %s registered twice", identifier)
		}

		dataset.Identifier = identifier
		if dataset.Name == "" {
			dataset.Name = identifier
		}
		if !filepath.IsAbs(dataset.Source) {
			dataset.Source = filepath.Join(dataDir, dataset.Source)
		}

		registry.datasets[identifier] = dataset
	}

	return registry, nil
}

// Default is the built-in table of the three cities the service publishes.
func Default(dataDir string) Registry {
	registry, _ := NewRegistry(dataDir,
		DataSet{Identifier: "chicago", Name: "Chicago", Source: "chicago.csv"},
		DataSet{Identifier: "new york", Name: "New York City", Source: "new_york_city.csv"},
		DataSet{Identifier: "washington", Name: "Washington", Source: "washington.csv"},
	)

	return registry
}

func (r Registry) Get(city string) (DataSet, error) {
	dataset, exists := r.datasets[strings.ToLower(strings.TrimSpace(city))]
	if !exists {
		return DataSet{}, fmt.Errorf("%w: %q", ErrUnknownCity, city)
	}

	return dataset, nil
}

// Cities returns the registered identifiers in alphabetical order.
func (r Registry) Cities() []string {
	cities := make([]string, 0, len(r.datasets))
	for identifier := range r.datasets {
		cities = append(cities, identifier)
	}
	slices.Sort(cities)

	return cities
}

func (r Registry) DataSets() []DataSet {
	var all []DataSet
	for _, city := range r.Cities() {
		all = append(all, r.datasets[city])
	}

	return all
}
