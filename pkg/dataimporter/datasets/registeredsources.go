package datasets

import (
	"bytes"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

type registryFile struct {
	Datasets []DataSet `yaml:"datasets"`
}

// LoadRegistry reads a city table from a YAML file. Relative sources are
// resolved against dataDir.
func LoadRegistry(path string, dataDir string) (Registry, error) {
	registryYaml, err := os.ReadFile(path)
	if err != nil {
		return Registry{}, err
	}

	log.Debug().Str("path", path).Msg("Loading dataset registry")

	decoder := yaml.NewDecoder(bytes.NewReader(registryYaml))
	decoder.KnownFields(true)

	var file registryFile
	if err := decoder.Decode(&file); err != nil {
		return Registry{}, fmt.Errorf("parsing %s: %w", path, err)
	}

	return NewRegistry(dataDir, file.Datasets...)
}
