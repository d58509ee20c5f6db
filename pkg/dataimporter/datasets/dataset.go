package datasets

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type DataSet struct {
	Identifier string        `yaml:"identifier"`
	Format     DataSetFormat `yaml:"format"`

	Provider Provider `yaml:"provider"`

	Source string `yaml:"source"`

	SupportedObjects SupportedObjects `yaml:"supported_objects"`
}

type DataSetFormat string

const (
	DataSetFormatGPX DataSetFormat = "gpx"
)

type Provider struct {
	Name    string `yaml:"name"`
	Website string `yaml:"website"`
}

type SupportedObjects struct {
	Tracks    bool `yaml:"tracks"`
	Waypoints bool `yaml:"waypoints"`
}

// LoadRegistry reads the yaml list of known datasets.
func LoadRegistry(path string) ([]DataSet, error) {
	registryBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var registry []DataSet
	if err := yaml.Unmarshal(registryBytes, &registry); err != nil {
		return nil, err
	}

	return registry, nil
}

func Get(registry []DataSet, identifier string) (DataSet, error) {
	for _, dataset := range registry {
		if dataset.Identifier == identifier {
			return dataset, nil
		}
	}

	return DataSet{}, fmt.Errorf("dataset %s not found in registry", identifier)
}
