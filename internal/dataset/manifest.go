package dataset

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Manifest is an optional YAML file that replaces the built-in source
// registry. It exists so renamed extract files (the published CSVs carry
// names like "Type of Weapon Involved by Offense_09-30-2025.csv") can be
// mapped without recompiling.
//
//	datasets:
//	  - key: weapon_type
//	    label: Type of Weapon Involved by Offense
//	    file: Type of Weapon Involved by Offense_09-30-2025.csv
//	    shape: flat
type Manifest struct {
	Datasets []ManifestEntry `yaml:"datasets"`
}

// ManifestEntry declares one dataset in the manifest.
type ManifestEntry struct {
	Key   string `yaml:"key"`
	Label string `yaml:"label"`
	File  string `yaml:"file"`
	Shape string `yaml:"shape"`
}

// LoadManifest parses a manifest file into a source set.
func LoadManifest(path string) ([]Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	return ParseManifest(data)
}

// ParseManifest parses manifest YAML into a source set.
func ParseManifest(data []byte) ([]Source, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	if len(m.Datasets) == 0 {
		return nil, fmt.Errorf("manifest declares no datasets")
	}

	seen := make(map[string]bool, len(m.Datasets))
	sources := make([]Source, 0, len(m.Datasets))
	for i, e := range m.Datasets {
		if e.Key == "" {
			return nil, fmt.Errorf("manifest entry %d: key is required", i)
		}
		if e.File == "" {
			return nil, fmt.Errorf("manifest entry %q: file is required", e.Key)
		}
		if seen[e.Key] {
			return nil, fmt.Errorf("manifest entry %q: duplicate key", e.Key)
		}
		seen[e.Key] = true

		shape := ShapeFlat
		if e.Shape != "" {
			var err error
			shape, err = ParseShape(e.Shape)
			if err != nil {
				return nil, fmt.Errorf("manifest entry %q: %w", e.Key, err)
			}
		}

		sources = append(sources, Source{
			Key:   e.Key,
			Label: e.Label,
			File:  e.File,
			Shape: shape,
		})
	}

	return sources, nil
}
