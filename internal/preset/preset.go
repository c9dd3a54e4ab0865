// Package preset provides a library of named measurement sets: a few
// built-in teaching cases plus an optional YAML file of user cases.
package preset

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"fracture-viewer/internal/deformity"
)

// Case is one named measurement set.
type Case struct {
	Name         string                 `yaml:"name"`
	Measurements deformity.Measurements `yaml:"measurements"`
}

// Library is an ordered list of cases.
type Library struct {
	Cases []Case `yaml:"cases"`
}

// Load reads a YAML case library. Unlike form input, a broken preset file
// is a real error: it was authored, not typed into a live form.
func Load(path string) (Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Library{}, fmt.Errorf("preset: read %s: %w", path, err)
	}

	var lib Library
	if err := yaml.Unmarshal(data, &lib); err != nil {
		return Library{}, fmt.Errorf("preset: parse %s: %w", path, err)
	}

	for i, c := range lib.Cases {
		if c.Name == "" {
			return Library{}, fmt.Errorf("preset: case %d in %s has no name", i, path)
		}
	}
	return lib, nil
}

// Default returns the built-in teaching cases.
func Default() Library {
	return Library{Cases: []Case{
		{
			Name: "anatomical",
			Measurements: deformity.Measurements{
				FractureLength: 300, FracturePosition: 150,
			},
		},
		{
			Name: "midshaft varus",
			Measurements: deformity.Measurements{
				FractureLength: 300, FracturePosition: 150,
				ValgusAngulation: -20,
			},
		},
		{
			Name: "distal shortening",
			Measurements: deformity.Measurements{
				FractureLength: 300, FracturePosition: 220,
				ProximalDisplacement: 25, MedialDisplacement: 8,
			},
		},
		{
			Name: "rotated anterior offset",
			Measurements: deformity.Measurements{
				FractureLength: 300, FracturePosition: 150,
				RotationalAngulation: 45, AnteriorDisplacement: 12,
			},
		},
	}}
}

// ByName returns the case with the given name, if present.
func (l Library) ByName(name string) (Case, bool) {
	for _, c := range l.Cases {
		if c.Name == name {
			return c, true
		}
	}
	return Case{}, false
}
