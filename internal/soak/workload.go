package soak

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/TheBitDrifter/depot"
)

// Workload describes one soak run.
type Workload struct {
	// Rounds is the number of simulation rounds.
	Rounds int `yaml:"rounds"`
	// Entities is the live population topped up at the start of each round.
	Entities int `yaml:"entities"`
	// MaxTTL bounds how many rounds a spawned entity survives.
	MaxTTL int `yaml:"max_ttl"`
	// VelocityEvery gives every n-th spawn a Velocity.
	VelocityEvery int `yaml:"velocity_every"`
	// Workers caps parallel passes; 0 means GOMAXPROCS.
	Workers int `yaml:"workers,omitempty"`
	// Storage maps component names (position, velocity, lifetime) to an
	// arena kind (dense, sparse, column). Unlisted components are dense.
	Storage map[string]string `yaml:"storage,omitempty"`
}

// LoadWorkload reads a workload file.
func LoadWorkload(path string) (*Workload, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read workload file: %w", err)
	}
	return DecodeWorkload(bytes.NewReader(data))
}

// DecodeWorkload parses and validates a workload. Unknown fields are
// rejected.
func DecodeWorkload(r io.Reader) (*Workload, error) {
	var w Workload
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&w); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := w.Validate(); err != nil {
		return nil, fmt.Errorf("invalid workload: %w", err)
	}
	return &w, nil
}

// Validate checks the workload's bounds.
func (w *Workload) Validate() error {
	var errs []error
	if w.Rounds <= 0 {
		errs = append(errs, errors.New("rounds must be positive"))
	}
	if w.Entities <= 0 {
		errs = append(errs, errors.New("entities must be positive"))
	}
	if w.MaxTTL <= 0 {
		errs = append(errs, errors.New("max_ttl must be positive"))
	}
	if w.VelocityEvery <= 0 {
		errs = append(errs, errors.New("velocity_every must be positive"))
	}
	if w.Workers < 0 {
		errs = append(errs, errors.New("workers must not be negative"))
	}
	for name, kind := range w.Storage {
		switch name {
		case "position", "velocity", "lifetime":
		default:
			errs = append(errs, fmt.Errorf("unknown component %q", name))
		}
		if _, err := ParseStorageKind(kind); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// kind returns the arena kind configured for a component.
func (w *Workload) kind(name string) depot.StorageKind {
	k, _ := ParseStorageKind(w.Storage[name])
	return k
}

// ParseStorageKind maps a storage name to its kind. The empty string means
// dense.
func ParseStorageKind(s string) (depot.StorageKind, error) {
	switch s {
	case "", "dense":
		return depot.Dense, nil
	case "sparse":
		return depot.Sparse, nil
	case "column":
		return depot.Column, nil
	}
	return 0, fmt.Errorf("unknown storage kind %q", s)
}
