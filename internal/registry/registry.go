package registry

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/spf13/afero"
	"go.yaml.in/yaml/v3"

	"github.com/nemtech/catapult-scripts/internal/bump"
	"github.com/nemtech/catapult-scripts/internal/eslint"
	"github.com/nemtech/catapult-scripts/internal/platform"
)

//go:embed packages.yaml
var rawPackages []byte

// Registry is the full set of package tables.
type Registry struct {
	Version bump.Plan        `yaml:"version"`
	Lint    []eslint.Package `yaml:"lint"`
}

var (
	once       sync.Once
	defaults   *Registry
	defaultErr error
)

// Default returns the compiled-in registry. Callers get their own copy.
func Default() (*Registry, error) {
	once.Do(func() {
		defaults, defaultErr = Parse(rawPackages)
		if defaultErr != nil {
			defaultErr = fmt.Errorf("embedded packages.yaml: %w", defaultErr)
		}
	})
	if defaultErr != nil {
		return nil, defaultErr
	}
	return defaults.clone(), nil
}

// Load reads a registry from a YAML file.
func Load(fs afero.Fs, path string) (*Registry, error) {
	data, err := platform.ReadFile(fs, path)
	if err != nil {
		return nil, err
	}
	r, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing registry %s: %w", path, err)
	}
	return r, nil
}

// Parse decodes and validates a registry document. Unknown fields and option
// names are rejected. A dependent without a dependency depends on the self
// package.
func Parse(data []byte) (*Registry, error) {
	var r Registry
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&r); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	for i := range r.Version.Dependents {
		if r.Version.Dependents[i].Dependency == "" {
			r.Version.Dependents[i].Dependency = r.Version.Self
		}
	}
	for i := range r.Lint {
		if r.Lint[i].Option == "" {
			r.Lint[i].Option = eslint.None
		}
	}

	if err := r.validate(); err != nil {
		return nil, err
	}
	return &r, nil
}

func (r *Registry) validate() error {
	if r.Version.Self == "" {
		return fmt.Errorf("version.self is required")
	}
	for i, d := range r.Version.Dependents {
		if d.Name == "" {
			return fmt.Errorf("version.dependents[%d]: name is required", i)
		}
		if d.Name == r.Version.Self {
			return fmt.Errorf("version.dependents[%d]: %s cannot depend on itself", i, d.Name)
		}
	}

	seen := make(map[string]bool, len(r.Lint))
	for i, p := range r.Lint {
		if p.Name == "" {
			return fmt.Errorf("lint[%d]: name is required", i)
		}
		if seen[p.Name] {
			return fmt.Errorf("lint[%d]: package %s listed twice", i, p.Name)
		}
		seen[p.Name] = true
	}
	return nil
}

func (r *Registry) clone() *Registry {
	c := &Registry{
		Version: bump.Plan{
			Self:       r.Version.Self,
			Dependents: append([]bump.Dependent(nil), r.Version.Dependents...),
		},
		Lint: make([]eslint.Package, len(r.Lint)),
	}
	for i, p := range r.Lint {
		p.Environments = append([]string(nil), p.Environments...)
		c.Lint[i] = p
	}
	return c
}
