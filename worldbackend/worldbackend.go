// Package worldbackend defines the pluggable interface a Play-phase
// handler would use to read/write world state. The core ships only a
// trivial stub: it loads and validates the configured worlds.yaml
// manifest and exposes it, but persistent chunk formats are an explicit
// Non-goal.
package worldbackend

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Worlds is the §5-supplemented worlds manifest shape: which dimensions
// exist, which on-disk worlds back each one, and which dimension new
// players spawn into.
type Worlds struct {
	Config     WorldsConfig               `yaml:"config"`
	Worlds     map[string]map[string]any  `yaml:"worlds"`
	Dimensions map[string]DimensionConfig `yaml:"dimensions"`
}

// WorldsConfig names the dimension new players spawn into.
type WorldsConfig struct {
	DefaultDimension string `yaml:"default_dimension"`
}

// DimensionConfig lists the world names backing one dimension.
type DimensionConfig struct {
	Worlds []string `yaml:"worlds"`
}

// LoadManifest reads a worlds.yaml from path and validates it. An empty
// path returns a zero-value (no worlds configured) manifest, valid for
// Status/Login-only deployments.
func LoadManifest(path string) (Worlds, error) {
	if path == "" {
		return Worlds{}, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return Worlds{}, fmt.Errorf("worldbackend: read %s: %w", path, err)
	}
	var w Worlds
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return Worlds{}, fmt.Errorf("worldbackend: parse %s: %w", path, err)
	}
	if err := w.validate(); err != nil {
		return Worlds{}, fmt.Errorf("worldbackend: %s: %w", path, err)
	}
	return w, nil
}

func (w Worlds) validate() error {
	if w.Config.DefaultDimension == "" {
		return nil // no worlds configured at all is valid (tests, bare startup)
	}
	if _, ok := w.Dimensions[w.Config.DefaultDimension]; !ok {
		return fmt.Errorf("default_dimension %q is not declared in dimensions", w.Config.DefaultDimension)
	}
	for name, dim := range w.Dimensions {
		for _, worldName := range dim.Worlds {
			if _, ok := w.Worlds[worldName]; !ok {
				return fmt.Errorf("dimension %q references undeclared world %q", name, worldName)
			}
		}
	}
	return nil
}

// Backend is the seam a gameplay layer plugs into; the core never calls
// anything beyond DefaultDimension/Dimensions.
type Backend interface {
	// DefaultDimension is the dimension new players spawn into.
	DefaultDimension() string
	// Dimensions lists the configured dimension names.
	Dimensions() []string
}

// FileBackend is a trivial Backend that hands back the loaded manifest
// unopened: it never touches disk beyond what LoadManifest already read,
// per spec.md's "persistent world chunk formats" Non-goal.
type FileBackend struct {
	manifest Worlds
}

// New wraps a loaded worlds manifest as a Backend.
func New(manifest Worlds) *FileBackend {
	return &FileBackend{manifest: manifest}
}

func (b *FileBackend) DefaultDimension() string {
	return b.manifest.Config.DefaultDimension
}

func (b *FileBackend) Dimensions() []string {
	names := make([]string, 0, len(b.manifest.Dimensions))
	for name := range b.manifest.Dimensions {
		names = append(names, name)
	}
	return names
}
