package registry

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/refrescante-ui/refrescante/internal/errors"
)

// InstalledComponent is one entry of a project manifest.
type InstalledComponent struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
}

// Manifest records which components a project has installed. It is written
// as refrescante.yml at the project root.
type Manifest struct {
	Package    string               `yaml:"package"`
	Version    string               `yaml:"version"`
	Components []InstalledComponent `yaml:"components"`
}

// LoadManifest reads and validates a project manifest.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewIOError(fmt.Sprintf("reading manifest %s", path), err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, errors.NewIOError(fmt.Sprintf("parsing manifest %s", path), err)
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}

	return &m, nil
}

// Validate checks manifest entries for missing names.
func (m *Manifest) Validate() error {
	for i, c := range m.Components {
		if c.Name == "" {
			return errors.NewIOError(fmt.Sprintf("manifest component %d has no name", i), nil)
		}
	}
	return nil
}

// ComponentNames returns the installed component names in manifest order.
func (m *Manifest) ComponentNames() []string {
	names := make([]string, 0, len(m.Components))
	for _, c := range m.Components {
		names = append(names, c.Name)
	}
	return names
}

// Has reports whether the manifest lists the named component.
func (m *Manifest) Has(name string) bool {
	for _, c := range m.Components {
		if c.Name == name {
			return true
		}
	}
	return false
}
