package gen

import (
	"sort"

	"gopkg.in/yaml.v3"

	"sourcegen/internal/errors"
)

// ManifestEntry describes one generated class.
type ManifestEntry struct {
	Kind      string `yaml:"kind"`
	Source    string `yaml:"source"`
	Class     string `yaml:"class"`
	Path      string `yaml:"path"`
	Constants int    `yaml:"constants,omitempty"`
}

// Manifest lists what a run generated and what it skipped.
type Manifest struct {
	Generated []ManifestEntry `yaml:"generated"`
	Skipped   []string        `yaml:"skipped,omitempty"`
}

// Merge appends the entries of other.
func (m *Manifest) Merge(other Manifest) {
	m.Generated = append(m.Generated, other.Generated...)
	m.Skipped = append(m.Skipped, other.Skipped...)
}

// Sort orders entries by path and skipped sources by name, so manifests from
// concurrent runs are stable.
func (m *Manifest) Sort() {
	sort.SliceStable(m.Generated, func(i, j int) bool {
		return m.Generated[i].Path < m.Generated[j].Path
	})
	sort.Strings(m.Skipped)
}

// Marshal serializes the manifest to YAML.
func (m *Manifest) Marshal() ([]byte, error) {
	out, err := yaml.Marshal(m)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal manifest")
	}

	return out, nil
}
