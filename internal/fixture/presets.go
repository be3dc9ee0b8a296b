package fixture

import (
	"fmt"
	"os"
	"slices"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Presets maps fixture names to generator requests.
//
//	fixtures:
//	  parcels:
//	    kind: polygon
//	    count: 10
//	    hole: true
//	    bbox: [0, 0, 10, 10]
type Presets struct {
	Fixtures map[string]Spec `yaml:"fixtures"`
}

// LoadPresets reads and checks a YAML preset file.
func LoadPresets(path string) (*Presets, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParsePresets(data)
}

// ParsePresets decodes preset YAML and rejects unknown kinds.
func ParsePresets(data []byte) (*Presets, error) {
	var p Presets
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, err
	}

	for name, spec := range p.Fixtures {
		if !slices.Contains(Kinds, strings.ToLower(spec.Kind)) {
			return nil, fmt.Errorf("preset %q: %w: %q", name, ErrUnknownKind, spec.Kind)
		}
	}
	return &p, nil
}

// Lookup returns the named preset.
func (p *Presets) Lookup(name string) (Spec, error) {
	if p != nil {
		if s, ok := p.Fixtures[name]; ok {
			return s, nil
		}
	}
	return Spec{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
}

// Names returns the preset names in sorted order.
func (p *Presets) Names() []string {
	if p == nil {
		return nil
	}
	names := make([]string, 0, len(p.Fixtures))
	for name := range p.Fixtures {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
