// Package formats provides pluggable level pack file format parsers.
package formats

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// YAMLPack represents the YAML structure for a level pack file.
type YAMLPack struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	Levels   []YAMLLevel       `yaml:"levels"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// YAMLLevel represents one level of a pack.
type YAMLLevel struct {
	Name string `yaml:"name"`
	Grid string `yaml:"grid"` // 5x5 block, rows split by newline or '/'
}

// Pack represents a parsed pack ready for use.
type Pack struct {
	ID       string
	Name     string
	Levels   []Level
	Metadata map[string]string
}

// Level is one named grid template.
type Level struct {
	Name string
	Grid string
}

// ParseYAML parses a YAML level pack file.
func ParseYAML(data []byte) (Pack, error) {
	var yp YAMLPack
	if err := yaml.Unmarshal(data, &yp); err != nil {
		return Pack{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	if yp.ID == "" {
		return Pack{}, fmt.Errorf("pack has no id")
	}

	name := yp.Name
	if name == "" {
		name = yp.ID
	}

	pack := Pack{
		ID:       yp.ID,
		Name:     name,
		Levels:   make([]Level, 0, len(yp.Levels)),
		Metadata: yp.Metadata,
	}

	for i, l := range yp.Levels {
		lname := l.Name
		if lname == "" {
			lname = fmt.Sprintf("Level %d", i+1)
		}
		pack.Levels = append(pack.Levels, Level{Name: lname, Grid: l.Grid})
	}

	return pack, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
