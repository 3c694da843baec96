// SPDX-License-Identifier: MIT

package preset

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/katalvlaran/rref/matrix"
	"gopkg.in/yaml.v3"
)

var (
	// ErrUnknownPreset is returned by Lookup for a missing name.
	ErrUnknownPreset = errors.New("preset: unknown preset")

	// ErrInvalidPreset is returned for entries without a name or rows, or
	// for duplicate names.
	ErrInvalidPreset = errors.New("preset: invalid preset")
)

//go:embed presets.yaml
var builtinYAML []byte

// Preset is one named example.
type Preset struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description,omitempty"`
	Augmented   bool     `yaml:"augmented,omitempty"`
	Rows        [][]Cell `yaml:"rows"`
}

// Cell keeps the raw scalar text of one YAML entry, whatever its YAML tag.
type Cell string

// UnmarshalYAML accepts any scalar node and keeps its literal text.
func (c *Cell) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: cell must be a scalar: %w", node.Line, ErrInvalidPreset)
	}
	*c = Cell(node.Value)

	return nil
}

// Cells returns the raw tokens as a string grid.
func (p Preset) Cells() [][]string {
	out := make([][]string, len(p.Rows))
	for i, row := range p.Rows {
		out[i] = make([]string, len(row))
		for j, c := range row {
			out[i][j] = string(c)
		}
	}

	return out
}

// Matrix parses the preset's cells.
func (p Preset) Matrix() (*matrix.Dense, error) {
	m, err := matrix.Parse(p.Cells())
	if err != nil {
		return nil, fmt.Errorf("preset %q: %w", p.Name, err)
	}

	return m, nil
}

// Load decodes a YAML preset list from r and validates every entry.
func Load(r io.Reader) ([]Preset, error) {
	var list []Preset
	if err := yaml.NewDecoder(r).Decode(&list); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}

		return nil, fmt.Errorf("preset: decode: %w", err)
	}

	seen := make(map[string]bool, len(list))
	for i, p := range list {
		if p.Name == "" {
			return nil, fmt.Errorf("entry %d: missing name: %w", i+1, ErrInvalidPreset)
		}
		if seen[p.Name] {
			return nil, fmt.Errorf("entry %d: duplicate name %q: %w", i+1, p.Name, ErrInvalidPreset)
		}
		seen[p.Name] = true
		if _, err := p.Matrix(); err != nil {
			return nil, err
		}
	}

	return list, nil
}

// LoadFile is Load on the file at path.
func LoadFile(path string) ([]Preset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("preset: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// Builtin returns the embedded presets. The embedded file is validated by
// tests, so a decode failure here is a build defect.
func Builtin() []Preset {
	list, err := Load(bytes.NewReader(builtinYAML))
	if err != nil {
		panic(err)
	}

	return list
}

// Lookup finds name in list.
func Lookup(list []Preset, name string) (Preset, error) {
	for _, p := range list {
		if p.Name == name {
			return p, nil
		}
	}

	return Preset{}, fmt.Errorf("%q: %w", name, ErrUnknownPreset)
}

// Names returns the preset names sorted alphabetically.
func Names(list []Preset) []string {
	out := make([]string, len(list))
	for i, p := range list {
		out[i] = p.Name
	}
	sort.Strings(out)

	return out
}
