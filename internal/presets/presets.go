// Package presets maps cube ids to the raw pack layout used to build their
// Draftmancer layouts.
package presets

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cognivore/cube-with-archive/internal/draft"
)

// DefaultName is the preset used for cubes without their own entry.
const DefaultName = "default"

//go:embed presets.yaml
var builtin []byte

type fileFormat struct {
	Presets map[string]draft.RawLayout `yaml:"presets"`
}

type Registry struct {
	layouts map[string]draft.RawLayout
}

// Builtin returns the presets shipped with the binary.
func Builtin() (*Registry, error) {
	r := &Registry{layouts: map[string]draft.RawLayout{}}
	if err := r.merge(builtin, "builtin presets"); err != nil {
		return nil, err
	}
	return r, nil
}

// Load returns the builtin presets overlaid with the entries of path.
// An empty path or a missing file leaves the builtin set untouched.
func Load(path string) (*Registry, error) {
	r, err := Builtin()
	if err != nil {
		return nil, err
	}

	path = strings.TrimSpace(path)
	if path == "" {
		return r, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return r, nil
		}
		return nil, fmt.Errorf("read presets yaml %s: %w", path, err)
	}
	if err := r.merge(b, path); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Registry) merge(b []byte, source string) error {
	var ff fileFormat
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&ff); err != nil {
		return fmt.Errorf("parse presets yaml %s: %w", source, err)
	}
	for name, raw := range ff.Presets {
		name = strings.TrimSpace(name)
		if name == "" {
			return fmt.Errorf("parse presets yaml %s: empty preset name", source)
		}
		for i, rs := range raw {
			if rs.Instances <= 0 {
				return fmt.Errorf("preset %q slot %d: instances must be positive, got %d", name, i, rs.Instances)
			}
		}
		r.layouts[name] = raw
	}
	return nil
}

// Lookup returns the preset named after cubeID, falling back to DefaultName.
// The returned name is the preset actually used.
func (r *Registry) Lookup(cubeID string) (string, draft.RawLayout, bool) {
	if raw, ok := r.layouts[cubeID]; ok {
		return cubeID, raw, true
	}
	raw, ok := r.layouts[DefaultName]
	return DefaultName, raw, ok
}

func (r *Registry) Names() []string {
	out := make([]string, 0, len(r.layouts))
	for name := range r.layouts {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
