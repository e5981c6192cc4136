package theme

import (
	"errors"
	"fmt"

	themeerrors "github.com/geramireze/dynamic-theme-component/pkg/errors"
)

// EnvVar is the environment variable that selects the build theme.
const EnvVar = "BUILD_THEME"

var errEmptyRegistry = errors.New("theme: registry needs at least one theme")

// Registry is an immutable, ordered set of theme definitions with a default.
type Registry struct {
	defs  []Definition
	index map[ID]int
	def   ID
}

// NewRegistry builds a registry from definitions in declaration order. IDs are
// canonicalized; a blank brand key falls back to the ID.
func NewRegistry(defaultTheme string, defs ...Definition) (*Registry, error) {
	if len(defs) == 0 {
		return nil, errEmptyRegistry
	}

	r := &Registry{
		defs:  make([]Definition, 0, len(defs)),
		index: make(map[ID]int, len(defs)),
	}
	for _, d := range defs {
		d.ID = Canonical(string(d.ID))
		if d.ID == "" {
			return nil, fmt.Errorf("theme: definition %d has an empty id", len(r.defs))
		}
		if _, dup := r.index[d.ID]; dup {
			return nil, fmt.Errorf("theme: duplicate id %q", d.ID)
		}
		if d.BrandKey == "" {
			d.BrandKey = string(d.ID)
		}
		r.index[d.ID] = len(r.defs)
		r.defs = append(r.defs, d)
	}

	r.def = Canonical(defaultTheme)
	if _, ok := r.index[r.def]; !ok {
		return nil, fmt.Errorf("theme: default %q is not a declared theme", defaultTheme)
	}

	return r, nil
}

// Resolve normalizes a raw selector value and returns its definition. A blank
// value selects the default theme. Unknown values fail with an
// InvalidConfigurationError that lists every valid ID.
func (r *Registry) Resolve(raw string) (Definition, error) {
	id := Canonical(raw)
	if id == "" {
		return r.Default(), nil
	}
	if d, ok := r.Lookup(id); ok {
		return d, nil
	}
	return Definition{}, themeerrors.NewInvalidConfigurationError(EnvVar, raw, r.names())
}

// Lookup returns the definition for an already canonical ID.
func (r *Registry) Lookup(id ID) (Definition, bool) {
	i, ok := r.index[id]
	if !ok {
		return Definition{}, false
	}
	return r.defs[i], true
}

// BrandKey returns the brand key of id. Every registered ID has one; asking
// for an unregistered ID is a programming error and panics.
func (r *Registry) BrandKey(id ID) string {
	d, ok := r.Lookup(id)
	if !ok {
		panic(fmt.Sprintf("theme: brand key requested for unregistered theme %q", id))
	}
	return d.BrandKey
}

// Default returns the definition selected when no value is configured.
func (r *Registry) Default() Definition {
	return r.defs[r.index[r.def]]
}

// All returns a copy of the definitions in declaration order.
func (r *Registry) All() []Definition {
	return append([]Definition(nil), r.defs...)
}

// IDs returns every registered ID in declaration order.
func (r *Registry) IDs() []ID {
	ids := make([]ID, len(r.defs))
	for i, d := range r.defs {
		ids[i] = d.ID
	}
	return ids
}

func (r *Registry) names() []string {
	names := make([]string, len(r.defs))
	for i, d := range r.defs {
		names[i] = string(d.ID)
	}
	return names
}
