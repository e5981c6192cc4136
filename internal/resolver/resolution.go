package resolver

// AliasPrefix is the import path prefix every component alias lives under.
const AliasPrefix = "@/components"

// Source tells where a component's implementation came from.
type Source string

const (
	SourceTheme  Source = "theme"
	SourceShared Source = "shared"
	SourceNone   Source = "none"
)

// Component records how one component directory was resolved.
type Component struct {
	Name     string   `json:"name" yaml:"name"`
	Source   Source   `json:"source" yaml:"source"`
	Path     string   `json:"path,omitempty" yaml:"path,omitempty"`
	Shadowed []string `json:"shadowed,omitempty" yaml:"shadowed,omitempty"`
}

// Entry binds one import spelling to a concrete file.
type Entry struct {
	Alias string `json:"alias" yaml:"alias"`
	Path  string `json:"path" yaml:"path"`
}

// Resolution is the complete output of one resolver run. It is never mutated
// after Resolve returns.
type Resolution struct {
	Root       string          `json:"root" yaml:"root"`
	Theme      string          `json:"theme" yaml:"theme"`
	Components []Component     `json:"components" yaml:"components"`
	Entries    []Entry         `json:"entries" yaml:"entries"`
	Exclusions []ExclusionRule `json:"exclusions" yaml:"exclusions"`
}

// BareAlias is the "@/components/Name" spelling.
func BareAlias(component string) string {
	return AliasPrefix + "/" + component
}

// NestedAlias is the "@/components/Name/Name" spelling.
func NestedAlias(component string) string {
	return AliasPrefix + "/" + component + "/" + component
}

// AliasMap returns the entries keyed by alias.
func (r *Resolution) AliasMap() map[string]string {
	out := make(map[string]string, len(r.Entries))
	for _, e := range r.Entries {
		out[e.Alias] = e.Path
	}
	return out
}

// Excludes reports whether any exclusion rule removes the file at path.
func (r *Resolution) Excludes(path string) bool {
	for _, rule := range r.Exclusions {
		if rule.Matches(path) {
			return true
		}
	}
	return false
}

// Component looks up the resolution record for name.
func (r *Resolution) Component(name string) (Component, bool) {
	for _, c := range r.Components {
		if c.Name == name {
			return c, true
		}
	}
	return Component{}, false
}
