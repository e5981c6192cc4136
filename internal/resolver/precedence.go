package resolver

import "path"

// Precedence fixes the order in which candidate file names are probed. The
// first existing candidate wins; later ones are reported as shadowed.
type Precedence struct {
	// Extensions in preference order, e.g. ".tsx" before ".ts".
	Extensions []string
	// IndexName is the base name tried after the component-named file inside
	// a theme directory.
	IndexName string
}

// DefaultPrecedence probes Name.tsx, Name.ts, index.tsx, index.ts.
func DefaultPrecedence() Precedence {
	return Precedence{
		Extensions: []string{".tsx", ".ts"},
		IndexName:  "index",
	}
}

// ThemeCandidates lists the override files for component under dir, which is
// the component's theme subdirectory.
func (p Precedence) ThemeCandidates(dir, component string) []string {
	out := make([]string, 0, len(p.Extensions)*2)
	for _, ext := range p.Extensions {
		out = append(out, path.Join(dir, component+ext))
	}
	if p.IndexName != "" {
		for _, ext := range p.Extensions {
			out = append(out, path.Join(dir, p.IndexName+ext))
		}
	}
	return out
}

// SharedCandidates lists the default implementation files directly under the
// component directory.
func (p Precedence) SharedCandidates(dir, component string) []string {
	out := make([]string, 0, len(p.Extensions))
	for _, ext := range p.Extensions {
		out = append(out, path.Join(dir, component+ext))
	}
	return out
}
