package resolver

import (
	"path"
	"sort"
	"strings"

	"github.com/geramireze/dynamic-theme-component/internal/theme"
	themeerrors "github.com/geramireze/dynamic-theme-component/pkg/errors"
)

// Violation kinds.
const (
	// ViolationLeak is a rejected theme's source file the rules keep.
	ViolationLeak = "leak"
	// ViolationOverreach is an active or shared file the rules drop.
	ViolationOverreach = "overreach"
)

// Violation is one file the exclusion rules treat wrongly.
type Violation struct {
	Kind  string `json:"kind" yaml:"kind"`
	Path  string `json:"path" yaml:"path"`
	Theme string `json:"theme,omitempty" yaml:"theme,omitempty"`
}

// Audit walks every file under res.Root and checks res.Exclusions against
// it: every source file inside a rejected theme's directory must be
// excluded, and nothing else may be.
func (r *Resolver) Audit(res *Resolution, allThemes []theme.ID) ([]Violation, error) {
	present, err := r.rootExists(res.Root)
	if err != nil || !present {
		return nil, err
	}

	rejected := make(map[string]bool, len(allThemes))
	for _, id := range allThemes {
		if tok := id.Token(); tok != res.Theme {
			rejected[tok] = true
		}
	}

	var files []string
	if err := r.walk(res.Root, &files); err != nil {
		return nil, err
	}
	sort.Strings(files)

	var out []Violation
	for _, f := range files {
		segments := strings.Split(strings.TrimPrefix(f, res.Root+"/"), "/")
		owner := ""
		if len(segments) >= 3 && rejected[segments[1]] {
			owner = segments[1]
		}

		excluded := res.Excludes(f)
		switch {
		case owner != "" && sourceRe.MatchString(f) && !excluded:
			out = append(out, Violation{Kind: ViolationLeak, Path: f, Theme: owner})
		case owner == "" && excluded:
			out = append(out, Violation{Kind: ViolationOverreach, Path: f})
		}
	}
	return out, nil
}

func (r *Resolver) walk(dir string, files *[]string) error {
	entries, err := r.fs.ReadDir(dir)
	if err != nil {
		return themeerrors.NewFilesystemError("readdir", dir, err)
	}
	for _, entry := range entries {
		p := path.Join(dir, entry.Name())
		if entry.IsDir() {
			if err := r.walk(p, files); err != nil {
				return err
			}
			continue
		}
		*files = append(*files, p)
	}
	return nil
}
