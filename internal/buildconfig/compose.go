package buildconfig

import (
	"path"
	"path/filepath"

	"github.com/geramireze/dynamic-theme-component/internal/prelude"
	"github.com/geramireze/dynamic-theme-component/internal/provenance"
	"github.com/geramireze/dynamic-theme-component/internal/resolver"
	"github.com/geramireze/dynamic-theme-component/internal/theme"
)

// Inputs carries everything computed for one build.
type Inputs struct {
	// ProjectRoot is joined onto every relative path emitted. Leave empty to
	// keep paths relative.
	ProjectRoot string
	Theme       theme.Definition
	Resolution  *resolver.Resolution
	StylesRoot  string
	Prelude     *prelude.Prelude
	Source      *provenance.Source
}

// DistDir is the per-theme output directory, so builds for different themes
// never share one.
func DistDir(id theme.ID) string {
	return path.Join("build", id.Token())
}

// Compose layers the theme configuration over base. base is not modified and
// keys it carries that are not modeled here pass through unchanged.
//   - aliases: base entries are kept; theme entries win on key collision
//   - extensions: DefaultExtensions first, then base extensions not yet listed
//   - rules: base rules, then one exclusion rule for rejected themes
//   - env: base entries plus the theme and brand key
func Compose(base HostConfig, in Inputs) HostConfig {
	out := HostConfig{
		Resolve: Resolve{
			Alias:      make(map[string]any, len(base.Resolve.Alias)),
			Extensions: mergeUnique(DefaultExtensions, base.Resolve.Extensions),
			Rest:       cloneMap(base.Resolve.Rest),
		},
		Module: Module{
			Rules: make([]Rule, 0, len(base.Module.Rules)+1),
			Rest:  cloneMap(base.Module.Rest),
		},
		Env:     make(map[string]string, len(base.Env)+2),
		DistDir: DistDir(in.Theme.ID),
		Source:  in.Source,
		Rest:    cloneMap(base.Rest),
	}

	for k, v := range base.Resolve.Alias {
		out.Resolve.Alias[k] = v
	}
	for _, rule := range base.Module.Rules {
		out.Module.Rules = append(out.Module.Rules, cloneRule(rule))
	}
	for k, v := range base.Env {
		out.Env[k] = v
	}

	if res := in.Resolution; res != nil {
		for _, entry := range res.Entries {
			out.Resolve.Alias[entry.Alias+ExactMatchSuffix] = in.abs(entry.Path)
		}
		if rule, ok := ExclusionRule(res.Exclusions); ok {
			out.Module.Rules = append(out.Module.Rules, rule)
		}
	}

	out.Env[EnvTheme] = string(in.Theme.ID)
	out.Env[EnvBrandKey] = in.Theme.BrandKey

	if in.StylesRoot != "" || in.Prelude != nil || base.SassOptions != nil {
		sass := &SassOptions{}
		if in.StylesRoot != "" {
			sass.IncludePaths = append(sass.IncludePaths, in.abs(in.StylesRoot))
		}
		if base.SassOptions != nil {
			sass.IncludePaths = mergeUnique(sass.IncludePaths, base.SassOptions.IncludePaths)
			sass.PrependData = base.SassOptions.PrependData
		}
		if in.Prelude != nil {
			sass.PrependData = in.Prelude.Text
		}
		out.SassOptions = sass
	}

	return out
}

// ExclusionRule folds the resolver's rules into one host rule scoped to
// source files. It reports false when there is nothing to exclude.
func ExclusionRule(rules []resolver.ExclusionRule) (Rule, bool) {
	if len(rules) == 0 {
		return nil, false
	}
	patterns := make([]string, len(rules))
	for i, r := range rules {
		patterns[i] = r.Pattern
	}
	return Rule{
		"test":    resolver.SourcePattern,
		"exclude": patterns,
	}, true
}

func (in Inputs) abs(p string) string {
	if in.ProjectRoot == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(in.ProjectRoot, filepath.FromSlash(p))
}

// mergeUnique returns head followed by the members of tail not already
// present, preserving order.
func mergeUnique(head, tail []string) []string {
	seen := make(map[string]bool, len(head)+len(tail))
	out := make([]string, 0, len(head)+len(tail))
	for _, list := range [][]string{head, tail} {
		for _, v := range list {
			if seen[v] {
				continue
			}
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}

func cloneRule(r Rule) Rule {
	return Rule(cloneMap(r))
}

func cloneMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
