// Package resolver decides, for every component directory, which concrete
// file backs the component's import path under the active theme, and which
// files of the other themes must be kept out of the build.
package resolver

import (
	"path"
	"sort"

	"github.com/geramireze/dynamic-theme-component/internal/logger"
	"github.com/geramireze/dynamic-theme-component/internal/theme"
	themeerrors "github.com/geramireze/dynamic-theme-component/pkg/errors"
)

// Resolver walks a components root on a FileSystem.
type Resolver struct {
	fs         FileSystem
	precedence Precedence
	log        *logger.Logger
}

// Option customizes a Resolver.
type Option func(*Resolver)

// WithPrecedence overrides the candidate probing order.
func WithPrecedence(p Precedence) Option {
	return func(r *Resolver) {
		r.precedence = p
	}
}

// WithLogger attaches a logger for per-component debug output.
func WithLogger(log *logger.Logger) Option {
	return func(r *Resolver) {
		if log != nil {
			r.log = log
		}
	}
}

// New creates a Resolver reading from fsys.
func New(fsys FileSystem, opts ...Option) *Resolver {
	r := &Resolver{
		fs:         fsys,
		precedence: DefaultPrecedence(),
		log:        logger.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve computes aliases and exclusion rules for active. allThemes is the
// full closed set; every member other than active yields one exclusion rule.
// A missing componentsRoot yields an empty Resolution. Any other filesystem
// failure aborts with a FilesystemError so a partial mapping never escapes.
func (r *Resolver) Resolve(componentsRoot string, active theme.ID, allThemes []theme.ID) (*Resolution, error) {
	root := path.Clean(componentsRoot)
	res := &Resolution{
		Root:       root,
		Theme:      active.Token(),
		Components: []Component{},
		Entries:    []Entry{},
		Exclusions: []ExclusionRule{},
	}
	log := r.log.WithFields(map[string]any{"root": root, "theme": res.Theme})

	present, err := r.rootExists(root)
	if err != nil {
		return nil, err
	}
	if !present {
		log.Debug("components root missing; nothing to resolve")
		return res, nil
	}

	names, err := listDirs(r.fs, root)
	if err != nil {
		return nil, err
	}
	sort.Strings(names)

	for _, name := range names {
		comp, err := r.resolveComponent(root, name, res.Theme)
		if err != nil {
			return nil, err
		}
		res.Components = append(res.Components, comp)

		clog := log.WithFields(map[string]any{"component": name, "source": string(comp.Source)})
		if comp.Source == SourceNone {
			clog.Debug("no implementation found")
			continue
		}
		if len(comp.Shadowed) > 0 {
			clog.WithField("shadowed", comp.Shadowed).Debug("candidate shadowed by precedence")
		}
		clog.WithField("path", comp.Path).Debug("component resolved")

		res.Entries = append(res.Entries,
			Entry{Alias: BareAlias(name), Path: comp.Path},
			Entry{Alias: NestedAlias(name), Path: comp.Path},
		)
	}

	res.Exclusions = exclusionsFor(root, res.Theme, allThemes)

	log.WithFields(map[string]any{
		"components": len(res.Components),
		"aliases":    len(res.Entries),
		"exclusions": len(res.Exclusions),
	}).Debug("resolution complete")

	return res, nil
}

func (r *Resolver) rootExists(root string) (bool, error) {
	info, err := r.fs.Stat(root)
	if err != nil {
		if themeerrors.IsNotExist(err) {
			return false, nil
		}
		return false, themeerrors.NewFilesystemError("stat", root, err)
	}
	if !info.IsDir() {
		return false, themeerrors.NewFilesystemError("stat", root, errNotDirectory)
	}
	return true, nil
}

func (r *Resolver) resolveComponent(root, name, token string) (Component, error) {
	dir := path.Join(root, name)
	comp := Component{Name: name, Source: SourceNone}

	themed, err := r.existing(r.precedence.ThemeCandidates(path.Join(dir, token), name))
	if err != nil {
		return Component{}, err
	}
	shared, err := r.existing(r.precedence.SharedCandidates(dir, name))
	if err != nil {
		return Component{}, err
	}

	switch {
	case len(themed) > 0:
		comp.Source = SourceTheme
		comp.Path = themed[0]
		comp.Shadowed = append(append([]string(nil), themed[1:]...), shared...)
	case len(shared) > 0:
		comp.Source = SourceShared
		comp.Path = shared[0]
		comp.Shadowed = shared[1:]
	}
	if len(comp.Shadowed) == 0 {
		comp.Shadowed = nil
	}
	return comp, nil
}

// existing filters candidates down to the ones present, keeping order.
func (r *Resolver) existing(candidates []string) ([]string, error) {
	var found []string
	for _, c := range candidates {
		ok, err := fileExists(r.fs, c)
		if err != nil {
			return nil, err
		}
		if ok {
			found = append(found, c)
		}
	}
	return found, nil
}

func exclusionsFor(root, activeToken string, allThemes []theme.ID) []ExclusionRule {
	rules := make([]ExclusionRule, 0, len(allThemes))
	seen := map[string]bool{activeToken: true}
	for _, id := range allThemes {
		token := id.Token()
		if token == "" || seen[token] {
			continue
		}
		seen[token] = true
		rules = append(rules, newExclusionRule(root, token))
	}
	return rules
}
