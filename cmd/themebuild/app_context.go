package main

import (
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/spf13/cobra"

	"github.com/geramireze/dynamic-theme-component/internal/config"
	"github.com/geramireze/dynamic-theme-component/internal/logger"
	"github.com/geramireze/dynamic-theme-component/internal/prelude"
	"github.com/geramireze/dynamic-theme-component/internal/resolver"
	"github.com/geramireze/dynamic-theme-component/internal/theme"
)

// AppContext bundles what every command needs for one invocation.
type AppContext struct {
	Settings     *config.Settings
	Registry     *theme.Registry
	ManifestPath string
	Log          *logger.Logger
	// FS is rooted at the project directory; every path handed to it is
	// project-relative.
	FS billy.Filesystem
}

func newAppContext(cmd *cobra.Command, flags *rootFlags) (*AppContext, error) {
	level := "info"
	if flags.verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{
		Level:         level,
		HumanReadable: true,
		Writer:        cmd.ErrOrStderr(),
		Component:     cmd.Name(),
	})
	if err != nil {
		return nil, err
	}

	settings, err := config.LoadSettings(cmd.Flags())
	if err != nil {
		return nil, err
	}

	reg, manifest, err := config.LoadRegistry(settings.ProjectRoot, settings.ThemesFile)
	if err != nil {
		return nil, err
	}

	fields := map[string]any{"project": settings.ProjectRoot}
	if manifest != "" {
		fields["manifest"] = manifest
	}
	log.WithFields(fields).Debug("settings loaded")

	return &AppContext{
		Settings:     settings,
		Registry:     reg,
		ManifestPath: manifest,
		Log:          log,
		FS:           osfs.New(settings.ProjectRoot),
	}, nil
}

// ActiveTheme resolves the configured selector against the registry.
func (a *AppContext) ActiveTheme() (theme.Definition, error) {
	def, err := a.Registry.Resolve(a.Settings.Theme)
	if err != nil {
		return theme.Definition{}, err
	}
	if theme.Canonical(a.Settings.Theme) == "" {
		a.Log.WithField("theme", string(def.ID)).Debug("no theme selected; using default")
	}
	return def, nil
}

// Resolve runs the component resolver for def over the project tree.
func (a *AppContext) Resolve(def theme.Definition) (*resolver.Resolution, error) {
	r := resolver.New(a.FS, resolver.WithLogger(a.Log))
	return r.Resolve(a.Settings.ComponentsDir, def.ID, a.Registry.IDs())
}

// Prelude assembles the style prelude for def.
func (a *AppContext) Prelude(def theme.Definition) (*prelude.Prelude, error) {
	return prelude.Build(a.FS, a.Settings.StylesDir, def.ID, a.Log)
}
