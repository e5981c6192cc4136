package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/geramireze/dynamic-theme-component/internal/buildconfig"
	"github.com/geramireze/dynamic-theme-component/internal/provenance"
)

type resolveOptions struct {
	Format   string
	Out      string
	Base     string
	NoSource bool
}

// resolveCmdRunner is swapped in tests.
var resolveCmdRunner = runResolve

func newResolveCmd(flags *rootFlags) *cobra.Command {
	opts := resolveOptions{}

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Emit the host build configuration for the active theme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateResolveOptions(opts); err != nil {
				return err
			}
			return resolveCmdRunner(cmd, flags, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: json or yaml (default: from --out extension, else json)")
	cmd.Flags().StringVarP(&opts.Out, "out", "o", "", "Write the document to this file, relative to the project, instead of stdout")
	cmd.Flags().StringVar(&opts.Base, "base", "", "Existing host configuration (json or yaml), relative to the project, to merge into")
	cmd.Flags().BoolVar(&opts.NoSource, "no-source", false, "Omit the git revision from the document")

	return cmd
}

func validateResolveOptions(opts resolveOptions) error {
	if opts.Format == "" {
		return nil
	}
	_, err := buildconfig.ParseFormat(opts.Format)
	return err
}

func (o resolveOptions) format() buildconfig.Format {
	if strings.TrimSpace(o.Format) == "" && o.Out != "" {
		return buildconfig.FormatForPath(o.Out)
	}
	f, err := buildconfig.ParseFormat(o.Format)
	if err != nil {
		return buildconfig.FormatJSON
	}
	return f
}

func runResolve(cmd *cobra.Command, flags *rootFlags, opts resolveOptions) error {
	app, err := newAppContext(cmd, flags)
	if err != nil {
		return err
	}

	def, err := app.ActiveTheme()
	if err != nil {
		return err
	}

	res, err := app.Resolve(def)
	if err != nil {
		return err
	}

	pre, err := app.Prelude(def)
	if err != nil {
		return err
	}

	var base buildconfig.HostConfig
	if opts.Base != "" {
		base, err = buildconfig.LoadBase(projectPath(app.Settings.ProjectRoot, opts.Base))
		if err != nil {
			return err
		}
	}

	var source *provenance.Source
	if !opts.NoSource {
		source, err = provenance.Detect(app.Settings.ProjectRoot)
		if err != nil {
			app.Log.Error(err, "reading git revision failed; continuing without it")
			source = nil
		}
	}

	cfg := buildconfig.Compose(base, buildconfig.Inputs{
		ProjectRoot: app.Settings.ProjectRoot,
		Theme:       def,
		Resolution:  res,
		StylesRoot:  app.Settings.StylesDir,
		Prelude:     pre,
		Source:      source,
	})

	var buf bytes.Buffer
	if err := buildconfig.Encode(&buf, cfg, opts.format()); err != nil {
		return err
	}

	app.Log.WithFields(map[string]any{
		"theme":   string(def.ID),
		"aliases": len(res.Entries),
		"rules":   len(res.Exclusions),
	}).Info("build configuration resolved")

	if opts.Out == "" {
		_, err := cmd.OutOrStdout().Write(buf.Bytes())
		return err
	}
	return writeOutput(projectPath(app.Settings.ProjectRoot, opts.Out), buf.Bytes())
}

func writeOutput(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func projectPath(root, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(root, p)
}
