package main

import (
	"github.com/spf13/cobra"

	"github.com/geramireze/dynamic-theme-component/internal/config"
)

type rootFlags struct {
	verbose bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "themebuild",
		Short:         "themebuild resolves theme-specific components for a multi-bank front-end build",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging on stderr")
	pf.String(config.KeyProject, ".", "Project root directory")
	pf.String(config.KeyTheme, "", "Theme to build (overrides BUILD_THEME)")
	pf.String(config.KeyThemesFile, "", "Themes manifest (default: themes.yaml|yml|toml in the project root)")
	pf.String(config.KeyComponents, config.DefaultComponentsDir, "Components root, relative to the project")
	pf.String(config.KeyStyles, config.DefaultStylesDir, "Styles root, relative to the project")

	cmd.AddCommand(newResolveCmd(flags))
	cmd.AddCommand(newExplainCmd(flags))
	cmd.AddCommand(newCheckCmd(flags))
	cmd.AddCommand(newThemesCmd(flags))
	cmd.AddCommand(newPreludeCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
