package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/geramireze/dynamic-theme-component/internal/resolver"
)

var errViolations = errors.New("exclusion rules do not match the components tree")

func newCheckCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify that exactly the rejected themes' sources are excluded",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, flags)
		},
	}
}

func runCheck(cmd *cobra.Command, flags *rootFlags) error {
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

	violations, err := resolver.New(app.FS, resolver.WithLogger(app.Log)).Audit(res, app.Registry.IDs())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	p := newPainter(out)
	if len(violations) == 0 {
		fmt.Fprintf(out, "%s: %d components, %d exclusion rules, no violations\n",
			def.ID, len(res.Components), len(res.Exclusions))
		return nil
	}

	for _, v := range violations {
		line := fmt.Sprintf("%s %s", v.Kind, v.Path)
		if v.Theme != "" {
			line += fmt.Sprintf(" (theme %s)", v.Theme)
		}
		fmt.Fprintln(out, p.paint(failureStyle, line))
	}
	return fmt.Errorf("%w: %d violation(s) for theme %s", errViolations, len(violations), def.ID)
}
