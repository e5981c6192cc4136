package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPreludeCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "prelude",
		Short: "Print the Sass prelude injected ahead of every stylesheet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd, flags)
			if err != nil {
				return err
			}
			def, err := app.ActiveTheme()
			if err != nil {
				return err
			}
			pre, err := app.Prelude(def)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), pre.Text)
			return err
		},
	}
}
