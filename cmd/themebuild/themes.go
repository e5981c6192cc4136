package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/geramireze/dynamic-theme-component/internal/buildconfig"
)

type themeRow struct {
	ID       string `json:"id" yaml:"id"`
	Token    string `json:"token" yaml:"token"`
	BrandKey string `json:"brand_key" yaml:"brand_key"`
	Label    string `json:"label,omitempty" yaml:"label,omitempty"`
	Default  bool   `json:"default" yaml:"default"`
}

type themesOptions struct {
	Format string
}

func newThemesCmd(flags *rootFlags) *cobra.Command {
	opts := themesOptions{}

	cmd := &cobra.Command{
		Use:   "themes",
		Short: "List the themes this project can be built for",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runThemes(cmd, flags, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Machine-readable output: json or yaml")

	return cmd
}

func runThemes(cmd *cobra.Command, flags *rootFlags, opts themesOptions) error {
	app, err := newAppContext(cmd, flags)
	if err != nil {
		return err
	}

	def := app.Registry.Default()
	all := app.Registry.All()
	rows := make([]themeRow, 0, len(all))
	for _, d := range all {
		rows = append(rows, themeRow{
			ID:       string(d.ID),
			Token:    d.Token(),
			BrandKey: d.BrandKey,
			Label:    d.Label,
			Default:  d.ID == def.ID,
		})
	}

	if opts.Format != "" {
		f, err := buildconfig.ParseFormat(opts.Format)
		if err != nil {
			return err
		}
		return buildconfig.Encode(cmd.OutOrStdout(), rows, f)
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTOKEN\tBRAND KEY\tLABEL\tDEFAULT")
	for _, r := range rows {
		marker := ""
		if r.Default {
			marker = "*"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", r.ID, r.Token, r.BrandKey, valueOrFallback(r.Label, "-"), marker)
	}
	return tw.Flush()
}

func valueOrFallback(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
