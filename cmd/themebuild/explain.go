package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/geramireze/dynamic-theme-component/internal/buildconfig"
	"github.com/geramireze/dynamic-theme-component/internal/resolver"
	"github.com/geramireze/dynamic-theme-component/internal/theme"
)

type explainOptions struct {
	Format string
}

func newExplainCmd(flags *rootFlags) *cobra.Command {
	opts := explainOptions{}

	cmd := &cobra.Command{
		Use:   "explain",
		Short: "Show which file each component resolves to and why",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExplain(cmd, flags, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Machine-readable output: json or yaml")

	return cmd
}

func runExplain(cmd *cobra.Command, flags *rootFlags, opts explainOptions) error {
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

	if opts.Format != "" {
		f, err := buildconfig.ParseFormat(opts.Format)
		if err != nil {
			return err
		}
		return buildconfig.Encode(cmd.OutOrStdout(), res, f)
	}

	return renderExplain(cmd.OutOrStdout(), def, res)
}

func renderExplain(w io.Writer, def theme.Definition, res *resolver.Resolution) error {
	p := newPainter(w)

	title := fmt.Sprintf("Theme %s (%s)", def.ID, def.BrandKey)
	if def.Label != "" {
		title = fmt.Sprintf("Theme %s (%s) %s", def.ID, def.BrandKey, def.Label)
	}
	fmt.Fprintln(w, p.paint(titleStyle, title))
	fmt.Fprintf(w, "Components root: %s\n\n", res.Root)

	if len(res.Components) == 0 {
		fmt.Fprintln(w, p.paint(mutedStyle, "No components found."))
	} else {
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "COMPONENT\tPATH\tSOURCE")
		for _, comp := range res.Components {
			target := comp.Path
			if target == "" {
				target = "-"
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\n", comp.Name, target, p.paint(sourceStyle(comp.Source), string(comp.Source)))
			for _, s := range comp.Shadowed {
				fmt.Fprintf(tw, "\t%s\t%s\n", s, p.paint(mutedStyle, "shadowed"))
			}
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}

	if len(res.Exclusions) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Excluded themes:")
		for _, rule := range res.Exclusions {
			fmt.Fprintf(w, "  %s  %s\n", rule.Theme, p.paint(mutedStyle, rule.Pattern))
		}
	}
	return nil
}

func sourceStyle(s resolver.Source) lipgloss.Style {
	switch s {
	case resolver.SourceTheme:
		return themeStyle
	case resolver.SourceShared:
		return sharedStyle
	default:
		return noneStyle
	}
}
