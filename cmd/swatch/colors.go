package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/five82/swatch/internal/app"
	"github.com/five82/swatch/internal/colormodel"
	"github.com/five82/swatch/internal/prefs"
)

func loadPrefs(flags *rootFlags) (prefs.Prefs, string, error) {
	_, path, err := app.Resolve(flags.options())
	if err != nil {
		return prefs.Prefs{}, "", err
	}
	p, err := prefs.Read(path)
	if err != nil {
		return prefs.Prefs{}, "", err
	}
	return p, path, nil
}

func lookup(name string) (prefs.Definition, error) {
	def, ok := prefs.Lookup(name)
	if !ok {
		return prefs.Definition{}, fmt.Errorf("unknown preference %q (see 'swatch list')", name)
	}
	return def, nil
}

func newListCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print every color preference",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, _, err := loadPrefs(flags)
			if err != nil {
				return err
			}

			out := termenv.NewOutput(cmd.OutOrStdout())
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, def := range prefs.Definitions() {
				value := p.Color(def.Name)
				hex, contrast := "?", "-"
				if h, err := colormodel.ToHex(value); err == nil {
					hex = h
					if ratio, err := colormodel.ContrastRatio(value); err == nil {
						contrast = fmt.Sprintf("%.2f", ratio)
					}
				}
				block := "    "
				if hex != "?" {
					block = out.String(block).Background(out.Color(hex)).String()
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s %s\n", def.Name, hex, contrast, block, value)
			}
			return tw.Flush()
		},
	}
}

func newGetCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "get NAME",
		Short: "Print the stored value of one preference",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			def, err := lookup(args[0])
			if err != nil {
				return err
			}
			p, _, err := loadPrefs(flags)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), p.Color(def.Name))
			return nil
		},
	}
}

func newSetCmd(flags *rootFlags) *cobra.Command {
	var keepFormat bool

	cmd := &cobra.Command{
		Use:   "set NAME COLOR",
		Short: "Store a color for one preference",
		Long: `Store a color for one preference.

COLOR may be any of #RGB, #RRGGBB, #RRGGBBAA, rgb(), rgba(), hsl(), hsla()
or a color name. It is stored as upper-case hex unless --keep-format is set.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			def, err := lookup(args[0])
			if err != nil {
				return err
			}
			value, err := normalizeColor(def, args[1], keepFormat)
			if err != nil {
				return err
			}

			p, path, err := loadPrefs(flags)
			if err != nil {
				return err
			}
			if err := prefs.Save(path, p.WithColor(def.Name, value)); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", def.Name, value)
			return nil
		},
	}
	cmd.Flags().BoolVar(&keepFormat, "keep-format", false, "store COLOR as written instead of as hex")
	return cmd
}

func normalizeColor(def prefs.Definition, color string, keepFormat bool) (string, error) {
	c, err := colormodel.ToHSLA(color)
	if err != nil {
		return "", err
	}
	if !keepFormat {
		return colormodel.ToHex(color)
	}
	if !def.AllowTransparency && c.A < 1 {
		return "", fmt.Errorf("%s does not allow transparency", def.Name)
	}
	return color, nil
}
