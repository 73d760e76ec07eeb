package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/claritypath/themedeck/internal/cssvars"
	"github.com/claritypath/themedeck/internal/store"
	"github.com/claritypath/themedeck/internal/theme"
)

var (
	listPalette string
	listStyle   string

	cssFormat    string
	cssSelector  string
	cssEnvPrefix string
	cssOutput    string
)

func init() {
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(cssCmd)

	listCmd.Flags().StringVar(&listPalette, "palette", "", "only themes using this palette")
	listCmd.Flags().StringVar(&listStyle, "style", "", "only themes using this style")

	cssCmd.Flags().StringVarP(&cssFormat, "format", "f", cssvars.FormatCSS, "output format (css, json, yaml, env)")
	cssCmd.Flags().StringVar(&cssSelector, "selector", cssvars.DefaultSelector, "CSS selector for the rule block")
	cssCmd.Flags().StringVar(&cssEnvPrefix, "env-prefix", "THEMEDECK", "variable prefix for env output")
	cssCmd.Flags().StringVarP(&cssOutput, "output", "o", "", "write to file instead of stdout")
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List every palette and style combination",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, session, err := openSession(cmd.Context(), "cli")
		if err != nil {
			return err
		}
		defer session.Close(ctx)

		st := store.MustFromContext(ctx)
		themes, err := filterThemes(st.Registry(), listPalette, listStyle)
		if err != nil {
			return err
		}

		if IsJSONOutput() || IsJSONLOutput() {
			return WriteOutput(cmd.OutOrStdout(), themes)
		}

		current := st.Theme().ID
		rows := make([][]string, 0, len(themes))
		for _, t := range themes {
			rows = append(rows, []string{
				currentMarker(t.ID == current),
				t.ID,
				t.Name,
				t.Colors.Primary,
				t.Design.Radius.Base,
			})
		}
		return writeTable(cmd.OutOrStdout(), []string{"", "ID", "NAME", "PRIMARY", "RADIUS"}, rows)
	},
}

var showCmd = &cobra.Command{
	Use:   "show [palette] [style]",
	Short: "Show a resolved theme",
	Long: `Show the colors and design attributes of a theme. Without arguments the
configured theme is shown; a missing style keeps the configured one.`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, session, err := openSession(cmd.Context(), "cli")
		if err != nil {
			return err
		}
		defer session.Close(ctx)

		t, err := selectFromArgs(ctx, args)
		if err != nil {
			return err
		}

		if IsJSONOutput() || IsJSONLOutput() {
			return WriteOutput(cmd.OutOrStdout(), t)
		}
		return writeThemeDetails(cmd, t)
	},
}

var cssCmd = &cobra.Command{
	Use:   "css [palette] [style]",
	Short: "Export a theme as CSS custom properties",
	Args:  cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, session, err := openSession(cmd.Context(), "cli")
		if err != nil {
			return err
		}
		defer session.Close(ctx)

		t, err := selectFromArgs(ctx, args)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if cssOutput != "" {
			file, err := os.Create(cssOutput)
			if err != nil {
				return fmt.Errorf("create %s: %w", cssOutput, err)
			}
			defer file.Close()
			out = file
		}

		opts := cssvars.RenderOptions{
			Format:    cssFormat,
			Selector:  cssSelector,
			Comment:   "themedeck: " + t.Name,
			EnvPrefix: cssEnvPrefix,
		}
		if err := cssvars.Render(out, session.env.Vars(), opts); err != nil {
			return err
		}
		if cssOutput != "" {
			fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %d variables to %s\n", session.env.Len(), cssOutput)
		}
		return nil
	},
}

// selectFromArgs applies an optional [palette] [style] pair to the provisioned
// store and returns the resulting theme.
func selectFromArgs(ctx context.Context, args []string) (theme.Theme, error) {
	st := store.MustFromContext(ctx)
	if len(args) == 0 {
		return st.Theme(), nil
	}

	palette, err := theme.ParsePalette(args[0])
	if err != nil {
		return theme.Theme{}, err
	}
	style := st.Style()
	if len(args) > 1 {
		if style, err = theme.ParseStyle(args[1]); err != nil {
			return theme.Theme{}, err
		}
	}

	if err := st.SetTheme(palette, style); err != nil {
		return theme.Theme{}, err
	}
	return st.Theme(), nil
}

func filterThemes(registry *theme.Registry, palette, style string) ([]theme.Theme, error) {
	themes := registry.All()
	if palette != "" {
		id, err := theme.ParsePalette(palette)
		if err != nil {
			return nil, err
		}
		themes = registry.ByPalette(id)
	}
	if style != "" {
		id, err := theme.ParseStyle(style)
		if err != nil {
			return nil, err
		}
		filtered := themes[:0:0]
		for _, t := range themes {
			if t.Style == id {
				filtered = append(filtered, t)
			}
		}
		themes = filtered
	}
	return themes, nil
}

func writeThemeDetails(cmd *cobra.Command, t theme.Theme) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s (%s)\n\n", t.Name, t.ID)

	var rows [][]string
	t.Colors.Each(func(name, value string) {
		rows = append(rows, []string{name, value})
	})
	if err := writeTable(out, []string{"COLOR", "VALUE"}, rows); err != nil {
		return err
	}
	fmt.Fprintln(out)

	d := t.Design
	return writeTable(out, []string{"DESIGN", "VALUE"}, [][]string{
		{"radius", fmt.Sprintf("%s / %s / %s", d.Radius.Small, d.Radius.Base, d.Radius.Large)},
		{"shadow", d.Shadow.Base},
		{"shadow (elevated)", d.Shadow.Elevated},
		{"font", d.FontFamily},
		{"weights", fmt.Sprintf("%s / %s / %s / %s",
			strconv.Itoa(d.Weights.Normal), strconv.Itoa(d.Weights.Medium),
			strconv.Itoa(d.Weights.Semibold), strconv.Itoa(d.Weights.Bold))},
	})
}
