package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/claritypath/themedeck/internal/config"
	"github.com/claritypath/themedeck/internal/templates"
)

var (
	exportValues []string
	exportOutput string
)

func init() {
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(templatesCmd)

	exportCmd.Flags().StringArrayVar(&exportValues, "set", nil, "template variable as key=value (repeatable)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "write to file instead of stdout")
}

var exportCmd = &cobra.Command{
	Use:   "export <template> [palette] [style]",
	Short: "Render a theme through an export template",
	Long: `Render a theme through a named export template (see "themedeck templates").
Templates in $XDG_CONFIG_HOME/themedeck/templates shadow the builtins.`,
	Args: cobra.RangeArgs(1, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		tmpl, err := templates.Find(config.ConfigDir(), args[0])
		if err != nil {
			return err
		}
		values, err := parseValues(exportValues)
		if err != nil {
			return err
		}

		ctx, session, err := openSession(cmd.Context(), "cli")
		if err != nil {
			return err
		}
		defer session.Close(ctx)

		t, err := selectFromArgs(ctx, args[1:])
		if err != nil {
			return err
		}

		rendered, err := templates.RenderTemplate(tmpl, templates.NewData(t, session.env.Vars()), values)
		if err != nil {
			return err
		}

		if exportOutput == "" {
			_, err = fmt.Fprint(cmd.OutOrStdout(), rendered)
			return err
		}
		if err := os.WriteFile(exportOutput, []byte(rendered), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", exportOutput, err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s (%s)\n", exportOutput, tmpl.Name)
		return nil
	},
}

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List export templates",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		list, err := templates.LoadTemplatesFromSearchPaths(config.ConfigDir())
		if err != nil {
			return err
		}
		if IsJSONOutput() || IsJSONLOutput() {
			return WriteOutput(cmd.OutOrStdout(), list)
		}

		rows := make([][]string, 0, len(list))
		for _, tmpl := range list {
			rows = append(rows, []string{tmpl.Name, tmpl.Extension, tmpl.Description, tmpl.Source})
		}
		return writeTable(cmd.OutOrStdout(), []string{"NAME", "EXT", "DESCRIPTION", "SOURCE"}, rows)
	},
}

func parseValues(pairs []string) (map[string]string, error) {
	values := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid --set %q (want key=value)", pair)
		}
		values[key] = value
	}
	return values, nil
}
