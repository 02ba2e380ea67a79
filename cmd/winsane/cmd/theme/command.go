// Package theme implements the theme command.
package theme

import (
	"github.com/spf13/cobra"

	"github.com/winsane/winsane/internal/appcontext"
	"github.com/winsane/winsane/internal/cmd/output"
	"github.com/winsane/winsane/internal/cmd/table"
	"github.com/winsane/winsane/pkg/catalogs"
	"github.com/winsane/winsane/pkg/constants"
)

// View is the displayed theme.
type View struct {
	Mode        string `json:"mode" yaml:"mode"`
	AccentColor string `json:"accent_color" yaml:"accent_color"`
	HoverColor  string `json:"hover_color" yaml:"hover_color"`
}

// TableData implements output.Tabular.
func (v View) TableData(bool) table.Data {
	return table.Data{
		Headers: []string{"setting", "value"},
		Rows: [][]string{
			{"mode", v.Mode},
			{"accent_color", v.AccentColor},
			{"hover_color", v.HoverColor},
		},
	}
}

// NewCommand creates the theme command. Without flags it shows the theme;
// with --mode or --accent it updates and saves it.
func NewCommand(app appcontext.Interface) *cobra.Command {
	var mode, accent string
	cmd := &cobra.Command{
		Use:     "theme",
		GroupID: "management",
		Short:   "Show or change the theme",
		Example: `  winsane theme
  winsane theme --mode dark --accent "#ff8800"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, err := app.Session(cmd.Context())
			if err != nil {
				return err
			}

			current := catalogs.DefaultTheme()
			if c := sess.Catalog(); c != nil && !c.Theme.IsZero() {
				current = c.Theme.Copy()
			}

			if cmd.Flags().Changed("mode") || cmd.Flags().Changed("accent") {
				if cmd.Flags().Changed("mode") {
					current.Mode = mode
				}
				if cmd.Flags().Changed("accent") {
					current.AccentColor = accent
				}
				if err := sess.SetTheme(cmd.Context(), *current); err != nil {
					return err
				}
			}

			view, err := NewView(current)
			if err != nil {
				return err
			}
			return output.Print(app.Stdout(), app.OutputFormat(), view)
		},
	}

	cmd.Flags().StringVar(&mode, "mode", "", "system, light or dark")
	cmd.Flags().StringVar(&accent, "accent", "", "accent colour as #rrggbb")
	return cmd
}

// NewView fills in defaults and computes the hover shade.
func NewView(t *catalogs.Theme) (View, error) {
	v := View{Mode: t.Mode, AccentColor: t.AccentColor}
	if v.Mode == "" {
		v.Mode = constants.ThemeModeSystem
	}
	if v.AccentColor == "" {
		v.AccentColor = constants.DefaultAccentColor
	}
	shaded := catalogs.Theme{Mode: v.Mode, AccentColor: v.AccentColor}
	hover, err := shaded.Darker(constants.DefaultDarkerFactor)
	if err != nil {
		return View{}, err
	}
	v.HoverColor = hover
	return v, nil
}
