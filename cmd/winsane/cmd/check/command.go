// Package check implements the check command.
package check

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/winsane/winsane/cmd/winsane/cmd/toggle"
	"github.com/winsane/winsane/internal/appcontext"
	"github.com/winsane/winsane/internal/cmd/emoji"
	"github.com/winsane/winsane/internal/cmd/output"
)

// Result is the structured output of a check.
type Result struct {
	Key     string `json:"key" yaml:"key"`
	Enabled bool   `json:"enabled" yaml:"enabled"`
}

// NewCommand creates the check command.
func NewCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "check <feature/category/tweak>",
		GroupID: "core",
		Short:   "Probe the system for a tweak's actual state",
		Long: `Check runs the tweak's check command, which prints True or False,
and updates the recorded state when it differs.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := toggle.ParseKeyArgs(args)
			if err != nil {
				return err
			}
			sess, err := app.Session(cmd.Context())
			if err != nil {
				return err
			}
			enabled, err := sess.Check(cmd.Context(), key)
			if err != nil {
				return err
			}

			format := app.OutputFormat()
			if format == string(output.FormatJSON) || format == string(output.FormatYAML) {
				return output.Print(app.Stdout(), format, Result{Key: key.String(), Enabled: enabled})
			}
			state := "disabled"
			if enabled {
				state = "enabled"
			}
			fmt.Fprintf(app.Stdout(), "%s %s is %s\n", emoji.Info, key, state)
			return nil
		},
	}
}
