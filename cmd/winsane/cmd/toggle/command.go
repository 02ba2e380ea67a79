// Package toggle implements the enable and disable commands.
package toggle

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/winsane/winsane/internal/appcontext"
	"github.com/winsane/winsane/internal/cmd/emoji"
	"github.com/winsane/winsane/pkg/catalogs"
)

// NewEnableCommand creates the enable command.
func NewEnableCommand(app appcontext.Interface) *cobra.Command {
	return newCommand(app, true)
}

// NewDisableCommand creates the disable command.
func NewDisableCommand(app appcontext.Interface) *cobra.Command {
	return newCommand(app, false)
}

func newCommand(app appcontext.Interface, enabled bool) *cobra.Command {
	verb, short := "enable", "Run a tweak's on command and mark it enabled"
	if !enabled {
		verb, short = "disable", "Run a tweak's off command and mark it disabled"
	}
	return &cobra.Command{
		Use:     verb + " <feature/category/tweak>",
		GroupID: "core",
		Short:   short,
		Example: fmt.Sprintf(`  winsane %s "Optimizer/System/Game Mode"`, verb),
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := ParseKeyArgs(args)
			if err != nil {
				return err
			}
			sess, err := app.Session(cmd.Context())
			if err != nil {
				return err
			}
			if err := sess.Toggle(cmd.Context(), key, enabled); err != nil {
				return err
			}
			fmt.Fprintf(app.Stdout(), "%s %s %sd\n", emoji.Success, key, verb)
			return nil
		},
	}
}

// ParseKeyArgs joins unquoted arguments with spaces before parsing, so
// `enable Optimizer/System/Game Mode` works without quotes.
func ParseKeyArgs(args []string) (catalogs.Key, error) {
	return catalogs.ParseKey(strings.Join(args, " "))
}
