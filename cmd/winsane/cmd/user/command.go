// Package user implements the add and remove commands for user-created tweaks.
package user

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/winsane/winsane/internal/appcontext"
	"github.com/winsane/winsane/internal/cmd/emoji"
)

// AddFlags holds the fields of a new user tweak.
type AddFlags struct {
	Name    string
	Purpose string
	On      string
	Off     string
}

// NewAddCommand creates the add command.
func NewAddCommand(app appcontext.Interface) *cobra.Command {
	flags := &AddFlags{}
	cmd := &cobra.Command{
		Use:     "add",
		GroupID: "user",
		Short:   "Create a user tweak",
		Example: `  winsane add --name "Show Extensions" \
    --on "Set-ItemProperty ... -Value 0" --off "Set-ItemProperty ... -Value 1"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, err := app.Session(cmd.Context())
			if err != nil {
				return err
			}
			t, err := sess.AddUserTweak(cmd.Context(), flags.Name, flags.Purpose, flags.On, flags.Off)
			if err != nil {
				return err
			}
			fmt.Fprintf(app.Stdout(), "%s Added %q\n", emoji.Success, t.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&flags.Name, "name", "", "tweak name (required)")
	cmd.Flags().StringVar(&flags.Purpose, "purpose", "", "what the tweak does")
	cmd.Flags().StringVar(&flags.On, "on", "", "command that applies the tweak (required)")
	cmd.Flags().StringVar(&flags.Off, "off", "", "command that reverts the tweak (required)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("on")
	_ = cmd.MarkFlagRequired("off")

	return cmd
}

// NewRemoveCommand creates the remove command.
func NewRemoveCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <name>",
		GroupID: "user",
		Aliases: []string{"rm"},
		Short:   "Delete a user tweak",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := app.Session(cmd.Context())
			if err != nil {
				return err
			}
			if err := sess.DeleteUserTweak(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(app.Stdout(), "%s Removed %q\n", emoji.Success, args[0])
			return nil
		},
	}
}
