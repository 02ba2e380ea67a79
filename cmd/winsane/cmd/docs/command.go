// Package docs implements the docs command.
package docs

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/winsane/winsane/internal/appcontext"
	"github.com/winsane/winsane/internal/docs"
	"github.com/winsane/winsane/pkg/constants"
	"github.com/winsane/winsane/pkg/errors"
)

// NewCommand creates the docs command.
func NewCommand(app appcontext.Interface) *cobra.Command {
	var (
		out    string
		title  string
		states bool
	)
	cmd := &cobra.Command{
		Use:     "docs",
		GroupID: "management",
		Short:   "Render the catalog as Markdown",
		Example: `  winsane docs > TWEAKS.md
  winsane docs --output-file TWEAKS.md --states`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, err := app.Session(cmd.Context())
			if err != nil {
				return err
			}

			opts := []docs.Option{}
			if title != "" {
				opts = append(opts, docs.WithTitle(title))
			}
			if states {
				opts = append(opts, docs.WithStates())
			}

			var w io.Writer = app.Stdout()
			if out != "" {
				f, err := os.OpenFile(out, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, constants.FilePermissions)
				if err != nil {
					return errors.NewPersistError("create", out, err)
				}
				defer f.Close()
				w = f
			}
			return docs.New(opts...).Generate(w, sess.Catalog())
		},
	}
	cmd.Flags().StringVar(&out, "output-file", "", "write to this file instead of stdout")
	cmd.Flags().StringVar(&title, "title", "", "document title")
	cmd.Flags().BoolVar(&states, "states", false, "include the recorded enabled state")
	return cmd
}
