// Package validate implements the validate command.
package validate

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/winsane/winsane/internal/appcontext"
	"github.com/winsane/winsane/internal/cmd/emoji"
	"github.com/winsane/winsane/internal/cmd/output"
	"github.com/winsane/winsane/internal/cmd/table"
	"github.com/winsane/winsane/pkg/catalogs"
	"github.com/winsane/winsane/pkg/errors"
)

// Problems lists the issues found in a catalog.
type Problems []string

// TableData implements output.Tabular.
func (p Problems) TableData(bool) table.Data {
	d := table.Data{Headers: []string{"problem"}}
	for _, s := range p {
		d.Rows = append(d.Rows, []string{s})
	}
	return d
}

// NewCommand creates the validate command.
func NewCommand(app appcontext.Interface) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:     "validate",
		GroupID: "management",
		Short:   "Check a catalog for structural problems",
		Example: `  winsane validate                 # Validate the loaded catalog
  winsane validate --file data.yaml # Validate a catalog document`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := load(cmd, app, file)
			if err != nil {
				return err
			}
			problems := Check(c)
			if len(problems) == 0 {
				fmt.Fprintf(app.Stdout(), "%s catalog is valid\n", emoji.Success)
				return nil
			}
			if err := output.Print(app.Stdout(), app.OutputFormat(), problems); err != nil {
				return err
			}
			return fmt.Errorf("%d problem(s) found", len(problems))
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "validate this catalog file instead of the loaded one")
	return cmd
}

func load(cmd *cobra.Command, app appcontext.Interface, file string) (*catalogs.Catalog, error) {
	if file == "" {
		sess, err := app.Session(cmd.Context())
		if err != nil {
			return nil, err
		}
		return sess.Catalog(), nil
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, errors.NewPersistError("read", file, err)
	}
	c, err := catalogs.Parse(data)
	if err != nil {
		return nil, errors.NewParseError("yaml", file, "invalid catalog", err)
	}
	return c, nil
}

// Check returns one message per validation error.
func Check(c *catalogs.Catalog) Problems {
	err := c.Validate()
	if err == nil {
		return nil
	}
	// Validate joins one error per problem.
	var problems Problems
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			problems = append(problems, e.Error())
		}
		return problems
	}
	return Problems{err.Error()}
}
