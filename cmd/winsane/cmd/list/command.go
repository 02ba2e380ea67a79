// Package list implements the list command.
package list

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/winsane/winsane/internal/appcontext"
	"github.com/winsane/winsane/internal/cmd/output"
	"github.com/winsane/winsane/internal/cmd/table"
	"github.com/winsane/winsane/pkg/catalogs"
)

// Flags holds the list filters.
type Flags struct {
	Search   string
	Feature  string
	Category string
	Enabled  bool
	User     bool
}

// NewCommand creates the list command.
func NewCommand(app appcontext.Interface) *cobra.Command {
	flags := &Flags{}
	cmd := &cobra.Command{
		Use:     "list",
		GroupID: "core",
		Aliases: []string{"ls"},
		Short:   "List tweaks in the catalog",
		Example: `  winsane list                        # List all tweaks
  winsane list --search telemetry     # Search names and purposes
  winsane list --feature Optimizer    # Only one feature
  winsane list -o wide                # Include commands`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, err := app.Session(cmd.Context())
			if err != nil {
				return err
			}
			records := Filter(sess.Catalog().Search(flags.Search), flags)
			app.Logger().Debug().Int("count", len(records)).Msg("Listing tweaks")
			return output.Print(app.Stdout(), app.OutputFormat(), recordList(records))
		},
	}

	flags.Register(cmd.Flags())

	return cmd
}

// Register adds the filter flags to fs.
func (f *Flags) Register(fs *pflag.FlagSet) {
	fs.StringVarP(&f.Search, "search", "s", "", "filter by name or purpose")
	fs.StringVarP(&f.Feature, "feature", "f", "", "only show tweaks of this feature")
	fs.StringVarP(&f.Category, "category", "c", "", "only show tweaks of this category")
	fs.BoolVar(&f.Enabled, "enabled", false, "only show enabled tweaks")
	fs.BoolVar(&f.User, "user", false, "only show user-created tweaks")
}

// Filter applies the feature, category, enabled and user filters.
// Feature and category match case-insensitively.
func Filter(records []catalogs.Record, flags *Flags) []catalogs.Record {
	out := make([]catalogs.Record, 0, len(records))
	for _, r := range records {
		if flags.Feature != "" && !strings.EqualFold(r.Key.Feature, flags.Feature) {
			continue
		}
		if flags.Category != "" && !strings.EqualFold(r.Key.Category, flags.Category) {
			continue
		}
		if flags.Enabled && !r.Enabled {
			continue
		}
		if flags.User && !r.User {
			continue
		}
		out = append(out, r)
	}
	return out
}

type recordList []catalogs.Record

func (l recordList) TableData(wide bool) table.Data {
	return table.RecordsToTableData(l, wide)
}
