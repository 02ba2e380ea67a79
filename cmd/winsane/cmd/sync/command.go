// Package sync implements the sync command.
package sync

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/winsane/winsane/internal/appcontext"
	"github.com/winsane/winsane/internal/cmd/emoji"
	"github.com/winsane/winsane/internal/cmd/output"
	"github.com/winsane/winsane/internal/cmd/table"
	"github.com/winsane/winsane/pkg/reconcile"
)

// NewCommand creates the sync command.
func NewCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "sync",
		GroupID: "core",
		Short:   "Merge the remote catalog into the local one",
		Long: `Sync loads the local catalog, fetches the master catalog, carries
enabled states and user tweaks forward, and saves the result.

When the remote catalog cannot be fetched the local catalog is kept as is.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := app.Session(cmd.Context()); err != nil {
				return err
			}
			return printReport(app, app.Report())
		},
	}
}

type reportView struct {
	*reconcile.Report
}

func (v reportView) TableData(bool) table.Data {
	return table.ReportToTableData(v.Report)
}

// printReport writes the summary and changed keys for tables, and the full
// report for structured formats.
func printReport(app appcontext.Interface, r *reconcile.Report) error {
	w := app.Stdout()
	format := app.OutputFormat()
	if r == nil {
		r = &reconcile.Report{Mode: reconcile.ModeEmpty}
	}

	if format != string(output.FormatTable) && format != string(output.FormatWide) {
		return output.Print(w, format, r)
	}

	fmt.Fprintf(w, "%s %s\n", emoji.Success, r.Summary())
	if !r.HasChanges() && len(r.UserTweaks) == 0 {
		return nil
	}
	return output.Print(w, format, reportView{r})
}
