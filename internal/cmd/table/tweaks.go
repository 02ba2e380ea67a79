// Package table converts catalog data into rows for table output.
package table

import (
	"strings"

	"github.com/winsane/winsane/internal/cmd/emoji"
	"github.com/winsane/winsane/pkg/catalogs"
	"github.com/winsane/winsane/pkg/constants"
	"github.com/winsane/winsane/pkg/reconcile"
)

// Align represents column alignment in tables.
type Align int

const (
	// AlignDefault uses the default alignment (skip).
	AlignDefault Align = iota
	// AlignLeft aligns content to the left.
	AlignLeft
	// AlignCenter centers content.
	AlignCenter
	// AlignRight aligns content to the right.
	AlignRight
)

// Data represents table formatting data to avoid import cycles.
type Data struct {
	Headers         []string
	Rows            [][]string
	ColumnAlignment []Align // Optional: column alignment
}

// maxPurposeWidth truncates purposes in the narrow table.
const maxPurposeWidth = 60

// RecordsToTableData converts tweak records to table format. The wide form
// adds the on, off and check commands.
func RecordsToTableData(records []catalogs.Record, wide bool) Data {
	headers := []string{"state", "feature", "category", "tweak", "purpose"}
	align := []Align{AlignCenter, AlignLeft, AlignLeft, AlignLeft, AlignLeft}
	if wide {
		headers = append(headers, "on", "off", "check")
		align = append(align, AlignLeft, AlignLeft, AlignLeft)
	}

	rows := make([][]string, 0, len(records))
	for _, r := range records {
		purpose := r.Purpose
		if !wide {
			purpose = Truncate(purpose, maxPurposeWidth)
		}
		row := []string{
			State(r),
			r.Key.Feature,
			r.Key.Category,
			r.Key.Tweak,
			purpose,
		}
		if wide {
			row = append(row, orDash(r.On), orDash(r.Off), orDash(r.Check))
		}
		rows = append(rows, row)
	}

	return Data{Headers: headers, Rows: rows, ColumnAlignment: align}
}

// ReportToTableData lists every key a merge touched with what happened to it.
func ReportToTableData(r *reconcile.Report) Data {
	data := Data{
		Headers:         []string{"change", "tweak"},
		ColumnAlignment: []Align{AlignLeft, AlignLeft},
	}
	if r == nil {
		return data
	}
	for _, k := range r.Added {
		data.Rows = append(data.Rows, []string{"added", k.String()})
	}
	for _, k := range r.Dropped {
		data.Rows = append(data.Rows, []string{"dropped", k.String()})
	}
	for _, name := range r.UserTweaks {
		data.Rows = append(data.Rows, []string{"user", catalogs.Key{Feature: constants.UserFeature, Category: constants.UserCategory, Tweak: name}.String()})
	}
	return data
}

// State renders the enabled flag as a symbol, marking irreversible tweaks.
func State(r catalogs.Record) string {
	s := emoji.Disabled
	if r.Enabled {
		s = emoji.Enabled
	}
	if r.Irreversible {
		s += emoji.Irreversible
	}
	return s
}

// Truncate shortens s to at most n runes, ending with an ellipsis.
func Truncate(s string, n int) string {
	s = strings.TrimSpace(s)
	runes := []rune(s)
	if len(runes) <= n || n < 4 {
		return s
	}
	return string(runes[:n-3]) + "..."
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
