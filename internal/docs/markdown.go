// Package docs renders a tweak catalog as a Markdown document.
package docs

import (
	"fmt"
	"io"
	"strings"

	md "github.com/nao1215/markdown"

	"github.com/winsane/winsane/pkg/catalogs"
)

// Generator writes catalog documentation.
type Generator struct {
	title      string
	withStates bool
}

// Option configures a Generator.
type Option func(*Generator)

// WithTitle overrides the document heading.
func WithTitle(title string) Option {
	return func(g *Generator) {
		g.title = title
	}
}

// WithStates adds an enabled column reflecting the catalog's recorded state.
func WithStates() Option {
	return func(g *Generator) {
		g.withStates = true
	}
}

// New creates a generator.
func New(opts ...Option) *Generator {
	g := &Generator{title: "Winsane Tweaks"}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate writes c to w. Headers inside a category become bold rows so
// the grouping within a category stays visible.
func (g *Generator) Generate(w io.Writer, c *catalogs.Catalog) error {
	if c == nil {
		return fmt.Errorf("no catalog to document")
	}

	doc := md.NewMarkdown(w)
	doc.H1(g.title)

	total, irreversible := 0, 0
	c.Walk(func(_ catalogs.Key, t *catalogs.Tweak) bool {
		total++
		if t.Irreversible() {
			irreversible++
		}
		return true
	})
	doc.PlainTextf("%s across %s. %s cannot be undone.",
		count(total, "tweak", "tweaks"),
		count(len(c.Features), "feature", "features"),
		count(irreversible, "tweak", "tweaks")).LF()

	if !c.Theme.IsZero() {
		doc.H2("Theme")
		doc.BulletList(
			"Mode: "+md.Code(orDefault(c.Theme.Mode, "system")),
			"Accent: "+md.Code(orDefault(c.Theme.AccentColor, "default")),
		)
	}

	for _, f := range c.Features {
		if f == nil || f.Name == "" {
			continue
		}
		doc.H2(f.Name)
		for _, cat := range f.Categories {
			if cat == nil || cat.Name == "" {
				continue
			}
			doc.H3(cat.Name)
			rows := g.rows(cat)
			if len(rows) == 0 {
				doc.PlainText(md.Italic("No tweaks.")).LF()
				continue
			}
			doc.Table(md.TableSet{Header: g.header(), Rows: rows})
		}
	}

	return doc.Build()
}

func (g *Generator) header() []string {
	h := []string{"Tweak", "Purpose", "Reversible"}
	if g.withStates {
		h = append(h, "Enabled")
	}
	return h
}

func (g *Generator) rows(cat *catalogs.Category) [][]string {
	var rows [][]string
	for _, e := range cat.Items {
		if e == nil {
			continue
		}
		if e.IsHeader() {
			if strings.TrimSpace(e.Header) == "" {
				continue
			}
			row := []string{md.Bold(escape(e.Header)), "", ""}
			if g.withStates {
				row = append(row, "")
			}
			rows = append(rows, row)
			continue
		}
		t := e.AsTweak()
		if !t.Valid() {
			continue
		}
		row := []string{escape(t.Name), escape(t.Purpose), check(!t.Irreversible())}
		if g.withStates {
			row = append(row, check(t.Enabled))
		}
		rows = append(rows, row)
	}
	return rows
}

func count(n int, singular, plural string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, singular)
	}
	return fmt.Sprintf("%d %s", n, plural)
}

func check(b bool) string {
	if b {
		return "✅"
	}
	return "❌"
}

// escape keeps pipes and newlines from breaking table cells.
func escape(s string) string {
	s = strings.ReplaceAll(s, "|", "\\|")
	return strings.Join(strings.Fields(s), " ")
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
