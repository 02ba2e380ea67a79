package catalogs

import (
	"strings"

	"github.com/winsane/winsane/pkg/errors"
)

// Record is the flat view of one tweak, in catalog order.
type Record struct {
	Key          Key    `json:"key" yaml:"key"`
	Purpose      string `json:"purpose" yaml:"purpose"`
	Enabled      bool   `json:"enabled" yaml:"enabled"`
	On           string `json:"on,omitempty" yaml:"on,omitempty"`
	Off          string `json:"off,omitempty" yaml:"off,omitempty"`
	Check        string `json:"check,omitempty" yaml:"check,omitempty"`
	User         bool   `json:"user" yaml:"user"`
	Irreversible bool   `json:"irreversible" yaml:"irreversible"`
}

// Walk calls fn for every keyed tweak in catalog order. Headers and
// malformed entries (nameless tweaks, nameless features or categories) are
// skipped. Returning false stops the walk.
func (c *Catalog) Walk(fn func(Key, *Tweak) bool) {
	if c == nil {
		return
	}
	for _, f := range c.Features {
		if f == nil || f.Name == "" {
			continue
		}
		for _, cat := range f.Categories {
			if cat == nil || cat.Name == "" {
				continue
			}
			for _, e := range cat.Items {
				t := e.AsTweak()
				if !t.Valid() {
					continue
				}
				if !fn(Key{Feature: f.Name, Category: cat.Name, Tweak: t.Name}, t) {
					return
				}
			}
		}
	}
}

// Tweaks returns every keyed tweak as a flat record.
func (c *Catalog) Tweaks() []Record {
	var records []Record
	c.Walk(func(k Key, t *Tweak) bool {
		records = append(records, newRecord(k, t))
		return true
	})
	return records
}

func newRecord(k Key, t *Tweak) Record {
	return Record{
		Key:          k,
		Purpose:      t.Purpose,
		Enabled:      t.Enabled,
		On:           t.On,
		Off:          t.Off,
		Check:        t.Check,
		User:         k.IsUser(),
		Irreversible: t.Irreversible(),
	}
}

// Find returns the first tweak with the given identity key.
func (c *Catalog) Find(key Key) (*Tweak, error) {
	var found *Tweak
	c.Walk(func(k Key, t *Tweak) bool {
		if k == key {
			found = t
			return false
		}
		return true
	})
	if found == nil {
		return nil, errors.NewNotFoundError("tweak", key.String())
	}
	return found, nil
}

// SetEnabled sets the enabled flag of the tweak at key.
func (c *Catalog) SetEnabled(key Key, enabled bool) error {
	t, err := c.Find(key)
	if err != nil {
		return err
	}
	t.Enabled = enabled
	return nil
}

// EnabledMap returns identity key to enabled flag. When a key repeats, the
// first occurrence wins, matching Find.
func (c *Catalog) EnabledMap() map[Key]bool {
	m := make(map[Key]bool)
	c.Walk(func(k Key, t *Tweak) bool {
		if _, seen := m[k]; !seen {
			m[k] = t.Enabled
		}
		return true
	})
	return m
}

// Search returns records whose name or purpose contains query, ignoring case.
// An empty query matches everything.
func (c *Catalog) Search(query string) []Record {
	q := strings.ToLower(strings.TrimSpace(query))
	var records []Record
	c.Walk(func(k Key, t *Tweak) bool {
		if q == "" ||
			strings.Contains(strings.ToLower(t.Name), q) ||
			strings.Contains(strings.ToLower(t.Purpose), q) {
			records = append(records, newRecord(k, t))
		}
		return true
	})
	return records
}
