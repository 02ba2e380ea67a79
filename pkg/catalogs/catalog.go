// Package catalogs defines the tweak catalog document: features containing
// categories containing entries, where an entry is either a display-only
// header or a toggleable tweak. It also provides the YAML codec for the
// document and the operations that edit the reserved user category.
package catalogs

import (
	"github.com/winsane/winsane/pkg/constants"
)

// Catalog is the root document persisted locally and published remotely.
type Catalog struct {
	Theme    *Theme     `yaml:"theme,omitempty" json:"theme,omitempty"`
	Features []*Feature `yaml:"features" json:"features"`
}

// Feature is a top-level group such as Optimizer, Display or Dashboard.
type Feature struct {
	Name       string      `yaml:"feature" json:"feature"`
	Icon       string      `yaml:"icon,omitempty" json:"icon,omitempty"`
	Type       string      `yaml:"type,omitempty" json:"type,omitempty"`
	Categories []*Category `yaml:"categories" json:"categories"`
}

// Category groups entries inside a feature. Names are unique per feature.
type Category struct {
	Name  string   `yaml:"category" json:"category"`
	Items []*Entry `yaml:"items" json:"items"`
}

// New returns an empty catalog.
func New() *Catalog {
	return &Catalog{}
}

// Feature returns the first feature with the given name, or nil.
func (c *Catalog) Feature(name string) *Feature {
	if c == nil {
		return nil
	}
	for _, f := range c.Features {
		if f != nil && f.Name == name {
			return f
		}
	}
	return nil
}

// Category returns the first category with the given name, or nil.
func (f *Feature) Category(name string) *Category {
	if f == nil {
		return nil
	}
	for _, cat := range f.Categories {
		if cat != nil && cat.Name == name {
			return cat
		}
	}
	return nil
}

// Lookup returns the category at feature/category, or nil.
func (c *Catalog) Lookup(feature, category string) *Category {
	return c.Feature(feature).Category(category)
}

// UserCategory returns the reserved Optimizer/User category, or nil.
func (c *Catalog) UserCategory() *Category {
	return c.Lookup(constants.UserFeature, constants.UserCategory)
}

// Tweak returns the first tweak with the given name, or nil.
// Headers and nameless entries never match.
func (cat *Category) Tweak(name string) *Tweak {
	if cat == nil || name == "" {
		return nil
	}
	for _, e := range cat.Items {
		if t := e.AsTweak(); t.Valid() && t.Name == name {
			return t
		}
	}
	return nil
}

// EnsureCategory returns the category at feature/category, creating the
// feature (at the front of the list) and the category as needed.
func (c *Catalog) EnsureCategory(feature, category string) *Category {
	f := c.Feature(feature)
	if f == nil {
		f = &Feature{Name: feature}
		c.Features = append([]*Feature{f}, c.Features...)
	}
	cat := f.Category(category)
	if cat == nil {
		cat = &Category{Name: category, Items: []*Entry{}}
		f.Categories = append(f.Categories, cat)
	}
	return cat
}
