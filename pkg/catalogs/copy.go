package catalogs

// Copy returns a deep copy of the catalog. Nil features, categories and
// entries are preserved as nil so positions stay stable.
func (c *Catalog) Copy() *Catalog {
	if c == nil {
		return nil
	}
	out := &Catalog{Theme: c.Theme.Copy()}
	if c.Features != nil {
		out.Features = make([]*Feature, len(c.Features))
		for i, f := range c.Features {
			out.Features[i] = f.Copy()
		}
	}
	return out
}

// Copy returns a deep copy of the feature.
func (f *Feature) Copy() *Feature {
	if f == nil {
		return nil
	}
	out := &Feature{Name: f.Name, Icon: f.Icon, Type: f.Type}
	if f.Categories != nil {
		out.Categories = make([]*Category, len(f.Categories))
		for i, cat := range f.Categories {
			out.Categories[i] = cat.Copy()
		}
	}
	return out
}

// Copy returns a deep copy of the category.
func (cat *Category) Copy() *Category {
	if cat == nil {
		return nil
	}
	out := &Category{Name: cat.Name}
	if cat.Items != nil {
		out.Items = make([]*Entry, len(cat.Items))
		for i, e := range cat.Items {
			out.Items[i] = e.Copy()
		}
	}
	return out
}

// Copy returns a deep copy of the entry.
func (e *Entry) Copy() *Entry {
	if e == nil {
		return nil
	}
	out := &Entry{Header: e.Header}
	if e.Tweak != nil {
		t := *e.Tweak
		out.Tweak = &t
	}
	return out
}
