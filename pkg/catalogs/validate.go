package catalogs

import (
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/winsane/winsane/pkg/errors"
)

// Validate reports structural problems that the merge tolerates silently:
// nameless entries, slashes in feature or category names, and repeated
// identity keys.
// It returns nil for a clean catalog, otherwise a joined error of
// ValidationErrors.
func (c *Catalog) Validate() error {
	if c == nil {
		return nil
	}
	var errs []error
	if err := c.Theme.Validate(); err != nil {
		errs = append(errs, err)
	}

	seen := make(map[Key]bool)
	for fi, f := range c.Features {
		if f == nil || f.Name == "" {
			errs = append(errs, errors.NewValidationError("feature", fi, fmt.Sprintf("feature #%d has no name", fi+1)))
			continue
		}
		if strings.Contains(f.Name, "/") {
			errs = append(errs, errors.NewValidationError("feature", f.Name,
				fmt.Sprintf("feature %q contains a slash and cannot be addressed by key", f.Name)))
		}
		categories := make(map[string]bool)
		for ci, cat := range f.Categories {
			if cat == nil || cat.Name == "" {
				errs = append(errs, errors.NewValidationError("category", f.Name,
					fmt.Sprintf("category #%d of %s has no name", ci+1, f.Name)))
				continue
			}
			if categories[cat.Name] {
				errs = append(errs, errors.NewValidationError("category", cat.Name,
					fmt.Sprintf("category %s/%s is listed twice", f.Name, cat.Name)))
			}
			categories[cat.Name] = true
			if strings.Contains(cat.Name, "/") {
				errs = append(errs, errors.NewValidationError("category", cat.Name,
					fmt.Sprintf("category %s/%s contains a slash and cannot be addressed by key", f.Name, cat.Name)))
			}

			for ei, e := range cat.Items {
				if e.IsHeader() {
					continue
				}
				t := e.AsTweak()
				if !t.Valid() {
					errs = append(errs, errors.NewValidationError("name", nil,
						fmt.Sprintf("entry #%d of %s/%s is neither a header nor a named tweak", ei+1, f.Name, cat.Name)))
					continue
				}
				k := Key{Feature: f.Name, Category: cat.Name, Tweak: t.Name}
				if seen[k] {
					errs = append(errs, errors.NewValidationError("name", t.Name,
						fmt.Sprintf("duplicate tweak %s", k)))
				}
				seen[k] = true
			}
		}
	}
	return stderrors.Join(errs...)
}
