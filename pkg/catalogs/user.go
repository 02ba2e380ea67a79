package catalogs

import (
	"fmt"
	"strings"

	"github.com/winsane/winsane/pkg/constants"
	"github.com/winsane/winsane/pkg/errors"
)

// AddUserTweak appends a new disabled tweak to the Optimizer/User category.
//
// Name and both commands must be non-blank. A blank purpose is replaced by
// constants.DefaultUserPurpose. A name already used in the user category is
// rejected. On any error the catalog is left unchanged.
func (c *Catalog) AddUserTweak(name, purpose, on, off string) (*Tweak, error) {
	name = strings.TrimSpace(name)
	switch {
	case name == "":
		return nil, errors.NewValidationError("name", name, "cannot be empty")
	case strings.TrimSpace(on) == "":
		return nil, errors.NewValidationError("on_command", on, "cannot be empty")
	case strings.TrimSpace(off) == "":
		return nil, errors.NewValidationError("off_command", off, "cannot be empty")
	}

	cat := c.UserCategory()
	if cat == nil {
		return nil, errors.NewStructureError(constants.UserFeature, constants.UserCategory, "user category not found")
	}
	if cat.Tweak(name) != nil {
		return nil, errors.NewValidationError("name", name,
			fmt.Sprintf("a tweak named %q already exists in %s/%s", name, constants.UserFeature, constants.UserCategory))
	}

	if strings.TrimSpace(purpose) == "" {
		purpose = constants.DefaultUserPurpose
	}
	t := &Tweak{
		Name:    name,
		Purpose: purpose,
		On:      on,
		Off:     off,
	}
	cat.Items = append(cat.Items, NewTweakEntry(t))
	return t, nil
}

// DeleteUserTweak removes the first tweak with the given name from the
// Optimizer/User category.
func (c *Catalog) DeleteUserTweak(name string) error {
	cat := c.UserCategory()
	if cat == nil {
		return errors.NewStructureError(constants.UserFeature, constants.UserCategory, "user category not found")
	}
	for i, e := range cat.Items {
		if t := e.AsTweak(); t.Valid() && t.Name == name {
			cat.Items = append(cat.Items[:i], cat.Items[i+1:]...)
			return nil
		}
	}
	return errors.NewNotFoundError("user tweak", name)
}
