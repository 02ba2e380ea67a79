package catalogs

import (
	"strings"

	"github.com/winsane/winsane/pkg/constants"
	"github.com/winsane/winsane/pkg/errors"
)

// Key identifies a tweak across merges: (feature, category, tweak name).
type Key struct {
	Feature  string `json:"feature" yaml:"feature"`
	Category string `json:"category" yaml:"category"`
	Tweak    string `json:"tweak" yaml:"tweak"`
}

// String renders the key as Feature/Category/Tweak.
func (k Key) String() string {
	return k.Feature + "/" + k.Category + "/" + k.Tweak
}

// IsUser reports whether the key lies in the reserved user category.
func (k Key) IsUser() bool {
	return k.Feature == constants.UserFeature && k.Category == constants.UserCategory
}

// ParseKey parses Feature/Category/Tweak. The tweak part may itself contain
// slashes; feature and category names may not, and Validate reports those
// that do.
func ParseKey(s string) (Key, error) {
	parts := strings.SplitN(s, "/", 3)
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
		return Key{}, errors.NewValidationError("key", s, "expected Feature/Category/Tweak")
	}
	return Key{Feature: parts[0], Category: parts[1], Tweak: parts[2]}, nil
}
