package reconcile

import (
	"github.com/winsane/winsane/pkg/constants"
	"github.com/winsane/winsane/pkg/errors"
)

// options configures a merge.
type options struct {
	userFeature  string
	userCategory string
}

func defaultOptions() *options {
	return &options{
		userFeature:  constants.UserFeature,
		userCategory: constants.UserCategory,
	}
}

// Option is a function that configures a merge.
type Option func(*options) error

func (o *options) apply(opts ...Option) (*options, error) {
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// newOptions returns merge options with default values.
func newOptions(opts ...Option) (*options, error) {
	return defaultOptions().apply(opts...)
}

// WithUserCategory overrides the category whose local tweaks survive a merge.
func WithUserCategory(feature, category string) Option {
	return func(o *options) error {
		if feature == "" || category == "" {
			return &errors.ValidationError{
				Field:   "user_category",
				Value:   feature + "/" + category,
				Message: "feature and category are required",
			}
		}
		o.userFeature = feature
		o.userCategory = category
		return nil
	}
}
