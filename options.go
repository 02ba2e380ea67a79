package winsane

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/winsane/winsane/internal/executor"
	"github.com/winsane/winsane/internal/sources/remote"
	"github.com/winsane/winsane/internal/store"
	"github.com/winsane/winsane/internal/transport"
	"github.com/winsane/winsane/pkg/catalogs"
	"github.com/winsane/winsane/pkg/constants"
	"github.com/winsane/winsane/pkg/errors"
	"github.com/winsane/winsane/pkg/logging"
)

// config holds the settings applied by options.
type config struct {
	dataPath       string
	legacyPath     string
	remoteURL      string
	fetchTimeout   time.Duration
	offline        bool
	initialCatalog *catalogs.Catalog
}

func defaultConfig() *config {
	return &config{
		remoteURL:    constants.DefaultRemoteURL,
		fetchTimeout: constants.DefaultFetchTimeout,
	}
}

// Option is a function that configures a Session.
type Option func(*session) error

// options applies the given options to the session.
func (s *session) options(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return err
		}
	}
	return nil
}

// defaults fills in collaborators that no option supplied.
func (s *session) defaults() error {
	if s.logger == nil {
		s.logger = logging.Default()
	}
	if s.store == nil {
		fs, err := store.New(s.config.dataPath)
		if err != nil {
			return err
		}
		s.store = fs
	}
	if s.fetcher == nil && !s.config.offline {
		s.fetcher = remote.New(s.config.remoteURL, transport.WithTimeout(s.config.fetchTimeout))
	}
	if s.executor == nil {
		s.executor = executor.New()
	}
	return nil
}

// WithStore sets the local catalog store.
func WithStore(st Store) Option {
	return func(s *session) error {
		if st == nil {
			return &errors.ValidationError{Field: "store", Message: "cannot be nil"}
		}
		s.store = st
		return nil
	}
}

// WithDataPath sets the local catalog path used by the default store.
func WithDataPath(path string) Option {
	return func(s *session) error {
		s.config.dataPath = path
		return nil
	}
}

// WithLegacyPath sets a data file from older versions that Load deletes.
func WithLegacyPath(path string) Option {
	return func(s *session) error {
		s.config.legacyPath = path
		return nil
	}
}

// WithFetcher sets the remote catalog fetcher.
func WithFetcher(f Fetcher) Option {
	return func(s *session) error {
		if f == nil {
			return &errors.ValidationError{Field: "fetcher", Message: "cannot be nil"}
		}
		s.fetcher = f
		return nil
	}
}

// WithExecutor sets the command executor.
func WithExecutor(e Executor) Option {
	return func(s *session) error {
		if e == nil {
			return &errors.ValidationError{Field: "executor", Message: "cannot be nil"}
		}
		s.executor = e
		return nil
	}
}

// WithLogger sets the logger used by the session and its collaborators.
func WithLogger(logger *zerolog.Logger) Option {
	return func(s *session) error {
		s.logger = logger
		return nil
	}
}

// WithRemoteURL sets the URL of the master catalog.
func WithRemoteURL(url string) Option {
	return func(s *session) error {
		if url == "" {
			return &errors.ValidationError{Field: "remote_url", Message: "cannot be empty"}
		}
		s.config.remoteURL = url
		return nil
	}
}

// WithFetchTimeout bounds the remote fetch.
func WithFetchTimeout(d time.Duration) Option {
	return func(s *session) error {
		if d <= 0 {
			return &errors.ValidationError{Field: "fetch_timeout", Value: d, Message: "must be positive"}
		}
		s.config.fetchTimeout = d
		return nil
	}
}

// WithOffline skips the remote fetch entirely.
func WithOffline(offline bool) Option {
	return func(s *session) error {
		s.config.offline = offline
		return nil
	}
}

// WithInitialCatalog seeds the in-memory catalog. Load treats it as the
// local catalog when the store has none.
func WithInitialCatalog(c *catalogs.Catalog) Option {
	return func(s *session) error {
		s.config.initialCatalog = c
		return nil
	}
}
