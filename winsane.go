// Package winsane manages a catalog of Windows tweaks: it loads the local
// catalog, reconciles it with the upstream master catalog, runs tweak
// commands and persists every change.
//
// A Session is the explicit owner of the loaded catalog. All methods are
// synchronous and safe for concurrent use.
package winsane

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/winsane/winsane/pkg/catalogs"
	"github.com/winsane/winsane/pkg/errors"
	"github.com/winsane/winsane/pkg/logging"
	"github.com/winsane/winsane/pkg/reconcile"
)

// Session manages a tweak catalog and the collaborators that load, persist
// and apply it.
type Session interface {
	// Load reads the local catalog, fetches the remote one, merges them and
	// persists the result.
	Load(ctx context.Context) (*reconcile.Report, error)

	// Catalog returns a copy of the current catalog, or nil before Load.
	Catalog() *catalogs.Catalog

	// Toggle runs the tweak's on or off command and records the new state.
	Toggle(ctx context.Context, key catalogs.Key, enabled bool) error

	// Check runs the tweak's check command and reconciles the stored state.
	Check(ctx context.Context, key catalogs.Key) (bool, error)

	// AddUserTweak creates a tweak in the user category.
	AddUserTweak(ctx context.Context, name, purpose, on, off string) (*catalogs.Tweak, error)

	// DeleteUserTweak removes a tweak from the user category.
	DeleteUserTweak(ctx context.Context, name string) error

	// SetTheme replaces the theme block.
	SetTheme(ctx context.Context, theme catalogs.Theme) error

	// Save persists the current catalog.
	Save(ctx context.Context) error

	// OnTweakToggled registers a callback for toggled tweaks
	OnTweakToggled(TweakToggledHook)

	// OnTweakAdded registers a callback for added user tweaks
	OnTweakAdded(TweakAddedHook)

	// OnTweakRemoved registers a callback for removed user tweaks
	OnTweakRemoved(TweakRemovedHook)

	// OnNotice registers a callback for user-visible notices
	OnNotice(NoticeHook)
}

// Store reads and writes the local catalog.
type Store interface {
	Load(ctx context.Context) (*catalogs.Catalog, error)
	Save(ctx context.Context, c *catalogs.Catalog) error
}

// Fetcher retrieves the remote catalog.
type Fetcher interface {
	Fetch(ctx context.Context) (*catalogs.Catalog, error)
}

// Executor runs a single shell command and returns its output.
type Executor interface {
	Execute(ctx context.Context, command string) (string, error)
}

// session is the internal implementation of the Session interface
type session struct {
	mu      sync.Mutex
	catalog *catalogs.Catalog

	config   *config
	store    Store
	fetcher  Fetcher
	executor Executor
	logger   *zerolog.Logger

	hooks *hooks
}

// New creates a session. Collaborators that are not supplied are built from
// the defaults: the file store at the default data path, the upstream
// fetcher and the PowerShell executor.
func New(opts ...Option) (Session, error) {
	s := &session{
		config: defaultConfig(),
		hooks:  newHooks(),
	}
	if err := s.options(opts...); err != nil {
		return nil, err
	}
	if err := s.defaults(); err != nil {
		return nil, err
	}
	if s.config.initialCatalog != nil {
		s.catalog = s.config.initialCatalog.Copy()
	}
	return s, nil
}

// Catalog returns a copy of the current catalog.
func (s *session) Catalog() *catalogs.Catalog {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.catalog.Copy()
}

// context attaches the session logger to ctx.
func (s *session) context(ctx context.Context, operation string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logging.WithLogger(ctx, s.logger)
	return logging.WithOperation(ctx, operation)
}

// loaded returns the in-memory catalog or a StructureError before Load.
// Callers must hold s.mu.
func (s *session) loaded() (*catalogs.Catalog, error) {
	if s.catalog == nil {
		return nil, errors.NewStructureError("", "", "catalog not loaded")
	}
	return s.catalog, nil
}
