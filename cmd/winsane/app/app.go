// Package app provides the application context and dependency management
// for the winsane CLI: configuration, logging and the lazily loaded session.
package app

import (
	"context"
	"io"
	"os"
	"path"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/winsane/winsane"
	"github.com/winsane/winsane/internal/appcontext"
	"github.com/winsane/winsane/internal/cmd/alerts"
	"github.com/winsane/winsane/internal/cmd/output"
	"github.com/winsane/winsane/internal/executor"
	"github.com/winsane/winsane/internal/store"
	"github.com/winsane/winsane/pkg/errors"
	"github.com/winsane/winsane/pkg/reconcile"
)

// App represents the winsane application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	config *Config
	logger *zerolog.Logger

	stdout io.Writer
	stderr io.Writer

	// extra session options, mainly for tests
	sessionOpts []winsane.Option

	// Session (lazy-initialized, singleton)
	mu      sync.Mutex
	session winsane.Session
	report  *reconcile.Report
}

// New creates a new App instance with the given version information.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
		stdout:  os.Stdout,
		stderr:  os.Stderr,
	}

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	if app.config == nil {
		config, err := LoadConfig(configFileFromArgs(os.Args[1:]))
		if err != nil {
			return nil, err
		}
		app.config = config
	}

	if app.logger == nil {
		logger := NewLogger(app.config)
		app.logger = &logger
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// OutputFormat returns the configured output format, detecting it from the
// terminal when none was given.
func (a *App) OutputFormat() string {
	return string(output.DetectFormat(a.config.Format))
}

// Stdout is where command results are written.
func (a *App) Stdout() io.Writer {
	return a.stdout
}

// Session returns the session, creating and loading it on first use.
// A load that only failed to persist still yields a usable session.
func (a *App) Session(ctx context.Context) (winsane.Session, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.session != nil {
		return a.session, nil
	}

	sess, err := winsane.New(a.sessionOptions()...)
	if err != nil {
		return nil, errors.NewConfigError("session", "failed to create session", err)
	}

	writer := alerts.NewFormatWriter(a.stderr, output.FormatTable)
	if a.config.NoColor {
		writer = writer.WithConfig(alerts.WriterConfig{ShowDetails: true})
	}
	sess.OnNotice(alerts.NoticeHook(writer))

	report, err := sess.Load(ctx)
	if err != nil && !errors.IsPersistError(err) {
		return nil, err
	}

	a.session = sess
	a.report = report
	return sess, nil
}

// Report returns the merge report of the last load.
func (a *App) Report() *reconcile.Report {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.report
}

// Shutdown saves the catalog if a session was loaded. It is called when a
// command fails so that state recorded before the failure is not lost.
func (a *App) Shutdown(ctx context.Context) error {
	a.mu.Lock()
	sess := a.session
	a.mu.Unlock()

	if sess == nil {
		return nil
	}
	if err := sess.Save(ctx); err != nil {
		a.logger.Error().Err(err).Msg("Failed to save catalog during shutdown")
		return err
	}
	return nil
}

// sessionOptions constructs session options from the app configuration.
func (a *App) sessionOptions() []winsane.Option {
	opts := []winsane.Option{
		winsane.WithLogger(a.logger),
		winsane.WithLegacyPath(store.LegacyPath()),
		winsane.WithOffline(a.config.Offline),
		winsane.WithFetchTimeout(a.config.FetchTimeout),
		winsane.WithExecutor(executor.New(a.executorOptions()...)),
	}
	if a.config.DataPath != "" {
		opts = append(opts, winsane.WithDataPath(a.config.DataPath))
	}
	if a.config.RemoteURL != "" {
		opts = append(opts, winsane.WithRemoteURL(a.config.RemoteURL))
	}
	return append(opts, a.sessionOpts...)
}

func (a *App) executorOptions() []executor.Option {
	opts := []executor.Option{
		executor.WithShell(a.config.Shell, shellArgs(a.config.Shell)...),
		executor.WithTimeout(a.config.CommandTimeout),
	}
	if a.config.LockPath != "" {
		opts = append(opts, executor.WithLockFile(a.config.LockPath))
	}
	return opts
}

// shellArgs picks the arguments that make shell run a single command string.
func shellArgs(shell string) []string {
	base := path.Base(strings.ReplaceAll(shell, `\`, "/"))
	name := strings.ToLower(strings.TrimSuffix(base, path.Ext(base)))
	switch name {
	case "powershell", "pwsh":
		return executor.DefaultShellArgs
	case "cmd":
		return []string{"/C"}
	default:
		return []string{"-c"}
	}
}

// configFileFromArgs finds --config before cobra parses flags, since the
// config must be loaded before the commands are built.
func configFileFromArgs(args []string) string {
	for i, arg := range args {
		switch {
		case arg == "--config" && i+1 < len(args):
			return args[i+1]
		case strings.HasPrefix(arg, "--config="):
			return strings.TrimPrefix(arg, "--config=")
		}
	}
	return ""
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithOutput redirects command output and notices.
func WithOutput(stdout, stderr io.Writer) Option {
	return func(a *App) error {
		a.stdout = stdout
		a.stderr = stderr
		return nil
	}
}

// WithSessionOptions appends options used when the session is created.
func WithSessionOptions(opts ...winsane.Option) Option {
	return func(a *App) error {
		a.sessionOpts = append(a.sessionOpts, opts...)
		return nil
	}
}

var _ appcontext.Interface = (*App)(nil)
