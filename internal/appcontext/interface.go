// Package appcontext provides the shared application context interface
// used by all commands, so command packages depend on an interface instead
// of the concrete CLI application.
package appcontext

import (
	"context"
	"io"

	"github.com/rs/zerolog"

	"github.com/winsane/winsane"
	"github.com/winsane/winsane/pkg/reconcile"
)

// Interface defines what commands need from the application.
type Interface interface {
	// Session returns the loaded session, creating and loading it on first
	// use. Loading fetches the remote catalog unless running offline.
	Session(ctx context.Context) (winsane.Session, error)

	// Report returns the merge report of the last load, or nil before it.
	Report() *reconcile.Report

	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (json, yaml, table, wide).
	OutputFormat() string

	// Stdout is where command results are written.
	Stdout() io.Writer

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
