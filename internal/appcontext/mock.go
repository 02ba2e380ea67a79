package appcontext

import (
	"context"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/winsane/winsane"
	"github.com/winsane/winsane/pkg/reconcile"
)

// Mock provides a mock implementation of Interface for testing.
// Fields left at their zero value produce zero results.
type Mock struct {
	SessionFunc func(context.Context) (winsane.Session, error)
	LastReport  *reconcile.Report
	Log         *zerolog.Logger
	Format      string
	Out         io.Writer
	VersionStr  string
}

// Session returns a session using the mock function or nil.
func (m *Mock) Session(ctx context.Context) (winsane.Session, error) {
	if m.SessionFunc != nil {
		return m.SessionFunc(ctx)
	}
	return nil, nil
}

// Report returns LastReport.
func (m *Mock) Report() *reconcile.Report {
	return m.LastReport
}

// Logger returns Log or a disabled logger.
func (m *Mock) Logger() *zerolog.Logger {
	if m.Log != nil {
		return m.Log
	}
	l := zerolog.Nop()
	return &l
}

// OutputFormat returns Format.
func (m *Mock) OutputFormat() string {
	return m.Format
}

// Stdout returns Out, falling back to os.Stdout.
func (m *Mock) Stdout() io.Writer {
	if m.Out != nil {
		return m.Out
	}
	return os.Stdout
}

// Version returns VersionStr.
func (m *Mock) Version() string { return m.VersionStr }

// Commit returns a fixed test value.
func (m *Mock) Commit() string { return "test" }

// Date returns a fixed test value.
func (m *Mock) Date() string { return "test" }

// BuiltBy returns a fixed test value.
func (m *Mock) BuiltBy() string { return "test" }

var _ Interface = (*Mock)(nil)
