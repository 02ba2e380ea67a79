// Package executor runs tweak commands through a shell, one at a time.
//
// Commands are serialized twice: a mutex covers goroutines in this process
// and a lock file covers concurrent winsane processes, so at most one
// privileged command runs on the machine at a time.
package executor

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"github.com/winsane/winsane/pkg/constants"
	"github.com/winsane/winsane/pkg/errors"
	"github.com/winsane/winsane/pkg/logging"
)

const (
	// lockRetryDelay is how often a blocked caller retries the lock file.
	lockRetryDelay = 100 * time.Millisecond

	// waitDelay bounds how long output pipes are drained after a kill.
	waitDelay = time.Second
)

// DefaultShellArgs precede the command when the shell is PowerShell.
var DefaultShellArgs = []string{"-NoProfile", "-ExecutionPolicy", "Bypass", "-Command"}

// Result describes a finished command.
type Result struct {
	ID       string
	Command  string
	Output   string
	ExitCode int
	Duration time.Duration
}

// Executor runs commands serially.
type Executor struct {
	shell     string
	shellArgs []string
	timeout   time.Duration
	lock      *flock.Flock

	mu sync.Mutex
}

// Option configures an Executor.
type Option func(*Executor)

// WithShell sets the shell binary and the arguments placed before the
// command string.
func WithShell(shell string, args ...string) Option {
	return func(e *Executor) {
		if shell == "" {
			return
		}
		e.shell = shell
		e.shellArgs = args
	}
}

// WithTimeout bounds each command. Zero disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(e *Executor) {
		e.timeout = d
	}
}

// WithLockFile sets the lock file shared between processes. An empty path
// disables cross-process locking.
func WithLockFile(path string) Option {
	return func(e *Executor) {
		if path == "" {
			e.lock = nil
			return
		}
		e.lock = flock.New(path)
	}
}

// New creates an executor. By default it uses PowerShell, a two minute
// timeout and a lock file in the temp directory.
func New(opts ...Option) *Executor {
	e := &Executor{
		shell:     constants.DefaultShell,
		shellArgs: DefaultShellArgs,
		timeout:   constants.DefaultCommandTimeout,
		lock:      flock.New(filepath.Join(os.TempDir(), "winsane-"+constants.LockFileName)),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Shell returns the shell binary and its leading arguments.
func (e *Executor) Shell() (string, []string) {
	return e.shell, append([]string(nil), e.shellArgs...)
}

// Run executes command and waits for it. A non-zero exit, a start failure
// or a timeout is returned as a ProcessError carrying the combined output.
func (e *Executor) Run(ctx context.Context, command string) (*Result, error) {
	if strings.TrimSpace(command) == "" {
		return nil, errors.NewValidationError("command", command, "cannot be empty")
	}

	id := uuid.NewString()
	ctx = logging.WithExecution(ctx, id)
	logger := logging.FromContext(ctx)

	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.acquire(ctx); err != nil {
		return nil, err
	}
	defer e.release(ctx)

	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	args := append(append([]string(nil), e.shellArgs...), command)
	cmd := exec.CommandContext(ctx, e.shell, args...)
	cmd.WaitDelay = waitDelay
	var out limitedBuffer
	out.limit = constants.OutputBufferSize
	cmd.Stdout = &out
	cmd.Stderr = &out

	logger.Debug().Str("shell", e.shell).Str("command", command).Msg("Running command")
	start := time.Now()
	err := cmd.Run()
	res := &Result{
		ID:       id,
		Command:  command,
		Output:   strings.TrimSpace(out.String()),
		ExitCode: exitCode(cmd, err),
		Duration: time.Since(start),
	}

	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			err = errors.ErrTimeout
		}
		logger.Warn().Err(err).Int("exit_code", res.ExitCode).Dur("duration", res.Duration).Msg("Command failed")
		return res, errors.NewProcessError("run", command, res.Output, res.ExitCode, err)
	}

	logger.Debug().Dur("duration", res.Duration).Msg("Command finished")
	return res, nil
}

func (e *Executor) acquire(ctx context.Context) error {
	if e.lock == nil {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(e.lock.Path()), constants.DirPermissions); err != nil {
		return errors.NewProcessError("lock", e.lock.Path(), "", -1, err)
	}
	ok, err := e.lock.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		if ctx.Err() != nil {
			return errors.NewProcessError("lock", e.lock.Path(), "", -1, errors.ErrCanceled)
		}
		return errors.NewProcessError("lock", e.lock.Path(), "", -1, err)
	}
	if !ok {
		return errors.NewProcessError("lock", e.lock.Path(), "", -1, errors.New("lock not acquired"))
	}
	return nil
}

func (e *Executor) release(ctx context.Context) {
	if e.lock == nil {
		return
	}
	if err := e.lock.Unlock(); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Str("path", e.lock.Path()).Msg("Failed to release command lock")
	}
}

func exitCode(cmd *exec.Cmd, err error) int {
	if cmd.ProcessState != nil {
		return cmd.ProcessState.ExitCode()
	}
	if err != nil {
		return -1
	}
	return 0
}

// limitedBuffer keeps the first limit bytes written and discards the rest.
type limitedBuffer struct {
	bytes.Buffer
	limit int
}

func (b *limitedBuffer) Write(p []byte) (int, error) {
	if room := b.limit - b.Len(); room > 0 {
		if len(p) > room {
			_, _ = b.Buffer.Write(p[:room])
		} else {
			_, _ = b.Buffer.Write(p)
		}
	}
	return len(p), nil
}

// Execute runs command and returns its trimmed output.
func (e *Executor) Execute(ctx context.Context, command string) (string, error) {
	res, err := e.Run(ctx, command)
	if res == nil {
		return "", err
	}
	return res.Output, err
}
