package errors_test

import (
	"errors"
	"testing"

	pkgerrors "github.com/winsane/winsane/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := pkgerrors.New("test error")
	assert.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestNotFoundError(t *testing.T) {
	t.Run("basic error", func(t *testing.T) {
		err := &pkgerrors.NotFoundError{
			Resource: "tweak",
			ID:       "MyTweak",
		}
		assert.Equal(t, `tweak "MyTweak" not found`, err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrNotFound))
	})

	t.Run("wrapped error", func(t *testing.T) {
		base := pkgerrors.NewNotFoundError("tweak", "test")
		wrapped := errors.Join(errors.New("failed"), base)
		assert.True(t, pkgerrors.IsNotFound(wrapped))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("with field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{
			Field:   "name",
			Message: "cannot be empty",
		}
		assert.Equal(t, "validation failed for field name: cannot be empty", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrInvalidInput))
	})

	t.Run("without field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{Message: "invalid tweak"}
		assert.Equal(t, "validation failed: invalid tweak", err.Error())
		assert.True(t, pkgerrors.IsValidationError(err))
	})
}

func TestStructureError(t *testing.T) {
	err := pkgerrors.NewStructureError("Optimizer", "User", "category missing")
	assert.Equal(t, "catalog structure error at Optimizer/User: category missing", err.Error())
	assert.True(t, pkgerrors.IsStructureError(err))
	assert.False(t, pkgerrors.IsNotFound(err))

	bare := pkgerrors.NewStructureError("", "", "no catalog available")
	assert.Equal(t, "catalog structure error: no catalog available", bare.Error())
}

func TestFetchError(t *testing.T) {
	t.Run("with status code", func(t *testing.T) {
		err := pkgerrors.NewFetchError("https://example.com/data.yaml", 404, "404 Not Found", nil)
		assert.Contains(t, err.Error(), "404")
		assert.True(t, pkgerrors.IsFetchError(err))
	})

	t.Run("with wrapped error", func(t *testing.T) {
		base := errors.New("connection refused")
		err := pkgerrors.WrapFetch("https://example.com", 0, base)
		require.Error(t, err)
		assert.True(t, errors.Is(err, base))
		assert.True(t, pkgerrors.IsFetchError(err))
	})

	t.Run("nil passthrough", func(t *testing.T) {
		assert.NoError(t, pkgerrors.WrapFetch("https://example.com", 0, nil))
	})
}

func TestPersistError(t *testing.T) {
	base := errors.New("disk full")
	err := pkgerrors.WrapPersist("write", "/tmp/data.yaml", base)
	require.Error(t, err)
	assert.Equal(t, "persist error during write of /tmp/data.yaml: disk full", err.Error())
	assert.True(t, pkgerrors.IsPersistError(err))
	assert.True(t, errors.Is(err, base))
}

func TestProcessError(t *testing.T) {
	err := pkgerrors.NewProcessError("toggle", "Set-Thing", "denied", 1, errors.New("exit status 1"))
	assert.Contains(t, err.Error(), "exit 1")
	assert.Contains(t, err.Error(), "denied")
	assert.True(t, pkgerrors.IsProcessError(err))
}

func TestParseAndConfigErrors(t *testing.T) {
	parse := pkgerrors.WrapParse("yaml", "data.yaml", errors.New("bad indent"))
	assert.Equal(t, "parse error in yaml file data.yaml: bad indent", parse.Error())

	cfg := pkgerrors.NewConfigError("session", "no store configured", nil)
	assert.Equal(t, "configuration error in session: no store configured", cfg.Error())
}
