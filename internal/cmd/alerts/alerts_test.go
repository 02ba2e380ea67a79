package alerts

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/winsane/winsane"
	"github.com/winsane/winsane/internal/cmd/emoji"
	"github.com/winsane/winsane/internal/cmd/output"
)

func TestLevelFromNotice(t *testing.T) {
	assert.Equal(t, LevelError, LevelFromNotice(winsane.NoticeError))
	assert.Equal(t, LevelWarning, LevelFromNotice(winsane.NoticeWarning))
	assert.Equal(t, LevelInfo, LevelFromNotice(winsane.NoticeInfo))
	assert.Equal(t, LevelInfo, LevelFromNotice("bogus"))
}

func TestAlertString(t *testing.T) {
	a := NewWarning("Remote catalog unavailable").WithError(errors.New("timeout"))
	assert.Equal(t, emoji.Warning+" Remote catalog unavailable: timeout", a.String())

	assert.Equal(t, emoji.Success+" done", NewSuccess("done").String())
}

func TestFromNotice(t *testing.T) {
	cause := errors.New("disk full")
	a := FromNotice(winsane.Notice{Level: winsane.NoticeError, Message: "Changes could not be saved", Err: cause})
	assert.Equal(t, LevelError, a.Level)
	assert.Equal(t, "Changes could not be saved", a.Message)
	assert.Same(t, cause, a.Err)
	assert.False(t, a.Timestamp.IsZero())
}

func TestNoticeHook(t *testing.T) {
	var got []*Alert
	hook := NoticeHook(WriterFunc(func(a *Alert) error {
		got = append(got, a)
		return errors.New("ignored")
	}))
	hook(winsane.Notice{Level: winsane.NoticeInfo, Message: "hello"})
	require.Len(t, got, 1)
	assert.Equal(t, "hello", got[0].Message)
}

func TestFormatWriter(t *testing.T) {
	alert := NewError("Command failed").WithError(errors.New("exit 1")).WithDetails("Optimizer/System/Game Mode")

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewFormatWriter(&buf, output.FormatTable).WriteAlert(alert))
		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		require.Len(t, lines, 2)
		assert.Equal(t, emoji.Error+" Command failed: exit 1", lines[0])
		assert.Equal(t, "Optimizer/System/Game Mode", strings.TrimSpace(lines[1]))
	})

	t.Run("text without details", func(t *testing.T) {
		var buf bytes.Buffer
		fw := NewFormatWriter(&buf, output.FormatTable).WithConfig(WriterConfig{})
		require.NoError(t, fw.WriteAlert(alert))
		assert.NotContains(t, buf.String(), "Game Mode")
	})

	t.Run("color", func(t *testing.T) {
		var buf bytes.Buffer
		fw := NewFormatWriter(&buf, output.FormatTable).WithConfig(WriterConfig{UseColor: true})
		require.NoError(t, fw.WriteAlert(NewInfo("hi")))
		assert.True(t, strings.HasPrefix(buf.String(), LevelInfo.Color()))
		assert.Contains(t, buf.String(), ResetColor())
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewFormatWriter(&buf, output.FormatJSON).WriteAlert(alert))
		var data alertData
		require.NoError(t, json.Unmarshal(buf.Bytes(), &data))
		assert.Equal(t, "error", data.Level)
		assert.Equal(t, "exit 1", data.Error)
		assert.Empty(t, data.Timestamp)
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		fw := NewFormatWriter(&buf, output.FormatYAML).WithConfig(WriterConfig{ShowTimestamp: true})
		require.NoError(t, fw.WriteAlert(alert))
		var data alertData
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &data))
		assert.Equal(t, "Command failed", data.Message)
		assert.NotEmpty(t, data.Timestamp)
	})
}
