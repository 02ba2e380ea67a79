package winsane

import (
	"context"
	"fmt"
	"strings"

	"github.com/winsane/winsane/pkg/catalogs"
	"github.com/winsane/winsane/pkg/constants"
	"github.com/winsane/winsane/pkg/errors"
	"github.com/winsane/winsane/pkg/logging"
)

// Toggle runs the tweak's on or off command and, when it succeeds, records
// the new state and persists it. A failed command leaves the state unchanged
// and raises an error notice. Disabling a tweak without an off command is
// rejected.
func (s *session) Toggle(ctx context.Context, key catalogs.Key, enabled bool) error {
	ctx = logging.WithTweak(s.context(ctx, "toggle"), key.String())

	var ev events
	defer ev.fire()
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.loaded()
	if err != nil {
		return err
	}
	t, err := c.Find(key)
	if err != nil {
		return err
	}

	command := t.Command(enabled)
	if strings.TrimSpace(command) == "" {
		if !enabled {
			return errors.NewValidationError("enabled", enabled, fmt.Sprintf("%s cannot be reverted", key))
		}
		return errors.NewValidationError("enabled", enabled, fmt.Sprintf("%s has no command to enable it", key))
	}

	if _, err := s.executor.Execute(ctx, command); err != nil {
		if !errors.IsProcessError(err) {
			err = errors.NewProcessError("toggle", command, "", -1, err)
		}
		s.notify(ctx, &ev, NoticeError, fmt.Sprintf("Failed to apply %s", key.Tweak), err)
		return err
	}

	t.Enabled = enabled
	logging.FromContext(ctx).Info().Bool("enabled", enabled).Msg("Tweak applied")
	ev.add(func() { s.hooks.toggled(key, enabled) })

	return s.persist(ctx, &ev)
}

// Check runs the tweak's check command, which must print True or False, and
// stores the reported state when it differs from the recorded one.
func (s *session) Check(ctx context.Context, key catalogs.Key) (bool, error) {
	ctx = logging.WithTweak(s.context(ctx, "check"), key.String())

	var ev events
	defer ev.fire()
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.loaded()
	if err != nil {
		return false, err
	}
	t, err := c.Find(key)
	if err != nil {
		return false, err
	}
	if strings.TrimSpace(t.Check) == "" {
		return false, errors.NewValidationError("check", nil, fmt.Sprintf("%s has no check command", key))
	}

	out, err := s.executor.Execute(ctx, t.Check)
	if err != nil {
		return false, err
	}
	state, err := parseCheckOutput(out)
	if err != nil {
		return false, err
	}

	if state == t.Enabled {
		return state, nil
	}
	logging.FromContext(ctx).Info().Bool("recorded", t.Enabled).Bool("actual", state).Msg("Tweak state drifted")
	t.Enabled = state
	ev.add(func() { s.hooks.toggled(key, state) })
	return state, s.persist(ctx, &ev)
}

// parseCheckOutput reads the last non-empty line of a check command.
func parseCheckOutput(out string) (bool, error) {
	lines := strings.Split(strings.TrimSpace(out), "\n")
	last := strings.TrimSpace(lines[len(lines)-1])
	switch {
	case strings.EqualFold(last, "true"):
		return true, nil
	case strings.EqualFold(last, "false"):
		return false, nil
	}
	return false, errors.NewParseError("check", "", fmt.Sprintf("expected True or False, got %q", last), nil)
}

// AddUserTweak creates a disabled tweak in the user category and persists.
func (s *session) AddUserTweak(ctx context.Context, name, purpose, on, off string) (*catalogs.Tweak, error) {
	ctx = s.context(ctx, "add_user_tweak")

	var ev events
	defer ev.fire()
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.loaded()
	if err != nil {
		return nil, err
	}
	t, err := c.AddUserTweak(name, purpose, on, off)
	if err != nil {
		return nil, err
	}

	key := catalogs.Key{Feature: constants.UserFeature, Category: constants.UserCategory, Tweak: t.Name}
	logging.FromContext(ctx).Info().Str("tweak", key.String()).Msg("User tweak added")
	added := *t
	ev.add(func() { s.hooks.added(key, added) })

	return &added, s.persist(ctx, &ev)
}

// DeleteUserTweak removes the first user tweak named name and persists.
func (s *session) DeleteUserTweak(ctx context.Context, name string) error {
	ctx = s.context(ctx, "delete_user_tweak")

	var ev events
	defer ev.fire()
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.loaded()
	if err != nil {
		return err
	}
	if err := c.DeleteUserTweak(name); err != nil {
		return err
	}

	key := catalogs.Key{Feature: constants.UserFeature, Category: constants.UserCategory, Tweak: name}
	logging.FromContext(ctx).Info().Str("tweak", key.String()).Msg("User tweak removed")
	ev.add(func() { s.hooks.removed(key) })

	return s.persist(ctx, &ev)
}

// SetTheme validates and replaces the theme block, then persists.
func (s *session) SetTheme(ctx context.Context, theme catalogs.Theme) error {
	ctx = s.context(ctx, "set_theme")
	if err := theme.Validate(); err != nil {
		return err
	}

	var ev events
	defer ev.fire()
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.loaded()
	if err != nil {
		return err
	}
	c.Theme = theme.Copy()
	logging.FromContext(ctx).Info().Str("mode", theme.Mode).Str("accent_color", theme.AccentColor).Msg("Theme updated")

	return s.persist(ctx, &ev)
}
