package winsane

import (
	"context"

	"github.com/winsane/winsane/pkg/errors"
	"github.com/winsane/winsane/pkg/logging"
)

// Save persists the current catalog.
func (s *session) Save(ctx context.Context) error {
	ctx = s.context(ctx, "save")

	var ev events
	defer ev.fire()
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.loaded(); err != nil {
		return err
	}
	return s.persist(ctx, &ev)
}

// persist writes the in-memory catalog. The in-memory state stays valid when
// the write fails. Callers must hold s.mu.
func (s *session) persist(ctx context.Context, ev *events) error {
	if err := s.store.Save(ctx, s.catalog); err != nil {
		if !errors.IsPersistError(err) {
			err = errors.NewPersistError("save", "", err)
		}
		s.notify(ctx, ev, NoticeError, "Changes could not be saved", err)
		return err
	}
	return nil
}

// notify logs a notice and queues it for the notice hooks.
func (s *session) notify(ctx context.Context, ev *events, level NoticeLevel, message string, err error) {
	logger := logging.FromContext(ctx)
	switch level {
	case NoticeError:
		logger.Error().Err(err).Msg(message)
	case NoticeWarning:
		logger.Warn().Err(err).Msg(message)
	default:
		logger.Info().Msg(message)
	}

	n := Notice{Level: level, Message: message, Err: err}
	ev.add(func() { s.hooks.notice(n) })
}
