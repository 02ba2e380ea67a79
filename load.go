package winsane

import (
	"context"

	"github.com/winsane/winsane/internal/store"
	"github.com/winsane/winsane/pkg/catalogs"
	"github.com/winsane/winsane/pkg/errors"
	"github.com/winsane/winsane/pkg/logging"
	"github.com/winsane/winsane/pkg/reconcile"
)

// Load reads the local catalog, fetches the remote catalog, merges them and
// persists the result.
//
// An unreadable local file is reported as a notice and treated as absent.
// A failed fetch is reported as a notice and the session runs offline. When
// neither catalog is available Load returns a StructureError. A failed save
// returns a PersistError together with the report; the merged catalog stays
// loaded.
func (s *session) Load(ctx context.Context) (*reconcile.Report, error) {
	ctx = s.context(ctx, "load")
	logger := logging.FromContext(ctx)

	var ev events
	defer ev.fire()
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.config.legacyPath != "" {
		if err := store.RemoveLegacy(ctx, s.config.legacyPath); err != nil {
			logger.Warn().Err(err).Msg("Failed to remove legacy data file")
		}
	}

	local, err := s.store.Load(ctx)
	if err != nil {
		s.notify(ctx, &ev, NoticeWarning, "Local catalog could not be read and was ignored", err)
		local = nil
	}
	if local == nil {
		local = s.catalog
	}

	remoteCatalog := s.fetch(ctx, &ev)

	merged, report, err := reconcile.MergeWithReport(remoteCatalog, local)
	if err != nil {
		return nil, err
	}
	if merged == nil {
		return report, errors.NewStructureError("", "", "no catalog available")
	}
	s.catalog = merged

	logger.Info().
		Str("mode", string(report.Mode)).
		Int("kept", len(report.Kept)).
		Int("added", len(report.Added)).
		Int("dropped", len(report.Dropped)).
		Int("user_tweaks", len(report.UserTweaks)).
		Msg("Catalog loaded")

	if err := s.persist(ctx, &ev); err != nil {
		return report, err
	}
	return report, nil
}

// fetch makes the single remote attempt. Failures collapse to nil.
func (s *session) fetch(ctx context.Context, ev *events) *catalogs.Catalog {
	if s.config.offline || s.fetcher == nil {
		logging.FromContext(ctx).Debug().Msg("Offline mode, skipping remote catalog")
		return nil
	}

	fctx, cancel := context.WithTimeout(ctx, s.config.fetchTimeout)
	defer cancel()

	c, err := s.fetcher.Fetch(fctx)
	if err != nil {
		if !errors.IsFetchError(err) {
			err = errors.WrapFetch(s.config.remoteURL, 0, err)
		}
		s.notify(ctx, ev, NoticeWarning, "Remote catalog unavailable, running offline", err)
		return nil
	}
	return c
}
