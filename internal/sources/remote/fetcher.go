// Package remote fetches the master catalog published upstream.
package remote

import (
	"context"

	"github.com/winsane/winsane/internal/transport"
	"github.com/winsane/winsane/pkg/catalogs"
	"github.com/winsane/winsane/pkg/constants"
	"github.com/winsane/winsane/pkg/errors"
	"github.com/winsane/winsane/pkg/logging"
)

// Fetcher retrieves and parses the remote catalog. A single attempt is made
// per call; there is no retry or backoff.
type Fetcher struct {
	URL      string
	MaxBytes int64
	client   *transport.Client
}

// New creates a fetcher for url. An empty url selects the default master
// catalog.
func New(url string, opts ...transport.Option) *Fetcher {
	if url == "" {
		url = constants.DefaultRemoteURL
	}
	return &Fetcher{
		URL:      url,
		MaxBytes: constants.MaxCatalogBytes,
		client:   transport.New(opts...),
	}
}

// Fetch downloads and parses the remote catalog. Every failure, including a
// non-2xx status, a timeout, an empty body and a parse failure, is returned
// as a FetchError.
func (f *Fetcher) Fetch(ctx context.Context) (*catalogs.Catalog, error) {
	logger := logging.FromContext(ctx)
	logger.Debug().Str("url", f.URL).Dur("timeout", f.client.Timeout()).Msg("Fetching remote catalog")

	resp, err := f.client.Get(ctx, f.URL)
	if err != nil {
		if errors.IsFetchError(err) {
			return nil, err
		}
		return nil, errors.NewFetchError(f.URL, 0, "request failed", err)
	}

	body, err := transport.ReadBody(resp, f.URL, f.MaxBytes)
	if err != nil {
		return nil, err
	}

	c, err := catalogs.Parse(body)
	if err != nil {
		return nil, errors.NewFetchError(f.URL, resp.StatusCode, "invalid catalog document", err)
	}
	if c == nil {
		return nil, errors.NewFetchError(f.URL, resp.StatusCode, "empty catalog document", nil)
	}

	logger.Debug().Str("url", f.URL).Int("tweaks", len(c.Tweaks())).Msg("Fetched remote catalog")
	return c, nil
}

// FetchOrNil is Fetch with every failure collapsed to nil. The error is
// logged at warn level.
func (f *Fetcher) FetchOrNil(ctx context.Context) *catalogs.Catalog {
	c, err := f.Fetch(ctx)
	if err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("Remote catalog unavailable")
		return nil
	}
	return c
}
