package transport

import (
	"fmt"
	"io"
	"net/http"

	"github.com/winsane/winsane/pkg/errors"
	"github.com/winsane/winsane/pkg/logging"
)

// ReadBody reads at most limit bytes of a response and closes it. Any status
// outside 2xx is returned as a FetchError.
func ReadBody(resp *http.Response, url string, limit int64) ([]byte, error) {
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logging.Warn().Err(err).Str("url", url).Msg("Failed to close response body")
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain a little so the connection can be reused.
		_, _ = io.CopyN(io.Discard, resp.Body, 4096)
		return nil, errors.NewFetchError(url, resp.StatusCode, resp.Status, nil)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, limit+1))
	if err != nil {
		return nil, errors.NewFetchError(url, resp.StatusCode, "failed to read response body", err)
	}
	if int64(len(body)) > limit {
		return nil, errors.NewFetchError(url, resp.StatusCode,
			fmt.Sprintf("response exceeds %d bytes", limit), nil)
	}
	return body, nil
}
