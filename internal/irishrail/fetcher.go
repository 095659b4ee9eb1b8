package irishrail

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/Briscoooe/irish-rail-rest-api/internal/logging"
	"gopkg.in/resty.v1"
)

// Fetcher returns the body of a feed URL. Failures are reported as
// *TransportError.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// TransportError reports a feed that could not be reached or answered with a
// non-success status. StatusCode is zero when no response was received.
type TransportError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("feed request %s returned status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("feed request %s failed: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// HTTPFetcher fetches feed documents over HTTP.
type HTTPFetcher struct {
	client *resty.Client
}

func NewHTTPFetcher(config Config) *HTTPFetcher {
	client := resty.New().
		SetTimeout(config.timeout()).
		SetRetryCount(config.Retries).
		SetHeader("Accept", "application/xml, text/xml")
	return &HTTPFetcher{client: client}
}

func (f *HTTPFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	logger := logging.FromContext(ctx).With(slog.String("component", "irishrail_fetcher"))
	start := time.Now()

	resp, err := f.client.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		Get(url)
	if err != nil {
		return nil, &TransportError{URL: url, Err: err}
	}
	defer logging.SafeCloseWithLogging(resp.RawBody(), logger, "feed_response_body")

	logger.Debug("feed_request",
		slog.String("url", url),
		slog.Int("status", resp.StatusCode()),
		slog.Duration("duration", time.Since(start)))

	if resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		return nil, &TransportError{URL: url, StatusCode: resp.StatusCode()}
	}

	body, err := io.ReadAll(resp.RawBody())
	if err != nil {
		return nil, &TransportError{URL: url, Err: err}
	}
	return body, nil
}
