package logging

import (
	"log/slog"
	"net/http"
	"time"
)

// Transport is an http.RoundTripper that logs every request at debug level.
// It wraps the transports of both API clients so that a --log-level debug
// run shows the exact calls made against GitHub and Jira.
type Transport struct {
	logger *slog.Logger
	next   http.RoundTripper
}

// NewTransport wraps next with request logging bound to the provided logger.
func NewTransport(logger *slog.Logger, next http.RoundTripper) *Transport {
	return &Transport{logger: logger, next: next}
}

// RoundTrip performs the request via the wrapped transport and logs the outcome.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	next := t.next
	if next == nil {
		next = http.DefaultTransport
	}

	start := time.Now()
	resp, err := next.RoundTrip(req)
	if t.logger == nil {
		return resp, err
	}

	if err != nil {
		t.logger.Debug("http request failed",
			"method", req.Method,
			"url", req.URL.Redacted(),
			"error", err,
		)
		return resp, err
	}

	t.logger.Debug("http request",
		"method", req.Method,
		"url", req.URL.Redacted(),
		"status", resp.StatusCode,
		"duration", time.Since(start).Round(time.Millisecond),
	)
	return resp, err
}
