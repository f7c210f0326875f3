package client

import (
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"
)

// RetryTransport retries requests rejected with a 429 status,
// honoring the Retry-After header when the server sends one.
type RetryTransport struct {
	Base        http.RoundTripper
	MaxRetries  int
	DefaultWait time.Duration
}

// RoundTrip implements http.RoundTripper.
func (t *RetryTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	transport := t.Base
	if transport == nil {
		transport = http.DefaultTransport
	}

	var res *http.Response
	var err error

	for attempt := 0; attempt <= t.MaxRetries; attempt++ {
		res, err = transport.RoundTrip(req)
		if err != nil {
			return nil, err
		}

		if res.StatusCode != http.StatusTooManyRequests {
			return res, nil
		}

		io.Copy(io.Discard, res.Body)
		res.Body.Close()

		if attempt == t.MaxRetries {
			break
		}

		wait := t.waitTime(res)

		slog.WarnContext(req.Context(), "rate limited", slog.Duration("wait", wait), slog.Int("attempt", attempt+1))

		select {
		case <-req.Context().Done():
			return nil, req.Context().Err()
		case <-time.After(wait):
		}

		if req.GetBody != nil {
			body, err := req.GetBody()
			if err != nil {
				return nil, err
			}

			req.Body = body
		}
	}

	return res, nil
}

func (t *RetryTransport) waitTime(res *http.Response) time.Duration {
	retryAfter := res.Header.Get("Retry-After")
	if retryAfter == "" {
		return t.DefaultWait
	}

	if seconds, err := strconv.Atoi(retryAfter); err == nil {
		return time.Duration(seconds) * time.Second
	}

	if date, err := http.ParseTime(retryAfter); err == nil {
		if wait := time.Until(date); wait > 0 {
			return wait
		}
	}

	return t.DefaultWait
}
