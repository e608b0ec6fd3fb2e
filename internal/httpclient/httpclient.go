// Package httpclient provides the shared HTTP client handed to every
// provider SDK. It retries transient failures with exponential backoff so
// individual providers do not reimplement retry logic.
package httpclient

import (
	"math"
	"net/http"
	"strconv"
	"time"
)

// Config controls timeout and retry behavior. The zero value selects
// defaults suitable for LLM API endpoints.
type Config struct {
	Timeout    time.Duration
	MaxRetries int
	BaseDelay  time.Duration
	MaxDelay   time.Duration
}

func (c Config) withDefaults() Config {
	if c.Timeout == 0 {
		c.Timeout = 60 * time.Second
	}
	if c.MaxRetries == 0 {
		c.MaxRetries = 3
	}
	if c.BaseDelay == 0 {
		c.BaseDelay = time.Second
	}
	if c.MaxDelay == 0 {
		c.MaxDelay = 30 * time.Second
	}
	return c
}

// New returns an http.Client whose transport retries retryable responses.
func New(cfg Config) *http.Client {
	cfg = cfg.withDefaults()
	return &http.Client{
		Timeout: cfg.Timeout,
		Transport: &retryTransport{
			base: http.DefaultTransport,
			cfg:  cfg,
		},
	}
}

type retryTransport struct {
	base http.RoundTripper
	cfg  Config
}

// retryable status codes follow the usual LLM API guidance: rate limits
// and upstream hiccups are transient, everything else is not.
func retryable(statusCode int) bool {
	switch statusCode {
	case http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	}
	return false
}

func (t *retryTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	var resp *http.Response
	var err error

	for attempt := 0; ; attempt++ {
		resp, err = t.base.RoundTrip(req)
		if err == nil && !retryable(resp.StatusCode) {
			return resp, nil
		}
		if attempt >= t.cfg.MaxRetries {
			return resp, err
		}
		// Bodies are consumed once; only requests that can be rewound
		// are safe to replay.
		if req.Body != nil && req.GetBody == nil {
			return resp, err
		}

		delay := backoff(t.cfg, attempt)
		if resp != nil {
			if after := retryAfter(resp.Header); after > 0 {
				delay = after
			}
			resp.Body.Close()
		}

		select {
		case <-time.After(delay):
		case <-req.Context().Done():
			return nil, req.Context().Err()
		}

		if req.Body != nil {
			body, berr := req.GetBody()
			if berr != nil {
				return nil, berr
			}
			req = req.Clone(req.Context())
			req.Body = body
		}
	}
}

// backoff returns the delay before retry attempt+1, doubling from BaseDelay
// and capped at MaxDelay.
func backoff(cfg Config, attempt int) time.Duration {
	if attempt < 0 {
		return cfg.BaseDelay
	}
	d := float64(cfg.BaseDelay) * math.Pow(2, float64(attempt))
	if d > float64(cfg.MaxDelay) {
		return cfg.MaxDelay
	}
	return time.Duration(d)
}

// retryAfter parses a Retry-After header given in seconds. Zero means the
// header is absent or unusable.
func retryAfter(h http.Header) time.Duration {
	v := h.Get("Retry-After")
	if v == "" {
		return 0
	}
	secs, err := strconv.Atoi(v)
	if err != nil || secs < 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}
