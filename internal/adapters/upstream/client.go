// Package upstream talks to the third-party services a stat card is built from:
// the username directory, the profiles API, the weight API and the avatar renderer.
//
// Every call is a single GET with no retry. Failures are reported with the
// sentinel kinds in errors.go.
package upstream

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/okian/skycard/pkg/logger"
	"github.com/okian/skycard/pkg/metrics"
)

// Upstream names used in logs and metric labels.
const (
	nameDirectory = "directory"
	nameProfiles  = "profiles"
	nameWeight    = "weight"
	nameAvatar    = "avatar"
)

// maxBodyBytes caps how much of an upstream body is read.
const maxBodyBytes = 8 << 20

// Option applies a configuration option to an upstream fetcher.
type Option func(*settings)

type settings struct {
	client *http.Client
	logger logger.Logger
}

// WithHTTPClient sets the HTTP client used for upstream calls.
func WithHTTPClient(c *http.Client) Option {
	return func(s *settings) {
		if c != nil {
			s.client = c
		}
	}
}

// WithLogger sets a custom logger for the fetcher.
func WithLogger(l logger.Logger) Option {
	return func(s *settings) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewHTTPClient returns a pooled client for upstream calls. A zero timeout
// keeps the transport default (no overall deadline).
func NewHTTPClient(timeout time.Duration) *http.Client {
	c := cleanhttp.DefaultPooledClient()
	if timeout > 0 {
		c.Timeout = timeout
	}
	return c
}

func newSettings(opts []Option) settings {
	s := settings{}
	for _, opt := range opts {
		opt(&s)
	}
	if s.client == nil {
		s.client = NewHTTPClient(0)
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}
	return s
}

// response is a fully read upstream reply.
type response struct {
	status int
	body   []byte
}

// get issues one GET and reads the body. Only transport-level problems are
// errors here; status handling is up to the caller.
func (s settings) get(ctx context.Context, upstream, rawURL string) (response, error) {
	start := time.Now()
	resp, err := s.fetch(ctx, rawURL)
	elapsed := float64(time.Since(start).Milliseconds())

	outcome := "ok"
	switch {
	case errors.Is(err, context.Canceled):
		outcome = "canceled"
	case err != nil:
		outcome = "transport_error"
	}
	metrics.RecordUpstreamLatency(upstream, outcome, elapsed)
	if err != nil {
		err = redact(err)
		if !errors.Is(err, context.Canceled) {
			s.logger.Debug(ctx, "upstream request failed",
				logger.String("upstream", upstream),
				logger.Error(err),
			)
		}
		return response{}, fmt.Errorf("%w: %s: %w", ErrUpstream, upstream, err)
	}

	s.logger.Debug(ctx, "upstream request done",
		logger.String("upstream", upstream),
		logger.Int("status", resp.status),
		logger.Float64("duration_ms", elapsed),
	)
	return resp, nil
}

func (s settings) fetch(ctx context.Context, rawURL string) (response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return response{}, err
	}
	req.Header.Set("User-Agent", "skycard")

	res, err := s.client.Do(req)
	if err != nil {
		return response{}, err
	}
	defer func() { _ = res.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(res.Body, maxBodyBytes))
	if err != nil {
		return response{}, err
	}
	return response{status: res.StatusCode, body: body}, nil
}

// redact strips the query string from the URL carried by a transport error,
// so API keys never reach logs.
func redact(err error) error {
	var ue *url.Error
	if !errors.As(err, &ue) {
		return err
	}
	u, perr := url.Parse(ue.URL)
	if perr != nil {
		ue.URL = "<unparseable url>"
		return err
	}
	if u.RawQuery != "" {
		u.RawQuery = "redacted"
	}
	ue.URL = u.Redacted()
	return err
}

func isSuccess(status int) bool {
	return status >= http.StatusOK && status < http.StatusMultipleChoices
}

// observe counts a failed fetch by kind. Fetches abandoned because a sibling
// failed are not upstream errors.
func observe(upstream string, err error) {
	if err != nil && !errors.Is(err, context.Canceled) {
		metrics.RecordUpstreamError(upstream, Kind(err))
	}
}
