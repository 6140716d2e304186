// Package cardprobe requests cards from a running service and checks that
// each one is a PNG of the expected size.
package cardprobe

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image/png"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/okian/skycard/pkg/logger"
	"golang.org/x/sync/errgroup"
)

// Card dimensions the service produces.
const (
	fullWidth   = 800
	fullHeight  = 400
	forumWidth  = 592
	forumHeight = 296
)

// ErrProbeFailed is returned by Run when at least one card did not check out.
var ErrProbeFailed = errors.New("card probe failed")

// Variants returns the full and forum requests for cfg.
func Variants(cfg *Config) []Variant {
	return []Variant{
		{Name: "full", UserAgent: "skycard-probe", Width: fullWidth, Height: fullHeight},
		{Name: "forum", UserAgent: cfg.ForumUserAgent, Width: forumWidth, Height: forumHeight},
	}
}

// Run probes every username in every variant and reports the results.
func Run(ctx context.Context, cfg *Config) ([]Result, error) {
	stats := &Stats{StartTime: time.Now()}
	log := logger.Get()

	log.Info(ctx, "starting card probe",
		logger.String("baseURL", cfg.BaseURL),
		logger.Int("usernames", len(cfg.Usernames)),
		logger.Int("workers", cfg.Workers),
		logger.String("timeout", cfg.Timeout.String()),
	)

	client := cleanhttp.DefaultPooledClient()
	client.Timeout = cfg.Timeout

	if err := checkServiceHealth(ctx, client, cfg.BaseURL); err != nil {
		return nil, fmt.Errorf("service health check failed: %w", err)
	}

	var (
		mu      sync.Mutex
		results []Result
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(cfg.Workers, 1))
	for _, name := range cfg.Usernames {
		for _, v := range Variants(cfg) {
			g.Go(func() error {
				r := probe(gctx, client, cfg.BaseURL, name, v)
				mu.Lock()
				results = append(results, r)
				mu.Unlock()
				return nil
			})
		}
	}
	_ = g.Wait()

	for _, r := range results {
		stats.Requested++
		stats.Slowest = max(stats.Slowest, r.Duration)
		if r.Err != nil {
			stats.Failed++
			log.Warn(ctx, "card check failed",
				logger.String("username", r.Username),
				logger.String("variant", r.Variant),
				logger.Int("status", r.Status),
				logger.Error(r.Err),
			)
			continue
		}
		stats.Passed++
	}
	stats.Duration = time.Since(stats.StartTime)

	log.Info(ctx, "card probe finished",
		logger.Int("requested", stats.Requested),
		logger.Int("passed", stats.Passed),
		logger.Int("failed", stats.Failed),
		logger.String("slowest", stats.Slowest.String()),
		logger.String("duration", stats.Duration.String()),
	)

	if stats.Failed > 0 {
		return results, fmt.Errorf("%w: %d of %d", ErrProbeFailed, stats.Failed, stats.Requested)
	}
	return results, nil
}

// checkServiceHealth verifies the service is running.
func checkServiceHealth(ctx context.Context, client *http.Client, baseURL string) error {
	u, err := url.JoinPath(baseURL, "healthz")
	if err != nil {
		return err
	}
	status, _, err := get(ctx, client, u, "")
	if err != nil {
		return fmt.Errorf("failed to connect to service: %w", err)
	}
	if status != http.StatusOK {
		return fmt.Errorf("unexpected status: %d", status)
	}
	return nil
}

// probe requests one card and verifies it.
func probe(ctx context.Context, client *http.Client, baseURL, name string, v Variant) Result {
	r := Result{Username: name, Variant: v.Name}
	start := time.Now()

	u, err := url.JoinPath(baseURL, url.PathEscape(name))
	if err != nil {
		r.Err = err
		return r
	}

	status, body, err := get(ctx, client, u, v.UserAgent)
	r.Status = status
	r.Duration = time.Since(start)
	if err != nil {
		r.Err = err
		return r
	}
	if status != http.StatusOK {
		r.Err = fmt.Errorf("status %d: %s", status, bytes.TrimSpace(body))
		return r
	}

	cfg, err := png.DecodeConfig(bytes.NewReader(body))
	if err != nil {
		r.Err = fmt.Errorf("not a png: %w", err)
		return r
	}
	r.Width, r.Height = cfg.Width, cfg.Height
	if cfg.Width != v.Width || cfg.Height != v.Height {
		r.Err = fmt.Errorf("got %dx%d, want %dx%d", cfg.Width, cfg.Height, v.Width, v.Height)
	}
	return r
}

func get(ctx context.Context, client *http.Client, rawURL, userAgent string) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return 0, nil, err
	}
	if userAgent != "" {
		req.Header.Set("User-Agent", userAgent)
	}
	resp, err := client.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, err
	}
	return resp.StatusCode, body, nil
}
