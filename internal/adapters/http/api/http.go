// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"image"
	"net/http"

	"github.com/okian/skycard/pkg/logger"
)

// Defaults for the handler options.
const (
	DefaultProjectURL     = "https://github.com/Antonio32A/skyblock-stats-banner"
	DefaultForumUserAgent = "XenForo/2.x (https://hypixel.net)"
)

// CardBuilder produces the stat card for a username.
type CardBuilder interface {
	Card(ctx context.Context, username string) (*image.RGBA, error)
}

// Server wires HTTP routes for the banner API.
type Server struct {
	healthHandler *HealthHandler
	rootHandler   *RootHandler
	cardHandler   *CardHandler
}

// Option applies a configuration option to the Server.
type Option func(*options)

type options struct {
	projectURL     string
	forumUserAgent string
	logger         logger.Logger
}

// WithProjectURL sets the redirect target of GET /.
func WithProjectURL(u string) Option {
	return func(o *options) {
		if u != "" {
			o.projectURL = u
		}
	}
}

// WithForumUserAgent sets the User-Agent that receives the downscaled card.
func WithForumUserAgent(ua string) Option {
	return func(o *options) {
		o.forumUserAgent = ua
	}
}

// WithLogger sets a custom logger for the handlers.
func WithLogger(l logger.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// NewServer creates a new API server with all handlers.
func NewServer(builder CardBuilder, opts ...Option) *Server {
	o := options{
		projectURL:     DefaultProjectURL,
		forumUserAgent: DefaultForumUserAgent,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = logger.Get()
	}

	return &Server{
		healthHandler: NewHealthHandler(),
		rootHandler:   NewRootHandler(o.projectURL),
		cardHandler:   NewCardHandler(builder, o.forumUserAgent, o.logger),
	}
}

// Register attaches all HTTP routes to mux. Literal paths win over the
// username wildcard, so a player called "healthz" cannot be looked up.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	mux.HandleFunc("GET /healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("GET /{$}", MetricsMiddleware(s.rootHandler.HandleRoot, "root"))
	mux.HandleFunc("GET /{name}", MetricsMiddleware(s.cardHandler.HandleCard, "card"))
}
