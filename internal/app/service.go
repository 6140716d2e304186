// Package service builds stat cards: it resolves the player, fetches the
// profile, weight and avatar concurrently, then renders.
package service

import (
	"context"
	"fmt"
	"image"
	"time"

	"github.com/okian/skycard/internal/domain/model"
	"github.com/okian/skycard/pkg/logger"
	"github.com/okian/skycard/pkg/metrics"
	"golang.org/x/sync/errgroup"
)

// Service runs the card pipeline. It holds no per-request state and is safe
// for concurrent use.
type Service struct {
	directory Directory
	profiles  ProfileSource
	weights   WeightSource
	avatars   AvatarSource
	renderer  CardRenderer

	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithDirectory sets the username resolver.
func WithDirectory(d Directory) Option {
	return func(s *Service) {
		s.directory = d
	}
}

// WithProfiles sets the profile source.
func WithProfiles(p ProfileSource) Option {
	return func(s *Service) {
		s.profiles = p
	}
}

// WithWeights sets the weight source.
func WithWeights(w WeightSource) Option {
	return func(s *Service) {
		s.weights = w
	}
}

// WithAvatars sets the avatar source.
func WithAvatars(a AvatarSource) Option {
	return func(s *Service) {
		s.avatars = a
	}
}

// WithRenderer sets the card renderer.
func WithRenderer(r CardRenderer) Option {
	return func(s *Service) {
		s.renderer = r
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// New constructs a Service. Every source and the renderer are required.
func New(opts ...Option) (*Service, error) {
	s := &Service{}
	for _, opt := range opts {
		opt(s)
	}

	for _, dep := range []struct {
		name string
		set  bool
	}{
		{"directory", s.directory != nil},
		{"profiles", s.profiles != nil},
		{"weights", s.weights != nil},
		{"avatars", s.avatars != nil},
		{"renderer", s.renderer != nil},
	} {
		if !dep.set {
			return nil, fmt.Errorf("%w: %s", ErrMissingDependency, dep.name)
		}
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}
	return s, nil
}

// Card builds the card for username. Failures are returned as *StageError.
func (s *Service) Card(ctx context.Context, username string) (*image.RGBA, error) {
	start := time.Now()
	img, err := s.card(ctx, username)
	metrics.RecordPipelineLatency(float64(time.Since(start).Milliseconds()))

	if err != nil {
		stage := Stage(err)
		metrics.RecordPipelineError(stage)
		s.logger.Warn(ctx, "card pipeline failed",
			logger.String("username", username),
			logger.String("stage", stage),
			logger.Error(err),
		)
		return nil, err
	}
	return img, nil
}

func (s *Service) card(ctx context.Context, username string) (*image.RGBA, error) {
	player, err := s.directory.Resolve(ctx, username)
	if err != nil {
		return nil, &StageError{Stage: StageIdentity, Err: err}
	}

	var (
		profile model.GameProfile
		weight  model.WeightScore
		avatar  *image.RGBA
	)

	// The first failure cancels gctx; the other fetches are abandoned.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := s.profiles.LatestProfile(gctx, player)
		if err != nil {
			return &StageError{Stage: StageProfile, Err: err}
		}
		profile = p
		return nil
	})
	g.Go(func() error {
		w, err := s.weights.Weight(gctx, player)
		if err != nil {
			return &StageError{Stage: StageWeight, Err: err}
		}
		weight = w
		return nil
	})
	g.Go(func() error {
		a, err := s.avatars.Avatar(gctx, player)
		if err != nil {
			return &StageError{Stage: StageAvatar, Err: err}
		}
		avatar = a
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	renderStart := time.Now()
	img := s.renderer.Render(player, profile, weight, avatar)
	metrics.RecordCardRendered(float64(time.Since(renderStart).Milliseconds()))

	s.logger.Debug(ctx, "card rendered",
		logger.String("player", player.Name),
		logger.String("profile", profile.Name),
	)
	return img, nil
}
