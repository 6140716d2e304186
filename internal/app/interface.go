package service

import (
	"context"
	"image"

	"github.com/okian/skycard/internal/domain/model"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_sources.go github.com/okian/skycard/internal/app Directory,ProfileSource,WeightSource,AvatarSource,CardRenderer

// Directory resolves a username to a player identity.
type Directory interface {
	Resolve(ctx context.Context, username string) (model.PlayerIdentity, error)
}

// ProfileSource returns a player's most recently saved game profile.
type ProfileSource interface {
	LatestProfile(ctx context.Context, player model.PlayerIdentity) (model.GameProfile, error)
}

// WeightSource returns a player's computed weight.
type WeightSource interface {
	Weight(ctx context.Context, player model.PlayerIdentity) (model.WeightScore, error)
}

// AvatarSource returns a player's 50×50 head render.
type AvatarSource interface {
	Avatar(ctx context.Context, player model.PlayerIdentity) (*image.RGBA, error)
}

// CardRenderer composites the fetched data into a card.
type CardRenderer interface {
	Render(player model.PlayerIdentity, profile model.GameProfile, weight model.WeightScore, avatar *image.RGBA) *image.RGBA
}
