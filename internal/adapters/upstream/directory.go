package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/google/uuid"
	"github.com/okian/skycard/internal/domain/model"
)

// Directory resolves usernames to player identities.
type Directory struct {
	baseURL string
	settings
}

// NewDirectory creates a resolver against baseURL, e.g.
// https://api.mojang.com/users/profiles/minecraft.
func NewDirectory(baseURL string, opts ...Option) *Directory {
	return &Directory{baseURL: baseURL, settings: newSettings(opts)}
}

// Resolve looks up username. The caller is expected to have validated it.
func (d *Directory) Resolve(ctx context.Context, username string) (_ model.PlayerIdentity, err error) {
	defer func() { observe(nameDirectory, err) }()

	u, err := url.JoinPath(d.baseURL, url.PathEscape(username))
	if err != nil {
		return model.PlayerIdentity{}, fmt.Errorf("%w: directory url: %w", ErrUpstream, err)
	}

	res, err := d.get(ctx, nameDirectory, u)
	if err != nil {
		return model.PlayerIdentity{}, err
	}
	if !isSuccess(res.status) {
		return model.PlayerIdentity{}, fmt.Errorf("%w: directory status %d", ErrUpstream, res.status)
	}

	var player model.PlayerIdentity
	if err := json.Unmarshal(res.body, &player); err != nil {
		return model.PlayerIdentity{}, fmt.Errorf("%w: directory body: %w", ErrUpstream, err)
	}
	if _, err := uuid.Parse(player.ID); err != nil {
		return model.PlayerIdentity{}, fmt.Errorf("%w: directory id %q: %w", ErrUpstream, player.ID, err)
	}
	return player, nil
}
