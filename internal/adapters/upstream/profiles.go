package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/okian/skycard/internal/domain/model"
)

// profilesEnvelope is the profiles API reply.
type profilesEnvelope struct {
	Status int                 `json:"status"`
	Data   []model.GameProfile `json:"data"`
}

// Profiles fetches a player's game profiles.
type Profiles struct {
	baseURL string
	key     string
	settings
}

// NewProfiles creates a profiles fetcher against baseURL using key.
func NewProfiles(baseURL, key string, opts ...Option) *Profiles {
	return &Profiles{baseURL: baseURL, key: key, settings: newSettings(opts)}
}

// LatestProfile returns the player's most recently saved profile.
func (p *Profiles) LatestProfile(ctx context.Context, player model.PlayerIdentity) (_ model.GameProfile, err error) {
	defer func() { observe(nameProfiles, err) }()

	u, err := keyedURL(p.baseURL, p.key, player.ID)
	if err != nil {
		return model.GameProfile{}, fmt.Errorf("%w: profiles url: %w", ErrUpstream, err)
	}

	res, err := p.get(ctx, nameProfiles, u)
	if err != nil {
		return model.GameProfile{}, err
	}

	var env profilesEnvelope
	if err := json.Unmarshal(res.body, &env); err != nil {
		return model.GameProfile{}, fmt.Errorf("%w: profiles body: %w", ErrUpstream, err)
	}
	if env.Status != http.StatusOK {
		return model.GameProfile{}, &StatusError{Status: env.Status}
	}

	latest, err := model.LatestProfile(env.Data)
	if errors.Is(err, model.ErrNoProfiles) {
		return model.GameProfile{}, fmt.Errorf("%w: %w for %s", ErrEmptyResult, err, player.ID)
	}
	return latest, err
}

// keyedURL builds {base}/{id}?key={key}.
func keyedURL(base, key, id string) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", err
	}
	u = u.JoinPath(url.PathEscape(id))
	q := u.Query()
	q.Set("key", key)
	u.RawQuery = q.Encode()
	return u.String(), nil
}
