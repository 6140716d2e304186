package upstream

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/okian/skycard/internal/domain/model"
)

// weightEnvelope is the weight API reply.
type weightEnvelope struct {
	Success bool               `json:"success"`
	Data    *model.WeightScore `json:"data"`
}

// Weights fetches the computed weight metric.
type Weights struct {
	baseURL string
	key     string
	settings
}

// NewWeights creates a weight fetcher against baseURL using key.
func NewWeights(baseURL, key string, opts ...Option) *Weights {
	return &Weights{baseURL: baseURL, key: key, settings: newSettings(opts)}
}

// Weight returns the player's weight score.
func (w *Weights) Weight(ctx context.Context, player model.PlayerIdentity) (_ model.WeightScore, err error) {
	defer func() { observe(nameWeight, err) }()

	u, err := keyedURL(w.baseURL, w.key, player.ID)
	if err != nil {
		return model.WeightScore{}, fmt.Errorf("%w: weight url: %w", ErrUpstream, err)
	}

	res, err := w.get(ctx, nameWeight, u)
	if err != nil {
		return model.WeightScore{}, err
	}

	var env weightEnvelope
	if err := json.Unmarshal(res.body, &env); err != nil {
		return model.WeightScore{}, fmt.Errorf("%w: weight body: %w", ErrUpstream, err)
	}
	if !env.Success {
		return model.WeightScore{}, fmt.Errorf("%w: failed to get weight: %d", ErrUpstreamFailure, res.status)
	}
	if env.Data == nil {
		return model.WeightScore{}, fmt.Errorf("%w: weight for %s", ErrEmptyResult, player.ID)
	}
	return *env.Data, nil
}
