package upstream

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/draw"
	"net/url"
	"strconv"

	"github.com/disintegration/imaging"
	"github.com/okian/skycard/internal/domain/model"
)

// AvatarSize is the edge length in pixels of the requested avatar.
const AvatarSize = 50

// Avatars fetches player head renders.
type Avatars struct {
	baseURL string
	settings
}

// NewAvatars creates an avatar fetcher against baseURL, e.g.
// https://crafthead.net/avatar.
func NewAvatars(baseURL string, opts ...Option) *Avatars {
	return &Avatars{baseURL: baseURL, settings: newSettings(opts)}
}

// Avatar returns the player's AvatarSize×AvatarSize head as RGBA.
func (a *Avatars) Avatar(ctx context.Context, player model.PlayerIdentity) (_ *image.RGBA, err error) {
	defer func() { observe(nameAvatar, err) }()

	u, err := url.JoinPath(a.baseURL, url.PathEscape(player.ID), strconv.Itoa(AvatarSize))
	if err != nil {
		return nil, fmt.Errorf("%w: avatar url: %w", ErrUpstream, err)
	}

	res, err := a.get(ctx, nameAvatar, u)
	if err != nil {
		return nil, err
	}
	if !isSuccess(res.status) {
		return nil, fmt.Errorf("%w: avatar status %d", ErrUpstream, res.status)
	}

	return DecodeAvatar(res.body)
}

// DecodeAvatar decodes image bytes into an AvatarSize×AvatarSize RGBA bitmap.
func DecodeAvatar(body []byte) (*image.RGBA, error) {
	src, err := imaging.Decode(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: avatar: %w", ErrDecode, err)
	}
	b := src.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return nil, fmt.Errorf("%w: avatar: empty image", ErrDecode)
	}
	if b.Dx() != AvatarSize || b.Dy() != AvatarSize {
		src = imaging.Resize(src, AvatarSize, AvatarSize, imaging.NearestNeighbor)
	}

	dst := image.NewRGBA(image.Rect(0, 0, AvatarSize, AvatarSize))
	draw.Draw(dst, dst.Bounds(), src, src.Bounds().Min, draw.Src)
	return dst, nil
}
