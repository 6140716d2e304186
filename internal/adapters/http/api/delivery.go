package api

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"net/http"
	"strconv"

	"github.com/disintegration/imaging"
	"github.com/okian/skycard/pkg/logger"
	"github.com/okian/skycard/pkg/metrics"
)

// forumScale is the shrink factor for forum signatures.
const forumScale = 1.35

// Delivery variants used as metric labels.
const (
	variantFull  = "full"
	variantForum = "forum"
)

// Downscale shrinks img by forumScale with nearest-neighbour sampling. Each
// side is rounded down, so an 800×400 card becomes 592×296.
func Downscale(img image.Image) *image.NRGBA {
	b := img.Bounds()
	w := int(float64(b.Dx()) / forumScale)
	h := int(float64(b.Dy()) / forumScale)
	return imaging.Resize(img, w, h, imaging.NearestNeighbor)
}

// EncodePNG writes img as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	if err := imaging.Encode(w, img, imaging.PNG); err != nil {
		return fmt.Errorf("%w: %w", ErrEncode, err)
	}
	return nil
}

// writeCard encodes the card for the requesting client. Forum crawlers get
// the small variant.
func (h *CardHandler) writeCard(w http.ResponseWriter, r *http.Request, card *image.RGBA) {
	var out image.Image = card
	variant := variantFull
	if h.forumUserAgent != "" && r.UserAgent() == h.forumUserAgent {
		out = Downscale(card)
		variant = variantForum
	}

	var buf bytes.Buffer
	if err := EncodePNG(&buf, out); err != nil {
		h.logger.Error(r.Context(), "could not encode card",
			logger.String("request_id", RequestID(r.Context())),
			logger.Error(err),
		)
		http.Error(w, msgInternal, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
	metrics.RecordCardDelivered(variant)
}
