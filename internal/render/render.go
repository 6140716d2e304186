// Package render composites a player's stat card onto the embedded template.
//
// Rendering is pure: the same inputs always give the same pixels. The only
// failure mode is a corrupt embedded asset, which New reports at startup.
package render

import (
	"bytes"
	_ "embed"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	"github.com/okian/skycard/internal/domain/model"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

//go:embed assets/template.png
var templatePNG []byte

// Template geometry.
const (
	TemplateWidth  = 800
	TemplateHeight = 400
	RightMargin    = 15
)

// Size is a font size in pixels.
type Size float64

// The two text sizes used on the card.
const (
	Small Size = 20
	Large Size = 30
)

// Card colors.
var (
	Black     = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	LightGray = color.RGBA{R: 137, G: 137, B: 137, A: 255}
	DarkGray  = color.RGBA{R: 100, G: 100, B: 100, A: 255}
)

// Renderer holds the decoded template and parsed font. It is safe for
// concurrent use; per-call state lives in faces.
type Renderer struct {
	template *image.RGBA
	font     *opentype.Font
}

// New decodes the embedded assets.
func New() (*Renderer, error) {
	src, err := png.Decode(bytes.NewReader(templatePNG))
	if err != nil {
		return nil, fmt.Errorf("%w: template: %w", ErrAsset, err)
	}
	if b := src.Bounds(); b.Dx() != TemplateWidth || b.Dy() != TemplateHeight {
		return nil, fmt.Errorf("%w: template is %dx%d, want %dx%d", ErrAsset, b.Dx(), b.Dy(), TemplateWidth, TemplateHeight)
	}
	tmpl := image.NewRGBA(image.Rect(0, 0, TemplateWidth, TemplateHeight))
	draw.Draw(tmpl, tmpl.Bounds(), src, src.Bounds().Min, draw.Src)

	f, err := opentype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("%w: font: %w", ErrAsset, err)
	}

	r := &Renderer{template: tmpl, font: f}
	fc, err := r.newFaces()
	if err != nil {
		return nil, err
	}
	fc.close()
	return r, nil
}

// Render draws the card. The avatar is expected to be 50×50.
func (r *Renderer) Render(player model.PlayerIdentity, profile model.GameProfile, weight model.WeightScore, avatar *image.RGBA) *image.RGBA {
	fc := r.mustFaces()
	defer fc.close()

	img := image.NewRGBA(r.template.Bounds())
	copy(img.Pix, r.template.Pix)

	if avatar != nil {
		at := image.Rectangle{Min: avatarAt, Max: avatarAt.Add(avatar.Bounds().Size())}
		draw.Draw(img, at, avatar, avatar.Bounds().Min, draw.Over)
	}

	for _, t := range fc.layout(player, profile, weight) {
		fc.draw(img, t)
	}
	return img
}

// Layout returns every text item of the card with its resolved position.
func (r *Renderer) Layout(player model.PlayerIdentity, profile model.GameProfile, weight model.WeightScore) []Text {
	fc := r.mustFaces()
	defer fc.close()
	return fc.layout(player, profile, weight)
}

// TextWidth is the advance width of text in whole pixels.
func (r *Renderer) TextWidth(text string, size Size) int {
	fc := r.mustFaces()
	defer fc.close()
	return fc.width(text, size)
}

// faces holds one face per size. opentype faces are not safe for
// concurrent use, so each render gets its own set.
type faces map[Size]font.Face

func (r *Renderer) newFaces() (faces, error) {
	fc := faces{}
	for _, s := range []Size{Small, Large} {
		face, err := opentype.NewFace(r.font, &opentype.FaceOptions{
			Size:    float64(s),
			DPI:     72,
			Hinting: font.HintingNone,
		})
		if err != nil {
			fc.close()
			return nil, fmt.Errorf("%w: face %v: %w", ErrAsset, s, err)
		}
		fc[s] = face
	}
	return fc, nil
}

// mustFaces panics only if the options New already validated stop working.
func (r *Renderer) mustFaces() faces {
	fc, err := r.newFaces()
	if err != nil {
		panic(err)
	}
	return fc
}

func (fc faces) close() {
	for _, f := range fc {
		_ = f.Close()
	}
}

// width sums glyph advances from the origin, truncated to whole pixels.
func (fc faces) width(text string, size Size) int {
	return font.MeasureString(fc[size], text).Floor()
}

// draw paints t with its top edge at t.Y.
func (fc faces) draw(dst draw.Image, t Text) {
	face := fc[t.Size]
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(t.Color),
		Face: face,
		Dot:  fixed.P(t.X, t.Y+face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(t.Value)
}
