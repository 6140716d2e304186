package render_test

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/okian/skycard/internal/domain/model"
	"github.com/okian/skycard/internal/render"
	. "github.com/smartystreets/goconvey/convey"
)

func sampleProfile() model.GameProfile {
	total := 1234567.0
	p := model.GameProfile{
		Name:     "Banana",
		LastSave: 100,
		Networth: model.Networth{TotalNetworth: &total},
		Weight:   model.Senither{TotalWeight: 5123.4, TotalWeightWithOverflow: 5400.9},
		Dungeons: &model.Dungeons{SecretsFound: 4321},
	}
	p.Dungeons.Catacombs.Skill.Level = 33
	p.Skills.Taming.Level = 10
	p.Skills.Farming.Level = 20
	p.Skills.Mining.Level = 30
	p.Skills.Combat.Level = 40
	p.Skills.Foraging.Level = 50
	p.Skills.Fishing.Level = 60
	p.Skills.Enchanting.Level = 70
	p.Skills.Alchemy.Level = 80
	p.Skills.Carpentry.Level = 5
	p.Slayer.Zombie.XP = 999
	p.Slayer.Spider.XP = 1_500
	p.Slayer.Wolf.XP = 2_340_000
	return p
}

var (
	samplePlayer = model.PlayerIdentity{Name: "Notch", ID: "069a79f444e94726a5befca90e38aaf5"}
	sampleWeight = model.WeightScore{Total: 21034.6}
)

func solidAvatar(c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 50, 50))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = c.R, c.G, c.B, c.A
	}
	return img
}

func find(texts []render.Text, value string) (render.Text, bool) {
	for _, t := range texts {
		if t.Value == value {
			return t, true
		}
	}
	return render.Text{}, false
}

func TestRenderer(t *testing.T) {
	Convey("Given a renderer built from the embedded assets", t, func() {
		r, err := render.New()
		So(err, ShouldBeNil)

		Convey("When a card is rendered", func() {
			red := color.RGBA{R: 220, G: 20, B: 20, A: 255}
			img := r.Render(samplePlayer, sampleProfile(), sampleWeight, solidAvatar(red))

			Convey("Then it has the template dimensions", func() {
				So(img.Bounds().Dx(), ShouldEqual, render.TemplateWidth)
				So(img.Bounds().Dy(), ShouldEqual, render.TemplateHeight)
			})

			Convey("And the avatar is overlaid at the top left", func() {
				So(img.RGBAAt(20, 20), ShouldResemble, red)
				So(img.RGBAAt(69, 69), ShouldResemble, red)
				So(img.RGBAAt(70, 70), ShouldNotResemble, red)
			})

			Convey("And text is painted over the name area", func() {
				blank := r.Render(model.PlayerIdentity{}, model.GameProfile{}, model.WeightScore{}, nil)
				changed := 0
				for y := 20; y < 50; y++ {
					for x := 80; x < 300; x++ {
						if img.RGBAAt(x, y) != blank.RGBAAt(x, y) {
							changed++
						}
					}
				}
				So(changed, ShouldBeGreaterThan, 0)
			})

			Convey("And rendering is deterministic", func() {
				again := r.Render(samplePlayer, sampleProfile(), sampleWeight, solidAvatar(red))
				So(bytes.Equal(img.Pix, again.Pix), ShouldBeTrue)
			})
		})

		Convey("When the template is rendered twice", func() {
			a := r.Render(samplePlayer, sampleProfile(), sampleWeight, nil)
			_ = r.Render(model.PlayerIdentity{Name: "Other"}, model.GameProfile{}, model.WeightScore{}, nil)
			b := r.Render(samplePlayer, sampleProfile(), sampleWeight, nil)

			Convey("Then earlier renders do not leak into the template", func() {
				So(bytes.Equal(a.Pix, b.Pix), ShouldBeTrue)
			})
		})
	})
}

func TestLayout(t *testing.T) {
	Convey("Given a renderer", t, func() {
		r, err := render.New()
		So(err, ShouldBeNil)

		texts := r.Layout(samplePlayer, sampleProfile(), sampleWeight)

		Convey("Then every card element is laid out", func() {
			So(len(texts), ShouldEqual, 4+8+12+1+5)
		})

		Convey("Then the header shows name and id", func() {
			name, ok := find(texts, "Notch")
			So(ok, ShouldBeTrue)
			So(name.X, ShouldEqual, 80)
			So(name.Size, ShouldEqual, render.Large)
			So(name.Color, ShouldResemble, render.Black)

			id, ok := find(texts, samplePlayer.ID)
			So(ok, ShouldBeTrue)
			So(id.Y, ShouldEqual, 50)
			So(id.Color, ShouldResemble, render.LightGray)
		})

		Convey("Then right-aligned strings end exactly at the margin", func() {
			for _, v := range []string{"Banana", render.Watermark} {
				item, ok := find(texts, v)
				So(ok, ShouldBeTrue)
				So(item.X+r.TextWidth(v, item.Size)+render.RightMargin, ShouldEqual, render.TemplateWidth)
			}
		})

		Convey("Then the stat rows are stacked with a fixed pitch", func() {
			for i, pair := range [][2]string{
				{"Networth", "1,234,567"},
				{"Secrets", "4,321"},
				{"Senither Weight", "5,123 (5,400)"},
				{"Lily Weight", "21,034"},
			} {
				label, ok := find(texts, pair[0])
				So(ok, ShouldBeTrue)
				So(label.Y, ShouldEqual, 100+75*i)
				value, ok := find(texts, pair[1])
				So(ok, ShouldBeTrue)
				So(value.Y, ShouldEqual, label.Y+30)
				So(value.Color, ShouldResemble, render.DarkGray)
			}
		})

		Convey("Then skill levels are centered in their cells", func() {
			avg, ok := find(texts, "Skill Average: 45.00")
			So(ok, ShouldBeTrue)
			So(avg.X, ShouldEqual, 460+(320-r.TextWidth(avg.Value, render.Large))/2)

			cata, ok := find(texts, "33")
			So(ok, ShouldBeTrue)
			So(cata.X, ShouldEqual, 740+(40-r.TextWidth("33", render.Large))/2)
			So(cata.Y, ShouldEqual, 285)
		})

		Convey("Then slayer experience is abbreviated and centered", func() {
			for _, v := range []string{"999.0", "1.5K", "2.3M"} {
				item, ok := find(texts, v)
				So(ok, ShouldBeTrue)
				So(item.X, ShouldEqual, 350+(100-r.TextWidth(v, render.Large))/2)
			}
		})

		Convey("When the profile has no inventory API or dungeons", func() {
			p := sampleProfile()
			p.Networth = model.Networth{}
			p.Dungeons = nil
			texts := r.Layout(samplePlayer, p, sampleWeight)

			Convey("Then placeholders are shown instead of failing", func() {
				_, ok := find(texts, "No Inventory API")
				So(ok, ShouldBeTrue)
				secrets, ok := find(texts, "Secrets")
				So(ok, ShouldBeTrue)
				zero, ok := find(texts, "0")
				So(ok, ShouldBeTrue)
				So(zero.Y, ShouldEqual, secrets.Y+30)
			})
		})
	})
}

func TestTextWidth(t *testing.T) {
	Convey("Given the embedded monospace font", t, func() {
		r, err := render.New()
		So(err, ShouldBeNil)

		Convey("Then widths grow linearly with length", func() {
			one := r.TextWidth("a", render.Large)
			So(one, ShouldBeGreaterThan, 0)
			So(r.TextWidth("abcd", render.Large), ShouldBeBetweenOrEqual, 4*one, 4*one+4)
		})

		Convey("Then the larger size is wider", func() {
			So(r.TextWidth("Notch", render.Large), ShouldBeGreaterThan, r.TextWidth("Notch", render.Small))
		})

		Convey("Then the empty string has no width", func() {
			So(r.TextWidth("", render.Small), ShouldEqual, 0)
		})
	})
}
