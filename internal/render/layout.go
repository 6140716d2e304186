package render

import (
	"image"
	"image/color"
	"strconv"

	"github.com/okian/skycard/internal/domain/model"
	"github.com/okian/skycard/internal/domain/stats"
)

// Watermark is printed under the profile name.
const Watermark = "skyblock-stats.antonio32a.com"

// Layout geometry, in template pixels.
const (
	headerX      = 80
	nameY        = 20
	idY          = 50
	rowX         = 20
	rowTop       = 100
	rowPitch     = 75
	rowValueDrop = 30
	skillCell    = 40
	averageX     = 460
	averageY     = 345
	averageBand  = 320
	slayerCell   = 100
)

var avatarAt = image.Pt(20, 20)

// Text is one positioned string on the card. X and Y are the top-left origin.
type Text struct {
	Value string
	X, Y  int
	Size  Size
	Color color.RGBA
}

type anchor struct {
	x, y int
}

// skillAnchors orders the skill grid, catacombs last.
var skillAnchors = []anchor{
	{520, 105}, {630, 105}, {740, 105},
	{520, 165}, {630, 165}, {740, 165},
	{520, 225}, {630, 225}, {740, 225},
	{520, 285}, {630, 285}, {740, 285},
}

var slayerAnchors = []anchor{
	{350, 105}, {350, 165}, {350, 225}, {350, 285}, {350, 345},
}

// rightAlignX is the origin that puts text flush against the right margin.
func (fc faces) rightAlignX(text string, size Size) int {
	return TemplateWidth - RightMargin - fc.width(text, size)
}

// centerX centers text within a cell starting at x.
func (fc faces) centerX(text string, size Size, x, cell int) int {
	return x + (cell-fc.width(text, size))/2
}

func (fc faces) layout(player model.PlayerIdentity, profile model.GameProfile, weight model.WeightScore) []Text {
	dungeons := profile.DungeonsOrDefault()

	texts := []Text{
		{Value: player.Name, X: headerX, Y: nameY, Size: Large, Color: Black},
		{Value: player.ID, X: headerX, Y: idY, Size: Small, Color: LightGray},
		{Value: profile.Name, X: fc.rightAlignX(profile.Name, Large), Y: nameY, Size: Large, Color: DarkGray},
		{Value: Watermark, X: fc.rightAlignX(Watermark, Small), Y: idY, Size: Small, Color: LightGray},
	}

	rows := []struct{ label, value string }{
		{"Networth", stats.Networth(profile.Networth)},
		{"Secrets", stats.Thousands(int64(dungeons.SecretsFound))},
		{"Senither Weight", stats.SenitherWeight(profile.Weight)},
		{"Lily Weight", stats.Weight(weight)},
	}
	for i, row := range rows {
		y := rowTop + rowPitch*i
		texts = append(texts,
			Text{Value: row.label, X: rowX, Y: y, Size: Large, Color: Black},
			Text{Value: row.value, X: rowX, Y: y + rowValueDrop, Size: Large, Color: DarkGray},
		)
	}

	s := profile.Skills
	levels := []uint16{
		s.Taming.Level, s.Farming.Level, s.Carpentry.Level,
		s.Mining.Level, s.Combat.Level, s.Runecrafting.Level,
		s.Foraging.Level, s.Fishing.Level, s.Social.Level,
		s.Enchanting.Level, s.Alchemy.Level, dungeons.Catacombs.Skill.Level,
	}
	for i, level := range levels {
		a := skillAnchors[i]
		v := strconv.Itoa(int(level))
		texts = append(texts, Text{Value: v, X: fc.centerX(v, Large, a.x, skillCell), Y: a.y, Size: Large, Color: DarkGray})
	}

	avg := stats.SkillAverageText(s)
	texts = append(texts, Text{Value: avg, X: fc.centerX(avg, Large, averageX, averageBand), Y: averageY, Size: Large, Color: DarkGray})

	sl := profile.Slayer
	for i, xp := range []uint64{sl.Zombie.XP, sl.Spider.XP, sl.Wolf.XP, sl.Enderman.XP, sl.Blaze.XP} {
		a := slayerAnchors[i]
		v := stats.SlayerXP(xp)
		texts = append(texts, Text{Value: v, X: fc.centerX(v, Large, a.x, slayerCell), Y: a.y, Size: Large, Color: DarkGray})
	}

	return texts
}
