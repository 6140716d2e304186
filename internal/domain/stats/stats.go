// Package stats derives and formats the numbers printed on a stat card.
package stats

import (
	"fmt"
	"math"

	"github.com/okian/skycard/internal/domain/model"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// NoInventoryText replaces the networth when the inventory API is disabled.
const NoInventoryText = "No Inventory API"

// Slayer suffix thresholds.
const (
	thousand = 1_000
	million  = 1_000_000
)

// printer groups digits the way the English locale does ("1,234,567").
var printer = message.NewPrinter(language.English) //nolint:gochecknoglobals // immutable formatter

// Thousands formats n with comma thousands separators.
func Thousands(n int64) string {
	return printer.Sprintf("%d", n)
}

// Networth returns the card text for a networth summary.
func Networth(n model.Networth) string {
	if n.TotalNetworth == nil {
		return NoInventoryText
	}
	return Thousands(int64(*n.TotalNetworth))
}

// SenitherWeight renders "total (overflow)" with both parts truncated to integers.
func SenitherWeight(w model.Senither) string {
	return fmt.Sprintf("%s (%s)",
		Thousands(truncate32(w.TotalWeight)),
		Thousands(truncate32(w.TotalWeightWithOverflow)),
	)
}

// Weight renders the computed weight total.
func Weight(w model.WeightScore) string {
	return Thousands(truncate32(w.Total))
}

// truncate32 truncates f toward zero into the int32 range, saturating at the
// bounds. NaN becomes zero.
func truncate32(f float32) int64 {
	switch {
	case math.IsNaN(float64(f)):
		return 0
	case f >= math.MaxInt32:
		return math.MaxInt32
	case f <= math.MinInt32:
		return math.MinInt32
	}
	return int64(int32(f))
}

// SlayerXP abbreviates slayer experience: 2.3M, 1.5K or 999.0.
func SlayerXP(xp uint64) string {
	switch {
	case xp >= million:
		return fmt.Sprintf("%.1fM", float64(xp)/million)
	case xp >= thousand:
		return fmt.Sprintf("%.1fK", float64(xp)/thousand)
	default:
		return fmt.Sprintf("%.1f", float64(xp))
	}
}

// AverageSkills lists the skills counted by SkillAverage, in card order.
func AverageSkills(s model.Skills) []model.Skill {
	return []model.Skill{
		s.Taming,
		s.Farming,
		s.Mining,
		s.Combat,
		s.Foraging,
		s.Fishing,
		s.Enchanting,
		s.Alchemy,
	}
}

// SkillAverage is the arithmetic mean level of taming, farming, mining,
// combat, foraging, fishing, enchanting and alchemy. Carpentry, runecrafting,
// social and catacombs do not count.
func SkillAverage(s model.Skills) float32 {
	skills := AverageSkills(s)
	var sum uint32
	for _, sk := range skills {
		sum += uint32(sk.Level)
	}
	return float32(sum) / float32(len(skills))
}

// SkillAverageText is the printed skill average line.
func SkillAverageText(s model.Skills) string {
	return fmt.Sprintf("Skill Average: %.2f", SkillAverage(s))
}
