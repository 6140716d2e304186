package stats_test

import (
	"math"
	"testing"

	"github.com/okian/skycard/internal/domain/model"
	"github.com/okian/skycard/internal/domain/stats"
	. "github.com/smartystreets/goconvey/convey"
)

func levels(taming, farming, mining, combat, foraging, fishing, enchanting, alchemy uint16) model.Skills {
	return model.Skills{
		Taming:     model.Skill{Level: taming},
		Farming:    model.Skill{Level: farming},
		Mining:     model.Skill{Level: mining},
		Combat:     model.Skill{Level: combat},
		Foraging:   model.Skill{Level: foraging},
		Fishing:    model.Skill{Level: fishing},
		Enchanting: model.Skill{Level: enchanting},
		Alchemy:    model.Skill{Level: alchemy},
	}
}

func TestSkillAverage(t *testing.T) {
	Convey("Given eight averaged skill levels", t, func() {
		skills := levels(10, 20, 30, 40, 50, 60, 70, 80)

		Convey("Then the average is their arithmetic mean", func() {
			So(stats.SkillAverage(skills), ShouldEqual, float32(45))
			So(stats.SkillAverageText(skills), ShouldEqual, "Skill Average: 45.00")
		})

		Convey("When the excluded skills are maxed", func() {
			skills.Carpentry.Level = 50
			skills.Runecrafting.Level = 25
			skills.Social.Level = 25

			Convey("Then the average does not move", func() {
				So(stats.SkillAverageText(skills), ShouldEqual, "Skill Average: 45.00")
			})
		})
	})

	Convey("Given a fractional average", t, func() {
		skills := levels(4, 3, 3, 0, 0, 0, 0, 0)

		Convey("Then it is printed with two decimals", func() {
			So(stats.SkillAverageText(skills), ShouldEqual, "Skill Average: 1.25")
		})
	})

	Convey("Given an empty skill set", t, func() {
		Convey("Then the average is zero", func() {
			So(stats.SkillAverageText(model.Skills{}), ShouldEqual, "Skill Average: 0.00")
		})
	})
}

func TestSlayerXP(t *testing.T) {
	Convey("Given slayer experience values", t, func() {
		Convey("Then values below a thousand keep one decimal", func() {
			So(stats.SlayerXP(0), ShouldEqual, "0.0")
			So(stats.SlayerXP(999), ShouldEqual, "999.0")
		})

		Convey("Then thousands are abbreviated with K", func() {
			So(stats.SlayerXP(1_000), ShouldEqual, "1.0K")
			So(stats.SlayerXP(1_500), ShouldEqual, "1.5K")
			So(stats.SlayerXP(999_000), ShouldEqual, "999.0K")
		})

		Convey("Then millions are abbreviated with M", func() {
			So(stats.SlayerXP(1_000_000), ShouldEqual, "1.0M")
			So(stats.SlayerXP(2_340_000), ShouldEqual, "2.3M")
		})
	})
}

func TestNetworth(t *testing.T) {
	Convey("Given a networth summary", t, func() {
		Convey("When the total is absent", func() {
			Convey("Then the inventory placeholder is shown", func() {
				So(stats.Networth(model.Networth{}), ShouldEqual, "No Inventory API")
			})
		})

		Convey("When the total is present", func() {
			total := 1234567.0
			Convey("Then it is printed with thousands separators", func() {
				So(stats.Networth(model.Networth{TotalNetworth: &total}), ShouldEqual, "1,234,567")
			})
		})

		Convey("When the total has a fraction", func() {
			total := 999.99
			Convey("Then the fraction is truncated", func() {
				So(stats.Networth(model.Networth{TotalNetworth: &total}), ShouldEqual, "999")
			})
		})
	})
}

func TestWeights(t *testing.T) {
	Convey("Given weight summaries", t, func() {
		Convey("Then the Senither weight shows total and overflow", func() {
			w := model.Senither{TotalWeight: 12345.9, TotalWeightWithOverflow: 13000.1}
			So(stats.SenitherWeight(w), ShouldEqual, "12,345 (13,000)")
		})

		Convey("Then the computed weight is a grouped integer", func() {
			So(stats.Weight(model.WeightScore{Total: 21034.6}), ShouldEqual, "21,034")
		})

		Convey("Then small values have no separator", func() {
			So(stats.Thousands(42), ShouldEqual, "42")
		})

		Convey("Then negative values truncate toward zero", func() {
			So(stats.Weight(model.WeightScore{Total: -12.9}), ShouldEqual, "-12")
		})

		Convey("Then values past the int32 range saturate", func() {
			So(stats.Weight(model.WeightScore{Total: 1e12}), ShouldEqual, "2,147,483,647")
			So(stats.Weight(model.WeightScore{Total: -1e12}), ShouldEqual, "-2,147,483,648")
			w := model.Senither{TotalWeight: float32(math.Inf(1)), TotalWeightWithOverflow: float32(math.NaN())}
			So(stats.SenitherWeight(w), ShouldEqual, "2,147,483,647 (0)")
		})
	})
}
