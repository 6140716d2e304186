// Package model contains domain models passed between layers.
package model

import "errors"

// ErrNoProfiles is returned when a player has no game profiles to select from.
var ErrNoProfiles = errors.New("no profiles")

// PlayerIdentity is the resolved directory entry for a username.
type PlayerIdentity struct {
	Name string `json:"name"`
	ID   string `json:"id"` // opaque player id, key for every other fetch
}

// GameProfile is one save-state snapshot of a player.
type GameProfile struct {
	Username   string    `json:"username"`
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	LastSave   uint64    `json:"last_save"` // used only for selecting the latest profile
	FairySouls uint16    `json:"fairy_souls"`
	Networth   Networth  `json:"networth"`
	Weight     Senither  `json:"weight"`
	Skills     Skills    `json:"skills"`
	Dungeons   *Dungeons `json:"dungeons"`
	Slayer     Slayers   `json:"slayer"`
}

// Networth is absent-by-field when the upstream inventory computation was skipped.
type Networth struct {
	NoInventory   *bool    `json:"no_inventory"`
	TotalNetworth *float64 `json:"total_networth"`
	Purse         *float64 `json:"purse"`
	Bank          *float64 `json:"bank"`
}

// Senither is the Senither-style weight summary carried inside a profile.
type Senither struct {
	TotalWeight             float32 `json:"total_weight"`
	TotalWeightWithOverflow float32 `json:"total_weight_with_overflow"`
}

// Skills holds the eleven tracked skills.
type Skills struct {
	Farming      Skill `json:"farming"`
	Mining       Skill `json:"mining"`
	Combat       Skill `json:"combat"`
	Foraging     Skill `json:"foraging"`
	Fishing      Skill `json:"fishing"`
	Enchanting   Skill `json:"enchanting"`
	Alchemy      Skill `json:"alchemy"`
	Carpentry    Skill `json:"carpentry"`
	Runecrafting Skill `json:"runecrafting"`
	Social       Skill `json:"social"`
	Taming       Skill `json:"taming"`
}

// Skill is the progress of a single skill track.
type Skill struct {
	XP                uint64   `json:"xp"`
	Level             uint16   `json:"level"`
	XPCurrent         uint64   `json:"xpCurrent"`
	XPForNext         uint64   `json:"xpForNext"`
	Progress          float32  `json:"progress"`
	LevelWithProgress *float32 `json:"levelWithProgress"`
}

// Dungeons summarises dungeon runs. Absent for players who never entered one.
type Dungeons struct {
	SelectedClass *string   `json:"selected_class"`
	SecretsFound  uint32    `json:"secrets_found"`
	Catacombs     Catacombs `json:"catacombs"`
}

// Catacombs is the dungeon-specific skill track.
type Catacombs struct {
	Skill                Skill   `json:"skill"`
	HighestTierCompleted *string `json:"highest_tier_completed"`
}

// Slayers holds the five slayer categories.
type Slayers struct {
	Zombie   Slayer `json:"zombie"`
	Spider   Slayer `json:"spider"`
	Wolf     Slayer `json:"wolf"`
	Enderman Slayer `json:"enderman"`
	Blaze    Slayer `json:"blaze"`
}

// Slayer is the progress of one slayer category.
type Slayer struct {
	XP        uint64  `json:"xp"`
	Level     uint16  `json:"level"`
	XPForNext uint64  `json:"xpForNext"`
	Progress  float32 `json:"progress"`
}

// WeightScore is the independently computed weight metric.
type WeightScore struct {
	UUID   string  `json:"uuid"`
	Total  float32 `json:"total"`
	Slayer float32 `json:"slayer"`
}

// DungeonsOrDefault returns the dungeon summary, or an all-zero record when the
// player has none.
func (p GameProfile) DungeonsOrDefault() Dungeons {
	if p.Dungeons == nil {
		return Dungeons{
			SelectedClass: nil,
			SecretsFound:  0,
			Catacombs: Catacombs{
				Skill:                Skill{},
				HighestTierCompleted: nil,
			},
		}
	}
	return *p.Dungeons
}

// LatestProfile returns the profile with the greatest LastSave. On ties the
// later element wins. An empty slice yields ErrNoProfiles.
func LatestProfile(profiles []GameProfile) (GameProfile, error) {
	if len(profiles) == 0 {
		return GameProfile{}, ErrNoProfiles
	}
	latest := profiles[0]
	for _, p := range profiles[1:] {
		if p.LastSave >= latest.LastSave {
			latest = p
		}
	}
	return latest, nil
}
