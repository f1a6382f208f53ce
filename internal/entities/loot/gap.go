package loot

import "github.com/KirkDiggler/raid-planner/internal/entities/gear"

// NoneLabel names an empty slot in a change list
const NoneLabel = "none"

// Change describes one slot swap needed to reach the target set
type Change struct {
	Slot gear.Slot `json:"slot"`
	From string    `json:"from"`
	To   string    `json:"to"`
	Tier gear.Tier `json:"tier"`
}

// Gap is the result of diffing a member's current set against a target set
type Gap struct {
	Changes          []Change  `json:"changes"`
	Required         Resources `json:"required"`
	UpgradeMaterials Resources `json:"upgrade_materials"`
	TomeTotal        int       `json:"tome_total"`
}
