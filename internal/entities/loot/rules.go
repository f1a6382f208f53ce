// Package loot holds resource rule tables and the per-member resource ledger.
package loot

import "github.com/KirkDiggler/raid-planner/internal/entities/gear"

// Resource keys. Tokens are per slot; the rest are shared currencies and
// upgrade materials.
const (
	KeyWeaponToken   = "weapon_token"
	KeyHeadToken     = "head_token"
	KeyBodyToken     = "body_token"
	KeyHandsToken    = "hands_token"
	KeyLegsToken     = "legs_token"
	KeyFeetToken     = "feet_token"
	KeyEarringsToken = "earrings_token"
	KeyNecklaceToken = "necklace_token"
	KeyBraceletToken = "bracelet_token"
	KeyRingToken     = "ring_token"

	KeyTomeCurrency        = "tome_currency"
	KeyHardeningMaterial   = "hardening_material"
	KeyReinforcingFiber    = "reinforcing_fiber"
	KeyEnhancementSolution = "enhancement_solution"
)

// SlotRule is the resource rule for one slot
type SlotRule struct {
	Token      string
	TokenCount int
	Material   string
}

var slotRules = map[gear.Slot]SlotRule{
	gear.SlotWeapon:   {Token: KeyWeaponToken, TokenCount: 8, Material: KeyReinforcingFiber},
	gear.SlotHead:     {Token: KeyHeadToken, TokenCount: 4, Material: KeyReinforcingFiber},
	gear.SlotBody:     {Token: KeyBodyToken, TokenCount: 6, Material: KeyReinforcingFiber},
	gear.SlotHands:    {Token: KeyHandsToken, TokenCount: 4, Material: KeyReinforcingFiber},
	gear.SlotLegs:     {Token: KeyLegsToken, TokenCount: 6, Material: KeyReinforcingFiber},
	gear.SlotFeet:     {Token: KeyFeetToken, TokenCount: 4, Material: KeyReinforcingFiber},
	gear.SlotEarrings: {Token: KeyEarringsToken, TokenCount: 3, Material: KeyHardeningMaterial},
	gear.SlotNecklace: {Token: KeyNecklaceToken, TokenCount: 3, Material: KeyHardeningMaterial},
	gear.SlotBracelet: {Token: KeyBraceletToken, TokenCount: 3, Material: KeyHardeningMaterial},
	gear.SlotRing:     {Token: KeyRingToken, TokenCount: 3, Material: KeyHardeningMaterial},
}

// RuleFor returns the resource rule for a slot
func RuleFor(slot gear.Slot) (SlotRule, bool) {
	r, ok := slotRules[slot]
	return r, ok
}

// TrackedItem is an item key considered by priority passes. Weight mirrors
// acquisition cost and is informational only.
type TrackedItem struct {
	Key    string `json:"key"`
	Weight int    `json:"weight"`
}

var trackedItems = [...]TrackedItem{
	{Key: KeyEarringsToken, Weight: 3},
	{Key: KeyNecklaceToken, Weight: 3},
	{Key: KeyBraceletToken, Weight: 3},
	{Key: KeyRingToken, Weight: 3},
	{Key: KeyHeadToken, Weight: 4},
	{Key: KeyHandsToken, Weight: 4},
	{Key: KeyFeetToken, Weight: 4},
	{Key: KeyBodyToken, Weight: 6},
	{Key: KeyLegsToken, Weight: 6},
	{Key: KeyWeaponToken, Weight: 8},
	{Key: KeyHardeningMaterial, Weight: 4},
	{Key: KeyReinforcingFiber, Weight: 4},
	{Key: KeyEnhancementSolution, Weight: 4},
}

// TrackedItems returns the item keys ranked by a priority pass
func TrackedItems() []TrackedItem {
	out := make([]TrackedItem, len(trackedItems))
	copy(out, trackedItems[:])
	return out
}
