package testutils

import (
	"github.com/KirkDiggler/raid-planner/internal/entities/gear"
	"github.com/KirkDiggler/raid-planner/internal/entities/loot"
)

// Test equipment IDs
const (
	PieceCraftedWeapon    = "weapon-crafted"
	PieceSavageWeapon     = "weapon-savage"
	PieceTomeHead         = "head-tome"
	PieceAugmentedHead    = "head-augmented"
	PieceAugmentedEarring = "earrings-augmented"
	PieceSavageRing       = "ring-savage"
)

// GearPieces returns a small catalog covering every resource branch
func GearPieces() []*gear.Piece {
	return []*gear.Piece{
		{ID: PieceCraftedWeapon, Name: "Crafted Blade", Slot: gear.SlotWeapon, Tier: gear.TierCrafted, ItemLevel: 710},
		{ID: PieceSavageWeapon, Name: "Savage Blade", Slot: gear.SlotWeapon, Tier: gear.TierRaidHero, ItemLevel: 735},
		{ID: PieceTomeHead, Name: "Tome Helm", Slot: gear.SlotHead, Tier: gear.TierTome, ItemLevel: 720, UpgradeCost: 495},
		{ID: PieceAugmentedHead, Name: "Augmented Tome Helm", Slot: gear.SlotHead, Tier: gear.TierTomeAugmented, ItemLevel: 730, UpgradeCost: 495},
		{ID: PieceAugmentedEarring, Name: "Augmented Earring", Slot: gear.SlotEarrings, Tier: gear.TierTomeAugmented, ItemLevel: 730, UpgradeCost: 375},
		{ID: PieceSavageRing, Name: "Savage Ring", Slot: gear.SlotRing, Tier: gear.TierRaidHero, ItemLevel: 730},
	}
}

// GearCatalog returns GearPieces as an in-memory catalog
func GearCatalog() gear.StaticCatalog {
	return gear.NewStaticCatalog(GearPieces()...)
}

// CreateTestLedger returns a ledger with the given requirement and nothing obtained
func CreateTestLedger(memberID, groupID string, required loot.Resources) *loot.Ledger {
	l := loot.NewLedger(memberID, groupID)
	l.Required = required
	l.Remaining = required.Clone()
	return l
}
