// Package gear holds the equipment reference types shared by the planner.
package gear

// Slot is an equippable body position
type Slot string

// Equippable slots
const (
	SlotWeapon   Slot = "weapon"
	SlotHead     Slot = "head"
	SlotBody     Slot = "body"
	SlotHands    Slot = "hands"
	SlotLegs     Slot = "legs"
	SlotFeet     Slot = "feet"
	SlotEarrings Slot = "earrings"
	SlotNecklace Slot = "necklace"
	SlotBracelet Slot = "bracelet"
	SlotRing     Slot = "ring"
)

// allSlots fixes iteration order for every slot-wise computation
var allSlots = [...]Slot{
	SlotWeapon,
	SlotHead,
	SlotBody,
	SlotHands,
	SlotLegs,
	SlotFeet,
	SlotEarrings,
	SlotNecklace,
	SlotBracelet,
	SlotRing,
}

// String returns the string representation of the slot
func (s Slot) String() string {
	return string(s)
}

// IsValid checks if the slot is one of the known slots
func (s Slot) IsValid() bool {
	for _, known := range allSlots {
		if s == known {
			return true
		}
	}
	return false
}

// IsAccessory reports whether the slot is one of the four accessory slots
func (s Slot) IsAccessory() bool {
	switch s {
	case SlotEarrings, SlotNecklace, SlotBracelet, SlotRing:
		return true
	default:
		return false
	}
}

// AllSlots returns every slot in canonical order, weapon first
func AllSlots() []Slot {
	out := make([]Slot, len(allSlots))
	copy(out, allSlots[:])
	return out
}

// Tier is how a piece is acquired. It selects the resource branch used when
// the piece is a target.
type Tier string

// Acquisition tiers
const (
	TierRaidHero      Tier = "raid_hero"
	TierRaidNormal    Tier = "raid_normal"
	TierTome          Tier = "tome"
	TierTomeAugmented Tier = "tome_augmented"
	TierCrafted       Tier = "crafted"
	TierOther         Tier = "other"
)

// String returns the string representation of the tier
func (t Tier) String() string {
	return string(t)
}

// IsValid checks if the tier is known
func (t Tier) IsValid() bool {
	switch t {
	case TierRaidHero, TierRaidNormal, TierTome, TierTomeAugmented, TierCrafted, TierOther:
		return true
	default:
		return false
	}
}

// Piece is immutable catalog reference data for one equipment item
type Piece struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Slot      Slot   `json:"slot"`
	Tier      Tier   `json:"tier"`
	ItemLevel int    `json:"item_level"`
	// UpgradeCost is the tome currency price for tome tiers
	UpgradeCost int `json:"upgrade_cost"`
}

// SetKind distinguishes what a gear set represents for a member
type SetKind string

// Set kinds
const (
	SetKindStarting SetKind = "starting"
	SetKindCurrent  SetKind = "current"
	SetKindBIS      SetKind = "bis"
)

// IsValid checks if the set kind is known
func (k SetKind) IsValid() bool {
	switch k {
	case SetKindStarting, SetKindCurrent, SetKindBIS:
		return true
	default:
		return false
	}
}

// Set maps slots to equipment IDs for one member in one raid group.
// A missing slot means the slot is empty.
type Set struct {
	MemberID string          `json:"member_id"`
	GroupID  string          `json:"group_id"`
	Kind     SetKind         `json:"kind"`
	Items    map[Slot]string `json:"items"`
}

// ItemAt returns the equipment ID in a slot
func (s *Set) ItemAt(slot Slot) (string, bool) {
	if s == nil || s.Items == nil {
		return "", false
	}
	id, ok := s.Items[slot]
	if !ok || id == "" {
		return "", false
	}
	return id, true
}
