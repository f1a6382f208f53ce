// Package builders provides test data builders for creating test fixtures
package builders

import (
	"github.com/KirkDiggler/raid-planner/internal/entities/gear"
)

// GearSetBuilder provides a fluent interface for building test gear sets
type GearSetBuilder struct {
	set *gear.Set
}

// NewGearSetBuilder creates an empty bis set for a default member and group
func NewGearSetBuilder() *GearSetBuilder {
	return &GearSetBuilder{
		set: &gear.Set{
			MemberID: "member-test-1",
			GroupID:  "group-test-1",
			Kind:     gear.SetKindBIS,
			Items:    map[gear.Slot]string{},
		},
	}
}

// ForMember sets the member and group IDs
func (b *GearSetBuilder) ForMember(memberID, groupID string) *GearSetBuilder {
	b.set.MemberID = memberID
	b.set.GroupID = groupID
	return b
}

// WithKind sets the set kind
func (b *GearSetBuilder) WithKind(kind gear.SetKind) *GearSetBuilder {
	b.set.Kind = kind
	return b
}

// WithItem places an equipment ID in a slot
func (b *GearSetBuilder) WithItem(slot gear.Slot, pieceID string) *GearSetBuilder {
	b.set.Items[slot] = pieceID
	return b
}

// WithItems places every slot of items
func (b *GearSetBuilder) WithItems(items map[gear.Slot]string) *GearSetBuilder {
	for slot, id := range items {
		b.set.Items[slot] = id
	}
	return b
}

// Build returns a copy of the set
func (b *GearSetBuilder) Build() *gear.Set {
	items := make(map[gear.Slot]string, len(b.set.Items))
	for slot, id := range b.set.Items {
		items[slot] = id
	}
	out := *b.set
	out.Items = items
	return &out
}
