package gear_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/raid-planner/internal/entities/gear"
)

type GearTestSuite struct {
	suite.Suite
	catalog gear.StaticCatalog
}

func TestGearSuite(t *testing.T) {
	suite.Run(t, new(GearTestSuite))
}

func (s *GearTestSuite) SetupTest() {
	s.catalog = gear.NewStaticCatalog(
		&gear.Piece{ID: "w1", Slot: gear.SlotWeapon, ItemLevel: 730},
		&gear.Piece{ID: "h1", Slot: gear.SlotHead, ItemLevel: 720},
		&gear.Piece{ID: "r1", Slot: gear.SlotRing, ItemLevel: 710},
	)
}

func (s *GearTestSuite) TestAverageItemLevel() {
	testCases := []struct {
		name     string
		items    map[gear.Slot]string
		expected int
	}{
		{
			name:     "empty set",
			items:    map[gear.Slot]string{},
			expected: 0,
		},
		{
			name:     "weapon counts twice",
			items:    map[gear.Slot]string{gear.SlotWeapon: "w1"},
			expected: 730 * 2 / 11,
		},
		{
			name: "mixed slots",
			items: map[gear.Slot]string{
				gear.SlotWeapon: "w1",
				gear.SlotHead:   "h1",
				gear.SlotRing:   "r1",
			},
			expected: (730*2 + 720 + 710) / 11,
		},
		{
			name:     "unknown pieces are ignored",
			items:    map[gear.Slot]string{gear.SlotHead: "missing"},
			expected: 0,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			set := &gear.Set{Items: tc.items}
			s.Assert().Equal(tc.expected, gear.AverageItemLevel(set, s.catalog))
		})
	}
}

func (s *GearTestSuite) TestAverageItemLevelNilInputs() {
	s.Assert().Equal(0, gear.AverageItemLevel(nil, s.catalog))
	s.Assert().Equal(0, gear.AverageItemLevel(&gear.Set{}, nil))
}

func TestAllSlotsOrderAndCopy(t *testing.T) {
	slots := gear.AllSlots()
	assert.Len(t, slots, 10)
	assert.Equal(t, gear.SlotWeapon, slots[0])
	assert.Equal(t, gear.SlotRing, slots[9])

	slots[0] = gear.SlotRing
	assert.Equal(t, gear.SlotWeapon, gear.AllSlots()[0])
}

func TestSlotClassification(t *testing.T) {
	accessories := 0
	for _, slot := range gear.AllSlots() {
		assert.True(t, slot.IsValid())
		if slot.IsAccessory() {
			accessories++
		}
	}
	assert.Equal(t, 4, accessories)
	assert.False(t, gear.Slot("cloak").IsValid())
	assert.False(t, gear.Tier("legendary").IsValid())
	assert.True(t, gear.TierTomeAugmented.IsValid())
}

func TestSetItemAt(t *testing.T) {
	var nilSet *gear.Set
	_, ok := nilSet.ItemAt(gear.SlotHead)
	assert.False(t, ok)

	set := &gear.Set{Items: map[gear.Slot]string{gear.SlotHead: "h1", gear.SlotFeet: ""}}
	id, ok := set.ItemAt(gear.SlotHead)
	assert.True(t, ok)
	assert.Equal(t, "h1", id)

	_, ok = set.ItemAt(gear.SlotFeet)
	assert.False(t, ok)
}
