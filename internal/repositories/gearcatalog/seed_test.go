package gearcatalog_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/raid-planner/internal/entities/gear"
	"github.com/KirkDiggler/raid-planner/internal/errors"
	"github.com/KirkDiggler/raid-planner/internal/repositories/gearcatalog"
	"github.com/KirkDiggler/raid-planner/internal/testutils"
)

const seedYAML = `
pieces:
  - id: weapon-savage
    name: Savage Blade
    slot: weapon
    tier: raid_hero
    item_level: 735
  - id: head-tome
    name: Tome Helm
    slot: head
    tier: tome
    item_level: 720
    upgrade_cost: 495
`

func TestParseSeed(t *testing.T) {
	pieces, err := gearcatalog.ParseSeed([]byte(seedYAML))
	require.NoError(t, err)
	require.Len(t, pieces, 2)
	assert.Equal(t, gear.SlotWeapon, pieces[0].Slot)
	assert.Equal(t, gear.TierTome, pieces[1].Tier)
	assert.Equal(t, 495, pieces[1].UpgradeCost)
}

func TestParseSeedRejectsUnknownTier(t *testing.T) {
	_, err := gearcatalog.ParseSeed([]byte("pieces:\n  - {id: x, name: X, slot: head, tier: mythic}\n"))
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestParseSeedRejectsMalformedYAML(t *testing.T) {
	_, err := gearcatalog.ParseSeed([]byte("pieces: ["))
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestSeedFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(seedYAML), 0o600))

	repo, err := gearcatalog.NewGorm(&gearcatalog.GormConfig{DB: testutils.CreateTestDB(t), AutoMigrate: true})
	require.NoError(t, err)

	ctx := context.Background()
	count, err := gearcatalog.SeedFromFile(ctx, repo, path)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	out, err := repo.Get(ctx, gearcatalog.GetInput{ID: "head-tome"})
	require.NoError(t, err)
	assert.Equal(t, 720, out.Piece.ItemLevel)
}
