package gearcatalog_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/raid-planner/internal/entities/gear"
	"github.com/KirkDiggler/raid-planner/internal/errors"
	"github.com/KirkDiggler/raid-planner/internal/repositories/gearcatalog"
	"github.com/KirkDiggler/raid-planner/internal/testutils"
)

type GormCatalogTestSuite struct {
	suite.Suite
	repo gearcatalog.Repository
	ctx  context.Context
}

func TestGormCatalogSuite(t *testing.T) {
	suite.Run(t, new(GormCatalogTestSuite))
}

func (s *GormCatalogTestSuite) SetupTest() {
	db := testutils.CreateTestDB(s.T())
	repo, err := gearcatalog.NewGorm(&gearcatalog.GormConfig{DB: db, AutoMigrate: true})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()

	out, err := s.repo.Upsert(s.ctx, gearcatalog.UpsertInput{Pieces: testutils.GearPieces()})
	s.Require().NoError(err)
	s.Require().Equal(len(testutils.GearPieces()), out.Count)
}

func (s *GormCatalogTestSuite) TestNewGormRequiresDB() {
	_, err := gearcatalog.NewGorm(nil)
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = gearcatalog.NewGorm(&gearcatalog.GormConfig{})
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *GormCatalogTestSuite) TestGet() {
	out, err := s.repo.Get(s.ctx, gearcatalog.GetInput{ID: testutils.PieceAugmentedEarring})
	s.Require().NoError(err)
	s.Assert().Equal(gear.SlotEarrings, out.Piece.Slot)
	s.Assert().Equal(gear.TierTomeAugmented, out.Piece.Tier)
	s.Assert().Equal(375, out.Piece.UpgradeCost)
}

func (s *GormCatalogTestSuite) TestGetUnknownIsNotFound() {
	_, err := s.repo.Get(s.ctx, gearcatalog.GetInput{ID: "missing"})
	s.Require().Error(err)
	s.Assert().True(errors.IsNotFound(err))
	s.Assert().Equal("missing", errors.GetMeta(err)["piece_id"])
}

func (s *GormCatalogTestSuite) TestListByIDsSkipsUnknown() {
	out, err := s.repo.ListByIDs(s.ctx, gearcatalog.ListByIDsInput{
		IDs: []string{testutils.PieceSavageRing, "missing", testutils.PieceTomeHead},
	})
	s.Require().NoError(err)
	s.Assert().Len(out.Pieces, 2)
	s.Assert().Contains(out.Pieces, testutils.PieceSavageRing)
	s.Assert().Contains(out.Pieces, testutils.PieceTomeHead)
}

func (s *GormCatalogTestSuite) TestListFiltersBySlot() {
	out, err := s.repo.List(s.ctx, gearcatalog.ListInput{Slot: gear.SlotHead})
	s.Require().NoError(err)
	s.Require().Len(out.Pieces, 2)
	s.Assert().Equal(testutils.PieceAugmentedHead, out.Pieces[0].ID, "higher item level first")
	s.Assert().Equal(testutils.PieceTomeHead, out.Pieces[1].ID)

	_, err = s.repo.List(s.ctx, gearcatalog.ListInput{Slot: "cape"})
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *GormCatalogTestSuite) TestUpsertReplacesExisting() {
	_, err := s.repo.Upsert(s.ctx, gearcatalog.UpsertInput{Pieces: []*gear.Piece{
		{ID: testutils.PieceTomeHead, Name: "Renamed Helm", Slot: gear.SlotHead, Tier: gear.TierTome, ItemLevel: 725, UpgradeCost: 495},
	}})
	s.Require().NoError(err)

	out, err := s.repo.Get(s.ctx, gearcatalog.GetInput{ID: testutils.PieceTomeHead})
	s.Require().NoError(err)
	s.Assert().Equal("Renamed Helm", out.Piece.Name)
	s.Assert().Equal(725, out.Piece.ItemLevel)
}

func (s *GormCatalogTestSuite) TestUpsertValidates() {
	_, err := s.repo.Upsert(s.ctx, gearcatalog.UpsertInput{Pieces: []*gear.Piece{
		{ID: "bad", Name: "Bad", Slot: "cape", Tier: gear.TierOther, ItemLevel: -1},
	}})
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *GormCatalogTestSuite) TestSnapshotResolvesReferencedItems() {
	current := &gear.Set{MemberID: "m1", Kind: gear.SetKindCurrent, Items: map[gear.Slot]string{
		gear.SlotWeapon: testutils.PieceCraftedWeapon,
		gear.SlotHead:   testutils.PieceTomeHead,
	}}
	target := &gear.Set{MemberID: "m1", Kind: gear.SetKindBIS, Items: map[gear.Slot]string{
		gear.SlotWeapon: testutils.PieceSavageWeapon,
		gear.SlotHead:   testutils.PieceAugmentedHead,
		gear.SlotRing:   "unknown-ring",
	}}

	catalog, err := gearcatalog.Snapshot(s.ctx, s.repo, current, target, nil)
	s.Require().NoError(err)
	s.Assert().Len(catalog, 4)
	_, ok := catalog.Resolve("unknown-ring")
	s.Assert().False(ok)
	p, ok := catalog.Resolve(testutils.PieceSavageWeapon)
	s.Require().True(ok)
	s.Assert().Equal(gear.TierRaidHero, p.Tier)
}
