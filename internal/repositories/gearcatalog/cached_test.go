package gearcatalog_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/raid-planner/internal/entities/gear"
	"github.com/KirkDiggler/raid-planner/internal/errors"
	"github.com/KirkDiggler/raid-planner/internal/repositories/gearcatalog"
	gearcatalogmock "github.com/KirkDiggler/raid-planner/internal/repositories/gearcatalog/mock"
)

type CachedCatalogTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller
	next *gearcatalogmock.MockRepository
	repo gearcatalog.Repository
	ctx  context.Context
}

func TestCachedCatalogSuite(t *testing.T) {
	suite.Run(t, new(CachedCatalogTestSuite))
}

func (s *CachedCatalogTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.next = gearcatalogmock.NewMockRepository(s.ctrl)
	repo, err := gearcatalog.NewCached(&gearcatalog.CachedConfig{Repository: s.next})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *CachedCatalogTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *CachedCatalogTestSuite) ring() *gear.Piece {
	return &gear.Piece{ID: "ring-1", Name: "Ring", Slot: gear.SlotRing, Tier: gear.TierRaidHero, ItemLevel: 730}
}

func (s *CachedCatalogTestSuite) TestGetReadsThroughOnce() {
	s.next.EXPECT().
		Get(gomock.Any(), gearcatalog.GetInput{ID: "ring-1"}).
		Return(&gearcatalog.GetOutput{Piece: s.ring()}, nil).
		Times(1)

	for i := 0; i < 3; i++ {
		out, err := s.repo.Get(s.ctx, gearcatalog.GetInput{ID: "ring-1"})
		s.Require().NoError(err)
		s.Assert().Equal("Ring", out.Piece.Name)
	}
}

func (s *CachedCatalogTestSuite) TestCachedPieceIsCopied() {
	s.next.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(&gearcatalog.GetOutput{Piece: s.ring()}, nil)

	out, err := s.repo.Get(s.ctx, gearcatalog.GetInput{ID: "ring-1"})
	s.Require().NoError(err)
	out.Piece.Name = "mutated"

	again, err := s.repo.Get(s.ctx, gearcatalog.GetInput{ID: "ring-1"})
	s.Require().NoError(err)
	s.Assert().Equal("Ring", again.Piece.Name)
}

func (s *CachedCatalogTestSuite) TestErrorsAreNotCached() {
	gomock.InOrder(
		s.next.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, errors.NotFound("gone")),
		s.next.EXPECT().Get(gomock.Any(), gomock.Any()).Return(&gearcatalog.GetOutput{Piece: s.ring()}, nil),
	)

	_, err := s.repo.Get(s.ctx, gearcatalog.GetInput{ID: "ring-1"})
	s.Assert().True(errors.IsNotFound(err))

	out, err := s.repo.Get(s.ctx, gearcatalog.GetInput{ID: "ring-1"})
	s.Require().NoError(err)
	s.Assert().Equal("ring-1", out.Piece.ID)
}

func (s *CachedCatalogTestSuite) TestListByIDsOnlyFetchesMisses() {
	s.next.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(&gearcatalog.GetOutput{Piece: s.ring()}, nil)
	_, err := s.repo.Get(s.ctx, gearcatalog.GetInput{ID: "ring-1"})
	s.Require().NoError(err)

	head := &gear.Piece{ID: "head-1", Slot: gear.SlotHead, Tier: gear.TierTome}
	s.next.EXPECT().
		ListByIDs(gomock.Any(), gearcatalog.ListByIDsInput{IDs: []string{"head-1", "missing"}}).
		Return(&gearcatalog.ListByIDsOutput{Pieces: map[string]*gear.Piece{"head-1": head}}, nil)

	out, err := s.repo.ListByIDs(s.ctx, gearcatalog.ListByIDsInput{IDs: []string{"ring-1", "missing", "head-1"}})
	s.Require().NoError(err)
	s.Assert().Len(out.Pieces, 2)
}

func (s *CachedCatalogTestSuite) TestUpsertEvicts() {
	gomock.InOrder(
		s.next.EXPECT().Get(gomock.Any(), gomock.Any()).Return(&gearcatalog.GetOutput{Piece: s.ring()}, nil),
		s.next.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(&gearcatalog.UpsertOutput{Count: 1}, nil),
		s.next.EXPECT().Get(gomock.Any(), gomock.Any()).Return(&gearcatalog.GetOutput{Piece: s.ring()}, nil),
	)

	_, err := s.repo.Get(s.ctx, gearcatalog.GetInput{ID: "ring-1"})
	s.Require().NoError(err)
	_, err = s.repo.Upsert(s.ctx, gearcatalog.UpsertInput{Pieces: []*gear.Piece{s.ring()}})
	s.Require().NoError(err)
	_, err = s.repo.Get(s.ctx, gearcatalog.GetInput{ID: "ring-1"})
	s.Require().NoError(err)
}

func (s *CachedCatalogTestSuite) TestNewCachedValidates() {
	_, err := gearcatalog.NewCached(nil)
	s.Assert().True(errors.IsInvalidArgument(err))
	_, err = gearcatalog.NewCached(&gearcatalog.CachedConfig{})
	s.Assert().True(errors.IsInvalidArgument(err))
}
