package gearset_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/raid-planner/internal/entities/gear"
	"github.com/KirkDiggler/raid-planner/internal/errors"
	"github.com/KirkDiggler/raid-planner/internal/repositories/gearset"
	"github.com/KirkDiggler/raid-planner/internal/testutils"
)

type RedisGearSetTestSuite struct {
	suite.Suite
	repo gearset.Repository
	ctx  context.Context
}

func TestRedisGearSetSuite(t *testing.T) {
	suite.Run(t, new(RedisGearSetTestSuite))
}

func (s *RedisGearSetTestSuite) SetupTest() {
	client, _ := testutils.CreateTestRedisClient(s.T())
	repo, err := gearset.NewRedis(&gearset.RedisConfig{Client: client})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *RedisGearSetTestSuite) TestSaveAndGetByKind() {
	bis := &gear.Set{
		MemberID: "m1",
		GroupID:  "g1",
		Kind:     gear.SetKindBIS,
		Items:    map[gear.Slot]string{gear.SlotWeapon: testutils.PieceSavageWeapon},
	}
	starting := &gear.Set{
		MemberID: "m1",
		GroupID:  "g1",
		Kind:     gear.SetKindStarting,
		Items:    map[gear.Slot]string{gear.SlotWeapon: testutils.PieceCraftedWeapon},
	}

	_, err := s.repo.Save(s.ctx, gearset.SaveInput{Set: bis})
	s.Require().NoError(err)
	_, err = s.repo.Save(s.ctx, gearset.SaveInput{Set: starting})
	s.Require().NoError(err)

	out, err := s.repo.Get(s.ctx, gearset.GetInput{MemberID: "m1", GroupID: "g1", Kind: gear.SetKindBIS})
	s.Require().NoError(err)
	s.Assert().Equal(bis, out.Set)

	out, err = s.repo.Get(s.ctx, gearset.GetInput{MemberID: "m1", GroupID: "g1", Kind: gear.SetKindStarting})
	s.Require().NoError(err)
	s.Assert().Equal(testutils.PieceCraftedWeapon, out.Set.Items[gear.SlotWeapon])
}

func (s *RedisGearSetTestSuite) TestGetNotFound() {
	_, err := s.repo.Get(s.ctx, gearset.GetInput{MemberID: "m1", GroupID: "g1", Kind: gear.SetKindCurrent})
	s.Assert().True(errors.IsNotFound(err))
}

func (s *RedisGearSetTestSuite) TestEmptySetRoundTripsWithItems() {
	_, err := s.repo.Save(s.ctx, gearset.SaveInput{Set: &gear.Set{MemberID: "m1", GroupID: "g1", Kind: gear.SetKindStarting}})
	s.Require().NoError(err)

	out, err := s.repo.Get(s.ctx, gearset.GetInput{MemberID: "m1", GroupID: "g1", Kind: gear.SetKindStarting})
	s.Require().NoError(err)
	s.Assert().NotNil(out.Set.Items)
	s.Assert().Empty(out.Set.Items)
}

func (s *RedisGearSetTestSuite) TestValidation() {
	_, err := s.repo.Save(s.ctx, gearset.SaveInput{})
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = s.repo.Save(s.ctx, gearset.SaveInput{Set: &gear.Set{MemberID: "m1", GroupID: "g1", Kind: "wishlist"}})
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = s.repo.Get(s.ctx, gearset.GetInput{GroupID: "g1", Kind: gear.SetKindBIS})
	s.Assert().True(errors.IsInvalidArgument(err))
}
