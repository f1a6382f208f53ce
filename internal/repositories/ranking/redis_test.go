package ranking_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/raid-planner/internal/entities/loot"
	"github.com/KirkDiggler/raid-planner/internal/errors"
	"github.com/KirkDiggler/raid-planner/internal/repositories/ranking"
	"github.com/KirkDiggler/raid-planner/internal/testutils"
)

type RedisRankingTestSuite struct {
	suite.Suite
	repo ranking.Repository
	ctx  context.Context
}

func TestRedisRankingSuite(t *testing.T) {
	suite.Run(t, new(RedisRankingTestSuite))
}

func (s *RedisRankingTestSuite) SetupTest() {
	client, _ := testutils.CreateTestRedisClient(s.T())
	repo, err := ranking.NewRedis(&ranking.RedisConfig{Client: client})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *RedisRankingTestSuite) TestSaveReplacesPreviousPass() {
	at := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	first := &loot.Ranking{
		GroupID:      "g1",
		Priorities:   loot.PriorityRanking{loot.KeyRingToken: {"a", "b"}},
		MemberCount:  2,
		CalculatedAt: at,
	}
	second := &loot.Ranking{
		GroupID:      "g1",
		Priorities:   loot.PriorityRanking{loot.KeyWeaponToken: {"b"}},
		MemberCount:  2,
		CalculatedAt: at.Add(time.Hour),
	}

	_, err := s.repo.Save(s.ctx, ranking.SaveInput{Ranking: first})
	s.Require().NoError(err)
	_, err = s.repo.Save(s.ctx, ranking.SaveInput{Ranking: second})
	s.Require().NoError(err)

	out, err := s.repo.Get(s.ctx, ranking.GetInput{GroupID: "g1"})
	s.Require().NoError(err)
	s.Assert().Equal(second.Priorities, out.Ranking.Priorities)
	s.Assert().NotContains(out.Ranking.Priorities, loot.KeyRingToken)
	s.Assert().True(second.CalculatedAt.Equal(out.Ranking.CalculatedAt))
}

func (s *RedisRankingTestSuite) TestGetNotFound() {
	_, err := s.repo.Get(s.ctx, ranking.GetInput{GroupID: "g1"})
	s.Assert().True(errors.IsNotFound(err))
}

func (s *RedisRankingTestSuite) TestValidation() {
	_, err := s.repo.Get(s.ctx, ranking.GetInput{})
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = s.repo.Save(s.ctx, ranking.SaveInput{})
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = s.repo.Save(s.ctx, ranking.SaveInput{Ranking: &loot.Ranking{}})
	s.Assert().True(errors.IsInvalidArgument(err))
}
