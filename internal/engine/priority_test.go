package engine_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/raid-planner/internal/engine"
	"github.com/KirkDiggler/raid-planner/internal/entities/loot"
	"github.com/KirkDiggler/raid-planner/internal/errors"
)

type PriorityTestSuite struct {
	suite.Suite
	engine engine.Engine
	ctx    context.Context
}

func TestPrioritySuite(t *testing.T) {
	suite.Run(t, new(PriorityTestSuite))
}

func (s *PriorityTestSuite) SetupTest() {
	eng, err := engine.New(&engine.Config{})
	s.Require().NoError(err)
	s.engine = eng
	s.ctx = context.Background()
}

func ledgerFor(memberID string, required, obtained loot.Resources) *loot.Ledger {
	l := loot.NewLedger(memberID, "g1")
	l.Required = required
	if obtained != nil {
		l.Obtained = obtained
	}
	return l
}

func (s *PriorityTestSuite) rank(ledgers ...*loot.Ledger) loot.PriorityRanking {
	out, err := s.engine.RankPriorities(s.ctx, &engine.RankPrioritiesInput{Ledgers: ledgers})
	s.Require().NoError(err)
	return out.Ranking
}

func (s *PriorityTestSuite) TestNeedDominatesOverallScarcity() {
	ranking := s.rank(
		ledgerFor("alice", loot.Resources{loot.KeyRingToken: 1, loot.KeyTomeCurrency: 900}, nil),
		ledgerFor("bob", loot.Resources{loot.KeyRingToken: 5}, nil),
	)

	s.Assert().Equal([]string{"bob", "alice"}, ranking[loot.KeyRingToken])
}

func (s *PriorityTestSuite) TestScarcityBreaksEqualNeed() {
	ranking := s.rank(
		ledgerFor("alice", loot.Resources{loot.KeyHeadToken: 4}, nil),
		ledgerFor("bob", loot.Resources{loot.KeyHeadToken: 4, loot.KeyFeetToken: 4}, nil),
	)

	s.Assert().Equal([]string{"bob", "alice"}, ranking[loot.KeyHeadToken])
	s.Assert().Equal([]string{"bob"}, ranking[loot.KeyFeetToken])
}

func (s *PriorityTestSuite) TestExactTiesGoToLowerMemberID() {
	ranking := s.rank(
		ledgerFor("zed", loot.Resources{loot.KeyBodyToken: 6}, nil),
		ledgerFor("amy", loot.Resources{loot.KeyBodyToken: 6}, nil),
		ledgerFor("kim", loot.Resources{loot.KeyBodyToken: 6}, nil),
	)

	s.Assert().Equal([]string{"amy", "kim", "zed"}, ranking[loot.KeyBodyToken])
}

func (s *PriorityTestSuite) TestSatisfiedMembersAndKeysAreOmitted() {
	ranking := s.rank(
		ledgerFor("alice",
			loot.Resources{loot.KeyWeaponToken: 8, loot.KeyLegsToken: 6},
			loot.Resources{loot.KeyWeaponToken: 8, loot.KeyLegsToken: 2},
		),
		ledgerFor("bob", loot.Resources{loot.KeyLegsToken: 6}, loot.Resources{loot.KeyLegsToken: 9}),
	)

	s.Assert().NotContains(ranking, loot.KeyWeaponToken)
	s.Assert().Equal([]string{"alice"}, ranking[loot.KeyLegsToken])
	s.Assert().Len(ranking, 1)
}

func (s *PriorityTestSuite) TestUntrackedKeysAreNotRanked() {
	ranking := s.rank(ledgerFor("alice", loot.Resources{loot.KeyTomeCurrency: 500}, nil))
	s.Assert().Empty(ranking)
}

func (s *PriorityTestSuite) TestDeterministicRegardlessOfInputOrder() {
	a := ledgerFor("a", loot.Resources{loot.KeyRingToken: 3, loot.KeyHardeningMaterial: 1}, nil)
	b := ledgerFor("b", loot.Resources{loot.KeyRingToken: 3, loot.KeyHardeningMaterial: 1}, nil)
	c := ledgerFor("c", loot.Resources{loot.KeyRingToken: 2}, nil)

	s.Assert().Equal(s.rank(a, b, c), s.rank(c, b, a))
	s.Assert().Equal([]string{"a", "b", "c"}, s.rank(c, b, a)[loot.KeyRingToken])
}

func (s *PriorityTestSuite) TestInvalidLedgers() {
	testCases := []struct {
		name    string
		ledgers []*loot.Ledger
	}{
		{"nil ledger", []*loot.Ledger{nil}},
		{"missing member id", []*loot.Ledger{ledgerFor("", loot.Resources{}, nil)}},
		{"duplicate member", []*loot.Ledger{
			ledgerFor("a", loot.Resources{}, nil),
			ledgerFor("a", loot.Resources{}, nil),
		}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.engine.RankPriorities(s.ctx, &engine.RankPrioritiesInput{Ledgers: tc.ledgers})
			s.Assert().True(errors.IsInvalidArgument(err))
		})
	}
}

func (s *PriorityTestSuite) TestEmptyRoster() {
	s.Assert().Empty(s.rank())
}
