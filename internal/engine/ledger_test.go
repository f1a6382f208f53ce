package engine_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/raid-planner/internal/engine"
	"github.com/KirkDiggler/raid-planner/internal/entities/loot"
	"github.com/KirkDiggler/raid-planner/internal/errors"
)

type LedgerTestSuite struct {
	suite.Suite
	engine engine.Engine
	ctx    context.Context
}

func TestLedgerSuite(t *testing.T) {
	suite.Run(t, new(LedgerTestSuite))
}

func (s *LedgerTestSuite) SetupTest() {
	eng, err := engine.New(&engine.Config{})
	s.Require().NoError(err)
	s.engine = eng
	s.ctx = context.Background()
}

func (s *LedgerTestSuite) apply(l *loot.Ledger, obtained loot.Resources) *loot.Ledger {
	out, err := s.engine.ApplyObtained(s.ctx, &engine.ApplyObtainedInput{Ledger: l, Obtained: obtained})
	s.Require().NoError(err)
	return out.Ledger
}

func (s *LedgerTestSuite) ledger(required loot.Resources) *loot.Ledger {
	l := loot.NewLedger("m1", "g1")
	l.Required = required
	return l
}

func (s *LedgerTestSuite) TestRemainingAndCompletion() {
	testCases := []struct {
		name       string
		required   loot.Resources
		obtained   loot.Resources
		remaining  loot.Resources
		completion int
	}{
		{
			name:       "nothing obtained",
			required:   loot.Resources{loot.KeyWeaponToken: 8, loot.KeyRingToken: 3},
			obtained:   loot.Resources{},
			remaining:  loot.Resources{loot.KeyWeaponToken: 8, loot.KeyRingToken: 3},
			completion: 0,
		},
		{
			name:       "partial progress rounds half up",
			required:   loot.Resources{loot.KeyWeaponToken: 8},
			obtained:   loot.Resources{loot.KeyWeaponToken: 1},
			remaining:  loot.Resources{loot.KeyWeaponToken: 7},
			completion: 13,
		},
		{
			name:       "rounds down below half",
			required:   loot.Resources{loot.KeyHeadToken: 3},
			obtained:   loot.Resources{loot.KeyHeadToken: 1},
			remaining:  loot.Resources{loot.KeyHeadToken: 2},
			completion: 33,
		},
		{
			name:       "over obtained clamps remaining and completion",
			required:   loot.Resources{loot.KeyRingToken: 3},
			obtained:   loot.Resources{loot.KeyRingToken: 10},
			remaining:  loot.Resources{loot.KeyRingToken: 0},
			completion: 100,
		},
		{
			name:       "nothing required is complete",
			required:   loot.Resources{},
			obtained:   loot.Resources{},
			remaining:  loot.Resources{},
			completion: 100,
		},
		{
			name:       "negative quantities are treated as zero",
			required:   loot.Resources{loot.KeyFeetToken: 4},
			obtained:   loot.Resources{loot.KeyFeetToken: -5},
			remaining:  loot.Resources{loot.KeyFeetToken: 4},
			completion: 0,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			got := s.apply(s.ledger(tc.required), tc.obtained)
			s.Assert().Equal(tc.remaining, got.Remaining)
			s.Assert().Equal(tc.completion, got.CompletionPercentage)
		})
	}
}

func (s *LedgerTestSuite) TestObtainedIsReplacedNotMerged() {
	l := s.ledger(loot.Resources{loot.KeyWeaponToken: 8, loot.KeyHeadToken: 4})

	first := s.apply(l, loot.Resources{loot.KeyWeaponToken: 3, loot.KeyHeadToken: 2})
	second := s.apply(first, loot.Resources{loot.KeyWeaponToken: 5})

	s.Assert().Equal(loot.Resources{loot.KeyWeaponToken: 5}, second.Obtained)
	s.Assert().Equal(loot.Resources{loot.KeyWeaponToken: 3, loot.KeyHeadToken: 4}, second.Remaining)
}

func (s *LedgerTestSuite) TestIdempotent() {
	l := s.ledger(loot.Resources{loot.KeyWeaponToken: 8, loot.KeyTomeCurrency: 550})
	obtained := loot.Resources{loot.KeyWeaponToken: 2, loot.KeyTomeCurrency: 100}

	once := s.apply(l, obtained)
	twice := s.apply(once, obtained)

	s.Assert().Equal(once, twice)
}

func (s *LedgerTestSuite) TestInputIsNotMutated() {
	l := s.ledger(loot.Resources{loot.KeyWeaponToken: 8})
	obtained := loot.Resources{loot.KeyWeaponToken: 2}

	got := s.apply(l, obtained)
	got.Obtained[loot.KeyWeaponToken] = 99

	s.Assert().Empty(l.Obtained)
	s.Assert().Equal(2, obtained[loot.KeyWeaponToken])
}

func (s *LedgerTestSuite) TestCompletionAlwaysInRange() {
	for req := 0; req <= 12; req++ {
		for obt := 0; obt <= 15; obt++ {
			got := s.apply(
				s.ledger(loot.Resources{loot.KeyBodyToken: req}),
				loot.Resources{loot.KeyBodyToken: obt},
			)
			s.Assert().GreaterOrEqual(got.CompletionPercentage, 0)
			s.Assert().LessOrEqual(got.CompletionPercentage, 100)
		}
	}
}

func (s *LedgerTestSuite) TestNilLedger() {
	_, err := s.engine.ApplyObtained(s.ctx, &engine.ApplyObtainedInput{})
	s.Assert().True(errors.IsInvalidArgument(err))
}
