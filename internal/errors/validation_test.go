package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/raid-planner/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestBuilderNoErrors() {
	s.Assert().NoError(errors.NewValidationBuilder().Build())
}

func (s *ValidationTestSuite) TestBuilderCollectsFields() {
	vb := errors.NewValidationBuilder()
	vb.RequiredField("group_id").
		Fieldf("minimum_members", "must be between %d and %d", 1, 8)

	err := vb.Build()
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
	s.Assert().Equal(
		"validation failed: group_id: is required; minimum_members: must be between 1 and 8",
		errors.GetMessage(err),
	)

	fields, ok := errors.GetMeta(err)["validation_errors"].(map[string][]string)
	s.Require().True(ok)
	s.Assert().Equal([]string{"is required"}, fields["group_id"])
}

func (s *ValidationTestSuite) TestValidateRequired() {
	testCases := []struct {
		name      string
		value     string
		shouldErr bool
	}{
		{"valid value", "m1", false},
		{"empty string", "", true},
		{"whitespace only", "   ", true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			errors.ValidateRequired("member_id", tc.value, vb)
			s.Assert().Equal(tc.shouldErr, vb.HasErrors())
		})
	}
}

func (s *ValidationTestSuite) TestValidateRange() {
	vb := errors.NewValidationBuilder()
	errors.ValidateRange("minimum_members", 8, 1, 8, vb)
	s.Assert().False(vb.HasErrors())

	errors.ValidateRange("minimum_members", 9, 1, 8, vb)
	s.Assert().True(vb.HasErrors())
}

func (s *ValidationTestSuite) TestValidateQuantities() {
	vb := errors.NewValidationBuilder()
	errors.ValidateQuantities("obtained", map[string]int{"weapon_token": 2, "tome_currency": -1}, vb)

	err := vb.Build()
	s.Require().Error(err)
	s.Assert().Contains(errors.GetMessage(err), "tome_currency must not be negative")
}
