package engine_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/raid-planner/internal/engine"
	"github.com/KirkDiggler/raid-planner/internal/entities/schedule"
	"github.com/KirkDiggler/raid-planner/internal/errors"
)

type RecurrenceTestSuite struct {
	suite.Suite
	engine engine.Engine
	ctx    context.Context
}

func TestRecurrenceSuite(t *testing.T) {
	suite.Run(t, new(RecurrenceTestSuite))
}

func (s *RecurrenceTestSuite) SetupTest() {
	eng, err := engine.New(&engine.Config{})
	s.Require().NoError(err)
	s.engine = eng
	s.ctx = context.Background()
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func count(n int) *int { return &n }

func (s *RecurrenceTestSuite) template(start time.Time, rule schedule.RecurrenceRule) *schedule.Template {
	return &schedule.Template{
		ID:      "tmpl-1",
		GroupID: "g1",
		Date:    start,
		Details: schedule.Details{
			Title:          "Savage prog",
			StartTime:      "20:00",
			EndTime:        "23:00",
			TargetContent:  []string{"floor 3", "floor 4"},
			MinimumMembers: 8,
			Notes:          "bring food",
		},
		Rule: rule,
	}
}

func (s *RecurrenceTestSuite) expand(tmpl *schedule.Template) []*schedule.Occurrence {
	out, err := s.engine.ExpandRecurrence(s.ctx, &engine.ExpandRecurrenceInput{Template: tmpl})
	s.Require().NoError(err)
	return out.Occurrences
}

func dates(occurrences []*schedule.Occurrence) []time.Time {
	out := make([]time.Time, len(occurrences))
	for i, o := range occurrences {
		out[i] = o.Date
	}
	return out
}

func (s *RecurrenceTestSuite) TestDaily() {
	occ := s.expand(s.template(date(2024, 1, 1), schedule.RecurrenceRule{
		Type:            schedule.RecurrenceDaily,
		OccurrenceCount: count(3),
	}))

	s.Assert().Equal([]time.Time{date(2024, 1, 2), date(2024, 1, 3), date(2024, 1, 4)}, dates(occ))
}

func (s *RecurrenceTestSuite) TestWeeklyAndBiweekly() {
	testCases := []struct {
		name     string
		rtype    schedule.RecurrenceType
		expected []time.Time
	}{
		{"weekly", schedule.RecurrenceWeekly, []time.Time{date(2024, 1, 8), date(2024, 1, 15)}},
		{"biweekly", schedule.RecurrenceBiweekly, []time.Time{date(2024, 1, 15), date(2024, 1, 29)}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			occ := s.expand(s.template(date(2024, 1, 1), schedule.RecurrenceRule{
				Type:            tc.rtype,
				OccurrenceCount: count(2),
			}))
			s.Assert().Equal(tc.expected, dates(occ))
		})
	}
}

func (s *RecurrenceTestSuite) TestMonthlyClampsToMonthEnd() {
	testCases := []struct {
		name     string
		start    time.Time
		expected []time.Time
	}{
		{"leap year", date(2024, 1, 31), []time.Time{date(2024, 2, 29), date(2024, 3, 29)}},
		{"non-leap year", date(2023, 1, 31), []time.Time{date(2023, 2, 28), date(2023, 3, 28)}},
		{"year rollover", date(2023, 12, 15), []time.Time{date(2024, 1, 15), date(2024, 2, 15)}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			occ := s.expand(s.template(tc.start, schedule.RecurrenceRule{
				Type:            schedule.RecurrenceMonthly,
				OccurrenceCount: count(2),
			}))
			s.Assert().Equal(tc.expected, dates(occ))
		})
	}
}

func (s *RecurrenceTestSuite) TestWeeklySelectedWeekdays() {
	monday := date(2024, 1, 1)
	s.Require().Equal(time.Monday, monday.Weekday())

	occ := s.expand(s.template(monday, schedule.RecurrenceRule{
		Type:             schedule.RecurrenceWeekly,
		OccurrenceCount:  count(4),
		SelectedWeekdays: []time.Weekday{time.Wednesday, time.Friday},
	}))

	s.Assert().Equal([]time.Time{
		date(2024, 1, 3),
		date(2024, 1, 5),
		date(2024, 1, 10),
		date(2024, 1, 12),
	}, dates(occ))
}

func (s *RecurrenceTestSuite) TestWeekdaysThatNeverMatchFail() {
	_, err := s.engine.ExpandRecurrence(s.ctx, &engine.ExpandRecurrenceInput{
		Template: s.template(date(2024, 1, 1), schedule.RecurrenceRule{
			Type:             schedule.RecurrenceWeekly,
			SelectedWeekdays: []time.Weekday{time.Weekday(9)},
		}),
	})

	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
	s.Assert().Equal("weekly", errors.GetMeta(err)["rule_type"])
}

func (s *RecurrenceTestSuite) TestHardCap() {
	occ := s.expand(s.template(date(2024, 1, 1), schedule.RecurrenceRule{
		Type:            schedule.RecurrenceDaily,
		OccurrenceCount: count(1000),
	}))
	s.Assert().Len(occ, schedule.MaxOccurrences)
}

func (s *RecurrenceTestSuite) TestDefaultCount() {
	occ := s.expand(s.template(date(2024, 1, 1), schedule.RecurrenceRule{Type: schedule.RecurrenceWeekly}))
	s.Assert().Len(occ, schedule.DefaultOccurrenceCount)
}

func (s *RecurrenceTestSuite) TestEndDateIsInclusiveAndNeverExceeded() {
	end := date(2024, 1, 3)
	occ := s.expand(s.template(date(2024, 1, 1), schedule.RecurrenceRule{
		Type:            schedule.RecurrenceDaily,
		EndDate:         &end,
		OccurrenceCount: count(10),
	}))

	s.Assert().Equal([]time.Time{date(2024, 1, 2), date(2024, 1, 3)}, dates(occ))
}

func (s *RecurrenceTestSuite) TestEndDateBeforeFirstOccurrence() {
	end := date(2024, 1, 5)
	occ := s.expand(s.template(date(2024, 1, 1), schedule.RecurrenceRule{
		Type:    schedule.RecurrenceWeekly,
		EndDate: &end,
	}))

	s.Assert().Empty(occ)
}

func (s *RecurrenceTestSuite) TestNonRecurringProducesNothing() {
	s.Assert().Empty(s.expand(s.template(date(2024, 1, 1), schedule.RecurrenceRule{Type: schedule.RecurrenceNone})))
	s.Assert().Empty(s.expand(s.template(date(2024, 1, 1), schedule.RecurrenceRule{})))
}

func (s *RecurrenceTestSuite) TestOccurrencesCopyTemplate() {
	tmpl := s.template(date(2024, 1, 1), schedule.RecurrenceRule{
		Type:            schedule.RecurrenceDaily,
		OccurrenceCount: count(2),
	})

	occ := s.expand(tmpl)
	s.Require().Len(occ, 2)
	for _, o := range occ {
		s.Assert().Equal("tmpl-1", o.ParentID)
		s.Assert().Equal("g1", o.GroupID)
		s.Assert().Equal(tmpl.Details, o.Details)
		s.Assert().Equal(schedule.RecurrenceDaily, o.Rule.Type)
		s.Assert().Equal(2, *o.Rule.OccurrenceCount)
		s.Assert().Equal(schedule.StatusScheduled, o.Status)
		s.Assert().Empty(o.ID)
	}

	occ[0].Details.TargetContent[0] = "changed"
	*occ[0].Rule.OccurrenceCount = 50
	s.Assert().Equal("floor 3", tmpl.Details.TargetContent[0])
	s.Assert().Equal(2, *tmpl.Rule.OccurrenceCount)
}

func (s *RecurrenceTestSuite) TestTimeOfDayIsDropped() {
	occ := s.expand(s.template(time.Date(2024, 1, 1, 21, 30, 0, 0, time.UTC), schedule.RecurrenceRule{
		Type:            schedule.RecurrenceDaily,
		OccurrenceCount: count(1),
	}))
	s.Assert().Equal([]time.Time{date(2024, 1, 2)}, dates(occ))
}

func (s *RecurrenceTestSuite) TestConfiguredCeiling() {
	eng, err := engine.New(&engine.Config{MaxOccurrences: 10})
	s.Require().NoError(err)

	out, err := eng.ExpandRecurrence(s.ctx, &engine.ExpandRecurrenceInput{
		Template: s.template(date(2024, 1, 1), schedule.RecurrenceRule{Type: schedule.RecurrenceDaily}),
	})
	s.Require().NoError(err)
	s.Assert().Len(out.Occurrences, 10)
}

func (s *RecurrenceTestSuite) TestInvalidInput() {
	testCases := []struct {
		name  string
		input *engine.ExpandRecurrenceInput
	}{
		{"nil input", nil},
		{"nil template", &engine.ExpandRecurrenceInput{}},
		{"unknown type", &engine.ExpandRecurrenceInput{
			Template: s.template(date(2024, 1, 1), schedule.RecurrenceRule{Type: "yearly"}),
		}},
		{"zero date", &engine.ExpandRecurrenceInput{
			Template: s.template(time.Time{}, schedule.RecurrenceRule{Type: schedule.RecurrenceDaily}),
		}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.engine.ExpandRecurrence(s.ctx, tc.input)
			s.Assert().True(errors.IsInvalidArgument(err))
		})
	}
}
