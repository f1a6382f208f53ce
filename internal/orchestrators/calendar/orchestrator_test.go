package calendar_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/raid-planner/internal/engine"
	enginemock "github.com/KirkDiggler/raid-planner/internal/engine/mock"
	"github.com/KirkDiggler/raid-planner/internal/entities/schedule"
	"github.com/KirkDiggler/raid-planner/internal/errors"
	"github.com/KirkDiggler/raid-planner/internal/orchestrators/calendar"
	"github.com/KirkDiggler/raid-planner/internal/pkg/clock"
	"github.com/KirkDiggler/raid-planner/internal/pkg/idgen"
	"github.com/KirkDiggler/raid-planner/internal/repositories/schedules"
	schedulesmock "github.com/KirkDiggler/raid-planner/internal/repositories/schedules/mock"
	"github.com/KirkDiggler/raid-planner/internal/testutils"
)

const testGroup = "group-1"

type OrchestratorTestSuite struct {
	suite.Suite
	repo  schedules.Repository
	clock *clock.Fixed
	svc   calendar.Service
	ctx   context.Context
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	client, _ := testutils.CreateTestRedisClient(s.T())
	repo, err := schedules.NewRedis(&schedules.RedisConfig{Client: client})
	s.Require().NoError(err)
	s.repo = repo

	eng, err := engine.New(nil)
	s.Require().NoError(err)

	s.clock = &clock.Fixed{At: time.Date(2024, 1, 3, 12, 0, 0, 0, time.UTC)}
	s.svc, err = calendar.NewOrchestrator(&calendar.Config{
		Engine:       eng,
		ScheduleRepo: repo,
		IDGenerator:  idgen.NewSequential("sched"),
		Clock:        s.clock,
	})
	s.Require().NoError(err)
	s.ctx = context.Background()
}

func day(d int) time.Time {
	return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC)
}

func count(n int) *int {
	return &n
}

func (s *OrchestratorTestSuite) create(rule schedule.RecurrenceRule, members ...string) *calendar.CreateScheduleOutput {
	out, err := s.svc.CreateSchedule(s.ctx, &calendar.CreateScheduleInput{
		GroupID:   testGroup,
		CreatedBy: "leader",
		Date:      day(1),
		Details: schedule.Details{
			Title:         "Savage prog",
			StartTime:     "20:00",
			EndTime:       "23:00",
			TargetContent: []string{"floor-1", "floor-2"},
		},
		Rule:      rule,
		MemberIDs: members,
	})
	s.Require().NoError(err)
	return out
}

func (s *OrchestratorTestSuite) TestNewOrchestratorRequiresDependencies() {
	_, err := calendar.NewOrchestrator(&calendar.Config{})
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestCreateWeeklyWithSelectedDays() {
	out := s.create(schedule.RecurrenceRule{
		Type:             schedule.RecurrenceWeekly,
		OccurrenceCount:  count(2),
		SelectedWeekdays: []time.Weekday{time.Wednesday, time.Friday},
	}, "alice", "bob", "alice")

	s.Assert().Equal("sched_1", out.Template.ID)
	s.Assert().Equal(schedule.DefaultMinimumMembers, out.Template.Details.MinimumMembers)
	s.Require().Len(out.Occurrences, 2)
	s.Assert().True(day(3).Equal(out.Occurrences[0].Date))
	s.Assert().True(day(5).Equal(out.Occurrences[1].Date))
	for _, occ := range out.Occurrences {
		s.Assert().Equal("sched_1", occ.ParentID)
		s.Assert().Equal(out.Template.Details, occ.Details)
	}
	s.Assert().Equal(6, out.AttendanceCount, "two members on three entries")

	stored, err := s.repo.GetEntry(s.ctx, schedules.GetEntryInput{ID: out.Occurrences[1].ID})
	s.Require().NoError(err)
	s.Assert().Equal("leader", stored.Entry.CreatedBy)
	s.Assert().Equal([]time.Weekday{time.Wednesday, time.Friday}, stored.Entry.Rule.SelectedWeekdays)
}

func (s *OrchestratorTestSuite) TestCreateSingleSchedule() {
	out := s.create(schedule.RecurrenceRule{}, "alice")

	s.Assert().Empty(out.Occurrences)
	s.Assert().Equal(schedule.RecurrenceNone, out.Template.Rule.Type)
	s.Assert().Equal(1, out.AttendanceCount)
}

func (s *OrchestratorTestSuite) TestCreateValidates() {
	_, err := s.svc.CreateSchedule(s.ctx, &calendar.CreateScheduleInput{
		GroupID:   testGroup,
		CreatedBy: "leader",
		Date:      day(10),
		Details: schedule.Details{
			Title:          "",
			StartTime:      "8pm",
			MinimumMembers: 9,
		},
		Rule: schedule.RecurrenceRule{
			Type:             "yearly",
			SelectedWeekdays: []time.Weekday{time.Weekday(9)},
			EndDate:          func() *time.Time { t := day(2); return &t }(),
		},
	})
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))

	fields, ok := errors.GetMeta(err)["validation_errors"].(map[string][]string)
	s.Require().True(ok)
	for _, f := range []string{"title", "start_time", "minimum_members", "rule.type", "rule.selected_weekdays", "rule.end_date"} {
		s.Assert().Contains(fields, f)
	}
}

func (s *OrchestratorTestSuite) TestCreateDoesNotStoreWhenExpansionFails() {
	ctrl := gomock.NewController(s.T())
	repo := schedulesmock.NewMockRepository(ctrl)
	eng := enginemock.NewMockEngine(ctrl)
	eng.EXPECT().
		ExpandRecurrence(gomock.Any(), gomock.Any()).
		Return(nil, errors.InvalidArgument("no selected weekday matches"))

	svc, err := calendar.NewOrchestrator(&calendar.Config{
		Engine:       eng,
		ScheduleRepo: repo,
		IDGenerator:  idgen.NewSequential("sched"),
	})
	s.Require().NoError(err)

	_, err = svc.CreateSchedule(s.ctx, &calendar.CreateScheduleInput{
		GroupID:   testGroup,
		CreatedBy: "leader",
		Date:      day(1),
		Details:   schedule.Details{Title: "prog", StartTime: "20:00"},
		Rule:      schedule.RecurrenceRule{Type: schedule.RecurrenceWeekly},
	})
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestListSchedulesSplitsAroundToday() {
	s.create(schedule.RecurrenceRule{Type: schedule.RecurrenceDaily, OccurrenceCount: count(3)})

	out, err := s.svc.ListSchedules(s.ctx, &calendar.ListSchedulesInput{GroupID: testGroup})
	s.Require().NoError(err)

	s.Require().Len(out.Past, 2)
	s.Assert().True(day(2).Equal(out.Past[0].Date), "newest past first")
	s.Assert().True(day(1).Equal(out.Past[1].Date))
	s.Require().Len(out.Upcoming, 2)
	s.Assert().True(day(3).Equal(out.Upcoming[0].Date))
	s.Assert().True(day(4).Equal(out.Upcoming[1].Date))
}

func (s *OrchestratorTestSuite) TestRespondAttendanceStampsOnStatusChange() {
	out := s.create(schedule.RecurrenceRule{}, "alice")
	first := s.clock.At

	resp, err := s.svc.RespondAttendance(s.ctx, &calendar.RespondAttendanceInput{
		ScheduleID: out.Template.ID,
		MemberID:   "alice",
		Status:     schedule.AttendanceConfirmed,
	})
	s.Require().NoError(err)
	s.Require().NotNil(resp.Attendance.RespondedAt)
	s.Assert().True(first.Equal(*resp.Attendance.RespondedAt))

	s.clock.At = first.Add(time.Hour)
	resp, err = s.svc.RespondAttendance(s.ctx, &calendar.RespondAttendanceInput{
		ScheduleID: out.Template.ID,
		MemberID:   "alice",
		Status:     schedule.AttendanceConfirmed,
		Reason:     "still in",
	})
	s.Require().NoError(err)
	s.Assert().True(first.Equal(*resp.Attendance.RespondedAt), "same status keeps the first response time")
	s.Assert().Equal("still in", resp.Attendance.Reason)
}

func (s *OrchestratorTestSuite) TestRespondAttendanceOffRoster() {
	out := s.create(schedule.RecurrenceRule{}, "alice")

	_, err := s.svc.RespondAttendance(s.ctx, &calendar.RespondAttendanceInput{
		ScheduleID: out.Template.ID,
		MemberID:   "mallory",
		Status:     schedule.AttendanceDeclined,
	})
	s.Require().Error(err)
	s.Assert().True(errors.IsNotFound(err))

	_, err = s.svc.RespondAttendance(s.ctx, &calendar.RespondAttendanceInput{
		ScheduleID: out.Template.ID,
		MemberID:   "alice",
		Status:     "maybe",
	})
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestAttendanceStatsExcludeCancelled() {
	out := s.create(schedule.RecurrenceRule{Type: schedule.RecurrenceDaily, OccurrenceCount: count(3)}, "alice", "bob")
	ids := []string{out.Template.ID}
	for _, occ := range out.Occurrences {
		ids = append(ids, occ.ID)
	}
	s.Require().Len(ids, 4)

	for _, id := range ids {
		s.respond(id, "alice", schedule.AttendanceConfirmed)
	}
	s.respond(ids[0], "bob", schedule.AttendanceConfirmed)
	s.attended(ids[0], "alice", true)
	s.attended(ids[1], "alice", true)
	s.attended(ids[2], "alice", false)
	s.attended(ids[0], "bob", true)

	_, err := s.svc.CancelSchedule(s.ctx, &calendar.CancelScheduleInput{ScheduleID: ids[3]})
	s.Require().NoError(err)

	stats, err := s.svc.GetAttendanceStats(s.ctx, &calendar.GetAttendanceStatsInput{GroupID: testGroup})
	s.Require().NoError(err)
	s.Require().Len(stats.Stats, 2)

	alice, bob := stats.Stats[0], stats.Stats[1]
	s.Assert().Equal("alice", alice.MemberID)
	s.Assert().Equal(3, alice.TotalSchedules)
	s.Assert().Equal(3, alice.ConfirmedCount)
	s.Assert().Equal(2, alice.ActualAttendance)
	s.Assert().Equal(100.0, alice.ConfirmationRate)
	s.Assert().Equal(66.7, alice.AttendanceRate)

	s.Assert().Equal("bob", bob.MemberID)
	s.Assert().Equal(33.3, bob.ConfirmationRate)
	s.Assert().Equal(33.3, bob.AttendanceRate)
}

func (s *OrchestratorTestSuite) TestAttendanceStatsDateRange() {
	out := s.create(schedule.RecurrenceRule{Type: schedule.RecurrenceDaily, OccurrenceCount: count(3)}, "alice")
	s.respond(out.Template.ID, "alice", schedule.AttendanceConfirmed)

	from, to := day(2), day(3)
	stats, err := s.svc.GetAttendanceStats(s.ctx, &calendar.GetAttendanceStatsInput{
		GroupID: testGroup,
		From:    &from,
		To:      &to,
	})
	s.Require().NoError(err)
	s.Require().Len(stats.Stats, 1)
	s.Assert().Equal(2, stats.Stats[0].TotalSchedules)
	s.Assert().Equal(0, stats.Stats[0].ConfirmedCount)

	_, err = s.svc.GetAttendanceStats(s.ctx, &calendar.GetAttendanceStatsInput{GroupID: testGroup, From: &to, To: &from})
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestAttendanceStatsEmptyGroup() {
	stats, err := s.svc.GetAttendanceStats(s.ctx, &calendar.GetAttendanceStatsInput{GroupID: "nobody"})
	s.Require().NoError(err)
	s.Assert().Empty(stats.Stats)
}

func (s *OrchestratorTestSuite) TestCancelSchedule() {
	out := s.create(schedule.RecurrenceRule{})

	cancelled, err := s.svc.CancelSchedule(s.ctx, &calendar.CancelScheduleInput{ScheduleID: out.Template.ID})
	s.Require().NoError(err)
	s.Assert().Equal(schedule.StatusCancelled, cancelled.Entry.Status)

	again, err := s.svc.CancelSchedule(s.ctx, &calendar.CancelScheduleInput{ScheduleID: out.Template.ID})
	s.Require().NoError(err)
	s.Assert().Equal(schedule.StatusCancelled, again.Entry.Status)

	_, err = s.svc.CancelSchedule(s.ctx, &calendar.CancelScheduleInput{ScheduleID: "missing"})
	s.Assert().True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestCancelCompletedSchedule() {
	out := s.create(schedule.RecurrenceRule{})
	got, err := s.repo.GetEntry(s.ctx, schedules.GetEntryInput{ID: out.Template.ID})
	s.Require().NoError(err)
	got.Entry.Status = schedule.StatusCompleted
	_, err = s.repo.UpdateEntry(s.ctx, schedules.UpdateEntryInput{Entry: got.Entry})
	s.Require().NoError(err)

	_, err = s.svc.CancelSchedule(s.ctx, &calendar.CancelScheduleInput{ScheduleID: out.Template.ID})
	s.Require().Error(err)
	s.Assert().True(errors.IsFailedPrecondition(err))
}

func (s *OrchestratorTestSuite) TestCancelledScheduleRejectsResponses() {
	out := s.create(schedule.RecurrenceRule{}, "alice")
	_, err := s.svc.CancelSchedule(s.ctx, &calendar.CancelScheduleInput{ScheduleID: out.Template.ID})
	s.Require().NoError(err)

	_, err = s.svc.RespondAttendance(s.ctx, &calendar.RespondAttendanceInput{
		ScheduleID: out.Template.ID,
		MemberID:   "alice",
		Status:     schedule.AttendanceConfirmed,
	})
	s.Require().Error(err)
	s.Assert().True(errors.IsFailedPrecondition(err))

	_, err = s.svc.RecordAttended(s.ctx, &calendar.RecordAttendedInput{
		ScheduleID: out.Template.ID,
		MemberID:   "alice",
		Attended:   true,
	})
	s.Require().Error(err)
	s.Assert().True(errors.IsFailedPrecondition(err))
}

func (s *OrchestratorTestSuite) respond(scheduleID, memberID string, status schedule.AttendanceStatus) {
	_, err := s.svc.RespondAttendance(s.ctx, &calendar.RespondAttendanceInput{
		ScheduleID: scheduleID,
		MemberID:   memberID,
		Status:     status,
	})
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) attended(scheduleID, memberID string, attended bool) {
	_, err := s.svc.RecordAttended(s.ctx, &calendar.RecordAttendedInput{
		ScheduleID: scheduleID,
		MemberID:   memberID,
		Attended:   attended,
	})
	s.Require().NoError(err)
}
