package schedules_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/raid-planner/internal/entities/schedule"
	"github.com/KirkDiggler/raid-planner/internal/errors"
	"github.com/KirkDiggler/raid-planner/internal/repositories/schedules"
	"github.com/KirkDiggler/raid-planner/internal/testutils"
)

type RedisScheduleTestSuite struct {
	suite.Suite
	repo schedules.Repository
	ctx  context.Context
}

func TestRedisScheduleSuite(t *testing.T) {
	suite.Run(t, new(RedisScheduleTestSuite))
}

func (s *RedisScheduleTestSuite) SetupTest() {
	client, _ := testutils.CreateTestRedisClient(s.T())
	repo, err := schedules.NewRedis(&schedules.RedisConfig{Client: client})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func day(d int) time.Time {
	return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC)
}

func entry(id, parentID string, date time.Time) *schedule.Entry {
	return &schedule.Entry{
		ID:       id,
		ParentID: parentID,
		GroupID:  "g1",
		Date:     date,
		Details:  schedule.Details{Title: "prog", StartTime: "20:00", MinimumMembers: 8},
		Status:   schedule.StatusScheduled,
	}
}

func (s *RedisScheduleTestSuite) seed() {
	_, err := s.repo.CreateSeries(s.ctx, schedules.CreateSeriesInput{
		Entries: []*schedule.Entry{
			entry("t1", "", day(1)),
			entry("o2", "t1", day(8)),
			entry("o1", "t1", day(15)),
		},
		Attendance: []*schedule.Attendance{
			schedule.NewPendingAttendance("t1", "bob"),
			schedule.NewPendingAttendance("t1", "alice"),
			schedule.NewPendingAttendance("o2", "alice"),
		},
	})
	s.Require().NoError(err)
}

func (s *RedisScheduleTestSuite) TestCreateSeriesAndGet() {
	s.seed()

	out, err := s.repo.GetEntry(s.ctx, schedules.GetEntryInput{ID: "o2"})
	s.Require().NoError(err)
	s.Assert().Equal("t1", out.Entry.ParentID)
	s.Assert().True(day(8).Equal(out.Entry.Date))
	s.Assert().Equal("prog", out.Entry.Details.Title)
}

func (s *RedisScheduleTestSuite) TestCreateSeriesValidation() {
	_, err := s.repo.CreateSeries(s.ctx, schedules.CreateSeriesInput{})
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = s.repo.CreateSeries(s.ctx, schedules.CreateSeriesInput{
		Entries: []*schedule.Entry{{ID: "x", GroupID: "g1"}},
	})
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = s.repo.CreateSeries(s.ctx, schedules.CreateSeriesInput{
		Entries:    []*schedule.Entry{entry("t1", "", day(1))},
		Attendance: []*schedule.Attendance{{ScheduleID: "t1"}},
	})
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *RedisScheduleTestSuite) TestListByGroupOrderedByDate() {
	s.seed()

	out, err := s.repo.ListByGroup(s.ctx, schedules.ListByGroupInput{GroupID: "g1"})
	s.Require().NoError(err)
	s.Require().Len(out.Entries, 3)
	s.Assert().Equal("t1", out.Entries[0].ID)
	s.Assert().Equal("o2", out.Entries[1].ID)
	s.Assert().Equal("o1", out.Entries[2].ID)
}

func (s *RedisScheduleTestSuite) TestListByGroupDateRangeIsInclusive() {
	s.seed()
	from, to := day(8), day(15)

	out, err := s.repo.ListByGroup(s.ctx, schedules.ListByGroupInput{GroupID: "g1", From: &from, To: &to})
	s.Require().NoError(err)
	s.Require().Len(out.Entries, 2)
	s.Assert().Equal("o2", out.Entries[0].ID)
}

func (s *RedisScheduleTestSuite) TestUpdateEntry() {
	s.seed()

	e := entry("o1", "t1", day(15))
	e.Status = schedule.StatusCancelled
	_, err := s.repo.UpdateEntry(s.ctx, schedules.UpdateEntryInput{Entry: e})
	s.Require().NoError(err)

	out, err := s.repo.GetEntry(s.ctx, schedules.GetEntryInput{ID: "o1"})
	s.Require().NoError(err)
	s.Assert().Equal(schedule.StatusCancelled, out.Entry.Status)

	_, err = s.repo.UpdateEntry(s.ctx, schedules.UpdateEntryInput{Entry: entry("missing", "", day(2))})
	s.Assert().True(errors.IsNotFound(err))
}

func (s *RedisScheduleTestSuite) TestAttendance() {
	s.seed()

	out, err := s.repo.ListAttendance(s.ctx, schedules.ListAttendanceInput{ScheduleIDs: []string{"t1", "o2", "o1"}})
	s.Require().NoError(err)
	s.Require().Len(out.Attendance, 3)
	s.Assert().Equal("alice", out.Attendance[0].MemberID)
	s.Assert().Equal("bob", out.Attendance[1].MemberID)
	s.Assert().Equal("o2", out.Attendance[2].ScheduleID)
	for _, a := range out.Attendance {
		s.Assert().Equal(schedule.AttendancePending, a.Status)
	}

	confirmed := schedule.NewPendingAttendance("t1", "bob")
	confirmed.Status = schedule.AttendanceConfirmed
	_, err = s.repo.SaveAttendance(s.ctx, schedules.SaveAttendanceInput{Attendance: confirmed})
	s.Require().NoError(err)

	out, err = s.repo.ListAttendance(s.ctx, schedules.ListAttendanceInput{ScheduleIDs: []string{"t1"}})
	s.Require().NoError(err)
	s.Assert().Equal(schedule.AttendanceConfirmed, out.Attendance[1].Status)
}

func (s *RedisScheduleTestSuite) TestSaveAttendanceRequiresPlaceholder() {
	s.seed()

	_, err := s.repo.SaveAttendance(s.ctx, schedules.SaveAttendanceInput{
		Attendance: schedule.NewPendingAttendance("o1", "stranger"),
	})
	s.Assert().True(errors.IsNotFound(err))
}

func (s *RedisScheduleTestSuite) TestGetEntryNotFound() {
	_, err := s.repo.GetEntry(s.ctx, schedules.GetEntryInput{ID: "nope"})
	s.Assert().True(errors.IsNotFound(err))
}
