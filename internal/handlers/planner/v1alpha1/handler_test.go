package v1alpha1_test

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	raidplannerv1alpha1 "github.com/KirkDiggler/raid-planner/gen/go/raidplanner/v1alpha1"
	"github.com/KirkDiggler/raid-planner/internal/entities/gear"
	"github.com/KirkDiggler/raid-planner/internal/entities/loot"
	"github.com/KirkDiggler/raid-planner/internal/entities/schedule"
	"github.com/KirkDiggler/raid-planner/internal/errors"
	"github.com/KirkDiggler/raid-planner/internal/handlers/planner/v1alpha1"
	"github.com/KirkDiggler/raid-planner/internal/orchestrators/calendar"
	calendarmock "github.com/KirkDiggler/raid-planner/internal/orchestrators/calendar/mock"
	"github.com/KirkDiggler/raid-planner/internal/orchestrators/progress"
	progressmock "github.com/KirkDiggler/raid-planner/internal/orchestrators/progress/mock"
)

type HandlerTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	progress *progressmock.MockService
	calendar *calendarmock.MockService
	server   *grpc.Server
	conn     *grpc.ClientConn
	client   raidplannerv1alpha1.PlannerServiceClient
	ctx      context.Context
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.progress = progressmock.NewMockService(s.ctrl)
	s.calendar = calendarmock.NewMockService(s.ctrl)

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		ProgressService: s.progress,
		CalendarService: s.calendar,
	})
	s.Require().NoError(err)

	lis := bufconn.Listen(1 << 20)
	s.server = grpc.NewServer()
	raidplannerv1alpha1.RegisterPlannerServiceServer(s.server, handler)
	go func() {
		_ = s.server.Serve(lis)
	}()

	s.conn, err = grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	s.Require().NoError(err)
	s.client = raidplannerv1alpha1.NewPlannerServiceClient(s.conn)

	var cancel context.CancelFunc
	s.ctx, cancel = context.WithTimeout(context.Background(), 5*time.Second)
	s.T().Cleanup(cancel)
}

func (s *HandlerTestSuite) TearDownTest() {
	_ = s.conn.Close()
	s.server.Stop()
	s.ctrl.Finish()
}

func (s *HandlerTestSuite) TestNewHandlerValidates() {
	_, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{})
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *HandlerTestSuite) TestCalculatePriorityRoundTrip() {
	s.progress.EXPECT().
		CalculatePriority(gomock.Any(), &progress.CalculatePriorityInput{GroupID: "g1", MemberIDs: []string{"a", "b"}}).
		Return(&progress.CalculatePriorityOutput{Ranking: &loot.Ranking{
			GroupID:     "g1",
			Priorities:  loot.PriorityRanking{loot.KeyRingToken: {"b", "a"}},
			MemberCount: 2,
		}}, nil)

	resp, err := s.client.CalculatePriority(s.ctx, &raidplannerv1alpha1.CalculatePriorityRequest{
		GroupId:   "g1",
		MemberIds: []string{"a", "b"},
	})
	s.Require().NoError(err)
	s.Assert().Equal([]string{"b", "a"}, resp.GetRanking().GetPriorities()[loot.KeyRingToken].GetMemberIds())
	s.Assert().Equal(int32(2), resp.GetRanking().GetMemberCount())
	s.Assert().Nil(resp.GetRanking().GetCalculatedAt())
	s.Assert().Len(resp.TrackedItems, len(loot.TrackedItems()))
}

func (s *HandlerTestSuite) TestErrorsCarryCodeAndMetadata() {
	s.progress.EXPECT().
		CalculatePriority(gomock.Any(), gomock.Any()).
		Return(nil, errors.FailedPrecondition("no ledgers calculated").WithMeta("group_id", "g1"))

	_, err := s.client.CalculatePriority(s.ctx, &raidplannerv1alpha1.CalculatePriorityRequest{GroupId: "g1"})
	s.Require().Error(err)
	s.Assert().Equal(codes.FailedPrecondition, status.Code(err))

	converted := errors.FromGRPCError(err)
	s.Assert().True(errors.IsFailedPrecondition(converted))
	s.Assert().Equal("g1", errors.GetMeta(converted)["group_id"])
}

func (s *HandlerTestSuite) TestSaveGearSet() {
	set := &gear.Set{
		MemberID: "m1",
		GroupID:  "g1",
		Kind:     gear.SetKindBIS,
		Items:    map[gear.Slot]string{gear.SlotWeapon: "weapon-savage"},
	}
	s.progress.EXPECT().
		SaveGearSet(gomock.Any(), &progress.SaveGearSetInput{Set: set}).
		Return(&progress.SaveGearSetOutput{Set: set, AverageItemLevel: 133}, nil)

	resp, err := s.client.SaveGearSet(s.ctx, &raidplannerv1alpha1.SaveGearSetRequest{Set: &raidplannerv1alpha1.GearSet{
		MemberId: "m1",
		GroupId:  "g1",
		Kind:     string(gear.SetKindBIS),
		Items:    map[string]string{string(gear.SlotWeapon): "weapon-savage"},
	}})
	s.Require().NoError(err)
	s.Assert().Equal(int32(133), resp.GetAverageItemLevel())
	s.Assert().Equal("weapon-savage", resp.GetSet().GetItems()[string(gear.SlotWeapon)])
}

func (s *HandlerTestSuite) TestUpdateObtainedResources() {
	l := loot.NewLedger("m1", "g1")
	l.Obtained = loot.Resources{loot.KeyWeaponToken: 2}
	s.progress.EXPECT().
		UpdateObtainedResources(gomock.Any(), &progress.UpdateObtainedResourcesInput{
			MemberID: "m1",
			GroupID:  "g1",
			Obtained: loot.Resources{loot.KeyWeaponToken: 2},
		}).
		Return(&progress.UpdateObtainedResourcesOutput{Ledger: l}, nil)

	resp, err := s.client.UpdateObtainedResources(s.ctx, &raidplannerv1alpha1.UpdateObtainedResourcesRequest{
		MemberId: "m1",
		GroupId:  "g1",
		Obtained: map[string]int32{loot.KeyWeaponToken: 2},
	})
	s.Require().NoError(err)
	s.Assert().Equal(int32(2), resp.GetLedger().GetObtained()[loot.KeyWeaponToken])
	s.Assert().Nil(resp.GetLedger().GetCalculatedAt())
}

func (s *HandlerTestSuite) TestCreateScheduleConvertsWireFormat() {
	created := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	tmpl := &schedule.Template{
		ID:        "t1",
		GroupID:   "g1",
		CreatedBy: "leader",
		Date:      time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Details:   schedule.Details{Title: "prog", StartTime: "20:00", MinimumMembers: 8},
		Rule: schedule.RecurrenceRule{
			Type:             schedule.RecurrenceWeekly,
			SelectedWeekdays: []time.Weekday{time.Wednesday, time.Friday},
		},
		Status:    schedule.StatusScheduled,
		CreatedAt: created,
	}
	occ := &schedule.Occurrence{
		ID:       "o1",
		ParentID: "t1",
		GroupID:  "g1",
		Date:     time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC),
		Details:  tmpl.Details,
		Rule:     tmpl.Rule,
		Status:   schedule.StatusScheduled,
	}

	s.calendar.EXPECT().
		CreateSchedule(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in *calendar.CreateScheduleInput) (*calendar.CreateScheduleOutput, error) {
			s.Assert().True(tmpl.Date.Equal(in.Date))
			s.Assert().Equal(schedule.RecurrenceWeekly, in.Rule.Type)
			s.Assert().Equal([]time.Weekday{time.Wednesday, time.Friday}, in.Rule.SelectedWeekdays)
			s.Require().NotNil(in.Rule.EndDate)
			s.Assert().Equal("2024-02-01", in.Rule.EndDate.Format(v1alpha1.DateLayout))
			s.Assert().Equal([]string{"alice"}, in.MemberIDs)
			return &calendar.CreateScheduleOutput{
				Template:        tmpl,
				Occurrences:     []*schedule.Occurrence{occ},
				AttendanceCount: 2,
			}, nil
		})

	resp, err := s.client.CreateSchedule(s.ctx, &raidplannerv1alpha1.CreateScheduleRequest{
		GroupId:   "g1",
		CreatedBy: "leader",
		Date:      "2024-01-01",
		Title:     "prog",
		StartTime: "20:00",
		Recurrence: &raidplannerv1alpha1.Recurrence{
			Type:             "weekly",
			EndDate:          "2024-02-01",
			SelectedWeekdays: "2,4",
		},
		MemberIds: []string{"alice"},
	})
	s.Require().NoError(err)
	s.Assert().Equal("2024-01-01", resp.GetTemplate().GetDate())
	s.Assert().Equal("2,4", resp.GetTemplate().GetRecurrence().GetSelectedWeekdays())
	s.Assert().Nil(resp.GetTemplate().GetRecurrence().OccurrenceCount)
	s.Assert().True(created.Equal(resp.GetTemplate().GetCreatedAt().AsTime()))
	s.Require().Len(resp.GetOccurrences(), 1)
	s.Assert().Equal("2024-01-03", resp.GetOccurrences()[0].GetDate())
	s.Assert().Equal("t1", resp.GetOccurrences()[0].GetParentId())
	s.Assert().Equal(int32(2), resp.GetAttendanceCount())
}

func (s *HandlerTestSuite) TestCreateScheduleRejectsMalformedDates() {
	_, err := s.client.CreateSchedule(s.ctx, &raidplannerv1alpha1.CreateScheduleRequest{GroupId: "g1", Date: "01/02/2024"})
	s.Assert().Equal(codes.InvalidArgument, status.Code(err))

	_, err = s.client.CreateSchedule(s.ctx, &raidplannerv1alpha1.CreateScheduleRequest{
		GroupId:    "g1",
		Date:       "2024-01-01",
		Recurrence: &raidplannerv1alpha1.Recurrence{Type: "weekly", SelectedWeekdays: "2,9"},
	})
	s.Assert().Equal(codes.InvalidArgument, status.Code(err))
}

func (s *HandlerTestSuite) TestGetAttendanceStatsPassesRange() {
	s.calendar.EXPECT().
		GetAttendanceStats(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in *calendar.GetAttendanceStatsInput) (*calendar.GetAttendanceStatsOutput, error) {
			s.Require().NotNil(in.From)
			s.Assert().Nil(in.To)
			return &calendar.GetAttendanceStatsOutput{Stats: []*schedule.MemberStats{
				{MemberID: "alice", TotalSchedules: 3, ConfirmedCount: 2, ConfirmationRate: 66.7},
			}}, nil
		})

	resp, err := s.client.GetAttendanceStats(s.ctx, &raidplannerv1alpha1.GetAttendanceStatsRequest{
		GroupId: "g1",
		From:    "2024-01-01",
	})
	s.Require().NoError(err)
	s.Require().Len(resp.GetStatistics(), 1)
	s.Assert().Equal(66.7, resp.GetStatistics()[0].GetConfirmationRate())
	s.Assert().Equal(int32(3), resp.GetStatistics()[0].GetTotalSchedules())
}

func (s *HandlerTestSuite) TestCancelScheduleNotFound() {
	s.calendar.EXPECT().
		CancelSchedule(gomock.Any(), &calendar.CancelScheduleInput{ScheduleID: "missing"}).
		Return(nil, errors.NotFound("schedule missing not found"))

	_, err := s.client.CancelSchedule(s.ctx, &raidplannerv1alpha1.CancelScheduleRequest{ScheduleId: "missing"})
	s.Assert().Equal(codes.NotFound, status.Code(err))
}

func (s *HandlerTestSuite) TestRecordAttendedKeepsOptionalFields() {
	responded := time.Date(2024, 1, 2, 18, 0, 0, 0, time.UTC)
	attended := false
	s.calendar.EXPECT().
		RecordAttended(gomock.Any(), &calendar.RecordAttendedInput{ScheduleID: "o1", MemberID: "alice"}).
		Return(&calendar.RecordAttendedOutput{Attendance: &schedule.Attendance{
			ScheduleID:  "o1",
			MemberID:    "alice",
			Status:      schedule.AttendanceConfirmed,
			Attended:    &attended,
			RespondedAt: &responded,
		}}, nil)

	resp, err := s.client.RecordAttended(s.ctx, &raidplannerv1alpha1.RecordAttendedRequest{
		ScheduleId: "o1",
		MemberId:   "alice",
	})
	s.Require().NoError(err)
	s.Require().NotNil(resp.GetAttendance().Attended)
	s.Assert().False(resp.GetAttendance().GetAttended())
	s.Assert().True(responded.Equal(resp.GetAttendance().GetRespondedAt().AsTime()))
}

func (s *HandlerTestSuite) TestRespondAttendanceLeavesAttendedUnset() {
	s.calendar.EXPECT().
		RespondAttendance(gomock.Any(), &calendar.RespondAttendanceInput{
			ScheduleID: "o1",
			MemberID:   "bob",
			Status:     schedule.AttendanceDeclined,
			Reason:     "travel",
		}).
		Return(&calendar.RespondAttendanceOutput{Attendance: &schedule.Attendance{
			ScheduleID: "o1",
			MemberID:   "bob",
			Status:     schedule.AttendanceDeclined,
			Reason:     "travel",
		}}, nil)

	resp, err := s.client.RespondAttendance(s.ctx, &raidplannerv1alpha1.RespondAttendanceRequest{
		ScheduleId: "o1",
		MemberId:   "bob",
		Status:     string(schedule.AttendanceDeclined),
		Reason:     "travel",
	})
	s.Require().NoError(err)
	s.Assert().Nil(resp.GetAttendance().Attended)
	s.Assert().Nil(resp.GetAttendance().GetRespondedAt())
	s.Assert().Equal("travel", resp.GetAttendance().GetReason())
}
