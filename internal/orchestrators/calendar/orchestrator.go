// Package calendar creates recurring raid schedules and tracks attendance
package calendar

//go:generate mockgen -destination=mock/mock_service.go -package=calendarmock github.com/KirkDiggler/raid-planner/internal/orchestrators/calendar Service

import (
	"context"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/KirkDiggler/raid-planner/internal/engine"
	"github.com/KirkDiggler/raid-planner/internal/entities/schedule"
	"github.com/KirkDiggler/raid-planner/internal/errors"
	"github.com/KirkDiggler/raid-planner/internal/logger"
	"github.com/KirkDiggler/raid-planner/internal/metrics"
	"github.com/KirkDiggler/raid-planner/internal/pkg/clock"
	"github.com/KirkDiggler/raid-planner/internal/pkg/idgen"
	"github.com/KirkDiggler/raid-planner/internal/repositories/schedules"
)

const (
	maxTitleLength = 200
	timeOfDay      = "15:04"
)

// Service defines calendar operations
type Service interface {
	// CreateSchedule stores a template, every occurrence its rule expands to,
	// and a pending attendance record per roster member on each of them
	CreateSchedule(ctx context.Context, input *CreateScheduleInput) (*CreateScheduleOutput, error)

	ListSchedules(ctx context.Context, input *ListSchedulesInput) (*ListSchedulesOutput, error)

	// RespondAttendance records a member's answer. The response time only
	// moves when the status changes.
	RespondAttendance(ctx context.Context, input *RespondAttendanceInput) (*RespondAttendanceOutput, error)

	RecordAttended(ctx context.Context, input *RecordAttendedInput) (*RecordAttendedOutput, error)

	CancelSchedule(ctx context.Context, input *CancelScheduleInput) (*CancelScheduleOutput, error)

	// GetAttendanceStats summarizes attendance per member, ignoring cancelled
	// schedules
	GetAttendanceStats(ctx context.Context, input *GetAttendanceStatsInput) (*GetAttendanceStatsOutput, error)
}

// Config holds the dependencies for the calendar orchestrator
type Config struct {
	Engine       engine.Engine
	ScheduleRepo schedules.Repository
	IDGenerator  idgen.Generator
	Clock        clock.Clock
	Logger       *zap.Logger
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.ScheduleRepo == nil {
		vb.RequiredField("ScheduleRepo")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	return vb.Build()
}

type orchestrator struct {
	engine       engine.Engine
	scheduleRepo schedules.Repository
	idGen        idgen.Generator
	clock        clock.Clock
	logger       *zap.Logger
}

// NewOrchestrator creates a calendar orchestrator
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}

	return &orchestrator{
		engine:       cfg.Engine,
		scheduleRepo: cfg.ScheduleRepo,
		idGen:        cfg.IDGenerator,
		clock:        clk,
		logger:       logger.OrNop(cfg.Logger),
	}, nil
}

func (o *orchestrator) CreateSchedule(ctx context.Context, input *CreateScheduleInput) (*CreateScheduleOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateCreate(input); err != nil {
		return nil, err
	}

	details := input.Details.Clone()
	if details.MinimumMembers == 0 {
		details.MinimumMembers = schedule.DefaultMinimumMembers
	}
	rule := input.Rule.Clone()
	if rule.Type == "" {
		rule.Type = schedule.RecurrenceNone
	}

	now := o.clock.Now()
	tmpl := &schedule.Template{
		ID:        o.idGen.Generate(),
		GroupID:   input.GroupID,
		CreatedBy: input.CreatedBy,
		Date:      schedule.DateOf(input.Date),
		Details:   details,
		Rule:      rule,
		Status:    schedule.StatusScheduled,
		CreatedAt: now,
	}

	expanded, err := o.engine.ExpandRecurrence(ctx, &engine.ExpandRecurrenceInput{Template: tmpl})
	if err != nil {
		return nil, errors.Wrap(err, "failed to expand recurrence")
	}

	entries := make([]*schedule.Entry, 0, len(expanded.Occurrences)+1)
	entries = append(entries, schedule.EntryFromTemplate(tmpl))
	for _, occ := range expanded.Occurrences {
		occ.ID = o.idGen.Generate()
		entries = append(entries, schedule.EntryFromOccurrence(occ, input.CreatedBy, now))
	}

	roster := uniqueMembers(input.MemberIDs)
	attendance := make([]*schedule.Attendance, 0, len(entries)*len(roster))
	for _, e := range entries {
		for _, memberID := range roster {
			attendance = append(attendance, schedule.NewPendingAttendance(e.ID, memberID))
		}
	}

	created, err := o.scheduleRepo.CreateSeries(ctx, schedules.CreateSeriesInput{
		Entries:    entries,
		Attendance: attendance,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to store schedule")
	}

	metrics.SchedulesCreated.WithLabelValues(string(rule.Type)).Inc()
	metrics.OccurrencesGenerated.Add(float64(len(expanded.Occurrences)))
	o.logger.Info("schedule expanded",
		zap.String("group_id", tmpl.GroupID),
		zap.String("schedule_id", tmpl.ID),
		zap.String("recurrence", string(rule.Type)),
		zap.Int("occurrences", len(expanded.Occurrences)),
		zap.Int("attendance", created.AttendanceCount),
	)

	return &CreateScheduleOutput{
		Template:        tmpl,
		Occurrences:     expanded.Occurrences,
		AttendanceCount: created.AttendanceCount,
	}, nil
}

func (o *orchestrator) ListSchedules(ctx context.Context, input *ListSchedulesInput) (*ListSchedulesOutput, error) {
	if input == nil || input.GroupID == "" {
		return nil, errors.InvalidArgument("group_id is required")
	}

	listed, err := o.scheduleRepo.ListByGroup(ctx, schedules.ListByGroupInput{
		GroupID: input.GroupID,
		From:    input.From,
		To:      input.To,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list schedules")
	}

	today := o.clock.Now()
	out := &ListSchedulesOutput{
		Upcoming: []*schedule.Entry{},
		Past:     []*schedule.Entry{},
	}
	for _, e := range listed.Entries {
		if e.Status == schedule.StatusCancelled {
			continue
		}
		if e.IsPast(today) {
			out.Past = append(out.Past, e)
		} else {
			out.Upcoming = append(out.Upcoming, e)
		}
	}
	for i, j := 0, len(out.Past)-1; i < j; i, j = i+1, j-1 {
		out.Past[i], out.Past[j] = out.Past[j], out.Past[i]
	}
	return out, nil
}

func (o *orchestrator) RespondAttendance(ctx context.Context, input *RespondAttendanceInput) (*RespondAttendanceOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("schedule_id", input.ScheduleID, vb)
	errors.ValidateRequired("member_id", input.MemberID, vb)
	if !input.Status.IsValid() {
		vb.Fieldf("status", "unknown attendance status %q", input.Status)
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	record, err := o.attendanceOf(ctx, input.ScheduleID, input.MemberID)
	if err != nil {
		return nil, err
	}

	if record.Status != input.Status {
		now := o.clock.Now()
		record.RespondedAt = &now
	}
	record.Status = input.Status
	record.Reason = input.Reason

	saved, err := o.scheduleRepo.SaveAttendance(ctx, schedules.SaveAttendanceInput{Attendance: record})
	if err != nil {
		return nil, errors.Wrap(err, "failed to save attendance")
	}
	return &RespondAttendanceOutput{Attendance: saved.Attendance}, nil
}

func (o *orchestrator) RecordAttended(ctx context.Context, input *RecordAttendedInput) (*RecordAttendedOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("schedule_id", input.ScheduleID, vb)
	errors.ValidateRequired("member_id", input.MemberID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	record, err := o.attendanceOf(ctx, input.ScheduleID, input.MemberID)
	if err != nil {
		return nil, err
	}
	attended := input.Attended
	record.Attended = &attended

	saved, err := o.scheduleRepo.SaveAttendance(ctx, schedules.SaveAttendanceInput{Attendance: record})
	if err != nil {
		return nil, errors.Wrap(err, "failed to save attendance")
	}
	return &RecordAttendedOutput{Attendance: saved.Attendance}, nil
}

func (o *orchestrator) CancelSchedule(ctx context.Context, input *CancelScheduleInput) (*CancelScheduleOutput, error) {
	if input == nil || input.ScheduleID == "" {
		return nil, errors.InvalidArgument("schedule_id is required")
	}

	got, err := o.scheduleRepo.GetEntry(ctx, schedules.GetEntryInput{ID: input.ScheduleID})
	if err != nil {
		return nil, err
	}
	entry := got.Entry
	if entry.Status == schedule.StatusCompleted {
		return nil, errors.FailedPreconditionf("schedule %s is already completed", entry.ID).
			WithMeta("schedule_id", entry.ID)
	}
	if entry.Status == schedule.StatusCancelled {
		return &CancelScheduleOutput{Entry: entry}, nil
	}

	entry.Status = schedule.StatusCancelled
	updated, err := o.scheduleRepo.UpdateEntry(ctx, schedules.UpdateEntryInput{Entry: entry})
	if err != nil {
		return nil, errors.Wrap(err, "failed to cancel schedule")
	}

	o.logger.Info("schedule cancelled",
		zap.String("group_id", entry.GroupID),
		zap.String("schedule_id", entry.ID),
	)
	return &CancelScheduleOutput{Entry: updated.Entry}, nil
}

func (o *orchestrator) GetAttendanceStats(
	ctx context.Context,
	input *GetAttendanceStatsInput,
) (*GetAttendanceStatsOutput, error) {
	if input == nil || input.GroupID == "" {
		return nil, errors.InvalidArgument("group_id is required")
	}
	if input.From != nil && input.To != nil && input.To.Before(*input.From) {
		return nil, errors.InvalidArgument("to must not be before from")
	}

	listed, err := o.scheduleRepo.ListByGroup(ctx, schedules.ListByGroupInput{
		GroupID: input.GroupID,
		From:    input.From,
		To:      input.To,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list schedules")
	}

	ids := make([]string, 0, len(listed.Entries))
	for _, e := range listed.Entries {
		if e.Status != schedule.StatusCancelled {
			ids = append(ids, e.ID)
		}
	}
	if len(ids) == 0 {
		return &GetAttendanceStatsOutput{Stats: []*schedule.MemberStats{}}, nil
	}

	records, err := o.scheduleRepo.ListAttendance(ctx, schedules.ListAttendanceInput{ScheduleIDs: ids})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list attendance")
	}

	byMember := make(map[string]*schedule.MemberStats)
	for _, a := range records.Attendance {
		st, ok := byMember[a.MemberID]
		if !ok {
			st = &schedule.MemberStats{MemberID: a.MemberID}
			byMember[a.MemberID] = st
		}
		st.Tally(a)
	}

	stats := make([]*schedule.MemberStats, 0, len(byMember))
	for _, st := range byMember {
		st.Finalize()
		stats = append(stats, st)
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].MemberID < stats[j].MemberID })

	return &GetAttendanceStatsOutput{Stats: stats}, nil
}

// attendanceOf loads a member's record on an entry that still takes responses
func (o *orchestrator) attendanceOf(ctx context.Context, scheduleID, memberID string) (*schedule.Attendance, error) {
	got, err := o.scheduleRepo.GetEntry(ctx, schedules.GetEntryInput{ID: scheduleID})
	if err != nil {
		return nil, err
	}
	if got.Entry.Status == schedule.StatusCancelled {
		return nil, errors.FailedPreconditionf("schedule %s is cancelled", scheduleID).
			WithMeta("schedule_id", scheduleID)
	}

	listed, err := o.scheduleRepo.ListAttendance(ctx, schedules.ListAttendanceInput{ScheduleIDs: []string{scheduleID}})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load attendance")
	}
	for _, a := range listed.Attendance {
		if a.MemberID == memberID {
			return a, nil
		}
	}
	return nil, errors.NotFoundf("attendance record for member %s not found", memberID).
		WithMeta("schedule_id", scheduleID).
		WithMeta("member_id", memberID)
}

func validateCreate(input *CreateScheduleInput) error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("group_id", input.GroupID, vb)
	errors.ValidateRequired("created_by", input.CreatedBy, vb)
	if input.Date.IsZero() {
		vb.RequiredField("date")
	}

	d := input.Details
	errors.ValidateRequired("title", d.Title, vb)
	if len(d.Title) > maxTitleLength {
		vb.Fieldf("title", "must be at most %d characters", maxTitleLength)
	}
	if _, err := time.Parse(timeOfDay, d.StartTime); err != nil {
		vb.Fieldf("start_time", "must be HH:MM, got %q", d.StartTime)
	}
	if d.EndTime != "" {
		if _, err := time.Parse(timeOfDay, d.EndTime); err != nil {
			vb.Fieldf("end_time", "must be HH:MM, got %q", d.EndTime)
		}
	}
	if d.MinimumMembers != 0 {
		errors.ValidateRange("minimum_members", d.MinimumMembers, 1, schedule.DefaultMinimumMembers, vb)
	}

	r := input.Rule
	if r.Type != "" && !r.Type.IsValid() {
		vb.Fieldf("rule.type", "unknown recurrence type %q", r.Type)
	}
	for _, wd := range r.SelectedWeekdays {
		if wd < time.Sunday || wd > time.Saturday {
			vb.Fieldf("rule.selected_weekdays", "invalid weekday %d", int(wd))
		}
	}
	if r.EndDate != nil && !input.Date.IsZero() && schedule.DateOf(*r.EndDate).Before(schedule.DateOf(input.Date)) {
		vb.Field("rule.end_date", "must not be before the schedule date")
	}

	for i, m := range input.MemberIDs {
		if strings.TrimSpace(m) == "" {
			vb.Fieldf("member_ids", "entry %d is blank", i)
		}
	}
	return vb.Build()
}

// uniqueMembers keeps first occurrences in input order
func uniqueMembers(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
