// Package v1alpha1 serves the planner gRPC API
package v1alpha1

import (
	"context"

	raidplannerv1alpha1 "github.com/KirkDiggler/raid-planner/gen/go/raidplanner/v1alpha1"
	"github.com/KirkDiggler/raid-planner/internal/entities/schedule"
	"github.com/KirkDiggler/raid-planner/internal/errors"
	"github.com/KirkDiggler/raid-planner/internal/orchestrators/calendar"
	"github.com/KirkDiggler/raid-planner/internal/orchestrators/progress"
)

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	ProgressService progress.Service
	CalendarService calendar.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	if c.ProgressService == nil {
		vb.RequiredField("ProgressService")
	}
	if c.CalendarService == nil {
		vb.RequiredField("CalendarService")
	}
	return vb.Build()
}

// Handler implements raidplannerv1alpha1.PlannerServiceServer
type Handler struct {
	raidplannerv1alpha1.UnimplementedPlannerServiceServer
	progressService progress.Service
	calendarService calendar.Service
}

var _ raidplannerv1alpha1.PlannerServiceServer = (*Handler)(nil)

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		progressService: cfg.ProgressService,
		calendarService: cfg.CalendarService,
	}, nil
}

// SaveGearSet stores a member's gear set
func (h *Handler) SaveGearSet(
	ctx context.Context,
	req *raidplannerv1alpha1.SaveGearSetRequest,
) (*raidplannerv1alpha1.SaveGearSetResponse, error) {
	out, err := h.progressService.SaveGearSet(ctx, &progress.SaveGearSetInput{Set: gearSetFromProto(req.GetSet())})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &raidplannerv1alpha1.SaveGearSetResponse{
		Set:              gearSetToProto(out.Set),
		AverageItemLevel: int32(out.AverageItemLevel),
	}, nil
}

// CalculateResources recalculates a member's ledger from their gear sets
func (h *Handler) CalculateResources(
	ctx context.Context,
	req *raidplannerv1alpha1.CalculateResourcesRequest,
) (*raidplannerv1alpha1.CalculateResourcesResponse, error) {
	out, err := h.progressService.CalculateResources(ctx, &progress.CalculateResourcesInput{
		MemberID:    req.GetMemberId(),
		GroupID:     req.GetGroupId(),
		FromCurrent: req.GetFromCurrent(),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &raidplannerv1alpha1.CalculateResourcesResponse{
		Ledger:           ledgerToProto(out.Ledger),
		Gap:              gapToProto(out.Gap),
		CurrentItemLevel: int32(out.CurrentItemLevel),
		TargetItemLevel:  int32(out.TargetItemLevel),
	}, nil
}

// GetLedger returns a member's ledger
func (h *Handler) GetLedger(
	ctx context.Context,
	req *raidplannerv1alpha1.GetLedgerRequest,
) (*raidplannerv1alpha1.GetLedgerResponse, error) {
	out, err := h.progressService.GetLedger(ctx, &progress.GetLedgerInput{
		MemberID: req.GetMemberId(),
		GroupID:  req.GetGroupId(),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &raidplannerv1alpha1.GetLedgerResponse{Ledger: ledgerToProto(out.Ledger)}, nil
}

// UpdateObtainedResources replaces a member's obtained resources
func (h *Handler) UpdateObtainedResources(
	ctx context.Context,
	req *raidplannerv1alpha1.UpdateObtainedResourcesRequest,
) (*raidplannerv1alpha1.UpdateObtainedResourcesResponse, error) {
	out, err := h.progressService.UpdateObtainedResources(ctx, &progress.UpdateObtainedResourcesInput{
		MemberID: req.GetMemberId(),
		GroupID:  req.GetGroupId(),
		Obtained: resourcesFromProto(req.GetObtained()),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &raidplannerv1alpha1.UpdateObtainedResourcesResponse{Ledger: ledgerToProto(out.Ledger)}, nil
}

// CalculatePriority runs a priority pass for a group
func (h *Handler) CalculatePriority(
	ctx context.Context,
	req *raidplannerv1alpha1.CalculatePriorityRequest,
) (*raidplannerv1alpha1.CalculatePriorityResponse, error) {
	out, err := h.progressService.CalculatePriority(ctx, &progress.CalculatePriorityInput{
		GroupID:   req.GetGroupId(),
		MemberIDs: req.GetMemberIds(),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &raidplannerv1alpha1.CalculatePriorityResponse{
		Ranking:      rankingToProto(out.Ranking),
		TrackedItems: trackedItemsToProto(),
	}, nil
}

// GetPriority returns the latest priority pass of a group
func (h *Handler) GetPriority(
	ctx context.Context,
	req *raidplannerv1alpha1.GetPriorityRequest,
) (*raidplannerv1alpha1.GetPriorityResponse, error) {
	out, err := h.progressService.GetPriority(ctx, &progress.GetPriorityInput{GroupID: req.GetGroupId()})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &raidplannerv1alpha1.GetPriorityResponse{
		Ranking:      rankingToProto(out.Ranking),
		TrackedItems: trackedItemsToProto(),
	}, nil
}

// CreateSchedule creates a schedule and its recurring occurrences
func (h *Handler) CreateSchedule(
	ctx context.Context,
	req *raidplannerv1alpha1.CreateScheduleRequest,
) (*raidplannerv1alpha1.CreateScheduleResponse, error) {
	date, err := parseDate("date", req.GetDate())
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	rule, err := ruleFromProto(req.GetRecurrence())
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.calendarService.CreateSchedule(ctx, &calendar.CreateScheduleInput{
		GroupID:   req.GetGroupId(),
		CreatedBy: req.CreatedBy,
		Date:      date,
		Details: schedule.Details{
			Title:          req.GetTitle(),
			Description:    req.GetDescription(),
			StartTime:      req.GetStartTime(),
			EndTime:        req.GetEndTime(),
			TargetContent:  req.GetTargetContent(),
			MinimumMembers: int(req.GetMinimumMembers()),
			Notes:          req.GetNotes(),
		},
		Rule:      rule,
		MemberIDs: req.GetMemberIds(),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	occurrences := make([]*raidplannerv1alpha1.ScheduleEntry, len(out.Occurrences))
	for i, occ := range out.Occurrences {
		occurrences[i] = entryToProto(schedule.EntryFromOccurrence(occ, out.Template.CreatedBy, out.Template.CreatedAt))
	}
	return &raidplannerv1alpha1.CreateScheduleResponse{
		Template:        entryToProto(schedule.EntryFromTemplate(out.Template)),
		Occurrences:     occurrences,
		AttendanceCount: int32(out.AttendanceCount),
	}, nil
}

// ListSchedules returns a group's schedules split around today
func (h *Handler) ListSchedules(
	ctx context.Context,
	req *raidplannerv1alpha1.ListSchedulesRequest,
) (*raidplannerv1alpha1.ListSchedulesResponse, error) {
	from, err := parseOptionalDate("from", req.GetFrom())
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	to, err := parseOptionalDate("to", req.GetTo())
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.calendarService.ListSchedules(ctx, &calendar.ListSchedulesInput{
		GroupID: req.GetGroupId(),
		From:    from,
		To:      to,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &raidplannerv1alpha1.ListSchedulesResponse{
		Upcoming: entriesToProto(out.Upcoming),
		Past:     entriesToProto(out.Past),
	}, nil
}

// RespondAttendance records a member's answer to a schedule
func (h *Handler) RespondAttendance(
	ctx context.Context,
	req *raidplannerv1alpha1.RespondAttendanceRequest,
) (*raidplannerv1alpha1.RespondAttendanceResponse, error) {
	out, err := h.calendarService.RespondAttendance(ctx, &calendar.RespondAttendanceInput{
		ScheduleID: req.GetScheduleId(),
		MemberID:   req.GetMemberId(),
		Status:     schedule.AttendanceStatus(req.GetStatus()),
		Reason:     req.GetReason(),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &raidplannerv1alpha1.RespondAttendanceResponse{Attendance: attendanceToProto(out.Attendance)}, nil
}

// RecordAttended marks whether a member showed up
func (h *Handler) RecordAttended(
	ctx context.Context,
	req *raidplannerv1alpha1.RecordAttendedRequest,
) (*raidplannerv1alpha1.RecordAttendedResponse, error) {
	out, err := h.calendarService.RecordAttended(ctx, &calendar.RecordAttendedInput{
		ScheduleID: req.GetScheduleId(),
		MemberID:   req.GetMemberId(),
		Attended:   req.GetAttended(),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &raidplannerv1alpha1.RecordAttendedResponse{Attendance: attendanceToProto(out.Attendance)}, nil
}

// CancelSchedule cancels one schedule entry
func (h *Handler) CancelSchedule(
	ctx context.Context,
	req *raidplannerv1alpha1.CancelScheduleRequest,
) (*raidplannerv1alpha1.CancelScheduleResponse, error) {
	out, err := h.calendarService.CancelSchedule(ctx, &calendar.CancelScheduleInput{ScheduleID: req.GetScheduleId()})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &raidplannerv1alpha1.CancelScheduleResponse{Entry: entryToProto(out.Entry)}, nil
}

// GetAttendanceStats returns per-member attendance statistics
func (h *Handler) GetAttendanceStats(
	ctx context.Context,
	req *raidplannerv1alpha1.GetAttendanceStatsRequest,
) (*raidplannerv1alpha1.GetAttendanceStatsResponse, error) {
	from, err := parseOptionalDate("from", req.GetFrom())
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	to, err := parseOptionalDate("to", req.GetTo())
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.calendarService.GetAttendanceStats(ctx, &calendar.GetAttendanceStatsInput{
		GroupID: req.GetGroupId(),
		From:    from,
		To:      to,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &raidplannerv1alpha1.GetAttendanceStatsResponse{Statistics: statsToProto(out.Stats)}, nil
}
