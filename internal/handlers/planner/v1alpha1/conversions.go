package v1alpha1

import (
	"time"

	"google.golang.org/protobuf/types/known/timestamppb"

	raidplannerv1alpha1 "github.com/KirkDiggler/raid-planner/gen/go/raidplanner/v1alpha1"
	"github.com/KirkDiggler/raid-planner/internal/entities/gear"
	"github.com/KirkDiggler/raid-planner/internal/entities/loot"
	"github.com/KirkDiggler/raid-planner/internal/entities/schedule"
	"github.com/KirkDiggler/raid-planner/internal/errors"
)

// DateLayout is the wire format of calendar dates
const DateLayout = "2006-01-02"

func parseDate(field, value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, errors.InvalidArgumentf("%s must be YYYY-MM-DD, got %q", field, value).
			WithMeta("field", field)
	}
	return t, nil
}

// parseOptionalDate returns nil for an empty value
func parseOptionalDate(field, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := parseDate(field, value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(DateLayout)
}

func timestampOrNil(t time.Time) *timestamppb.Timestamp {
	if t.IsZero() {
		return nil
	}
	return timestamppb.New(t)
}

func resourcesFromProto(in map[string]int32) loot.Resources {
	if in == nil {
		return nil
	}
	out := make(loot.Resources, len(in))
	for k, v := range in {
		out[k] = int(v)
	}
	return out
}

func resourcesToProto(in loot.Resources) map[string]int32 {
	out := make(map[string]int32, len(in))
	for k, v := range in {
		out[k] = int32(v)
	}
	return out
}

func gearSetFromProto(in *raidplannerv1alpha1.GearSet) *gear.Set {
	if in == nil {
		return nil
	}
	items := make(map[gear.Slot]string, len(in.GetItems()))
	for slot, id := range in.GetItems() {
		items[gear.Slot(slot)] = id
	}
	return &gear.Set{
		MemberID: in.GetMemberId(),
		GroupID:  in.GetGroupId(),
		Kind:     gear.SetKind(in.GetKind()),
		Items:    items,
	}
}

func gearSetToProto(in *gear.Set) *raidplannerv1alpha1.GearSet {
	if in == nil {
		return nil
	}
	items := make(map[string]string, len(in.Items))
	for slot, id := range in.Items {
		items[string(slot)] = id
	}
	return &raidplannerv1alpha1.GearSet{
		MemberId: in.MemberID,
		GroupId:  in.GroupID,
		Kind:     string(in.Kind),
		Items:    items,
	}
}

func ledgerToProto(in *loot.Ledger) *raidplannerv1alpha1.Ledger {
	if in == nil {
		return nil
	}
	return &raidplannerv1alpha1.Ledger{
		MemberId:             in.MemberID,
		GroupId:              in.GroupID,
		Required:             resourcesToProto(in.Required),
		Obtained:             resourcesToProto(in.Obtained),
		Remaining:            resourcesToProto(in.Remaining),
		CompletionPercentage: int32(in.CompletionPercentage),
		CalculatedAt:         timestampOrNil(in.CalculatedAt),
		UpdatedAt:            timestampOrNil(in.UpdatedAt),
	}
}

func gapToProto(in *loot.Gap) *raidplannerv1alpha1.GearGap {
	if in == nil {
		return nil
	}
	changes := make([]*raidplannerv1alpha1.GearChange, len(in.Changes))
	for i, c := range in.Changes {
		changes[i] = &raidplannerv1alpha1.GearChange{
			Slot: string(c.Slot),
			From: c.From,
			To:   c.To,
			Tier: string(c.Tier),
		}
	}
	return &raidplannerv1alpha1.GearGap{
		Changes:          changes,
		Required:         resourcesToProto(in.Required),
		UpgradeMaterials: resourcesToProto(in.UpgradeMaterials),
		TomeTotal:        int32(in.TomeTotal),
	}
}

func rankingToProto(in *loot.Ranking) *raidplannerv1alpha1.Ranking {
	if in == nil {
		return nil
	}
	priorities := make(map[string]*raidplannerv1alpha1.MemberList, len(in.Priorities))
	for key, members := range in.Priorities {
		priorities[key] = &raidplannerv1alpha1.MemberList{MemberIds: members}
	}
	return &raidplannerv1alpha1.Ranking{
		GroupId:      in.GroupID,
		Priorities:   priorities,
		MemberCount:  int32(in.MemberCount),
		CalculatedAt: timestampOrNil(in.CalculatedAt),
	}
}

func trackedItemsToProto() []*raidplannerv1alpha1.TrackedItem {
	items := loot.TrackedItems()
	out := make([]*raidplannerv1alpha1.TrackedItem, len(items))
	for i, item := range items {
		out[i] = &raidplannerv1alpha1.TrackedItem{Key: item.Key, Weight: int32(item.Weight)}
	}
	return out
}

func ruleFromProto(r *raidplannerv1alpha1.Recurrence) (schedule.RecurrenceRule, error) {
	rule := schedule.RecurrenceRule{Type: schedule.RecurrenceType(r.GetType())}
	if r.OccurrenceCount != nil {
		n := int(r.GetOccurrenceCount())
		rule.OccurrenceCount = &n
	}

	end, err := parseOptionalDate("recurrence.end_date", r.GetEndDate())
	if err != nil {
		return rule, err
	}
	rule.EndDate = end

	days, err := schedule.ParseWeekdays(r.GetSelectedWeekdays())
	if err != nil {
		return rule, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid recurrence.selected_weekdays")
	}
	rule.SelectedWeekdays = days
	return rule, nil
}

func ruleToProto(r schedule.RecurrenceRule) *raidplannerv1alpha1.Recurrence {
	out := &raidplannerv1alpha1.Recurrence{
		Type:             string(r.Type),
		SelectedWeekdays: schedule.FormatWeekdays(r.SelectedWeekdays),
	}
	if r.OccurrenceCount != nil {
		n := int32(*r.OccurrenceCount)
		out.OccurrenceCount = &n
	}
	if r.EndDate != nil {
		out.EndDate = formatDate(*r.EndDate)
	}
	return out
}

func entryToProto(e *schedule.Entry) *raidplannerv1alpha1.ScheduleEntry {
	if e == nil {
		return nil
	}
	return &raidplannerv1alpha1.ScheduleEntry{
		Id:             e.ID,
		ParentId:       e.ParentID,
		GroupId:        e.GroupID,
		CreatedBy:      e.CreatedBy,
		Date:           formatDate(e.Date),
		Title:          e.Details.Title,
		Description:    e.Details.Description,
		StartTime:      e.Details.StartTime,
		EndTime:        e.Details.EndTime,
		TargetContent:  e.Details.TargetContent,
		MinimumMembers: int32(e.Details.MinimumMembers),
		Notes:          e.Details.Notes,
		Recurrence:     ruleToProto(e.Rule),
		Status:         string(e.Status),
		CreatedAt:      timestampOrNil(e.CreatedAt),
	}
}

func entriesToProto(entries []*schedule.Entry) []*raidplannerv1alpha1.ScheduleEntry {
	out := make([]*raidplannerv1alpha1.ScheduleEntry, len(entries))
	for i, e := range entries {
		out[i] = entryToProto(e)
	}
	return out
}

func attendanceToProto(a *schedule.Attendance) *raidplannerv1alpha1.Attendance {
	if a == nil {
		return nil
	}
	out := &raidplannerv1alpha1.Attendance{
		ScheduleId: a.ScheduleID,
		MemberId:   a.MemberID,
		Status:     string(a.Status),
		Reason:     a.Reason,
		Attended:   a.Attended,
	}
	if a.RespondedAt != nil {
		out.RespondedAt = timestamppb.New(*a.RespondedAt)
	}
	return out
}

func statsToProto(stats []*schedule.MemberStats) []*raidplannerv1alpha1.MemberStats {
	out := make([]*raidplannerv1alpha1.MemberStats, len(stats))
	for i, st := range stats {
		out[i] = &raidplannerv1alpha1.MemberStats{
			MemberId:         st.MemberID,
			TotalSchedules:   int32(st.TotalSchedules),
			ConfirmedCount:   int32(st.ConfirmedCount),
			ActualAttendance: int32(st.ActualAttendance),
			ConfirmationRate: st.ConfirmationRate,
			AttendanceRate:   st.AttendanceRate,
		}
	}
	return out
}
