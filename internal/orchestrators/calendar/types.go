package calendar

import (
	"time"

	"github.com/KirkDiggler/raid-planner/internal/entities/schedule"
)

// CreateScheduleInput describes a new schedule and the roster that gets
// attendance placeholders for it
type CreateScheduleInput struct {
	GroupID   string
	CreatedBy string
	Date      time.Time
	Details   schedule.Details
	Rule      schedule.RecurrenceRule
	MemberIDs []string
}

// CreateScheduleOutput holds the stored template and its occurrences
type CreateScheduleOutput struct {
	Template        *schedule.Template
	Occurrences     []*schedule.Occurrence
	AttendanceCount int
}

// ListSchedulesInput selects a group's schedules, optionally by date range
type ListSchedulesInput struct {
	GroupID string
	From    *time.Time
	To      *time.Time
}

// ListSchedulesOutput splits schedules around today. Upcoming is oldest
// first, Past is newest first.
type ListSchedulesOutput struct {
	Upcoming []*schedule.Entry
	Past     []*schedule.Entry
}

// RespondAttendanceInput holds a member's answer to a schedule
type RespondAttendanceInput struct {
	ScheduleID string
	MemberID   string
	Status     schedule.AttendanceStatus
	Reason     string
}

// RespondAttendanceOutput holds the stored record
type RespondAttendanceOutput struct {
	Attendance *schedule.Attendance
}

// RecordAttendedInput marks whether a member actually showed up
type RecordAttendedInput struct {
	ScheduleID string
	MemberID   string
	Attended   bool
}

// RecordAttendedOutput holds the stored record
type RecordAttendedOutput struct {
	Attendance *schedule.Attendance
}

// CancelScheduleInput identifies a schedule entry
type CancelScheduleInput struct {
	ScheduleID string
}

// CancelScheduleOutput holds the cancelled entry
type CancelScheduleOutput struct {
	Entry *schedule.Entry
}

// GetAttendanceStatsInput selects the group and inclusive date range
type GetAttendanceStatsInput struct {
	GroupID string
	From    *time.Time
	To      *time.Time
}

// GetAttendanceStatsOutput holds per-member statistics ordered by member ID
type GetAttendanceStatsOutput struct {
	Stats []*schedule.MemberStats
}
