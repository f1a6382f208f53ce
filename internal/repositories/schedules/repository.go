// Package schedules provides persistence for raid schedules and attendance
package schedules

//go:generate mockgen -destination=mock/mock_repository.go -package=schedulesmock github.com/KirkDiggler/raid-planner/internal/repositories/schedules Repository

import (
	"context"
	"time"

	"github.com/KirkDiggler/raid-planner/internal/entities/schedule"
)

// Repository defines schedule and attendance persistence
type Repository interface {
	// CreateSeries writes a template, its occurrences and their attendance
	// placeholders in one transaction
	CreateSeries(ctx context.Context, input CreateSeriesInput) (*CreateSeriesOutput, error)

	// GetEntry returns errors.NotFound for unknown IDs
	GetEntry(ctx context.Context, input GetEntryInput) (*GetEntryOutput, error)

	// UpdateEntry replaces an existing entry.
	// Returns errors.NotFound if it does not exist
	UpdateEntry(ctx context.Context, input UpdateEntryInput) (*UpdateEntryOutput, error)

	// ListByGroup returns a group's entries ordered by date, optionally
	// bounded by an inclusive date range
	ListByGroup(ctx context.Context, input ListByGroupInput) (*ListByGroupOutput, error)

	// ListAttendance returns the attendance records of the given schedules
	ListAttendance(ctx context.Context, input ListAttendanceInput) (*ListAttendanceOutput, error)

	// SaveAttendance updates one member's record.
	// Returns errors.NotFound if the member has no placeholder for the schedule
	SaveAttendance(ctx context.Context, input SaveAttendanceInput) (*SaveAttendanceOutput, error)
}

// CreateSeriesInput holds everything created with a schedule
type CreateSeriesInput struct {
	Entries    []*schedule.Entry
	Attendance []*schedule.Attendance
}

// CreateSeriesOutput reports what was written
type CreateSeriesOutput struct {
	EntryCount      int
	AttendanceCount int
}

// GetEntryInput identifies an entry
type GetEntryInput struct {
	ID string
}

// GetEntryOutput holds the stored entry
type GetEntryOutput struct {
	Entry *schedule.Entry
}

// UpdateEntryInput holds the replacement entry
type UpdateEntryInput struct {
	Entry *schedule.Entry
}

// UpdateEntryOutput holds the stored entry
type UpdateEntryOutput struct {
	Entry *schedule.Entry
}

// ListByGroupInput selects a group's entries
type ListByGroupInput struct {
	GroupID string
	From    *time.Time
	To      *time.Time
}

// ListByGroupOutput holds the matching entries
type ListByGroupOutput struct {
	Entries []*schedule.Entry
}

// ListAttendanceInput selects schedules
type ListAttendanceInput struct {
	ScheduleIDs []string
}

// ListAttendanceOutput holds records ordered by schedule then member
type ListAttendanceOutput struct {
	Attendance []*schedule.Attendance
}

// SaveAttendanceInput holds the record to write
type SaveAttendanceInput struct {
	Attendance *schedule.Attendance
}

// SaveAttendanceOutput holds the stored record
type SaveAttendanceOutput struct {
	Attendance *schedule.Attendance
}
