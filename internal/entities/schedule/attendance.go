package schedule

import (
	"math"
	"time"
)

// AttendanceStatus is a member's response to a schedule
type AttendanceStatus string

// Attendance statuses
const (
	AttendancePending   AttendanceStatus = "pending"
	AttendanceConfirmed AttendanceStatus = "confirmed"
	AttendanceDeclined  AttendanceStatus = "declined"
	AttendanceTentative AttendanceStatus = "tentative"
)

// IsValid checks if the status is known
func (s AttendanceStatus) IsValid() bool {
	switch s {
	case AttendancePending, AttendanceConfirmed, AttendanceDeclined, AttendanceTentative:
		return true
	default:
		return false
	}
}

// Attendance is one member's record for one schedule entry
type Attendance struct {
	ScheduleID string           `json:"schedule_id"`
	MemberID   string           `json:"member_id"`
	Status     AttendanceStatus `json:"status"`
	Reason     string           `json:"reason,omitempty"`
	// Attended is nil until someone records whether the member showed up
	Attended    *bool      `json:"attended,omitempty"`
	RespondedAt *time.Time `json:"responded_at,omitempty"`
}

// NewPendingAttendance is the placeholder created for every roster member
func NewPendingAttendance(scheduleID, memberID string) *Attendance {
	return &Attendance{
		ScheduleID: scheduleID,
		MemberID:   memberID,
		Status:     AttendancePending,
	}
}

// MemberStats summarizes one member's attendance across a group's schedules
type MemberStats struct {
	MemberID         string  `json:"member_id"`
	TotalSchedules   int     `json:"total_schedules"`
	ConfirmedCount   int     `json:"confirmed_count"`
	ActualAttendance int     `json:"actual_attendance"`
	ConfirmationRate float64 `json:"confirmation_rate"`
	AttendanceRate   float64 `json:"attendance_rate"`
}

// Tally adds one attendance record to the counts
func (m *MemberStats) Tally(a *Attendance) {
	m.TotalSchedules++
	if a.Status == AttendanceConfirmed {
		m.ConfirmedCount++
	}
	if a.Attended != nil && *a.Attended {
		m.ActualAttendance++
	}
}

// Finalize computes the percentage rates, rounded to one decimal
func (m *MemberStats) Finalize() {
	if m.TotalSchedules == 0 {
		m.ConfirmationRate = 0
		m.AttendanceRate = 0
		return
	}
	m.ConfirmationRate = percent(m.ConfirmedCount, m.TotalSchedules)
	m.AttendanceRate = percent(m.ActualAttendance, m.TotalSchedules)
}

func percent(part, whole int) float64 {
	return math.Round(float64(part)/float64(whole)*1000) / 10
}
