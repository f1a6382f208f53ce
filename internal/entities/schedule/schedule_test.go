package schedule_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/raid-planner/internal/entities/schedule"
)

func intPtr(n int) *int { return &n }

func TestRuleLimit(t *testing.T) {
	testCases := []struct {
		name     string
		count    *int
		expected int
	}{
		{"default when unset", nil, 52},
		{"default when zero", intPtr(0), 52},
		{"explicit", intPtr(3), 3},
		{"capped", intPtr(500), 100},
		{"exactly the cap", intPtr(100), 100},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rule := schedule.RecurrenceRule{Type: schedule.RecurrenceDaily, OccurrenceCount: tc.count}
			assert.Equal(t, tc.expected, rule.Limit())
		})
	}
}

func TestRuleCloneIsDeep(t *testing.T) {
	end := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	rule := schedule.RecurrenceRule{
		Type:             schedule.RecurrenceWeekly,
		EndDate:          &end,
		OccurrenceCount:  intPtr(4),
		SelectedWeekdays: []time.Weekday{time.Wednesday},
	}

	clone := rule.Clone()
	*clone.OccurrenceCount = 9
	clone.SelectedWeekdays[0] = time.Sunday
	*clone.EndDate = end.AddDate(1, 0, 0)

	assert.Equal(t, 4, *rule.OccurrenceCount)
	assert.Equal(t, time.Wednesday, rule.SelectedWeekdays[0])
	assert.Equal(t, end, *rule.EndDate)
}

func TestParseWeekdays(t *testing.T) {
	days, err := schedule.ParseWeekdays("0, 2,6")
	require.NoError(t, err)
	assert.Equal(t, []time.Weekday{time.Monday, time.Wednesday, time.Sunday}, days)
	assert.Equal(t, "0,2,6", schedule.FormatWeekdays(days))

	days, err = schedule.ParseWeekdays("")
	require.NoError(t, err)
	assert.Nil(t, days)

	_, err = schedule.ParseWeekdays("7")
	assert.Error(t, err)

	_, err = schedule.ParseWeekdays("mon")
	assert.Error(t, err)
}

func TestIsRecurring(t *testing.T) {
	assert.False(t, schedule.RecurrenceRule{}.IsRecurring())
	assert.False(t, schedule.RecurrenceRule{Type: schedule.RecurrenceNone}.IsRecurring())
	assert.True(t, schedule.RecurrenceRule{Type: schedule.RecurrenceMonthly}.IsRecurring())
}

func TestEntryIsPast(t *testing.T) {
	today := time.Date(2024, 5, 10, 15, 30, 0, 0, time.UTC)

	yesterday := &schedule.Entry{Date: time.Date(2024, 5, 9, 0, 0, 0, 0, time.UTC), Status: schedule.StatusScheduled}
	todayEntry := &schedule.Entry{Date: time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC), Status: schedule.StatusScheduled}
	completed := &schedule.Entry{Date: time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC), Status: schedule.StatusCompleted}

	assert.True(t, yesterday.IsPast(today))
	assert.False(t, todayEntry.IsPast(today))
	assert.True(t, completed.IsPast(today))
}

func TestMemberStats(t *testing.T) {
	yes, no := true, false
	stats := &schedule.MemberStats{MemberID: "m1"}
	stats.Tally(&schedule.Attendance{Status: schedule.AttendanceConfirmed, Attended: &yes})
	stats.Tally(&schedule.Attendance{Status: schedule.AttendanceConfirmed, Attended: &no})
	stats.Tally(&schedule.Attendance{Status: schedule.AttendanceDeclined})
	stats.Finalize()

	assert.Equal(t, 3, stats.TotalSchedules)
	assert.Equal(t, 2, stats.ConfirmedCount)
	assert.Equal(t, 1, stats.ActualAttendance)
	assert.InDelta(t, 66.7, stats.ConfirmationRate, 1e-9)
	assert.InDelta(t, 33.3, stats.AttendanceRate, 1e-9)

	empty := &schedule.MemberStats{}
	empty.Finalize()
	assert.Zero(t, empty.ConfirmationRate)
}

func TestDetailsClone(t *testing.T) {
	d := schedule.Details{Title: "prog", TargetContent: []string{"floor 1"}}
	c := d.Clone()
	c.TargetContent[0] = "floor 4"
	assert.Equal(t, "floor 1", d.TargetContent[0])
}
