// Package schedule holds raid schedule templates, their recurrence rules and
// attendance records.
package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// RecurrenceType selects how occurrences are spaced
type RecurrenceType string

// Recurrence types
const (
	RecurrenceNone     RecurrenceType = "none"
	RecurrenceDaily    RecurrenceType = "daily"
	RecurrenceWeekly   RecurrenceType = "weekly"
	RecurrenceBiweekly RecurrenceType = "biweekly"
	RecurrenceMonthly  RecurrenceType = "monthly"
)

// Expansion bounds
const (
	DefaultOccurrenceCount = 52
	MaxOccurrences         = 100
)

// IsValid checks if the recurrence type is known
func (t RecurrenceType) IsValid() bool {
	switch t {
	case RecurrenceNone, RecurrenceDaily, RecurrenceWeekly, RecurrenceBiweekly, RecurrenceMonthly:
		return true
	default:
		return false
	}
}

// RecurrenceRule governs expansion of a template into occurrences
type RecurrenceRule struct {
	Type RecurrenceType `json:"type"`
	// EndDate is inclusive
	EndDate *time.Time `json:"end_date,omitempty"`
	// OccurrenceCount falls back to DefaultOccurrenceCount when nil or not positive
	OccurrenceCount  *int           `json:"occurrence_count,omitempty"`
	SelectedWeekdays []time.Weekday `json:"selected_weekdays,omitempty"`
}

// IsRecurring reports whether the rule produces any occurrences
func (r RecurrenceRule) IsRecurring() bool {
	return r.Type != "" && r.Type != RecurrenceNone
}

// Limit is the number of occurrences an expansion may produce
func (r RecurrenceRule) Limit() int {
	n := DefaultOccurrenceCount
	if r.OccurrenceCount != nil && *r.OccurrenceCount > 0 {
		n = *r.OccurrenceCount
	}
	if n > MaxOccurrences {
		return MaxOccurrences
	}
	return n
}

// Clone returns a deep copy of the rule
func (r RecurrenceRule) Clone() RecurrenceRule {
	out := RecurrenceRule{Type: r.Type}
	if r.EndDate != nil {
		end := *r.EndDate
		out.EndDate = &end
	}
	if r.OccurrenceCount != nil {
		n := *r.OccurrenceCount
		out.OccurrenceCount = &n
	}
	if len(r.SelectedWeekdays) > 0 {
		out.SelectedWeekdays = append([]time.Weekday(nil), r.SelectedWeekdays...)
	}
	return out
}

// ParseWeekdays parses the stored comma separated weekday list, where
// Monday is 0 and Sunday is 6.
func ParseWeekdays(csv string) ([]time.Weekday, error) {
	csv = strings.TrimSpace(csv)
	if csv == "" {
		return nil, nil
	}

	var out []time.Weekday
	for _, part := range strings.Split(csv, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n < 0 || n > 6 {
			return nil, fmt.Errorf("invalid weekday %q", part)
		}
		out = append(out, time.Weekday((n+1)%7))
	}
	return out, nil
}

// FormatWeekdays is the inverse of ParseWeekdays
func FormatWeekdays(days []time.Weekday) string {
	parts := make([]string, 0, len(days))
	for _, d := range days {
		parts = append(parts, strconv.Itoa((int(d)+6)%7))
	}
	return strings.Join(parts, ",")
}

// DateOf truncates t to midnight UTC of its calendar day
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
