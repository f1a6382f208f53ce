package engine

import (
	"context"
	"time"

	"github.com/KirkDiggler/raid-planner/internal/entities/schedule"
	"github.com/KirkDiggler/raid-planner/internal/errors"
)

const daysPerWeek = 7

// ExpandRecurrence generates the occurrences a template's rule describes.
// The template date is the first calendar occurrence and is not re-emitted.
// Nothing past an end date is emitted.
func (e *engine) ExpandRecurrence(
	_ context.Context,
	input *ExpandRecurrenceInput,
) (*ExpandRecurrenceOutput, error) {
	if input == nil || input.Template == nil {
		return nil, errors.InvalidArgument("template is required")
	}

	tmpl := input.Template
	rule := tmpl.Rule
	if !rule.IsRecurring() {
		return &ExpandRecurrenceOutput{Occurrences: []*schedule.Occurrence{}}, nil
	}
	if !rule.Type.IsValid() {
		return nil, errors.InvalidArgumentf("unknown recurrence type %q", rule.Type).
			WithMeta("rule_type", string(rule.Type))
	}
	if tmpl.Date.IsZero() {
		return nil, errors.InvalidArgument("template date is required")
	}

	limit := rule.Limit()
	if limit > e.maxOccurrences {
		limit = e.maxOccurrences
	}

	var end time.Time
	hasEnd := rule.EndDate != nil
	if hasEnd {
		end = schedule.DateOf(*rule.EndDate)
	}

	occurrences := make([]*schedule.Occurrence, 0, limit)
	current := schedule.DateOf(tmpl.Date)
	for len(occurrences) < limit {
		next, err := advance(current, rule)
		if err != nil {
			return nil, err
		}
		if hasEnd && next.After(end) {
			break
		}
		current = next
		occurrences = append(occurrences, &schedule.Occurrence{
			ParentID: tmpl.ID,
			GroupID:  tmpl.GroupID,
			Date:     current,
			Details:  tmpl.Details.Clone(),
			Rule:     rule.Clone(),
			Status:   schedule.StatusScheduled,
		})
	}

	return &ExpandRecurrenceOutput{Occurrences: occurrences}, nil
}

func advance(d time.Time, rule schedule.RecurrenceRule) (time.Time, error) {
	switch rule.Type {
	case schedule.RecurrenceDaily:
		return d.AddDate(0, 0, 1), nil
	case schedule.RecurrenceWeekly:
		if len(rule.SelectedWeekdays) == 0 {
			return d.AddDate(0, 0, 7), nil
		}
		return nextSelectedWeekday(d, rule.SelectedWeekdays)
	case schedule.RecurrenceBiweekly:
		return d.AddDate(0, 0, 14), nil
	case schedule.RecurrenceMonthly:
		return addMonthClamped(d), nil
	default:
		return time.Time{}, errors.InvalidArgumentf("unknown recurrence type %q", rule.Type)
	}
}

func nextSelectedWeekday(d time.Time, selected []time.Weekday) (time.Time, error) {
	next := d
	for i := 0; i < daysPerWeek; i++ {
		next = next.AddDate(0, 0, 1)
		for _, wd := range selected {
			if next.Weekday() == wd {
				return next, nil
			}
		}
	}
	return time.Time{}, errors.InvalidArgument("selected weekdays never match a calendar day").
		WithMeta("rule_type", string(schedule.RecurrenceWeekly)).
		WithMeta("selected_weekdays", schedule.FormatWeekdays(selected))
}

// addMonthClamped moves to the same day next month, clamping to the month's
// last day
func addMonthClamped(d time.Time) time.Time {
	y, m, day := d.Date()
	m++
	if m > time.December {
		m = time.January
		y++
	}
	if last := daysIn(y, m); day > last {
		day = last
	}
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
