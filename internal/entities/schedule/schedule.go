package schedule

import "time"

// DefaultMinimumMembers is a full party
const DefaultMinimumMembers = 8

// Status is the lifecycle state of a schedule
type Status string

// Schedule statuses
const (
	StatusScheduled Status = "scheduled"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// Details are the fields copied verbatim from a template onto each occurrence
type Details struct {
	Title          string   `json:"title"`
	Description    string   `json:"description,omitempty"`
	StartTime      string   `json:"start_time"`
	EndTime        string   `json:"end_time,omitempty"`
	TargetContent  []string `json:"target_content,omitempty"`
	MinimumMembers int      `json:"minimum_members"`
	Notes          string   `json:"notes,omitempty"`
}

// Clone returns a copy that shares no slices with d
func (d Details) Clone() Details {
	out := d
	if d.TargetContent != nil {
		out.TargetContent = append([]string(nil), d.TargetContent...)
	}
	return out
}

// Template is the schedule a member creates. It is the first calendar
// occurrence of its own series.
type Template struct {
	ID        string         `json:"id"`
	GroupID   string         `json:"group_id"`
	CreatedBy string         `json:"created_by"`
	Date      time.Time      `json:"date"`
	Details   Details        `json:"details"`
	Rule      RecurrenceRule `json:"rule"`
	Status    Status         `json:"status"`
	CreatedAt time.Time      `json:"created_at"`
}

// Occurrence is one generated, dated instance of a template
type Occurrence struct {
	ID       string         `json:"id"`
	ParentID string         `json:"parent_id"`
	GroupID  string         `json:"group_id"`
	Date     time.Time      `json:"date"`
	Details  Details        `json:"details"`
	Rule     RecurrenceRule `json:"rule"`
	Status   Status         `json:"status"`
}

// Entry is the stored form shared by templates and occurrences. ParentID is
// empty for a template.
type Entry struct {
	ID        string         `json:"id"`
	ParentID  string         `json:"parent_id,omitempty"`
	GroupID   string         `json:"group_id"`
	CreatedBy string         `json:"created_by,omitempty"`
	Date      time.Time      `json:"date"`
	Details   Details        `json:"details"`
	Rule      RecurrenceRule `json:"rule"`
	Status    Status         `json:"status"`
	CreatedAt time.Time      `json:"created_at"`
}

// EntryFromTemplate converts a template into its stored form
func EntryFromTemplate(t *Template) *Entry {
	return &Entry{
		ID:        t.ID,
		GroupID:   t.GroupID,
		CreatedBy: t.CreatedBy,
		Date:      t.Date,
		Details:   t.Details,
		Rule:      t.Rule,
		Status:    t.Status,
		CreatedAt: t.CreatedAt,
	}
}

// EntryFromOccurrence converts an occurrence into its stored form
func EntryFromOccurrence(o *Occurrence, createdBy string, createdAt time.Time) *Entry {
	return &Entry{
		ID:        o.ID,
		ParentID:  o.ParentID,
		GroupID:   o.GroupID,
		CreatedBy: createdBy,
		Date:      o.Date,
		Details:   o.Details,
		Rule:      o.Rule,
		Status:    o.Status,
		CreatedAt: createdAt,
	}
}

// IsPast reports whether an entry belongs in the past half of a dashboard
func (e *Entry) IsPast(today time.Time) bool {
	return e.Date.Before(DateOf(today)) || e.Status == StatusCompleted
}
