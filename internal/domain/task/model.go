package task

import (
	"slices"
	"time"

	"github.com/ganot/creativehub/internal/domain/priority"
)

// Type is the kind of work a task represents.
type Type string

const (
	TypeContentCreation Type = "content-creation"
	TypeDesign          Type = "design"
	TypeCopy            Type = "copy"
	TypeReview          Type = "review"
	TypePublishing      Type = "publishing"
)

// Status is a task's position on the board.
type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in-progress"
	StatusReview     Status = "review"
	StatusDone       Status = "done"
)

// Comment is a remark left on a task.
type Comment struct {
	ID        string    `json:"id" yaml:"id"`
	Text      string    `json:"text" yaml:"text"`
	AuthorID  string    `json:"author_id" yaml:"author_id"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at,omitempty"`
}

// Task is a unit of work inside a campaign, assigned to one team member.
type Task struct {
	ID          string         `json:"id" yaml:"id"`
	CampaignID  string         `json:"campaign_id" yaml:"campaign_id"`
	Title       string         `json:"title" yaml:"title"`
	Description string         `json:"description,omitempty" yaml:"description,omitempty"`
	Type        Type           `json:"type" yaml:"type"`
	Status      Status         `json:"status" yaml:"status"`
	Priority    priority.Level `json:"priority" yaml:"priority"`
	AssignedTo  string         `json:"assigned_to,omitempty" yaml:"assigned_to,omitempty"`
	DueDate     time.Time      `json:"due_date" yaml:"due_date,omitempty"`
	Tags        []string       `json:"tags,omitempty" yaml:"tags,omitempty"`
	CreatedAt   time.Time      `json:"created_at" yaml:"created_at,omitempty"`
	UpdatedAt   time.Time      `json:"updated_at" yaml:"updated_at,omitempty"`
	CreatedBy   string         `json:"created_by,omitempty" yaml:"created_by,omitempty"`
	TimeSpent   *float64       `json:"time_spent,omitempty" yaml:"time_spent,omitempty"`
	Comments    []Comment      `json:"comments" yaml:"comments,omitempty"`
}

// Stats counts tasks per status. Overdue overlaps the status buckets.
type Stats struct {
	Total      int `json:"total"`
	Todo       int `json:"todo"`
	InProgress int `json:"in_progress"`
	Review     int `json:"review"`
	Done       int `json:"done"`
	Overdue    int `json:"overdue"`
}

// Clone returns a deep copy of t.
func (t Task) Clone() Task {
	t.Tags = slices.Clone(t.Tags)
	t.Comments = slices.Clone(t.Comments)
	if t.TimeSpent != nil {
		spent := *t.TimeSpent
		t.TimeSpent = &spent
	}
	return t
}

// IsOverdue reports whether t has a due date before now and is not done.
func (t Task) IsOverdue(now time.Time) bool {
	return !t.DueDate.IsZero() && t.DueDate.Before(now) && t.Status != StatusDone
}
