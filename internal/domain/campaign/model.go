package campaign

import (
	"slices"
	"time"

	"github.com/ganot/creativehub/internal/domain/priority"
)

// Status is a campaign's lifecycle stage.
type Status string

const (
	StatusPlanning   Status = "planning"
	StatusInProgress Status = "in-progress"
	StatusReview     Status = "review"
	StatusCompleted  Status = "completed"
)

// Campaign is a body of work run for one client.
type Campaign struct {
	ID          string         `json:"id" yaml:"id"`
	ClientID    string         `json:"client_id" yaml:"client_id"`
	Title       string         `json:"title" yaml:"title"`
	Description string         `json:"description,omitempty" yaml:"description,omitempty"`
	Status      Status         `json:"status" yaml:"status"`
	Priority    priority.Level `json:"priority" yaml:"priority"`
	DueDate     time.Time      `json:"due_date" yaml:"due_date,omitempty"`
	AssignedTo  []string       `json:"assigned_to,omitempty" yaml:"assigned_to,omitempty"`
	Progress    int            `json:"progress" yaml:"progress"`
	Budget      float64        `json:"budget" yaml:"budget"`
	Platforms   []string       `json:"platforms,omitempty" yaml:"platforms,omitempty"`
	Tags        []string       `json:"tags,omitempty" yaml:"tags,omitempty"`
	CreatedAt   time.Time      `json:"created_at" yaml:"created_at,omitempty"`
	UpdatedAt   time.Time      `json:"updated_at" yaml:"updated_at,omitempty"`
	CreatedBy   string         `json:"created_by,omitempty" yaml:"created_by,omitempty"`
}

// Stats summarizes the campaign collection.
type Stats struct {
	Total       int     `json:"total"`
	Active      int     `json:"active"`
	Completed   int     `json:"completed"`
	Planning    int     `json:"planning"`
	TotalBudget float64 `json:"total_budget"`
	AvgProgress float64 `json:"avg_progress"`
}

// Clone returns a deep copy of c.
func (c Campaign) Clone() Campaign {
	c.AssignedTo = slices.Clone(c.AssignedTo)
	c.Platforms = slices.Clone(c.Platforms)
	c.Tags = slices.Clone(c.Tags)
	return c
}
