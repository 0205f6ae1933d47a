package task

import (
	"slices"
	"time"

	"github.com/ganot/creativehub/internal/domain/priority"
)

// CreateRequest carries the fields of a new task.
type CreateRequest struct {
	CampaignID  string         `json:"campaign_id"`
	Title       string         `json:"title"`
	Description string         `json:"description,omitempty"`
	Type        Type           `json:"type,omitempty"`
	Status      Status         `json:"status,omitempty"`
	Priority    priority.Level `json:"priority,omitempty"`
	AssignedTo  string         `json:"assigned_to,omitempty"`
	DueDate     time.Time      `json:"due_date,omitempty"`
	Tags        []string       `json:"tags,omitempty"`
	CreatedBy   string         `json:"created_by,omitempty"`
	TimeSpent   *float64       `json:"time_spent,omitempty"`
}

// Build turns the request into a task with no comments.
func (r CreateRequest) Build(id string, now time.Time) Task {
	return Task{
		ID:          id,
		CampaignID:  r.CampaignID,
		Title:       r.Title,
		Description: r.Description,
		Type:        r.Type,
		Status:      r.Status,
		Priority:    r.Priority,
		AssignedTo:  r.AssignedTo,
		DueDate:     r.DueDate,
		Tags:        r.Tags,
		CreatedAt:   now,
		UpdatedAt:   now,
		CreatedBy:   r.CreatedBy,
		TimeSpent:   r.TimeSpent,
		Comments:    []Comment{},
	}.Clone()
}

// UpdateRequest is a partial task. Nil fields are left untouched.
type UpdateRequest struct {
	CampaignID  *string         `json:"campaign_id,omitempty"`
	Title       *string         `json:"title,omitempty"`
	Description *string         `json:"description,omitempty"`
	Type        *Type           `json:"type,omitempty"`
	Status      *Status         `json:"status,omitempty"`
	Priority    *priority.Level `json:"priority,omitempty"`
	AssignedTo  *string         `json:"assigned_to,omitempty"`
	DueDate     *time.Time      `json:"due_date,omitempty"`
	Tags        []string        `json:"tags,omitempty"`
	TimeSpent   *float64        `json:"time_spent,omitempty"`
}

// Apply merges the set fields of r into t. It does not touch UpdatedAt.
func (r UpdateRequest) Apply(t *Task) {
	if r.CampaignID != nil {
		t.CampaignID = *r.CampaignID
	}
	if r.Title != nil {
		t.Title = *r.Title
	}
	if r.Description != nil {
		t.Description = *r.Description
	}
	if r.Type != nil {
		t.Type = *r.Type
	}
	if r.Status != nil {
		t.Status = *r.Status
	}
	if r.Priority != nil {
		t.Priority = *r.Priority
	}
	if r.AssignedTo != nil {
		t.AssignedTo = *r.AssignedTo
	}
	if r.DueDate != nil {
		t.DueDate = *r.DueDate
	}
	if r.Tags != nil {
		t.Tags = slices.Clone(r.Tags)
	}
	if r.TimeSpent != nil {
		spent := *r.TimeSpent
		t.TimeSpent = &spent
	}
}

// CommentRequest is a new comment on a task.
type CommentRequest struct {
	Text     string `json:"text"`
	AuthorID string `json:"author_id"`
}
