package campaign

import (
	"slices"
	"time"

	"github.com/ganot/creativehub/internal/domain/priority"
)

// CreateRequest carries the fields of a new campaign.
type CreateRequest struct {
	ClientID    string         `json:"client_id"`
	Title       string         `json:"title"`
	Description string         `json:"description,omitempty"`
	Status      Status         `json:"status,omitempty"`
	Priority    priority.Level `json:"priority,omitempty"`
	DueDate     time.Time      `json:"due_date,omitempty"`
	AssignedTo  []string       `json:"assigned_to,omitempty"`
	Progress    int            `json:"progress,omitempty"`
	Budget      float64        `json:"budget,omitempty"`
	Platforms   []string       `json:"platforms,omitempty"`
	Tags        []string       `json:"tags,omitempty"`
	CreatedBy   string         `json:"created_by,omitempty"`
}

// Build turns the request into a campaign with the given identity.
func (r CreateRequest) Build(id string, now time.Time) Campaign {
	return Campaign{
		ID:          id,
		ClientID:    r.ClientID,
		Title:       r.Title,
		Description: r.Description,
		Status:      r.Status,
		Priority:    r.Priority,
		DueDate:     r.DueDate,
		AssignedTo:  r.AssignedTo,
		Progress:    r.Progress,
		Budget:      r.Budget,
		Platforms:   r.Platforms,
		Tags:        r.Tags,
		CreatedAt:   now,
		UpdatedAt:   now,
		CreatedBy:   r.CreatedBy,
	}.Clone()
}

// UpdateRequest is a partial campaign. Nil fields are left untouched.
//
// Changing ClientID does not move the campaign between client counters.
type UpdateRequest struct {
	ClientID    *string         `json:"client_id,omitempty"`
	Title       *string         `json:"title,omitempty"`
	Description *string         `json:"description,omitempty"`
	Status      *Status         `json:"status,omitempty"`
	Priority    *priority.Level `json:"priority,omitempty"`
	DueDate     *time.Time      `json:"due_date,omitempty"`
	AssignedTo  []string        `json:"assigned_to,omitempty"`
	Progress    *int            `json:"progress,omitempty"`
	Budget      *float64        `json:"budget,omitempty"`
	Platforms   []string        `json:"platforms,omitempty"`
	Tags        []string        `json:"tags,omitempty"`
}

// Apply merges the set fields of r into c.
func (r UpdateRequest) Apply(c *Campaign) {
	if r.ClientID != nil {
		c.ClientID = *r.ClientID
	}
	if r.Title != nil {
		c.Title = *r.Title
	}
	if r.Description != nil {
		c.Description = *r.Description
	}
	if r.Status != nil {
		c.Status = *r.Status
	}
	if r.Priority != nil {
		c.Priority = *r.Priority
	}
	if r.DueDate != nil {
		c.DueDate = *r.DueDate
	}
	if r.AssignedTo != nil {
		c.AssignedTo = slices.Clone(r.AssignedTo)
	}
	if r.Progress != nil {
		c.Progress = *r.Progress
	}
	if r.Budget != nil {
		c.Budget = *r.Budget
	}
	if r.Platforms != nil {
		c.Platforms = slices.Clone(r.Platforms)
	}
	if r.Tags != nil {
		c.Tags = slices.Clone(r.Tags)
	}
}
