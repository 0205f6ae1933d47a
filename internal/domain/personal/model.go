// Package personal holds the active user's private to-do list.
package personal

import (
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/ganot/creativehub/internal/domain/priority"
)

// Status is a personal task's state.
type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in-progress"
	StatusDone       Status = "done"
)

var (
	ErrTaskNotFound = errors.New("personal task not found")
	ErrInvalidInput = errors.New("invalid personal task input")
)

// Task is a to-do owned by the active user. It has no cascades.
type Task struct {
	ID          string         `json:"id" yaml:"id"`
	Title       string         `json:"title" yaml:"title"`
	Description string         `json:"description,omitempty" yaml:"description,omitempty"`
	Status      Status         `json:"status" yaml:"status"`
	Priority    priority.Level `json:"priority" yaml:"priority"`
	DueDate     time.Time      `json:"due_date" yaml:"due_date,omitempty"`
	Tags        []string       `json:"tags,omitempty" yaml:"tags,omitempty"`
	CreatedAt   time.Time      `json:"created_at" yaml:"created_at,omitempty"`
}

func (t Task) Clone() Task {
	t.Tags = slices.Clone(t.Tags)
	return t
}

type CreateRequest struct {
	Title       string         `json:"title"`
	Description string         `json:"description,omitempty"`
	Status      Status         `json:"status,omitempty"`
	Priority    priority.Level `json:"priority,omitempty"`
	DueDate     time.Time      `json:"due_date,omitempty"`
	Tags        []string       `json:"tags,omitempty"`
}

func (r CreateRequest) Build(id string, now time.Time) Task {
	return Task{
		ID:          id,
		Title:       r.Title,
		Description: r.Description,
		Status:      r.Status,
		Priority:    r.Priority,
		DueDate:     r.DueDate,
		Tags:        r.Tags,
		CreatedAt:   now,
	}.Clone()
}

type UpdateRequest struct {
	Title       *string         `json:"title,omitempty"`
	Description *string         `json:"description,omitempty"`
	Status      *Status         `json:"status,omitempty"`
	Priority    *priority.Level `json:"priority,omitempty"`
	DueDate     *time.Time      `json:"due_date,omitempty"`
	Tags        []string        `json:"tags,omitempty"`
}

func (r UpdateRequest) Apply(t *Task) {
	if r.Title != nil {
		t.Title = *r.Title
	}
	if r.Description != nil {
		t.Description = *r.Description
	}
	if r.Status != nil {
		t.Status = *r.Status
	}
	if r.Priority != nil {
		t.Priority = *r.Priority
	}
	if r.DueDate != nil {
		t.DueDate = *r.DueDate
	}
	if r.Tags != nil {
		t.Tags = slices.Clone(r.Tags)
	}
}

// Validate reports ErrInvalidInput for a blank title.
func (r CreateRequest) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return ErrInvalidInput
	}
	return nil
}

func (r UpdateRequest) Validate() error {
	if r.Title != nil && strings.TrimSpace(*r.Title) == "" {
		return ErrInvalidInput
	}
	return nil
}

// ListOptions filters personal tasks by title substring and status.
type ListOptions struct {
	Query  string `json:"query,omitempty"`
	Status Status `json:"status,omitempty"`
}

func (o ListOptions) Matches(t Task) bool {
	if o.Query != "" && !strings.Contains(strings.ToLower(t.Title), strings.ToLower(o.Query)) {
		return false
	}
	return o.Status == "" || t.Status == o.Status
}

type Stats struct {
	Total      int `json:"total"`
	Todo       int `json:"todo"`
	InProgress int `json:"in_progress"`
	Done       int `json:"done"`
	Overdue    int `json:"overdue"`
}

// ComputeStats counts personal tasks per status. A task is overdue when it
// has a due date before now and isn't done.
func ComputeStats(tasks []Task, now time.Time) Stats {
	var stats Stats
	for _, t := range tasks {
		stats.Total++
		switch t.Status {
		case StatusTodo:
			stats.Todo++
		case StatusInProgress:
			stats.InProgress++
		case StatusDone:
			stats.Done++
		}
		if !t.DueDate.IsZero() && t.DueDate.Before(now) && t.Status != StatusDone {
			stats.Overdue++
		}
	}
	return stats
}
