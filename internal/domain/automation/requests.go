package automation

import (
	"slices"
	"strings"
	"time"
)

// CreateRequest carries the fields of a new rule. Executions and success
// rate always start at zero.
type CreateRequest struct {
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Trigger     Trigger    `json:"trigger"`
	Action      Action     `json:"action"`
	Status      Status     `json:"status,omitempty"`
	Platforms   []string   `json:"platforms,omitempty"`
	LastRun     *time.Time `json:"last_run,omitempty"`
	NextRun     *time.Time `json:"next_run,omitempty"`
}

func (r CreateRequest) Build(id string, now time.Time) Rule {
	return Rule{
		ID:          id,
		Name:        r.Name,
		Description: r.Description,
		Trigger:     r.Trigger,
		Action:      r.Action,
		Status:      r.Status,
		Platforms:   r.Platforms,
		LastRun:     r.LastRun,
		NextRun:     r.NextRun,
		CreatedAt:   now,
	}.Clone()
}

// UpdateRequest is a partial rule. Nil fields are left untouched.
type UpdateRequest struct {
	Name        *string    `json:"name,omitempty"`
	Description *string    `json:"description,omitempty"`
	Trigger     *Trigger   `json:"trigger,omitempty"`
	Action      *Action    `json:"action,omitempty"`
	Status      *Status    `json:"status,omitempty"`
	Platforms   []string   `json:"platforms,omitempty"`
	LastRun     *time.Time `json:"last_run,omitempty"`
	NextRun     *time.Time `json:"next_run,omitempty"`
	Executions  *int       `json:"executions,omitempty"`
	SuccessRate *float64   `json:"success_rate,omitempty"`
}

func (r UpdateRequest) Apply(rule *Rule) {
	if r.Name != nil {
		rule.Name = *r.Name
	}
	if r.Description != nil {
		rule.Description = *r.Description
	}
	if r.Trigger != nil {
		rule.Trigger = *r.Trigger
	}
	if r.Action != nil {
		rule.Action = *r.Action
	}
	if r.Status != nil {
		rule.Status = *r.Status
	}
	if r.Platforms != nil {
		rule.Platforms = slices.Clone(r.Platforms)
	}
	if r.LastRun != nil {
		rule.LastRun = cloneTime(r.LastRun)
	}
	if r.NextRun != nil {
		rule.NextRun = cloneTime(r.NextRun)
	}
	if r.Executions != nil {
		rule.Executions = *r.Executions
	}
	if r.SuccessRate != nil {
		rule.SuccessRate = *r.SuccessRate
	}
}

// ValidateCreateInput checks the fields strict mode requires of a new rule.
func ValidateCreateInput(req CreateRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return ErrInvalidInput
	}
	return nil
}

// ValidateUpdateInput rejects a blank name and a success rate outside [0,100].
func ValidateUpdateInput(req UpdateRequest) error {
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return ErrInvalidInput
	}
	if req.SuccessRate != nil && (*req.SuccessRate < 0 || *req.SuccessRate > 100) {
		return ErrInvalidInput
	}
	if req.Executions != nil && *req.Executions < 0 {
		return ErrInvalidInput
	}
	return nil
}
