package team

import (
	"slices"
	"time"
)

// Role is a team member's job function.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleManager    Role = "manager"
	RoleDesigner   Role = "designer"
	RoleCopywriter Role = "copywriter"
)

// Status is a team member's presence.
type Status string

const (
	StatusOnline  Status = "online"
	StatusAway    Status = "away"
	StatusBusy    Status = "busy"
	StatusOffline Status = "offline"
)

// User is a member of the agency team.
type User struct {
	ID          string    `json:"id" yaml:"id"`
	Name        string    `json:"name" yaml:"name"`
	Email       string    `json:"email" yaml:"email"`
	Avatar      string    `json:"avatar,omitempty" yaml:"avatar,omitempty"`
	Role        Role      `json:"role" yaml:"role"`
	Status      Status    `json:"status" yaml:"status"`
	LastActive  time.Time `json:"last_active" yaml:"last_active,omitempty"`
	Permissions []string  `json:"permissions,omitempty" yaml:"permissions,omitempty"`
}

// Performance summarizes the task load of one team member.
type Performance struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Avatar         string  `json:"avatar,omitempty"`
	Role           Role    `json:"role"`
	Status         Status  `json:"status"`
	TotalTasks     int     `json:"total_tasks"`
	CompletedTasks int     `json:"completed_tasks"`
	CompletionRate float64 `json:"completion_rate"`
	AvgPriority    float64 `json:"avg_priority"`
}

// Clone returns a copy of u that shares no slices with it.
func (u User) Clone() User {
	u.Permissions = slices.Clone(u.Permissions)
	return u
}
