package client

import (
	"slices"
	"time"
)

// Status is a client's relationship state with the agency.
type Status string

const (
	StatusActive    Status = "active"
	StatusInactive  Status = "inactive"
	StatusPotential Status = "potential"
)

// Contact is a person at the client's side.
type Contact struct {
	Name     string `json:"name" yaml:"name"`
	Position string `json:"position,omitempty" yaml:"position,omitempty"`
	Email    string `json:"email,omitempty" yaml:"email,omitempty"`
	Phone    string `json:"phone,omitempty" yaml:"phone,omitempty"`
	Avatar   string `json:"avatar,omitempty" yaml:"avatar,omitempty"`
}

// Client is a brand the agency runs campaigns for.
//
// Campaigns is a denormalized count of the client's live campaigns. It is
// kept in sync only by the add and delete campaign operations.
type Client struct {
	ID             string     `json:"id" yaml:"id"`
	Name           string     `json:"name" yaml:"name"`
	Logo           string     `json:"logo,omitempty" yaml:"logo,omitempty"`
	Industry       string     `json:"industry,omitempty" yaml:"industry,omitempty"`
	Website        string     `json:"website,omitempty" yaml:"website,omitempty"`
	Address        string     `json:"address,omitempty" yaml:"address,omitempty"`
	SocialChannels []string   `json:"social_channels,omitempty" yaml:"social_channels,omitempty"`
	Status         Status     `json:"status" yaml:"status"`
	Campaigns      int        `json:"campaigns" yaml:"campaigns"`
	TotalBudget    float64    `json:"total_budget" yaml:"total_budget"`
	StartDate      time.Time  `json:"start_date" yaml:"start_date,omitempty"`
	NextMeeting    *time.Time `json:"next_meeting,omitempty" yaml:"next_meeting,omitempty"`
	Contacts       []Contact  `json:"contacts,omitempty" yaml:"contacts,omitempty"`
	Notes          string     `json:"notes,omitempty" yaml:"notes,omitempty"`
	Satisfaction   float64    `json:"satisfaction" yaml:"satisfaction"`
	CreatedAt      time.Time  `json:"created_at" yaml:"created_at,omitempty"`
}

// Stats summarizes the client collection.
type Stats struct {
	Total           int     `json:"total"`
	Active          int     `json:"active"`
	Potential       int     `json:"potential"`
	TotalBudget     float64 `json:"total_budget"`
	AvgSatisfaction float64 `json:"avg_satisfaction"`
}

// Clone returns a deep copy of c.
func (c Client) Clone() Client {
	c.SocialChannels = slices.Clone(c.SocialChannels)
	c.Contacts = slices.Clone(c.Contacts)
	if c.NextMeeting != nil {
		next := *c.NextMeeting
		c.NextMeeting = &next
	}
	return c
}
