package client

import (
	"slices"
	"time"
)

// CreateRequest carries the fields of a new client. The id and creation
// time are assigned by the store.
type CreateRequest struct {
	Name           string     `json:"name"`
	Logo           string     `json:"logo,omitempty"`
	Industry       string     `json:"industry,omitempty"`
	Website        string     `json:"website,omitempty"`
	Address        string     `json:"address,omitempty"`
	SocialChannels []string   `json:"social_channels,omitempty"`
	Status         Status     `json:"status,omitempty"`
	Campaigns      int        `json:"campaigns,omitempty"`
	TotalBudget    float64    `json:"total_budget,omitempty"`
	StartDate      time.Time  `json:"start_date,omitempty"`
	NextMeeting    *time.Time `json:"next_meeting,omitempty"`
	Contacts       []Contact  `json:"contacts,omitempty"`
	Notes          string     `json:"notes,omitempty"`
	Satisfaction   float64    `json:"satisfaction,omitempty"`
}

// Build turns the request into a client with the given identity.
func (r CreateRequest) Build(id string, now time.Time) Client {
	return Client{
		ID:             id,
		Name:           r.Name,
		Logo:           r.Logo,
		Industry:       r.Industry,
		Website:        r.Website,
		Address:        r.Address,
		SocialChannels: r.SocialChannels,
		Status:         r.Status,
		Campaigns:      r.Campaigns,
		TotalBudget:    r.TotalBudget,
		StartDate:      r.StartDate,
		NextMeeting:    r.NextMeeting,
		Contacts:       r.Contacts,
		Notes:          r.Notes,
		Satisfaction:   r.Satisfaction,
		CreatedAt:      now,
	}.Clone()
}

// UpdateRequest is a partial client. Nil fields are left untouched.
type UpdateRequest struct {
	Name           *string    `json:"name,omitempty"`
	Logo           *string    `json:"logo,omitempty"`
	Industry       *string    `json:"industry,omitempty"`
	Website        *string    `json:"website,omitempty"`
	Address        *string    `json:"address,omitempty"`
	SocialChannels []string   `json:"social_channels,omitempty"`
	Status         *Status    `json:"status,omitempty"`
	Campaigns      *int       `json:"campaigns,omitempty"`
	TotalBudget    *float64   `json:"total_budget,omitempty"`
	StartDate      *time.Time `json:"start_date,omitempty"`
	NextMeeting    *time.Time `json:"next_meeting,omitempty"`
	Contacts       []Contact  `json:"contacts,omitempty"`
	Notes          *string    `json:"notes,omitempty"`
	Satisfaction   *float64   `json:"satisfaction,omitempty"`
}

// Apply merges the set fields of r into c.
func (r UpdateRequest) Apply(c *Client) {
	if r.Name != nil {
		c.Name = *r.Name
	}
	if r.Logo != nil {
		c.Logo = *r.Logo
	}
	if r.Industry != nil {
		c.Industry = *r.Industry
	}
	if r.Website != nil {
		c.Website = *r.Website
	}
	if r.Address != nil {
		c.Address = *r.Address
	}
	if r.SocialChannels != nil {
		c.SocialChannels = slices.Clone(r.SocialChannels)
	}
	if r.Status != nil {
		c.Status = *r.Status
	}
	if r.Campaigns != nil {
		c.Campaigns = *r.Campaigns
	}
	if r.TotalBudget != nil {
		c.TotalBudget = *r.TotalBudget
	}
	if r.StartDate != nil {
		c.StartDate = *r.StartDate
	}
	if r.NextMeeting != nil {
		next := *r.NextMeeting
		c.NextMeeting = &next
	}
	if r.Contacts != nil {
		c.Contacts = slices.Clone(r.Contacts)
	}
	if r.Notes != nil {
		c.Notes = *r.Notes
	}
	if r.Satisfaction != nil {
		c.Satisfaction = *r.Satisfaction
	}
}
