package task

import "strings"

// ListOptions filters the task list. Empty fields match everything.
type ListOptions struct {
	Query      string `json:"query,omitempty"`
	Status     Status `json:"status,omitempty"`
	Type       Type   `json:"type,omitempty"`
	CampaignID string `json:"campaign_id,omitempty"`
	AssignedTo string `json:"assigned_to,omitempty"`
}

// Matches reports whether t passes every set filter.
func (o ListOptions) Matches(t Task) bool {
	if o.Query != "" && !strings.Contains(strings.ToLower(t.Title), strings.ToLower(o.Query)) {
		return false
	}
	if o.Status != "" && t.Status != o.Status {
		return false
	}
	if o.Type != "" && t.Type != o.Type {
		return false
	}
	if o.CampaignID != "" && t.CampaignID != o.CampaignID {
		return false
	}
	if o.AssignedTo != "" && t.AssignedTo != o.AssignedTo {
		return false
	}
	return true
}
