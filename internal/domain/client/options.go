package client

import "strings"

// ListOptions filters the client list. Empty fields match everything.
type ListOptions struct {
	Query    string `json:"query,omitempty"`
	Status   Status `json:"status,omitempty"`
	Industry string `json:"industry,omitempty"`
}

// Matches reports whether c passes every set filter.
func (o ListOptions) Matches(c Client) bool {
	if o.Query != "" && !strings.Contains(strings.ToLower(c.Name), strings.ToLower(o.Query)) {
		return false
	}
	if o.Status != "" && c.Status != o.Status {
		return false
	}
	if o.Industry != "" && c.Industry != o.Industry {
		return false
	}
	return true
}
