package campaign

import "strings"

// ListOptions filters the campaign list. Empty fields match everything.
type ListOptions struct {
	Query    string `json:"query,omitempty"`
	Status   Status `json:"status,omitempty"`
	ClientID string `json:"client_id,omitempty"`
}

// Matches reports whether c passes every set filter.
func (o ListOptions) Matches(c Campaign) bool {
	if o.Query != "" && !strings.Contains(strings.ToLower(c.Title), strings.ToLower(o.Query)) {
		return false
	}
	if o.Status != "" && c.Status != o.Status {
		return false
	}
	if o.ClientID != "" && c.ClientID != o.ClientID {
		return false
	}
	return true
}
