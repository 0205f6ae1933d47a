package client

import "strings"

// ValidateCreateInput checks the fields strict mode requires of a new client.
func ValidateCreateInput(req CreateRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return ErrInvalidInput
	}
	return nil
}

// ValidateUpdateInput rejects updates that would blank the client's name.
func ValidateUpdateInput(req UpdateRequest) error {
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return ErrInvalidInput
	}
	return nil
}
