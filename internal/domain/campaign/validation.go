package campaign

import "strings"

// ValidateCreateInput checks the fields strict mode requires of a new campaign.
func ValidateCreateInput(req CreateRequest) error {
	if strings.TrimSpace(req.Title) == "" {
		return ErrInvalidInput
	}
	if req.Progress < 0 || req.Progress > 100 {
		return ErrInvalidInput
	}
	return nil
}

// ValidateUpdateInput checks the fields an update sets.
func ValidateUpdateInput(req UpdateRequest) error {
	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		return ErrInvalidInput
	}
	if req.Progress != nil && (*req.Progress < 0 || *req.Progress > 100) {
		return ErrInvalidInput
	}
	return nil
}
