package task

import "strings"

// ValidateCreateInput checks the fields strict mode requires of a new task.
func ValidateCreateInput(req CreateRequest) error {
	if strings.TrimSpace(req.Title) == "" {
		return ErrInvalidInput
	}
	return nil
}

// ValidateUpdateInput rejects updates that would blank the title.
func ValidateUpdateInput(req UpdateRequest) error {
	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		return ErrInvalidInput
	}
	return nil
}

// ValidateCommentInput rejects empty comments.
func ValidateCommentInput(req CommentRequest) error {
	if strings.TrimSpace(req.Text) == "" {
		return ErrInvalidInput
	}
	return nil
}
