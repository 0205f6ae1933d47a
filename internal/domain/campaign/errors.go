package campaign

import "errors"

var (
	// ErrCampaignNotFound indicates the campaign doesn't exist.
	ErrCampaignNotFound = errors.New("campaign not found")
	// ErrInvalidInput indicates invalid campaign input.
	ErrInvalidInput = errors.New("invalid campaign input")
)
