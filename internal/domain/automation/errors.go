package automation

import "errors"

var (
	// ErrRuleNotFound indicates the automation rule doesn't exist.
	ErrRuleNotFound = errors.New("automation rule not found")
	// ErrInvalidInput indicates invalid rule input.
	ErrInvalidInput = errors.New("invalid automation rule input")
)
