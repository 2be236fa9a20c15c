package agent

import "errors"

var (
	ErrToolNotFound  = errors.New("tool not found")
	ErrToolPanicked  = errors.New("tool panicked")
	ErrEmptyArgument = errors.New("argument is required")
)
