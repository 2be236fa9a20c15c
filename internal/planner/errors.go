package planner

import "errors"

var (
	ErrInvalidUserID      = errors.New("invalid user id")
	ErrSessionUnavailable = errors.New("session store unavailable")
	ErrSessionNotFound    = errors.New("session not found")
	ErrToolNotFound       = errors.New("tool not found")
)
