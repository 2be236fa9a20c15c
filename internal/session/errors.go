package session

import "errors"

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrEmptyUserID     = errors.New("user id is empty")
)
