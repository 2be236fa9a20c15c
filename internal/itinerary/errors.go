package itinerary

import "errors"

var (
	ErrGeneratorUnavailable = errors.New("text generation not configured")
	ErrInvalidOutput        = errors.New("generated output failed validation")
	ErrDayNumbering         = errors.New("day numbers must run 1..N without gaps")
)
