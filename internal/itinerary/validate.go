package itinerary

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateAnalysis checks a DestinationAnalysis against its schema.
func ValidateAnalysis(a DestinationAnalysis) error {
	if err := validate.Struct(a); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidOutput, err)
	}
	return nil
}

// ValidateItinerary checks an Itinerary against its schema, including day numbering.
func ValidateItinerary(it Itinerary) error {
	if err := validate.Struct(it); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidOutput, err)
	}
	for i, d := range it.DailyItinerary {
		if d.Day != i+1 {
			return fmt.Errorf("%w: %w: position %d has day %d", ErrInvalidOutput, ErrDayNumbering, i+1, d.Day)
		}
	}
	return nil
}
