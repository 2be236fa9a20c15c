package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"smart-travel-planner/internal/agent"
)

// BookingTool is a confirmation stub. It never reserves anything.
type BookingTool struct {
	newCode func() string
}

// NewBookingTool creates the booking stub.
func NewBookingTool() agent.EnvironmentTool {
	return &BookingTool{newCode: confirmationCode}
}

func confirmationCode() string {
	return "TRV-" + strings.ToUpper(uuid.NewString()[:8])
}

func (t *BookingTool) Name() string {
	return BookingToolName
}

func (t *BookingTool) Description() string {
	return "Request a booking confirmation. Argument: what to book, e.g. \"hotel in Paris for 3 nights\"."
}

func (t *BookingTool) Invoke(ctx context.Context, argument string) (string, error) {
	req := strings.TrimSpace(argument)
	if req == "" {
		return "", agent.ErrEmptyArgument
	}

	lower := strings.ToLower(req)
	for _, b := range bookingKinds {
		if b.match.MatchString(lower) {
			return fmt.Sprintf("%s confirmed: %s. Confirmation code: %s", b.kind, req, t.newCode()), nil
		}
	}
	return fmt.Sprintf("Booking request received: %s. Reference: %s. A travel agent will follow up.", req, t.newCode()), nil
}
