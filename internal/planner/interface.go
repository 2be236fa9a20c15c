package planner

import (
	"context"

	"smart-travel-planner/internal/agent"
	"smart-travel-planner/internal/session"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// PlanTravel runs the whole pipeline. Only ErrInvalidUserID and
	// ErrSessionUnavailable are returned; every other stage degrades.
	PlanTravel(ctx context.Context, input PlanTravelInput) (PlanResponse, error)

	// GetSession returns the stored session, or ErrSessionNotFound.
	GetSession(ctx context.Context, userID string) (session.Record, error)

	// InvokeTool runs one environment tool, or ErrToolNotFound.
	InvokeTool(ctx context.Context, input InvokeToolInput) (InvokeToolOutput, error)

	// ListTools describes the registered tools.
	ListTools() []agent.ToolInfo
}
