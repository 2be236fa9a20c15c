package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"smart-travel-planner/internal/agent"
	"smart-travel-planner/internal/planner"
	"smart-travel-planner/internal/session"
)

func (uc *implUseCase) GetSession(ctx context.Context, userID string) (session.Record, error) {
	userID = strings.TrimSpace(userID)
	if err := validateUserID(userID); err != nil {
		return session.Record{}, err
	}

	rec, err := uc.store.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			return session.Record{}, planner.ErrSessionNotFound
		}
		uc.l.Errorf(ctx, "%s: store.Get: %v", LogPrefixGetSession, err)
		return session.Record{}, fmt.Errorf("%w: %w", planner.ErrSessionUnavailable, err)
	}
	return rec, nil
}

func (uc *implUseCase) InvokeTool(ctx context.Context, input planner.InvokeToolInput) (planner.InvokeToolOutput, error) {
	if _, ok := uc.tools.Get(input.Name); !ok {
		return planner.InvokeToolOutput{}, planner.ErrToolNotFound
	}
	result := uc.tools.Invoke(ctx, input.Name, input.Argument)
	uc.l.Debugf(ctx, "%s: %s(%q) -> %q", LogPrefixInvokeTool, input.Name, input.Argument, result)
	return planner.InvokeToolOutput{Tool: input.Name, Result: result}, nil
}

func (uc *implUseCase) ListTools() []agent.ToolInfo {
	return uc.tools.List()
}
