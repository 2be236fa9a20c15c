package agent

import (
	"context"
	"time"
)

// DefaultInvokeTimeout bounds a single tool call when the registry has none configured.
const DefaultInvokeTimeout = 2 * time.Second

// EnvironmentTool is a best-effort capability that answers a single text
// argument with a text result.
type EnvironmentTool interface {
	// Name is the registry key.
	Name() string

	// Description says what the argument should look like.
	Description() string

	// Invoke runs the tool. Errors are turned into a readable result by the registry.
	Invoke(ctx context.Context, argument string) (string, error)
}

// ToolInfo describes a registered tool.
type ToolInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}
