package agent

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"smart-travel-planner/pkg/log"
)

var invocationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "planner",
		Subsystem: "tools",
		Name:      "invocations_total",
		Help:      "Environment tool invocations by tool and status.",
	},
	[]string{"tool", "status"},
)

// ToolRegistry manages available tools and invokes them safely.
type ToolRegistry struct {
	mu      sync.RWMutex
	tools   map[string]EnvironmentTool
	timeout time.Duration
	l       log.Logger
}

// NewToolRegistry creates a new tool registry. timeout bounds each Invoke.
func NewToolRegistry(timeout time.Duration, l log.Logger) *ToolRegistry {
	if timeout <= 0 {
		timeout = DefaultInvokeTimeout
	}
	return &ToolRegistry{
		tools:   make(map[string]EnvironmentTool),
		timeout: timeout,
		l:       l,
	}
}

// Register adds a tool to the registry, replacing any tool with the same name.
func (r *ToolRegistry) Register(tool EnvironmentTool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tools[tool.Name()] = tool
}

// Get retrieves a tool by name.
func (r *ToolRegistry) Get(name string) (EnvironmentTool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tool, ok := r.tools[name]
	return tool, ok
}

// List returns all registered tools sorted by name.
func (r *ToolRegistry) List() []ToolInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]ToolInfo, 0, len(r.tools))
	for _, tool := range r.tools {
		out = append(out, ToolInfo{Name: tool.Name(), Description: tool.Description()})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Invoke calls the named tool once. It never fails: errors, timeouts and
// panics become "<name> unavailable: <reason>".
func (r *ToolRegistry) Invoke(ctx context.Context, name, argument string) string {
	tool, ok := r.Get(name)
	if !ok {
		invocationsTotal.WithLabelValues(name, "not_found").Inc()
		return Unavailable(name, ErrToolNotFound)
	}

	result, err := r.call(ctx, tool, argument)
	if err != nil {
		invocationsTotal.WithLabelValues(name, "error").Inc()
		r.l.Warnf(ctx, "internal.agent.ToolRegistry.Invoke: tool %s failed: %v", name, err)
		return Unavailable(name, err)
	}
	invocationsTotal.WithLabelValues(name, "success").Inc()
	return result
}

func (r *ToolRegistry) call(ctx context.Context, tool EnvironmentTool, argument string) (result string, err error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	type reply struct {
		result string
		err    error
	}
	done := make(chan reply, 1)

	go func() {
		defer func() {
			if p := recover(); p != nil {
				done <- reply{err: fmt.Errorf("%w: %v", ErrToolPanicked, p)}
			}
		}()
		res, err := tool.Invoke(ctx, argument)
		done <- reply{result: res, err: err}
	}()

	select {
	case rep := <-done:
		return rep.result, rep.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// Unavailable formats the result substituted for a failed tool call.
func Unavailable(name string, reason error) string {
	return fmt.Sprintf("%s unavailable: %v", name, reason)
}
