package tools

import (
	"context"
	"fmt"
	"strings"

	"smart-travel-planner/internal/agent"
)

// WeatherTool answers current conditions for a destination from a fixed table.
type WeatherTool struct{}

// NewWeatherTool creates the weather tool.
func NewWeatherTool() agent.EnvironmentTool {
	return &WeatherTool{}
}

func (t *WeatherTool) Name() string {
	return WeatherToolName
}

func (t *WeatherTool) Description() string {
	return "Current weather for a destination. Argument: destination name, e.g. \"Tokyo\"."
}

func (t *WeatherTool) Invoke(ctx context.Context, argument string) (string, error) {
	dest := strings.TrimSpace(argument)
	if dest == "" {
		return "", agent.ErrEmptyArgument
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if f, ok := weatherTable[strings.ToLower(dest)]; ok {
		return fmt.Sprintf("Weather in %s: %s, %d°C", dest, f.summary, f.tempC), nil
	}
	return fmt.Sprintf("Weather data for %s is not available; check a local forecast before departure.", dest), nil
}
