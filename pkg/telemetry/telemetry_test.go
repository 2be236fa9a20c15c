package telemetry

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"go.opentelemetry.io/otel"
)

func TestInit(t *testing.T) {
	t.Run("disabled is a no-op", func(t *testing.T) {
		shutdown, err := Init(Config{ServiceName: "test"})
		if err != nil {
			t.Fatalf("Init() error = %v", err)
		}
		if err := shutdown(context.Background()); err != nil {
			t.Errorf("shutdown() error = %v", err)
		}
	})

	t.Run("enabled exports spans", func(t *testing.T) {
		var buf bytes.Buffer
		shutdown, err := Init(Config{ServiceName: "test", TracingEnabled: true, Writer: &buf})
		if err != nil {
			t.Fatalf("Init() error = %v", err)
		}

		_, span := otel.Tracer("test").Start(context.Background(), "plan.travel")
		span.End()

		if err := shutdown(context.Background()); err != nil {
			t.Fatalf("shutdown() error = %v", err)
		}
		if !strings.Contains(buf.String(), "plan.travel") {
			t.Errorf("expected exported span, got %q", buf.String())
		}
	})
}
