package log

import (
	"context"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"WARN", zapcore.WarnLevel},
		{"warning", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"", zapcore.InfoLevel},
		{"nonsense", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := parseLevel(tt.in); got != tt.want {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestInit(t *testing.T) {
	ctx := context.WithValue(context.Background(), RequestIDKey, "req-1")

	t.Run("console", func(t *testing.T) {
		l := Init(ZapConfig{Level: "debug", Mode: "development", Encoding: EncodingConsole, ColorEnabled: true})
		l.Infof(ctx, "hello %s", "world")
	})

	t.Run("json production", func(t *testing.T) {
		l := Init(ZapConfig{Level: "info", Mode: ModeProduction, Encoding: EncodingJSON})
		l.Warn(ctx, "json line")
	})

	t.Run("nop", func(t *testing.T) {
		NewNop().Error(context.TODO(), "discarded")
	})
}

func TestSplitKV(t *testing.T) {
	tests := []struct {
		name string
		arg  []any
		ok   bool
	}{
		{"msg only", []any{"hello"}, false},
		{"msg with pairs", []any{"hello", "k", 1, "j", "v"}, true},
		{"dangling key", []any{"hello", "k", 1, "j"}, false},
		{"non-string key", []any{"hello", 1, 2}, false},
		{"non-string msg", []any{1, "k", 2}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, ok := splitKV(tt.arg); ok != tt.ok {
				t.Errorf("splitKV(%v) ok = %v, want %v", tt.arg, ok, tt.ok)
			}
		})
	}
}
