package memory_test

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"

	"smart-travel-planner/internal/knowledge"
	"smart-travel-planner/internal/knowledge/repository/memory"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// keywordEmbedder maps text onto three axes: beach, mountain, city.
type keywordEmbedder struct {
	queryErr   error
	embedErr   error
	queryCalls atomic.Int32
}

func vec(text string) []float32 {
	t := strings.ToLower(text)
	v := []float32{0, 0, 0}
	if strings.Contains(t, "beach") {
		v[0] = 1
	}
	if strings.Contains(t, "mountain") {
		v[1] = 1
	}
	if strings.Contains(t, "city") {
		v[2] = 1
	}
	return v
}

func (e *keywordEmbedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if e.embedErr != nil {
		return nil, e.embedErr
	}
	out := make([][]float32, len(texts))
	for i, t := range texts {
		out[i] = vec(t)
	}
	return out, nil
}

func (e *keywordEmbedder) EmbedQuery(ctx context.Context, text string) ([]float32, error) {
	e.queryCalls.Add(1)
	if e.queryErr != nil {
		return nil, e.queryErr
	}
	return vec(text), nil
}

var docs = []knowledge.Document{
	{ID: "a", Destination: "Bali", Text: "beach and surf"},
	{ID: "b", Destination: "Peru", Text: "mountain trekking"},
	{ID: "c", Destination: "Paris", Text: "city museums"},
	{ID: "d", Destination: "Rio", Text: "city beach"},
}

func TestIndexSearch(t *testing.T) {
	ctx := context.Background()
	idx := memory.New(&keywordEmbedder{}, &mockLogger{})

	if _, err := idx.Search(ctx, "beach", 2); !errors.Is(err, knowledge.ErrIndexNotReady) {
		t.Fatalf("expected ErrIndexNotReady before Index, got %v", err)
	}
	if err := idx.Index(ctx, docs); err != nil {
		t.Fatalf("Index: %v", err)
	}

	got, err := idx.Search(ctx, "mountain escape", 1)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(got) != 1 || got[0].ID != "b" {
		t.Errorf("expected [b], got %+v", got)
	}

	got, err = idx.Search(ctx, "beach city", 2)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(got) != 2 || got[0].ID != "d" {
		t.Errorf("expected d first, got %+v", got)
	}

	got, _ = idx.Search(ctx, "beach", 10)
	if len(got) != len(docs) {
		t.Errorf("expected k capped to corpus size %d, got %d", len(docs), len(got))
	}
}

func TestIndexErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("empty corpus", func(t *testing.T) {
		idx := memory.New(&keywordEmbedder{}, &mockLogger{})
		if err := idx.Index(ctx, nil); !errors.Is(err, knowledge.ErrEmptyCorpus) {
			t.Errorf("expected ErrEmptyCorpus, got %v", err)
		}
	})

	t.Run("embed failure", func(t *testing.T) {
		boom := errors.New("boom")
		idx := memory.New(&keywordEmbedder{embedErr: boom}, &mockLogger{})
		if err := idx.Index(ctx, docs); !errors.Is(err, boom) {
			t.Errorf("expected boom, got %v", err)
		}
	})

	t.Run("breaker opens after repeated query failures", func(t *testing.T) {
		emb := &keywordEmbedder{}
		idx := memory.New(emb, &mockLogger{})
		if err := idx.Index(ctx, docs); err != nil {
			t.Fatal(err)
		}
		emb.queryErr = errors.New("unavailable")

		for range 5 {
			if _, err := idx.Search(ctx, "beach", 1); err == nil {
				t.Fatal("expected error")
			}
		}
		if calls := emb.queryCalls.Load(); calls != 3 {
			t.Errorf("expected breaker to stop calls after 3 failures, got %d calls", calls)
		}
	})
}
