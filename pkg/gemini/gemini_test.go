package gemini_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"smart-travel-planner/pkg/gemini"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("key") != "test-api-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var req map[string]any
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		contents := req["contents"].([]any)
		first := contents[0].(map[string]any)["parts"].([]any)[0].(map[string]any)["text"]
		switch first {
		case "cause_500":
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"error":"boom"}`))
		case "no_candidates":
			w.Write([]byte(`{"candidates":[]}`))
		default:
			w.Write([]byte(`{
				"candidates":[{"content":{"role":"model","parts":[{"text":"{\"ok\":"},{"text":"true}"}]},"finishReason":"STOP"}],
				"usageMetadata":{"promptTokenCount":12,"candidatesTokenCount":4,"totalTokenCount":16}
			}`))
		}
	}))
}

func TestGenerateContent(t *testing.T) {
	ts := newTestServer(t)
	defer ts.Close()

	client, err := gemini.New(gemini.Config{APIKey: "test-api-key", APIURL: ts.URL})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	t.Run("success joins parts", func(t *testing.T) {
		resp, err := client.GenerateContent(context.Background(), &gemini.Request{
			SystemInstruction: "Respond with JSON",
			Messages:          []gemini.Message{{Role: "user", Text: "hello"}},
			ResponseMIMEType:  gemini.MIMETypeJSON,
		})
		if err != nil {
			t.Fatalf("GenerateContent() error = %v", err)
		}
		if resp.Text != `{"ok":true}` {
			t.Errorf("Text = %q", resp.Text)
		}
		if resp.Usage.TotalTokens != 16 {
			t.Errorf("TotalTokens = %d, want 16", resp.Usage.TotalTokens)
		}
	})

	t.Run("api error", func(t *testing.T) {
		_, err := client.GenerateContent(context.Background(), &gemini.Request{
			Messages: []gemini.Message{{Role: "user", Text: "cause_500"}},
		})
		var apiErr *gemini.APIError
		if !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusInternalServerError {
			t.Errorf("expected APIError 500, got %v", err)
		}
	})

	t.Run("no candidates", func(t *testing.T) {
		_, err := client.GenerateContent(context.Background(), &gemini.Request{
			Messages: []gemini.Message{{Role: "user", Text: "no_candidates"}},
		})
		if !errors.Is(err, gemini.ErrEmptyResponse) {
			t.Errorf("expected ErrEmptyResponse, got %v", err)
		}
	})
}

func TestNew_RequiresAPIKey(t *testing.T) {
	if _, err := gemini.New(gemini.Config{}); err == nil {
		t.Error("expected error without API key")
	}
}

func TestNew_Defaults(t *testing.T) {
	client, err := gemini.New(gemini.Config{APIKey: "k"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if client.Model() != gemini.DefaultModel {
		t.Errorf("Model() = %s, want %s", client.Model(), gemini.DefaultModel)
	}
}
