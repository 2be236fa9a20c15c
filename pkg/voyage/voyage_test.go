package voyage_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"smart-travel-planner/pkg/voyage"
)

func TestVoyageClient(t *testing.T) {
	var lastInputType string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-voyage-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var req voyage.EmbedRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		lastInputType = req.InputType

		if len(req.Input) > 0 && req.Input[0] == "cause_500" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		// Reversed order to exercise index placement.
		w.WriteHeader(http.StatusOK)
		if len(req.Input) == 2 {
			w.Write([]byte(`{"data":[{"embedding":[0.9],"index":1},{"embedding":[0.1],"index":0}]}`))
			return
		}
		w.Write([]byte(`{"data":[{"embedding":[0.1,0.2,0.3],"index":0}]}`))
	}))
	defer ts.Close()

	client, _ := voyage.New("test-voyage-key")
	client.WithBaseURL(ts.URL).WithModel("custom-model")

	t.Run("Success Flow", func(t *testing.T) {
		emb, err := client.Embed(context.Background(), []string{"Hello world"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(emb) != 1 || len(emb[0]) != 3 {
			t.Fatalf("expected 1 embed with 3 dims, got len=%d", len(emb))
		}
		if lastInputType != voyage.InputTypeDocument {
			t.Errorf("input_type = %q, want document", lastInputType)
		}
	})

	t.Run("Order Follows Index", func(t *testing.T) {
		emb, err := client.Embed(context.Background(), []string{"a", "b"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if emb[0][0] != 0.1 || emb[1][0] != 0.9 {
			t.Errorf("embeddings out of order: %v", emb)
		}
	})

	t.Run("Query Flow", func(t *testing.T) {
		vec, err := client.EmbedQuery(context.Background(), "Paris")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(vec) != 3 || lastInputType != voyage.InputTypeQuery {
			t.Errorf("unexpected query embedding %v (%s)", vec, lastInputType)
		}
	})

	t.Run("Server Error Flow", func(t *testing.T) {
		_, err := client.Embed(context.Background(), []string{"cause_500"})
		if err == nil {
			t.Fatalf("expected error from 500 response")
		}
	})

	t.Run("Unauthorized Error Flow", func(t *testing.T) {
		badClient, _ := voyage.New("bad-key")
		badClient.WithBaseURL(ts.URL)
		_, err := badClient.Embed(context.Background(), []string{"Hello world"})
		if err == nil || !strings.Contains(err.Error(), "401") {
			t.Fatalf("expected 401 error, got %v", err)
		}
	})

	t.Run("Empty Input", func(t *testing.T) {
		if _, err := client.Embed(context.Background(), nil); err == nil {
			t.Fatal("expected error for empty input")
		}
	})
}
