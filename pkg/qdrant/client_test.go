package qdrant_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"smart-travel-planner/pkg/qdrant"
)

func TestQdrantClient(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Content-Type") != "application/json" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		path := r.URL.Path

		switch {
		case r.Method == http.MethodGet && path == "/collections/travel":
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"result":{"status":"green"}}`))
		case r.Method == http.MethodGet:
			w.WriteHeader(http.StatusNotFound)

		case r.Method == http.MethodPut && strings.HasSuffix(path, "/points"):
			if r.URL.Query().Get("wait") != "true" {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			var req qdrant.UpsertPointsRequest
			json.NewDecoder(r.Body).Decode(&req)
			if len(req.Points) > 0 {
				if val, ok := req.Points[0].Payload["cause_500"]; ok && val == true {
					w.WriteHeader(http.StatusInternalServerError)
					return
				}
			}
			w.WriteHeader(http.StatusOK)

		case r.Method == http.MethodPut && strings.Contains(path, "/collections/"):
			w.WriteHeader(http.StatusCreated)

		case r.Method == http.MethodDelete:
			w.WriteHeader(http.StatusOK)

		case r.Method == http.MethodPost && strings.HasSuffix(path, "/points/count"):
			w.Write([]byte(`{"result":{"count":42},"status":"ok"}`))

		case r.Method == http.MethodPost && strings.HasSuffix(path, "/points/search"):
			var req qdrant.SearchRequest
			json.NewDecoder(r.Body).Decode(&req)
			if req.Limit == 999 {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			w.Write([]byte(`{
				"result": [{"id": "123", "version": 1, "score": 0.95, "payload": {"key": "value"}}],
				"status": "ok",
				"time": 0.05
			}`))

		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer ts.Close()

	client := qdrant.NewClient(ts.URL + "/")

	t.Run("CollectionExists", func(t *testing.T) {
		ok, err := client.CollectionExists(context.Background(), "travel")
		if err != nil || !ok {
			t.Fatalf("expected existing collection, got %v, %v", ok, err)
		}
		ok, err = client.CollectionExists(context.Background(), "missing")
		if err != nil || ok {
			t.Fatalf("expected missing collection, got %v, %v", ok, err)
		}
	})

	t.Run("CreateCollection", func(t *testing.T) {
		err := client.CreateCollection(context.Background(), qdrant.CreateCollectionRequest{
			Name:    "test_col",
			Vectors: qdrant.VectorConfig{Size: 1024, Distance: "Cosine"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("DeleteCollection", func(t *testing.T) {
		if err := client.DeleteCollection(context.Background(), "test_col"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("UpsertPoints Success", func(t *testing.T) {
		err := client.UpsertPoints(context.Background(), "test_col", qdrant.UpsertPointsRequest{
			Points: []qdrant.Point{{ID: "123", Payload: map[string]interface{}{"key": "val"}, Vector: []float32{0.1, 0.2}}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("UpsertPoints Error", func(t *testing.T) {
		err := client.UpsertPoints(context.Background(), "test_col", qdrant.UpsertPointsRequest{
			Points: []qdrant.Point{{ID: "123", Payload: map[string]interface{}{"cause_500": true}, Vector: []float32{0.1, 0.2}}},
		})
		if err == nil {
			t.Fatalf("expected error from 500 response")
		}
	})

	t.Run("SearchPoints Success", func(t *testing.T) {
		resp, err := client.SearchPoints(context.Background(), "test_col", qdrant.SearchRequest{Limit: 10})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(resp.Result) != 1 || resp.Result[0].ID != "123" {
			t.Errorf("unexpected search results: %v", resp)
		}
	})

	t.Run("SearchPoints Error", func(t *testing.T) {
		_, err := client.SearchPoints(context.Background(), "test_col", qdrant.SearchRequest{Limit: 999})
		if err == nil {
			t.Fatalf("expected error from 500 response")
		}
	})

	t.Run("CountPoints", func(t *testing.T) {
		n, err := client.CountPoints(context.Background(), "test_col")
		if err != nil || n != 42 {
			t.Fatalf("expected 42 points, got %d, %v", n, err)
		}
	})

	t.Run("Context Cancelation Error", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		if err := client.CreateCollection(ctx, qdrant.CreateCollectionRequest{Name: "test"}); err == nil {
			t.Errorf("expected error on canceled context")
		}
		if _, err := client.SearchPoints(ctx, "test", qdrant.SearchRequest{}); err == nil {
			t.Errorf("expected error on canceled context")
		}
	})
}
