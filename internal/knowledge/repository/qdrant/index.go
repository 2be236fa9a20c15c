package qdrant

import (
	"context"
	"fmt"

	"smart-travel-planner/internal/knowledge"
	"smart-travel-planner/pkg/qdrant"
)

// Index makes sure the collection exists and upserts every document. Point IDs
// are deterministic, so re-indexing the same corpus overwrites in place.
func (idx *implIndex) Index(ctx context.Context, docs []knowledge.Document) error {
	if len(docs) == 0 {
		return knowledge.ErrEmptyCorpus
	}
	if err := idx.ensureCollection(ctx); err != nil {
		return err
	}

	for start := 0; start < len(docs); start += upsertBatchSize {
		end := min(start+upsertBatchSize, len(docs))
		batch := docs[start:end]

		texts := make([]string, len(batch))
		for i, d := range batch {
			texts[i] = d.Destination + ": " + d.Text
		}
		vectors, err := idx.embedder.Embed(ctx, texts)
		if err != nil {
			return fmt.Errorf("embed documents: %w", err)
		}
		if len(vectors) != len(batch) {
			return fmt.Errorf("embed documents: got %d vectors for %d documents", len(vectors), len(batch))
		}

		points := make([]qdrant.Point, len(batch))
		for i, d := range batch {
			points[i] = qdrant.Point{
				ID:     PointID(d.ID),
				Vector: vectors[i],
				Payload: map[string]interface{}{
					payloadDocID:       d.ID,
					payloadDestination: d.Destination,
					payloadText:        d.Text,
				},
			}
		}
		if err := idx.client.UpsertPoints(ctx, idx.collection, qdrant.UpsertPointsRequest{Points: points}); err != nil {
			return fmt.Errorf("upsert points: %w", err)
		}
	}

	idx.l.Infof(ctx, "internal.knowledge.repository.qdrant.Index: upserted %d documents into %s", len(docs), idx.collection)
	return nil
}

// Indexed reports whether the collection already holds n or more points. A
// pending recreate always needs a fresh index.
func (idx *implIndex) Indexed(ctx context.Context, n int) (bool, error) {
	if idx.recreate {
		return false, nil
	}
	exists, err := idx.client.CollectionExists(ctx, idx.collection)
	if err != nil || !exists {
		return false, err
	}
	count, err := idx.client.CountPoints(ctx, idx.collection)
	if err != nil {
		return false, fmt.Errorf("count points: %w", err)
	}
	return count >= n, nil
}

func (idx *implIndex) ensureCollection(ctx context.Context) error {
	if idx.recreate {
		if err := idx.client.DeleteCollection(ctx, idx.collection); err != nil {
			return fmt.Errorf("delete collection: %w", err)
		}
		idx.recreate = false
	}

	exists, err := idx.client.CollectionExists(ctx, idx.collection)
	if err != nil {
		return fmt.Errorf("check collection: %w", err)
	}
	if exists {
		return nil
	}

	err = idx.client.CreateCollection(ctx, qdrant.CreateCollectionRequest{
		Name:    idx.collection,
		Vectors: qdrant.VectorConfig{Size: idx.vectorSize, Distance: distanceCosine},
	})
	if err != nil {
		return fmt.Errorf("create collection: %w", err)
	}
	return nil
}

// Search embeds query and returns the k nearest documents.
func (idx *implIndex) Search(ctx context.Context, query string, k int) ([]knowledge.Document, error) {
	vector, err := idx.embedder.EmbedQuery(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	resp, err := idx.client.SearchPoints(ctx, idx.collection, qdrant.SearchRequest{
		Vector:      vector,
		Limit:       k,
		WithPayload: true,
	})
	if err != nil {
		return nil, fmt.Errorf("search points: %w", err)
	}

	out := make([]knowledge.Document, 0, len(resp.Result))
	for _, p := range resp.Result {
		text, _ := p.Payload[payloadText].(string)
		if text == "" {
			continue
		}
		id, _ := p.Payload[payloadDocID].(string)
		dest, _ := p.Payload[payloadDestination].(string)
		out = append(out, knowledge.Document{ID: id, Destination: dest, Text: text})
	}
	return out, nil
}
