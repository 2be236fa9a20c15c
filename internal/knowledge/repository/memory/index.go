package memory

import (
	"context"
	"fmt"
	"math"
	"sort"

	"golang.org/x/sync/errgroup"

	"smart-travel-planner/internal/knowledge"
)

// Index embeds every document in parallel batches and swaps the result in
// atomically. A failed build leaves the previous index untouched.
func (idx *implIndex) Index(ctx context.Context, docs []knowledge.Document) error {
	if len(docs) == 0 {
		return knowledge.ErrEmptyCorpus
	}

	vectors := make([][]float32, len(docs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(idx.concurrency)

	for start := 0; start < len(docs); start += idx.batchSize {
		end := min(start+idx.batchSize, len(docs))
		g.Go(func() error {
			texts := make([]string, 0, end-start)
			for _, d := range docs[start:end] {
				texts = append(texts, d.Destination+": "+d.Text)
			}
			embs, err := idx.embedder.Embed(gctx, texts)
			if err != nil {
				return fmt.Errorf("embed batch %d-%d: %w", start, end, err)
			}
			if len(embs) != len(texts) {
				return fmt.Errorf("embed batch %d-%d: got %d vectors", start, end, len(embs))
			}
			for i, v := range embs {
				vectors[start+i] = normalize(v)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	idx.mu.Lock()
	idx.docs = append([]knowledge.Document(nil), docs...)
	idx.vectors = vectors
	idx.mu.Unlock()

	idx.l.Infof(ctx, "internal.knowledge.repository.memory.Index: indexed %d documents", len(docs))
	return nil
}

// Search ranks documents by cosine similarity. Ties keep corpus order.
func (idx *implIndex) Search(ctx context.Context, query string, k int) ([]knowledge.Document, error) {
	idx.mu.RLock()
	docs, vectors := idx.docs, idx.vectors
	idx.mu.RUnlock()
	if len(docs) == 0 {
		return nil, knowledge.ErrIndexNotReady
	}

	res, err := idx.cb.Execute(func() (interface{}, error) {
		return idx.embedder.EmbedQuery(ctx, query)
	})
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}
	q := normalize(res.([]float32))

	type scored struct {
		pos   int
		score float64
	}
	ranked := make([]scored, len(docs))
	for i, v := range vectors {
		ranked[i] = scored{pos: i, score: dot(q, v)}
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].score > ranked[j].score })

	k = min(k, len(ranked))
	out := make([]knowledge.Document, 0, k)
	for _, r := range ranked[:k] {
		out = append(out, docs[r.pos])
	}
	return out, nil
}

func normalize(v []float32) []float32 {
	var sum float64
	for _, x := range v {
		sum += float64(x) * float64(x)
	}
	out := make([]float32, len(v))
	if sum == 0 {
		return out
	}
	n := math.Sqrt(sum)
	for i, x := range v {
		out[i] = float32(float64(x) / n)
	}
	return out
}

func dot(a, b []float32) float64 {
	var s float64
	for i := range min(len(a), len(b)) {
		s += float64(a[i]) * float64(b[i])
	}
	return s
}
