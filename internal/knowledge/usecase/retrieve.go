package usecase

import (
	"context"
	"fmt"
	"strings"

	"smart-travel-planner/internal/knowledge"
	"smart-travel-planner/pkg/outcome"
)

// Retrieve tries the semantic index first and falls back to keyword matching
// on absence, error or timeout.
func (uc *implUseCase) Retrieve(ctx context.Context, query string, k int) outcome.Result[[]string] {
	if k <= 0 {
		k = knowledge.DefaultTopK
	}
	if strings.TrimSpace(query) == "" {
		knowledge.RetrievalsTotal.WithLabelValues(string(knowledge.PathEmpty)).Inc()
		return outcome.Fallback([]string{}, nil)
	}

	cause := knowledge.ErrIndexUnavailable
	if uc.index != nil {
		docs, err := uc.semantic(ctx, query, k)
		if err == nil {
			knowledge.RetrievalsTotal.WithLabelValues(string(knowledge.PathSemantic)).Inc()
			return outcome.Valid(knowledge.Texts(docs))
		}
		uc.l.Warnf(ctx, "internal.knowledge.usecase.Retrieve: semantic search failed, using keywords: %v", err)
		cause = err
	}

	docs := knowledge.KeywordSearch(uc.docs, query, k)
	path := knowledge.PathKeyword
	if len(docs) == 0 {
		path = knowledge.PathEmpty
	}
	knowledge.RetrievalsTotal.WithLabelValues(string(path)).Inc()
	return outcome.Fallback(knowledge.Texts(docs), cause)
}

func (uc *implUseCase) semantic(ctx context.Context, query string, k int) ([]knowledge.Document, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.queryTimeout)
	defer cancel()

	docs, err := uc.index.Search(ctx, query, k)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	if len(docs) > k {
		docs = docs[:k]
	}
	return docs, nil
}

// Documents returns a copy of the corpus.
func (uc *implUseCase) Documents() []knowledge.Document {
	out := make([]knowledge.Document, len(uc.docs))
	copy(out, uc.docs)
	return out
}
