package knowledge

import (
	"context"

	"smart-travel-planner/pkg/outcome"
)

// UseCase retrieves passages relevant to a query. Retrieve never fails: the
// result always carries a non-nil, possibly empty, slice.
type UseCase interface {
	Retrieve(ctx context.Context, query string, k int) outcome.Result[[]string]
	Documents() []Document
}

// Index is a semantic similarity index over the corpus.
type Index interface {
	// Index (re)builds the index from docs.
	Index(ctx context.Context, docs []Document) error
	// Search returns up to k documents ordered by similarity to query.
	Search(ctx context.Context, query string, k int) ([]Document, error)
}

// Persistent is implemented by indexes that outlive the process. Indexed
// reports whether the stored index already holds at least n documents.
type Persistent interface {
	Indexed(ctx context.Context, n int) (bool, error)
}
