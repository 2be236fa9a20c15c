package voyage

import "context"

// IVoyage embeds corpus passages and traveller queries for the knowledge
// index. Safe for concurrent use.
type IVoyage interface {
	// Embed embeds documents (input_type "document").
	Embed(ctx context.Context, texts []string) ([][]float32, error)
	// EmbedQuery embeds a single search query (input_type "query").
	EmbedQuery(ctx context.Context, text string) ([]float32, error)
}
