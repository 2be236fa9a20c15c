package qdrant

import (
	"github.com/google/uuid"

	"smart-travel-planner/internal/knowledge"
	"smart-travel-planner/pkg/log"
	"smart-travel-planner/pkg/qdrant"
	"smart-travel-planner/pkg/voyage"
)

const (
	distanceCosine    = "Cosine"
	defaultVectorSize = 1024
	upsertBatchSize   = 64

	payloadDocID       = "doc_id"
	payloadDestination = "destination"
	payloadText        = "text"
)

// pointNamespace is the RFC 4122 URL namespace; point IDs are UUIDv5 of the document ID.
var pointNamespace = uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")

type implIndex struct {
	client     *qdrant.Client
	embedder   voyage.IVoyage
	collection string
	vectorSize int
	recreate   bool
	l          log.Logger
}

// Option customizes the Qdrant index.
type Option func(*implIndex)

// WithRecreate drops the collection before the next Index call.
func WithRecreate() Option {
	return func(i *implIndex) { i.recreate = true }
}

// New creates a Qdrant-backed index over collection.
func New(client *qdrant.Client, embedder voyage.IVoyage, collection string, vectorSize int, l log.Logger, opts ...Option) knowledge.Index {
	if vectorSize <= 0 {
		vectorSize = defaultVectorSize
	}
	idx := &implIndex{
		client:     client,
		embedder:   embedder,
		collection: collection,
		vectorSize: vectorSize,
		l:          l,
	}
	for _, opt := range opts {
		opt(idx)
	}
	return idx
}

// PointID returns the Qdrant point ID used for a document.
func PointID(docID string) string {
	return uuid.NewSHA1(pointNamespace, []byte(docID)).String()
}
