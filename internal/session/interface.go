package session

import (
	"context"

	"smart-travel-planner/internal/model"
)

// Store owns every per-user session. Each method is atomic for its user:
// concurrent calls for the same user are serialized, calls for different
// users never block each other.
//
//go:generate mockery --name Store
type Store interface {
	// GetOrCreate returns the user's session, creating an empty one on first
	// contact. LastActiveAt is refreshed either way.
	GetOrCreate(ctx context.Context, userID string) (Record, error)

	// Get returns the session without touching it. ErrSessionNotFound when absent.
	Get(ctx context.Context, userID string) (Record, error)

	// UpdateProfile merges patch into the stored profile and returns the result.
	UpdateProfile(ctx context.Context, userID string, patch model.ProfilePatch) (model.UserProfile, error)

	// RecordConversation appends entry and evicts the oldest entries beyond the cap.
	RecordConversation(ctx context.Context, userID string, entry ConversationEntry) error
}
