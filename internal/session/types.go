package session

import (
	"time"

	"smart-travel-planner/internal/model"
)

// DefaultHistoryLimit caps conversation history per user.
const DefaultHistoryLimit = 10

// Record is one user's session.
type Record struct {
	ID                  string              `json:"id"`
	Profile             model.UserProfile   `json:"profile"`
	ConversationHistory []ConversationEntry `json:"conversationHistory"`
	CreatedAt           time.Time           `json:"createdAt"`
	LastActiveAt        time.Time           `json:"lastActiveAt"`
}

// ConversationEntry summarizes one planning exchange.
type ConversationEntry struct {
	Request         string    `json:"request"`
	ResponseSummary string    `json:"responseSummary"`
	Destination     string    `json:"destination,omitempty"`
	Timestamp       time.Time `json:"timestamp"`
}

// NewRecord returns an empty session for userID.
func NewRecord(userID string, now time.Time) Record {
	return Record{
		ID:                  userID,
		Profile:             model.NewUserProfile(),
		ConversationHistory: []ConversationEntry{},
		CreatedAt:           now,
		LastActiveAt:        now,
	}
}

// LastDestination returns the destination of the most recent entry that has one.
func (r Record) LastDestination() (string, bool) {
	for i := len(r.ConversationHistory) - 1; i >= 0; i-- {
		if d := r.ConversationHistory[i].Destination; d != "" {
			return d, true
		}
	}
	return "", false
}

// Clone returns a deep copy so callers never share slices with the store.
func (r Record) Clone() Record {
	out := r
	out.Profile = r.Profile.Clone()
	out.ConversationHistory = append([]ConversationEntry{}, r.ConversationHistory...)
	return out
}

// AppendHistory appends entry and keeps only the newest limit entries.
func AppendHistory(history []ConversationEntry, entry ConversationEntry, limit int) []ConversationEntry {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	history = append(history, entry)
	if over := len(history) - limit; over > 0 {
		history = append([]ConversationEntry{}, history[over:]...)
	}
	return history
}
