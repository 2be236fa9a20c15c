package memory

import (
	"context"

	"smart-travel-planner/internal/model"
	"smart-travel-planner/internal/session"
)

func (s *implStore) GetOrCreate(ctx context.Context, userID string) (session.Record, error) {
	if userID == "" {
		return session.Record{}, session.ErrEmptyUserID
	}

	e, created := s.entryFor(userID)
	e.mu.Lock()
	defer e.mu.Unlock()

	if created {
		s.l.Debugf(ctx, "session/repository/memory.GetOrCreate: new session %s", userID)
	} else {
		e.rec.LastActiveAt = s.now()
	}
	return e.rec.Clone(), nil
}

func (s *implStore) Get(ctx context.Context, userID string) (session.Record, error) {
	s.mu.RLock()
	e, ok := s.sessions[userID]
	s.mu.RUnlock()
	if !ok {
		return session.Record{}, session.ErrSessionNotFound
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return e.rec.Clone(), nil
}

func (s *implStore) UpdateProfile(ctx context.Context, userID string, patch model.ProfilePatch) (model.UserProfile, error) {
	if userID == "" {
		return model.UserProfile{}, session.ErrEmptyUserID
	}

	e, _ := s.entryFor(userID)
	e.mu.Lock()
	defer e.mu.Unlock()

	e.rec.Profile = e.rec.Profile.Merge(patch)
	e.rec.LastActiveAt = s.now()
	return e.rec.Profile.Clone(), nil
}

func (s *implStore) RecordConversation(ctx context.Context, userID string, ce session.ConversationEntry) error {
	if userID == "" {
		return session.ErrEmptyUserID
	}

	e, _ := s.entryFor(userID)
	e.mu.Lock()
	defer e.mu.Unlock()

	if ce.Timestamp.IsZero() {
		ce.Timestamp = s.now()
	}
	e.rec.ConversationHistory = session.AppendHistory(e.rec.ConversationHistory, ce, s.historyLimit)
	e.rec.LastActiveAt = s.now()
	return nil
}

// entryFor returns the user's entry, inserting an empty session if absent.
func (s *implStore) entryFor(userID string) (*entry, bool) {
	s.mu.RLock()
	e, ok := s.sessions[userID]
	s.mu.RUnlock()
	if ok {
		return e, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.sessions[userID]; ok {
		return e, false
	}
	e = &entry{rec: session.NewRecord(userID, s.now())}
	s.sessions[userID] = e
	return e, true
}
