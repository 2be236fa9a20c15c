package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	goredis "github.com/go-redis/redis/v8"

	"smart-travel-planner/internal/model"
	"smart-travel-planner/internal/session"
)

var errTooMuchContention = errors.New("session update retries exhausted")

func (s *implStore) GetOrCreate(ctx context.Context, userID string) (session.Record, error) {
	if userID == "" {
		return session.Record{}, session.ErrEmptyUserID
	}
	return s.update(ctx, userID, func(rec *session.Record, created bool) {
		if !created {
			rec.LastActiveAt = s.now()
		}
	})
}

func (s *implStore) Get(ctx context.Context, userID string) (session.Record, error) {
	raw, err := s.client.Get(ctx, key(userID)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return session.Record{}, session.ErrSessionNotFound
	}
	if err != nil {
		s.l.Errorf(ctx, "session/repository/redis.Get: %v", err)
		return session.Record{}, err
	}

	var rec session.Record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return session.Record{}, fmt.Errorf("failed to decode session: %w", err)
	}
	return rec, nil
}

func (s *implStore) UpdateProfile(ctx context.Context, userID string, patch model.ProfilePatch) (model.UserProfile, error) {
	if userID == "" {
		return model.UserProfile{}, session.ErrEmptyUserID
	}
	rec, err := s.update(ctx, userID, func(rec *session.Record, _ bool) {
		rec.Profile = rec.Profile.Merge(patch)
		rec.LastActiveAt = s.now()
	})
	if err != nil {
		return model.UserProfile{}, err
	}
	return rec.Profile, nil
}

func (s *implStore) RecordConversation(ctx context.Context, userID string, entry session.ConversationEntry) error {
	if userID == "" {
		return session.ErrEmptyUserID
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = s.now()
	}
	_, err := s.update(ctx, userID, func(rec *session.Record, _ bool) {
		rec.ConversationHistory = session.AppendHistory(rec.ConversationHistory, entry, s.historyLimit)
		rec.LastActiveAt = s.now()
	})
	return err
}

// update runs fn as an optimistic read-modify-write on the user's key. A
// concurrent writer aborts the EXEC and the whole cycle is retried.
func (s *implStore) update(ctx context.Context, userID string, fn func(rec *session.Record, created bool)) (session.Record, error) {
	k := key(userID)
	var out session.Record

	txf := func(tx *goredis.Tx) error {
		rec, created, err := s.load(ctx, tx, userID)
		if err != nil {
			return err
		}
		fn(&rec, created)

		payload, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("failed to encode session: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
			pipe.Set(ctx, k, payload, s.ttl)
			return nil
		})
		if err == nil {
			out = rec
		}
		return err
	}

	for i := 0; i < maxTxRetries; i++ {
		err := s.client.Watch(ctx, txf, k)
		if err == nil {
			return out, nil
		}
		if errors.Is(err, goredis.TxFailedErr) {
			continue
		}
		s.l.Errorf(ctx, "session/repository/redis.update %s: %v", userID, err)
		return session.Record{}, err
	}
	return session.Record{}, errTooMuchContention
}

func (s *implStore) load(ctx context.Context, tx *goredis.Tx, userID string) (session.Record, bool, error) {
	raw, err := tx.Get(ctx, key(userID)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return session.NewRecord(userID, s.now()), true, nil
	}
	if err != nil {
		return session.Record{}, false, err
	}

	var rec session.Record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return session.Record{}, false, fmt.Errorf("failed to decode session: %w", err)
	}
	if rec.Profile.FavoriteDestinations == nil {
		rec.Profile.FavoriteDestinations = []string{}
	}
	if rec.Profile.DietaryRestrictions == nil {
		rec.Profile.DietaryRestrictions = []string{}
	}
	return rec, false, nil
}
