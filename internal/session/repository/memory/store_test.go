package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smart-travel-planner/internal/model"
	"smart-travel-planner/internal/session"
	"smart-travel-planner/pkg/log"
)

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(time.Second)
	return c.t
}

func newTestStore() session.Store {
	clock := &fakeClock{t: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	return New(10, log.NewNop(), WithClock(clock.Now))
}

func TestGetOrCreate(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()

	first, err := s.GetOrCreate(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", first.ID)
	assert.Empty(t, first.ConversationHistory)
	assert.Nil(t, first.Profile.PreferredBudget)

	second, err := s.GetOrCreate(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, first.CreatedAt, second.CreatedAt)
	assert.True(t, second.LastActiveAt.After(first.LastActiveAt), "lastActiveAt should be refreshed")

	_, err = s.GetOrCreate(ctx, "")
	assert.ErrorIs(t, err, session.ErrEmptyUserID)
}

func TestGet(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()

	_, err := s.Get(ctx, "ghost")
	assert.ErrorIs(t, err, session.ErrSessionNotFound)

	_, err = s.GetOrCreate(ctx, "bob")
	require.NoError(t, err)
	rec, err := s.Get(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, "bob", rec.ID)
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()

	_, err := s.UpdateProfile(ctx, "carol", model.ProfilePatch{PreferredBudget: model.StringPtr("$2000")})
	require.NoError(t, err)

	profile, err := s.UpdateProfile(ctx, "carol", model.ProfilePatch{TravelStyle: model.StylePtr(model.StyleAdventure)})
	require.NoError(t, err)
	require.NotNil(t, profile.PreferredBudget)
	assert.Equal(t, "$2000", *profile.PreferredBudget)
	assert.Equal(t, model.StyleAdventure, *profile.TravelStyle)
}

func TestRecordConversation_EvictsOldestFirst(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()

	for i := 0; i < 11; i++ {
		require.NoError(t, s.RecordConversation(ctx, "dave", session.ConversationEntry{Request: fmt.Sprintf("req-%d", i)}))
	}

	rec, err := s.Get(ctx, "dave")
	require.NoError(t, err)
	require.Len(t, rec.ConversationHistory, 10)
	for i, e := range rec.ConversationHistory {
		assert.Equal(t, fmt.Sprintf("req-%d", i+1), e.Request)
		assert.False(t, e.Timestamp.IsZero())
	}
}

func TestReturnedRecordIsACopy(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()
	require.NoError(t, s.RecordConversation(ctx, "erin", session.ConversationEntry{Request: "a"}))

	rec, _ := s.Get(ctx, "erin")
	rec.ConversationHistory[0].Request = "mutated"

	again, _ := s.Get(ctx, "erin")
	assert.Equal(t, "a", again.ConversationHistory[0].Request)
}

func TestConcurrentPatchesForSameUser(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.UpdateProfile(ctx, "frank", model.ProfilePatch{PreferredBudget: model.StringPtr("$900")})
		}()
		go func(i int) {
			defer wg.Done()
			s.UpdateProfile(ctx, "frank", model.ProfilePatch{FavoriteDestinations: []string{fmt.Sprintf("City%02d", i)}})
		}(i)
	}
	wg.Wait()

	rec, err := s.Get(ctx, "frank")
	require.NoError(t, err)
	require.NotNil(t, rec.Profile.PreferredBudget)
	assert.Equal(t, "$900", *rec.Profile.PreferredBudget)
	assert.Len(t, rec.Profile.FavoriteDestinations, 50, "no favorite destination update may be lost")
}

func TestConcurrentUsersAreIsolated(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.UpdateProfile(ctx, "user-a", model.ProfilePatch{PreferredBudget: model.StringPtr("$100")})
			s.RecordConversation(ctx, "user-a", session.ConversationEntry{Request: "a"})
		}()
		go func() {
			defer wg.Done()
			s.UpdateProfile(ctx, "user-b", model.ProfilePatch{TravelStyle: model.StylePtr(model.StyleLuxury)})
			s.RecordConversation(ctx, "user-b", session.ConversationEntry{Request: "b"})
		}()
	}
	wg.Wait()

	a, _ := s.Get(ctx, "user-a")
	b, _ := s.Get(ctx, "user-b")
	assert.Nil(t, a.Profile.TravelStyle)
	assert.Nil(t, b.Profile.PreferredBudget)
	for _, e := range a.ConversationHistory {
		assert.Equal(t, "a", e.Request)
	}
	for _, e := range b.ConversationHistory {
		assert.Equal(t, "b", e.Request)
	}
}
