package app_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smart-travel-planner/config"
	"smart-travel-planner/internal/app"
	"smart-travel-planner/internal/knowledge"
	"smart-travel-planner/internal/planner"
	"smart-travel-planner/pkg/log"
)

func baseConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Session.HistoryLimit = 10
	cfg.Knowledge.TopK = 2
	cfg.Knowledge.QueryTimeout = time.Second
	cfg.Tools.Timeout = time.Second
	cfg.Planner.DefaultDestination = "Paris"
	cfg.Planner.Timezone = "UTC"
	cfg.Planner.GenerationTimeout = time.Second
	return cfg
}

func TestBuild_AllFallbacks(t *testing.T) {
	ctx := context.Background()
	a, err := app.Build(ctx, baseConfig(), log.NewNop(), app.Options{})
	require.NoError(t, err)
	defer a.Close()

	assert.Nil(t, a.Index)
	assert.Nil(t, a.Ready)
	assert.Len(t, a.Tools.List(), 3)
	assert.Error(t, a.IndexCorpus(ctx))

	resp, err := a.Planner.PlanTravel(ctx, planner.PlanTravelInput{UserID: "u1", Request: "3 days in Rome for museums"})
	require.NoError(t, err)
	assert.Equal(t, "Rome", resp.Request.Destination)
	assert.Len(t, resp.Itinerary.DailyItinerary, 3)
}

func TestBuild_RedisSessions(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)

	cfg := baseConfig()
	cfg.Redis.URL = "redis://" + mr.Addr()
	a, err := app.Build(ctx, cfg, log.NewNop(), app.Options{})
	require.NoError(t, err)
	defer a.Close()

	require.NotNil(t, a.Ready)
	assert.NoError(t, a.Ready(ctx))

	_, err = a.Planner.PlanTravel(ctx, planner.PlanTravelInput{UserID: "u1", Request: "Bali on a budget"})
	require.NoError(t, err)
	assert.NotEmpty(t, mr.Keys())
}

func TestBuild_UnreachableRedisFallsBackToMemory(t *testing.T) {
	cfg := baseConfig()
	cfg.Redis.URL = "redis://127.0.0.1:1"
	a, err := app.Build(context.Background(), cfg, log.NewNop(), app.Options{})
	require.NoError(t, err)
	assert.Nil(t, a.Ready)
}

func TestBuild_BadTimezone(t *testing.T) {
	cfg := baseConfig()
	cfg.Planner.Timezone = "Mars/Olympus"
	_, err := app.Build(context.Background(), cfg, log.NewNop(), app.Options{})
	assert.Error(t, err)
}

type stubIndex struct {
	stored  int
	indexed int
}

func (s *stubIndex) Index(ctx context.Context, docs []knowledge.Document) error {
	s.indexed++
	s.stored = len(docs)
	return nil
}

func (s *stubIndex) Search(ctx context.Context, query string, k int) ([]knowledge.Document, error) {
	return nil, nil
}

func (s *stubIndex) Indexed(ctx context.Context, n int) (bool, error) {
	return s.stored >= n, nil
}

func TestWarmIndex_SkipsPopulatedIndex(t *testing.T) {
	ctx := context.Background()
	a, err := app.Build(ctx, baseConfig(), log.NewNop(), app.Options{})
	require.NoError(t, err)
	defer a.Close()

	idx := &stubIndex{}
	a.Index = idx

	ran, err := a.WarmIndex(ctx)
	require.NoError(t, err)
	assert.True(t, ran)

	ran, err = a.WarmIndex(ctx)
	require.NoError(t, err)
	assert.False(t, ran)
	assert.Equal(t, 1, idx.indexed)
}
