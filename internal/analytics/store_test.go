package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestHashIP(t *testing.T) {
	s := openTestStore(t)
	a := s.HashIP("203.0.113.7")
	assert.Len(t, a, 16)
	assert.Equal(t, a, s.HashIP("203.0.113.7"))
	assert.NotEqual(t, a, s.HashIP("203.0.113.8"))
	assert.NotContains(t, a, "203")

	other := openTestStore(t)
	assert.NotEqual(t, a, other.HashIP("203.0.113.7"), "salt differs per store")
}

func TestRecordAndStats(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	now := time.Date(2026, 10, 18, 15, 0, 0, 0, time.UTC)
	at := func(ts time.Time) { s.now = func() time.Time { return ts } }

	at(now.AddDate(0, 0, -30))
	require.NoError(t, s.Record(ctx, "10.0.0.1", Visit{Path: "/", Section: "home", Theme: "light"}))
	at(now.AddDate(0, 0, -2))
	require.NoError(t, s.Record(ctx, "10.0.0.2", Visit{Path: "/", Section: "projects", Theme: "dark"}))
	at(now.Add(-time.Hour))
	require.NoError(t, s.Record(ctx, "10.0.0.1", Visit{Path: "/", Section: "projects", Theme: "light", UserAgent: "test"}))
	at(now)

	stats, err := s.Stats(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, stats.TotalVisits)
	assert.EqualValues(t, 2, stats.UniqueVisitors)
	assert.EqualValues(t, 1, stats.VisitsToday)
	assert.EqualValues(t, 2, stats.VisitsThisWeek)
	assert.Equal(t, []SectionCount{{"projects", 2}, {"home", 1}}, stats.SectionViews)

	require.Len(t, stats.RecentVisits, 3)
	assert.Equal(t, "test", stats.RecentVisits[0].UserAgent)
	assert.Equal(t, s.HashIP("10.0.0.1"), stats.RecentVisits[0].HashedIP)
	assert.Equal(t, now.Add(-time.Hour).Unix(), stats.RecentVisits[0].Timestamp.Unix())
}

func TestCleanup(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	now := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

	s.now = func() time.Time { return now.AddDate(-2, 0, 0) }
	require.NoError(t, s.Record(ctx, "a", Visit{Section: "home"}))
	s.now = func() time.Time { return now }
	require.NoError(t, s.Record(ctx, "b", Visit{Section: "home"}))

	n, err := s.Cleanup(ctx, 365*24*time.Hour)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	stats, err := s.Stats(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, stats.TotalVisits)
}

func TestStatsEmpty(t *testing.T) {
	stats, err := openTestStore(t).Stats(context.Background())
	require.NoError(t, err)
	assert.Zero(t, stats.TotalVisits)
	assert.Empty(t, stats.SectionViews)
	assert.Empty(t, stats.RecentVisits)
}
