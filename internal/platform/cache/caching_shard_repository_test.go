package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stock_insights/internal/feature/candles/domain/entity"
)

// mockShardRepository counts calls so tests can observe cache hits.
type mockShardRepository struct {
	datesCalls   int
	candlesCalls int
	dates        [][]string
	candles      [][]entity.Candle
}

func (m *mockShardRepository) HasShards(string) bool { return true }

func (m *mockShardRepository) DatesByShard(context.Context, string) ([][]string, error) {
	m.datesCalls++
	return m.dates, nil
}

func (m *mockShardRepository) CandlesByShard(context.Context, string, string) ([][]entity.Candle, error) {
	m.candlesCalls++
	return m.candles, nil
}

func setupTestRedis(t *testing.T) *redis.Client {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err, "failed to start miniredis")

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		_ = client.Close()
		mr.Close()
	})
	return client
}

func TestCachingShardRepository_DatesByShard(t *testing.T) {
	inner := &mockShardRepository{dates: [][]string{{"2023-01-02", "2023-01-03"}}}
	repo := NewCachingShardRepository(setupTestRedis(t), time.Minute, inner, "candles")
	ctx := context.Background()

	first, err := repo.DatesByShard(ctx, "AAPL")
	require.NoError(t, err)
	second, err := repo.DatesByShard(ctx, "AAPL")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, inner.datesCalls, "second read served from cache")
}

func TestCachingShardRepository_CandlesByShard(t *testing.T) {
	inner := &mockShardRepository{candles: [][]entity.Candle{{
		{Ticker: "AAPL", Time: time.Date(2023, 1, 2, 9, 30, 0, 0, time.UTC), Open: 130, High: 131, Low: 129.5, Close: 130.5, Volume: 1000},
	}}}
	repo := NewCachingShardRepository(setupTestRedis(t), time.Minute, inner, "candles")
	ctx := context.Background()

	first, err := repo.CandlesByShard(ctx, "AAPL", "2023-01-02")
	require.NoError(t, err)
	second, err := repo.CandlesByShard(ctx, "AAPL", "2023-01-02")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, inner.candlesCalls)
}

func TestCachingShardRepository_NilRedisBypasses(t *testing.T) {
	inner := &mockShardRepository{dates: [][]string{{"2023-01-02"}}}
	repo := NewCachingShardRepository(nil, time.Minute, inner, "candles")
	ctx := context.Background()

	_, err := repo.DatesByShard(ctx, "AAPL")
	require.NoError(t, err)
	_, err = repo.DatesByShard(ctx, "AAPL")
	require.NoError(t, err)

	assert.Equal(t, 2, inner.datesCalls, "no cache without redis")
}

func TestCachingShardRepository_CorruptedEntryRecovered(t *testing.T) {
	client := setupTestRedis(t)
	inner := &mockShardRepository{dates: [][]string{{"2023-01-02"}}}
	repo := NewCachingShardRepository(client, time.Minute, inner, "candles")
	ctx := context.Background()

	require.NoError(t, client.Set(ctx, "candles:dates:AAPL", "not json", time.Minute).Err())

	dates, err := repo.DatesByShard(ctx, "AAPL")
	require.NoError(t, err)
	assert.Equal(t, inner.dates, dates)
	assert.Equal(t, 1, inner.datesCalls, "corrupted entry falls back to the shards")
}
