// Package adapters はtickersフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"fmt"

	"stock_insights/internal/feature/tickers/usecase"
	platformdb "stock_insights/internal/platform/db"
)

// shardProber implements usecase.ShardProber against the sqlite shard set.
type shardProber struct {
	shards platformdb.ShardSet
}

var _ usecase.ShardProber = (*shardProber)(nil)

// NewShardProber creates a prober over the opened shard handles.
func NewShardProber(shards platformdb.ShardSet) *shardProber {
	return &shardProber{shards: shards}
}

// Probe runs a lightweight existence check: a ticker is usable when at
// least one of its shards exposes a distinct-ticker row matching the
// expected symbol.
func (p *shardProber) Probe(ctx context.Context, ticker string) (bool, error) {
	handles, ok := p.shards[ticker]
	if !ok {
		return false, nil
	}

	var firstErr error
	readable := 0
	for i, handle := range handles {
		var symbols []string
		err := handle.WithContext(ctx).
			Table("candles").
			Distinct().
			Pluck("ticker", &symbols).Error
		if err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("probe shard %d of %s: %w", i, ticker, err)
			}
			continue
		}
		readable++
		for _, s := range symbols {
			if s == ticker {
				return true, nil
			}
		}
	}

	// Only report an error when no shard could be read at all.
	if readable == 0 {
		return false, firstErr
	}
	return false, nil
}
