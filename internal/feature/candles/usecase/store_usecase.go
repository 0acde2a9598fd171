// Package usecase はローソク足データ取得のビジネスロジックを実装します。
//
// A ticker's history may live in several physical shard files; this layer
// merges them so callers see exactly one logical, time-ordered history.
package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"stock_insights/internal/feature/candles/domain"
	"stock_insights/internal/feature/candles/domain/entity"
)

// DateFormat is the wire format for calendar dates.
const DateFormat = "2006-01-02"

// ShardRepository abstracts the partitioned candle storage. Results are
// returned per shard so the merge/ordering semantics live here, where they
// can be tested without a database.
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type ShardRepository interface {
	// HasShards reports whether the ticker has any backing shard.
	HasShards(ticker string) bool
	// DatesByShard returns the distinct calendar dates of each shard.
	DatesByShard(ctx context.Context, ticker string) ([][]string, error)
	// CandlesByShard returns each shard's candles for one calendar date.
	// Malformed rows are already dropped by the adapter.
	CandlesByShard(ctx context.Context, ticker, date string) ([][]entity.Candle, error)
}

// TickerChecker validates ticker parameters against the allow-list.
type TickerChecker interface {
	IsKnown(ticker string) bool
}

// StoreUsecase serves a ticker's candle history from its shard set.
type StoreUsecase struct {
	repo     ShardRepository
	registry TickerChecker
}

// NewStoreUsecase creates a StoreUsecase over the given shards and registry.
func NewStoreUsecase(repo ShardRepository, registry TickerChecker) *StoreUsecase {
	return &StoreUsecase{repo: repo, registry: registry}
}

// GetDates returns every calendar date for which at least one candle
// exists, merged across all shards, de-duplicated, ascending.
func (u *StoreUsecase) GetDates(ctx context.Context, ticker string) ([]string, error) {
	ticker = strings.ToUpper(ticker)
	if !u.registry.IsKnown(ticker) {
		return nil, domain.ErrUnknownTicker
	}
	if !u.repo.HasShards(ticker) {
		return nil, domain.ErrNoBackingData
	}

	byShard, err := u.repo.DatesByShard(ctx, ticker)
	if err != nil {
		return nil, fmt.Errorf("list dates for %s: %w", ticker, err)
	}

	seen := make(map[string]struct{})
	var dates []string
	for _, shard := range byShard {
		for _, d := range shard {
			if _, dup := seen[d]; dup {
				continue
			}
			seen[d] = struct{}{}
			dates = append(dates, d)
		}
	}
	if len(dates) == 0 {
		return nil, domain.ErrNoDataForDate
	}

	sort.Strings(dates)
	return dates, nil
}

// GetCandles returns one trading day's candles, merged across all shards,
// strictly ascending by timestamp with duplicate timestamps removed (first
// occurrence wins). Shard date ranges are expected to be disjoint, but the
// dedup guards against overlapping files.
func (u *StoreUsecase) GetCandles(ctx context.Context, ticker, date string) ([]entity.Candle, error) {
	ticker = strings.ToUpper(ticker)
	if !u.registry.IsKnown(ticker) {
		return nil, domain.ErrUnknownTicker
	}
	if _, err := time.Parse(DateFormat, date); err != nil {
		return nil, domain.ErrInvalidDate
	}
	if !u.repo.HasShards(ticker) {
		return nil, domain.ErrNoBackingData
	}

	byShard, err := u.repo.CandlesByShard(ctx, ticker, date)
	if err != nil {
		return nil, fmt.Errorf("load candles for %s %s: %w", ticker, date, err)
	}

	var merged []entity.Candle
	for _, shard := range byShard {
		merged = append(merged, shard...)
	}

	// Stable sort keeps the earlier shard's candle in front of a duplicate
	// timestamp from a later shard; the dedup below then keeps it.
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Time.Before(merged[j].Time)
	})

	out := merged[:0]
	var last time.Time
	for i, c := range merged {
		if i > 0 && c.Time.Equal(last) {
			continue
		}
		out = append(out, c)
		last = c.Time
	}
	if len(out) == 0 {
		return nil, domain.ErrNoDataForDate
	}

	return out, nil
}
