// Package adapters はcandlesフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"stock_insights/internal/feature/candles/domain/entity"
	"stock_insights/internal/feature/candles/usecase"
	platformdb "stock_insights/internal/platform/db"
)

// timestampLayout is how the shard files store candle timestamps.
const timestampLayout = "2006-01-02 15:04:05"

// candleSQLite implements usecase.ShardRepository over the sqlite shard set.
type candleSQLite struct {
	shards platformdb.ShardSet
}

var _ usecase.ShardRepository = (*candleSQLite)(nil)

// NewCandleRepository creates a repository over the opened shard handles.
func NewCandleRepository(shards platformdb.ShardSet) *candleSQLite {
	return &candleSQLite{shards: shards}
}

// candleRow mirrors one row of the shard's candles table. Pointer fields
// keep NULL columns detectable so malformed rows can be dropped row-by-row.
type candleRow struct {
	Ticker    *string
	Timestamp *string
	Open      *float64
	High      *float64
	Low       *float64
	Close     *float64
	Volume    *int64
}

// HasShards reports whether the ticker has any backing shard file.
func (r *candleSQLite) HasShards(ticker string) bool {
	return len(r.shards[ticker]) > 0
}

// DatesByShard returns each shard's distinct calendar dates for the ticker.
func (r *candleSQLite) DatesByShard(ctx context.Context, ticker string) ([][]string, error) {
	handles := r.shards[ticker]
	out := make([][]string, 0, len(handles))
	for i, handle := range handles {
		var dates []string
		err := handle.WithContext(ctx).
			Table("candles").
			Where("ticker = ?", ticker).
			Distinct().
			Pluck("DATE(timestamp)", &dates).Error
		if err != nil {
			return nil, fmt.Errorf("shard %d: %w", i, err)
		}
		out = append(out, dates)
	}
	return out, nil
}

// CandlesByShard returns each shard's candles for one calendar date. Rows
// missing any of timestamp/open/high/low/close/volume are dropped with a
// warning rather than failing the request.
func (r *candleSQLite) CandlesByShard(ctx context.Context, ticker, date string) ([][]entity.Candle, error) {
	handles := r.shards[ticker]
	out := make([][]entity.Candle, 0, len(handles))
	for i, handle := range handles {
		var rows []candleRow
		err := handle.WithContext(ctx).
			Table("candles").
			Select("ticker", "timestamp", "open", "high", "low", "close", "volume").
			Where("ticker = ? AND DATE(timestamp) = ?", ticker, date).
			Order("timestamp ASC").
			Find(&rows).Error
		if err != nil {
			return nil, fmt.Errorf("shard %d: %w", i, err)
		}

		candles := make([]entity.Candle, 0, len(rows))
		dropped := 0
		for _, row := range rows {
			c, ok := row.toEntity()
			if !ok {
				dropped++
				continue
			}
			candles = append(candles, c)
		}
		if dropped > 0 {
			slog.Warn("dropped malformed candle rows",
				"ticker", ticker, "date", date, "shard", i, "dropped", dropped)
		}
		out = append(out, candles)
	}
	return out, nil
}

// toEntity converts a raw row, reporting false for malformed rows.
func (row candleRow) toEntity() (entity.Candle, bool) {
	if row.Ticker == nil || row.Timestamp == nil ||
		row.Open == nil || row.High == nil || row.Low == nil || row.Close == nil ||
		row.Volume == nil {
		return entity.Candle{}, false
	}
	ts, err := time.Parse(timestampLayout, *row.Timestamp)
	if err != nil {
		return entity.Candle{}, false
	}
	return entity.Candle{
		Ticker: *row.Ticker,
		Time:   ts,
		Open:   *row.Open,
		High:   *row.High,
		Low:    *row.Low,
		Close:  *row.Close,
		Volume: *row.Volume,
	}, true
}
