// Package db opens the sqlite shard files that back the candle store.
package db

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ShardSet maps a canonical ticker symbol to its opened shard handles,
// in shard-file-name order. A ticker with no backing file has no entry.
type ShardSet map[string][]*gorm.DB

// OpenShards scans dir for the shard files of each allow-listed ticker and
// opens them read-only. A ticker's history may be split across several
// files (stock_data_qqq.db, stock_data_qqq_2021.db, ...); every match is
// opened so the store can merge them into one logical history.
func OpenShards(dir string, tickers []string) (ShardSet, error) {
	shards := make(ShardSet, len(tickers))
	for _, ticker := range tickers {
		// Consumers look shards up by the canonical upper-case symbol,
		// regardless of how the allow-list spells it.
		symbol := strings.ToUpper(strings.TrimSpace(ticker))
		pattern := filepath.Join(dir, fmt.Sprintf("stock_data_%s*.db", strings.ToLower(symbol)))
		paths, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("glob shards for %s: %w", ticker, err)
		}
		if len(paths) == 0 {
			slog.Warn("no shard files found for ticker", "ticker", symbol, "dir", dir)
			continue
		}
		for _, path := range paths {
			handle, err := gorm.Open(sqlite.Open(path+"?mode=ro"), &gorm.Config{
				Logger: logger.Default.LogMode(logger.Silent),
			})
			if err != nil {
				return nil, fmt.Errorf("open shard %s: %w", path, err)
			}
			shards[symbol] = append(shards[symbol], handle)
		}
		slog.Debug("opened shards", "ticker", symbol, "count", len(shards[symbol]))
	}
	return shards, nil
}
