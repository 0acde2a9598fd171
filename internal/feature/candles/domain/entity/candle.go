// Package entity defines the domain models for the candles feature.
package entity

import "time"

// Candle represents OHLCV (Open, High, Low, Close, Volume) candlestick data
// for one ticker at minute resolution. Candles are read-only: they are
// sourced from the shard files and never written by this service.
type Candle struct {
	Ticker string    // Owning ticker symbol (e.g., "QQQ")
	Time   time.Time // Candle timestamp, minute resolution
	Open   float64   // Opening price
	High   float64   // Highest price during this minute
	Low    float64   // Lowest price during this minute
	Close  float64   // Closing price
	Volume int64     // Trading volume
}
