// Package usecase implements the earnings catalog lookups.
package usecase

import (
	"context"
	"sort"
	"strings"

	"stock_insights/internal/feature/earnings/domain"
	"stock_insights/internal/feature/earnings/domain/entity"
)

// EarningsDataset abstracts the loaded earnings table.
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type EarningsDataset interface {
	Records(ctx context.Context) ([]entity.EarningsRecord, error)
}

// TickerChecker validates ticker parameters against the allow-list.
type TickerChecker interface {
	IsKnown(ticker string) bool
}

// EarningsUsecase serves filtered views over the earnings dataset.
type EarningsUsecase struct {
	dataset  EarningsDataset
	registry TickerChecker
}

// NewEarningsUsecase creates an EarningsUsecase over the given dataset.
func NewEarningsUsecase(dataset EarningsDataset, registry TickerChecker) *EarningsUsecase {
	return &EarningsUsecase{dataset: dataset, registry: registry}
}

// ListEarnings returns every earnings date for the ticker, ascending.
// The ticker parameter is required.
func (u *EarningsUsecase) ListEarnings(ctx context.Context, ticker string) ([]string, error) {
	if ticker == "" {
		return nil, domain.ErrMissingTicker
	}
	ticker = strings.ToUpper(ticker)

	records, err := u.dataset.Records(ctx)
	if err != nil {
		return nil, err
	}

	var dates []string
	for _, rec := range records {
		if rec.Ticker == ticker {
			dates = append(dates, rec.Date)
		}
	}
	sort.Strings(dates)
	return dates, nil
}

// ListEarningsByBin returns the ticker's earnings dates restricted to one
// surprise bin. Both parameters are required; the bin must belong to the
// closed classification set and the ticker to the allow-list.
func (u *EarningsUsecase) ListEarningsByBin(ctx context.Context, ticker, bin string) ([]string, error) {
	if ticker == "" {
		return nil, domain.ErrMissingTicker
	}
	if bin == "" {
		return nil, domain.ErrMissingBin
	}
	if _, ok := entity.ValidBins[bin]; !ok {
		return nil, domain.ErrInvalidBin
	}
	ticker = strings.ToUpper(ticker)
	if !u.registry.IsKnown(ticker) {
		return nil, domain.ErrUnknownTicker
	}

	records, err := u.dataset.Records(ctx)
	if err != nil {
		return nil, err
	}

	var dates []string
	for _, rec := range records {
		if rec.Ticker == ticker && rec.Bin == bin {
			dates = append(dates, rec.Date)
		}
	}
	sort.Strings(dates)
	return dates, nil
}
