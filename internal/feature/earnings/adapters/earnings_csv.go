// Package adapters loads the earnings dataset from its CSV file.
package adapters

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/gocarina/gocsv"

	"stock_insights/internal/feature/earnings/domain"
	"stock_insights/internal/feature/earnings/domain/entity"
	"stock_insights/internal/feature/earnings/usecase"
	"stock_insights/internal/platform/dataset"
)

var requiredColumns = []string{"ticker", "earnings_date", "bin"}

type earningsRow struct {
	Ticker string `csv:"ticker"`
	Date   string `csv:"earnings_date"`
	Bin    string `csv:"bin"`
}

// earningsCSV implements usecase.EarningsDataset over a CSV file, loaded
// once on first use and shared read-only afterwards.
type earningsCSV struct {
	path    string
	once    sync.Once
	records []entity.EarningsRecord
	err     error
}

var _ usecase.EarningsDataset = (*earningsCSV)(nil)

// NewEarningsDataset creates a lazily-loaded dataset for the given file.
func NewEarningsDataset(path string) *earningsCSV {
	return &earningsCSV{path: path}
}

// Records returns the loaded dataset. The slice is shared; callers must
// treat it as read-only.
func (d *earningsCSV) Records(_ context.Context) ([]entity.EarningsRecord, error) {
	d.once.Do(d.load)
	return d.records, d.err
}

func (d *earningsCSV) load() {
	f, err := dataset.Open(d.path, domain.ErrDatasetUnavailable)
	if err != nil {
		slog.Error("could not open earnings dataset", "path", d.path, "error", err)
		d.err = err
		return
	}
	defer f.Close()

	if err := dataset.CheckHeader(f, requiredColumns, domain.ErrInvalidSchema); err != nil {
		d.err = err
		return
	}

	var rows []*earningsRow
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		d.err = fmt.Errorf("parse earnings dataset: %w", err)
		return
	}

	records := make([]entity.EarningsRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, entity.EarningsRecord{
			Ticker: strings.ToUpper(strings.TrimSpace(row.Ticker)),
			Date:   strings.TrimSpace(row.Date),
			Bin:    strings.TrimSpace(row.Bin),
		})
	}
	d.records = records
	slog.Info("earnings dataset loaded", "path", d.path, "records", len(records))
}
