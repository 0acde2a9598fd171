// Package adapters loads the event datasets from their CSV files.
package adapters

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/gocarina/gocsv"

	"stock_insights/internal/feature/events/domain"
	"stock_insights/internal/feature/events/domain/entity"
	"stock_insights/internal/feature/events/usecase"
	"stock_insights/internal/platform/dataset"
)

// dateLayout is the normalized wire format for event dates.
const dateLayout = "2006-01-02"

type newsRow struct {
	Date      string `csv:"date"`
	EventType string `csv:"event_type"`
}

type economicRow struct {
	Date      string `csv:"date"`
	EventType string `csv:"event_type"`
	Bin       string `csv:"bin"`
}

// newsCSV implements usecase.NewsDataset, loaded once on first use.
type newsCSV struct {
	path    string
	once    sync.Once
	records []entity.EventRecord
	err     error
}

var _ usecase.NewsDataset = (*newsCSV)(nil)

// NewNewsDataset creates a lazily-loaded news-event dataset.
func NewNewsDataset(path string) *newsCSV {
	return &newsCSV{path: path}
}

// Records returns the loaded dataset; the slice is shared and read-only.
func (d *newsCSV) Records(_ context.Context) ([]entity.EventRecord, error) {
	d.once.Do(d.load)
	return d.records, d.err
}

func (d *newsCSV) load() {
	f, err := dataset.Open(d.path, domain.ErrDatasetUnavailable)
	if err != nil {
		slog.Error("could not open news events dataset", "path", d.path, "error", err)
		d.err = err
		return
	}
	defer f.Close()

	if err := dataset.CheckHeader(f, []string{"date", "event_type"}, domain.ErrInvalidSchema); err != nil {
		d.err = err
		return
	}

	var rows []*newsRow
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		d.err = fmt.Errorf("parse news events dataset: %w", err)
		return
	}

	records := make([]entity.EventRecord, 0, len(rows))
	for _, row := range rows {
		date, err := time.Parse(dateLayout, strings.TrimSpace(row.Date))
		if err != nil {
			d.err = fmt.Errorf("parse news event date %q: %w", row.Date, err)
			return
		}
		records = append(records, entity.EventRecord{
			Date:      date.Format(dateLayout),
			Year:      date.Year(),
			EventType: strings.TrimSpace(row.EventType),
		})
	}
	d.records = records
	slog.Info("news events dataset loaded", "path", d.path, "records", len(records))
}

// economicCSV implements usecase.EconomicDataset, loaded once on first use.
type economicCSV struct {
	path    string
	once    sync.Once
	records []entity.EconomicEventRecord
	err     error
}

var _ usecase.EconomicDataset = (*economicCSV)(nil)

// NewEconomicDataset creates a lazily-loaded economic-event dataset.
func NewEconomicDataset(path string) *economicCSV {
	return &economicCSV{path: path}
}

// Records returns the loaded dataset; the slice is shared and read-only.
func (d *economicCSV) Records(_ context.Context) ([]entity.EconomicEventRecord, error) {
	d.once.Do(d.load)
	return d.records, d.err
}

func (d *economicCSV) load() {
	f, err := dataset.Open(d.path, domain.ErrDatasetUnavailable)
	if err != nil {
		slog.Error("could not open economic events dataset", "path", d.path, "error", err)
		d.err = err
		return
	}
	defer f.Close()

	if err := dataset.CheckHeader(f, []string{"date", "event_type", "bin"}, domain.ErrInvalidSchema); err != nil {
		d.err = err
		return
	}

	var rows []*economicRow
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		d.err = fmt.Errorf("parse economic events dataset: %w", err)
		return
	}

	records := make([]entity.EconomicEventRecord, 0, len(rows))
	for _, row := range rows {
		date, err := time.Parse(dateLayout, strings.TrimSpace(row.Date))
		if err != nil {
			d.err = fmt.Errorf("parse economic event date %q: %w", row.Date, err)
			return
		}
		records = append(records, entity.EconomicEventRecord{
			Date:      date.Format(dateLayout),
			EventType: strings.TrimSpace(row.EventType),
			Bin:       strings.TrimSpace(row.Bin),
		})
	}
	d.records = records
	slog.Info("economic events dataset loaded", "path", d.path, "records", len(records))
}
