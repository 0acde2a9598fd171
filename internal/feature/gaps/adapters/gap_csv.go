// Package adapters loads the gap dataset from its CSV file.
package adapters

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/gocarina/gocsv"

	"stock_insights/internal/feature/gaps/domain"
	"stock_insights/internal/feature/gaps/domain/entity"
	"stock_insights/internal/feature/gaps/usecase"
	"stock_insights/internal/platform/dataset"
)

// requiredColumns must be present in the dataset header. The numeric and
// time-of-day columns are optional per row, but the filter dimensions and
// date are not negotiable.
var requiredColumns = []string{"date", "gap_size_bin", "day_of_week", "gap_direction"}

// gapRow mirrors one CSV row. Everything is read as text; conversion to the
// typed record happens in one place so odd values (blank floats, "True"
// booleans from the offline pipeline) are handled uniformly.
type gapRow struct {
	Date              string `csv:"date"`
	GapSizeBin        string `csv:"gap_size_bin"`
	DayOfWeek         string `csv:"day_of_week"`
	GapDirection      string `csv:"gap_direction"`
	Filled            string `csv:"filled"`
	ReversalAfterFill string `csv:"reversal_after_fill"`
	MoveBeforeFillPct string `csv:"move_before_reversal_fill_direction_pct"`
	MaxMove30MinPct   string `csv:"max_move_gap_direction_first_30min_pct"`
	TimeToFillMinutes string `csv:"time_to_fill_minutes"`
	TimeOfLow         string `csv:"time_of_low"`
	TimeOfHigh        string `csv:"time_of_high"`
}

// gapCSV implements usecase.GapDataset over a CSV file, loaded once on
// first use and shared read-only across requests afterwards.
type gapCSV struct {
	path    string
	once    sync.Once
	records []entity.GapRecord
	err     error
}

var _ usecase.GapDataset = (*gapCSV)(nil)

// NewGapDataset creates a lazily-loaded dataset for the given file.
func NewGapDataset(path string) *gapCSV {
	return &gapCSV{path: path}
}

// Records returns the loaded dataset. The slice is shared; callers must
// treat it as read-only.
func (d *gapCSV) Records(_ context.Context) ([]entity.GapRecord, error) {
	d.once.Do(d.load)
	return d.records, d.err
}

func (d *gapCSV) load() {
	f, err := dataset.Open(d.path, domain.ErrDatasetUnavailable)
	if err != nil {
		slog.Error("could not open gap dataset", "path", d.path, "error", err)
		d.err = err
		return
	}
	defer f.Close()

	if err := dataset.CheckHeader(f, requiredColumns, domain.ErrInvalidSchema); err != nil {
		d.err = err
		return
	}

	var rows []*gapRow
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		d.err = fmt.Errorf("parse gap dataset: %w", err)
		return
	}

	records := make([]entity.GapRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, entity.GapRecord{
			Date:              strings.TrimSpace(row.Date),
			GapSizeBin:        strings.TrimSpace(row.GapSizeBin),
			DayOfWeek:         strings.TrimSpace(row.DayOfWeek),
			GapDirection:      strings.TrimSpace(row.GapDirection),
			Filled:            parseBool(row.Filled),
			ReversalAfterFill: parseBool(row.ReversalAfterFill),
			MoveBeforeFillPct: parseFloat(row.MoveBeforeFillPct),
			MaxMove30MinPct:   parseFloat(row.MaxMove30MinPct),
			TimeToFillMinutes: parseFloat(row.TimeToFillMinutes),
			TimeOfLow:         strings.TrimSpace(row.TimeOfLow),
			TimeOfHigh:        strings.TrimSpace(row.TimeOfHigh),
		})
	}
	d.records = records
	slog.Info("gap dataset loaded", "path", d.path, "records", len(records))
}

// parseBool reads the offline pipeline's boolean spellings ("True",
// "false", "1"); blank or anything else is false.
func parseBool(s string) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(s))
	return err == nil && v
}

// parseFloat reads a float measure; blank or unparseable is 0.
func parseFloat(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}
