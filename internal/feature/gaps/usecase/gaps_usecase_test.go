package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stock_insights/internal/feature/gaps/domain/entity"
)

// mockDataset はGapDatasetインターフェースのモック実装です。
type mockDataset struct {
	records []entity.GapRecord
	err     error
}

func (m *mockDataset) Records(context.Context) ([]entity.GapRecord, error) {
	return m.records, m.err
}

// largeMondayUp builds a record matching the canonical test filter.
func largeMondayUp(date string, mutate func(*entity.GapRecord)) entity.GapRecord {
	rec := entity.GapRecord{
		Date:         date,
		GapSizeBin:   "Large",
		DayOfWeek:    "Monday",
		GapDirection: "Up",
	}
	if mutate != nil {
		mutate(&rec)
	}
	return rec
}

func TestGapsUsecase_Filter(t *testing.T) {
	ctx := context.Background()

	dataset := &mockDataset{records: []entity.GapRecord{
		largeMondayUp("2023-05-15", nil),
		{Date: "2023-02-03", GapSizeBin: "Small", DayOfWeek: "Monday", GapDirection: "Up"},
		{Date: "2023-02-06", GapSizeBin: "Large", DayOfWeek: "Friday", GapDirection: "Up"},
		{Date: "2023-02-07", GapSizeBin: "Large", DayOfWeek: "Monday", GapDirection: "Down"},
		largeMondayUp("2023-01-02", nil),
	}}
	u := NewGapsUsecase(dataset)

	dates, err := u.Filter(ctx, "Large", "Monday", "Up")
	require.NoError(t, err)
	assert.Equal(t, []string{"2023-01-02", "2023-05-15"}, dates,
		"all three predicates must match exactly, dates ascending")
}

func TestGapsUsecase_Filter_NoMatches(t *testing.T) {
	u := NewGapsUsecase(&mockDataset{records: []entity.GapRecord{
		largeMondayUp("2023-01-02", nil),
	}})

	dates, err := u.Filter(context.Background(), "Small", "Tuesday", "Down")
	require.NoError(t, err, "zero matches is not an error")
	assert.Empty(t, dates)
}

func TestGapsUsecase_Filter_DatasetError(t *testing.T) {
	wantErr := errors.New("dataset gone")
	u := NewGapsUsecase(&mockDataset{err: wantErr})

	_, err := u.Filter(context.Background(), "Large", "Monday", "Up")
	assert.ErrorIs(t, err, wantErr)
}

func TestGapsUsecase_ComputeInsights(t *testing.T) {
	ctx := context.Background()

	dataset := &mockDataset{records: []entity.GapRecord{
		largeMondayUp("2023-01-02", func(r *entity.GapRecord) {
			r.Filled = true
			r.ReversalAfterFill = true
			r.MoveBeforeFillPct = 1.0
			r.TimeToFillMinutes = 30
			r.TimeOfLow = "09:35"
			r.TimeOfHigh = "15:00"
		}),
		largeMondayUp("2023-01-09", func(r *entity.GapRecord) {
			r.Filled = true
			r.MoveBeforeFillPct = 2.0
			r.TimeToFillMinutes = 90
			r.TimeOfLow = "10:05"
			r.TimeOfHigh = "15:30"
		}),
		largeMondayUp("2023-01-16", func(r *entity.GapRecord) {
			r.Filled = false
			r.MoveBeforeFillPct = 3.0
			r.MaxMove30MinPct = 0.8
			r.TimeOfLow = "N/A" // excluded from the clock statistics
			r.TimeOfHigh = "16:00"
		}),
		// Different day of week: must not be counted at all.
		{Date: "2023-01-17", GapSizeBin: "Large", DayOfWeek: "Tuesday", GapDirection: "Up", Filled: true},
	}}
	u := NewGapsUsecase(dataset)

	got, err := u.ComputeInsights(ctx, "Large", "Monday", "Up")
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, 3, got.SampleSize)
	assert.InDelta(t, 66.67, got.GapFillRate, 0.001, "2 of 3 filled")

	// Filled-only metrics.
	assert.InDelta(t, 1.5, got.MeanMoveBeforeFill, 0.001)
	assert.InDelta(t, 1.5, got.MedianMoveBeforeFill, 0.001)
	assert.InDelta(t, 60, got.MeanTimeToFill, 0.001)
	assert.InDelta(t, 60, got.MedianTimeToFill, 0.001)

	// Unfilled-only metrics.
	assert.InDelta(t, 0.8, got.MeanMaxMoveUnfilled, 0.001)
	assert.InDelta(t, 0.8, got.MedianMaxMoveUnfilled, 0.001)

	// Over the whole matched set: 1 reversal out of 3 records.
	assert.InDelta(t, 33.33, got.ReversalAfterFillRate, 0.001)
	assert.InDelta(t, 2.0, got.MeanMoveBeforeReversal, 0.001)
	assert.InDelta(t, 2.0, got.MedianMoveBeforeReversal, 0.001)

	// Clock stats: lows 09:35 (575) and 10:05 (605) -> mean/median 590.
	assert.Equal(t, "09:50", got.MeanTimeOfLow)
	assert.Equal(t, "09:50", got.MedianTimeOfLow)
	// Highs 15:00, 15:30, 16:00 -> mean/median 15:30.
	assert.Equal(t, "15:30", got.MeanTimeOfHigh)
	assert.Equal(t, "15:30", got.MedianTimeOfHigh)
}

func TestGapsUsecase_ComputeInsights_RateBounds(t *testing.T) {
	ctx := context.Background()

	t.Run("no record filled", func(t *testing.T) {
		u := NewGapsUsecase(&mockDataset{records: []entity.GapRecord{
			largeMondayUp("2023-01-02", nil),
			largeMondayUp("2023-01-09", nil),
		}})
		got, err := u.ComputeInsights(ctx, "Large", "Monday", "Up")
		require.NoError(t, err)
		assert.Equal(t, 0.0, got.GapFillRate)
		assert.Equal(t, 0.0, got.MeanMoveBeforeFill, "no filled records means 0, not NaN")
		assert.Equal(t, 0.0, got.MedianTimeToFill)
	})

	t.Run("every record filled", func(t *testing.T) {
		u := NewGapsUsecase(&mockDataset{records: []entity.GapRecord{
			largeMondayUp("2023-01-02", func(r *entity.GapRecord) { r.Filled = true }),
			largeMondayUp("2023-01-09", func(r *entity.GapRecord) { r.Filled = true }),
		}})
		got, err := u.ComputeInsights(ctx, "Large", "Monday", "Up")
		require.NoError(t, err)
		assert.Equal(t, 100.0, got.GapFillRate)
		assert.Equal(t, 0.0, got.MeanMaxMoveUnfilled, "no unfilled records means 0, not NaN")
	})
}

func TestGapsUsecase_ComputeInsights_EmptySet(t *testing.T) {
	u := NewGapsUsecase(&mockDataset{records: []entity.GapRecord{
		largeMondayUp("2023-01-02", nil),
	}})

	got, err := u.ComputeInsights(context.Background(), "Small", "Friday", "Down")
	require.NoError(t, err, "empty filtered set never surfaces a numeric error")
	assert.Nil(t, got)
}

func TestGapsUsecase_ComputeInsights_NoParseableClocks(t *testing.T) {
	u := NewGapsUsecase(&mockDataset{records: []entity.GapRecord{
		largeMondayUp("2023-01-02", func(r *entity.GapRecord) {
			r.TimeOfLow = ""
			r.TimeOfHigh = "garbage"
		}),
	}})

	got, err := u.ComputeInsights(context.Background(), "Large", "Monday", "Up")
	require.NoError(t, err)
	assert.Equal(t, NoResultTime, got.MeanTimeOfLow)
	assert.Equal(t, NoResultTime, got.MedianTimeOfLow)
	assert.Equal(t, NoResultTime, got.MeanTimeOfHigh)
	assert.Equal(t, NoResultTime, got.MedianTimeOfHigh)
}
