// Package usecase implements gap filtering and insight statistics.
package usecase

import (
	"context"
	"math"
	"sort"

	"github.com/montanaflynn/stats"

	"stock_insights/internal/feature/gaps/domain/entity"
)

// NoResultTime is reported for time-of-day statistics when the filtered
// set holds no parseable clock value.
const NoResultTime = "N/A"

// GapDataset abstracts the loaded gap-event table. The returned slice is
// shared and must not be mutated.
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type GapDataset interface {
	Records(ctx context.Context) ([]entity.GapRecord, error)
}

// GapsUsecase filters the gap dataset and computes summary statistics.
type GapsUsecase struct {
	dataset GapDataset
}

// NewGapsUsecase creates a GapsUsecase over the given dataset.
func NewGapsUsecase(dataset GapDataset) *GapsUsecase {
	return &GapsUsecase{dataset: dataset}
}

// Filter returns the dates of every record matching all three categorical
// predicates, ascending. Zero matches is a valid outcome, not an error: the
// caller renders the empty list with an explanatory message.
func (u *GapsUsecase) Filter(ctx context.Context, gapSizeBin, dayOfWeek, gapDirection string) ([]string, error) {
	matched, err := u.match(ctx, gapSizeBin, dayOfWeek, gapDirection)
	if err != nil {
		return nil, err
	}

	dates := make([]string, 0, len(matched))
	for _, rec := range matched {
		dates = append(dates, rec.Date)
	}
	sort.Strings(dates)
	return dates, nil
}

// ComputeInsights filters like Filter and aggregates the matched set.
// An empty filtered set returns (nil, nil): no statistics can be computed,
// but that is a "no data" outcome rather than a failure.
func (u *GapsUsecase) ComputeInsights(ctx context.Context, gapSizeBin, dayOfWeek, gapDirection string) (*entity.GapInsights, error) {
	matched, err := u.match(ctx, gapSizeBin, dayOfWeek, gapDirection)
	if err != nil {
		return nil, err
	}
	if len(matched) == 0 {
		return nil, nil
	}

	var (
		filledMoves   []float64 // move before fill, filled records only
		unfilledMoves []float64 // max move while unfilled, unfilled records only
		fillTimes     []float64 // minutes to fill, filled records only
		allMoves      []float64 // move before reversal, all matched records
		lowMinutes    []float64 // parseable time_of_low, all matched records
		highMinutes   []float64 // parseable time_of_high, all matched records
		filledCount   int
		reversalCount int
	)

	for _, rec := range matched {
		allMoves = append(allMoves, rec.MoveBeforeFillPct)
		if rec.Filled {
			filledCount++
			filledMoves = append(filledMoves, rec.MoveBeforeFillPct)
			fillTimes = append(fillTimes, rec.TimeToFillMinutes)
		} else {
			unfilledMoves = append(unfilledMoves, rec.MaxMove30MinPct)
		}
		if rec.ReversalAfterFill {
			reversalCount++
		}
		if m, ok := timeToMinutes(rec.TimeOfLow); ok {
			lowMinutes = append(lowMinutes, float64(m))
		}
		if m, ok := timeToMinutes(rec.TimeOfHigh); ok {
			highMinutes = append(highMinutes, float64(m))
		}
	}

	n := len(matched)
	meanLow, medianLow := clockStats(lowMinutes)
	meanHigh, medianHigh := clockStats(highMinutes)

	return &entity.GapInsights{
		GapFillRate:          round2(100 * float64(filledCount) / float64(n)),
		MeanMoveBeforeFill:   round2(meanOrZero(filledMoves)),
		MedianMoveBeforeFill: round2(medianOrZero(filledMoves)),

		MeanMaxMoveUnfilled:   round2(meanOrZero(unfilledMoves)),
		MedianMaxMoveUnfilled: round2(medianOrZero(unfilledMoves)),

		// Computed over all matched records, filled or not: unfilled days
		// count as non-reversals and dilute the rate.
		ReversalAfterFillRate: round2(100 * float64(reversalCount) / float64(n)),

		MeanTimeToFill:   round2(meanOrZero(fillTimes)),
		MedianTimeToFill: round2(medianOrZero(fillTimes)),

		MeanTimeOfLow:    meanLow,
		MedianTimeOfLow:  medianLow,
		MeanTimeOfHigh:   meanHigh,
		MedianTimeOfHigh: medianHigh,

		MeanMoveBeforeReversal:   round2(meanOrZero(allMoves)),
		MedianMoveBeforeReversal: round2(medianOrZero(allMoves)),

		SampleSize: n,
	}, nil
}

// match returns the records matching all three predicates, in dataset order.
func (u *GapsUsecase) match(ctx context.Context, gapSizeBin, dayOfWeek, gapDirection string) ([]entity.GapRecord, error) {
	records, err := u.dataset.Records(ctx)
	if err != nil {
		return nil, err
	}

	var matched []entity.GapRecord
	for _, rec := range records {
		if rec.GapSizeBin == gapSizeBin && rec.DayOfWeek == dayOfWeek && rec.GapDirection == gapDirection {
			matched = append(matched, rec)
		}
	}
	return matched, nil
}

// clockStats formats the mean and median of minute values as "HH:MM",
// reporting NoResultTime when no parseable value exists.
func clockStats(minutes []float64) (mean, median string) {
	if len(minutes) == 0 {
		return NoResultTime, NoResultTime
	}
	m, _ := stats.Mean(minutes)
	md, _ := stats.Median(minutes)
	return minutesToTime(int(math.Round(m))), minutesToTime(int(math.Round(md)))
}

func meanOrZero(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	m, _ := stats.Mean(values)
	return m
}

func medianOrZero(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	m, _ := stats.Median(values)
	return m
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
