// Package usecase implements the event catalog lookups.
package usecase

import (
	"context"
	"sort"
	"strconv"

	"stock_insights/internal/feature/events/domain"
	"stock_insights/internal/feature/events/domain/entity"
)

// NewsDataset abstracts the loaded news-event table.
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type NewsDataset interface {
	Records(ctx context.Context) ([]entity.EventRecord, error)
}

// EconomicDataset abstracts the loaded economic-event table.
type EconomicDataset interface {
	Records(ctx context.Context) ([]entity.EconomicEventRecord, error)
}

// EventsUsecase serves filtered views over the event datasets.
type EventsUsecase struct {
	news     NewsDataset
	economic EconomicDataset
}

// NewEventsUsecase creates an EventsUsecase over both datasets.
func NewEventsUsecase(news NewsDataset, economic EconomicDataset) *EventsUsecase {
	return &EventsUsecase{news: news, economic: economic}
}

// ListYears returns the distinct calendar years present in the news
// dataset, ascending.
func (u *EventsUsecase) ListYears(ctx context.Context) ([]int, error) {
	records, err := u.news.Records(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[int]struct{})
	var years []int
	for _, rec := range records {
		if _, dup := seen[rec.Year]; dup {
			continue
		}
		seen[rec.Year] = struct{}{}
		years = append(years, rec.Year)
	}
	sort.Ints(years)
	return years, nil
}

// ListEvents returns the dates of news events, optionally filtered by
// event type and/or year. Both filters are independent; omitting both
// returns every event. Dates are ascending with duplicates preserved
// (several events may share a date).
func (u *EventsUsecase) ListEvents(ctx context.Context, eventType, year string) ([]string, error) {
	yearFilter := 0
	if year != "" {
		// カレンダー年は4桁表記のみ受け付けます（"23"や"-523"は不可）。
		y, err := strconv.Atoi(year)
		if err != nil || len(year) != 4 || y < 1000 {
			return nil, domain.ErrInvalidYear
		}
		yearFilter = y
	}

	records, err := u.news.Records(ctx)
	if err != nil {
		return nil, err
	}

	var dates []string
	for _, rec := range records {
		if eventType != "" && rec.EventType != eventType {
			continue
		}
		if yearFilter != 0 && rec.Year != yearFilter {
			continue
		}
		dates = append(dates, rec.Date)
	}
	sort.Strings(dates)
	return dates, nil
}

// ListEconomicEvents returns the dates of economic events, optionally
// filtered by event type and/or outcome bin.
func (u *EventsUsecase) ListEconomicEvents(ctx context.Context, eventType, bin string) ([]string, error) {
	records, err := u.economic.Records(ctx)
	if err != nil {
		return nil, err
	}

	var dates []string
	for _, rec := range records {
		if eventType != "" && rec.EventType != eventType {
			continue
		}
		if bin != "" && rec.Bin != bin {
			continue
		}
		dates = append(dates, rec.Date)
	}
	sort.Strings(dates)
	return dates, nil
}
