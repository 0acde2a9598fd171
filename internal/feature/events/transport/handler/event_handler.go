// Package handler はeventsフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"stock_insights/internal/api"
	"stock_insights/internal/feature/events/domain"
)

// EventsUsecase はイベントカタログのユースケースインターフェースを定義します。
type EventsUsecase interface {
	ListYears(ctx context.Context) ([]int, error)
	ListEvents(ctx context.Context, eventType, year string) ([]string, error)
	ListEconomicEvents(ctx context.Context, eventType, bin string) ([]string, error)
}

// EventHandler はイベントカタログのHTTPリクエストを処理します。
type EventHandler struct {
	uc EventsUsecase
}

// NewEventHandler creates a new EventHandler.
func NewEventHandler(uc EventsUsecase) *EventHandler {
	return &EventHandler{uc: uc}
}

// ListYears returns the distinct years covered by the news dataset.
//
// GET /api/years
func (h *EventHandler) ListYears(c *gin.Context) {
	years, err := h.uc.ListYears(c.Request.Context())
	if err != nil {
		h.renderError(c, err)
		return
	}
	if years == nil {
		years = []int{}
	}
	c.JSON(http.StatusOK, gin.H{"years": years})
}

// ListEvents returns news-event dates, optionally filtered.
//
// GET /api/events?event_type=FOMC&year=2023
func (h *EventHandler) ListEvents(c *gin.Context) {
	dates, err := h.uc.ListEvents(c.Request.Context(), c.Query("event_type"), c.Query("year"))
	if err != nil {
		h.renderError(c, err)
		return
	}
	if len(dates) == 0 {
		c.JSON(http.StatusOK, api.DatesResponse{
			Dates:   []string{},
			Message: "No events found for the selected criteria",
		})
		return
	}
	c.JSON(http.StatusOK, api.DatesResponse{Dates: dates})
}

// ListEconomicEvents returns economic-event dates, optionally filtered.
//
// GET /api/economic_events?event_type=CPI&bin=Beat
func (h *EventHandler) ListEconomicEvents(c *gin.Context) {
	dates, err := h.uc.ListEconomicEvents(c.Request.Context(), c.Query("event_type"), c.Query("bin"))
	if err != nil {
		h.renderError(c, err)
		return
	}
	if len(dates) == 0 {
		c.JSON(http.StatusOK, api.DatesResponse{
			Dates:   []string{},
			Message: "No events found for the selected criteria",
		})
		return
	}
	c.JSON(http.StatusOK, api.DatesResponse{Dates: dates})
}

func (h *EventHandler) renderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidYear):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid year format"})
	case errors.Is(err, domain.ErrDatasetUnavailable):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Events data file not found. Please contact support."})
	case errors.Is(err, domain.ErrInvalidSchema):
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Invalid events data format"})
	default:
		slog.Error("events request failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Server error"})
	}
}
