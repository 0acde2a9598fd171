// Package handler はearningsフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"stock_insights/internal/api"
	"stock_insights/internal/feature/earnings/domain"
)

// EarningsUsecase は決算カタログのユースケースインターフェースを定義します。
type EarningsUsecase interface {
	ListEarnings(ctx context.Context, ticker string) ([]string, error)
	ListEarningsByBin(ctx context.Context, ticker, bin string) ([]string, error)
}

// EarningsHandler は決算日カタログのHTTPリクエストを処理します。
type EarningsHandler struct {
	uc EarningsUsecase
}

// NewEarningsHandler creates a new EarningsHandler.
func NewEarningsHandler(uc EarningsUsecase) *EarningsHandler {
	return &EarningsHandler{uc: uc}
}

// ListEarnings returns every earnings date for the ticker.
//
// GET /api/earnings?ticker=AAPL
func (h *EarningsHandler) ListEarnings(c *gin.Context) {
	ticker := c.Query("ticker")

	dates, err := h.uc.ListEarnings(c.Request.Context(), ticker)
	if err != nil {
		h.renderError(c, err)
		return
	}
	if len(dates) == 0 {
		c.JSON(http.StatusOK, api.DatesResponse{
			Dates:   []string{},
			Message: fmt.Sprintf("No earnings found for %s", ticker),
		})
		return
	}
	c.JSON(http.StatusOK, api.DatesResponse{Dates: dates})
}

// ListEarningsByBin returns the ticker's earnings dates in one surprise bin.
//
// GET /api/earnings/bin?ticker=AAPL&bin=Beat
func (h *EarningsHandler) ListEarningsByBin(c *gin.Context) {
	ticker := c.Query("ticker")
	bin := c.Query("bin")

	dates, err := h.uc.ListEarningsByBin(c.Request.Context(), ticker, bin)
	if err != nil {
		h.renderError(c, err)
		return
	}
	if len(dates) == 0 {
		c.JSON(http.StatusOK, api.DatesResponse{
			Dates:   []string{},
			Message: fmt.Sprintf("No earnings found for %s", ticker),
		})
		return
	}
	c.JSON(http.StatusOK, api.DatesResponse{Dates: dates})
}

func (h *EarningsHandler) renderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrMissingTicker):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Ticker is required"})
	case errors.Is(err, domain.ErrMissingBin):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Bin is required"})
	case errors.Is(err, domain.ErrInvalidBin):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid bin"})
	case errors.Is(err, domain.ErrUnknownTicker):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid ticker"})
	case errors.Is(err, domain.ErrDatasetUnavailable):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Earnings data file not found. Please contact support."})
	case errors.Is(err, domain.ErrInvalidSchema):
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Invalid earnings data format"})
	default:
		slog.Error("earnings request failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Server error"})
	}
}
