// Package handler はcandlesフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"stock_insights/internal/api"
	"stock_insights/internal/feature/candles/domain"
	"stock_insights/internal/feature/candles/domain/entity"
)

// timeFormat is the minute-resolution format of candle timestamps on the wire.
const timeFormat = "2006-01-02 15:04"

// StoreUsecase はローソク足データ取得のユースケースインターフェースを定義します。
type StoreUsecase interface {
	GetDates(ctx context.Context, ticker string) ([]string, error)
	GetCandles(ctx context.Context, ticker, date string) ([]entity.Candle, error)
}

// CandlesHandler はローソク足データのHTTPリクエストを処理します。
type CandlesHandler struct {
	uc StoreUsecase
}

// NewCandlesHandler creates a new CandlesHandler.
func NewCandlesHandler(uc StoreUsecase) *CandlesHandler {
	return &CandlesHandler{uc: uc}
}

// GetValidDates returns every date a ticker has candles for.
//
// GET /api/valid_dates?ticker=QQQ
func (h *CandlesHandler) GetValidDates(c *gin.Context) {
	ticker := c.Query("ticker")
	if ticker == "" {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Missing or invalid ticker"})
		return
	}

	dates, err := h.uc.GetDates(c.Request.Context(), ticker)
	if err != nil {
		h.renderError(c, ticker, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"dates": dates})
}

// GetCandles returns one trading day's ordered candle series. Plotting is
// the client's job; the server only guarantees ordering.
//
// GET /api/stock/candles?ticker=QQQ&date=2023-01-02
func (h *CandlesHandler) GetCandles(c *gin.Context) {
	ticker := c.Query("ticker")
	date := c.Query("date")
	if ticker == "" || date == "" {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Missing ticker or date"})
		return
	}

	candles, err := h.uc.GetCandles(c.Request.Context(), ticker, date)
	if err != nil {
		h.renderError(c, ticker, err)
		return
	}

	out := make([]api.CandleResponse, 0, len(candles))
	for _, x := range candles {
		out = append(out, api.CandleResponse{
			Time:   x.Time.Format(timeFormat),
			Open:   x.Open,
			High:   x.High,
			Low:    x.Low,
			Close:  x.Close,
			Volume: x.Volume,
		})
	}
	c.JSON(http.StatusOK, gin.H{"candles": out})
}

// renderError maps domain errors onto the HTTP taxonomy.
func (h *CandlesHandler) renderError(c *gin.Context, ticker string, err error) {
	switch {
	case errors.Is(err, domain.ErrUnknownTicker):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid ticker"})
	case errors.Is(err, domain.ErrInvalidDate):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid date format"})
	case errors.Is(err, domain.ErrNoBackingData):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "No database available for " + ticker})
	case errors.Is(err, domain.ErrNoDataForDate):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "No data available for the selected date. Try another date."})
	default:
		slog.Error("candle request failed", "ticker", ticker, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Server error"})
	}
}
