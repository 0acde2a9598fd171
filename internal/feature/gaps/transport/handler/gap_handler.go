// Package handler はgapsフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"stock_insights/internal/api"
	"stock_insights/internal/feature/gaps/domain"
	"stock_insights/internal/feature/gaps/domain/entity"
)

// GapsUsecase はギャップ分析のユースケースインターフェースを定義します。
type GapsUsecase interface {
	Filter(ctx context.Context, gapSizeBin, dayOfWeek, gapDirection string) ([]string, error)
	ComputeInsights(ctx context.Context, gapSizeBin, dayOfWeek, gapDirection string) (*entity.GapInsights, error)
}

// GapHandler はギャップ分析のHTTPリクエストを処理します。
type GapHandler struct {
	uc GapsUsecase
}

// NewGapHandler creates a new GapHandler.
func NewGapHandler(uc GapsUsecase) *GapHandler {
	return &GapHandler{uc: uc}
}

// Filter returns the dates of gap days matching the three criteria.
//
// GET /api/gaps?gap_size=Large&day=Monday&gap_direction=Up
func (h *GapHandler) Filter(c *gin.Context) {
	dates, err := h.uc.Filter(c.Request.Context(),
		c.Query("gap_size"), c.Query("day"), c.Query("gap_direction"))
	if err != nil {
		h.renderError(c, err)
		return
	}

	if len(dates) == 0 {
		c.JSON(http.StatusOK, api.DatesResponse{
			Dates:   []string{},
			Message: "No gaps found for the selected criteria",
		})
		return
	}
	c.JSON(http.StatusOK, api.DatesResponse{Dates: dates})
}

// Insights returns the aggregate statistics for the filtered gap set.
//
// GET /api/gaps/insights?gap_size=Large&day=Monday&gap_direction=Up
func (h *GapHandler) Insights(c *gin.Context) {
	insights, err := h.uc.ComputeInsights(c.Request.Context(),
		c.Query("gap_size"), c.Query("day"), c.Query("gap_direction"))
	if err != nil {
		h.renderError(c, err)
		return
	}

	if insights == nil {
		c.JSON(http.StatusOK, gin.H{
			"insights": gin.H{},
			"message":  "No gaps found for the selected criteria",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"insights": insights})
}

func (h *GapHandler) renderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrDatasetUnavailable):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Gap data file not found. Please contact support."})
	case errors.Is(err, domain.ErrInvalidSchema):
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Invalid gap data format"})
	default:
		slog.Error("gap request failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Server error"})
	}
}
