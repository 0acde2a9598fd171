// Package handler はtickersフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// TickerRegistry は有効な銘柄一覧を提供するインターフェースです。
// Following Go convention: interfaces are defined by the consumer (handler).
type TickerRegistry interface {
	List() []string
}

// TickerHandler は銘柄一覧のHTTPリクエストを処理します。
type TickerHandler struct {
	registry TickerRegistry
}

// NewTickerHandler creates a new TickerHandler.
func NewTickerHandler(registry TickerRegistry) *TickerHandler {
	return &TickerHandler{registry: registry}
}

// List returns the precomputed valid ticker set.
//
// GET /api/tickers
func (h *TickerHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"tickers": h.registry.List()})
}
