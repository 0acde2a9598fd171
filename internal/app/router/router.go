// Package router wires the HTTP routes to their handlers.
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	candleshandler "stock_insights/internal/feature/candles/transport/handler"
	earningshandler "stock_insights/internal/feature/earnings/transport/handler"
	eventshandler "stock_insights/internal/feature/events/transport/handler"
	gapshandler "stock_insights/internal/feature/gaps/transport/handler"
	quotaentity "stock_insights/internal/feature/quota/domain/entity"
	quotamw "stock_insights/internal/feature/quota/transport/middleware"
	tickershandler "stock_insights/internal/feature/tickers/transport/handler"
	"stock_insights/internal/platform/session"
)

// Handlers bundles the feature handlers the router mounts.
type Handlers struct {
	Tickers  *tickershandler.TickerHandler
	Candles  *candleshandler.CandlesHandler
	Gaps     *gapshandler.GapHandler
	Events   *eventshandler.EventHandler
	Earnings *earningshandler.EarningsHandler
}

// NewRouter builds the gin engine. Every /api route sits behind the
// session-scoped quota; the insights route uses its stricter class.
func NewRouter(h Handlers, resolver *session.Resolver, gate quotamw.QuotaGate) *gin.Engine {
	r := gin.Default()

	// 導通確認用（クォータ対象外）
	r.GET("/healthz", health)
	r.HEAD("/healthz", health)

	api := r.Group("/api")
	api.Use(quotamw.RequireQuota(resolver, gate, quotaentity.ClassDefault))
	{
		api.GET("/tickers", h.Tickers.List)
		api.GET("/valid_dates", h.Candles.GetValidDates)
		api.GET("/stock/candles", h.Candles.GetCandles)
		api.GET("/gaps", h.Gaps.Filter)
		api.GET("/years", h.Events.ListYears)
		api.GET("/events", h.Events.ListEvents)
		api.GET("/economic_events", h.Events.ListEconomicEvents)
		api.GET("/earnings", h.Earnings.ListEarnings)
		api.GET("/earnings/bin", h.Earnings.ListEarningsByBin)
	}

	// 統計計算は重いため、より厳しいクォータを適用します。
	insights := r.Group("/api/gaps/insights")
	insights.Use(quotamw.RequireQuota(resolver, gate, quotaentity.ClassInsights))
	insights.GET("", h.Gaps.Insights)

	return r
}

// health はサービスヘルスチェック用の /healthz エンドポイントを処理します。
func health(c *gin.Context) {
	// ロードバランサが古い結果を使わないようキャッシュを防止します。
	c.Header("Cache-Control", "no-store")
	if c.Request.Method == http.MethodHead {
		c.Status(http.StatusOK)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
