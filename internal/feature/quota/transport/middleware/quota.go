// Package middleware enforces the per-session quota on API routes.
package middleware

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"stock_insights/internal/api"
	"stock_insights/internal/feature/quota/domain"
	"stock_insights/internal/platform/session"
)

// SessionCookie is the cookie carrying the anonymous session id.
const SessionCookie = "session_id"

// cookieMaxAge matches the session TTL order of magnitude; the store-side
// TTL is authoritative, the cookie just has to outlive it.
const cookieMaxAge = int(48 * time.Hour / time.Second)

// QuotaGate is what the middleware needs from the quota usecase.
type QuotaGate interface {
	CheckAndConsume(ctx context.Context, sessionID, class string) error
}

// RequireQuota resolves the caller's session and consumes one slot of the
// given operation class before the handler runs. Over-quota requests get
// 429 with the allowance in the message.
func RequireQuota(resolver *session.Resolver, gate QuotaGate, class string) gin.HandlerFunc {
	return func(c *gin.Context) {
		presented, _ := c.Cookie(SessionCookie)

		id, created, err := resolver.ResolveOrCreate(c.Request.Context(), presented)
		if err != nil {
			// Session store trouble must not take the API down. The minted
			// id still scopes the quota for this client's later requests.
			slog.Error("session resolution failed", "error", err)
			id, created = uuid.NewString(), true
		}
		if created {
			c.SetCookie(SessionCookie, id, cookieMaxAge, "/", "", false, true)
		}

		if err := gate.CheckAndConsume(c.Request.Context(), id, class); err != nil {
			var exceeded *domain.QuotaExceededError
			if errors.As(err, &exceeded) {
				c.AbortWithStatusJSON(http.StatusTooManyRequests, api.ErrorResponse{
					Error: fmt.Sprintf("Rate limit exceeded: %d per %s", exceeded.Max, formatWindow(exceeded.Window)),
				})
				return
			}
			slog.Error("quota check failed", "error", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Server error"})
			return
		}

		c.Next()
	}
}

// formatWindow renders a duration for client messages, without the
// trailing zero units of Duration.String ("12h" instead of "12h0m0s").
func formatWindow(d time.Duration) string {
	s := d.String()
	if strings.HasSuffix(s, "m0s") {
		s = strings.TrimSuffix(s, "0s")
	}
	if strings.HasSuffix(s, "h0m") {
		s = strings.TrimSuffix(s, "0m")
	}
	return s
}
