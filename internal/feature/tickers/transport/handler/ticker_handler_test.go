package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// mockRegistry はTickerRegistryインターフェースのモック実装です。
type mockRegistry struct {
	tickers []string
}

func (m *mockRegistry) List() []string {
	return m.tickers
}

func TestTickerHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name         string
		tickers      []string
		expectedBody string
	}{
		{
			name:         "returns valid tickers in order",
			tickers:      []string{"AAPL", "QQQ"},
			expectedBody: `{"tickers":["AAPL","QQQ"]}`,
		},
		{
			name:         "empty registry",
			tickers:      []string{},
			expectedBody: `{"tickers":[]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewTickerHandler(&mockRegistry{tickers: tt.tickers})

			router := gin.New()
			router.GET("/api/tickers", h.List)

			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodGet, "/api/tickers", nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}
