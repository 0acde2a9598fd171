// Package api defines the shared JSON envelopes returned by every handler.
package api

// ErrorResponse is the envelope for any failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// DatesResponse is the envelope for date-list operations (gaps, events,
// earnings). Message is only set when the query matched nothing.
type DatesResponse struct {
	Dates   []string `json:"dates"`
	Message string   `json:"message,omitempty"`
}

// CandleResponse is one candle row in a series response.
type CandleResponse struct {
	Time   string  `json:"time"`
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume int64   `json:"volume"`
}
