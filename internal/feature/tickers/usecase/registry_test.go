package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockProber is a ShardProber mock with per-ticker results.
type mockProber struct {
	results map[string]bool
	errs    map[string]error
	calls   int
}

func (m *mockProber) Probe(_ context.Context, ticker string) (bool, error) {
	m.calls++
	if err, ok := m.errs[ticker]; ok {
		return false, err
	}
	return m.results[ticker], nil
}

func TestRegistry_Initialize(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		allowList []string
		prober    *mockProber
		wantValid []string
	}{
		{
			name:      "only probed tickers are valid, lexicographic order",
			allowList: []string{"TSLA", "AAPL", "QQQ"},
			prober:    &mockProber{results: map[string]bool{"QQQ": true, "AAPL": true}},
			wantValid: []string{"AAPL", "QQQ"},
		},
		{
			name:      "fail-open when nothing validates",
			allowList: []string{"TSLA", "AAPL"},
			prober:    &mockProber{results: map[string]bool{}},
			wantValid: []string{"AAPL", "TSLA"},
		},
		{
			name:      "probe error treated as invalid, others unaffected",
			allowList: []string{"QQQ", "MSFT"},
			prober: &mockProber{
				results: map[string]bool{"QQQ": true},
				errs:    map[string]error{"MSFT": errors.New("disk gone")},
			},
			wantValid: []string{"QQQ"},
		},
		{
			name:      "allow-list canonicalized and deduplicated",
			allowList: []string{"qqq", "QQQ", " aapl "},
			prober:    &mockProber{results: map[string]bool{"QQQ": true, "AAPL": true}},
			wantValid: []string{"AAPL", "QQQ"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry(tt.allowList, tt.prober)
			require.NoError(t, r.Initialize(ctx))
			assert.Equal(t, tt.wantValid, r.List())
		})
	}
}

func TestRegistry_IsKnown(t *testing.T) {
	r := NewRegistry([]string{"QQQ", "AAPL"}, &mockProber{results: map[string]bool{"QQQ": true}})
	require.NoError(t, r.Initialize(context.Background()))

	assert.True(t, r.IsKnown("QQQ"))
	assert.True(t, r.IsKnown("qqq"), "membership check is case-insensitive")
	assert.True(t, r.IsKnown("AAPL"), "allow-list membership is independent of probe result")
	assert.False(t, r.IsKnown("GME"))
}

func TestRegistry_Refresh(t *testing.T) {
	prober := &mockProber{results: map[string]bool{"QQQ": true}}
	r := NewRegistry([]string{"QQQ", "AAPL"}, prober)
	require.NoError(t, r.Initialize(context.Background()))
	assert.Equal(t, []string{"QQQ"}, r.List())

	// Backing data for AAPL appears; an explicit Refresh picks it up.
	prober.results["AAPL"] = true
	require.NoError(t, r.Refresh(context.Background()))
	assert.Equal(t, []string{"AAPL", "QQQ"}, r.List())
}

func TestRegistry_ListBeforeInitialize(t *testing.T) {
	r := NewRegistry([]string{"QQQ"}, &mockProber{})
	assert.Nil(t, r.List())
}
