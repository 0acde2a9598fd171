package entity

// GapInsights is the aggregate statistics computed over a filtered set of
// gap records.
//
// Some metrics intentionally aggregate different subsets: "move before
// fill" is only meaningful when a fill occurred and "max move unfilled"
// only when it did not, while the reversal rate and time-of-low/high run
// over all matched records.
type GapInsights struct {
	GapFillRate              float64 `json:"gap_fill_rate"`
	MeanMoveBeforeFill       float64 `json:"mean_move_before_fill_pct"`
	MedianMoveBeforeFill     float64 `json:"median_move_before_fill_pct"`
	MeanMaxMoveUnfilled      float64 `json:"mean_max_move_unfilled_pct"`
	MedianMaxMoveUnfilled    float64 `json:"median_max_move_unfilled_pct"`
	ReversalAfterFillRate    float64 `json:"reversal_after_fill_rate"`
	MeanTimeToFill           float64 `json:"mean_time_to_fill_minutes"`
	MedianTimeToFill         float64 `json:"median_time_to_fill_minutes"`
	MeanTimeOfLow            string  `json:"mean_time_of_low"`
	MedianTimeOfLow          string  `json:"median_time_of_low"`
	MeanTimeOfHigh           string  `json:"mean_time_of_high"`
	MedianTimeOfHigh         string  `json:"median_time_of_high"`
	MeanMoveBeforeReversal   float64 `json:"mean_move_before_reversal_pct"`
	MedianMoveBeforeReversal float64 `json:"median_move_before_reversal_pct"`
	SampleSize               int     `json:"sample_size"`
}
