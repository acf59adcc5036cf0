package domain

import (
	"time"

	"github.com/google/uuid"
)

// RiskSnapshot holds the four headline statistics of a diagnosis run.
// Each value falls back to 0 when its preconditions are not met, so
// the display layer never has to special-case a missing number.
type RiskSnapshot struct {
	Beta        float64 `json:"beta"`
	Alpha       float64 `json:"alpha"`
	SharpeRatio float64 `json:"sharpeRatio"`
	MaxDrawdown float64 `json:"maxDrawdown"`
}

// LeaderboardEntry is an instrument's total profit across all trades.
type LeaderboardEntry struct {
	Underlying string  `json:"underlying"`
	Profit     float64 `json:"profit"`
}

// SeriesPoint is one observation of a charting series.
type SeriesPoint struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
}

// Report is the full output of one diagnosis run over a ledger/trade
// file pair. It is recomputed from scratch on every upload and never
// persisted.
type Report struct {
	ReportID      uuid.UUID `json:"reportID"`
	GeneratedAt   time.Time `json:"generatedAt"`
	CurrentEquity float64   `json:"currentEquity"`

	Risk RiskSnapshot `json:"risk"`

	TopProfit []LeaderboardEntry `json:"topProfit"`
	TopLoss   []LeaderboardEntry `json:"topLoss"`

	UserCumulative      []SeriesPoint `json:"userCumulative"`
	BenchmarkCumulative []SeriesPoint `json:"benchmarkCumulative"`
	Drawdown            []SeriesPoint `json:"drawdown"`
}
