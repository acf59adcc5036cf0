package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"tradediag/internal/benchmark"
	"tradediag/internal/calculator"
	"tradediag/internal/domain"
	"tradediag/internal/ingest"
	"tradediag/internal/logger"
)

// Config carries every tunable of the pipeline. The observed exports
// vary a lot in quality, so nothing here is derived from the data.
type Config struct {
	// BenchmarkSymbol is the index the account is regressed against.
	BenchmarkSymbol string

	// CashFlowThreshold: a daily change at or above this fraction is
	// treated as a deposit/withdrawal and zeroed out of the filtered
	// return series.
	CashFlowThreshold float64

	// MinSamples is the fewest aligned observations accepted before
	// Beta, Alpha and Sharpe report their 0 sentinel.
	MinSamples int

	// RiskFreeRate is the annual risk-free rate used by Sharpe.
	RiskFreeRate float64

	// VolatilityEpsilon is the annualized-volatility floor below
	// which Sharpe reports 0 instead of dividing by almost nothing.
	VolatilityEpsilon float64

	// LeaderboardSize is N for the top/bottom-N profit tables.
	LeaderboardSize int
}

func DefaultConfig() Config {
	return Config{
		BenchmarkSymbol:   "^TWII",
		CashFlowThreshold: 0.30,
		MinSamples:        3,
		RiskFreeRate:      0.01,
		VolatilityEpsilon: 0.001,
		LeaderboardSize:   5,
	}
}

// DiagnosisService runs the whole pipeline for one upload pair:
// ingest, cash-flow filter, benchmark alignment, risk statistics,
// leaderboard. It holds no state between runs besides whatever cache
// the benchmark Source carries.
type DiagnosisService struct {
	Benchmark benchmark.Source
	Config    Config
}

func (s DiagnosisService) Run(ctx context.Context, ledger, trades io.Reader) (*domain.Report, error) {
	equity, err := ingest.LoadLedger(ledger)
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger: %w", err)
	}
	if len(equity) == 0 {
		return nil, fmt.Errorf("ledger contains no usable rows")
	}

	tradeRecords, err := ingest.LoadTrades(trades)
	if err != nil {
		return nil, fmt.Errorf("failed to load trades: %w", err)
	}

	returns := calculator.DailyReturns(equity, s.Config.CashFlowThreshold)

	start := equity[0].Date
	// one extra day so the provider's [start, end) covers the last ledger day
	end := equity[len(equity)-1].Date.AddDate(0, 0, 1)
	marketReturns := s.marketReturns(ctx, start, end)

	aligned := benchmark.Align(returns, marketReturns)
	beta, alpha := calculator.BetaAlpha(aligned, s.Config.MinSamples)
	sharpe := calculator.SharpeRatio(returns, s.Config.RiskFreeRate, s.Config.VolatilityEpsilon, s.Config.MinSamples)
	mdd := calculator.MaxDrawdown(equity)

	top, bottom := calculator.Leaderboard(tradeRecords, s.Config.LeaderboardSize)

	return &domain.Report{
		ReportID:      uuid.New(),
		GeneratedAt:   time.Now().UTC(),
		CurrentEquity: equity[len(equity)-1].Value,
		Risk: domain.RiskSnapshot{
			Beta:        beta,
			Alpha:       alpha,
			SharpeRatio: sharpe,
			MaxDrawdown: mdd,
		},
		TopProfit:           top,
		TopLoss:             bottom,
		UserCumulative:      calculator.CumulativeReturns(returns),
		BenchmarkCumulative: calculator.BenchmarkCumulative(marketReturns, start),
		Drawdown:            calculator.DrawdownCurve(equity),
	}, nil
}

// marketReturns fetches and converts the benchmark series. A fetch
// failure degrades to an empty series - the report still renders,
// with Beta and Alpha at their sentinel - rather than aborting.
func (s DiagnosisService) marketReturns(ctx context.Context, start, end time.Time) []domain.BenchmarkReturn {
	prices, err := s.Benchmark.DailyCloses(ctx, s.Config.BenchmarkSymbol, start, end)
	if err != nil {
		logger.FromContext(ctx).Warnf("benchmark fetch failed, continuing without market data: %s", err.Error())
		return nil
	}
	return benchmark.DailyReturns(prices)
}
