package calculator

import (
	"math"

	"github.com/montanaflynn/stats"

	"tradediag/internal/domain"
)

// TradingDaysPerYear is the annualization factor for daily statistics.
const TradingDaysPerYear = 252

// BetaAlpha regresses the user's filtered daily returns against the
// benchmark's. Beta is population covariance over population variance;
// Alpha is the annualized mean return left unexplained by Beta. Both
// fall back to 0 when the aligned series is shorter than minSamples or
// the market shows no variance - the contract is "always produce a
// number", never an error the display layer has to special-case.
func BetaAlpha(aligned []domain.AlignedPoint, minSamples int) (float64, float64) {
	if len(aligned) < minSamples {
		return 0, 0
	}

	user := make([]float64, len(aligned))
	market := make([]float64, len(aligned))
	for i, p := range aligned {
		user[i] = p.User
		market[i] = p.Market
	}

	cov, err := stats.CovariancePopulation(user, market)
	if err != nil {
		return 0, 0
	}
	marketVar, err := stats.PopulationVariance(market)
	if err != nil || marketVar == 0 {
		return 0, 0
	}

	beta := cov / marketVar

	userMean, err := stats.Mean(user)
	if err != nil {
		return 0, 0
	}
	marketMean, err := stats.Mean(market)
	if err != nil {
		return 0, 0
	}
	alpha := (userMean - beta*marketMean) * TradingDaysPerYear

	return beta, alpha
}

// SharpeRatio annualizes the mean filtered daily return in excess of
// the risk-free rate, per unit of annualized volatility. A series
// shorter than minSamples, or one so flat that annualized volatility
// sits below epsilon, yields 0 instead of a division blow-up.
func SharpeRatio(returns []domain.DailyReturn, riskFreeRate, epsilon float64, minSamples int) float64 {
	if len(returns) < minSamples {
		return 0
	}

	filtered := make([]float64, len(returns))
	for i, r := range returns {
		filtered[i] = r.Filtered
	}

	stdev, err := stats.StandardDeviationSample(filtered)
	if err != nil {
		return 0
	}
	vol := stdev * math.Sqrt(TradingDaysPerYear)
	if vol <= epsilon {
		return 0
	}

	mean, err := stats.Mean(filtered)
	if err != nil {
		return 0
	}

	return (mean*TradingDaysPerYear - riskFreeRate) / vol
}

// DrawdownCurve computes, for every day, how far equity sits below
// its running peak. It works on the raw equity curve on purpose:
// deposits and withdrawals are part of true drawdown exposure, unlike
// the filtered returns used for Beta and Sharpe.
func DrawdownCurve(equity []domain.EquityRecord) []domain.SeriesPoint {
	curve := make([]domain.SeriesPoint, 0, len(equity))
	runningMax := 0.0
	for _, rec := range equity {
		if rec.Value > runningMax {
			runningMax = rec.Value
		}
		point := domain.SeriesPoint{Date: rec.Date}
		if runningMax != 0 {
			point.Value = (rec.Value - runningMax) / runningMax
		}
		curve = append(curve, point)
	}
	return curve
}

// MaxDrawdown is the deepest point of the drawdown curve, a
// non-positive fraction. 0 means equity never closed below a peak.
func MaxDrawdown(equity []domain.EquityRecord) float64 {
	mdd := 0.0
	for _, point := range DrawdownCurve(equity) {
		if point.Value < mdd {
			mdd = point.Value
		}
	}
	return mdd
}
