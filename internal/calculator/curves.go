package calculator

import (
	"time"

	"tradediag/internal/domain"
	"tradediag/internal/util"
)

// CumulativeReturns compounds the filtered daily returns into a
// growth-of-1 curve for charting.
func CumulativeReturns(returns []domain.DailyReturn) []domain.SeriesPoint {
	curve := make([]domain.SeriesPoint, 0, len(returns))
	cum := 1.0
	for _, r := range returns {
		cum *= 1 + r.Filtered
		curve = append(curve, domain.SeriesPoint{Date: r.Date, Value: cum})
	}
	return curve
}

// BenchmarkCumulative compounds the benchmark's daily returns from
// the first ledger day onward, so the two curves share an x-axis.
func BenchmarkCumulative(returns []domain.BenchmarkReturn, from time.Time) []domain.SeriesPoint {
	from = util.NormalizeDay(from)
	curve := []domain.SeriesPoint{}
	cum := 1.0
	for _, r := range returns {
		if !util.DateLte(from, r.Date) {
			continue
		}
		cum *= 1 + r.Return
		curve = append(curve, domain.SeriesPoint{Date: r.Date, Value: cum})
	}
	return curve
}
