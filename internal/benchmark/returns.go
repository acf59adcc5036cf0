package benchmark

import (
	"sort"
	"time"

	"tradediag/internal/domain"
	"tradediag/internal/util"
)

// DailyReturns converts a closing-price series to day-over-day
// percentage changes. The first observation has no prior value and is
// defined as 0, matching how the ledger's first day is seeded.
func DailyReturns(prices []domain.AssetPrice) []domain.BenchmarkReturn {
	sorted := make([]domain.AssetPrice, len(prices))
	copy(sorted, prices)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	returns := make([]domain.BenchmarkReturn, 0, len(sorted))
	for i, p := range sorted {
		ret := domain.BenchmarkReturn{Date: util.NormalizeDay(p.Date)}
		if i > 0 && sorted[i-1].Price != 0 {
			ret.Return = (p.Price - sorted[i-1].Price) / sorted[i-1].Price
		}
		returns = append(returns, ret)
	}
	return returns
}

// Align inner-joins the user's filtered returns with the benchmark's
// returns on calendar day. Days covered by only one side are dropped,
// so covariance runs on exactly matched observations.
func Align(user []domain.DailyReturn, market []domain.BenchmarkReturn) []domain.AlignedPoint {
	marketByDay := make(map[time.Time]float64, len(market))
	for _, m := range market {
		marketByDay[m.Date] = m.Return
	}

	aligned := []domain.AlignedPoint{}
	for _, u := range user {
		if marketRet, ok := marketByDay[u.Date]; ok {
			aligned = append(aligned, domain.AlignedPoint{
				Date:   u.Date,
				User:   u.Filtered,
				Market: marketRet,
			})
		}
	}
	return aligned
}
