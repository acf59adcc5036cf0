package calculator

import (
	"math"

	"tradediag/internal/domain"
)

// DailyReturns derives day-over-day percentage changes from the
// deduplicated equity series and applies the cash-flow filter: a day
// whose absolute change reaches threshold is assumed to be a deposit
// or withdrawal, not trading P&L, and its filtered return is zeroed.
//
// This is a heuristic, not a detector. A genuinely huge trading day
// gets zeroed too, and a transfer smaller than the threshold passes
// as return. Callers tune the threshold, they don't fix the filter.
func DailyReturns(equity []domain.EquityRecord, threshold float64) []domain.DailyReturn {
	returns := make([]domain.DailyReturn, 0, len(equity))
	for i, rec := range equity {
		ret := domain.DailyReturn{Date: rec.Date}
		if i > 0 && equity[i-1].Value != 0 {
			ret.Raw = (rec.Value - equity[i-1].Value) / equity[i-1].Value
		}
		if math.Abs(ret.Raw) < threshold {
			ret.Filtered = ret.Raw
		}
		returns = append(returns, ret)
	}
	return returns
}
