package calculator

import (
	"sort"

	"github.com/shopspring/decimal"

	"tradediag/internal/domain"
)

// Leaderboard sums profit per instrument and returns the n best and n
// worst. Sums use decimal arithmetic so a long trade log doesn't
// accumulate float error. Ties rank by instrument name so repeated
// runs produce the same order.
func Leaderboard(trades []domain.TradeRecord, n int) (top, bottom []domain.LeaderboardEntry) {
	totals := map[string]decimal.Decimal{}
	for _, t := range trades {
		totals[t.Underlying] = totals[t.Underlying].Add(decimal.NewFromFloat(t.Profit))
	}

	entries := make([]domain.LeaderboardEntry, 0, len(totals))
	for underlying, total := range totals {
		entries = append(entries, domain.LeaderboardEntry{
			Underlying: underlying,
			Profit:     total.InexactFloat64(),
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Profit != entries[j].Profit {
			return entries[i].Profit > entries[j].Profit
		}
		return entries[i].Underlying < entries[j].Underlying
	})

	if n > len(entries) {
		n = len(entries)
	}

	top = entries[:n]

	// worst performers, worst first
	bottom = make([]domain.LeaderboardEntry, 0, n)
	for i := len(entries) - 1; i >= len(entries)-n; i-- {
		bottom = append(bottom, entries[i])
	}

	return top, bottom
}
