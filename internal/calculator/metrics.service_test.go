package calculator

import (
	"testing"

	"github.com/stretchr/testify/require"

	"tradediag/internal/domain"
	"tradediag/internal/util"
)

func testEquity() []domain.EquityRecord {
	return []domain.EquityRecord{
		{Date: util.NewDate(2024, 3, 1), Value: 100},
		{Date: util.NewDate(2024, 3, 2), Value: 150},
		{Date: util.NewDate(2024, 3, 3), Value: 140},
	}
}

func Test_DailyReturns(t *testing.T) {
	returns := DailyReturns(testEquity(), 0.3)
	require.Len(t, returns, 3)

	require.Equal(t, 0.0, returns[0].Raw)
	require.InDelta(t, 0.5, returns[1].Raw, 1e-9)
	require.InDelta(t, -0.0667, returns[2].Raw, 1e-3)

	// the +50% day is a deposit per the filter; the -6.67% day is not
	require.Equal(t, 0.0, returns[1].Filtered)
	require.InDelta(t, -0.0667, returns[2].Filtered, 1e-3)
}

func Test_DailyReturns_thresholdStrict(t *testing.T) {
	equity := []domain.EquityRecord{
		{Date: util.NewDate(2024, 3, 1), Value: 100},
		{Date: util.NewDate(2024, 3, 2), Value: 130}, // exactly +30%
		{Date: util.NewDate(2024, 3, 3), Value: 91},  // exactly -30%
	}
	returns := DailyReturns(equity, 0.3)
	for _, r := range returns {
		if r.Filtered != 0 {
			require.Less(t, r.Filtered, 0.3)
			require.Greater(t, r.Filtered, -0.3)
		}
	}
	require.Equal(t, 0.0, returns[1].Filtered)
	require.Equal(t, 0.0, returns[2].Filtered)
}

func Test_BetaAlpha(t *testing.T) {
	t.Run("identical series has beta 1, alpha 0", func(t *testing.T) {
		aligned := []domain.AlignedPoint{
			{User: 0.01, Market: 0.01},
			{User: -0.02, Market: -0.02},
			{User: 0.03, Market: 0.03},
		}
		beta, alpha := BetaAlpha(aligned, 3)
		require.InDelta(t, 1.0, beta, 1e-9)
		require.InDelta(t, 0.0, alpha, 1e-9)
	})

	t.Run("levered series has beta 2", func(t *testing.T) {
		aligned := []domain.AlignedPoint{
			{User: 0.02, Market: 0.01},
			{User: -0.04, Market: -0.02},
			{User: 0.06, Market: 0.03},
		}
		beta, alpha := BetaAlpha(aligned, 3)
		require.InDelta(t, 2.0, beta, 1e-9)
		require.InDelta(t, 0.0, alpha, 1e-9)
	})

	t.Run("below minimum sample size", func(t *testing.T) {
		aligned := []domain.AlignedPoint{
			{User: 0.01, Market: 0.02},
			{User: 0.03, Market: 0.01},
		}
		beta, alpha := BetaAlpha(aligned, 3)
		require.Equal(t, 0.0, beta)
		require.Equal(t, 0.0, alpha)
	})

	t.Run("zero market variance", func(t *testing.T) {
		aligned := []domain.AlignedPoint{
			{User: 0.01, Market: 0.02},
			{User: -0.01, Market: 0.02},
			{User: 0.03, Market: 0.02},
		}
		beta, alpha := BetaAlpha(aligned, 3)
		require.Equal(t, 0.0, beta)
		require.Equal(t, 0.0, alpha)
	})
}

func Test_SharpeRatio(t *testing.T) {
	ret := func(vals ...float64) []domain.DailyReturn {
		out := make([]domain.DailyReturn, len(vals))
		for i, v := range vals {
			out[i].Filtered = v
		}
		return out
	}

	t.Run("known series", func(t *testing.T) {
		sharpe := SharpeRatio(ret(0.01, -0.005, 0.02, 0.0, 0.015), 0.01, 0.001, 3)
		require.InDelta(t, 12.188, sharpe, 0.01)
	})

	t.Run("flat series yields sentinel", func(t *testing.T) {
		sharpe := SharpeRatio(ret(0.001, 0.001, 0.001, 0.001), 0.01, 0.001, 3)
		require.Equal(t, 0.0, sharpe)
	})

	t.Run("below minimum sample size", func(t *testing.T) {
		sharpe := SharpeRatio(ret(0.01, 0.02), 0.01, 0.001, 3)
		require.Equal(t, 0.0, sharpe)
	})
}

func Test_MaxDrawdown(t *testing.T) {
	t.Run("scenario", func(t *testing.T) {
		require.InDelta(t, -0.0667, MaxDrawdown(testEquity()), 1e-3)
	})

	t.Run("monotonic equity never draws down", func(t *testing.T) {
		equity := []domain.EquityRecord{
			{Date: util.NewDate(2024, 3, 1), Value: 100},
			{Date: util.NewDate(2024, 3, 2), Value: 110},
			{Date: util.NewDate(2024, 3, 3), Value: 120},
		}
		require.Equal(t, 0.0, MaxDrawdown(equity))
	})

	t.Run("empty series", func(t *testing.T) {
		require.Equal(t, 0.0, MaxDrawdown(nil))
	})
}

func Test_DrawdownCurve(t *testing.T) {
	curve := DrawdownCurve(testEquity())
	require.Len(t, curve, 3)

	// drawdown is never positive, and 0 whenever equity is at its peak
	require.Equal(t, 0.0, curve[0].Value)
	require.Equal(t, 0.0, curve[1].Value)
	require.InDelta(t, -0.0667, curve[2].Value, 1e-3)
	for _, p := range curve {
		require.LessOrEqual(t, p.Value, 0.0)
	}
}
