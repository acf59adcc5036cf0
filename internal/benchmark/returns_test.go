package benchmark

import (
	"testing"

	"github.com/stretchr/testify/require"

	"tradediag/internal/domain"
	"tradediag/internal/util"
)

func Test_DailyReturns(t *testing.T) {
	prices := []domain.AssetPrice{
		// out of order on purpose
		{Symbol: "^TWII", Date: util.NewDate(2024, 3, 2), Price: 110},
		{Symbol: "^TWII", Date: util.NewDate(2024, 3, 1), Price: 100},
		{Symbol: "^TWII", Date: util.NewDate(2024, 3, 3), Price: 99},
	}

	returns := DailyReturns(prices)
	require.Len(t, returns, 3)

	require.Equal(t, util.NewDate(2024, 3, 1), returns[0].Date)
	require.Equal(t, 0.0, returns[0].Return)
	require.InDelta(t, 0.1, returns[1].Return, 1e-9)
	require.InDelta(t, -0.1, returns[2].Return, 1e-9)
}

func Test_DailyReturns_empty(t *testing.T) {
	require.Empty(t, DailyReturns(nil))
}

func Test_Align(t *testing.T) {
	user := []domain.DailyReturn{
		{Date: util.NewDate(2024, 3, 1), Filtered: 0.0},
		{Date: util.NewDate(2024, 3, 2), Filtered: 0.01},
		{Date: util.NewDate(2024, 3, 3), Filtered: -0.02},
	}
	market := []domain.BenchmarkReturn{
		{Date: util.NewDate(2024, 3, 2), Return: 0.005},
		{Date: util.NewDate(2024, 3, 3), Return: -0.01},
		{Date: util.NewDate(2024, 3, 4), Return: 0.02},
	}

	aligned := Align(user, market)
	require.Len(t, aligned, 2)

	require.Equal(t, util.NewDate(2024, 3, 2), aligned[0].Date)
	require.Equal(t, 0.01, aligned[0].User)
	require.Equal(t, 0.005, aligned[0].Market)
	require.Equal(t, util.NewDate(2024, 3, 3), aligned[1].Date)
}

func Test_Align_noOverlap(t *testing.T) {
	user := []domain.DailyReturn{{Date: util.NewDate(2024, 3, 1)}}
	market := []domain.BenchmarkReturn{{Date: util.NewDate(2024, 3, 2)}}
	require.Empty(t, Align(user, market))
}
