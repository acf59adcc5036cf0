package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func Test_NormalizeDay(t *testing.T) {
	ts := time.Date(2024, 3, 5, 14, 30, 12, 999, time.UTC)
	require.Equal(t, NewDate(2024, 3, 5), NormalizeDay(ts))
}

func Test_DateLte(t *testing.T) {
	require.True(t, DateLte(NewDate(2024, 3, 1), NewDate(2024, 3, 1)))
	require.True(t, DateLte(NewDate(2024, 3, 1), NewDate(2024, 3, 2)))
	require.False(t, DateLte(NewDate(2024, 3, 2), NewDate(2024, 3, 1)))
}
