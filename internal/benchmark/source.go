package benchmark

import (
	"context"
	"time"

	"tradediag/internal/domain"
)

// Source provides daily closing-price-like observations for a market
// index over [start, end). An empty slice with a nil error means the
// provider had no data for the range; downstream statistics treat
// that as "Beta/Alpha unavailable", not as a failure.
type Source interface {
	DailyCloses(ctx context.Context, symbol string, start, end time.Time) ([]domain.AssetPrice, error)
}
