package benchmark

import (
	"context"
	"fmt"
	"time"

	finance "github.com/piquette/finance-go"
	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
	"github.com/shopspring/decimal"

	"tradediag/internal/domain"
	"tradediag/internal/util"
)

// YahooSource fetches daily index bars from Yahoo Finance.
type YahooSource struct{}

func (YahooSource) DailyCloses(ctx context.Context, symbol string, start, end time.Time) ([]domain.AssetPrice, error) {
	params := &chart.Params{
		Start:    datetime.New(&start),
		End:      datetime.New(&end),
		Symbol:   symbol,
		Interval: datetime.OneDay,
	}
	iter := chart.Get(params)

	prices := []domain.AssetPrice{}
	for iter.Next() {
		bar := iter.Bar()
		price, ok := closingPrice(bar)
		if !ok {
			continue
		}
		prices = append(prices, domain.AssetPrice{
			Symbol: symbol,
			Date:   util.NormalizeDay(time.Unix(int64(bar.Timestamp), 0).UTC()),
			Price:  price,
		})
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to get prices for %s: %w", symbol, err)
	}

	return prices, nil
}

// closingPrice picks the closest thing to a close the provider sent.
// Yahoo's schema isn't stable; adjusted close is sometimes absent.
func closingPrice(bar *finance.ChartBar) (float64, bool) {
	for _, candidate := range []decimal.Decimal{bar.AdjClose, bar.Close, bar.Open} {
		if !candidate.IsZero() {
			return candidate.InexactFloat64(), true
		}
	}
	return 0, false
}
