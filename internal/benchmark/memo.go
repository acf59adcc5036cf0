package benchmark

import (
	"context"
	"sync"
	"time"

	"tradediag/internal/domain"
)

type memoKey struct {
	symbol string
	start  string
	end    string
}

// Memo wraps a Source and caches results by (symbol, start, end).
// Historical prices for a closed range are immutable, so entries are
// never invalidated. Errors are not cached; a failed fetch retries on
// the next call.
type Memo struct {
	source Source

	mu    sync.Mutex
	cache map[memoKey][]domain.AssetPrice
}

func NewMemo(source Source) *Memo {
	return &Memo{
		source: source,
		cache:  map[memoKey][]domain.AssetPrice{},
	}
}

func (m *Memo) DailyCloses(ctx context.Context, symbol string, start, end time.Time) ([]domain.AssetPrice, error) {
	key := memoKey{
		symbol: symbol,
		start:  start.Format(time.DateOnly),
		end:    end.Format(time.DateOnly),
	}

	m.mu.Lock()
	cached, ok := m.cache[key]
	m.mu.Unlock()
	if ok {
		return cached, nil
	}

	prices, err := m.source.DailyCloses(ctx, symbol, start, end)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	if m.cache == nil {
		m.cache = map[memoKey][]domain.AssetPrice{}
	}
	m.cache[key] = prices
	m.mu.Unlock()

	return prices, nil
}
