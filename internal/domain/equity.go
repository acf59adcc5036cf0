package domain

import "time"

// EquityRecord is one deduplicated ledger entry: the account's total
// net value at the end of a calendar day.
type EquityRecord struct {
	Date  time.Time
	Value float64
}

// DailyReturn is the percentage change of account equity on a given
// day. Raw is the unfiltered change; Filtered is zeroed when the raw
// change looks like a deposit or withdrawal rather than trading P&L.
type DailyReturn struct {
	Date     time.Time
	Raw      float64
	Filtered float64
}

// TradeRecord is one row of the trade-detail file.
type TradeRecord struct {
	Underlying string
	Profit     float64
}

type AssetPrice struct {
	Symbol string
	Price  float64
	Date   time.Time
}

// BenchmarkReturn is a daily percentage change of the reference index.
type BenchmarkReturn struct {
	Date   time.Time
	Return float64
}

// AlignedPoint pairs the user's filtered return with the benchmark's
// return on a day both series cover.
type AlignedPoint struct {
	Date   time.Time
	User   float64
	Market float64
}
