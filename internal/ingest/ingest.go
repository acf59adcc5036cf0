package ingest

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/gocarina/gocsv"

	"tradediag/internal/domain"
	"tradediag/internal/util"
)

func init() {
	// broker exports pad header cells with whitespace
	gocsv.SetHeaderNormalizer(strings.TrimSpace)
}

var nonNumeric = regexp.MustCompile(`[^0-9.\-]`)

// SanitizeNumber strips everything that isn't a digit, '.' or '-'
// from a numeric cell before parsing, so currency symbols and
// thousands separators don't reject a row. Values that still don't
// parse become 0 - a row is never failed over formatting.
func SanitizeNumber(s string) float64 {
	cleaned := nonNumeric.ReplaceAllString(s, "")
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return v
}

// ParseDay leniently parses any common date representation and
// truncates it to a UTC calendar day. The bool is false when the cell
// isn't a date at all; callers drop those rows.
func ParseDay(s string) (time.Time, bool) {
	t, err := dateparse.ParseAny(strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, false
	}
	return util.NormalizeDay(t), true
}

type ledgerRow struct {
	Date     string `csv:"Date"`
	TotalNet string `csv:"Total Net"`
}

type tradeRow struct {
	Underlying string `csv:"Underlying"`
	Profit     string `csv:"Profit"`
}

func requireColumns(data []byte, required ...string) error {
	reader := csv.NewReader(bytes.NewReader(data))
	header, err := reader.Read()
	if err != nil {
		return fmt.Errorf("failed to read header row: %w", err)
	}

	present := map[string]bool{}
	for _, col := range header {
		present[strings.TrimSpace(col)] = true
	}
	for _, col := range required {
		if !present[col] {
			return fmt.Errorf("missing required column %q", col)
		}
	}
	return nil
}

// LoadLedger parses the equity ledger into a daily series, ascending
// by date, one record per day. When several rows share a day the last
// one in file order wins - intraday snapshots are assumed to be
// appended chronologically. Rows with an unparseable date or an empty
// value cell are dropped.
func LoadLedger(r io.Reader) ([]domain.EquityRecord, error) {
	data, err := DecodeText(r)
	if err != nil {
		return nil, err
	}
	if err := requireColumns(data, "Date", "Total Net"); err != nil {
		return nil, fmt.Errorf("ledger file: %w", err)
	}

	rows := []ledgerRow{}
	if err := gocsv.UnmarshalBytes(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse ledger file: %w", err)
	}

	byDate := map[time.Time]float64{}
	for _, row := range rows {
		day, ok := ParseDay(row.Date)
		if !ok {
			continue
		}
		if strings.TrimSpace(row.TotalNet) == "" {
			continue
		}
		byDate[day] = SanitizeNumber(row.TotalNet)
	}

	records := make([]domain.EquityRecord, 0, len(byDate))
	for day, value := range byDate {
		records = append(records, domain.EquityRecord{Date: day, Value: value})
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].Date.Before(records[j].Date)
	})

	return records, nil
}

// LoadTrades parses the trade-detail file. Rows without an instrument
// identifier are dropped; profit cells get the same sanitization as
// ledger values.
func LoadTrades(r io.Reader) ([]domain.TradeRecord, error) {
	data, err := DecodeText(r)
	if err != nil {
		return nil, err
	}
	if err := requireColumns(data, "Underlying", "Profit"); err != nil {
		return nil, fmt.Errorf("trade file: %w", err)
	}

	rows := []tradeRow{}
	if err := gocsv.UnmarshalBytes(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse trade file: %w", err)
	}

	trades := make([]domain.TradeRecord, 0, len(rows))
	for _, row := range rows {
		underlying := strings.TrimSpace(row.Underlying)
		if underlying == "" {
			continue
		}
		trades = append(trades, domain.TradeRecord{
			Underlying: underlying,
			Profit:     SanitizeNumber(row.Profit),
		})
	}

	return trades, nil
}
