// FILE: csv.go
// Package marketdata — CSV ingestion for bars and backtest rows, grounded
// on the teacher's loadCSV (case-insensitive headers, RFC3339-or-unix-
// seconds time parsing, unknown columns ignored).
package marketdata

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"quantcore/internal/backtest"
	"quantcore/internal/types"
)

func readRows(path string) (headers []string, records [][]string, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	first := true
	for {
		rec, rerr := r.Read()
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			return nil, nil, rerr
		}
		if first {
			headers = rec
			first = false
			continue
		}
		records = append(records, rec)
	}
	return headers, records, nil
}

func asRowMap(headers, rec []string) map[string]string {
	row := make(map[string]string, len(headers))
	for j, h := range headers {
		if j >= len(rec) {
			continue
		}
		row[strings.ToLower(strings.TrimSpace(h))] = strings.TrimSpace(rec[j])
	}
	return row
}

func first(row map[string]string, keys ...string) string {
	for _, k := range keys {
		if v, ok := row[k]; ok && v != "" {
			return v
		}
	}
	return ""
}

func parseTimeFlexible(s string) (time.Time, error) {
	if ts, err := time.Parse(time.RFC3339, s); err == nil {
		return ts, nil
	}
	if sec, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.Unix(sec, 0).UTC(), nil
	}
	return time.Time{}, fmt.Errorf("marketdata: bad time %q", s)
}

func parseFloat(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}

// LoadBars reads an OHLCV CSV with headers time|timestamp, open, high,
// low, close, volume into a chronologically sorted []types.Bar.
func LoadBars(path string) ([]types.Bar, error) {
	headers, records, err := readRows(path)
	if err != nil {
		return nil, err
	}

	var out []types.Bar
	for _, rec := range records {
		row := asRowMap(headers, rec)
		ts := first(row, "time", "timestamp")
		op := first(row, "open")
		cp := first(row, "close")
		if ts == "" || op == "" || cp == "" {
			continue
		}
		tt, terr := parseTimeFlexible(ts)
		if terr != nil {
			continue
		}
		out = append(out, types.Bar{
			TimeNS: tt.UnixNano(),
			Open:   parseFloat(op),
			High:   parseFloat(first(row, "high")),
			Low:    parseFloat(first(row, "low")),
			Close:  parseFloat(cp),
			Volume: parseFloat(first(row, "volume", "vol")),
		})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].TimeNS < out[j].TimeNS })
	return out, nil
}

// LoadBacktestRows reads a market-row CSV with headers time|timestamp,
// bid, ask, bid_size, ask_size, last_price|close, volume, mid|mid_price
// into a chronologically sorted []backtest.Row. A row missing bid/ask but
// carrying a last price or close derives bid == ask == that price, so a
// plain OHLCV file is a valid (zero-spread) input.
func LoadBacktestRows(path string) ([]backtest.Row, error) {
	headers, records, err := readRows(path)
	if err != nil {
		return nil, err
	}

	var out []backtest.Row
	for _, rec := range records {
		row := asRowMap(headers, rec)
		ts := first(row, "time", "timestamp")
		if ts == "" {
			continue
		}
		tt, terr := parseTimeFlexible(ts)
		if terr != nil {
			continue
		}

		last := parseFloat(first(row, "last_price", "last", "close", "price"))
		bid := parseFloat(first(row, "bid", "bid_price"))
		ask := parseFloat(first(row, "ask", "ask_price"))
		if bid <= 0 {
			bid = last
		}
		if ask <= 0 {
			ask = last
		}
		if bid <= 0 || ask <= 0 {
			continue
		}

		out = append(out, backtest.Row{
			TimeNS:    tt.UnixNano(),
			Bid:       bid,
			Ask:       ask,
			BidSize:   parseFloat(first(row, "bid_size", "bidsize")),
			AskSize:   parseFloat(first(row, "ask_size", "asksize")),
			LastPrice: last,
			Volume:    parseFloat(first(row, "volume", "vol")),
			MidPrice:  parseFloat(first(row, "mid", "mid_price")),
		})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].TimeNS < out[j].TimeNS })
	return out, nil
}
