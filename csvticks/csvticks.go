// FILE: csvticks/csvticks.go
// Package csvticks – a CSV-backed ticksim.TickProducer, grounded on the
// teacher's loadCSV/parseTimeFlexible/sortCandles (backtest.go), adapted
// from OHLCV candles to the bid/ask tick rows this engine consumes.
//
// Expected header: time|timestamp, bid, ask (case-insensitive). Time
// accepts RFC3339 or UNIX seconds, same as the teacher's loader.
package csvticks

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/corvidquant/ticksim"
)

// Producer streams ticksim.Tick values from an in-memory, time-sorted
// slice loaded from a CSV file. It satisfies ticksim.TickProducer.
type Producer struct {
	ticks []ticksim.Tick
	pos   int
}

// Load reads a bid/ask CSV file and returns a Producer ready to run.
// Rows with an unparseable time or non-finite bid/ask are skipped, same
// tolerance the teacher's loadCSV applies to malformed candle rows.
func Load(path string) (*Producer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	var out []ticksim.Tick
	var headers []string
	rowIdx := 0

	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if rowIdx == 0 {
			headers = rec
			rowIdx++
			continue
		}
		row := map[string]string{}
		for j, h := range headers {
			k := strings.ToLower(strings.TrimSpace(h))
			if j < len(rec) {
				row[k] = strings.TrimSpace(rec[j])
			}
		}
		ts := first(row, "time", "timestamp")
		bp := first(row, "bid")
		ap := first(row, "ask")
		if ts == "" || bp == "" || ap == "" {
			continue
		}
		tt, err := parseTimeFlexible(ts)
		if err != nil {
			continue
		}
		bid, errB := strconv.ParseFloat(bp, 64)
		ask, errA := strconv.ParseFloat(ap, 64)
		if errB != nil || errA != nil {
			continue
		}
		if math.IsNaN(bid) || math.IsInf(bid, 0) || math.IsNaN(ask) || math.IsInf(ask, 0) {
			continue
		}
		out = append(out, ticksim.NewTick(float64(tt.Unix())+fracSeconds(tt), bid, ask))
		rowIdx++
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp < out[j].Timestamp })
	return &Producer{ticks: out}, nil
}

// fracSeconds returns the sub-second remainder of t as a float, so
// RFC3339 timestamps with fractional seconds survive the float64 round trip.
func fracSeconds(t time.Time) float64 {
	return float64(t.Nanosecond()) / 1e9
}

// parseTimeFlexible supports RFC3339 or UNIX seconds, mirroring the
// teacher's candle time parsing.
func parseTimeFlexible(s string) (time.Time, error) {
	if ts, err := time.Parse(time.RFC3339, s); err == nil {
		return ts, nil
	}
	if sec, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.Unix(sec, 0).UTC(), nil
	}
	return time.Time{}, fmt.Errorf("bad time: %s", s)
}

// first returns the first non-empty value for keys in m.
func first(m map[string]string, keys ...string) string {
	for _, k := range keys {
		if v := m[k]; v != "" {
			return v
		}
	}
	return ""
}

// Next implements ticksim.TickProducer.
func (p *Producer) Next() (ticksim.Tick, bool, error) {
	if p.pos >= len(p.ticks) {
		return ticksim.Tick{}, false, nil
	}
	t := p.ticks[p.pos]
	p.pos++
	return t, true, nil
}

// Len reports the total tick count loaded.
func (p *Producer) Len() int { return len(p.ticks) }
