package journal

import "sort"

// DailySummary is one calendar day's trade rollup, used by the stats views.
type DailySummary struct {
	Date   string  `json:"date"`
	Trades int     `json:"trades"`
	Wins   int     `json:"wins"`
	PnL    float64 `json:"pnl"`
}

// SummarizeByDay rolls trades up by entry date, oldest first. Trades with
// no entry timestamp are skipped.
func SummarizeByDay(trades []TradeRecord) []DailySummary {
	byDate := make(map[string]*DailySummary)
	for _, t := range trades {
		date := t.EntryDate()
		if date == "" {
			continue
		}
		s, ok := byDate[date]
		if !ok {
			s = &DailySummary{Date: date}
			byDate[date] = s
		}
		s.Trades++
		if t.PnL > 0 {
			s.Wins++
		}
		s.PnL += t.PnL
	}

	out := make([]DailySummary, 0, len(byDate))
	for _, s := range byDate {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}
