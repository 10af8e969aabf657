package correlation

import (
	"sort"
	"time"

	"tradehabit/journal"
)

// dayEntry is everything known about one calendar date: which habits were
// completed and which trades were entered.
type dayEntry struct {
	completed map[string]bool
	trades    []journal.TradeRecord
}

// DayIndex joins habit completions and trades by calendar date. Only dates
// with at least one trade are kept; a habit completion on a no-trade day
// contributes nothing to the statistics.
type DayIndex struct {
	days  map[string]*dayEntry
	dates []string // sorted, for deterministic iteration
}

// BuildDayIndex indexes habit-day records and trades by date. Records with
// malformed or missing dates are skipped silently: a bad row should not
// block analysis of the rest of the journal. Duplicate (date, habit) rows
// resolve by OR on Completed.
func BuildDayIndex(habitDays []journal.HabitDay, trades []journal.TradeRecord) *DayIndex {
	ix := &DayIndex{days: make(map[string]*dayEntry)}

	for _, t := range trades {
		date := t.EntryDate()
		if date == "" {
			continue
		}
		e, ok := ix.days[date]
		if !ok {
			e = &dayEntry{completed: make(map[string]bool)}
			ix.days[date] = e
		}
		e.trades = append(e.trades, t)
	}

	for _, hd := range habitDays {
		if !hd.Completed || hd.HabitID == "" {
			continue
		}
		if _, err := time.Parse(journal.DateLayout, hd.Date); err != nil {
			continue
		}
		e, ok := ix.days[hd.Date]
		if !ok {
			// No trades that day; nothing to partition.
			continue
		}
		e.completed[hd.HabitID] = true
	}

	ix.dates = make([]string, 0, len(ix.days))
	for d := range ix.days {
		ix.dates = append(ix.dates, d)
	}
	sort.Strings(ix.dates)

	return ix
}

// TradingDays returns the number of distinct dates with at least one trade.
func (ix *DayIndex) TradingDays() int {
	return len(ix.dates)
}

// Completed reports whether habitID was completed on date.
func (ix *DayIndex) Completed(date, habitID string) bool {
	e, ok := ix.days[date]
	return ok && e.completed[habitID]
}
