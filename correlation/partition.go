package correlation

import "tradehabit/journal"

// Partition is the split of all trading days into habit days and control
// days for one habit. The split is at day granularity: every trade on a
// habit day lands in HabitTrades, every trade on a control day in
// ControlTrades. A day is never split between the two sides.
type Partition struct {
	HabitTrades   []journal.TradeRecord
	ControlTrades []journal.TradeRecord
	HabitDays     int
	ControlDays   int
}

// Partition splits the index for one habit. A date with no completion
// record for the habit counts as a control day: absence of a log entry
// means the habit was not done, not that the data is missing.
func (ix *DayIndex) Partition(habitID string) Partition {
	var p Partition
	for _, date := range ix.dates {
		e := ix.days[date]
		if e.completed[habitID] {
			p.HabitTrades = append(p.HabitTrades, e.trades...)
			p.HabitDays++
		} else {
			p.ControlTrades = append(p.ControlTrades, e.trades...)
			p.ControlDays++
		}
	}
	return p
}
