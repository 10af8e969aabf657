package correlation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tradehabit/journal"
)

func TestPartitionDayGranularity(t *testing.T) {
	t.Parallel()

	trades := []journal.TradeRecord{
		tradeOn("2024-04-01", 100),
		tradeOn("2024-04-01", -40), // same day: must follow its siblings
		tradeOn("2024-04-02", 30),
	}
	days := []journal.HabitDay{
		{Date: "2024-04-01", HabitID: "gym", Completed: true},
	}

	p := BuildDayIndex(days, trades).Partition("gym")

	// All of 2024-04-01 on the habit side, all of 2024-04-02 on control.
	assert.Len(t, p.HabitTrades, 2)
	assert.Len(t, p.ControlTrades, 1)
	assert.Equal(t, 1, p.HabitDays)
	assert.Equal(t, 1, p.ControlDays)
}

func TestPartitionClosedWorld(t *testing.T) {
	t.Parallel()

	trades := []journal.TradeRecord{
		tradeOn("2024-04-01", 100),
		tradeOn("2024-04-02", -20),
	}

	// No habit-day record at all: every trading day is a control day.
	p := BuildDayIndex(nil, trades).Partition("gym")

	assert.Empty(t, p.HabitTrades)
	assert.Len(t, p.ControlTrades, 2)
	assert.Equal(t, 2, p.ControlDays)
}

func TestPartitionCompleteness(t *testing.T) {
	t.Parallel()

	var trades []journal.TradeRecord
	dates := []string{"2024-04-01", "2024-04-02", "2024-04-03", "2024-04-04"}
	for _, d := range dates {
		trades = append(trades, tradeOn(d, 10), tradeOn(d, -5))
	}
	days := []journal.HabitDay{
		{Date: "2024-04-01", HabitID: "gym", Completed: true},
		{Date: "2024-04-03", HabitID: "gym", Completed: true},
	}

	ix := BuildDayIndex(days, trades)
	p := ix.Partition("gym")

	// No trade lost, no trade double counted.
	assert.Equal(t, len(trades), len(p.HabitTrades)+len(p.ControlTrades))
	assert.Equal(t, ix.TradingDays(), p.HabitDays+p.ControlDays)
}
