package correlation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tradehabit/journal"
)

func TestStatsBasic(t *testing.T) {
	t.Parallel()

	trades := []journal.TradeRecord{
		tradeOn("2024-04-01", 100),
		tradeOn("2024-04-01", -40),
		tradeOn("2024-04-02", 60),
	}

	s := Stats(trades, 6)

	assert.Equal(t, 3, s.Count)
	assert.InDelta(t, 66.666, s.WinRate, 0.01)
	assert.InDelta(t, 40, s.AvgPnL, 1e-9)
	assert.InDelta(t, 120, s.TotalPnL, 1e-9)
	assert.InDelta(t, 100, s.LargestWin, 1e-9)
	assert.InDelta(t, -40, s.LargestLoss, 1e-9)
	assert.Equal(t, 2, s.TradingDays)
	assert.Equal(t, 0, s.OvertradeDays)
}

func TestStatsEmpty(t *testing.T) {
	t.Parallel()

	s := Stats(nil, 6)

	assert.Equal(t, 0, s.Count)
	assert.Zero(t, s.WinRate)
	assert.Zero(t, s.AvgPnL)
	assert.Zero(t, s.TradingDays)
}

func TestStatsBreakevenDilutesWinRate(t *testing.T) {
	t.Parallel()

	trades := []journal.TradeRecord{
		tradeOn("2024-04-01", 100),
		tradeOn("2024-04-01", 0), // breakeven: not a win, still counted
	}

	s := Stats(trades, 6)

	assert.Equal(t, 2, s.Count)
	assert.InDelta(t, 50, s.WinRate, 1e-9)
}

func TestStatsOvertradeDays(t *testing.T) {
	t.Parallel()

	var trades []journal.TradeRecord
	for i := 0; i < 7; i++ {
		trades = append(trades, tradeOn("2024-04-01", 1))
	}
	trades = append(trades, tradeOn("2024-04-02", 1))

	s := Stats(trades, 6)

	assert.Equal(t, 2, s.TradingDays)
	assert.Equal(t, 1, s.OvertradeDays)
	assert.InDelta(t, 50, s.overtradeRate(), 1e-9)
}
