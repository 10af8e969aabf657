package correlation

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradehabit/journal"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()

	e, err := NewEngine(DefaultParams())
	require.NoError(t, err)
	return e
}

// exerciseFixture builds the clear-positive-signal scenario: "Exercise" on
// 10 trading days (70% win rate, +$120 avg) against 10 control days
// (40% win rate, -$30 avg), one trade per day.
func exerciseFixture() ([]journal.HabitRecord, []journal.HabitDay, []journal.TradeRecord) {
	habits := []journal.HabitRecord{{HabitID: "exercise", Label: "Exercise", Emoji: "\U0001F3CB"}}

	habitPnLs := []float64{200, 200, 200, 200, 200, 200, 200, -100, -50, -50}  // 7W/3L, avg +120
	controlPnLs := []float64{100, 100, 100, 100, -200, -100, -100, -100, -100, -100} // 4W/6L, avg -30

	var days []journal.HabitDay
	var trades []journal.TradeRecord
	for i, pnl := range habitPnLs {
		date := fmt.Sprintf("2024-03-%02d", i+1)
		days = append(days, journal.HabitDay{Date: date, HabitID: "exercise", Completed: true})
		trades = append(trades, tradeOn(date, pnl))
	}
	for i, pnl := range controlPnLs {
		trades = append(trades, tradeOn(fmt.Sprintf("2024-03-%02d", i+11), pnl))
	}
	return habits, days, trades
}

func TestFindTopCorrelationsClearPositiveSignal(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t)
	habits, days, trades := exerciseFixture()

	top, err := e.FindTopCorrelations(habits, days, trades, 1)
	require.NoError(t, err)
	require.Len(t, top, 1)

	c := top[0]
	assert.Equal(t, "exercise", c.HabitID)
	assert.InDelta(t, 70, c.WithHabit.WinRate, 1e-9)
	assert.InDelta(t, 40, c.WithoutHabit.WinRate, 1e-9)
	assert.InDelta(t, 30, c.WinRateImprovement, 1e-9)
	assert.InDelta(t, 150, c.AvgPnLImprovement, 1e-9)
	assert.Equal(t, 20, c.SampleSize)
	assert.GreaterOrEqual(t, c.Confidence, DefaultParams().ModerateConfidence)
	assert.Equal(t, `Average P&L is +$120 per trade on days with "Exercise" vs -$30 without`, c.PrimaryInsight)
}

func TestFindTopCorrelationsInvalidLimit(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t)
	habits, days, trades := exerciseFixture()

	for _, limit := range []int{0, -1} {
		_, err := e.FindTopCorrelations(habits, days, trades, limit)
		assert.ErrorIs(t, err, ErrInvalidLimit)
	}
}

func TestFindTopCorrelationsEmptyInputs(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t)

	out, err := e.FindTopCorrelations(nil, nil, nil, 3)
	require.NoError(t, err)
	assert.Empty(t, out)

	habits, days, _ := exerciseFixture()
	out, err = e.FindTopCorrelations(habits, days, nil, 3)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestFindTopCorrelationsGateEnforcement(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t)

	// One huge winner on the only habit day, 50 control trades. The
	// apparent improvement is enormous and must still be excluded.
	habits := []journal.HabitRecord{{HabitID: "lucky", Label: "Lucky socks"}}
	days := []journal.HabitDay{{Date: "2024-03-01", HabitID: "lucky", Completed: true}}
	trades := []journal.TradeRecord{tradeOn("2024-03-01", 5000)}
	for i := 0; i < 50; i++ {
		trades = append(trades, tradeOn(fmt.Sprintf("2024-04-%02d", i%28+1), -10))
	}

	out, err := e.FindTopCorrelations(habits, days, trades, 10)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestFindTopCorrelationsNoSignalRanksBelowSignal(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t)

	habits := []journal.HabitRecord{
		{HabitID: "flat", Label: "Flat"},
		{HabitID: "signal", Label: "Signal"},
	}

	// Ten trading days, one trade each. "flat" splits them into two
	// identical halves; "signal" is completed exactly on the winning days.
	pnls := []float64{100, 100, -100, -100, 0, 100, 100, -100, -100, 0}
	signalDays := map[int]bool{0: true, 1: true, 5: true, 6: true}

	var days []journal.HabitDay
	var trades []journal.TradeRecord
	for i, pnl := range pnls {
		date := fmt.Sprintf("2024-05-%02d", i+1)
		trades = append(trades, tradeOn(date, pnl))
		if i < 5 {
			days = append(days, journal.HabitDay{Date: date, HabitID: "flat", Completed: true})
		}
		if signalDays[i] {
			days = append(days, journal.HabitDay{Date: date, HabitID: "signal", Completed: true})
		}
	}

	out, err := e.FindTopCorrelations(habits, days, trades, 10)
	require.NoError(t, err)
	require.Len(t, out, 2)

	assert.Equal(t, "signal", out[0].HabitID)
	assert.Equal(t, "flat", out[1].HabitID)
	assert.Zero(t, out[1].WinRateImprovement)
	assert.Zero(t, out[1].AvgPnLImprovement)
}

func TestFindTopCorrelationsTieBrokenByHabitID(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t)

	// Two habits completed on exactly the same days produce identical
	// partitions; habit ID decides the order.
	habits := []journal.HabitRecord{
		{HabitID: "b-habit", Label: "B"},
		{HabitID: "a-habit", Label: "A"},
	}
	var days []journal.HabitDay
	var trades []journal.TradeRecord
	for i := 0; i < 5; i++ {
		habitDate := fmt.Sprintf("2024-07-%02d", i+1)
		controlDate := fmt.Sprintf("2024-07-%02d", i+6)
		days = append(days,
			journal.HabitDay{Date: habitDate, HabitID: "a-habit", Completed: true},
			journal.HabitDay{Date: habitDate, HabitID: "b-habit", Completed: true},
		)
		trades = append(trades, tradeOn(habitDate, 100), tradeOn(controlDate, -100))
	}

	out, err := e.FindTopCorrelations(habits, days, trades, 10)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "a-habit", out[0].HabitID)
	assert.Equal(t, "b-habit", out[1].HabitID)
}

func TestFindTopCorrelationsDeterministic(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t)
	habits, days, trades := exerciseFixture()

	first, err := e.FindTopCorrelations(habits, days, trades, 3)
	require.NoError(t, err)
	second, err := e.FindTopCorrelations(habits, days, trades, 3)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestFindTopCorrelationsRankingInvariant(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t)

	// Three habits with different effect sizes and balance.
	habits := []journal.HabitRecord{
		{HabitID: "h1", Label: "H1"},
		{HabitID: "h2", Label: "H2"},
		{HabitID: "h3", Label: "H3"},
	}
	var days []journal.HabitDay
	var trades []journal.TradeRecord

	addDay := func(date, habitID string, pnl float64) {
		if habitID != "" {
			days = append(days, journal.HabitDay{Date: date, HabitID: habitID, Completed: true})
		}
		trades = append(trades, tradeOn(date, pnl))
	}

	for i := 0; i < 8; i++ {
		addDay(fmt.Sprintf("2024-08-%02d", i+1), "h1", 200)
		addDay(fmt.Sprintf("2024-09-%02d", i+1), "h2", 60)
		addDay(fmt.Sprintf("2024-10-%02d", i+1), "h3", 20)
		addDay(fmt.Sprintf("2024-11-%02d", i+1), "", -50)
	}

	out, err := e.FindTopCorrelations(habits, days, trades, 3)
	require.NoError(t, err)
	require.NotEmpty(t, out)

	// No earlier entry may be dominated (lower confidence AND lower
	// effect) by a later one.
	effect := func(c HabitCorrelation) float64 {
		return math.Max(math.Abs(c.WinRateImprovement)/100,
			math.Abs(c.AvgPnLImprovement)/e.Params().PnLScale)
	}
	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			dominated := out[i].Confidence < out[j].Confidence && effect(out[i]) < effect(out[j])
			assert.False(t, dominated, "entry %d dominated by entry %d", i, j)
		}
	}
}

func TestStrongestCorrelation(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t)
	habits, days, trades := exerciseFixture()

	best, err := e.StrongestCorrelation(habits, days, trades)
	require.NoError(t, err)
	require.NotNil(t, best)
	assert.Equal(t, "exercise", best.HabitID)

	none, err := e.StrongestCorrelation(nil, nil, nil)
	require.NoError(t, err)
	assert.Nil(t, none)
}

func TestNewEngineRejectsInvalidParams(t *testing.T) {
	t.Parallel()

	bad := DefaultParams()
	bad.PnLScale = 0

	_, err := NewEngine(bad)
	assert.Error(t, err)
}

func TestSampleSizeAdditivity(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t)
	habits, days, trades := exerciseFixture()

	top, err := e.FindTopCorrelations(habits, days, trades, 1)
	require.NoError(t, err)
	require.Len(t, top, 1)

	c := top[0]
	assert.Equal(t, c.WithHabit.Count+c.WithoutHabit.Count, c.SampleSize)
}
