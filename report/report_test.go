package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradehabit/correlation"
)

func sampleRun() *Run {
	return &Run{
		Generated:  time.Date(2024, 4, 15, 10, 30, 0, 0, time.UTC),
		TradeCount: 40,
		HabitCount: 3,
		Limit:      3,
		MinPerSide: 3,
		Correlations: []correlation.HabitCorrelation{
			{
				HabitID:            "exercise",
				HabitLabel:         "Exercise",
				HabitEmoji:         "E",
				WithHabit:          correlation.PartitionStats{Count: 10, WinRate: 70, AvgPnL: 120},
				WithoutHabit:       correlation.PartitionStats{Count: 10, WinRate: 40, AvgPnL: -30},
				WinRateImprovement: 30,
				AvgPnLImprovement:  150,
				Confidence:         67,
				SampleSize:         20,
				PrimaryInsight:     `Average P&L is +$120 per trade on days with "Exercise" vs -$30 without`,
				SecondaryInsights:  []string{"70% win rate vs 40% without"},
			},
		},
	}
}

func TestRenderOrg(t *testing.T) {
	t.Parallel()

	out, err := RenderOrg(sampleRun())
	require.NoError(t, err)

	assert.Contains(t, out, "* HABIT CORRELATIONS [2024-04-15 Mon 10:30]")
	assert.Contains(t, out, ":HABIT_ID:    exercise")
	assert.Contains(t, out, ":CONFIDENCE:  67")
	assert.Contains(t, out, ":WIN_RATE:    70.0 vs 40.0")
	assert.Contains(t, out, `Average P&L is +$120 per trade on days with "Exercise" vs -$30 without`)
	assert.Contains(t, out, "- 70% win rate vs 40% without")
}

func TestRenderOrgEmpty(t *testing.T) {
	t.Parallel()

	r := sampleRun()
	r.Correlations = nil

	out, err := RenderOrg(r)
	require.NoError(t, err)
	assert.Contains(t, out, "No habit has enough data")
	assert.Contains(t, out, ":RESULTS:      0")
}

func TestRenderMarkdown(t *testing.T) {
	t.Parallel()

	out := RenderMarkdown(sampleRun())

	assert.Contains(t, out, "# Habit Correlation Report")
	assert.Contains(t, out, "| 1 | E Exercise | 70.0% / 40.0% | 120.00 / -30.00 | 67 | 20 |")
	assert.Contains(t, out, "## 1. E Exercise")
}

func TestRenderDeterministic(t *testing.T) {
	t.Parallel()

	a, err := RenderOrg(sampleRun())
	require.NoError(t, err)
	b, err := RenderOrg(sampleRun())
	require.NoError(t, err)
	assert.Equal(t, a, b)

	assert.Equal(t, RenderMarkdown(sampleRun()), RenderMarkdown(sampleRun()))
}
