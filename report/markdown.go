package report

import (
	"fmt"
	"strings"
	"time"
)

// RenderMarkdown renders the run as a Markdown string.
func RenderMarkdown(r *Run) string {
	var sb strings.Builder

	sb.WriteString("# Habit Correlation Report\n\n")
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", r.Generated.Format(time.RFC3339)))
	sb.WriteString(fmt.Sprintf("Trades: %d | Habits: %d | Results: %d\n\n",
		r.TradeCount, r.HabitCount, len(r.Correlations)))

	if len(r.Correlations) == 0 {
		sb.WriteString("No habit has enough data on both sides of its partition yet.\n")
		return sb.String()
	}

	sb.WriteString("| # | Habit | Win rate (with/without) | Avg P&L (with/without) | Confidence | Sample |\n")
	sb.WriteString("|---|-------|-------------------------|------------------------|------------|--------|\n")
	for i, c := range r.Correlations {
		sb.WriteString(fmt.Sprintf("| %d | %s %s | %.1f%% / %.1f%% | %.2f / %.2f | %d | %d |\n",
			i+1, c.HabitEmoji, c.HabitLabel,
			c.WithHabit.WinRate, c.WithoutHabit.WinRate,
			c.WithHabit.AvgPnL, c.WithoutHabit.AvgPnL,
			c.Confidence, c.SampleSize))
	}
	sb.WriteString("\n")

	for i, c := range r.Correlations {
		sb.WriteString(fmt.Sprintf("## %d. %s %s\n\n", i+1, c.HabitEmoji, c.HabitLabel))
		sb.WriteString(c.PrimaryInsight + "\n")
		for _, s := range c.SecondaryInsights {
			sb.WriteString(fmt.Sprintf("- %s\n", s))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
