package correlation

import (
	"fmt"
	"math"
)

// Insight text is deterministic: identical inputs always produce identical
// strings, so snapshot tests can compare output byte for byte.

// minimum deltas before a secondary comparison is worth stating.
const (
	secondaryWinRateDelta   = 1.0 // percentage points
	secondaryOvertradeDelta = 20.0
)

func composeInsights(c *HabitCorrelation, p Params) {
	pnlEffect := math.Abs(c.AvgPnLImprovement) / p.PnLScale
	wrEffect := math.Abs(c.WinRateImprovement) / 100

	// The larger normalized signal leads; the other becomes a secondary.
	wrPrimary := wrEffect >= pnlEffect

	if wrPrimary {
		c.PrimaryInsight = fmt.Sprintf("Win rate is %.0f%% on days with %q vs %.0f%% without",
			c.WithHabit.WinRate, c.HabitLabel, c.WithoutHabit.WinRate)
	} else {
		c.PrimaryInsight = fmt.Sprintf("Average P&L is %s per trade on days with %q vs %s without",
			money(c.WithHabit.AvgPnL), c.HabitLabel, money(c.WithoutHabit.AvgPnL))
	}

	c.SecondaryInsights = []string{}

	if wrPrimary {
		if c.AvgPnLImprovement != 0 {
			c.SecondaryInsights = append(c.SecondaryInsights,
				fmt.Sprintf("%s avg P&L vs %s without", money(c.WithHabit.AvgPnL), money(c.WithoutHabit.AvgPnL)))
		}
	} else if math.Abs(c.WinRateImprovement) >= secondaryWinRateDelta {
		c.SecondaryInsights = append(c.SecondaryInsights,
			fmt.Sprintf("%.0f%% win rate vs %.0f%% without", c.WithHabit.WinRate, c.WithoutHabit.WinRate))
	}

	switch {
	case c.OvertradeReduction > secondaryOvertradeDelta:
		c.SecondaryInsights = append(c.SecondaryInsights,
			fmt.Sprintf("%.0f%% less overtrading on these days", c.OvertradeReduction))
	case c.WithHabit.OvertradeDays == 0 && c.WithoutHabit.OvertradeDays > 0:
		c.SecondaryInsights = append(c.SecondaryInsights, "You never overtrade on these days")
	}

	if c.SampleSize >= p.LargeSample && len(c.SecondaryInsights) < 3 {
		c.SecondaryInsights = append(c.SecondaryInsights,
			fmt.Sprintf("%s signal across %d trades", strengthLabel(c.Confidence, p), c.SampleSize))
	}
}

// strengthLabel maps a confidence score onto its qualitative band.
func strengthLabel(conf int, p Params) string {
	switch {
	case conf >= p.StrongConfidence:
		return "Strong"
	case conf >= p.ModerateConfidence:
		return "Moderate"
	default:
		return "Weak"
	}
}

// money formats a signed dollar amount the way the insight cards show it:
// +$120, -$30, +$0.
func money(v float64) string {
	if v < 0 {
		return fmt.Sprintf("-$%.0f", -v)
	}
	return fmt.Sprintf("+$%.0f", v)
}
