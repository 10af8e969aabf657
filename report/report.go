// Package report renders the output of a correlation analysis run for
// humans: Org-mode for journal files, Markdown for everything else.
package report

import (
	"time"

	"tradehabit/correlation"
)

// Run captures one analysis invocation and its results.
type Run struct {
	Generated    time.Time
	TradeCount   int
	HabitCount   int
	Limit        int
	MinPerSide   int
	Correlations []correlation.HabitCorrelation
}
