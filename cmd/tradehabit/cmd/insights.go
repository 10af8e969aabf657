package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"tradehabit/correlation"
	"tradehabit/report"
)

var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Analyze habit-performance correlations",
	Long: `Run the correlation analysis over the journal and print the strongest
habit-performance associations.

Examples:
  tradehabit insights
  tradehabit insights --limit 1
  tradehabit insights --format org --out correlations.org`,
	Args: cobra.NoArgs,
	RunE: runInsights,
}

var (
	insightsLimit  int
	insightsFormat string
	insightsOut    string
)

func init() {
	rootCmd.AddCommand(insightsCmd)

	insightsCmd.Flags().IntVarP(&insightsLimit, "limit", "n", 0, "top-N results (default from config)")
	insightsCmd.Flags().StringVarP(&insightsFormat, "format", "f", "text", "output format: text, org or markdown")
	insightsCmd.Flags().StringVarP(&insightsOut, "out", "o", "", "write the report to a file instead of stdout")
}

func runInsights(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	limit := insightsLimit
	if limit == 0 {
		limit = cfg.Analysis.Limit
	}

	engine, err := correlation.NewEngine(cfg.Analysis.Params())
	if err != nil {
		return err
	}

	habits, days, trades, err := loadSnapshots(cfg)
	if err != nil {
		return err
	}

	results, err := engine.FindTopCorrelations(habits, days, trades, limit)
	if err != nil {
		return err
	}

	run := &report.Run{
		Generated:    time.Now(),
		TradeCount:   len(trades),
		HabitCount:   len(habits),
		Limit:        limit,
		MinPerSide:   cfg.Analysis.MinPerSide,
		Correlations: results,
	}

	var out string
	switch insightsFormat {
	case "org":
		if out, err = report.RenderOrg(run); err != nil {
			return err
		}
	case "markdown":
		out = report.RenderMarkdown(run)
	case "text":
		out = renderText(run)
	default:
		return fmt.Errorf("unknown format %q (want text, org or markdown)", insightsFormat)
	}

	if insightsOut != "" {
		return os.WriteFile(insightsOut, []byte(out), 0644)
	}
	fmt.Print(out)
	return nil
}

func renderText(r *report.Run) string {
	if len(r.Correlations) == 0 {
		return "No habit has enough data on both sides of its partition yet.\n"
	}

	out := ""
	for i, c := range r.Correlations {
		out += fmt.Sprintf("%d. %s %s (confidence %d/100, %d trades)\n",
			i+1, c.HabitEmoji, c.HabitLabel, c.Confidence, c.SampleSize)
		out += fmt.Sprintf("   %s\n", c.PrimaryInsight)
		for _, s := range c.SecondaryInsights {
			out += fmt.Sprintf("   - %s\n", s)
		}
	}
	return out
}
