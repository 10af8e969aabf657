package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"tradehabit/config"
	"tradehabit/journal"
)

var rootCmd = &cobra.Command{
	Use:   "tradehabit",
	Short: "A trading journal that discovers which habits improve your trading",
	Long: `Tradehabit keeps a journal of trades and daily habit completions, then
analyzes which habits are statistically associated with better trading
outcomes.

It provides tools for:
  - Recording trades and habit completions in a SQLite journal
  - Importing and exporting trades and habit logs as CSV
  - Ranking habit-performance correlations with confidence scores
  - Rendering analysis runs as Org-mode or Markdown reports
  - Serving insights over HTTP for the web client`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

var cfgFile string

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (YAML or JSON; defaults to env/.env)")
}

func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		return config.LoadFromFile(cfgFile)
	}
	return config.LoadEnv()
}

// openStore opens the SQLite journal; commands that mutate the journal
// need it and cannot run against a CSV-only configuration.
func openStore(cfg *config.Config) (*journal.SQLite, error) {
	if cfg.Journal.Type != "sqlite" {
		return nil, fmt.Errorf("this command requires a sqlite journal (journal.type is %q)", cfg.Journal.Type)
	}
	return journal.NewSQLite(cfg.Journal.DBPath)
}

// loadSnapshots reads the three collections the engine consumes, from
// whichever store the config selects. A CSV journal has no habit table;
// the habit list is rebuilt from the distinct IDs in the completion log.
func loadSnapshots(cfg *config.Config) ([]journal.HabitRecord, []journal.HabitDay, []journal.TradeRecord, error) {
	if cfg.Journal.Type == "sqlite" {
		j, err := journal.NewSQLite(cfg.Journal.DBPath)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("open journal: %w", err)
		}
		defer j.Close()

		habits, err := j.ListHabits()
		if err != nil {
			return nil, nil, nil, fmt.Errorf("list habits: %w", err)
		}
		days, err := j.ListHabitDays()
		if err != nil {
			return nil, nil, nil, fmt.Errorf("list habit days: %w", err)
		}
		trades, err := j.ListTrades()
		if err != nil {
			return nil, nil, nil, fmt.Errorf("list trades: %w", err)
		}
		return habits, days, trades, nil
	}

	trades, err := journal.ReadTradesCSV(cfg.Journal.TradesFile)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("read trades: %w", err)
	}
	days, err := journal.ReadHabitDaysCSV(cfg.Journal.HabitDaysFile)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("read habit days: %w", err)
	}

	seen := map[string]bool{}
	var habits []journal.HabitRecord
	for _, d := range days {
		if !seen[d.HabitID] {
			seen[d.HabitID] = true
			habits = append(habits, journal.HabitRecord{HabitID: d.HabitID, Label: d.HabitID})
		}
	}
	sort.Slice(habits, func(i, j int) bool { return habits[i].HabitID < habits[j].HabitID })

	return habits, days, trades, nil
}
