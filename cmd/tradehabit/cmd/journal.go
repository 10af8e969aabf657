package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"tradehabit/journal"
	"tradehabit/pkg/id"
)

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Manage the trade journal",
	Long: `Import, export and list trade journal records.

Examples:
  tradehabit journal import trades.csv
  tradehabit journal export trades.csv
  tradehabit journal list
  tradehabit journal day 2024-04-10`,
}

var journalImportCmd = &cobra.Command{
	Use:   "import <trades.csv>",
	Short: "Import trades from a CSV file",
	Args:  cobra.ExactArgs(1),
	RunE:  runJournalImport,
}

var journalExportCmd = &cobra.Command{
	Use:   "export <trades.csv>",
	Short: "Export all trades to a CSV file",
	Args:  cobra.ExactArgs(1),
	RunE:  runJournalExport,
}

var journalListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all trades",
	Args:  cobra.NoArgs,
	RunE:  runJournalList,
}

var journalDayCmd = &cobra.Command{
	Use:   "day <YYYY-MM-DD>",
	Short: "List trades entered on a specific day",
	Args:  cobra.ExactArgs(1),
	RunE:  runJournalDay,
}

func init() {
	rootCmd.AddCommand(journalCmd)
	journalCmd.AddCommand(journalImportCmd)
	journalCmd.AddCommand(journalExportCmd)
	journalCmd.AddCommand(journalListCmd)
	journalCmd.AddCommand(journalDayCmd)
}

func runJournalImport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	trades, err := journal.ReadTradesCSV(args[0])
	if err != nil {
		return fmt.Errorf("read csv: %w", err)
	}

	j, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer j.Close()

	for i := range trades {
		if trades[i].TradeID == "" {
			trades[i].TradeID = id.New()
		}
		if err := j.RecordTrade(trades[i]); err != nil {
			return fmt.Errorf("record trade %s: %w", trades[i].TradeID, err)
		}
	}

	fmt.Printf("Imported %d trades\n", len(trades))
	return nil
}

func runJournalExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	j, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer j.Close()

	trades, err := j.ListTrades()
	if err != nil {
		return fmt.Errorf("list trades: %w", err)
	}
	if err := journal.WriteTradesCSV(args[0], trades); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}

	fmt.Printf("Exported %d trades to %s\n", len(trades), args[0])
	return nil
}

func runJournalList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	j, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer j.Close()

	trades, err := j.ListTrades()
	if err != nil {
		return fmt.Errorf("list trades: %w", err)
	}
	printTrades(trades)
	return nil
}

func runJournalDay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	day, err := time.ParseInLocation(journal.DateLayout, args[0], time.Local)
	if err != nil {
		return fmt.Errorf("date: %w", err)
	}

	j, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer j.Close()

	trades, err := j.ListTradesBetween(day, day.Add(24*time.Hour))
	if err != nil {
		return fmt.Errorf("query trades: %w", err)
	}
	printTrades(trades)
	return nil
}

func printTrades(trades []journal.TradeRecord) {
	if len(trades) == 0 {
		fmt.Println("No trades.")
		return
	}
	for _, t := range trades {
		fmt.Printf("%s  %-8s %-5s %8.2f  %s\n",
			t.EntryTime.Format("2006-01-02 15:04"), t.Instrument, t.Direction, t.PnL, t.TradeID)
	}
}
