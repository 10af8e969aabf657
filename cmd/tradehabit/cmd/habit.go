package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"tradehabit/journal"
	"tradehabit/pkg/id"
)

var habitCmd = &cobra.Command{
	Use:   "habit",
	Short: "Manage habits and daily completions",
	Long: `Create habits and log daily completions.

Examples:
  tradehabit habit add "Morning exercise" --emoji X
  tradehabit habit log <habit-id>
  tradehabit habit log <habit-id> --date 2024-04-10 --missed
  tradehabit habit list`,
}

var habitAddCmd = &cobra.Command{
	Use:   "add <label>",
	Short: "Create a new habit",
	Args:  cobra.ExactArgs(1),
	RunE:  runHabitAdd,
}

var habitLogCmd = &cobra.Command{
	Use:   "log <habit-id>",
	Short: "Log a habit completion for a day",
	Args:  cobra.ExactArgs(1),
	RunE:  runHabitLog,
}

var habitListCmd = &cobra.Command{
	Use:   "list",
	Short: "List habits",
	Args:  cobra.NoArgs,
	RunE:  runHabitList,
}

var (
	habitEmoji   string
	habitLogDate string
	habitMissed  bool
)

func init() {
	rootCmd.AddCommand(habitCmd)
	habitCmd.AddCommand(habitAddCmd)
	habitCmd.AddCommand(habitLogCmd)
	habitCmd.AddCommand(habitListCmd)

	habitAddCmd.Flags().StringVar(&habitEmoji, "emoji", "", "emoji shown next to the habit")
	habitLogCmd.Flags().StringVar(&habitLogDate, "date", "", "day to log (YYYY-MM-DD, default today)")
	habitLogCmd.Flags().BoolVar(&habitMissed, "missed", false, "log the habit as not completed")
}

func runHabitAdd(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	j, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer j.Close()

	h := journal.HabitRecord{
		HabitID: id.New(),
		Label:   args[0],
		Emoji:   habitEmoji,
	}
	if err := j.RecordHabit(h); err != nil {
		return fmt.Errorf("record habit: %w", err)
	}

	fmt.Printf("Added habit %s (%s)\n", h.Label, h.HabitID)
	return nil
}

func runHabitLog(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	date := habitLogDate
	if date == "" {
		date = time.Now().Format(journal.DateLayout)
	} else if _, err := time.Parse(journal.DateLayout, date); err != nil {
		return fmt.Errorf("date: %w", err)
	}

	j, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer j.Close()

	d := journal.HabitDay{Date: date, HabitID: args[0], Completed: !habitMissed}
	if err := j.RecordHabitDay(d); err != nil {
		return fmt.Errorf("record habit day: %w", err)
	}

	state := "completed"
	if habitMissed {
		state = "missed"
	}
	fmt.Printf("Logged %s as %s on %s\n", d.HabitID, state, d.Date)
	return nil
}

func runHabitList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	j, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer j.Close()

	habits, err := j.ListHabits()
	if err != nil {
		return fmt.Errorf("list habits: %w", err)
	}
	if len(habits) == 0 {
		fmt.Println("No habits yet. Create one with: tradehabit habit add <label>")
		return nil
	}
	for _, h := range habits {
		fmt.Printf("%s  %s %s\n", h.HabitID, h.Emoji, h.Label)
	}
	return nil
}
