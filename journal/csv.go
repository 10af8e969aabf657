// journal/csv.go
package journal

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"
)

var tradeHeader = []string{"trade_id", "instrument", "direction", "units", "entry_price", "exit_price", "entry_time", "exit_time", "pnl", "notes"}

var habitDayHeader = []string{"date", "habit_id", "completed"}

// WriteTradesCSV writes trades with a header row.
func WriteTradesCSV(path string, trades []TradeRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(tradeHeader); err != nil {
		return err
	}
	for _, t := range trades {
		err := w.Write([]string{
			t.TradeID,
			t.Instrument,
			t.Direction,
			f64(t.Units),
			f64(t.EntryPrice),
			f64(t.ExitPrice),
			t.EntryTime.Format(time.RFC3339),
			t.ExitTime.Format(time.RFC3339),
			f64(t.PnL),
			t.Notes,
		})
		if err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// ReadTradesCSV loads trades from a file written by WriteTradesCSV or an
// export from another journal with the same columns.
func ReadTradesCSV(path string) ([]TradeRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read trades csv: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	var out []TradeRecord
	for i, row := range rows[1:] { // skip header
		if len(row) != len(tradeHeader) {
			return nil, fmt.Errorf("trades csv row %d: expected %d fields, got %d", i+2, len(tradeHeader), len(row))
		}
		rec := TradeRecord{
			TradeID:    row[0],
			Instrument: row[1],
			Direction:  row[2],
			Notes:      row[9],
		}
		if rec.Units, err = strconv.ParseFloat(row[3], 64); err != nil {
			return nil, fmt.Errorf("trades csv row %d units: %w", i+2, err)
		}
		if rec.EntryPrice, err = strconv.ParseFloat(row[4], 64); err != nil {
			return nil, fmt.Errorf("trades csv row %d entry_price: %w", i+2, err)
		}
		if rec.ExitPrice, err = strconv.ParseFloat(row[5], 64); err != nil {
			return nil, fmt.Errorf("trades csv row %d exit_price: %w", i+2, err)
		}
		if rec.EntryTime, err = time.Parse(time.RFC3339, row[6]); err != nil {
			return nil, fmt.Errorf("trades csv row %d entry_time: %w", i+2, err)
		}
		if rec.ExitTime, err = time.Parse(time.RFC3339, row[7]); err != nil {
			return nil, fmt.Errorf("trades csv row %d exit_time: %w", i+2, err)
		}
		if rec.PnL, err = strconv.ParseFloat(row[8], 64); err != nil {
			return nil, fmt.Errorf("trades csv row %d pnl: %w", i+2, err)
		}
		out = append(out, rec)
	}
	return out, nil
}

// WriteHabitDaysCSV writes completion rows with a header row.
func WriteHabitDaysCSV(path string, days []HabitDay) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(habitDayHeader); err != nil {
		return err
	}
	for _, d := range days {
		completed := "false"
		if d.Completed {
			completed = "true"
		}
		if err := w.Write([]string{d.Date, d.HabitID, completed}); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// ReadHabitDaysCSV loads habit completion rows.
func ReadHabitDaysCSV(path string) ([]HabitDay, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read habit days csv: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	var out []HabitDay
	for i, row := range rows[1:] {
		if len(row) != len(habitDayHeader) {
			return nil, fmt.Errorf("habit days csv row %d: expected %d fields, got %d", i+2, len(habitDayHeader), len(row))
		}
		completed, err := strconv.ParseBool(row[2])
		if err != nil {
			return nil, fmt.Errorf("habit days csv row %d completed: %w", i+2, err)
		}
		out = append(out, HabitDay{Date: row[0], HabitID: row[1], Completed: completed})
	}
	return out, nil
}

func f64(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}
