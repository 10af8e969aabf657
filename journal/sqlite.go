package journal

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

type SQLite struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		return nil, err
	}

	return &SQLite{db: db}, nil
}

func (j *SQLite) RecordTrade(t TradeRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO trades
		(trade_id, instrument, direction, units, entry_price, exit_price, entry_time, exit_time, pnl, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.TradeID, t.Instrument, t.Direction, t.Units, t.EntryPrice,
		t.ExitPrice, t.EntryTime, t.ExitTime, t.PnL, t.Notes,
	)
	return err
}

func (j *SQLite) RecordHabit(h HabitRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO habits (habit_id, label, emoji)
		VALUES (?, ?, ?)
		ON CONFLICT(habit_id) DO UPDATE SET label = excluded.label, emoji = excluded.emoji`,
		h.HabitID, h.Label, h.Emoji,
	)
	return err
}

// RecordHabitDay upserts one completion row. A later row for the same
// (date, habit) never clears a completion: completed is OR-ed, matching
// how the engine resolves duplicate records.
func (j *SQLite) RecordHabitDay(d HabitDay) error {
	_, err := j.db.Exec(`
		INSERT INTO habit_days (date, habit_id, completed)
		VALUES (?, ?, ?)
		ON CONFLICT(date, habit_id) DO UPDATE SET completed = MAX(completed, excluded.completed)`,
		d.Date, d.HabitID, boolToInt(d.Completed),
	)
	return err
}

func (j *SQLite) Close() error {
	return j.db.Close()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
