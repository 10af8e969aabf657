package journal

import (
	"database/sql"
	"fmt"
	"time"
)

const tradeColumns = `trade_id, instrument, direction, units, entry_price, exit_price, entry_time, exit_time, pnl, notes`

// GetTrade returns a single trade record by ID.
func (j *SQLite) GetTrade(tradeID string) (TradeRecord, error) {
	row := j.db.QueryRow(`
		SELECT `+tradeColumns+`
		FROM trades
		WHERE trade_id = ?`, tradeID)

	rec, err := scanTrade(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return TradeRecord{}, fmt.Errorf("trade %q not found", tradeID)
		}
		return TradeRecord{}, err
	}
	return rec, nil
}

// ListTrades returns every trade, oldest first. Trade ID breaks entry-time
// ties so the order is stable.
func (j *SQLite) ListTrades() ([]TradeRecord, error) {
	return j.queryTrades(`
		SELECT ` + tradeColumns + `
		FROM trades
		ORDER BY entry_time ASC, trade_id ASC`)
}

// ListTradesBetween returns trades whose entry_time is within [start, end).
func (j *SQLite) ListTradesBetween(start, end time.Time) ([]TradeRecord, error) {
	return j.queryTrades(`
		SELECT `+tradeColumns+`
		FROM trades
		WHERE entry_time >= ? AND entry_time < ?
		ORDER BY entry_time ASC, trade_id ASC`, start, end)
}

func (j *SQLite) queryTrades(query string, args ...any) ([]TradeRecord, error) {
	rows, err := j.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []TradeRecord
	for rows.Next() {
		rec, err := scanTrade(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTrade(s scanner) (TradeRecord, error) {
	var rec TradeRecord
	err := s.Scan(
		&rec.TradeID,
		&rec.Instrument,
		&rec.Direction,
		&rec.Units,
		&rec.EntryPrice,
		&rec.ExitPrice,
		&rec.EntryTime,
		&rec.ExitTime,
		&rec.PnL,
		&rec.Notes,
	)
	return rec, err
}

// ListHabits returns all habits ordered by label.
func (j *SQLite) ListHabits() ([]HabitRecord, error) {
	rows, err := j.db.Query(`
		SELECT habit_id, label, emoji
		FROM habits
		ORDER BY label ASC, habit_id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []HabitRecord
	for rows.Next() {
		var h HabitRecord
		if err := rows.Scan(&h.HabitID, &h.Label, &h.Emoji); err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListHabitDays returns every completion row ordered by date then habit.
func (j *SQLite) ListHabitDays() ([]HabitDay, error) {
	rows, err := j.db.Query(`
		SELECT date, habit_id, completed
		FROM habit_days
		ORDER BY date ASC, habit_id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []HabitDay
	for rows.Next() {
		var d HabitDay
		var completed int
		if err := rows.Scan(&d.Date, &d.HabitID, &completed); err != nil {
			return nil, err
		}
		d.Completed = completed != 0
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
