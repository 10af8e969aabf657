package journal

import "time"

// DateLayout is the calendar-date format used throughout the journal.
// Habit completions are keyed by date, not timestamp.
const DateLayout = "2006-01-02"

// TradeRecord is one closed trade in the journal. The correlation engine
// only reads EntryTime and PnL; everything else is carried for the journal
// views and exports.
type TradeRecord struct {
	TradeID    string
	Instrument string
	Direction  string // "long" or "short"
	Units      float64
	EntryPrice float64
	ExitPrice  float64
	EntryTime  time.Time
	ExitTime   time.Time
	PnL        float64
	Notes      string
}

// EntryDate returns the trade's calendar date derived from its entry
// timestamp, or "" when the timestamp is unset.
func (t TradeRecord) EntryDate() string {
	if t.EntryTime.IsZero() {
		return ""
	}
	return t.EntryTime.Format(DateLayout)
}

// HabitRecord is user-defined reference data: anything from "gym" to
// "reviewed trading plan".
type HabitRecord struct {
	HabitID string
	Label   string
	Emoji   string
}

// HabitDay records whether a habit was completed on a calendar date.
// At most one row is expected per (date, habit) pair; duplicates are
// tolerated downstream by OR-ing Completed.
type HabitDay struct {
	Date      string // YYYY-MM-DD
	HabitID   string
	Completed bool
}

// Journal is the persistence boundary for trades, habits and habit-day
// completions.
type Journal interface {
	RecordTrade(TradeRecord) error
	RecordHabit(HabitRecord) error
	RecordHabitDay(HabitDay) error
	ListTrades() ([]TradeRecord, error)
	ListHabits() ([]HabitRecord, error)
	ListHabitDays() ([]HabitDay, error)
	Close() error
}
