package correlation

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"tradehabit/journal"
)

// ErrInvalidLimit reports a caller contract violation: the requested
// top-N must be positive.
var ErrInvalidLimit = errors.New("limit must be positive")

// HabitCorrelation is the engine's output unit: one habit's measured
// association with trading outcomes, plus the rendered insight text.
// Constructed fresh per analysis call and never mutated afterwards.
type HabitCorrelation struct {
	HabitID    string `json:"habitId"`
	HabitLabel string `json:"habitLabel"`
	HabitEmoji string `json:"habitEmoji"`

	WithHabit    PartitionStats `json:"withHabit"`
	WithoutHabit PartitionStats `json:"withoutHabit"`

	WinRateImprovement float64 `json:"winRateImprovement"` // percentage points
	AvgPnLImprovement  float64 `json:"avgPnLImprovement"`  // dollars per trade
	OvertradeReduction float64 `json:"overtradeReduction"` // percentage points

	Confidence int `json:"confidence"` // 0-100
	SampleSize int `json:"sampleSize"` // trades across both sides

	PrimaryInsight    string   `json:"primaryInsight"`
	SecondaryInsights []string `json:"secondaryInsights"`
}

// Engine discovers which habits are statistically associated with better
// trading outcomes. It holds tuning only; every analysis is a pure
// function of the inputs passed to it, safe to call from any goroutine.
type Engine struct {
	params Params
}

// NewEngine returns an engine with the given tuning, or an error when the
// parameters are inconsistent.
func NewEngine(p Params) (*Engine, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("correlation: invalid params %+v", p)
	}
	return &Engine{params: p}, nil
}

// Params returns the engine's tuning.
func (e *Engine) Params() Params { return e.params }

// FindTopCorrelations analyzes every habit against the trade history and
// returns the strongest associations, best first, at most limit entries.
//
// Habits without enough evidence on both sides of their partition are
// excluded, so the result may be shorter than limit or empty; that is the
// normal "not enough data yet" state, not an error. The only error is the
// caller passing a non-positive limit.
func (e *Engine) FindTopCorrelations(habits []journal.HabitRecord, habitDays []journal.HabitDay, trades []journal.TradeRecord, limit int) ([]HabitCorrelation, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("correlation: %w (got %d)", ErrInvalidLimit, limit)
	}

	ix := BuildDayIndex(habitDays, trades)

	results := make([]HabitCorrelation, 0, len(habits))
	for _, h := range habits {
		if c, ok := e.analyze(h, ix); ok {
			results = append(results, c)
		}
	}

	// Best first; habit ID breaks ties so the order is reproducible.
	sort.SliceStable(results, func(i, j int) bool {
		si, sj := e.rankScore(results[i]), e.rankScore(results[j])
		if si != sj {
			return si > sj
		}
		return results[i].HabitID < results[j].HabitID
	})

	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

// StrongestCorrelation returns the single best association, or nil when no
// habit has enough data to qualify.
func (e *Engine) StrongestCorrelation(habits []journal.HabitRecord, habitDays []journal.HabitDay, trades []journal.TradeRecord) (*HabitCorrelation, error) {
	top, err := e.FindTopCorrelations(habits, habitDays, trades, 1)
	if err != nil {
		return nil, err
	}
	if len(top) == 0 {
		return nil, nil
	}
	return &top[0], nil
}

// analyze runs the partition -> statistics -> confidence -> insight chain
// for one habit. ok is false when the habit fails the per-side sample gate.
func (e *Engine) analyze(h journal.HabitRecord, ix *DayIndex) (HabitCorrelation, bool) {
	p := e.params

	part := ix.Partition(h.HabitID)
	with := Stats(part.HabitTrades, p.OvertradePerDay)
	without := Stats(part.ControlTrades, p.OvertradePerDay)

	if with.Count < p.MinPerSide || without.Count < p.MinPerSide {
		return HabitCorrelation{}, false
	}

	c := HabitCorrelation{
		HabitID:            h.HabitID,
		HabitLabel:         h.Label,
		HabitEmoji:         h.Emoji,
		WithHabit:          with,
		WithoutHabit:       without,
		WinRateImprovement: with.WinRate - without.WinRate,
		AvgPnLImprovement:  with.AvgPnL - without.AvgPnL,
		OvertradeReduction: without.overtradeRate() - with.overtradeRate(),
		Confidence:         confidence(with, without, p),
		SampleSize:         with.Count + without.Count,
	}
	composeInsights(&c, p)

	return c, true
}

// rankScore orders results. Confidence multiplies the normalized effect so
// a large but thinly evidenced effect cannot outrank a smaller one backed
// by real data. Monotone in both confidence and effect magnitude.
func (e *Engine) rankScore(c HabitCorrelation) float64 {
	effect := math.Max(
		math.Abs(c.WinRateImprovement)/100,
		math.Abs(c.AvgPnLImprovement)/e.params.PnLScale,
	)
	return float64(c.Confidence) * effect
}
