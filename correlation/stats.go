package correlation

import "tradehabit/journal"

// PartitionStats summarizes one side of a partition. WinRate and AvgPnL
// are 0 when Count is 0; callers must check Count before reading them.
type PartitionStats struct {
	Count       int     `json:"count"`
	WinRate     float64 `json:"winRate"` // 0-100
	AvgPnL      float64 `json:"avgPnL"`
	TotalPnL    float64 `json:"totalPnL"`
	LargestWin  float64 `json:"largestWin"`
	LargestLoss float64 `json:"largestLoss"`

	// TradingDays is the number of distinct dates the trades span;
	// OvertradeDays is how many of those exceeded the per-day threshold.
	TradingDays   int `json:"tradingDays"`
	OvertradeDays int `json:"overtradeDays"`
}

// Stats computes partition statistics over a set of trades. A breakeven
// trade (PnL == 0) is neither a win nor a loss but still dilutes the win
// rate, matching how traders read the number.
func Stats(trades []journal.TradeRecord, overtradePerDay int) PartitionStats {
	var s PartitionStats
	s.Count = len(trades)
	if s.Count == 0 {
		return s
	}

	wins := 0
	perDay := make(map[string]int)
	for _, t := range trades {
		pnl := t.PnL
		s.TotalPnL += pnl
		if pnl > 0 {
			wins++
			if pnl > s.LargestWin {
				s.LargestWin = pnl
			}
		}
		if pnl < 0 && pnl < s.LargestLoss {
			s.LargestLoss = pnl
		}
		perDay[t.EntryDate()]++
	}

	s.WinRate = 100 * float64(wins) / float64(s.Count)
	s.AvgPnL = s.TotalPnL / float64(s.Count)
	s.TradingDays = len(perDay)
	for _, n := range perDay {
		if n > overtradePerDay {
			s.OvertradeDays++
		}
	}
	return s
}

// overtradeRate is the percentage of trading days that were overtraded.
func (s PartitionStats) overtradeRate() float64 {
	if s.TradingDays == 0 {
		return 0
	}
	return 100 * float64(s.OvertradeDays) / float64(s.TradingDays)
}
