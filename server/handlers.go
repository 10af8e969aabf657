package server

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"tradehabit/journal"
)

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) getHabits(c *gin.Context) {
	habits, err := s.store.ListHabits()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list habits"})
		return
	}
	if habits == nil {
		habits = []journal.HabitRecord{}
	}
	c.JSON(http.StatusOK, habits)
}

func (s *Server) getInsights(c *gin.Context) {
	limit := s.defaultLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = n
	}

	trades, habits, days, ok := s.loadJournal(c)
	if !ok {
		return
	}

	out, err := s.engine.FindTopCorrelations(habits, days, trades, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "analysis failed"})
		return
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) getTopInsight(c *gin.Context) {
	trades, habits, days, ok := s.loadJournal(c)
	if !ok {
		return
	}

	best, err := s.engine.StrongestCorrelation(habits, days, trades)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "analysis failed"})
		return
	}
	if best == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not enough data for any habit yet"})
		return
	}
	c.JSON(http.StatusOK, best)
}

func (s *Server) getDailyStats(c *gin.Context) {
	trades, _, _, ok := s.loadJournal(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, journal.SummarizeByDay(trades))
}

// loadJournal reads the three snapshots and applies the optional
// from/to date filter to trades. On failure it writes the response
// itself and returns ok=false.
func (s *Server) loadJournal(c *gin.Context) (trades []journal.TradeRecord, habits []journal.HabitRecord, days []journal.HabitDay, ok bool) {
	from, to, err := dateRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, nil, nil, false
	}

	trades, err = s.store.ListTrades()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list trades"})
		return nil, nil, nil, false
	}
	habits, err = s.store.ListHabits()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list habits"})
		return nil, nil, nil, false
	}
	days, err = s.store.ListHabitDays()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list habit days"})
		return nil, nil, nil, false
	}

	if from != "" || to != "" {
		trades = filterTrades(trades, from, to)
	}
	return trades, habits, days, true
}

// dateRange parses the optional from/to query params as YYYY-MM-DD.
func dateRange(c *gin.Context) (from, to string, err error) {
	from = c.Query("from")
	to = c.Query("to")
	for _, d := range []string{from, to} {
		if d == "" {
			continue
		}
		if _, perr := time.Parse(journal.DateLayout, d); perr != nil {
			return "", "", errBadDate
		}
	}
	return from, to, nil
}

var errBadDate = errors.New("invalid date, expected YYYY-MM-DD")

// filterTrades keeps trades whose entry date falls within [from, to].
// YYYY-MM-DD strings compare correctly as plain strings.
func filterTrades(trades []journal.TradeRecord, from, to string) []journal.TradeRecord {
	out := make([]journal.TradeRecord, 0, len(trades))
	for _, t := range trades {
		d := t.EntryDate()
		if d == "" {
			continue
		}
		if from != "" && d < from {
			continue
		}
		if to != "" && d > to {
			continue
		}
		out = append(out, t)
	}
	return out
}
