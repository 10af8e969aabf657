// Package server exposes the journal and the correlation engine over HTTP
// for the web client. Entitlement gating (how many insights a tier may
// see) stays with the caller; the API only honors the requested limit.
package server

import (
	"github.com/gin-gonic/gin"

	"tradehabit/correlation"
	"tradehabit/journal"
)

// Store is the read surface the API needs from the journal.
type Store interface {
	ListTrades() ([]journal.TradeRecord, error)
	ListHabits() ([]journal.HabitRecord, error)
	ListHabitDays() ([]journal.HabitDay, error)
}

type Server struct {
	store        Store
	engine       *correlation.Engine
	defaultLimit int
	router       *gin.Engine
}

// New wires the API routes. mode is a gin mode ("debug" or "release");
// defaultLimit is the top-N used when a request does not specify one.
func New(store Store, engine *correlation.Engine, defaultLimit int, mode string) *Server {
	gin.SetMode(mode)

	s := &Server{
		store:        store,
		engine:       engine,
		defaultLimit: defaultLimit,
		router:       gin.New(),
	}
	s.router.Use(gin.Logger(), gin.Recovery())
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.router.GET("/healthz", s.health)

	v1 := s.router.Group("/api/v1")
	v1.GET("/habits", s.getHabits)
	v1.GET("/insights", s.getInsights)
	v1.GET("/insights/top", s.getTopInsight)
	v1.GET("/stats/daily", s.getDailyStats)
}

// Router returns the underlying gin engine, mainly for tests.
func (s *Server) Router() *gin.Engine { return s.router }

// Run serves the API until the listener fails.
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}
