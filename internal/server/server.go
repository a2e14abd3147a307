// Package server exposes the forecast engine over HTTP for batch and
// service integrations. Evaluations are stateless, so requests can be
// served concurrently without coordination; the only shared state is the
// evaluation counter.
package server

import (
	"net/http"
	"sync"
	"time"

	"uacast/internal/engine"
	"uacast/internal/model"

	"github.com/gin-gonic/gin"
)

// Status is served at /v1/status.
type Status struct {
	StartedAt   time.Time `json:"started_at"`
	UptimeSecs  int64     `json:"uptime_secs"`
	Evaluations int64     `json:"evaluations"`
	LastEvalAt  time.Time `json:"last_eval_at,omitempty"`
}

// Server wraps the engine with an HTTP API.
type Server struct {
	startedAt time.Time

	mu          sync.Mutex
	evaluations int64
	lastEvalAt  time.Time
}

// New returns a server ready to build its router.
func New() *Server {
	return &Server{startedAt: time.Now()}
}

// Router builds the gin router with all routes attached.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/v1/status", s.handleStatus)
	r.POST("/v1/forecast", s.handleForecast)

	return r
}

// ListenAndServe blocks serving the API on addr.
func (s *Server) ListenAndServe(addr string) error {
	return s.Router().Run(addr)
}

func (s *Server) handleStatus(c *gin.Context) {
	s.mu.Lock()
	st := Status{
		StartedAt:   s.startedAt,
		UptimeSecs:  int64(time.Since(s.startedAt).Seconds()),
		Evaluations: s.evaluations,
		LastEvalAt:  s.lastEvalAt,
	}
	s.mu.Unlock()

	c.JSON(http.StatusOK, st)
}

func (s *Server) handleForecast(c *gin.Context) {
	var in model.Inputs
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}

	res := engine.Forecast(in)

	s.mu.Lock()
	s.evaluations++
	s.lastEvalAt = time.Now()
	s.mu.Unlock()

	c.JSON(http.StatusOK, res)
}
