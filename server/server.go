// Package server exposes a single GridEnvironment session over HTTP.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/zeu5/gridworld/grid"
	"github.com/zeu5/gridworld/logging"
)

type Server struct {
	Addr   string
	server *http.Server
	logger *slog.Logger

	lock *sync.Mutex
	env  *grid.GridEnvironment
}

type stepRequest struct {
	Action *int `json:"action"`
}

type stepResponse struct {
	Observation []int                  `json:"observation"`
	Reward      int                    `json:"reward"`
	Done        bool                   `json:"done"`
	Info        map[string]interface{} `json:"info"`
}

type spacesResponse struct {
	Actions     int   `json:"actions"`
	Low         []int `json:"low"`
	High        []int `json:"high"`
	RewardRange []int `json:"reward_range"`
}

func NewServer(addr string, env *grid.GridEnvironment, logger *slog.Logger) *Server {
	if logger == nil {
		logger = logging.Discard()
	}
	s := &Server{
		Addr:   addr,
		logger: logger,
		lock:   new(sync.Mutex),
		env:    env,
	}

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(s.logRequests)
	r.POST("/reset", s.handleReset)
	r.POST("/step", s.handleStep)
	r.GET("/render", s.handleRender)
	r.GET("/spaces", s.handleSpaces)
	s.server = &http.Server{
		Addr:    addr,
		Handler: r,
	}
	return s
}

func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// Start serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", slog.String("addr", s.Addr))
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.server.Shutdown(shutdownCtx)
}

func (s *Server) logRequests(c *gin.Context) {
	start := time.Now()
	c.Next()
	s.logger.Info("request",
		slog.String("method", c.Request.Method),
		slog.String("path", c.Request.URL.Path),
		slog.Int("status", c.Writer.Status()),
		slog.Duration("took", time.Since(start)))
}

func (s *Server) handleReset(c *gin.Context) {
	s.lock.Lock()
	p, err := s.env.Reset()
	s.lock.Unlock()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"observation": p.Vector()})
}

func (s *Server) handleStep(c *gin.Context) {
	req := stepRequest{}
	if err := c.ShouldBindJSON(&req); err != nil || req.Action == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to unmarshal request"})
		return
	}

	s.lock.Lock()
	res, err := s.env.Step(grid.Action(*req.Action))
	s.lock.Unlock()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, stepResponse{
		Observation: res.Observation.Vector(),
		Reward:      res.Reward,
		Done:        res.Done,
		Info:        res.Info,
	})
}

func (s *Server) handleRender(c *gin.Context) {
	s.lock.Lock()
	out := s.env.Render()
	s.lock.Unlock()
	c.String(http.StatusOK, out)
}

func (s *Server) handleSpaces(c *gin.Context) {
	obs := s.env.ObservationSpace()
	rr := s.env.RewardRange()
	c.JSON(http.StatusOK, spacesResponse{
		Actions:     s.env.ActionSpace().N,
		Low:         obs.Low,
		High:        obs.High,
		RewardRange: []int{rr.Min, rr.Max},
	})
}

func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, grid.ErrInvalidAction):
		status = http.StatusBadRequest
	case errors.Is(err, grid.ErrNotReset), errors.Is(err, grid.ErrEpisodeDone):
		status = http.StatusConflict
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
