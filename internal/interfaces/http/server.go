// Package http serves the local operations endpoint: liveness and a small
// status document for host-side monitoring. It binds to loopback-style
// addresses only and carries no authentication.
package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/haven-rp/warden/internal/shared/logger"
)

// SessionStats is what the gateway layer exposes to the ops endpoint.
type SessionStats interface {
	GuildCount() int
	MemberCount() int
}

type Server struct {
	srv       *http.Server
	db        *gorm.DB
	stats     SessionStats
	logger    logger.Interface
	startedAt time.Time
}

func NewServer(addr string, db *gorm.DB, stats SessionStats, log logger.Interface) *Server {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	s := &Server{
		db:        db,
		stats:     stats,
		logger:    log,
		startedAt: time.Now(),
	}

	engine.GET("/healthz", s.handleHealth)
	engine.GET("/status", s.handleStatus)

	s.srv = &http.Server{
		Addr:              addr,
		Handler:           engine,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Start serves until Shutdown. Run it on its own goroutine.
func (s *Server) Start() error {
	s.logger.Infow("ops endpoint listening", "addr", s.srv.Addr)
	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleStatus(c *gin.Context) {
	dbOK := true
	if sqlDB, err := s.db.DB(); err != nil {
		dbOK = false
	} else if err := sqlDB.PingContext(c.Request.Context()); err != nil {
		dbOK = false
	}

	status := http.StatusOK
	if !dbOK {
		status = http.StatusServiceUnavailable
	}

	c.JSON(status, gin.H{
		"uptime_seconds": int(time.Since(s.startedAt).Seconds()),
		"guilds":         s.stats.GuildCount(),
		"members":        s.stats.MemberCount(),
		"database":       dbOK,
	})
}
