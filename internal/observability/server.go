package observability

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// StatusFunc reports whether the serial link is currently up.
type StatusFunc func() bool

// Server exposes /health and /metrics for a running monitor.
type Server struct {
	engine  *gin.Engine
	http    *http.Server
	started time.Time
}

func NewServer(addr string, logger zerolog.Logger, connected StatusFunc) *Server {
	gin.SetMode(gin.ReleaseMode)
	RegisterMetrics()

	s := &Server{started: time.Now()}
	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger(logger), RequestMetricsMiddleware())
	r.GET("/health", func(c *gin.Context) {
		up := connected == nil || connected()
		status := http.StatusOK
		state := "ok"
		if !up {
			status = http.StatusServiceUnavailable
			state = "disconnected"
		}
		c.JSON(status, gin.H{
			"status":    state,
			"connected": up,
			"uptime":    time.Since(s.started).Round(time.Second).String(),
		})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	s.engine = r
	s.http = &http.Server{Addr: addr, Handler: r, ReadHeaderTimeout: 5 * time.Second}
	return s
}

// Handler is the routed engine, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.http.ListenAndServe()
	}()
	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.http.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
