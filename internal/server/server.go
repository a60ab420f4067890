package server

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/FACorreiaa/go-nextapp/internal/pkg/cache"
	"github.com/FACorreiaa/go-nextapp/internal/pkg/config"
)

// Server holds the dependencies for the HTTP server
type Server struct {
	cfg       *config.Config
	logger    *zap.Logger
	pageCache *cache.PageCache
	router    http.Handler
}

// New creates a new Server instance with all dependencies
func New(cfg *config.Config, logger *zap.Logger) *Server {
	return &Server{
		cfg:       cfg,
		logger:    logger,
		pageCache: cache.NewPageCache(cfg.Server.PageCacheTTL, logger),
	}
}

// HTTPServer creates and configures the HTTP server
func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:         ":" + s.cfg.Server.Port,
		Handler:      s.router,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}

// SetRouter sets the HTTP router/handler
func (s *Server) SetRouter(router http.Handler) {
	s.router = router
}

func (s *Server) GetPageCache() *cache.PageCache {
	return s.pageCache
}

func (s *Server) GetLogger() *zap.Logger {
	return s.logger
}

func (s *Server) GetConfig() *config.Config {
	return s.cfg
}

// Close releases cached pages and logs final cache usage.
func (s *Server) Close() {
	m := s.pageCache.GetMetrics()
	s.logger.Info("Page cache closed",
		zap.Int64("hits", m.Hits),
		zap.Int64("misses", m.Misses),
		zap.Int("items", m.Items))
	s.pageCache.Clear()
}
