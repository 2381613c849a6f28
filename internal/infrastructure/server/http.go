// Package server exposes the assistant over HTTP using gin.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dc25-uiux/uxai/internal/domain"
	"github.com/dc25-uiux/uxai/internal/ports"
)

// Assistant is the orchestrator surface the HTTP API needs.
type Assistant interface {
	RecommendWith(ctx context.Context, req domain.RecommendationRequest, mode domain.ProviderMode) domain.AssistantResponse
	Config() domain.AssistantConfig
	AnalyzeCode(ctx context.Context, code string) string
	GenerateComponent(ctx context.Context, description string, props map[string]any) string
	SuggestImprovements(ctx context.Context, component string) []string
	ClearCache()
	CacheStats() domain.CacheStats
	UpdateConfig(patch domain.ConfigPatch) error
	UpdateAvailableComponents(components []string)
	AvailableComponents() []string
}

// HealthChecker produces the diagnostics served on /health.
type HealthChecker interface {
	Run(ctx context.Context) (domain.HealthReport, error)
}

// Options configures an HTTPServer.
type Options struct {
	Addr      string
	Debug     bool
	Assistant Assistant
	Health    HealthChecker
	Gatherer  prometheus.Gatherer
	Logger    ports.Logger
}

// HTTPServer serves the JSON API and the metrics endpoint.
type HTTPServer struct {
	opts   Options
	engine *gin.Engine
	server *http.Server
}

// NewHTTPServer builds the engine and registers all routes.
func NewHTTPServer(opts Options) *HTTPServer {
	if opts.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &HTTPServer{opts: opts, engine: gin.New()}
	s.registerMiddlewares()
	s.registerRoutes()
	return s
}

// Handler returns the underlying http.Handler.
func (s *HTTPServer) Handler() http.Handler {
	return s.engine
}

func (s *HTTPServer) registerMiddlewares() {
	s.engine.Use(gin.Recovery())
	s.engine.Use(s.loggingMiddleware())
}

func (s *HTTPServer) loggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		if s.opts.Logger == nil {
			return
		}
		s.opts.Logger.Info("http request", map[string]interface{}{
			"method":   c.Request.Method,
			"path":     c.Request.URL.Path,
			"status":   c.Writer.Status(),
			"duration": time.Since(start).String(),
			"remote":   c.ClientIP(),
		})
	}
}

func (s *HTTPServer) registerRoutes() {
	v1 := s.engine.Group("/api/v1")
	{
		v1.GET("/health", s.handleHealth)

		v1.POST("/recommend", s.handleRecommend)
		v1.POST("/analyze", s.handleAnalyze)
		v1.POST("/generate", s.handleGenerate)
		v1.POST("/improve", s.handleImprove)

		v1.GET("/cache/stats", s.handleCacheStats)
		v1.DELETE("/cache", s.handleCacheClear)

		v1.GET("/config", s.handleConfigGet)
		v1.PATCH("/config", s.handleConfigPatch)

		v1.GET("/components", s.handleComponentsGet)
		v1.PUT("/components", s.handleComponentsPut)
	}

	if s.opts.Gatherer != nil {
		s.engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.opts.Gatherer, promhttp.HandlerOpts{})))
	}
}

// Start listens on the configured address until Stop is called.
func (s *HTTPServer) Start() error {
	s.server = &http.Server{
		Addr:         s.opts.Addr,
		Handler:      s.engine,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 2 * domain.DefaultHTTPClientTimeout,
	}
	if s.opts.Logger != nil {
		s.opts.Logger.Info("starting http server", map[string]interface{}{"addr": s.opts.Addr})
	}
	err := s.server.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Stop gracefully shuts the server down.
func (s *HTTPServer) Stop(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}

// Response is the envelope of every JSON reply.
type Response struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func (s *HTTPServer) success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Response{
		Code:    http.StatusOK,
		Message: "success",
		Data:    data,
	})
}

func (s *HTTPServer) error(c *gin.Context, code int, message string) {
	c.JSON(code, Response{
		Code:    code,
		Message: message,
	})
}
