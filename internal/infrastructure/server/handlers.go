package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dc25-uiux/uxai/internal/domain"
)

type recommendBody struct {
	Description  string              `json:"description" binding:"required"`
	Context      string              `json:"context"`
	Preferences  *domain.Preferences `json:"preferences"`
	Codebase     string              `json:"codebase"`
	Requirements []string            `json:"requirements"`
	Provider     domain.ProviderMode `json:"provider"`
}

type analyzeBody struct {
	Code string `json:"code" binding:"required"`
}

type generateBody struct {
	Description string         `json:"description" binding:"required"`
	Props       map[string]any `json:"props"`
}

type improveBody struct {
	Component string `json:"component" binding:"required"`
}

type componentsBody struct {
	Components []string `json:"components" binding:"required"`
}

func (s *HTTPServer) handleHealth(c *gin.Context) {
	if s.opts.Health == nil {
		s.success(c, gin.H{"status": domain.HealthOK})
		return
	}
	report, err := s.opts.Health.Run(c.Request.Context())
	if err != nil || !report.Healthy() {
		c.JSON(http.StatusServiceUnavailable, Response{
			Code:    http.StatusServiceUnavailable,
			Message: "unhealthy",
			Data:    report,
		})
		return
	}
	s.success(c, report)
}

func (s *HTTPServer) handleRecommend(c *gin.Context) {
	var body recommendBody
	if err := c.ShouldBindJSON(&body); err != nil {
		s.error(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}
	if strings.TrimSpace(body.Description) == "" {
		s.error(c, http.StatusBadRequest, "description is required")
		return
	}
	mode := body.Provider
	if mode == "" {
		mode = s.opts.Assistant.Config().DefaultProvider
	} else if !mode.Valid() {
		s.error(c, http.StatusBadRequest, "unknown provider: "+string(mode))
		return
	}

	resp := s.opts.Assistant.RecommendWith(c.Request.Context(), domain.RecommendationRequest{
		Description:  body.Description,
		Context:      body.Context,
		Preferences:  body.Preferences,
		Codebase:     body.Codebase,
		Requirements: body.Requirements,
	}, mode)
	s.success(c, resp)
}

func (s *HTTPServer) handleAnalyze(c *gin.Context) {
	var body analyzeBody
	if err := c.ShouldBindJSON(&body); err != nil {
		s.error(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}
	s.success(c, gin.H{"analysis": s.opts.Assistant.AnalyzeCode(c.Request.Context(), body.Code)})
}

func (s *HTTPServer) handleGenerate(c *gin.Context) {
	var body generateBody
	if err := c.ShouldBindJSON(&body); err != nil {
		s.error(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}
	code := s.opts.Assistant.GenerateComponent(c.Request.Context(), body.Description, body.Props)
	s.success(c, gin.H{"code": code})
}

func (s *HTTPServer) handleImprove(c *gin.Context) {
	var body improveBody
	if err := c.ShouldBindJSON(&body); err != nil {
		s.error(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}
	s.success(c, gin.H{"suggestions": s.opts.Assistant.SuggestImprovements(c.Request.Context(), body.Component)})
}

func (s *HTTPServer) handleCacheStats(c *gin.Context) {
	s.success(c, s.opts.Assistant.CacheStats())
}

func (s *HTTPServer) handleCacheClear(c *gin.Context) {
	s.opts.Assistant.ClearCache()
	s.success(c, s.opts.Assistant.CacheStats())
}

func (s *HTTPServer) handleConfigGet(c *gin.Context) {
	s.success(c, s.opts.Assistant.Config())
}

func (s *HTTPServer) handleConfigPatch(c *gin.Context) {
	var patch domain.ConfigPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		s.error(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}
	if err := s.opts.Assistant.UpdateConfig(patch); err != nil {
		s.error(c, http.StatusUnprocessableEntity, err.Error())
		return
	}
	s.success(c, s.opts.Assistant.Config())
}

func (s *HTTPServer) handleComponentsGet(c *gin.Context) {
	s.success(c, gin.H{"components": s.opts.Assistant.AvailableComponents()})
}

func (s *HTTPServer) handleComponentsPut(c *gin.Context) {
	var body componentsBody
	if err := c.ShouldBindJSON(&body); err != nil {
		s.error(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}
	s.opts.Assistant.UpdateAvailableComponents(body.Components)
	s.success(c, gin.H{"components": s.opts.Assistant.AvailableComponents()})
}
