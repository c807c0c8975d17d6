package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/matisaar/T661-Checker/internal/service"
)

const serviceVersion = "1.0.0"

type StatusHandler struct {
	service *service.GenerationService
}

func NewStatusHandler(service *service.GenerationService) *StatusHandler {
	return &StatusHandler{service: service}
}

// Root names the service and its endpoints.
func (h *StatusHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": "t661-writer",
		"version": serviceVersion,
		"mode":    h.service.Mode(),
		"endpoints": []string{
			"GET /health",
			"POST /api/generate",
			"POST /api/improve",
			"POST /api/feedback",
			"GET /api/feedback",
			"POST /api/feedback/export",
			"GET /api/generations",
			"GET /api/generations/:id",
		},
	})
}

// Health reports which generation path is active. model_error carries the
// load diagnostic when no model is available, null otherwise.
func (h *StatusHandler) Health(c *gin.Context) {
	var modelErr any
	if reason := h.service.ModeReason(); reason != "" {
		modelErr = reason
	}

	c.JSON(http.StatusOK, gin.H{
		"status":       "ok",
		"model_loaded": h.service.Mode() == service.ModeAI,
		"model_error":  modelErr,
		"mode":         h.service.Mode(),
	})
}
