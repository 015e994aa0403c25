package handler

import (
	"net/http"

	"socialelections/config"
	"socialelections/internal/service"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	conf         *config.Configuration
	healthStatus *service.HealthService
}

func NewHealthHandler(conf *config.Configuration, status *service.HealthService) *HealthHandler {
	return &HealthHandler{conf: conf, healthStatus: status}
}

func (h *HealthHandler) Liveness(c *gin.Context) {
	if h.healthStatus.IsLive() {
		c.JSON(http.StatusOK, gin.H{"status": "alive"})
		return
	}
	c.Status(http.StatusServiceUnavailable)
}

func (h *HealthHandler) Readiness(c *gin.Context) {
	if h.healthStatus.IsReady() {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
		return
	}
	c.Status(http.StatusServiceUnavailable)
}

func (h *HealthHandler) Version(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":    h.conf.App.Name,
		"version": h.conf.App.Version,
	})
}
