package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/levelspeak/ai-teacher/internal/ai"
	"github.com/levelspeak/ai-teacher/internal/catalog"
	"github.com/levelspeak/ai-teacher/internal/config"
	"github.com/levelspeak/ai-teacher/internal/dialogue"
)

type Handler struct {
	Cfg      config.Config
	Dialogue *dialogue.Service
	Catalog  *catalog.Service
	Gateway  ai.Gateway
}

func NewHandler(cfg config.Config, dlg *dialogue.Service, cat *catalog.Service, gw ai.Gateway) *Handler {
	return &Handler{Cfg: cfg, Dialogue: dlg, Catalog: cat, Gateway: gw}
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"service":   "ai-teacher-api",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
