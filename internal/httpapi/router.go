package httpapi

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/levelspeak/ai-teacher/internal/common"
	"github.com/levelspeak/ai-teacher/internal/config"
	"github.com/levelspeak/ai-teacher/internal/httpapi/handlers"
	"github.com/levelspeak/ai-teacher/internal/httpapi/middleware"
)

func NewRouter(cfg config.Config, h *handlers.Handler) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(gin.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())

	r.NoRoute(func(c *gin.Context) {
		common.Fail(c, http.StatusNotFound, "Route not found")
	})
	r.NoMethod(func(c *gin.Context) {
		common.Fail(c, http.StatusMethodNotAllowed, "Method not allowed")
	})

	r.GET("/api/health", h.Health)
	r.GET("/api/topics", h.Topics)
	r.GET("/api/grammar-topics", h.GrammarTopics)
	r.GET("/api/prompt-preview", h.PromptPreview)

	r.POST("/api/session/start", h.StartSession)
	r.POST("/api/session/apply-filters", h.ApplySessionFilters)
	r.POST("/api/chat", h.Chat)
	r.POST("/api/speech-to-text", h.SpeechToText)
	r.POST("/api/text-to-speech", h.TextToSpeech)

	// Static chat client and synthesized audio
	r.StaticFile("/", filepath.Join(cfg.WebDir, "index.html"))
	r.Static("/assets", filepath.Join(cfg.WebDir, "assets"))
	r.Static(cfg.MediaURLPrefix, cfg.MediaDir)

	return r
}
