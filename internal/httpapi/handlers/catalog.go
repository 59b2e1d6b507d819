package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/levelspeak/ai-teacher/internal/common"
)

func (h *Handler) Topics(c *gin.Context) {
	items, err := h.Catalog.Topics(c.Request.Context(), c.Query("level"))
	if err != nil {
		common.FailDetails(c, http.StatusInternalServerError, "Topics unavailable", err.Error())
		return
	}
	common.OK(c, items)
}

func (h *Handler) GrammarTopics(c *gin.Context) {
	items, err := h.Catalog.GrammarTopics(c.Request.Context(), c.Query("level"))
	if err != nil {
		common.FailDetails(c, http.StatusInternalServerError, "Grammar topics unavailable", err.Error())
		return
	}
	common.OK(c, items)
}
