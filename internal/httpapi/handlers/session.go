package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/levelspeak/ai-teacher/internal/common"
)

type sessionReq struct {
	Mode         string `json:"mode"`
	Level        string `json:"level"`
	Topic        string `json:"topic"`
	GrammarFocus string `json:"grammar_focus"`
	UserID       uint64 `json:"user_id"`
}

// StartSession and ApplySessionFilters share one path: both normalize the
// filters and open a fresh dialogue.
func (h *Handler) StartSession(c *gin.Context) {
	h.resetSession(c, "Session start failed")
}

func (h *Handler) ApplySessionFilters(c *gin.Context) {
	h.resetSession(c, "Applying filters failed")
}

func (h *Handler) resetSession(c *gin.Context, failMsg string) {
	var req sessionReq
	_ = c.ShouldBindJSON(&req) // allow empty {}

	state, err := h.Dialogue.ApplyFilters(c.Request.Context(), req.UserID, req.Mode, req.Level, req.Topic, req.GrammarFocus)
	if err != nil {
		common.FailDetails(c, http.StatusInternalServerError, failMsg, err.Error())
		return
	}
	common.OK(c, state)
}
