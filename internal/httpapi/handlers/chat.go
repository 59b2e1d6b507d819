package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/levelspeak/ai-teacher/internal/ai"
	"github.com/levelspeak/ai-teacher/internal/common"
	"github.com/levelspeak/ai-teacher/internal/dialogue"
)

type chatReq struct {
	Mode         string `json:"mode"`
	Level        string `json:"level"`
	Topic        string `json:"topic"`
	GrammarFocus string `json:"grammar_focus"`
	Message      string `json:"message"`
	DialogueID   int64  `json:"dialogue_id"`
	TTSMode      string `json:"tts_mode"`
	UserID       uint64 `json:"user_id"`
}

func (h *Handler) Chat(c *gin.Context) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		common.Fail(c, http.StatusBadRequest, "invalid json")
		return
	}

	res, err := h.Dialogue.HandleTurn(c.Request.Context(), dialogue.TurnRequest{
		UserID:       req.UserID,
		DialogueID:   req.DialogueID,
		Mode:         req.Mode,
		Level:        req.Level,
		Topic:        req.Topic,
		GrammarFocus: req.GrammarFocus,
		Message:      req.Message,
		TTSMode:      req.TTSMode,
	})
	if err != nil {
		switch {
		case errors.Is(err, dialogue.ErrEmptyMessage):
			common.Fail(c, http.StatusUnprocessableEntity, "Message is required")
		case errors.Is(err, dialogue.ErrDialogueNotFound):
			common.Fail(c, http.StatusNotFound, "Dialogue not found for user")
		default:
			common.FailDetails(c, http.StatusInternalServerError, "Chat service unavailable", err.Error())
		}
		return
	}

	common.OK(c, res)
}

func (h *Handler) PromptPreview(c *gin.Context) {
	mode := dialogue.NormalizeMode(c.Query("mode"))
	level := dialogue.NormalizeLevel(c.Query("level"))
	topic := dialogue.NormalizeTopic(c.Query("topic"))
	grammarFocus := strings.TrimSpace(c.Query("grammar_focus"))

	common.OK(c, gin.H{
		"prompt": ai.BuildSystemPrompt(level, topic, grammarFocus, mode),
	})
}
