package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/levelspeak/ai-teacher/internal/common"
)

func (h *Handler) SpeechToText(c *gin.Context) {
	fh, err := c.FormFile("audio")
	if err != nil {
		common.Fail(c, http.StatusUnprocessableEntity, "Audio file is required")
		return
	}

	tmp, err := os.CreateTemp("", "stt-*"+filepath.Ext(fh.Filename))
	if err != nil {
		common.FailDetails(c, http.StatusInternalServerError, "Speech-to-text unavailable", err.Error())
		return
	}
	tmpPath := tmp.Name()
	_ = tmp.Close()
	defer os.Remove(tmpPath)

	if err := c.SaveUploadedFile(fh, tmpPath); err != nil {
		common.Fail(c, http.StatusUnprocessableEntity, "Invalid uploaded audio")
		return
	}

	text, err := h.Gateway.TranscribeAudio(c.Request.Context(), tmpPath, fh.Header.Get("Content-Type"), fh.Filename)
	if err != nil {
		common.FailDetails(c, http.StatusInternalServerError, "Speech-to-text unavailable", err.Error())
		return
	}

	common.OK(c, gin.H{"text": text})
}

type ttsReq struct {
	Text string `json:"text"`
}

func (h *Handler) TextToSpeech(c *gin.Context) {
	var req ttsReq
	_ = c.ShouldBindJSON(&req)

	text := strings.TrimSpace(req.Text)
	if text == "" {
		common.Fail(c, http.StatusUnprocessableEntity, "Text is required")
		return
	}

	audioURL, err := h.Dialogue.SynthesizeToURL(c.Request.Context(), text)
	if err != nil {
		common.FailDetails(c, http.StatusInternalServerError, "Text-to-speech unavailable", err.Error())
		return
	}

	common.OK(c, gin.H{"audio_url": audioURL})
}
