package dialogue

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/levelspeak/ai-teacher/internal/ai"
)

var (
	ErrEmptyMessage     = errors.New("message is required")
	ErrDialogueNotFound = errors.New("dialogue not found for user")
)

const defaultReply = "Let us continue. Tell me more."

type Service struct {
	repo           *Repo
	gateway        ai.Gateway
	window         int
	serverTTS      bool
	mediaDir       string
	mediaURLPrefix string
}

type ServiceConfig struct {
	ContextWindow  int
	ServerTTS      bool
	MediaDir       string
	MediaURLPrefix string
}

func NewService(repo *Repo, gateway ai.Gateway, cfg ServiceConfig) *Service {
	window := cfg.ContextWindow
	if window <= 0 || window > historyCap {
		window = 12
	}
	mediaDir := cfg.MediaDir
	if mediaDir == "" {
		mediaDir = "web/media/tts"
	}
	prefix := strings.TrimRight(cfg.MediaURLPrefix, "/")
	if prefix == "" {
		prefix = "/media/tts"
	}
	return &Service{
		repo:           repo,
		gateway:        gateway,
		window:         window,
		serverTTS:      cfg.ServerTTS,
		mediaDir:       mediaDir,
		mediaURLPrefix: prefix,
	}
}

type TurnRequest struct {
	UserID       uint64
	DialogueID   int64
	Mode         string
	Level        string
	Topic        string
	GrammarFocus string
	Message      string
	TTSMode      string
}

type Feedback struct {
	Tip string `json:"tip"`
}

type TurnResult struct {
	DialogueID   uint64    `json:"dialogue_id"`
	Mode         string    `json:"mode"`
	Level        string    `json:"level"`
	Topic        string    `json:"topic"`
	GrammarFocus string    `json:"grammar_focus"`
	Reply        string    `json:"reply"`
	AudioURL     *string   `json:"audio_url"`
	Feedback     *Feedback `json:"feedback,omitempty"`
}

type SessionState struct {
	DialogueID   uint64 `json:"dialogue_id"`
	Mode         string `json:"mode"`
	Level        string `json:"level"`
	Topic        string `json:"topic"`
	GrammarFocus string `json:"grammar_focus"`
}

// HandleTurn runs one chat turn end to end: validate, resolve identity,
// resolve or create the dialogue, persist the user message, ask the tutor,
// optionally synthesize audio, persist the assistant message.
func (s *Service) HandleTurn(ctx context.Context, req TurnRequest) (*TurnResult, error) {
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return nil, ErrEmptyMessage
	}

	mode := NormalizeMode(req.Mode)
	level := NormalizeLevel(req.Level)
	topic := NormalizeTopic(req.Topic)
	grammarFocus := strings.TrimSpace(req.GrammarFocus)
	ttsMode := strings.ToLower(strings.TrimSpace(req.TTSMode))

	userID := s.repo.ResolveUserID(ctx, req.UserID)

	var dialogueID uint64
	if req.DialogueID > 0 {
		owns, err := s.repo.DialogueBelongsToUser(ctx, uint64(req.DialogueID), userID)
		if err != nil {
			return nil, err
		}
		if !owns {
			return nil, ErrDialogueNotFound
		}
		dialogueID = uint64(req.DialogueID)
	} else {
		id, err := s.repo.CreateDialogue(ctx, userID, level, topic)
		if err != nil {
			return nil, err
		}
		dialogueID = id
	}

	// The user turn lands before the remote call so the transcript survives
	// a failed completion.
	if err := s.repo.AddMessage(ctx, dialogueID, SenderUser, message, nil); err != nil {
		return nil, err
	}

	history, err := s.repo.RecentMessages(ctx, dialogueID, s.window)
	if err != nil {
		return nil, err
	}

	tutorReply, err := s.gateway.TutorReply(ctx, level, topic, history, grammarFocus, mode)
	if err != nil {
		return nil, err
	}

	reply := strings.TrimSpace(tutorReply.Reply)
	tip := strings.TrimSpace(tutorReply.Tip)
	if reply == "" {
		reply = defaultReply
	}

	// Audio is an enhancement; a failed synthesis degrades to text only.
	var audioURL *string
	if s.serverTTS && ttsMode == "server" {
		if url, err := s.SynthesizeToURL(ctx, reply); err != nil {
			log.Printf("tts skipped dialogue=%d: %v", dialogueID, err)
		} else {
			audioURL = &url
		}
	}

	if err := s.repo.AddMessage(ctx, dialogueID, SenderAssistant, reply, audioURL); err != nil {
		return nil, err
	}

	res := &TurnResult{
		DialogueID:   dialogueID,
		Mode:         mode,
		Level:        level,
		Topic:        topic,
		GrammarFocus: grammarFocus,
		Reply:        reply,
		AudioURL:     audioURL,
	}
	if tip != "" {
		res.Feedback = &Feedback{Tip: tip}
	}
	return res, nil
}

// ApplyFilters opens a fresh dialogue for the normalized settings. Changing
// filters is a session reset, never a resume.
func (s *Service) ApplyFilters(ctx context.Context, requestedUserID uint64, mode, level, topic, grammarFocus string) (*SessionState, error) {
	state := SessionState{
		Mode:         NormalizeMode(mode),
		Level:        NormalizeLevel(level),
		Topic:        NormalizeTopic(topic),
		GrammarFocus: strings.TrimSpace(grammarFocus),
	}

	userID := s.repo.ResolveUserID(ctx, requestedUserID)
	dialogueID, err := s.repo.CreateDialogue(ctx, userID, state.Level, state.Topic)
	if err != nil {
		return nil, err
	}
	state.DialogueID = dialogueID
	return &state, nil
}

// SynthesizeToURL produces speech for text and stores it under the public
// media dir, returning the URL the client can fetch.
func (s *Service) SynthesizeToURL(ctx context.Context, text string) (string, error) {
	audio, err := s.gateway.SynthesizeSpeech(ctx, text)
	if err != nil {
		return "", err
	}
	return s.storeAudio(audio)
}

func (s *Service) storeAudio(audio []byte) (string, error) {
	if err := os.MkdirAll(s.mediaDir, 0o755); err != nil {
		return "", err
	}
	suffix := make([]byte, 4)
	if _, err := rand.Read(suffix); err != nil {
		return "", err
	}
	name := time.Now().Format("20060102_150405") + "_" + hex.EncodeToString(suffix) + ".mp3"
	if err := os.WriteFile(filepath.Join(s.mediaDir, name), audio, 0o644); err != nil {
		return "", err
	}
	return s.mediaURLPrefix + "/" + name, nil
}

func NormalizeMode(mode string) string {
	if mode == "lesson" {
		return "lesson"
	}
	return "conversation"
}

func NormalizeLevel(level string) string {
	level = strings.ToUpper(strings.TrimSpace(level))
	if level == "" {
		return "A1"
	}
	return level
}

func NormalizeTopic(topic string) string {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return "introductions"
	}
	return topic
}
