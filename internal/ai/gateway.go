package ai

import (
	"context"
	"errors"
)

// ErrUnavailable marks failures of the remote tutor API: missing credentials,
// transport errors, non-2xx statuses, empty completions.
var ErrUnavailable = errors.New("tutor api unavailable")

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Reply is one tutor turn: the conversational reply plus an optional short
// corrective tip.
type Reply struct {
	Reply string `json:"reply"`
	Tip   string `json:"tip"`
}

type Gateway interface {
	TutorReply(ctx context.Context, level, topic string, history []Message, grammarFocus, mode string) (Reply, error)
	TranscribeAudio(ctx context.Context, filePath, mimeType, originalName string) (string, error)
	SynthesizeSpeech(ctx context.Context, text string) ([]byte, error)
}
