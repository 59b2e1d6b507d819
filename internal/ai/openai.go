package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIGateway talks to the chat-completion, transcription and speech
// endpoints. It is the single remote dependency of the turn orchestrator.
type OpenAIGateway struct {
	client          *openai.Client
	apiKey          string
	model           string
	transcribeModel string
	speechModel     string
	speechVoice     string
}

type GatewayConfig struct {
	APIKey          string
	BaseURL         string
	Model           string
	TranscribeModel string
	SpeechModel     string
	SpeechVoice     string
}

func NewOpenAIGateway(cfg GatewayConfig) *OpenAIGateway {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	// One fixed timeout, no retries; a failed call fails the turn.
	clientCfg.HTTPClient = &http.Client{Timeout: 45 * time.Second}

	model := cfg.Model
	if model == "" {
		model = "gpt-4o-mini"
	}
	transcribeModel := cfg.TranscribeModel
	if transcribeModel == "" {
		transcribeModel = openai.Whisper1
	}
	speechModel := cfg.SpeechModel
	if speechModel == "" {
		speechModel = string(openai.TTSModel1)
	}
	speechVoice := cfg.SpeechVoice
	if speechVoice == "" {
		speechVoice = string(openai.VoiceAlloy)
	}

	return &OpenAIGateway{
		client:          openai.NewClientWithConfig(clientCfg),
		apiKey:          strings.TrimSpace(cfg.APIKey),
		model:           model,
		transcribeModel: transcribeModel,
		speechModel:     speechModel,
		speechVoice:     speechVoice,
	}
}

// TutorReply sends the system prompt plus history and expects a JSON object
// {reply, tip} back. Non-JSON content is tolerated: it becomes the reply
// verbatim with an empty tip.
func (g *OpenAIGateway) TutorReply(ctx context.Context, level, topic string, history []Message, grammarFocus, mode string) (Reply, error) {
	if g.apiKey == "" {
		return Reply{}, fmt.Errorf("%w: OPENAI_API_KEY is missing", ErrUnavailable)
	}

	msgs := make([]openai.ChatCompletionMessage, 0, len(history)+1)
	msgs = append(msgs, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: BuildSystemPrompt(level, topic, grammarFocus, mode),
	})
	for _, m := range history {
		msgs = append(msgs, openai.ChatCompletionMessage{Role: m.Role, Content: m.Content})
	}

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       g.model,
		Temperature: 0.7,
		Messages:    msgs,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return Reply{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if len(resp.Choices) == 0 {
		return Reply{}, fmt.Errorf("%w: empty completion", ErrUnavailable)
	}

	content := resp.Choices[0].Message.Content
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(content), &fields); err == nil {
		if _, ok := fields["reply"]; ok {
			var parsed Reply
			_ = json.Unmarshal([]byte(content), &parsed)
			return Reply{Reply: strings.TrimSpace(parsed.Reply), Tip: strings.TrimSpace(parsed.Tip)}, nil
		}
	}
	// Model ignored the JSON instruction; use the raw text as the reply.
	return Reply{Reply: strings.TrimSpace(content)}, nil
}

func (g *OpenAIGateway) TranscribeAudio(ctx context.Context, filePath, mimeType, originalName string) (string, error) {
	if g.apiKey == "" {
		return "", fmt.Errorf("%w: OPENAI_API_KEY is missing", ErrUnavailable)
	}

	f, err := os.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("open audio: %w", err)
	}
	defer f.Close()

	name := originalName
	if name == "" {
		name = "speech.webm"
	}
	_ = mimeType // the multipart part type is inferred from the file name

	resp, err := g.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    g.transcribeModel,
		FilePath: name,
		Reader:   f,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	text := strings.TrimSpace(resp.Text)
	if text == "" {
		return "", errors.New("transcription returned no text")
	}
	return text, nil
}

func (g *OpenAIGateway) SynthesizeSpeech(ctx context.Context, text string) ([]byte, error) {
	if g.apiKey == "" {
		return nil, fmt.Errorf("%w: OPENAI_API_KEY is missing", ErrUnavailable)
	}

	resp, err := g.client.CreateSpeech(ctx, openai.CreateSpeechRequest{
		Model:          openai.SpeechModel(g.speechModel),
		Input:          text,
		Voice:          openai.SpeechVoice(g.speechVoice),
		ResponseFormat: openai.SpeechResponseFormatMp3,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Close()

	audio, err := io.ReadAll(resp)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return audio, nil
}
