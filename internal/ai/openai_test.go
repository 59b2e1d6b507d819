package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testGateway(t *testing.T, handler http.HandlerFunc) *OpenAIGateway {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewOpenAIGateway(GatewayConfig{
		APIKey:  "test-key",
		BaseURL: srv.URL + "/v1",
	})
}

func completionHandler(t *testing.T, content string) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		var req openai.ChatCompletionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode completion request: %v", err)
		}
		if assert.NotEmpty(t, req.Messages) {
			assert.Equal(t, openai.ChatMessageRoleSystem, req.Messages[0].Role)
		}

		resp := openai.ChatCompletionResponse{
			Choices: []openai.ChatCompletionChoice{{
				Message: openai.ChatCompletionMessage{
					Role:    openai.ChatMessageRoleAssistant,
					Content: content,
				},
			}},
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}
}

func TestTutorReplyParsesJSON(t *testing.T) {
	g := testGateway(t, completionHandler(t, `{"reply":"Hi","tip":""}`))

	reply, err := g.TutorReply(context.Background(), "A1", "introductions", []Message{{Role: "user", Content: "Hi"}}, "", "conversation")
	require.NoError(t, err)
	assert.Equal(t, "Hi", reply.Reply)
	assert.Equal(t, "", reply.Tip)
}

func TestTutorReplyParsesTip(t *testing.T) {
	g := testGateway(t, completionHandler(t, `{"reply":"Good try!","tip":"Say: I am from Spain."}`))

	reply, err := g.TutorReply(context.Background(), "A1", "introductions", nil, "", "conversation")
	require.NoError(t, err)
	assert.Equal(t, "Good try!", reply.Reply)
	assert.Equal(t, "Say: I am from Spain.", reply.Tip)
}

func TestTutorReplyNonJSONFallsBackToRawText(t *testing.T) {
	g := testGateway(t, completionHandler(t, "Hello there"))

	reply, err := g.TutorReply(context.Background(), "A1", "introductions", nil, "", "conversation")
	require.NoError(t, err)
	assert.Equal(t, "Hello there", reply.Reply)
	assert.Equal(t, "", reply.Tip)
}

func TestTutorReplyJSONWithoutReplyKeyFallsBack(t *testing.T) {
	g := testGateway(t, completionHandler(t, `{"message":"not the shape we asked for"}`))

	reply, err := g.TutorReply(context.Background(), "A1", "introductions", nil, "", "conversation")
	require.NoError(t, err)
	assert.Equal(t, `{"message":"not the shape we asked for"}`, reply.Reply)
	assert.Equal(t, "", reply.Tip)
}

func TestTutorReplyMissingAPIKey(t *testing.T) {
	g := NewOpenAIGateway(GatewayConfig{})

	_, err := g.TutorReply(context.Background(), "A1", "introductions", nil, "", "conversation")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestTutorReplyServerError(t *testing.T) {
	g := testGateway(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"boom"}}`, http.StatusInternalServerError)
	})

	_, err := g.TutorReply(context.Background(), "A1", "introductions", nil, "", "conversation")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestTranscribeAudio(t *testing.T) {
	g := testGateway(t, func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parse multipart: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"text":"hello from audio"}`))
	})

	path := filepath.Join(t.TempDir(), "speech.webm")
	require.NoError(t, os.WriteFile(path, []byte("fake-audio"), 0o644))

	text, err := g.TranscribeAudio(context.Background(), path, "audio/webm", "speech.webm")
	require.NoError(t, err)
	assert.Equal(t, "hello from audio", text)
}

func TestTranscribeAudioEmptyText(t *testing.T) {
	g := testGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"text":"   "}`))
	})

	path := filepath.Join(t.TempDir(), "speech.webm")
	require.NoError(t, os.WriteFile(path, []byte("fake-audio"), 0o644))

	_, err := g.TranscribeAudio(context.Background(), path, "audio/webm", "speech.webm")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnavailable)
}

func TestTranscribeAudioMissingFile(t *testing.T) {
	g := testGateway(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected for a missing file")
	})

	_, err := g.TranscribeAudio(context.Background(), filepath.Join(t.TempDir(), "nope.webm"), "audio/webm", "nope.webm")
	require.Error(t, err)
}

func TestSynthesizeSpeechReturnsRawBytes(t *testing.T) {
	want := []byte("ID3-fake-mp3-bytes")
	g := testGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "audio/mpeg")
		_, _ = w.Write(want)
	})

	audio, err := g.SynthesizeSpeech(context.Background(), "Hello!")
	require.NoError(t, err)
	assert.Equal(t, want, audio)
}

func TestSynthesizeSpeechMissingAPIKey(t *testing.T) {
	g := NewOpenAIGateway(GatewayConfig{})

	_, err := g.SynthesizeSpeech(context.Background(), "Hello!")
	assert.ErrorIs(t, err, ErrUnavailable)
}
