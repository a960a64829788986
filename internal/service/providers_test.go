package service

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"google.golang.org/genai"
)

const openAICompletionJSON = `{
	"id": "chatcmpl-1",
	"object": "chat.completion",
	"created": 1700000000,
	"model": "llama3-8b-8192",
	"choices": [
		{"index": 0, "message": {"role": "assistant", "content": "hey!"}, "finish_reason": "stop"}
	],
	"usage": {"prompt_tokens": 10, "completion_tokens": 2, "total_tokens": 12}
}`

type capturedRequest struct {
	path   string
	auth   string
	body   string
	hits   atomic.Int32
	status int
	reply  string
}

func newProviderServer(t *testing.T, captured *capturedRequest) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured.hits.Add(1)
		body, _ := io.ReadAll(r.Body)
		captured.path = r.URL.Path
		captured.auth = r.Header.Get("Authorization")
		captured.body = string(body)

		w.Header().Set("Content-Type", "application/json")
		status := captured.status
		if status == 0 {
			status = http.StatusOK
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(captured.reply))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestGroqService_MissingAPIKey(t *testing.T) {
	svc := newGroqService("", "http://127.0.0.1:1/")

	resp, err := svc.Complete(context.Background(), &CompletionRequest{Prompt: "hi"})

	assert.Nil(t, resp)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GROQ_API_KEY not set")
}

func TestGroqService_Complete(t *testing.T) {
	captured := &capturedRequest{reply: openAICompletionJSON}
	srv := newProviderServer(t, captured)
	svc := newGroqService("gsk-test", srv.URL+"/")

	resp, err := svc.Complete(context.Background(), &CompletionRequest{Prompt: "Say hi", Temperature: 0})

	require.NoError(t, err)
	assert.Equal(t, "hey!", resp.Text)
	assert.Equal(t, "chatcmpl-1", resp.ID)
	assert.Equal(t, "/chat/completions", captured.path)
	assert.Equal(t, "Bearer gsk-test", captured.auth)
	assert.Equal(t, DefaultGroqModel, gjson.Get(captured.body, "model").String())
	assert.Equal(t, "Say hi", gjson.Get(captured.body, "messages.0.content").String())
	temperature := gjson.Get(captured.body, "temperature")
	assert.True(t, temperature.Exists(), "temperature 0 must be sent explicitly")
	assert.Equal(t, 0.0, temperature.Float())
}

func TestGroqService_ModelOverride(t *testing.T) {
	captured := &capturedRequest{reply: openAICompletionJSON}
	srv := newProviderServer(t, captured)
	svc := newGroqService("gsk-test", srv.URL+"/")

	_, err := svc.Complete(context.Background(), &CompletionRequest{Model: "llama-3.1-8b-instant", Prompt: "x", Temperature: 0.2})

	require.NoError(t, err)
	assert.Equal(t, "llama-3.1-8b-instant", gjson.Get(captured.body, "model").String())
	assert.Equal(t, 0.2, gjson.Get(captured.body, "temperature").Float())
}

func TestGroqService_ProviderErrorIsNotRetried(t *testing.T) {
	captured := &capturedRequest{
		status: http.StatusInternalServerError,
		reply:  `{"error": {"message": "upstream exploded", "type": "server_error"}}`,
	}
	srv := newProviderServer(t, captured)
	svc := newGroqService("gsk-test", srv.URL+"/")

	_, err := svc.Complete(context.Background(), &CompletionRequest{Prompt: "x"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "groq request failed")
	assert.Equal(t, int32(1), captured.hits.Load())
}

func TestGroqService_NoChoices(t *testing.T) {
	captured := &capturedRequest{reply: `{"id": "x", "object": "chat.completion", "created": 1, "model": "m", "choices": []}`}
	srv := newProviderServer(t, captured)
	svc := newGroqService("gsk-test", srv.URL+"/")

	_, err := svc.Complete(context.Background(), &CompletionRequest{Prompt: "x"})

	assert.ErrorIs(t, err, ErrEmptyCompletion)
}

func TestOpenRouterService_MissingAPIKey(t *testing.T) {
	svc := newOpenRouterService("", "http://127.0.0.1:1")

	_, err := svc.Complete(context.Background(), &CompletionRequest{Prompt: "hi"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "OPENROUTER_API_KEY not set")
}

func TestOpenRouterService_Complete(t *testing.T) {
	captured := &capturedRequest{reply: openAICompletionJSON}
	srv := newProviderServer(t, captured)
	svc := newOpenRouterService("or-test", srv.URL)

	resp, err := svc.Complete(context.Background(), &CompletionRequest{Prompt: "Say hi", Temperature: 0})

	require.NoError(t, err)
	assert.Equal(t, "hey!", resp.Text)
	assert.Equal(t, "llama3-8b-8192", resp.Model)
	assert.Equal(t, "/chat/completions", captured.path)
	assert.Equal(t, "Bearer or-test", captured.auth)
	assert.Equal(t, DefaultOpenRouterModel, gjson.Get(captured.body, "model").String())
	assert.Equal(t, "user", gjson.Get(captured.body, "messages.0.role").String())
	assert.True(t, gjson.Get(captured.body, "temperature").Exists())
}

func TestOpenRouterService_HTTPError(t *testing.T) {
	captured := &capturedRequest{status: http.StatusUnauthorized, reply: `{"error": {"message": "bad key"}}`}
	srv := newProviderServer(t, captured)
	svc := newOpenRouterService("or-test", srv.URL)

	_, err := svc.Complete(context.Background(), &CompletionRequest{Prompt: "x"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 401")
	assert.Contains(t, err.Error(), "bad key")
	assert.Equal(t, int32(1), captured.hits.Load())
}

func TestOpenRouterService_NoChoices(t *testing.T) {
	captured := &capturedRequest{reply: `{"id": "x", "choices": []}`}
	srv := newProviderServer(t, captured)
	svc := newOpenRouterService("or-test", srv.URL)

	_, err := svc.Complete(context.Background(), &CompletionRequest{Prompt: "x"})

	assert.ErrorIs(t, err, ErrEmptyCompletion)
}

func TestAnthropicService_MissingAPIKey(t *testing.T) {
	svc := newAnthropicService("", "", 1024)

	_, err := svc.Complete(context.Background(), &CompletionRequest{Prompt: "hi"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "ANTHROPIC_API_KEY not set")
}

func TestAnthropicService_Complete(t *testing.T) {
	captured := &capturedRequest{reply: `{
		"id": "msg_01",
		"type": "message",
		"role": "assistant",
		"model": "claude-3-5-haiku-latest",
		"content": [{"type": "text", "text": "hey!"}],
		"stop_reason": "end_turn",
		"stop_sequence": null,
		"usage": {"input_tokens": 10, "output_tokens": 2}
	}`}
	srv := newProviderServer(t, captured)
	svc := newAnthropicService("sk-ant-test", srv.URL+"/", 256)

	resp, err := svc.Complete(context.Background(), &CompletionRequest{Prompt: "Say hi", Temperature: 0.2})

	require.NoError(t, err)
	assert.Equal(t, "hey!", resp.Text)
	assert.Equal(t, "msg_01", resp.ID)
	assert.Equal(t, int64(256), gjson.Get(captured.body, "max_tokens").Int())
	assert.Equal(t, DefaultAnthropicModel, gjson.Get(captured.body, "model").String())
	assert.Equal(t, 0.2, gjson.Get(captured.body, "temperature").Float())
}

func TestGeminiService_MissingAPIKey(t *testing.T) {
	svc := &GeminiService{}

	_, err := svc.Complete(context.Background(), &CompletionRequest{Prompt: "hi"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "GEMINI_API_KEY not set")
}

func TestGeminiService_Complete(t *testing.T) {
	captured := &capturedRequest{reply: `{
		"candidates": [
			{"content": {"role": "model", "parts": [{"text": "hey!"}]}, "finishReason": "STOP"}
		]
	}`}
	srv := newProviderServer(t, captured)
	svc, err := newGeminiService(context.Background(), &genai.ClientConfig{
		APIKey:      "gm-test",
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{BaseURL: srv.URL + "/"},
	})
	require.NoError(t, err)

	resp, err := svc.Complete(context.Background(), &CompletionRequest{Prompt: "Say hi"})

	require.NoError(t, err)
	assert.Equal(t, "hey!", resp.Text)
	assert.Equal(t, DefaultGeminiModel, resp.Model)
	assert.Contains(t, captured.path, DefaultGeminiModel)
	assert.Contains(t, captured.body, "Say hi")
}

func TestGeminiService_NoCandidates(t *testing.T) {
	captured := &capturedRequest{reply: `{"candidates": []}`}
	srv := newProviderServer(t, captured)
	svc, err := newGeminiService(context.Background(), &genai.ClientConfig{
		APIKey:      "gm-test",
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{BaseURL: srv.URL + "/"},
	})
	require.NoError(t, err)

	_, err = svc.Complete(context.Background(), &CompletionRequest{Prompt: "Say hi"})

	assert.ErrorIs(t, err, ErrEmptyCompletion)
}

func TestNewLLMProvider(t *testing.T) {
	ctx := context.Background()

	groq, err := NewLLMProvider(ctx, ProviderGroq)
	require.NoError(t, err)
	assert.Equal(t, ProviderGroq, groq.Name())

	openRouter, err := NewLLMProvider(ctx, ProviderOpenRouter)
	require.NoError(t, err)
	assert.Equal(t, ProviderOpenRouter, openRouter.Name())

	anthropicProvider, err := NewLLMProvider(ctx, ProviderAnthropic)
	require.NoError(t, err)
	assert.Equal(t, ProviderAnthropic, anthropicProvider.Name())

	_, err = NewLLMProvider(ctx, "llamafile")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported LLM provider")
}
