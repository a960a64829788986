package main

import (
	"bytes"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/unicorn004/AlumniVerse/internal/config"
	"github.com/unicorn004/AlumniVerse/internal/dto"
	"github.com/unicorn004/AlumniVerse/internal/usecase/mocks"
)

func testAppConfig() *config.AppConfig {
	return &config.AppConfig{
		Name:            "AlumniVerse AI",
		Env:             "test",
		Port:            ":0",
		LogLevel:        "info",
		RateLimitWindow: time.Minute,
	}
}

func newServer(t *testing.T, cfg *config.AppConfig) (*fiber.App, *mocks.ModerationUsecaseInterface, *mocks.ChatbotUsecaseInterface) {
	t.Helper()
	log, _ := test.NewNullLogger()
	moderation := mocks.NewModerationUsecaseInterface(t)
	chatbot := mocks.NewChatbotUsecaseInterface(t)
	return buildApp(cfg, log, moderation, chatbot), moderation, chatbot
}

func do(t *testing.T, app *fiber.App, method, path, body string, headers map[string]string) (int, string, map[string][]string) {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(raw), resp.Header
}

func TestApp_Chatbot(t *testing.T) {
	app, _, chatbot := newServer(t, testAppConfig())
	chatbot.On("Reply", mock.Anything, mock.MatchedBy(func(req *dto.ChatbotRequest) bool {
		return req.Prompt == "Say hi"
	})).Return(&dto.ChatbotResponse{Response: "hey!", Status: "success"}, nil).Once()

	code, body, header := do(t, app, "POST", "/chatbot",
		`{"prompt": "Say hi", "user_profile": {}, "messages": []}`,
		map[string]string{"Content-Type": "application/json", "Origin": "https://alumniverse.example"})

	assert.Equal(t, fiber.StatusOK, code)
	assert.JSONEq(t, `{"status": "success", "response": "hey!"}`, body)
	assert.Equal(t, "*", header["Access-Control-Allow-Origin"][0])
	assert.NotEmpty(t, header["X-Request-Id"])
}

func TestApp_ModerateValidation(t *testing.T) {
	app, _, _ := newServer(t, testAppConfig())

	code, body, _ := do(t, app, "POST", "/moderate", `{}`, map[string]string{"Content-Type": "application/json"})

	assert.Equal(t, fiber.StatusBadRequest, code)
	assert.JSONEq(t, `{"error": "Post content is required"}`, body)
}

func TestApp_ModerateWithoutContentType(t *testing.T) {
	app, moderation, _ := newServer(t, testAppConfig())
	moderation.On("Moderate", mock.Anything, &dto.ModerationRequest{Post: "hello"}).
		Return(&dto.ModerationResponse{Decision: 1, Status: "accepted"}, nil).Once()

	code, body, _ := do(t, app, "POST", "/moderate", `{"post": "hello"}`, nil)

	assert.Equal(t, fiber.StatusOK, code)
	assert.JSONEq(t, `{"decision": 1, "reason": "", "status": "accepted"}`, body)
}

func TestApp_CORSPreflight(t *testing.T) {
	app, _, _ := newServer(t, testAppConfig())

	code, _, header := do(t, app, "OPTIONS", "/moderate", "", map[string]string{
		"Origin":                        "https://alumniverse.example",
		"Access-Control-Request-Method": "POST",
	})

	assert.Equal(t, fiber.StatusNoContent, code)
	assert.Equal(t, "*", header["Access-Control-Allow-Origin"][0])
}

func TestApp_NotFoundIsJSON(t *testing.T) {
	app, _, _ := newServer(t, testAppConfig())

	code, body, _ := do(t, app, "GET", "/nope", "", nil)

	assert.Equal(t, fiber.StatusNotFound, code)
	assert.JSONEq(t, `{"error": "Cannot GET /nope"}`, body)
}

func TestApp_HealthAndMetrics(t *testing.T) {
	app, _, _ := newServer(t, testAppConfig())

	code, _, _ := do(t, app, "GET", "/livez", "", nil)
	assert.Equal(t, fiber.StatusOK, code)

	code, _, _ = do(t, app, "GET", "/readyz", "", nil)
	assert.Equal(t, fiber.StatusOK, code)

	code, _, _ = do(t, app, "GET", "/nope", "", nil)
	assert.Equal(t, fiber.StatusNotFound, code)

	code, body, _ := do(t, app, "GET", "/metrics", "", nil)
	assert.Equal(t, fiber.StatusOK, code)
	assert.Contains(t, body, `alumniverse_http_requests_total{method="GET",route="unmatched",status="404"}`)
	assert.Contains(t, body, "go_goroutines")
}

func TestApp_RateLimit(t *testing.T) {
	cfg := testAppConfig()
	cfg.RateLimitMax = 1
	app, _, _ := newServer(t, cfg)

	code, _, _ := do(t, app, "POST", "/chatbot", `{}`, nil)
	assert.Equal(t, fiber.StatusBadRequest, code)

	code, body, _ := do(t, app, "POST", "/chatbot", `{}`, nil)
	assert.Equal(t, fiber.StatusTooManyRequests, code)
	assert.JSONEq(t, `{"error": "Too many requests"}`, body)

	code, _, _ = do(t, app, "GET", "/livez", "", nil)
	assert.Equal(t, fiber.StatusOK, code)
}
