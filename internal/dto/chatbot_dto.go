package dto

import (
	"errors"
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/unicorn004/AlumniVerse/internal/model"
)

var ErrPromptRequired = errors.New("Prompt is required")

const ChatbotStatusSuccess = "success"

type ChatbotRequest struct {
	Prompt string `json:"prompt"`
	// UserProfile is the raw decoded JSON value; see model.DecodeUserProfile.
	UserProfile any                 `json:"user_profile"`
	Messages    []model.ChatMessage `json:"messages"`
}

type ChatbotResponse struct {
	Response string `json:"response"`
	Status   string `json:"status"`
}

// ParseChatbotRequest reads the /chatbot body. A missing or unparsable body
// or a missing "prompt" key is ErrPromptRequired. A "messages" value that is
// neither a list nor empty is returned as a plain error.
func ParseChatbotRequest(body []byte) (*ChatbotRequest, error) {
	root, ok := parseObject(body)
	if !ok {
		return nil, ErrPromptRequired
	}

	prompt := root.Get("prompt")
	if !prompt.Exists() {
		return nil, ErrPromptRequired
	}

	messages, err := parseMessages(root.Get("messages"))
	if err != nil {
		return nil, err
	}

	return &ChatbotRequest{
		Prompt:      prompt.String(),
		UserProfile: root.Get("user_profile").Value(),
		Messages:    messages,
	}, nil
}

func parseMessages(raw gjson.Result) ([]model.ChatMessage, error) {
	if !raw.Exists() || isFalsy(raw) {
		return nil, nil
	}
	if !raw.IsArray() {
		return nil, fmt.Errorf("messages must be a list, got %s", raw.Type)
	}

	items := raw.Array()
	messages := make([]model.ChatMessage, 0, len(items))
	for i, item := range items {
		if !item.IsObject() {
			return nil, fmt.Errorf("messages[%d] must be an object, got %s", i, item.Raw)
		}
		messages = append(messages, model.ChatMessage{
			SenderName: stringOr(item.Get("senderName"), model.UnknownSender),
			Content:    stringOr(item.Get("content"), ""),
		})
	}
	return messages, nil
}

func stringOr(v gjson.Result, fallback string) string {
	if !v.Exists() || v.Type == gjson.Null {
		return fallback
	}
	return v.String()
}

func isFalsy(v gjson.Result) bool {
	switch v.Type {
	case gjson.Null, gjson.False:
		return true
	case gjson.Number:
		return v.Num == 0
	case gjson.String:
		return v.Str == ""
	case gjson.JSON:
		if v.IsArray() {
			return len(v.Array()) == 0
		}
		return len(v.Map()) == 0
	default:
		return false
	}
}
