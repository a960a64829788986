package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/unicorn004/AlumniVerse/internal/model"
)

var ErrInvalidModerationOutput = errors.New("invalid moderation output")

// ParseModerationOutput validates the model's raw answer against the
// {"decision": 0|1, "reason": string} schema. The JSON may be wrapped in a
// Markdown code fence; anything else that does not match is rejected.
func ParseModerationOutput(text string) (*model.ModerationResult, error) {
	payload := stripCodeFence(text)
	if !gjson.Valid(payload) {
		return nil, fmt.Errorf("%w: not valid JSON: %q", ErrInvalidModerationOutput, text)
	}

	root := gjson.Parse(payload)
	if !root.IsObject() {
		return nil, fmt.Errorf("%w: expected a JSON object: %q", ErrInvalidModerationOutput, text)
	}

	decision := root.Get("decision")
	if decision.Type != gjson.Number {
		return nil, fmt.Errorf("%w: decision must be a number: %q", ErrInvalidModerationOutput, text)
	}
	if decision.Num != model.DecisionRejected && decision.Num != model.DecisionAccepted {
		return nil, fmt.Errorf("%w: decision must be 0 or 1, got %s", ErrInvalidModerationOutput, decision.Raw)
	}

	result := &model.ModerationResult{Decision: int(decision.Num)}

	reason := root.Get("reason")
	switch {
	case !reason.Exists():
	case reason.Type == gjson.String:
		result.Reason = reason.Str
	default:
		return nil, fmt.Errorf("%w: reason must be a string, got %s", ErrInvalidModerationOutput, reason.Raw)
	}

	return result, nil
}

func stripCodeFence(text string) string {
	text = strings.TrimSpace(text)
	start := strings.Index(text, "```")
	if start < 0 {
		return text
	}

	body := text[start+3:]
	if end := strings.Index(body, "```"); end >= 0 {
		body = body[:end]
	}
	// drop the info string, e.g. ```json
	if nl := strings.IndexByte(body, '\n'); nl >= 0 && !strings.ContainsAny(body[:nl], "{[") {
		body = body[nl+1:]
	}
	return strings.TrimSpace(body)
}
