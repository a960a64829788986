package prompt

import (
	"strings"

	"github.com/unicorn004/AlumniVerse/internal/model"
)

const (
	NoPreviousConversation = "No previous conversation."

	// MaxContextMessages bounds how much chat history is sent to the model.
	MaxContextMessages = 20
)

// FormatConversationContext renders the most recent messages, oldest first,
// one "sender: content" line each.
func FormatConversationContext(messages []model.ChatMessage) string {
	if len(messages) == 0 {
		return NoPreviousConversation
	}

	if len(messages) > MaxContextMessages {
		messages = messages[len(messages)-MaxContextMessages:]
	}

	lines := make([]string, 0, len(messages))
	for _, msg := range messages {
		lines = append(lines, msg.SenderName+": "+msg.Content)
	}
	return strings.Join(lines, "\n")
}
