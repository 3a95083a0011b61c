package services

import (
	"strings"

	"github.com/vasantha-kumar-s/career-bot/internal/models"
)

// ChatMemoryWindow is the number of most recent turns rendered into the prompt.
const ChatMemoryWindow = 20

// FormatChatMemory renders the last window turns as "You: ..." / "AI: ..." lines.
// Older turns are dropped, not summarized.
func FormatChatMemory(history []models.ChatTurn, window int) string {
	if window > 0 && len(history) > window {
		history = history[len(history)-window:]
	}

	lines := make([]string, 0, len(history))
	for _, t := range history {
		lines = append(lines, roleLabel(t.Role)+": "+strings.TrimSpace(t.Message))
	}
	return strings.Join(lines, "\n")
}

func roleLabel(role string) string {
	if role == models.RoleUser {
		return "You"
	}
	return "AI"
}
