package chat

import (
	"strings"
	"unicode/utf8"

	"github.com/gestorai/gestorai/internal/domain"
	"github.com/gestorai/gestorai/internal/services/ai"
)

const summaryWords = 6

// BuildPrompt puts the system prompt first and maps stored history onto
// completion roles. Anything not sent by the user is replayed as the assistant.
func BuildPrompt(systemPrompt string, history []domain.ChatMessage) []ai.Message {
	prompt := make([]ai.Message, 0, len(history)+1)
	prompt = append(prompt, ai.Message{Role: ai.RoleSystem, Content: systemPrompt})
	for i := range history {
		role := ai.RoleAssistant
		if history[i].IsFromUser() {
			role = ai.RoleUser
		}
		prompt = append(prompt, ai.Message{Role: role, Content: history[i].Text})
	}
	return prompt
}

// TruncateText safely truncates a UTF-8 string to maxLen runes
func TruncateText(input string, maxLen int) string {
	if input == "" || maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(input) <= maxLen {
		return input
	}

	var b strings.Builder
	count := 0
	for _, r := range input {
		if count >= maxLen {
			break
		}
		b.WriteRune(r)
		count++
	}
	return b.String()
}

// NormalizeSummary collapses whitespace and enforces the stored length.
func NormalizeSummary(summary string) string {
	summary = strings.Join(strings.Fields(summary), " ")
	if summary == "" {
		return DefaultSummary
	}
	return TruncateText(summary, MaxSummaryLength)
}

// SummaryFromMessage titles a conversation after the first words of its opening message.
func SummaryFromMessage(text string) string {
	words := strings.Fields(text)
	if len(words) > summaryWords {
		return NormalizeSummary(strings.Join(words[:summaryWords], " ") + "...")
	}
	return NormalizeSummary(strings.Join(words, " "))
}
