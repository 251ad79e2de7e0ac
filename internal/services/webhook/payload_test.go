package webhook

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, raw string) map[string]interface{} {
	t.Helper()
	dec := json.NewDecoder(bytes.NewBufferString(raw))
	dec.UseNumber()
	body := map[string]interface{}{}
	require.NoError(t, dec.Decode(&body))
	return body
}

func TestTelegramMessage(t *testing.T) {
	cases := []struct {
		name, raw, text, chatID string
	}{
		{"bot api update", `{"message":{"text":"oi","chat":{"id":1376992445}}}`, "oi", "1376992445"},
		{"flat text", `{"text":"tarefa","chat_id":"77"}`, "tarefa", "77"},
		{"string message", `{"message":"olá","fromNumber":"5511"}`, "olá", "5511"},
		{"callback query", `{"callback_query":{"data":"sim","from":{"id":42}}}`, "sim", "42"},
		{"nested wins", `{"message":{"text":"a","chat":{"id":1}},"text":"b","chat_id":2}`, "a", "1"},
		{"negative group id", `{"message":{"text":"a","chat":{"id":-100200300}}}`, "a", "-100200300"},
		{"missing text", `{"message":{"chat":{"id":1}}}`, "", "1"},
		{"missing chat", `{"text":"a"}`, "a", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			text, chatID := TelegramMessage(decode(t, tc.raw))
			assert.Equal(t, tc.text, text)
			assert.Equal(t, tc.chatID, chatID)
		})
	}
}

func TestWhatsAppMessage(t *testing.T) {
	text, from := WhatsAppMessage(decode(t, `{"message":" bom dia ","fromNumber":5511999999999}`))
	assert.Equal(t, "bom dia", text)
	assert.Equal(t, "5511999999999", from)

	text, from = WhatsAppMessage(decode(t, `{"message":{"x":1}}`))
	assert.Empty(t, text)
	assert.Empty(t, from)
}
