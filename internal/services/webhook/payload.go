package webhook

import (
	"encoding/json"
	"strconv"
	"strings"
)

// TelegramMessage pulls the text and chat id out of a Telegram update or of
// one of the flattened shapes automation tools forward. Fields are tried in
// priority order and the first non-empty one wins.
func TelegramMessage(body map[string]interface{}) (text, chatID string) {
	message, _ := body["message"].(map[string]interface{})
	callback, _ := body["callback_query"].(map[string]interface{})

	text = firstNonEmpty(
		stringAt(message, "text"),
		stringAt(body, "text"),
		plainString(body["message"]),
		stringAt(callback, "data"),
	)

	chat, _ := message["chat"].(map[string]interface{})
	from, _ := callback["from"].(map[string]interface{})
	chatID = firstNonEmpty(
		idAt(chat, "id"),
		idAt(body, "chat_id"),
		idAt(body, "fromNumber"),
		idAt(from, "id"),
	)
	return strings.TrimSpace(text), chatID
}

// WhatsAppMessage reads the {message, fromNumber} body sent by the n8n bridge.
func WhatsAppMessage(body map[string]interface{}) (text, fromNumber string) {
	return strings.TrimSpace(plainString(body["message"])), idAt(body, "fromNumber")
}

func stringAt(m map[string]interface{}, key string) string {
	if m == nil {
		return ""
	}
	return plainString(m[key])
}

func plainString(v interface{}) string {
	s, _ := v.(string)
	return strings.TrimSpace(s)
}

// idAt accepts ids sent as JSON numbers or strings.
func idAt(m map[string]interface{}, key string) string {
	if m == nil {
		return ""
	}
	switch v := m[key].(type) {
	case string:
		return strings.TrimSpace(v)
	case json.Number:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int64:
		return strconv.FormatInt(v, 10)
	case int:
		return strconv.Itoa(v)
	}
	return ""
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
