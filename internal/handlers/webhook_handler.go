package handlers

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"

	"github.com/gestorai/gestorai/internal/services/webhook"
)

const telegramSecretHeader = "X-Telegram-Bot-Api-Secret-Token"

type WebhookHandler struct {
	webhookService *webhook.Service
	telegramSecret string
	logger         Logger
}

func NewWebhookHandler(webhookService *webhook.Service, telegramSecret string, logger Logger) *WebhookHandler {
	return &WebhookHandler{webhookService: webhookService, telegramSecret: telegramSecret, logger: logger}
}

// Telegram handles POST /api/telegram-webhook.
func (h *WebhookHandler) Telegram(w http.ResponseWriter, r *http.Request) {
	if h.telegramSecret != "" &&
		subtle.ConstantTimeCompare([]byte(r.Header.Get(telegramSecretHeader)), []byte(h.telegramSecret)) != 1 {
		h.logger.Warn("telegram webhook secret mismatch", "remote_addr", r.RemoteAddr)
		writeError(w, "Token inválido.", http.StatusUnauthorized)
		return
	}

	body, ok := h.decodeLoose(w, r)
	if !ok {
		return
	}
	text, chatID := webhook.TelegramMessage(body)

	reply, err := h.webhookService.HandleTelegram(r.Context(), text, chatID)
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"response": reply, "chatId": chatID})
}

// WhatsApp handles POST /api/whatsapp-webhook.
func (h *WebhookHandler) WhatsApp(w http.ResponseWriter, r *http.Request) {
	body, ok := h.decodeLoose(w, r)
	if !ok {
		return
	}
	text, fromNumber := webhook.WhatsAppMessage(body)

	reply, err := h.webhookService.HandleWhatsApp(r.Context(), text, fromNumber)
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"response": reply, "to": fromNumber})
}

// decodeLoose keeps numbers as json.Number so large chat ids survive intact.
func (h *WebhookHandler) decodeLoose(w http.ResponseWriter, r *http.Request) (map[string]interface{}, bool) {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBody))
	dec.UseNumber()
	body := map[string]interface{}{}
	if err := dec.Decode(&body); err != nil {
		writeError(w, "Payload inválido.", http.StatusBadRequest)
		return nil, false
	}
	return body, true
}
