// File: internal/handlers/chat_handler.go
package handlers

import (
	"net/http"

	"github.com/gestorai/gestorai/internal/dtos"
	"github.com/gestorai/gestorai/internal/services/chat"
)

type ChatHandler struct {
	chatService chat.Service
	logger      Logger
}

func NewChatHandler(chatService chat.Service, logger Logger) *ChatHandler {
	return &ChatHandler{chatService: chatService, logger: logger}
}

// SendMessage handles POST /api/chat.
func (h *ChatHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	var req dtos.ChatRequestDTO
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, "O corpo da requisição não é um JSON válido.", http.StatusBadRequest)
		return
	}

	reply, err := h.chatService.Send(r.Context(), identity(r).UserID, req.ConversationID, req.Text())
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"response": reply.Text})
}

// GetConversation handles GET /api/chat/{conversationId}.
func (h *ChatHandler) GetConversation(w http.ResponseWriter, r *http.Request) {
	conversationID, ok := pathID(r, "conversationId")
	if !ok {
		writeError(w, "Conversa não encontrada.", http.StatusNotFound)
		return
	}

	found, err := h.chatService.GetConversation(r.Context(), identity(r).UserID, conversationID)
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"conversation": found})
}

// ListConversations handles GET /api/conversations.
func (h *ChatHandler) ListConversations(w http.ResponseWriter, r *http.Request) {
	conversations, err := h.chatService.ListConversations(r.Context(), identity(r).UserID)
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"conversations": conversations})
}

// CreateConversation handles POST /api/conversations.
func (h *ChatHandler) CreateConversation(w http.ResponseWriter, r *http.Request) {
	var req dtos.ConversationCreateRequestDTO
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, "O corpo da requisição não é um JSON válido.", http.StatusBadRequest)
		return
	}

	created, err := h.chatService.CreateConversation(r.Context(), identity(r).UserID, req.Summary, chat.OriginWeb)
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{"conversation": created})
}
