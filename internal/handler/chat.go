// Package handler contains the HTTP handlers for the compliance service.
//
// This file implements the conversational assistant endpoints.
package handler

import (
	"log/slog"
	"net/http"

	"github.com/Ralastessh/Industry-service/internal/service"
)

// ChatHandler handles chat requests.
type ChatHandler struct {
	service service.ChatService
	logger  *slog.Logger
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(service service.ChatService, logger *slog.Logger) *ChatHandler {
	return &ChatHandler{
		service: service,
		logger:  logger,
	}
}

// chatRequest is the payload for POST /api/chat.
type chatRequest struct {
	Message string `json:"message"`
}

// Send handles POST /api/chat.
func (h *ChatHandler) Send(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := decodeJSON(r, &req); err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}

	reply, err := h.service.Send(r.Context(), req.Message)
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, reply)
}

// History handles GET /api/chat.
func (h *ChatHandler) History(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"messages": h.service.History(),
	})
}
