package controllers

import (
	"net/http"

	json "github.com/goccy/go-json"

	"newsd/internal/models"
	"newsd/internal/providers"
	"newsd/internal/services"
)

type ChatController struct {
	logger  providers.Logger
	service services.ChatServiceInterface
}

func NewChatController(logger providers.Logger, service services.ChatServiceInterface) *ChatController {
	return &ChatController{
		logger:  logger,
		service: service,
	}
}

type chatRequest struct {
	Message string              `json:"message"`
	History []services.ChatTurn `json:"history"`
}

func (cc *ChatController) Chat(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var payload chatRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, &models.ValidationError{Msg: "invalid request body"})
		return
	}
	if payload.Message == "" {
		writeError(w, &models.ValidationError{Msg: "message is required"})
		return
	}

	reply, err := cc.service.Send(r.Context(), payload.Message, payload.History)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"reply": reply})
}
