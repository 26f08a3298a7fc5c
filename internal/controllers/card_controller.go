package controllers

import (
	"io"
	"net/http"

	json "github.com/goccy/go-json"

	"newsd/internal/models"
	"newsd/internal/providers"
	"newsd/internal/publish"
	"newsd/internal/services"
)

type CardController struct {
	logger    providers.Logger
	service   services.CardServiceInterface
	publisher publish.PublisherInterface
}

func NewCardController(logger providers.Logger, service services.CardServiceInterface, publisher publish.PublisherInterface) *CardController {
	return &CardController{
		logger:    logger,
		service:   service,
		publisher: publisher,
	}
}

func (cc *CardController) GetCards(w http.ResponseWriter, r *http.Request) {
	cards, err := cc.service.List()
	if err != nil {
		cc.logger.Errorf(providers.TypeGet, "List cards failed: %s", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cards)
}

type createCardRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Slug    string `json:"slug"`
}

func (cc *CardController) CreateCard(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var payload createCardRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, &models.ValidationError{Msg: "invalid request body"})
		return
	}

	card, err := cc.service.Create(payload.Title, payload.Content, payload.Slug)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, card)
}

func (cc *CardController) UpdateCard(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var upd models.CardUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		writeError(w, &models.ValidationError{Msg: "invalid request body"})
		return
	}

	card, err := cc.service.Update(r.PathValue("id"), &upd)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, card)
}

func (cc *CardController) DeleteCard(w http.ResponseWriter, r *http.Request) {
	if err := cc.service.Delete(r.PathValue("id")); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (cc *CardController) ToggleCard(w http.ResponseWriter, r *http.Request) {
	card, err := cc.service.ToggleVisibility(r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, card)
}

type publishRequest struct {
	Message string `json:"message"`
}

func (cc *CardController) Publish(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var payload publishRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil && err != io.EOF {
		writeError(w, &models.ValidationError{Msg: "invalid request body"})
		return
	}

	outcome, err := cc.publisher.Publish(r.Context(), payload.Message)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, outcome)
}
