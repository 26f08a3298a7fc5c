package controllers

import (
	"errors"
	"net/http"

	json "github.com/goccy/go-json"

	"newsd/internal/models"
)

const maxRequestBodySize = 1 << 20 // 1 MB

type errorBody struct {
	Error string `json:"error"`
	Stage string `json:"stage,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	gson, err := json.Marshal(v)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(gson)
}

// writeError maps the error taxonomy onto HTTP statuses. Everything
// unrecognized collapses to an opaque 500.
func writeError(w http.ResponseWriter, err error) {
	var validationErr *models.ValidationError
	var stageErr *models.StageError
	var upstreamErr *models.UpstreamError

	switch {
	case errors.As(err, &validationErr):
		writeJSON(w, http.StatusBadRequest, errorBody{Error: validationErr.Msg})
	case errors.Is(err, models.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorBody{Error: "not found"})
	case errors.Is(err, models.ErrUnauthorized):
		writeJSON(w, http.StatusUnauthorized, errorBody{Error: "authentication required"})
	case errors.As(err, &stageErr):
		writeJSON(w, http.StatusInternalServerError, errorBody{
			Error: stageErr.Err.Error(),
			Stage: stageErr.Stage,
		})
	case errors.As(err, &upstreamErr):
		status := http.StatusBadGateway
		if upstreamErr.Timeout {
			status = http.StatusGatewayTimeout
		}
		writeJSON(w, status, errorBody{Error: upstreamErr.Summary})
	default:
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "internal server error"})
	}
}
