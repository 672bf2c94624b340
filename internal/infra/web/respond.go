package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"interview-ai-backend/internal/domain"
	"interview-ai-backend/internal/llmparse"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type errorResponse struct {
	Error string `json:"error"`
	Raw   string `json:"raw_response,omitempty"`
}

// writeError maps domain errors onto HTTP statuses. The mapping lives only
// here; usecases never see status codes.
func writeError(w http.ResponseWriter, log *zerolog.Logger, err error) {
	var perr *llmparse.Error
	if errors.As(err, &perr) {
		writeJSON(w, http.StatusBadGateway, errorResponse{
			Error: "model response violated the expected format",
			Raw:   perr.Raw,
		})
		return
	}

	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrInvalidArgument),
		errors.Is(err, domain.ErrUnsupportedFile),
		errors.Is(err, domain.ErrExtraction):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrInterviewCompleted),
		errors.Is(err, domain.ErrInterviewBusy),
		errors.Is(err, domain.ErrAlreadyExists):
		status = http.StatusConflict
	case errors.Is(err, domain.ErrUpstream),
		errors.Is(err, domain.ErrNoQuestionsGenerated):
		status = http.StatusBadGateway
	}

	msg := err.Error()
	if status == http.StatusInternalServerError {
		log.Error().Err(err).Msg("request failed")
		msg = "internal error"
	}
	writeJSON(w, status, errorResponse{Error: msg})
}
