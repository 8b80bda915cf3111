package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	apperrors "ramenmap/internal/errors"
)

type messageResponse struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Warn("encode response", slog.Any("error", err))
	}
}

// writeError maps err to a status with apperrors.StatusOf. Server errors are
// logged since their text is not sent to the client.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, msg := apperrors.StatusOf(err)
	if status >= http.StatusInternalServerError {
		slog.Error("request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
	}
	writeJSON(w, status, errorResponse{Error: msg})
}

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return apperrors.ErrBadRequest("invalid request body")
	}
	return nil
}
