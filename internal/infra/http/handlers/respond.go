package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/daware/warmtrack/internal/usecase"
)

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// writeError maps usecase failures onto HTTP: missing ids are 404, domain
// validation is 400, everything else is a 500.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case usecase.IsNotFound(err):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "Not found", Code: usecase.CodeNotFound})
	case usecase.IsDomainError(err):
		de := err.(*usecase.DomainError)
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: de.Message, Code: de.Code})
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error(), Code: usecase.CodeStorageError})
	}
}
