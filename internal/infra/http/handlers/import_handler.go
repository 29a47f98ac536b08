package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	custommw "github.com/daware/warmtrack/internal/infra/http/middleware"
	"github.com/daware/warmtrack/internal/usecase"
)

type ImportHandler struct {
	ImportUC    *usecase.ImportProspectsUseCase
	rateLimiter *RateLimiter
}

func NewImportHandler(importUC *usecase.ImportProspectsUseCase) *ImportHandler {
	return &ImportHandler{
		ImportUC:    importUC,
		rateLimiter: NewRateLimiter(10, time.Minute), // 10 req/min per IP
	}
}

// HandleImportURLs (POST /api/import/urls)
func (h *ImportHandler) HandleImportURLs(w http.ResponseWriter, r *http.Request) {
	if !h.rateLimiter.Allow(getClientIP(r)) {
		writeJSON(w, http.StatusTooManyRequests, errorResponse{Error: "Too many requests. Please try again later."})
		return
	}

	var input usecase.ImportURLsInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid JSON"})
		return
	}

	out, err := h.ImportUC.ImportURLs(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	custommw.RecordImport("urls", out.Added)
	writeJSON(w, http.StatusOK, out)
}

// HandleImportRows (POST /api/import/csv)
func (h *ImportHandler) HandleImportRows(w http.ResponseWriter, r *http.Request) {
	if !h.rateLimiter.Allow(getClientIP(r)) {
		writeJSON(w, http.StatusTooManyRequests, errorResponse{Error: "Too many requests. Please try again later."})
		return
	}

	var input usecase.ImportRowsInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid JSON"})
		return
	}

	out, err := h.ImportUC.ImportRows(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	custommw.RecordImport("csv", out.Added)
	writeJSON(w, http.StatusOK, out)
}
