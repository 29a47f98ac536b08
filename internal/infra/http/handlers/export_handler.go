package handlers

import (
	"net/http"

	"github.com/daware/warmtrack/internal/usecase"
)

type ExportHandler struct {
	ExportUC *usecase.ExportProspectsUseCase
}

func NewExportHandler(exportUC *usecase.ExportProspectsUseCase) *ExportHandler {
	return &ExportHandler{ExportUC: exportUC}
}

// HandleExportCSV (GET /api/export/csv)
func (h *ExportHandler) HandleExportCSV(w http.ResponseWriter, r *http.Request) {
	csv, err := h.ExportUC.CSV(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", "attachment; filename=da_prospects_export.csv")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(csv))
}
