package handlers

import (
	"net/http"

	"github.com/daware/warmtrack/internal/usecase"
)

type StatsHandler struct {
	StatsUC *usecase.ProspectStatsUseCase
}

func NewStatsHandler(statsUC *usecase.ProspectStatsUseCase) *StatsHandler {
	return &StatsHandler{StatsUC: statsUC}
}

// HandleQueue (GET /api/queue)
func (h *StatsHandler) HandleQueue(w http.ResponseWriter, r *http.Request) {
	queue, err := h.StatsUC.DueQueue(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, queue)
}

// HandleStats (GET /api/stats)
func (h *StatsHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.StatsUC.Summary(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
