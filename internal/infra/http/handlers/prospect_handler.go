package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	custommw "github.com/daware/warmtrack/internal/infra/http/middleware"
	"github.com/daware/warmtrack/internal/usecase"
)

type ProspectHandler struct {
	ListUC   *usecase.ListProspectsUseCase
	EngageUC *usecase.EngageProspectUseCase
	UpdateUC *usecase.UpdateProspectUseCase
}

func NewProspectHandler(list *usecase.ListProspectsUseCase, engage *usecase.EngageProspectUseCase, update *usecase.UpdateProspectUseCase) *ProspectHandler {
	return &ProspectHandler{
		ListUC:   list,
		EngageUC: engage,
		UpdateUC: update,
	}
}

// HandleList (GET /api/prospects)
func (h *ProspectHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	prospects, err := h.ListUC.Execute(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, prospects)
}

// HandleEngage (POST /api/prospects/{id}/engage)
func (h *ProspectHandler) HandleEngage(w http.ResponseWriter, r *http.Request) {
	var input usecase.EngageProspectInput
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid JSON"})
			return
		}
	}
	input.ProspectID = chi.URLParam(r, "id")

	prospect, err := h.EngageUC.Execute(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	custommw.RecordEngagement(prospect.Engagements[len(prospect.Engagements)-1].Type)
	writeJSON(w, http.StatusOK, prospect)
}

// HandleSkip (POST /api/prospects/{id}/skip)
func (h *ProspectHandler) HandleSkip(w http.ResponseWriter, r *http.Request) {
	prospect, err := h.EngageUC.Skip(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, prospect)
}

// HandleUpdate (PUT /api/prospects/{id}): typed partial merge. Unknown
// fields are rejected here at the boundary.
func (h *ProspectHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var input usecase.UpdateProspectInput
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid JSON: " + err.Error()})
		return
	}

	prospect, err := h.UpdateUC.Execute(r.Context(), chi.URLParam(r, "id"), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, prospect)
}

// HandleDelete (DELETE /api/prospects/{id}): idempotent, 200 even when the
// id was never there.
func (h *ProspectHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.UpdateUC.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
