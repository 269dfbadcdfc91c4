package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
)

type absenceService interface {
	Absences(ctx context.Context, date string) ([]int64, error)
	ReplaceAbsences(ctx context.Context, date string, personnelIDs []int64) error
}

type AbsenceHandler struct {
	service   absenceService
	responder responder
}

func NewAbsenceHandler(service absenceService, logger *slog.Logger) *AbsenceHandler {
	return &AbsenceHandler{service: service, responder: newResponder(defaultLogger(logger))}
}

func (h *AbsenceHandler) Get(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	date, ok := rosterDateFromRequest(r)
	if !ok {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errInvalidRosterDate)
		return
	}

	ids, err := h.service.Absences(r.Context(), date)
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}
	if ids == nil {
		ids = []int64{}
	}

	h.responder.writeJSON(r.Context(), w, http.StatusOK, absencesPayload{Date: date, PersonnelIDs: ids})
}

func (h *AbsenceHandler) Put(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	date, ok := rosterDateFromRequest(r)
	if !ok {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errInvalidRosterDate)
		return
	}

	var req absencesPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errBadRequestBody)
		return
	}

	if err := h.service.ReplaceAbsences(r.Context(), date, req.PersonnelIDs); err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	h.responder.writeJSON(r.Context(), w, http.StatusNoContent, nil)
}

type absencesPayload struct {
	Date         string  `json:"date,omitempty"`
	PersonnelIDs []int64 `json:"personnel_ids"`
}
