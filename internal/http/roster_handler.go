package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/tgberrios/CRM-sub000/internal/application"
	"github.com/tgberrios/CRM-sub000/internal/export"
	"github.com/tgberrios/CRM-sub000/internal/persistence"
	"github.com/tgberrios/CRM-sub000/internal/roster"
)

type rosterService interface {
	History(ctx context.Context) ([]roster.HistoryEntry, error)
	LoadConfiguration(ctx context.Context, date string) (application.Configuration, error)
	SaveConfiguration(ctx context.Context, params application.SaveConfigurationParams) (persistence.ConfigHistoryEntry, error)
	DeleteConfiguration(ctx context.Context, date string) error
	Randomize(ctx context.Context, params application.RandomizeParams) ([]roster.TeamSnapshot, error)
}

type RosterHandler struct {
	service   rosterService
	responder responder
}

func NewRosterHandler(service rosterService, logger *slog.Logger) *RosterHandler {
	return &RosterHandler{service: service, responder: newResponder(defaultLogger(logger))}
}

func (h *RosterHandler) History(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	entries, err := h.service.History(r.Context())
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	payload := make([]historyEntryResponse, 0, len(entries))
	for _, entry := range entries {
		payload = append(payload, historyEntryResponse{ID: entry.ID, Date: entry.Date, Data: entry.Data})
	}
	h.responder.writeJSON(r.Context(), w, http.StatusOK, payload)
}

func (h *RosterHandler) Get(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	date, ok := rosterDateFromRequest(r)
	if !ok {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errInvalidRosterDate)
		return
	}

	cfg, err := h.service.LoadConfiguration(r.Context(), date)
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	h.responder.writeJSON(r.Context(), w, http.StatusOK, configurationResponse(cfg))
}

func (h *RosterHandler) Put(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	date, ok := rosterDateFromRequest(r)
	if !ok {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errInvalidRosterDate)
		return
	}

	var req rosterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errBadRequestBody)
		return
	}

	entry, err := h.service.SaveConfiguration(r.Context(), application.SaveConfigurationParams{
		Date:  date,
		Teams: req.Teams,
	})
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	h.responder.writeJSON(r.Context(), w, http.StatusOK, historyEntryResponse{
		ID:   entry.ID,
		Date: entry.Date,
		Data: entry.Data,
	})
}

func (h *RosterHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	date, ok := rosterDateFromRequest(r)
	if !ok {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errInvalidRosterDate)
		return
	}

	if err := h.service.DeleteConfiguration(r.Context(), date); err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	h.responder.writeJSON(r.Context(), w, http.StatusNoContent, nil)
}

func (h *RosterHandler) Randomize(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	date, ok := rosterDateFromRequest(r)
	if !ok {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errInvalidRosterDate)
		return
	}

	var req rosterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errBadRequestBody)
		return
	}

	teams, err := h.service.Randomize(r.Context(), application.RandomizeParams{Date: date, Teams: req.Teams})
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	h.responder.writeJSON(r.Context(), w, http.StatusOK, rosterRequest{Teams: teams})
}

func (h *RosterHandler) Export(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	date, ok := rosterDateFromRequest(r)
	if !ok {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errInvalidRosterDate)
		return
	}

	cfg, err := h.service.LoadConfiguration(r.Context(), date)
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	// Build the workbook in memory first so a failure can still produce a
	// JSON error envelope instead of a truncated download.
	var buf bytes.Buffer
	if err := export.WriteRosterXLSX(&buf, cfg.Date, cfg.Teams); err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "roster-"+cfg.Date+".xlsx"))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		h.responder.loggerFor(r.Context()).ErrorContext(r.Context(), "failed to stream workbook", "error", err)
	}
}

func rosterDateFromRequest(r *http.Request) (string, bool) {
	date, ok := RosterDateFromContext(r.Context())
	if !ok || strings.TrimSpace(date) == "" {
		return "", false
	}
	return strings.TrimSpace(date), true
}

func configurationResponse(cfg application.Configuration) configurationPayload {
	available := make([]personnelResponse, 0, len(cfg.AvailablePersonnel))
	for _, view := range cfg.AvailablePersonnel {
		available = append(available, personnelResponse{
			ID:       view.ID,
			Name:     view.Name,
			Role:     view.Role,
			WorkDays: view.WorkDays,
		})
	}
	return configurationPayload{
		Date:               cfg.Date,
		EntryID:            cfg.EntryID,
		Teams:              cfg.Teams,
		AvailablePersonnel: available,
		Recovered:          cfg.Recovered,
		Warning:            cfg.Warning,
	}
}

type rosterRequest struct {
	Teams []roster.TeamSnapshot `json:"teams"`
}

type historyEntryResponse struct {
	ID   int64  `json:"id"`
	Date string `json:"date"`
	Data string `json:"data"`
}

type configurationPayload struct {
	Date               string                `json:"date"`
	EntryID            int64                 `json:"entry_id,omitempty"`
	Teams              []roster.TeamSnapshot `json:"teams"`
	AvailablePersonnel []personnelResponse   `json:"available_personnel"`
	Recovered          bool                  `json:"recovered,omitempty"`
	Warning            string                `json:"warning,omitempty"`
}
