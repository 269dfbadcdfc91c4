package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/tgberrios/CRM-sub000/internal/application"
	"github.com/tgberrios/CRM-sub000/internal/persistence"
)

type teamService interface {
	CreateTeam(ctx context.Context, input application.TeamInput) (persistence.Team, error)
	UpdateTeam(ctx context.Context, id int64, input application.TeamInput) (persistence.Team, error)
	ListTeams(ctx context.Context) ([]persistence.Team, error)
	DeleteTeam(ctx context.Context, id int64) error
	InitializeTeams(ctx context.Context) (bool, error)
}

type TeamHandler struct {
	service   teamService
	responder responder
}

func NewTeamHandler(service teamService, logger *slog.Logger) *TeamHandler {
	return &TeamHandler{service: service, responder: newResponder(defaultLogger(logger))}
}

func (h *TeamHandler) List(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	teams, err := h.service.ListTeams(r.Context())
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	payload := make([]teamResponse, 0, len(teams))
	for _, team := range teams {
		payload = append(payload, teamResponse{ID: team.ID, Name: team.Name, Category: team.Category})
	}
	h.responder.writeJSON(r.Context(), w, http.StatusOK, payload)
}

func (h *TeamHandler) Create(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var req teamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errBadRequestBody)
		return
	}

	team, err := h.service.CreateTeam(r.Context(), application.TeamInput{Name: req.Name, Category: req.Category})
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	h.responder.writeJSON(r.Context(), w, http.StatusCreated, teamResponse{ID: team.ID, Name: team.Name, Category: team.Category})
}

func (h *TeamHandler) Update(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	id, ok := teamIDFromRequest(r)
	if !ok {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errInvalidTeamID)
		return
	}

	var req teamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errBadRequestBody)
		return
	}

	team, err := h.service.UpdateTeam(r.Context(), id, application.TeamInput{Name: req.Name, Category: req.Category})
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	h.responder.writeJSON(r.Context(), w, http.StatusOK, teamResponse{ID: team.ID, Name: team.Name, Category: team.Category})
}

func (h *TeamHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	id, ok := teamIDFromRequest(r)
	if !ok {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errInvalidTeamID)
		return
	}

	if err := h.service.DeleteTeam(r.Context(), id); err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	h.responder.writeJSON(r.Context(), w, http.StatusNoContent, nil)
}

func (h *TeamHandler) Initialize(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	seeded, err := h.service.InitializeTeams(r.Context())
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	h.responder.writeJSON(r.Context(), w, http.StatusOK, initializeTeamsResponse{Seeded: seeded})
}

func teamIDFromRequest(r *http.Request) (int64, bool) {
	raw, ok := TeamIDFromContext(r.Context())
	if !ok || strings.TrimSpace(raw) == "" {
		return 0, false
	}
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

type teamRequest struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

type teamResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

type initializeTeamsResponse struct {
	Seeded bool `json:"seeded"`
}
