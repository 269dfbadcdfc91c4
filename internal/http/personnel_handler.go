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

type personnelService interface {
	CreatePersonnel(ctx context.Context, input application.PersonnelInput) (persistence.Personnel, error)
	UpdatePersonnel(ctx context.Context, id int64, input application.PersonnelInput) (persistence.Personnel, error)
	DeletePersonnel(ctx context.Context, id int64) error
	ListPersonnel(ctx context.Context) ([]application.PersonnelView, error)
	SetWorkDays(ctx context.Context, personnelID int64, pattern string) error
}

type PersonnelHandler struct {
	service   personnelService
	responder responder
}

func NewPersonnelHandler(service personnelService, logger *slog.Logger) *PersonnelHandler {
	return &PersonnelHandler{service: service, responder: newResponder(defaultLogger(logger))}
}

func (h *PersonnelHandler) List(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	views, err := h.service.ListPersonnel(r.Context())
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	payload := make([]personnelResponse, 0, len(views))
	for _, view := range views {
		payload = append(payload, personnelResponse{
			ID:       view.ID,
			Name:     view.Name,
			Role:     view.Role,
			WorkDays: view.WorkDays,
		})
	}
	h.responder.writeJSON(r.Context(), w, http.StatusOK, payload)
}

func (h *PersonnelHandler) Create(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var req personnelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errBadRequestBody)
		return
	}

	person, err := h.service.CreatePersonnel(r.Context(), application.PersonnelInput{Name: req.Name, Role: req.Role})
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	h.responder.writeJSON(r.Context(), w, http.StatusCreated, personnelResponse{
		ID:   person.ID,
		Name: person.Name,
		Role: person.Role,
	})
}

func (h *PersonnelHandler) Update(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	id, ok := personnelIDFromRequest(r)
	if !ok {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errInvalidPersonnelID)
		return
	}

	var req personnelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errBadRequestBody)
		return
	}

	person, err := h.service.UpdatePersonnel(r.Context(), id, application.PersonnelInput{Name: req.Name, Role: req.Role})
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	h.responder.writeJSON(r.Context(), w, http.StatusOK, personnelResponse{
		ID:   person.ID,
		Name: person.Name,
		Role: person.Role,
	})
}

func (h *PersonnelHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	id, ok := personnelIDFromRequest(r)
	if !ok {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errInvalidPersonnelID)
		return
	}

	if err := h.service.DeletePersonnel(r.Context(), id); err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	h.responder.writeJSON(r.Context(), w, http.StatusNoContent, nil)
}

func (h *PersonnelHandler) SetWorkDays(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	id, ok := personnelIDFromRequest(r)
	if !ok {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errInvalidPersonnelID)
		return
	}

	var req workDaysRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errBadRequestBody)
		return
	}

	if err := h.service.SetWorkDays(r.Context(), id, req.WorkDays); err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	h.responder.writeJSON(r.Context(), w, http.StatusNoContent, nil)
}

func personnelIDFromRequest(r *http.Request) (int64, bool) {
	raw, ok := PersonnelIDFromContext(r.Context())
	if !ok || strings.TrimSpace(raw) == "" {
		return 0, false
	}
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

type personnelRequest struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

type workDaysRequest struct {
	WorkDays string `json:"work_days"`
}

type personnelResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	WorkDays string `json:"work_days,omitempty"`
}
