package group

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/attesto/attesto/internal/group"
	"github.com/attesto/attesto/internal/http/auth"
	"github.com/attesto/attesto/internal/http/httpx"
	"github.com/attesto/attesto/internal/pricing"
	"github.com/attesto/attesto/internal/quote"
)

type Handler struct {
	svc *group.Service
}

func NewHandler(svc *group.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.update)
	r.Delete("/{id}", h.delete)
	r.Get("/{id}/assignments", h.listAssignments)
	r.Post("/{id}/assignments", h.assign)
	r.Delete("/assignments/{assignmentID}", h.unassign)
	r.Post("/{id}/recalculate", h.recalculate)
}

type groupResponse struct {
	ID                  uuid.UUID       `json:"id"`
	QuoteID             uuid.UUID       `json:"quote_id"`
	Label               string          `json:"label"`
	DocumentType        string          `json:"document_type"`
	Complexity          string          `json:"complexity"`
	CertificationTypeID *uuid.UUID      `json:"certification_type_id,omitempty"`
	WordCount           int             `json:"word_count"`
	BillablePages       decimal.Decimal `json:"billable_pages"`
	LineTotal           decimal.Decimal `json:"line_total"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           *time.Time      `json:"updated_at,omitempty"`
}

func toResponse(g *group.Group) groupResponse {
	return groupResponse{
		ID:                  g.ID,
		QuoteID:             g.QuoteID,
		Label:               g.Label,
		DocumentType:        g.DocumentType,
		Complexity:          string(g.Complexity),
		CertificationTypeID: g.CertificationTypeID,
		WordCount:           g.WordCount,
		BillablePages:       g.BillablePages,
		LineTotal:           g.LineTotal,
		CreatedAt:           g.CreatedAt,
		UpdatedAt:           g.UpdatedAt,
	}
}

type assignmentResponse struct {
	ID                uuid.UUID `json:"id"`
	GroupID           uuid.UUID `json:"group_id"`
	ItemType          string    `json:"item_type"`
	ItemID            uuid.UUID `json:"item_id"`
	WordCountOverride *int      `json:"word_count_override,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

func toAssignmentResponse(a *group.Assignment) assignmentResponse {
	return assignmentResponse{
		ID:                a.ID,
		GroupID:           a.GroupID,
		ItemType:          string(a.ItemType),
		ItemID:            a.ItemID,
		WordCountOverride: a.WordCountOverride,
		CreatedAt:         a.CreatedAt,
	}
}

type createGroupRequest struct {
	QuoteID             uuid.UUID  `json:"quote_id"`
	Label               string     `json:"label"`
	DocumentType        string     `json:"document_type"`
	Complexity          string     `json:"complexity"`
	CertificationTypeID *uuid.UUID `json:"certification_type_id,omitempty"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createGroupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	staff, _ := auth.FromContext(r.Context())

	g, err := h.svc.Create(r.Context(), req.QuoteID, group.CreateParams{
		Label:               req.Label,
		DocumentType:        req.DocumentType,
		Complexity:          pricing.Complexity(req.Complexity),
		CertificationTypeID: req.CertificationTypeID,
	}, staff.ID)
	if err != nil {
		httpx.Error(w, err, quote.ErrNotFound)
		return
	}

	httpx.JSON(w, http.StatusCreated, toResponse(g))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	g, err := h.svc.Get(r.Context(), id)
	if err != nil {
		httpx.Error(w, err, group.ErrNotFound)
		return
	}

	httpx.JSON(w, http.StatusOK, toResponse(g))
}

type updateGroupRequest struct {
	Label               *string    `json:"label,omitempty"`
	DocumentType        *string    `json:"document_type,omitempty"`
	Complexity          *string    `json:"complexity,omitempty"`
	CertificationTypeID *uuid.UUID `json:"certification_type_id,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateGroupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	params := group.UpdateParams{
		Label:               req.Label,
		DocumentType:        req.DocumentType,
		CertificationTypeID: req.CertificationTypeID,
	}
	if req.Complexity != nil {
		c := pricing.Complexity(*req.Complexity)
		params.Complexity = &c
	}

	staff, _ := auth.FromContext(r.Context())

	g, err := h.svc.Update(r.Context(), id, params, staff.ID)
	if err != nil {
		httpx.Error(w, err, group.ErrNotFound)
		return
	}

	httpx.JSON(w, http.StatusOK, toResponse(g))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	staff, _ := auth.FromContext(r.Context())

	if err := h.svc.Delete(r.Context(), id, staff.ID); err != nil {
		httpx.Error(w, err, group.ErrNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listAssignments(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	assignments, err := h.svc.ListAssignments(r.Context(), id)
	if err != nil {
		httpx.Error(w, err, group.ErrNotFound)
		return
	}

	out := make([]assignmentResponse, 0, len(assignments))
	for _, a := range assignments {
		out = append(out, toAssignmentResponse(a))
	}

	httpx.JSON(w, http.StatusOK, out)
}

type assignRequest struct {
	ItemType          string    `json:"item_type"`
	ItemID            uuid.UUID `json:"item_id"`
	WordCountOverride *int      `json:"word_count_override,omitempty"`
}

func (h *Handler) assign(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req assignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	staff, _ := auth.FromContext(r.Context())

	a, err := h.svc.Assign(r.Context(), id, group.ItemType(req.ItemType), req.ItemID, staff.ID, req.WordCountOverride)
	if err != nil {
		httpx.Error(w, err, group.ErrNotFound, group.ErrItemNotFound)
		return
	}

	httpx.JSON(w, http.StatusCreated, toAssignmentResponse(a))
}

func (h *Handler) unassign(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "assignmentID"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	staff, _ := auth.FromContext(r.Context())

	if err := h.svc.Unassign(r.Context(), id, staff.ID); err != nil {
		httpx.Error(w, err, group.ErrAssignmentNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) recalculate(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	agg, err := h.svc.RecalculateFromAssignments(r.Context(), id)
	if err != nil {
		httpx.Error(w, err, group.ErrNotFound)
		return
	}

	httpx.JSON(w, http.StatusOK, agg)
}
