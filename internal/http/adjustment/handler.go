package adjustment

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/attesto/attesto/internal/adjustment"
	"github.com/attesto/attesto/internal/http/auth"
	"github.com/attesto/attesto/internal/http/httpx"
	"github.com/attesto/attesto/internal/quote"
)

type Handler struct {
	svc *adjustment.Service
}

func NewHandler(svc *adjustment.Service) *Handler {
	return &Handler{svc: svc}
}

// Routes is mounted under /quotes/{quoteID}/adjustments.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.add)
}

type adjustmentResponse struct {
	ID               uuid.UUID       `json:"id"`
	QuoteID          uuid.UUID       `json:"quote_id"`
	Kind             adjustment.Kind `json:"kind"`
	ValueType        string          `json:"value_type"`
	Value            decimal.Decimal `json:"value"`
	CalculatedAmount decimal.Decimal `json:"calculated_amount"`
	Reason           string          `json:"reason,omitempty"`
	CreatedBy        string          `json:"created_by"`
	SupersededBy     *uuid.UUID      `json:"superseded_by,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
}

func toResponse(a *adjustment.Adjustment) adjustmentResponse {
	return adjustmentResponse{
		ID:               a.ID,
		QuoteID:          a.QuoteID,
		Kind:             a.Kind,
		ValueType:        string(a.ValueType),
		Value:            a.Value,
		CalculatedAmount: a.CalculatedAmount,
		Reason:           a.Reason,
		CreatedBy:        a.CreatedBy,
		SupersededBy:     a.SupersededBy,
		CreatedAt:        a.CreatedAt,
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	quoteID, err := uuid.Parse(chi.URLParam(r, "quoteID"))
	if err != nil {
		http.Error(w, "invalid quote id", http.StatusBadRequest)
		return
	}

	entries, err := h.svc.ListByQuote(r.Context(), quoteID)
	if err != nil {
		httpx.Error(w, err, quote.ErrNotFound)
		return
	}

	out := make([]adjustmentResponse, 0, len(entries))
	for _, a := range entries {
		out = append(out, toResponse(a))
	}

	httpx.JSON(w, http.StatusOK, out)
}

type addAdjustmentRequest struct {
	Kind         string          `json:"kind"`
	ValueType    string          `json:"value_type"`
	Value        decimal.Decimal `json:"value"`
	Reason       string          `json:"reason"`
	SupersedesID *uuid.UUID      `json:"supersedes_id,omitempty"`
}

func (h *Handler) add(w http.ResponseWriter, r *http.Request) {
	quoteID, err := uuid.Parse(chi.URLParam(r, "quoteID"))
	if err != nil {
		http.Error(w, "invalid quote id", http.StatusBadRequest)
		return
	}

	var req addAdjustmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	staff, _ := auth.FromContext(r.Context())

	a, err := h.svc.Add(r.Context(), quoteID, adjustment.AddParams{
		Kind:         adjustment.Kind(req.Kind),
		ValueType:    adjustment.ValueType(req.ValueType),
		Value:        req.Value,
		Reason:       req.Reason,
		StaffID:      staff.ID,
		Role:         staff.Role,
		SupersedesID: req.SupersedesID,
	})
	if err != nil {
		httpx.Error(w, err, quote.ErrNotFound, adjustment.ErrNotFound)
		return
	}

	httpx.JSON(w, http.StatusCreated, toResponse(a))
}
