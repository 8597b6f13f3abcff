package correction

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/attesto/attesto/internal/correction"
	"github.com/attesto/attesto/internal/group"
	"github.com/attesto/attesto/internal/http/auth"
	"github.com/attesto/attesto/internal/http/httpx"
	"github.com/attesto/attesto/internal/quote"
)

type Handler struct {
	svc *correction.Service
}

func NewHandler(svc *correction.Service) *Handler {
	return &Handler{svc: svc}
}

// Routes is mounted under /quotes/{quoteID}/corrections.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.apply)
}

type correctionResponse struct {
	ID             uuid.UUID  `json:"id"`
	QuoteID        uuid.UUID  `json:"quote_id"`
	AnalysisID     *uuid.UUID `json:"analysis_id,omitempty"`
	GroupID        *uuid.UUID `json:"group_id,omitempty"`
	FieldName      string     `json:"field_name"`
	AIValue        string     `json:"ai_value"`
	CorrectedValue string     `json:"corrected_value"`
	Reason         string     `json:"reason,omitempty"`
	KBFlag         bool       `json:"kb_flag"`
	KBComment      string     `json:"kb_comment,omitempty"`
	StaffID        string     `json:"staff_id"`
	CreatedAt      time.Time  `json:"created_at"`
}

func toResponse(c *correction.Correction) correctionResponse {
	return correctionResponse{
		ID:             c.ID,
		QuoteID:        c.QuoteID,
		AnalysisID:     c.AnalysisID,
		GroupID:        c.GroupID,
		FieldName:      c.FieldName,
		AIValue:        c.AIValue,
		CorrectedValue: c.CorrectedValue,
		Reason:         c.Reason,
		KBFlag:         c.KnowledgeBaseFlag,
		KBComment:      c.KnowledgeBaseComment,
		StaffID:        c.StaffID,
		CreatedAt:      c.CreatedAt,
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

	out := make([]correctionResponse, 0, len(entries))
	for _, c := range entries {
		out = append(out, toResponse(c))
	}

	httpx.JSON(w, http.StatusOK, out)
}

type applyCorrectionRequest struct {
	AnalysisID     *uuid.UUID `json:"analysis_id,omitempty"`
	GroupID        *uuid.UUID `json:"group_id,omitempty"`
	PageID         *uuid.UUID `json:"page_id,omitempty"`
	FieldName      string     `json:"field_name"`
	OriginalValue  string     `json:"original_value"`
	CorrectedValue string     `json:"corrected_value"`
	Reason         string     `json:"reason"`
	KBFlag         bool       `json:"kb_flag"`
	KBComment      string     `json:"kb_comment"`
}

func (h *Handler) apply(w http.ResponseWriter, r *http.Request) {
	quoteID, err := uuid.Parse(chi.URLParam(r, "quoteID"))
	if err != nil {
		http.Error(w, "invalid quote id", http.StatusBadRequest)
		return
	}

	var req applyCorrectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	staff, _ := auth.FromContext(r.Context())

	c, err := h.svc.Apply(r.Context(), correction.ApplyParams{
		Target: correction.TargetRef{
			QuoteID:    quoteID,
			AnalysisID: req.AnalysisID,
			GroupID:    req.GroupID,
			PageID:     req.PageID,
		},
		FieldName:      req.FieldName,
		OriginalValue:  req.OriginalValue,
		CorrectedValue: req.CorrectedValue,
		Reason:         req.Reason,
		KnowledgeBase:  req.KBFlag,
		KBComment:      req.KBComment,
		StaffID:        staff.ID,
	})
	if err != nil {
		httpx.Error(w, err,
			quote.ErrNotFound,
			quote.ErrAnalysisNotFound,
			group.ErrNotFound,
			correction.ErrPageNotFound,
			correction.ErrCustomerNotFound,
		)

		return
	}

	httpx.JSON(w, http.StatusCreated, toResponse(c))
}
