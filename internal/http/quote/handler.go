package quote

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/attesto/attesto/internal/adjustment"
	"github.com/attesto/attesto/internal/correction"
	"github.com/attesto/attesto/internal/group"
	"github.com/attesto/attesto/internal/http/auth"
	"github.com/attesto/attesto/internal/http/httpx"
	"github.com/attesto/attesto/internal/pricing"
	"github.com/attesto/attesto/internal/quote"
)

type Handler struct {
	quotes      *quote.Service
	groups      *group.Service
	adjustments *adjustment.Service
	corrections *correction.Service
}

func NewHandler(quotes *quote.Service, groups *group.Service, adjustments *adjustment.Service, corrections *correction.Service) *Handler {
	return &Handler{quotes: quotes, groups: groups, adjustments: adjustments, corrections: corrections}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/{id}", h.get)
	r.Get("/{id}/analyses", h.listAnalyses)
	r.Post("/{id}/analyses", h.addAnalysis)
	r.Post("/{id}/recalculate", h.recalculate)
	r.Post("/{id}/finalize", h.finalize)
}

type createQuoteRequest struct {
	CustomerEmail    string          `json:"customer_email"`
	CustomerPhone    string          `json:"customer_phone"`
	CustomerFullName string          `json:"customer_full_name"`
	SourceLanguage   string          `json:"source_language"`
	TargetLanguage   string          `json:"target_language"`
	IsRush           bool            `json:"is_rush"`
	DeliveryOption   string          `json:"delivery_option"`
	TaxRate          decimal.Decimal `json:"tax_rate"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createQuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	q, err := h.quotes.Create(r.Context(), quote.CreateParams{
		CustomerEmail:    req.CustomerEmail,
		CustomerPhone:    req.CustomerPhone,
		CustomerFullName: req.CustomerFullName,
		SourceLanguage:   req.SourceLanguage,
		TargetLanguage:   req.TargetLanguage,
		IsRush:           req.IsRush,
		DeliveryOption:   req.DeliveryOption,
		TaxRate:          req.TaxRate,
	})
	if err != nil {
		httpx.Error(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, toResponse(q))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	q, err := h.quotes.Get(r.Context(), id)
	if err != nil {
		httpx.Error(w, err, quote.ErrNotFound)
		return
	}

	analyses, err := h.quotes.ListAnalyses(r.Context(), id)
	if err != nil {
		httpx.Error(w, err)
		return
	}

	groups, err := h.groups.ListByQuote(r.Context(), id)
	if err != nil {
		httpx.Error(w, err)
		return
	}

	adjustments, err := h.adjustments.ListByQuote(r.Context(), id)
	if err != nil {
		httpx.Error(w, err)
		return
	}

	corrections, err := h.corrections.ListByQuote(r.Context(), id)
	if err != nil {
		httpx.Error(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toDetailResponse(q, analyses, groups, adjustments, corrections))
}

func (h *Handler) listAnalyses(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	analyses, err := h.quotes.ListAnalyses(r.Context(), id)
	if err != nil {
		httpx.Error(w, err, quote.ErrNotFound)
		return
	}

	httpx.JSON(w, http.StatusOK, toAnalysisResponseList(analyses))
}

type addAnalysisRequest struct {
	Source               string     `json:"source"`
	FileName             string     `json:"file_name"`
	DetectedLanguage     string     `json:"detected_language"`
	DetectedDocumentType string     `json:"detected_document_type"`
	AssessedComplexity   string     `json:"assessed_complexity"`
	WordCount            int        `json:"word_count"`
	PageCount            int        `json:"page_count"`
	PageWordCounts       []int      `json:"page_word_counts,omitempty"`
	CertificationTypeID  *uuid.UUID `json:"certification_type_id,omitempty"`
	NonBillable          bool       `json:"non_billable"`
}

func (h *Handler) addAnalysis(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req addAnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	a, err := h.quotes.AddAnalysis(r.Context(), id, quote.AnalysisParams{
		Source:               quote.AnalysisSource(req.Source),
		FileName:             req.FileName,
		DetectedLanguage:     req.DetectedLanguage,
		DetectedDocumentType: req.DetectedDocumentType,
		AssessedComplexity:   pricing.Complexity(req.AssessedComplexity),
		WordCount:            req.WordCount,
		PageCount:            req.PageCount,
		PageWordCounts:       req.PageWordCounts,
		CertificationTypeID:  req.CertificationTypeID,
		NonBillable:          req.NonBillable,
	})
	if err != nil {
		httpx.Error(w, err, quote.ErrNotFound)
		return
	}

	httpx.JSON(w, http.StatusCreated, toAnalysisResponse(a))
}

type recalculateResponse struct {
	quote.Totals
	IsRush bool `json:"is_rush"`
}

func (h *Handler) recalculate(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	totals, err := h.quotes.Recalculate(r.Context(), id)
	if err != nil {
		httpx.Error(w, err, quote.ErrNotFound)
		return
	}

	q, err := h.quotes.Get(r.Context(), id)
	if err != nil {
		httpx.Error(w, err, quote.ErrNotFound)
		return
	}

	httpx.JSON(w, http.StatusOK, recalculateResponse{Totals: *totals, IsRush: q.IsRush})
}

type finalizeLineRequest struct {
	FileName            string     `json:"file_name"`
	DetectedLanguage    string     `json:"detected_language"`
	DocumentType        string     `json:"document_type"`
	Complexity          string     `json:"complexity"`
	WordCount           int        `json:"word_count"`
	CertificationTypeID *uuid.UUID `json:"certification_type_id,omitempty"`
	NonBillable         bool       `json:"non_billable"`
}

type finalizeRequest struct {
	Lines      []finalizeLineRequest `json:"lines"`
	StaffNotes string                `json:"staff_notes"`
}

func (h *Handler) finalize(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req finalizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	staff, _ := auth.FromContext(r.Context())

	lines := make([]quote.SnapshotLine, 0, len(req.Lines))
	for _, l := range req.Lines {
		lines = append(lines, quote.SnapshotLine{
			FileName:            l.FileName,
			DetectedLanguage:    l.DetectedLanguage,
			DocumentType:        l.DocumentType,
			Complexity:          pricing.Complexity(l.Complexity),
			WordCount:           l.WordCount,
			CertificationTypeID: l.CertificationTypeID,
			NonBillable:         l.NonBillable,
		})
	}

	if err := h.quotes.Finalize(r.Context(), id, lines, req.StaffNotes, staff.ID); err != nil {
		httpx.Error(w, err, quote.ErrNotFound)
		return
	}

	q, err := h.quotes.Get(r.Context(), id)
	if err != nil {
		httpx.Error(w, err, quote.ErrNotFound)
		return
	}

	httpx.JSON(w, http.StatusOK, toResponse(q))
}
