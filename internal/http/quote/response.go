package quote

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/attesto/attesto/internal/adjustment"
	"github.com/attesto/attesto/internal/correction"
	"github.com/attesto/attesto/internal/group"
	"github.com/attesto/attesto/internal/quote"
)

type quoteResponse struct {
	ID                 uuid.UUID       `json:"id"`
	CustomerID         uuid.UUID       `json:"customer_id"`
	Status             quote.Status    `json:"status"`
	SourceLanguage     string          `json:"source_language"`
	TargetLanguage     string          `json:"target_language"`
	LanguageMultiplier decimal.Decimal `json:"language_multiplier"`
	BaseRate           decimal.Decimal `json:"base_rate"`
	IsRush             bool            `json:"is_rush"`
	DeliveryOption     string          `json:"delivery_option"`
	PaymentMethod      string          `json:"payment_method,omitempty"`
	ShippingAddress    string          `json:"shipping_address,omitempty"`
	BillingAddress     string          `json:"billing_address,omitempty"`
	StaffNotes         string          `json:"staff_notes,omitempty"`
	Totals             quote.Totals    `json:"totals"`
	AmountPaid         decimal.Decimal `json:"amount_paid"`
	BalanceDue         decimal.Decimal `json:"balance_due"`
	RefundAmount       decimal.Decimal `json:"refund_amount"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          *time.Time      `json:"updated_at,omitempty"`
}

func toResponse(q *quote.Quote) quoteResponse {
	return quoteResponse{
		ID:                 q.ID,
		CustomerID:         q.CustomerID,
		Status:             q.Status,
		SourceLanguage:     q.SourceLanguage,
		TargetLanguage:     q.TargetLanguage,
		LanguageMultiplier: q.LanguageMultiplier,
		BaseRate:           q.BaseRate,
		IsRush:             q.IsRush,
		DeliveryOption:     q.DeliveryOption,
		PaymentMethod:      q.PaymentMethod,
		ShippingAddress:    q.ShippingAddress,
		BillingAddress:     q.BillingAddress,
		StaffNotes:         q.StaffNotes,
		Totals:             q.Totals,
		AmountPaid:         q.AmountPaid,
		BalanceDue:         q.BalanceDue,
		RefundAmount:       q.RefundAmount,
		CreatedAt:          q.CreatedAt,
		UpdatedAt:          q.UpdatedAt,
	}
}

type analysisResponse struct {
	ID                   uuid.UUID            `json:"id"`
	QuoteID              uuid.UUID            `json:"quote_id"`
	GroupID              *uuid.UUID           `json:"group_id,omitempty"`
	Source               quote.AnalysisSource `json:"source"`
	FileName             string               `json:"file_name"`
	DetectedLanguage     string               `json:"detected_language"`
	DetectedDocumentType string               `json:"detected_document_type"`
	AssessedComplexity   string               `json:"assessed_complexity"`
	ComplexityMultiplier decimal.Decimal      `json:"complexity_multiplier"`
	WordCount            int                  `json:"word_count"`
	PageCount            int                  `json:"page_count"`
	BillablePages        decimal.Decimal      `json:"billable_pages"`
	BaseRate             decimal.Decimal      `json:"base_rate"`
	LineTotal            decimal.Decimal      `json:"line_total"`
	CertificationTypeID  *uuid.UUID           `json:"certification_type_id,omitempty"`
	CertificationPrice   decimal.Decimal      `json:"certification_price"`
	NonBillable          bool                 `json:"non_billable"`
	CreatedAt            time.Time            `json:"created_at"`
	UpdatedAt            *time.Time           `json:"updated_at,omitempty"`
}

func toAnalysisResponse(a *quote.AnalysisResult) analysisResponse {
	return analysisResponse{
		ID:                   a.ID,
		QuoteID:              a.QuoteID,
		GroupID:              a.GroupID,
		Source:               a.Source,
		FileName:             a.FileName,
		DetectedLanguage:     a.DetectedLanguage,
		DetectedDocumentType: a.DetectedDocumentType,
		AssessedComplexity:   string(a.AssessedComplexity),
		ComplexityMultiplier: a.ComplexityMultiplier,
		WordCount:            a.WordCount,
		PageCount:            a.PageCount,
		BillablePages:        a.BillablePages,
		BaseRate:             a.BaseRate,
		LineTotal:            a.LineTotal,
		CertificationTypeID:  a.CertificationTypeID,
		CertificationPrice:   a.CertificationPrice,
		NonBillable:          a.NonBillable,
		CreatedAt:            a.CreatedAt,
		UpdatedAt:            a.UpdatedAt,
	}
}

func toAnalysisResponseList(as []*quote.AnalysisResult) []analysisResponse {
	out := make([]analysisResponse, 0, len(as))
	for _, a := range as {
		out = append(out, toAnalysisResponse(a))
	}

	return out
}

type groupResponse struct {
	ID                  uuid.UUID       `json:"id"`
	Label               string          `json:"label"`
	DocumentType        string          `json:"document_type"`
	Complexity          string          `json:"complexity"`
	CertificationTypeID *uuid.UUID      `json:"certification_type_id,omitempty"`
	WordCount           int             `json:"word_count"`
	BillablePages       decimal.Decimal `json:"billable_pages"`
	LineTotal           decimal.Decimal `json:"line_total"`
}

type adjustmentResponse struct {
	ID               uuid.UUID       `json:"id"`
	Kind             adjustment.Kind `json:"kind"`
	Value            decimal.Decimal `json:"value"`
	CalculatedAmount decimal.Decimal `json:"calculated_amount"`
	Reason           string          `json:"reason,omitempty"`
	SupersededBy     *uuid.UUID      `json:"superseded_by,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
}

type correctionResponse struct {
	ID             uuid.UUID `json:"id"`
	FieldName      string    `json:"field_name"`
	AIValue        string    `json:"ai_value"`
	CorrectedValue string    `json:"corrected_value"`
	StaffID        string    `json:"staff_id"`
	CreatedAt      time.Time `json:"created_at"`
}

// detailResponse is the full HITL review view of one quote.
type detailResponse struct {
	quoteResponse
	Analyses    []analysisResponse   `json:"analyses"`
	Groups      []groupResponse      `json:"groups"`
	Adjustments []adjustmentResponse `json:"adjustments"`
	Corrections []correctionResponse `json:"corrections"`
}

func toDetailResponse(q *quote.Quote, as []*quote.AnalysisResult, gs []*group.Group, adjs []*adjustment.Adjustment, cors []*correction.Correction) detailResponse {
	resp := detailResponse{
		quoteResponse: toResponse(q),
		Analyses:      toAnalysisResponseList(as),
		Groups:        make([]groupResponse, 0, len(gs)),
		Adjustments:   make([]adjustmentResponse, 0, len(adjs)),
		Corrections:   make([]correctionResponse, 0, len(cors)),
	}

	for _, g := range gs {
		resp.Groups = append(resp.Groups, groupResponse{
			ID:                  g.ID,
			Label:               g.Label,
			DocumentType:        g.DocumentType,
			Complexity:          string(g.Complexity),
			CertificationTypeID: g.CertificationTypeID,
			WordCount:           g.WordCount,
			BillablePages:       g.BillablePages,
			LineTotal:           g.LineTotal,
		})
	}

	for _, a := range adjs {
		resp.Adjustments = append(resp.Adjustments, adjustmentResponse{
			ID:               a.ID,
			Kind:             a.Kind,
			Value:            a.Value,
			CalculatedAmount: a.CalculatedAmount,
			Reason:           a.Reason,
			SupersededBy:     a.SupersededBy,
			CreatedAt:        a.CreatedAt,
		})
	}

	for _, c := range cors {
		resp.Corrections = append(resp.Corrections, correctionResponse{
			ID:             c.ID,
			FieldName:      c.FieldName,
			AIValue:        c.AIValue,
			CorrectedValue: c.CorrectedValue,
			StaffID:        c.StaffID,
			CreatedAt:      c.CreatedAt,
		})
	}

	return resp
}
