package ratesheet

import (
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/attesto/attesto/internal/http/auth"
	"github.com/attesto/attesto/internal/http/httpx"
	"github.com/attesto/attesto/internal/rate"
)

const maxSheetSize = 10 << 20 // 10 MiB

type Handler struct {
	svc *rate.Service
}

func NewHandler(svc *rate.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/import", h.importSheet)
	r.Get("/languages", h.listLanguages)
	r.Get("/certifications", h.listCertifications)
}

func (h *Handler) importSheet(w http.ResponseWriter, r *http.Request) {
	body, err := sheetBody(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	defer body.Close()

	staff, _ := auth.FromContext(r.Context())

	summary, err := h.svc.ImportSheet(r.Context(), body, staff.ID)
	if err != nil {
		httpx.Error(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, summary)
}

// sheetBody accepts either a multipart upload with a "file" field or a
// raw CSV body.
func sheetBody(r *http.Request) (io.ReadCloser, error) {
	r.Body = http.MaxBytesReader(nil, r.Body, maxSheetSize)

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(maxSheetSize); err != nil {
			return nil, err
		}

		f, _, err := r.FormFile("file")
		if err != nil {
			return nil, err
		}

		return f, nil
	}

	return r.Body, nil
}

type languageResponse struct {
	Code       string          `json:"code"`
	Name       string          `json:"name"`
	Tier       string          `json:"tier"`
	Multiplier decimal.Decimal `json:"multiplier"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

func (h *Handler) listLanguages(w http.ResponseWriter, r *http.Request) {
	langs, err := h.svc.ListLanguages(r.Context())
	if err != nil {
		httpx.Error(w, err)
		return
	}

	out := make([]languageResponse, 0, len(langs))
	for _, l := range langs {
		out = append(out, languageResponse{
			Code:       l.Code,
			Name:       l.Name,
			Tier:       l.Tier,
			Multiplier: l.Multiplier,
			UpdatedAt:  l.UpdatedAt,
		})
	}

	httpx.JSON(w, http.StatusOK, out)
}

type certificationResponse struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func (h *Handler) listCertifications(w http.ResponseWriter, r *http.Request) {
	certs, err := h.svc.ListCertificationTypes(r.Context())
	if err != nil {
		httpx.Error(w, err)
		return
	}

	out := make([]certificationResponse, 0, len(certs))
	for _, c := range certs {
		out = append(out, certificationResponse{
			ID:        c.ID,
			Name:      c.Name,
			Price:     c.Price,
			UpdatedAt: c.UpdatedAt,
		})
	}

	httpx.JSON(w, http.StatusOK, out)
}
