package rate

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/attesto/attesto/internal/audit"
	"github.com/attesto/attesto/internal/pricing"
	"github.com/attesto/attesto/internal/rate/sheet"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=rate
type Repository interface {
	LoadTable(ctx context.Context) (*Table, error)
	ListLanguages(ctx context.Context) ([]*Language, error)
	ListCertificationTypes(ctx context.Context) ([]*CertificationType, error)
	Begin(ctx context.Context) (Tx, error)
}

type Tx interface {
	UpsertLanguage(ctx context.Context, l *Language) error
	UpsertCertificationType(ctx context.Context, name string, price decimal.Decimal) error
	SetComplexityMultiplier(ctx context.Context, level pricing.Complexity, multiplier decimal.Decimal) error
	SetSetting(ctx context.Context, key string, amount decimal.Decimal) error
	Commit() error
	Rollback() error
}

type SheetParser interface {
	Parse(r io.Reader) (*sheet.Sheet, error)
}

const tableTTL = 5 * time.Minute

// Service serves rate lookups from a cached table snapshot and owns
// rate sheet imports. An import invalidates the cache, so new quotes
// price on the new rates while already-stored line items keep the
// prices they were computed with.
type Service struct {
	repo     Repository
	parser   SheetParser
	activity audit.Recorder

	mu    sync.RWMutex
	table *Table
}

func NewService(repo Repository, parser SheetParser, activity audit.Recorder) *Service {
	return &Service{repo: repo, parser: parser, activity: activity}
}

func (s *Service) BaseRate(ctx context.Context) (decimal.Decimal, error) {
	t, err := s.snapshot(ctx)
	if err != nil {
		return decimal.Decimal{}, err
	}

	return t.BaseRate, nil
}

// RushFee is the flat surcharge for rush turnaround. Zero when the
// setting has never been imported.
func (s *Service) RushFee(ctx context.Context) (decimal.Decimal, error) {
	t, err := s.snapshot(ctx)
	if err != nil {
		return decimal.Decimal{}, err
	}

	return t.RushFee, nil
}

// DeliveryFee is the flat charge for a delivery option. Options
// without a configured fee, digital delivery among them, cost zero.
func (s *Service) DeliveryFee(ctx context.Context, option string) (decimal.Decimal, error) {
	t, err := s.snapshot(ctx)
	if err != nil {
		return decimal.Decimal{}, err
	}

	fee, ok := t.DeliveryFees[option]
	if !ok {
		return decimal.Zero, nil
	}

	return fee, nil
}

func (s *Service) LanguageMultiplier(ctx context.Context, code string) (decimal.Decimal, error) {
	t, err := s.snapshot(ctx)
	if err != nil {
		return decimal.Decimal{}, err
	}

	mult, ok := t.Languages[code]
	if !ok {
		return decimal.Decimal{}, ErrLanguageNotFound
	}

	return mult, nil
}

func (s *Service) ComplexityMultiplier(ctx context.Context, level pricing.Complexity) (decimal.Decimal, error) {
	t, err := s.snapshot(ctx)
	if err != nil {
		return decimal.Decimal{}, err
	}

	mult, ok := t.Complexities[level]
	if !ok {
		return decimal.Decimal{}, ErrComplexityNotFound
	}

	return mult, nil
}

func (s *Service) CertificationPrice(ctx context.Context, id uuid.UUID) (decimal.Decimal, error) {
	t, err := s.snapshot(ctx)
	if err != nil {
		return decimal.Decimal{}, err
	}

	price, ok := t.Certifications[id]
	if !ok {
		return decimal.Decimal{}, ErrCertificationNotFound
	}

	return price, nil
}

func (s *Service) ListLanguages(ctx context.Context) ([]*Language, error) {
	return s.repo.ListLanguages(ctx)
}

func (s *Service) ListCertificationTypes(ctx context.Context) ([]*CertificationType, error) {
	return s.repo.ListCertificationTypes(ctx)
}

// ImportSummary reports what one rate sheet upload changed.
type ImportSummary struct {
	Kind           sheet.Kind `json:"kind"`
	Languages      int        `json:"languages"`
	Certifications int        `json:"certifications"`
	Complexities   int        `json:"complexities"`
	Settings       int        `json:"settings"`
}

// ImportSheet parses a rate sheet upload and applies it in one
// transaction. Either every row lands or none do.
func (s *Service) ImportSheet(ctx context.Context, r io.Reader, staffID string) (*ImportSummary, error) {
	parsed, err := s.parser.Parse(r)
	if err != nil {
		return nil, err
	}

	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin rate import: %w", err)
	}
	defer tx.Rollback()

	summary := &ImportSummary{Kind: parsed.Kind}

	for _, l := range parsed.Languages {
		lang := Language{Code: l.Code, Name: l.Name, Tier: l.Tier, Multiplier: l.Multiplier}
		if err := tx.UpsertLanguage(ctx, &lang); err != nil {
			return nil, fmt.Errorf("upserting language %s: %w", l.Code, err)
		}

		summary.Languages++
	}

	for _, c := range parsed.Certifications {
		if err := tx.UpsertCertificationType(ctx, c.Name, c.Price); err != nil {
			return nil, fmt.Errorf("upserting certification %s: %w", c.Name, err)
		}

		summary.Certifications++
	}

	for _, c := range parsed.Complexities {
		if err := tx.SetComplexityMultiplier(ctx, pricing.Complexity(c.Level), c.Multiplier); err != nil {
			return nil, fmt.Errorf("updating complexity %s: %w", c.Level, err)
		}

		summary.Complexities++
	}

	for _, row := range parsed.Settings {
		if err := tx.SetSetting(ctx, row.Key, row.Amount); err != nil {
			return nil, fmt.Errorf("updating setting %s: %w", row.Key, err)
		}

		summary.Settings++
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit rate import: %w", err)
	}

	s.Invalidate()

	s.activity.Record(ctx, audit.Event{
		StaffID: staffID,
		Action:  "rates.imported",
		Detail: map[string]any{
			"kind":           parsed.Kind,
			"languages":      summary.Languages,
			"certifications": summary.Certifications,
			"complexities":   summary.Complexities,
			"settings":       summary.Settings,
		},
	})

	return summary, nil
}

// Invalidate drops the cached table. The next lookup reloads it.
func (s *Service) Invalidate() {
	s.mu.Lock()
	s.table = nil
	s.mu.Unlock()
}

func (s *Service) snapshot(ctx context.Context) (*Table, error) {
	s.mu.RLock()
	t := s.table
	s.mu.RUnlock()

	if t != nil && time.Since(t.LoadedAt) < tableTTL {
		return t, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Another caller may have reloaded while we waited for the lock.
	if s.table != nil && time.Since(s.table.LoadedAt) < tableTTL {
		return s.table, nil
	}

	t, err := s.repo.LoadTable(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading rate table: %w", err)
	}

	t.LoadedAt = time.Now()
	s.table = t

	return t, nil
}
