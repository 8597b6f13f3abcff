package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/attesto/attesto/internal/pricing"
	"github.com/attesto/attesto/internal/rate"
)

const (
	baseRateKey       = "base_page_rate"
	rushFeeKey        = "rush_fee"
	deliveryFeePrefix = "delivery_fee_"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) LoadTable(ctx context.Context) (*rate.Table, error) {
	t := &rate.Table{
		DeliveryFees:   make(map[string]decimal.Decimal),
		Languages:      make(map[string]decimal.Decimal),
		Complexities:   make(map[pricing.Complexity]decimal.Decimal),
		Certifications: make(map[uuid.UUID]decimal.Decimal),
	}

	rows, err := s.db.QueryContext(ctx, `SELECT key, amount FROM rate_settings`)
	if err != nil {
		return nil, fmt.Errorf("reading rate settings: %w", err)
	}
	defer rows.Close()

	haveBaseRate := false

	for rows.Next() {
		var (
			key    string
			amount decimal.Decimal
		)

		if err := rows.Scan(&key, &amount); err != nil {
			return nil, fmt.Errorf("scanning rate setting: %w", err)
		}

		switch {
		case key == baseRateKey:
			t.BaseRate = amount
			haveBaseRate = true
		case key == rushFeeKey:
			t.RushFee = amount
		case strings.HasPrefix(key, deliveryFeePrefix):
			t.DeliveryFees[strings.TrimPrefix(key, deliveryFeePrefix)] = amount
		}
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if !haveBaseRate {
		return nil, fmt.Errorf("rate setting %s is not configured", baseRateKey)
	}

	rows, err = s.db.QueryContext(ctx, `SELECT code, multiplier FROM languages`)
	if err != nil {
		return nil, fmt.Errorf("reading language multipliers: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			code string
			mult decimal.Decimal
		)

		if err := rows.Scan(&code, &mult); err != nil {
			return nil, fmt.Errorf("scanning language: %w", err)
		}

		t.Languages[code] = mult
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	rows, err = s.db.QueryContext(ctx, `SELECT level, multiplier FROM complexity_levels`)
	if err != nil {
		return nil, fmt.Errorf("reading complexity levels: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			level string
			mult  decimal.Decimal
		)

		if err := rows.Scan(&level, &mult); err != nil {
			return nil, fmt.Errorf("scanning complexity level: %w", err)
		}

		t.Complexities[pricing.Complexity(level)] = mult
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	rows, err = s.db.QueryContext(ctx, `SELECT id, price FROM certification_types`)
	if err != nil {
		return nil, fmt.Errorf("reading certification types: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id    uuid.UUID
			price decimal.Decimal
		)

		if err := rows.Scan(&id, &price); err != nil {
			return nil, fmt.Errorf("scanning certification type: %w", err)
		}

		t.Certifications[id] = price
	}

	return t, rows.Err()
}

func (s *Store) ListLanguages(ctx context.Context) ([]*rate.Language, error) {
	query := `SELECT code, name, tier, multiplier, updated_at FROM languages ORDER BY code`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing languages: %w", err)
	}
	defer rows.Close()

	var langs []*rate.Language

	for rows.Next() {
		var l rate.Language

		if err := rows.Scan(&l.Code, &l.Name, &l.Tier, &l.Multiplier, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning language: %w", err)
		}

		langs = append(langs, &l)
	}

	return langs, rows.Err()
}

func (s *Store) ListCertificationTypes(ctx context.Context) ([]*rate.CertificationType, error) {
	query := `SELECT id, name, price, updated_at FROM certification_types ORDER BY name`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing certification types: %w", err)
	}
	defer rows.Close()

	var certs []*rate.CertificationType

	for rows.Next() {
		var c rate.CertificationType

		if err := rows.Scan(&c.ID, &c.Name, &c.Price, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning certification type: %w", err)
		}

		certs = append(certs, &c)
	}

	return certs, rows.Err()
}

func (s *Store) Begin(ctx context.Context) (rate.Tx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning rate tx: %w", err)
	}

	return &rateTx{tx: dbTx}, nil
}

type rateTx struct {
	tx *sql.Tx
}

func (r *rateTx) Commit() error   { return r.tx.Commit() }
func (r *rateTx) Rollback() error { return r.tx.Rollback() }

func (r *rateTx) UpsertLanguage(ctx context.Context, l *rate.Language) error {
	query := `
		INSERT INTO languages (code, name, tier, multiplier)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (code) DO UPDATE SET
			name = EXCLUDED.name,
			tier = EXCLUDED.tier,
			multiplier = EXCLUDED.multiplier,
			updated_at = NOW()
	`

	if _, err := r.tx.ExecContext(ctx, query, l.Code, l.Name, l.Tier, l.Multiplier); err != nil {
		return fmt.Errorf("upserting language: %w", err)
	}

	return nil
}

func (r *rateTx) UpsertCertificationType(ctx context.Context, name string, price decimal.Decimal) error {
	query := `
		INSERT INTO certification_types (name, price)
		VALUES ($1, $2)
		ON CONFLICT (name) DO UPDATE SET
			price = EXCLUDED.price,
			updated_at = NOW()
	`

	if _, err := r.tx.ExecContext(ctx, query, name, price); err != nil {
		return fmt.Errorf("upserting certification type: %w", err)
	}

	return nil
}

func (r *rateTx) SetComplexityMultiplier(ctx context.Context, level pricing.Complexity, multiplier decimal.Decimal) error {
	query := `
		INSERT INTO complexity_levels (level, multiplier)
		VALUES ($1, $2)
		ON CONFLICT (level) DO UPDATE SET multiplier = EXCLUDED.multiplier
	`

	if _, err := r.tx.ExecContext(ctx, query, level, multiplier); err != nil {
		return fmt.Errorf("updating complexity level: %w", err)
	}

	return nil
}

func (r *rateTx) SetSetting(ctx context.Context, key string, amount decimal.Decimal) error {
	query := `
		INSERT INTO rate_settings (key, amount)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET
			amount = EXCLUDED.amount,
			updated_at = NOW()
	`

	if _, err := r.tx.ExecContext(ctx, query, key, amount); err != nil {
		return fmt.Errorf("updating rate setting: %w", err)
	}

	return nil
}
