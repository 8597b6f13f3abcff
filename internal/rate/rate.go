package rate

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/attesto/attesto/internal/pricing"
)

var (
	ErrLanguageNotFound      = errors.New("language not found")
	ErrComplexityNotFound    = errors.New("complexity level not found")
	ErrCertificationNotFound = errors.New("certification type not found")
)

// Language is a supported target language with its pricing multiplier.
type Language struct {
	Code       string
	Name       string
	Tier       string
	Multiplier decimal.Decimal
	UpdatedAt  time.Time
}

type CertificationType struct {
	ID        uuid.UUID
	Name      string
	Price     decimal.Decimal
	UpdatedAt time.Time
}

// Table is one consistent snapshot of every rate the pricing paths
// read. Lookups during a single quote operation all hit the same
// snapshot, so a concurrent rate import never produces a quote priced
// half on old rates and half on new ones.
type Table struct {
	BaseRate       decimal.Decimal
	RushFee        decimal.Decimal
	DeliveryFees   map[string]decimal.Decimal
	Languages      map[string]decimal.Decimal
	Complexities   map[pricing.Complexity]decimal.Decimal
	Certifications map[uuid.UUID]decimal.Decimal
	LoadedAt       time.Time
}
