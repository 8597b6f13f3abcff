package pricing

import "github.com/shopspring/decimal"

// Complexity is the staff-facing difficulty classification of a document.
type Complexity string

const (
	ComplexityEasy   Complexity = "easy"
	ComplexityMedium Complexity = "medium"
	ComplexityHard   Complexity = "hard"
)

var defaultComplexityMultipliers = map[Complexity]decimal.Decimal{
	ComplexityEasy:   decimal.RequireFromString("1.00"),
	ComplexityMedium: decimal.RequireFromString("1.15"),
	ComplexityHard:   decimal.RequireFromString("1.25"),
}

// Valid reports whether c is a known complexity level.
func (c Complexity) Valid() bool {
	_, ok := defaultComplexityMultipliers[c]
	return ok
}

// DefaultMultiplier returns the built-in multiplier for a complexity
// level. The rate table may override these per deployment; callers that
// have reference data available should prefer it.
func (c Complexity) DefaultMultiplier() (decimal.Decimal, bool) {
	m, ok := defaultComplexityMultipliers[c]
	return m, ok
}
