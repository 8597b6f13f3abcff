// Package sheet parses vendor rate sheet CSV exports. The section being
// imported (languages, certifications, complexity levels, settings) is
// auto-detected by matching column headers against known profiles, so
// staff upload whichever export their spreadsheet tool produces without
// choosing a format first.
package sheet

import (
	"github.com/shopspring/decimal"
)

type Kind string

const (
	KindLanguages      Kind = "languages"
	KindCertifications Kind = "certifications"
	KindComplexity     Kind = "complexity"
	KindSettings       Kind = "settings"
)

type LanguageRow struct {
	Code       string
	Name       string
	Tier       string
	Multiplier decimal.Decimal
}

type CertificationRow struct {
	Name  string
	Price decimal.Decimal
}

type ComplexityRow struct {
	Level      string
	Multiplier decimal.Decimal
}

type SettingRow struct {
	Key    string
	Amount decimal.Decimal
}

// Sheet is the parsed content of one upload. Exactly one slice is
// populated, matching the detected Kind.
type Sheet struct {
	Kind           Kind
	Languages      []LanguageRow
	Certifications []CertificationRow
	Complexities   []ComplexityRow
	Settings       []SettingRow
}
