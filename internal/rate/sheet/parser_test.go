package sheet_test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/attesto/attesto/internal/fault"
	"github.com/attesto/attesto/internal/rate/sheet"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func parse(t *testing.T, input string) *sheet.Sheet {
	t.Helper()

	s, err := sheet.NewParser().Parse(strings.NewReader(input))
	require.NoError(t, err)

	return s
}

func TestParse_Languages(t *testing.T) {
	s := parse(t, "Code,Language,Multiplier,Tier\n"+
		"EN,English,1.0,Standard\n"+
		"jp,Japanese,1.4,rare\n")

	require.Equal(t, sheet.KindLanguages, s.Kind)
	require.Len(t, s.Languages, 2)

	assert.Equal(t, "en", s.Languages[0].Code, "codes are normalized to lower case")
	assert.Equal(t, "English", s.Languages[0].Name)
	assert.Equal(t, "standard", s.Languages[0].Tier)
	assert.True(t, s.Languages[0].Multiplier.Equal(d("1.0")))

	assert.Equal(t, "jp", s.Languages[1].Code)
	assert.Equal(t, "rare", s.Languages[1].Tier)
}

func TestParse_LanguagesWithoutTierColumn(t *testing.T) {
	s := parse(t, "code,language,multiplier\nde,German,1.1\n")

	require.Len(t, s.Languages, 1)
	assert.Equal(t, "standard", s.Languages[0].Tier)
}

func TestParse_Certifications(t *testing.T) {
	s := parse(t, "Certification,Price\n"+
		"Standard Certification,20.00\n"+
		"Notarized,35.00\n")

	require.Equal(t, sheet.KindCertifications, s.Kind)
	require.Len(t, s.Certifications, 2)
	assert.Equal(t, "Notarized", s.Certifications[1].Name)
	assert.True(t, s.Certifications[1].Price.Equal(d("35")))
}

func TestParse_Complexity(t *testing.T) {
	s := parse(t, "Level,Multiplier\n"+
		"easy,1.00\n"+
		"medium,1.15\n"+
		"hard,1.25\n")

	require.Equal(t, sheet.KindComplexity, s.Kind)
	require.Len(t, s.Complexities, 3)
	assert.Equal(t, "medium", s.Complexities[1].Level)
	assert.True(t, s.Complexities[1].Multiplier.Equal(d("1.15")))
}

func TestParse_Settings(t *testing.T) {
	s := parse(t, "Setting,Amount\nBase_Page_Rate,65.00\n")

	require.Equal(t, sheet.KindSettings, s.Kind)
	require.Len(t, s.Settings, 1)
	assert.Equal(t, "base_page_rate", s.Settings[0].Key)
	assert.True(t, s.Settings[0].Amount.Equal(d("65")))
}

func TestParse_SemicolonSeparatedEuropeanNumbers(t *testing.T) {
	s := parse(t, "level;multiplier\n"+
		"easy;1,00\n"+
		"medium;1,15\n")

	require.Equal(t, sheet.KindComplexity, s.Kind)
	require.Len(t, s.Complexities, 2)
	assert.True(t, s.Complexities[1].Multiplier.Equal(d("1.15")))
}

func TestParse_HeaderAfterPreamble(t *testing.T) {
	s := parse(t, "Vendor rate export,,\n"+
		"Generated 2026-01-05,,\n"+
		"code,language,multiplier\n"+
		"en,English,1.0\n")

	require.Equal(t, sheet.KindLanguages, s.Kind)
	require.Len(t, s.Languages, 1)
}

func TestParse_SkipsBlankRows(t *testing.T) {
	s := parse(t, "code,language,multiplier\n"+
		"en,English,1.0\n"+
		",,\n"+
		"fr,French,1.05\n")

	require.Len(t, s.Languages, 2)
}

func TestParse_UTF8ByteOrderMark(t *testing.T) {
	s := parse(t, "\xef\xbb\xbfcode,language,multiplier\nen,English,1.0\n")

	require.Equal(t, sheet.KindLanguages, s.Kind)
	require.Len(t, s.Languages, 1)
}

func TestParse_Failures(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "UnknownLayout",
			input: "foo,bar\n1,2\n",
		},
		{
			name: "BadNumberFailsWholeImport",
			input: "code,language,multiplier\n" +
				"en,English,1.0\n" +
				"jp,Japanese,expensive\n",
		},
		{
			name:  "MultiplierBelowOne",
			input: "code,language,multiplier\nen,English,0.8\n",
		},
		{
			name:  "MissingLanguageCode",
			input: "code,language,multiplier\n,English,1.0\n",
		},
		{
			name:  "UnknownComplexityLevel",
			input: "level,multiplier\nbrutal,2.0\n",
		},
		{
			name:  "NegativeCertificationPrice",
			input: "certification,price\nNotarized,-5\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := sheet.NewParser().Parse(strings.NewReader(tt.input))

			require.Error(t, err)
			assert.True(t, fault.IsValidation(err))
		})
	}
}

func TestParse_RowNumberInError(t *testing.T) {
	_, err := sheet.NewParser().Parse(strings.NewReader(
		"code,language,multiplier\n" +
			"en,English,1.0\n" +
			"jp,Japanese,bad\n"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 3")
}
