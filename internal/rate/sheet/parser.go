package sheet

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	enc "github.com/attesto/attesto/internal/encoding"
	"github.com/attesto/attesto/internal/fault"
	"github.com/attesto/attesto/internal/pricing"
)

type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

func (p *Parser) Parse(r io.Reader) (*Sheet, error) {
	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	br := bufio.NewReader(utf8r)

	reader := csv.NewReader(br)
	reader.Comma = sniffSeparator(br)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	profile, cols, headerIdx := detectProfile(rows)
	if profile == nil {
		return nil, fault.Validationf("no matching rate sheet layout: expected columns for languages, certifications, complexity, or settings")
	}

	return parseRows(profile, cols, rows[headerIdx+1:], headerIdx+1)
}

// sniffSeparator peeks at the first line and picks whichever of ';'
// and ',' appears more often. Spreadsheet tools in European locales
// export semicolon-separated files.
func sniffSeparator(br *bufio.Reader) rune {
	buf, _ := br.Peek(1024)

	line := string(buf)
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}

	if strings.Count(line, ";") > strings.Count(line, ",") {
		return ';'
	}

	return ','
}

// colIndex maps lower-cased column names to their index in the row.
type colIndex map[string]int

// detectProfile scans rows for a header that matches a known layout.
// Returns the matched profile, column index map, and header row index.
func detectProfile(rows [][]string) (*Profile, colIndex, int) {
	for rowIdx, row := range rows {
		cols := make(colIndex)

		for i, cell := range row {
			name := strings.ToLower(strings.TrimSpace(cell))
			if name != "" {
				cols[name] = i
			}
		}

		for i := range profiles {
			if matchesProfile(&profiles[i], cols) {
				return &profiles[i], cols, rowIdx
			}
		}
	}

	return nil, nil, 0
}

func matchesProfile(p *Profile, cols colIndex) bool {
	for _, name := range p.Cols {
		if _, ok := cols[name]; !ok {
			return false
		}
	}

	return true
}

// parseRows extracts typed rows using the matched profile. Blank rows
// are skipped; rows with unparseable numbers fail the whole import, a
// half-applied rate sheet being worse than a rejected one.
func parseRows(p *Profile, cols colIndex, rows [][]string, firstRowIdx int) (*Sheet, error) {
	sheet := &Sheet{Kind: p.Kind}

	for i, row := range rows {
		rowNum := firstRowIdx + i + 1 // 1-based position in the file

		if blankRow(row) {
			continue
		}

		var err error

		switch p.Kind {
		case KindLanguages:
			err = parseLanguageRow(sheet, cols, row)
		case KindCertifications:
			err = parseCertificationRow(sheet, cols, row)
		case KindComplexity:
			err = parseComplexityRow(sheet, cols, row)
		case KindSettings:
			err = parseSettingRow(sheet, cols, row)
		}

		if err != nil {
			return nil, fault.Validationf("row %d: %s", rowNum, err)
		}
	}

	return sheet, nil
}

func parseLanguageRow(s *Sheet, cols colIndex, row []string) error {
	code := strings.ToLower(cellValue(row, cols["code"]))
	if code == "" {
		return fmt.Errorf("missing language code")
	}

	name := cellValue(row, cols["language"])
	if name == "" {
		return fmt.Errorf("missing language name")
	}

	mult, err := parseNumber(cellValue(row, cols["multiplier"]))
	if err != nil {
		return fmt.Errorf("bad multiplier: %w", err)
	}

	if mult.LessThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("multiplier %s is below 1.0", mult)
	}

	tier := "standard"
	if idx, ok := cols["tier"]; ok {
		if v := cellValue(row, idx); v != "" {
			tier = strings.ToLower(v)
		}
	}

	s.Languages = append(s.Languages, LanguageRow{
		Code:       code,
		Name:       name,
		Tier:       tier,
		Multiplier: mult,
	})

	return nil
}

func parseCertificationRow(s *Sheet, cols colIndex, row []string) error {
	name := cellValue(row, cols["certification"])
	if name == "" {
		return fmt.Errorf("missing certification name")
	}

	price, err := parseNumber(cellValue(row, cols["price"]))
	if err != nil {
		return fmt.Errorf("bad price: %w", err)
	}

	if price.IsNegative() {
		return fmt.Errorf("price %s is negative", price)
	}

	s.Certifications = append(s.Certifications, CertificationRow{Name: name, Price: price})

	return nil
}

func parseComplexityRow(s *Sheet, cols colIndex, row []string) error {
	level := strings.ToLower(cellValue(row, cols["level"]))
	if !pricing.Complexity(level).Valid() {
		return fmt.Errorf("unknown complexity level %q", level)
	}

	mult, err := parseNumber(cellValue(row, cols["multiplier"]))
	if err != nil {
		return fmt.Errorf("bad multiplier: %w", err)
	}

	if mult.LessThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("multiplier %s is below 1.0", mult)
	}

	s.Complexities = append(s.Complexities, ComplexityRow{Level: level, Multiplier: mult})

	return nil
}

func parseSettingRow(s *Sheet, cols colIndex, row []string) error {
	key := strings.ToLower(cellValue(row, cols["setting"]))
	if key == "" {
		return fmt.Errorf("missing setting key")
	}

	amount, err := parseNumber(cellValue(row, cols["amount"]))
	if err != nil {
		return fmt.Errorf("bad amount: %w", err)
	}

	if amount.IsNegative() {
		return fmt.Errorf("amount %s is negative", amount)
	}

	s.Settings = append(s.Settings, SettingRow{Key: key, Amount: amount})

	return nil
}

// parseNumber accepts both "1.15" and the European "1,15" (with
// optional thousands separators).
func parseNumber(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Decimal{}, fmt.Errorf("empty value")
	}

	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}

	return decimal.NewFromString(s)
}

func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}

func blankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}

	return true
}
