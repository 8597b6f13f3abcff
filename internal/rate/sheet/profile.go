package sheet

// Profile describes the column layout of one rate sheet section.
// Adding a new sheet format is just adding a new Profile to the
// profiles slice.
type Profile struct {
	Kind Kind

	// Required columns. A header row matches when all of them are
	// present (case-insensitive).
	Cols []string

	// Optional columns filled when present.
	OptionalCols []string
}

// profiles is the ordered list of sheet layouts to try during
// auto-detection. More specific profiles come first to avoid false
// matches: the languages layout also carries a "multiplier" column, so
// it must be tried before the complexity layout.
var profiles = []Profile{
	{
		Kind:         KindLanguages,
		Cols:         []string{"code", "language", "multiplier"},
		OptionalCols: []string{"tier"},
	},
	{
		Kind: KindCertifications,
		Cols: []string{"certification", "price"},
	},
	{
		Kind: KindComplexity,
		Cols: []string{"level", "multiplier"},
	},
	{
		Kind: KindSettings,
		Cols: []string{"setting", "amount"},
	},
}
