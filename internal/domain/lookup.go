package domain

// User-facing messages shared by the lookup service and its transports.
const (
	MsgNoQuery          = "No query provided."
	MsgNoResults        = "No relevant results found."
	MsgNoDefinition     = "No exact definition found."
	MsgWordNotFound     = "Word not found in dictionary."
	MsgDictionaryFailed = "Unable to fetch definition at this time."
	MsgNoInstructions   = "No instructions available."
)

// Query is the submitted text and its normalized form.
type Query struct {
	Raw        string
	Normalized string
}

// NewQuery trims and lowercases raw input.
// Returns a ValidationError when nothing but whitespace was submitted.
func NewQuery(raw string) (Query, error) {
	normalized := NormalizeQuery(raw)
	if normalized == "" {
		return Query{}, NewValidationError("query", "required")
	}
	return Query{Raw: raw, Normalized: normalized}, nil
}

// Correction is the outcome of a spell suggestion.
type Correction struct {
	Word    string
	Changed bool
}

// Classification is the route chosen for a query.
// Expression is the rendered display markup and is set only for formulas.
type Classification struct {
	Kind       QueryKind
	Expression string
}

// Recipe is a normalized recipe as shown to the user.
type Recipe struct {
	Title        string
	Ingredients  []string
	Instructions string
}

// LookupResult is the uniform answer to one query. Exactly one payload
// matching Kind is set; Original, Corrected and CorrectionMessage are
// display metadata.
type LookupResult struct {
	Kind ResultKind

	Original          string
	Corrected         string
	CorrectionMessage string

	Formula     string
	Recipe      *Recipe
	Definitions []string
	Error       string
}

// IsCorrected reports whether spell correction changed the search term.
func (r LookupResult) IsCorrected() bool {
	return r.Corrected != ""
}
