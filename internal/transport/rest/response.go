package rest

import "github.com/Karan-Chaurasia/AI-Dictionary/internal/domain"

// LookupResponse is the JSON body for one query, shared by the HTTP API and
// the lookup CLI. Exactly one payload group is present.
type LookupResponse struct {
	OriginalWord      string  `json:"original_word"`
	CorrectedWord     *string `json:"corrected_word"`
	CorrectionMessage *string `json:"correction_message"`

	FormulaDetected bool            `json:"formula_detected,omitempty"`
	FormulaLatex    string          `json:"formula_latex,omitempty"`
	Recipe          *RecipeResponse `json:"recipe,omitempty"`
	Definitions     []string        `json:"definitions,omitempty"`
	Error           string          `json:"error,omitempty"`
}

// RecipeResponse is the recipe payload of a LookupResponse.
type RecipeResponse struct {
	Title        string   `json:"title"`
	Ingredients  []string `json:"ingredients"`
	Instructions string   `json:"instructions"`
}

// NewLookupResponse maps a lookup result onto its JSON body.
func NewLookupResponse(res domain.LookupResult) LookupResponse {
	out := LookupResponse{OriginalWord: res.Original}
	if res.IsCorrected() {
		corrected, msg := res.Corrected, res.CorrectionMessage
		out.CorrectedWord = &corrected
		out.CorrectionMessage = &msg
	}

	switch res.Kind {
	case domain.ResultKindFormula:
		out.FormulaDetected = true
		out.FormulaLatex = res.Formula
	case domain.ResultKindRecipe:
		ingredients := res.Recipe.Ingredients
		if ingredients == nil {
			ingredients = []string{}
		}
		out.Recipe = &RecipeResponse{
			Title:        res.Recipe.Title,
			Ingredients:  ingredients,
			Instructions: res.Recipe.Instructions,
		}
	case domain.ResultKindDefinitions:
		out.Definitions = res.Definitions
	default:
		out.Error = res.Error
		if out.Error == "" {
			out.Error = domain.MsgNoResults
		}
	}
	return out
}
