package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/Karan-Chaurasia/AI-Dictionary/internal/domain"
	"github.com/Karan-Chaurasia/AI-Dictionary/internal/transport/rest"
)

func joinQuery(parts []string) string {
	return strings.Join(parts, " ")
}

func writeJSON(w io.Writer, res domain.LookupResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rest.NewLookupResponse(res))
}

func writeText(w io.Writer, res domain.LookupResult) error {
	var b strings.Builder
	if res.IsCorrected() {
		fmt.Fprintln(&b, res.CorrectionMessage)
	}
	switch res.Kind {
	case domain.ResultKindFormula:
		fmt.Fprintf(&b, "Formula: %s\n", res.Formula)
	case domain.ResultKindRecipe:
		fmt.Fprintln(&b, res.Recipe.Title)
		for _, ing := range res.Recipe.Ingredients {
			fmt.Fprintf(&b, "  - %s\n", ing)
		}
		fmt.Fprintln(&b, res.Recipe.Instructions)
	case domain.ResultKindDefinitions:
		word := res.Original
		if res.IsCorrected() {
			word = res.Corrected
		}
		fmt.Fprintf(&b, "%s:\n", word)
		for i, d := range res.Definitions {
			fmt.Fprintf(&b, "%d. %s\n", i+1, d)
		}
	default:
		msg := res.Error
		if msg == "" {
			msg = domain.MsgNoResults
		}
		fmt.Fprintf(&b, "Error: %s\n", msg)
	}
	_, err := io.WriteString(w, b.String())
	return err
}
