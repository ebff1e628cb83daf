// Package classify routes a normalized query to formula rendering, recipe
// search or dictionary lookup.
package classify

import (
	"strings"

	"github.com/Karan-Chaurasia/AI-Dictionary/internal/domain"
)

// Routing tables. Read-only after package init.
var (
	formulaSymbols  = []string{"+", "-", "*", "/", "=", "^", "∫", "∑", "√", "$$"}
	formulaKeywords = []string{"formula", "equation", "pythagoras", "quadratic", "integral"}
	foodKeywords    = []string{
		"soup", "salad", "cake", "pasta", "chicken", "pizza",
		"burger", "sushi", "taco", "curry", "apple", "banana",
	}
)

// Classifier decides which data source answers a query.
// The zero value is ready to use and safe for concurrent use.
type Classifier struct{}

// New returns a Classifier.
func New() *Classifier { return &Classifier{} }

// Classify inspects the query and picks its route. Formula detection runs
// first and wins over food keywords ("integral of pineapple" is a formula).
func (c *Classifier) Classify(query string) domain.Classification {
	if IsFormula(query) {
		return domain.Classification{
			Kind:       domain.QueryKindFormula,
			Expression: RenderFormula(query),
		}
	}
	if IsFoodTerm(query) {
		return domain.Classification{Kind: domain.QueryKindFoodTerm}
	}
	return domain.Classification{Kind: domain.QueryKindPlainWord}
}

// IsFormula reports whether the query holds a math symbol or a math keyword.
func IsFormula(query string) bool {
	if containsAny(query, formulaSymbols) {
		return true
	}
	return containsAny(strings.ToLower(query), formulaKeywords)
}

// IsFoodTerm reports whether the query mentions a food keyword anywhere.
// Matching is by substring on purpose: "pineapple" matches "apple".
func IsFoodTerm(query string) bool {
	return containsAny(strings.ToLower(query), foodKeywords)
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}
