package lookup

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Karan-Chaurasia/AI-Dictionary/internal/domain"
)

// Lookup runs one query end to end. It never fails: upstream problems are
// turned into fallback payloads and an empty query becomes an error result.
//
// The query is classified on its normalized text before spell correction,
// and the correction does not change the route.
func (s *Service) Lookup(ctx context.Context, raw string) domain.LookupResult {
	q, err := domain.NewQuery(raw)
	if err != nil {
		return domain.LookupResult{
			Kind:     domain.ResultKindError,
			Original: strings.TrimSpace(raw),
			Error:    domain.MsgNoQuery,
		}
	}

	res := domain.LookupResult{Original: strings.TrimSpace(q.Raw)}
	class := s.classifier.Classify(q.Normalized)

	if class.Kind == domain.QueryKindFormula {
		res.Kind = domain.ResultKindFormula
		res.Formula = class.Expression
		return res
	}

	word := q.Normalized
	if s.speller.Eligible(word) {
		if c := s.speller.Suggest(word); c.Changed {
			s.log.DebugContext(ctx, "spell correction", slog.String("from", word), slog.String("to", c.Word))
			res.Corrected = c.Word
			res.CorrectionMessage = fmt.Sprintf("Did you mean '%s'? Using it for search.", domain.TitleCase(c.Word))
			word = c.Word
		}
	}

	if class.Kind == domain.QueryKindFoodTerm {
		return s.lookupFood(ctx, word, res)
	}

	res.Kind = domain.ResultKindDefinitions
	res.Definitions = s.fetchDefinitions(ctx, word)
	return res
}

func (s *Service) lookupFood(ctx context.Context, word string, res domain.LookupResult) domain.LookupResult {
	recipe, reason := s.fetchRecipe(ctx, word)
	if recipe != nil {
		res.Kind = domain.ResultKindRecipe
		res.Recipe = recipe
		return res
	}

	if defs := s.fetchDefinitions(ctx, word); len(defs) > 0 {
		if reason != "" {
			s.log.WarnContext(ctx, "recipe unavailable, showing definitions",
				slog.String("word", word), slog.String("reason", reason))
		}
		res.Kind = domain.ResultKindDefinitions
		res.Definitions = defs
		return res
	}

	res.Kind = domain.ResultKindError
	res.Error = domain.MsgNoResults
	if reason != "" {
		res.Error = reason
	}
	return res
}
