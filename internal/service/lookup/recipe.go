package lookup

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Karan-Chaurasia/AI-Dictionary/internal/domain"
	"github.com/Karan-Chaurasia/AI-Dictionary/internal/provider"
)

// User-facing reasons for a failed recipe search.
const (
	reasonNotConfigured = "Recipe feature requires a valid Spoonacular API key. Definitions and formulas still work!"
	reasonUnauthorized  = "Invalid Spoonacular API key. Please update the configured key."
)

// fetchRecipe returns the recipe for word, or a user-facing reason when the
// search failed. Both are zero when nothing matched.
func (s *Service) fetchRecipe(ctx context.Context, word string) (*domain.Recipe, string) {
	res, err := s.recipes.FetchRecipe(ctx, word)
	if err != nil {
		var statusErr *provider.StatusError
		switch {
		case errors.Is(err, provider.ErrNotConfigured):
			return nil, reasonNotConfigured
		case errors.Is(err, provider.ErrUnauthorized):
			s.log.ErrorContext(ctx, "recipe provider rejected credential", slog.String("word", word))
			return nil, reasonUnauthorized
		case errors.As(err, &statusErr):
			s.log.ErrorContext(ctx, "recipe provider error",
				slog.String("word", word), slog.Int("status", statusErr.Code))
			return nil, fmt.Sprintf("Recipe search failed (status: %d).", statusErr.Code)
		default:
			s.log.ErrorContext(ctx, "recipe provider error",
				slog.String("word", word), slog.String("error", err.Error()))
			return nil, fmt.Sprintf("Recipe search unavailable: %s", err)
		}
	}
	if res == nil {
		return nil, ""
	}
	return &domain.Recipe{
		Title:        res.Title,
		Ingredients:  res.Ingredients,
		Instructions: res.Instructions,
	}, ""
}
