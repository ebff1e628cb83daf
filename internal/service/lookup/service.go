// Package lookup answers a single free-text query by routing it to formula
// rendering, recipe search or dictionary definitions.
package lookup

import (
	"context"
	"log/slog"

	"github.com/Karan-Chaurasia/AI-Dictionary/internal/domain"
	"github.com/Karan-Chaurasia/AI-Dictionary/internal/provider"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type recipeProvider interface {
	FetchRecipe(ctx context.Context, word string) (*provider.RecipeResult, error)
}

type dictionaryProvider interface {
	FetchEntry(ctx context.Context, word string) (*provider.DictionaryResult, error)
}

type suggester interface {
	Eligible(query string) bool
	Suggest(word string) domain.Correction
}

type classifier interface {
	Classify(query string) domain.Classification
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the lookup flow. It holds no per-request state and is
// safe for concurrent use.
type Service struct {
	log        *slog.Logger
	recipes    recipeProvider
	dictionary dictionaryProvider
	speller    suggester
	classifier classifier
}

// NewService creates a new lookup service.
func NewService(
	logger *slog.Logger,
	recipes recipeProvider,
	dictionary dictionaryProvider,
	speller suggester,
	classifier classifier,
) *Service {
	return &Service{
		log:        logger.With("service", "lookup"),
		recipes:    recipes,
		dictionary: dictionary,
		speller:    speller,
		classifier: classifier,
	}
}
