package provider

import (
	"errors"
	"fmt"
)

// DictionaryResult is the structured result from a dictionary API provider.
type DictionaryResult struct {
	Word     string
	Meanings []MeaningResult
}

// MeaningResult groups the definitions that share a part of speech.
type MeaningResult struct {
	PartOfSpeech string
	Definitions  []string
}

// RecipeResult is the structured result from a recipe search provider.
type RecipeResult struct {
	Title        string
	Ingredients  []string
	Instructions string
}

var (
	// ErrNotConfigured is returned when a provider has no usable credential.
	ErrNotConfigured = errors.New("provider not configured")
	// ErrUnauthorized is returned when the upstream rejects the credential.
	ErrUnauthorized = errors.New("provider rejected credential")
)

// StatusError reports an unexpected HTTP status from an upstream API.
type StatusError struct {
	Provider string
	Code     int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: unexpected status %d", e.Provider, e.Code)
}
