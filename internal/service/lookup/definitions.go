package lookup

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Karan-Chaurasia/AI-Dictionary/internal/domain"
	"github.com/Karan-Chaurasia/AI-Dictionary/internal/provider"
)

const (
	maxMeanings              = 2
	maxDefinitionsPerMeaning = 2
	defaultPartOfSpeech      = "n."
)

// fetchDefinitions always returns at least one line: the formatted
// definitions or a fallback message.
func (s *Service) fetchDefinitions(ctx context.Context, word string) []string {
	entry, err := s.dictionary.FetchEntry(ctx, word)
	if err != nil {
		var statusErr *provider.StatusError
		if errors.As(err, &statusErr) {
			return []string{domain.MsgWordNotFound}
		}
		s.log.ErrorContext(ctx, "dictionary provider error",
			slog.String("word", word), slog.String("error", err.Error()))
		return []string{domain.MsgDictionaryFailed}
	}
	if entry == nil {
		return []string{domain.MsgWordNotFound}
	}

	defs := formatDefinitions(entry.Meanings)
	if len(defs) == 0 {
		return []string{domain.MsgNoDefinition}
	}
	return defs
}

// formatDefinitions renders "<pos>: <definition>" for the first meanings,
// skipping blank definitions.
func formatDefinitions(meanings []provider.MeaningResult) []string {
	if len(meanings) > maxMeanings {
		meanings = meanings[:maxMeanings]
	}
	var out []string
	for _, m := range meanings {
		pos := m.PartOfSpeech
		if pos == "" {
			pos = defaultPartOfSpeech
		}
		defs := m.Definitions
		if len(defs) > maxDefinitionsPerMeaning {
			defs = defs[:maxDefinitionsPerMeaning]
		}
		for _, d := range defs {
			if text := strings.TrimSpace(d); text != "" {
				out = append(out, fmt.Sprintf("%s: %s", pos, text))
			}
		}
	}
	return out
}
