// Package spell suggests corrections for misspelled single-word queries
// using an English word-frequency dictionary embedded in the binary.
package spell

import (
	"bufio"
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"

	"github.com/Karan-Chaurasia/AI-Dictionary/internal/domain"
)

const alphabet = "abcdefghijklmnopqrstuvwxyz"

// words.txt.gz holds ~109k "word count" lines: the English spell-check
// word list with counts taken from English prose.
//
//go:embed words.txt.gz
var defaultDictionary []byte

var lettersOnly = regexp.MustCompile(`^[a-zA-Z\s]+$`)

// Suggester holds an immutable word-frequency table.
// It is safe for concurrent use once constructed.
type Suggester struct {
	freq      map[string]int
	maxLength int
}

// NewSuggester builds a Suggester from the embedded dictionary.
// Queries of maxLength characters or more are never corrected.
func NewSuggester(maxLength int) (*Suggester, error) {
	zr, err := gzip.NewReader(bytes.NewReader(defaultDictionary))
	if err != nil {
		return nil, fmt.Errorf("spell: open dictionary: %w", err)
	}
	defer zr.Close()
	return newSuggester(zr, maxLength)
}

// NewSuggesterFrom parses a dictionary in "word count" lines.
// Blank lines and lines starting with '#' are ignored.
func NewSuggesterFrom(dict string, maxLength int) (*Suggester, error) {
	return newSuggester(strings.NewReader(dict), maxLength)
}

func newSuggester(r io.Reader, maxLength int) (*Suggester, error) {
	freq := make(map[string]int, 1<<17)
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != 2 {
			return nil, fmt.Errorf("spell: line %d: expected \"word count\", got %q", line, text)
		}
		n, err := strconv.Atoi(fields[1])
		if err != nil || n < 0 {
			return nil, fmt.Errorf("spell: line %d: invalid count %q", line, fields[1])
		}
		freq[strings.ToLower(fields[0])] += n
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("spell: read dictionary: %w", err)
	}
	if len(freq) == 0 {
		return nil, fmt.Errorf("spell: empty dictionary")
	}
	return &Suggester{freq: freq, maxLength: maxLength}, nil
}

// Len returns the number of known words.
func (s *Suggester) Len() int { return len(s.freq) }

// Known reports whether word is in the dictionary.
func (s *Suggester) Known(word string) bool {
	_, ok := s.freq[word]
	return ok
}

// Eligible reports whether a query may be spell-corrected: shorter than
// the configured maximum and made only of ASCII letters and whitespace.
func (s *Suggester) Eligible(query string) bool {
	return len(query) < s.maxLength && lettersOnly.MatchString(query)
}

// Suggest returns the most probable spelling of word. Known words come back
// unchanged; otherwise the most frequent known word one edit away wins,
// then two edits away, then the input itself.
func (s *Suggester) Suggest(word string) domain.Correction {
	best := s.correct(word)
	return domain.Correction{Word: best, Changed: best != word}
}

func (s *Suggester) correct(word string) string {
	if s.Known(word) {
		return word
	}
	e1 := edits1(word)
	if best, ok := s.mostFrequent(e1); ok {
		return best
	}
	var e2 []string
	for _, w := range e1 {
		e2 = append(e2, edits1(w)...)
	}
	if best, ok := s.mostFrequent(e2); ok {
		return best
	}
	return word
}

// mostFrequent picks the known candidate with the highest count.
// Ties go to the lexically smaller word so results are stable.
func (s *Suggester) mostFrequent(candidates []string) (string, bool) {
	best, bestN, found := "", -1, false
	for _, c := range candidates {
		n, ok := s.freq[c]
		if !ok {
			continue
		}
		if n > bestN || (n == bestN && c < best) {
			best, bestN, found = c, n, true
		}
	}
	return best, found
}

// edits1 lists every string one delete, transpose, replace or insert away.
func edits1(word string) []string {
	out := make([]string, 0, 54*len(word)+25)
	for i := 0; i <= len(word); i++ {
		left, right := word[:i], word[i:]
		if len(right) > 0 {
			out = append(out, left+right[1:])
		}
		if len(right) > 1 {
			out = append(out, left+string(right[1])+string(right[0])+right[2:])
		}
		for _, c := range alphabet {
			if len(right) > 0 {
				out = append(out, left+string(c)+right[1:])
			}
			out = append(out, left+string(c)+right)
		}
	}
	return out
}
