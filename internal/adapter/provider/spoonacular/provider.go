package spoonacular

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/time/rate"

	"github.com/Karan-Chaurasia/AI-Dictionary/internal/config"
	"github.com/Karan-Chaurasia/AI-Dictionary/internal/domain"
	"github.com/Karan-Chaurasia/AI-Dictionary/internal/provider"
)

const (
	maxIngredients = 10
	defaultTimeout = 10 * time.Second
)

// Provider searches recipes through the Spoonacular API.
type Provider struct {
	apiKey     string
	enabled    bool
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	log        *slog.Logger
}

// NewProvider creates a Provider from cfg. A provider built without a usable
// key is valid; every FetchRecipe call then returns provider.ErrNotConfigured.
func NewProvider(cfg config.RecipeConfig, logger *slog.Logger) *Provider {
	limit := rate.Inf
	if cfg.RatePerSecond > 0 {
		limit = rate.Limit(cfg.RatePerSecond)
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Provider{
		apiKey:     strings.TrimSpace(cfg.APIKey),
		enabled:    cfg.Enabled(),
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		limiter:    rate.NewLimiter(limit, 1),
		log:        logger.With("adapter", "spoonacular"),
	}
}

// Enabled reports whether the provider has a usable API key.
func (p *Provider) Enabled() bool {
	return p.enabled
}

// FetchRecipe returns the top recipe for word.
// Returns nil, nil when the search has no results.
func (p *Provider) FetchRecipe(ctx context.Context, word string) (*provider.RecipeResult, error) {
	if !p.enabled {
		return nil, provider.ErrNotConfigured
	}

	if err := p.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("spoonacular: rate limit wait: %w", err)
	}

	params := url.Values{}
	params.Set("query", word)
	params.Set("number", "1")
	params.Set("addRecipeInformation", "true")
	params.Set("apiKey", p.apiKey)
	reqURL := p.baseURL + "/recipes/complexSearch?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("spoonacular: create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		// The URL carries the key, so only the word is logged.
		p.log.ErrorContext(ctx, "spoonacular request failed", slog.String("word", word))
		return nil, fmt.Errorf("spoonacular: request failed: %w", redactKey(err, p.apiKey))
	}
	defer resp.Body.Close()

	p.log.DebugContext(ctx, "spoonacular response", slog.String("word", word), slog.Int("status", resp.StatusCode))

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, provider.ErrUnauthorized
	case resp.StatusCode != http.StatusOK:
		return nil, &provider.StatusError{Provider: "spoonacular", Code: resp.StatusCode}
	}

	var body searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("spoonacular: decode json: %w", err)
	}

	if len(body.Results) == 0 {
		return nil, nil
	}

	return mapRecipe(body.Results[0], word), nil
}

func mapRecipe(r apiRecipe, word string) *provider.RecipeResult {
	title := strings.TrimSpace(r.Title)
	if title == "" {
		title = domain.TitleCase(word) + " Recipe"
	}

	ingredients := make([]string, 0, maxIngredients)
	for _, ing := range r.ExtendedIngredients {
		text := strings.TrimSpace(ing.Original)
		if text == "" {
			continue
		}
		ingredients = append(ingredients, text)
		if len(ingredients) == maxIngredients {
			break
		}
	}

	// Only a missing field gets the placeholder; an empty string is kept.
	instructions := domain.MsgNoInstructions
	if r.Instructions != nil {
		instructions = cleanInstructions(*r.Instructions)
	}

	return &provider.RecipeResult{
		Title:        title,
		Ingredients:  ingredients,
		Instructions: instructions,
	}
}

// cleanInstructions flattens instructions to one line. Spoonacular often sends
// HTML lists; their markup is dropped and block elements become spaces.
func cleanInstructions(s string) string {
	if strings.ContainsRune(s, '<') {
		if text, ok := stripHTML(s); ok {
			s = text
		}
	}
	return strings.ReplaceAll(s, "\n", " ")
}

func stripHTML(s string) (string, bool) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return "", false
	}
	doc.Find("li, p, br, div").Each(func(_ int, sel *goquery.Selection) {
		sel.AfterHtml(" ")
	})
	return strings.Join(strings.Fields(doc.Text()), " "), true
}

// redactKey removes the API key from transport errors, which quote the URL.
func redactKey(err error, key string) error {
	if key == "" || !strings.Contains(err.Error(), key) {
		return err
	}
	return errors.New(strings.ReplaceAll(err.Error(), key, "REDACTED"))
}
