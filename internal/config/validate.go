package config

import (
	"fmt"
	"net/url"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
// A missing recipe key is not an error: the recipe feature is simply off.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if err := validateURL(c.Recipe.BaseURL); err != nil {
		return fmt.Errorf("recipe.base_url: %w", err)
	}
	if c.Recipe.Timeout <= 0 {
		return fmt.Errorf("recipe.timeout must be > 0 (got %v)", c.Recipe.Timeout)
	}
	if c.Recipe.RatePerSecond < 0 {
		return fmt.Errorf("recipe.rate_per_second must be >= 0 (got %v)", c.Recipe.RatePerSecond)
	}

	if err := validateURL(c.Dictionary.BaseURL); err != nil {
		return fmt.Errorf("dictionary.base_url: %w", err)
	}
	if c.Dictionary.Timeout <= 0 {
		return fmt.Errorf("dictionary.timeout must be > 0 (got %v)", c.Dictionary.Timeout)
	}

	if c.Spell.MaxLength <= 0 {
		return fmt.Errorf("spell.max_length must be > 0 (got %d)", c.Spell.MaxLength)
	}

	if c.RateLimit.RequestsPerMinute < 0 {
		return fmt.Errorf("rate_limit.requests_per_minute must be >= 0 (got %d)", c.RateLimit.RequestsPerMinute)
	}

	return nil
}

func validateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("scheme must be http or https (got %q)", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("host is required (got %q)", raw)
	}
	return nil
}
