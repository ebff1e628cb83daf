package config

import (
	"strings"
	"time"
)

// PlaceholderAPIKey is the key value shipped in sample configs. It is treated
// the same as an empty key.
const PlaceholderAPIKey = "YOUR_API_KEY_HERE"

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Recipe     RecipeConfig     `yaml:"recipe"`
	Dictionary DictionaryConfig `yaml:"dictionary"`
	Spell      SpellConfig      `yaml:"spell"`
	RateLimit  RateLimitConfig  `yaml:"rate_limit"`
	Log        LogConfig        `yaml:"log"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"PORT"                    env-default:"5000"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	// TrustProxy takes the client address from X-Forwarded-For.
	TrustProxy bool `yaml:"trust_proxy" env:"SERVER_TRUST_PROXY" env-default:"false"`
}

// RecipeConfig holds Spoonacular recipe search settings.
// An empty or placeholder APIKey disables recipe lookups only.
type RecipeConfig struct {
	APIKey        string        `yaml:"api_key"         env:"SPOONACULAR_API_KEY"`
	BaseURL       string        `yaml:"base_url"        env:"RECIPE_BASE_URL"        env-default:"https://api.spoonacular.com"`
	Timeout       time.Duration `yaml:"timeout"         env:"RECIPE_TIMEOUT"         env-default:"10s"`
	RatePerSecond float64       `yaml:"rate_per_second" env:"RECIPE_RATE_PER_SECOND" env-default:"1"`
}

// DictionaryConfig holds FreeDictionary API settings.
type DictionaryConfig struct {
	BaseURL string        `yaml:"base_url" env:"DICTIONARY_BASE_URL" env-default:"https://api.dictionaryapi.dev/api/v2/entries/en"`
	Timeout time.Duration `yaml:"timeout"  env:"DICTIONARY_TIMEOUT"  env-default:"10s"`
}

// SpellConfig holds spell-correction settings.
type SpellConfig struct {
	// MaxLength is exclusive: queries this long or longer are never corrected.
	MaxLength int `yaml:"max_length" env:"SPELL_MAX_LENGTH" env-default:"15"`
}

// RateLimitConfig holds inbound request limits. Zero disables limiting.
type RateLimitConfig struct {
	RequestsPerMinute int `yaml:"requests_per_minute" env:"RATE_LIMIT_RPM" env-default:"120"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// Enabled reports whether a usable Spoonacular key is configured.
func (c RecipeConfig) Enabled() bool {
	key := strings.TrimSpace(c.APIKey)
	return key != "" && key != PlaceholderAPIKey
}
