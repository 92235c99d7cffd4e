package config

import (
	"os"
	"strconv"
)

// Letter styles for rendered output
const (
	LetterStyleUnicode = "unicode"
	LetterStyleASCII   = "ascii"
)

// Config holds the application configuration
// Note: the scale engine is stateless; the only persisted state is the
// key/scale selection, which is owned by the caller's query string.
type Config struct {
	// Environment
	Environment string
	Port        string

	// Defaults applied when a request omits a parameter
	DefaultKey       string
	DefaultScaleType string
	DefaultExtra     int
	LetterStyle      string // "unicode" (B♭) or "ascii" (Bb)

	// Observability
	SentryDSN           string // Sentry DSN for error tracking
	CloudWatchNamespace string // Namespace for CloudWatch metrics (production only)
}

func Load() *Config {
	return &Config{
		Environment:         getEnv("ENVIRONMENT", "development"),
		Port:                getEnv("PORT", "8080"),
		DefaultKey:          getEnv("DEFAULT_KEY", "C"),
		DefaultScaleType:    getEnv("DEFAULT_SCALE_TYPE", "major"),
		DefaultExtra:        getEnvInt("DEFAULT_EXTRA", 1),
		LetterStyle:         getEnv("LETTER_STYLE", LetterStyleUnicode),
		SentryDSN:           getEnv("SENTRY_DSN", ""),
		CloudWatchNamespace: getEnv("CLOUDWATCH_NAMESPACE", "MAGDA/Scales"),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// IsProduction returns true when running in the production environment
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// UseASCII returns true if letters should be rendered with ASCII accidentals
func (c *Config) UseASCII() bool {
	return c.LetterStyle == LetterStyleASCII
}
