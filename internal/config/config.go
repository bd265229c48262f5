package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port string

	// Quran.com API
	QuranAPIBase     string
	TafsirResourceID int
	FetchTimeout     time.Duration

	// Claude summarisation
	AnthropicAPIKey string
	AnthropicModel  string
	MaxTokens       int
	ChunkMaxChars   int
	ChunkPause      time.Duration

	// Schedule
	RamadanStart string // YYYY-MM-DD, day 0 maps to juz 1
	JuzOverride  int    // 0 means use the schedule

	// Output
	OutputDir string

	// Serve mode
	APIKey       string
	GenerateCron string
}

func Load() Config {
	cfg := Config{
		Port: envOr("PORT", "8090"),

		QuranAPIBase:     envOr("QURAN_API_BASE", "https://api.quran.com/api/v4"),
		TafsirResourceID: envInt("TAFSIR_RESOURCE_ID", 169), // Ibn Kathir (English, abridged)
		FetchTimeout:     envDuration("FETCH_TIMEOUT", 30*time.Second),

		AnthropicAPIKey: os.Getenv("ANTHROPIC_API_KEY"),
		AnthropicModel:  envOr("ANTHROPIC_MODEL", "claude-haiku-4-5-20251001"),
		MaxTokens:       envInt("MAX_TOKENS", 4096),
		ChunkMaxChars:   envInt("CHUNK_MAX_CHARS", 120_000),
		ChunkPause:      envDuration("CHUNK_PAUSE", 65*time.Second),

		RamadanStart: envOr("RAMADAN_START", "2026-02-17"),
		JuzOverride:  envInt("JUZ_NUMBER", 0),

		OutputDir: envOr("OUTPUT_DIR", "site"),

		APIKey:       os.Getenv("JUZDIGEST_API_KEY"),
		GenerateCron: envOr("GENERATE_CRON", "0 6 * * *"),
	}

	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = 4096
	}
	if cfg.ChunkMaxChars <= 0 {
		cfg.ChunkMaxChars = 120_000
	}
	if cfg.ChunkPause < 0 {
		cfg.ChunkPause = 65 * time.Second
	}
	if cfg.FetchTimeout <= 0 {
		cfg.FetchTimeout = 30 * time.Second
	}

	return cfg
}

// Validate checks settings required for a real (non-local) generation run.
func (c Config) Validate() error {
	if c.AnthropicAPIKey == "" {
		return fmt.Errorf("ANTHROPIC_API_KEY is required")
	}
	if _, err := time.Parse("2006-01-02", c.RamadanStart); err != nil {
		return fmt.Errorf("RAMADAN_START must be YYYY-MM-DD: %w", err)
	}
	if c.JuzOverride < 0 || c.JuzOverride > 30 {
		return fmt.Errorf("JUZ_NUMBER must be between 1 and 30, got %d", c.JuzOverride)
	}
	return nil
}

// StartDate parses RamadanStart. Call Validate first.
func (c Config) StartDate() time.Time {
	t, _ := time.Parse("2006-01-02", c.RamadanStart)
	return t
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
