package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	// Groq (OpenAI-compatible) credentials for intent parsing and
	// response generation. The API key is the only required setting.
	GroqAPIKey  string
	GroqBaseURL string
	GroqModel   string

	// Optional Google geocoding key; when empty the resolver relies on the
	// static gazetteer alone.
	GeocoderAPIKey string

	// FuzzyThreshold is the minimum 0-100 similarity score for a city match.
	FuzzyThreshold int

	// Outbound HTTP client timeout for Open-Meteo calls.
	HTTPTimeout time.Duration

	// Response cache. An empty CachePath selects the in-memory cache.
	CachePath string
	CacheTTL  time.Duration

	// Maintenance scheduler interval and cities whose forecasts are
	// prewarmed on each run.
	SchedulerInterval time.Duration
	PrewarmCities     []string

	Port string
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}

	cfg.GroqAPIKey = os.Getenv("GROQ_API_KEY")
	if cfg.GroqAPIKey == "" {
		return nil, fmt.Errorf("GROQ_API_KEY is missing in environment variables")
	}

	cfg.GroqBaseURL = getenvDefault("GROQ_BASE_URL", "https://api.groq.com/openai/v1")
	cfg.GroqModel = getenvDefault("GROQ_MODEL", "llama-3.3-70b-versatile")
	cfg.GeocoderAPIKey = os.Getenv("GEOCODER_API_KEY")

	cfg.FuzzyThreshold = getenvInt("FUZZY_MATCH_THRESHOLD", 40)

	timeoutStr := getenvDefault("HTTP_TIMEOUT", "10s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}
	cfg.HTTPTimeout = timeout

	cfg.CachePath = getenvDefault("CACHE_PATH", ".cache.db")

	ttlStr := getenvDefault("CACHE_TTL", "1h")
	ttl, err := time.ParseDuration(ttlStr)
	if err != nil {
		return nil, fmt.Errorf("invalid CACHE_TTL: %w", err)
	}
	cfg.CacheTTL = ttl

	intervalStr := getenvDefault("SCHEDULER_INTERVAL", "1h")
	interval, err := time.ParseDuration(intervalStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SCHEDULER_INTERVAL: %w", err)
	}
	cfg.SchedulerInterval = interval

	if cities := os.Getenv("PREWARM_CITIES"); cities != "" {
		for _, c := range strings.Split(cities, ",") {
			if c = strings.TrimSpace(c); c != "" {
				cfg.PrewarmCities = append(cfg.PrewarmCities, c)
			}
		}
	}

	cfg.Port = getenvDefault("PORT", "8080")

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}
