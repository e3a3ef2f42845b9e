package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port string

	// Catalog source: builtin | sqlite | files
	CatalogSource      string
	DBPath             string
	CatalogCropsFile   string
	CatalogRegionsFile string
	CatalogStrict      bool

	ProviderTimeout time.Duration
	SimulatedDelay  time.Duration
	MaxUploadBytes  int64

	LogLevel  string
	LogFormat string

	LLMEndpoint string
	LLMAPIKey   string
	LLMModel    string
}

// LLMEnabled reports whether the vision soil provider can be used.
func (c AppConfig) LLMEnabled() bool { return c.LLMEndpoint != "" && c.LLMAPIKey != "" }

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("[cfg] error loading .env: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	dur := func(k string, def time.Duration) time.Duration {
		if d, err := time.ParseDuration(get(k, "")); err == nil && d >= 0 {
			return d
		}
		return def
	}
	size := func(k string, def int64) int64 {
		if n, err := strconv.ParseInt(get(k, ""), 10, 64); err == nil && n > 0 {
			return n
		}
		return def
	}

	return AppConfig{
		Port:               get("PORT", "8080"),
		CatalogSource:      get("CATALOG_SOURCE", "builtin"),
		DBPath:             get("DB_PATH", "cropadvisor.db"),
		CatalogCropsFile:   get("CATALOG_CROPS_FILE", "crops.xlsx"),
		CatalogRegionsFile: get("CATALOG_REGIONS_FILE", "regions.xlsx"),
		CatalogStrict:      get("CATALOG_STRICT", "false") == "true",
		ProviderTimeout:    dur("PROVIDER_TIMEOUT", 30*time.Second),
		SimulatedDelay:     dur("SIMULATED_DELAY", 2*time.Second),
		MaxUploadBytes:     size("MAX_UPLOAD_BYTES", 10<<20),
		LogLevel:           get("LOG_LEVEL", "info"),
		LogFormat:          get("LOG_FORMAT", "console"),
		LLMEndpoint:        get("LLM_ENDPOINT", ""),
		LLMAPIKey:          get("LLM_API_KEY", ""),
		LLMModel:           get("LLM_MODEL", "gpt-4o-mini"),
	}
}
