package config

import (
	"os"
	"strconv"
	"time"
)

const (
	defaultPort         = "8080"
	defaultDataDir      = "data"
	defaultArtBaseURL   = "https://cdn.mystictarot.example/cards"
	defaultSiteURL      = "https://mystictarot.example"
	defaultBrand        = "✶ Mystic Tarot"
	defaultFetchTimeout = 10 * time.Second
)

// Config captures runtime configuration, all sourced from the environment.
type Config struct {
	Port         string
	DataDir      string
	ArtBaseURL   string
	SiteURL      string
	Brand        string
	FontDir      string
	OutDir       string
	FetchTimeout time.Duration
}

// Load reads configuration with defaults for anything unset.
func Load() Config {
	return Config{
		Port:         envOr("PORT", defaultPort),
		DataDir:      envOr("DATA_DIR", defaultDataDir),
		ArtBaseURL:   envOr("ART_BASE_URL", defaultArtBaseURL),
		SiteURL:      envOr("SITE_URL", defaultSiteURL),
		Brand:        envOr("BRAND", defaultBrand),
		FontDir:      os.Getenv("FONT_DIR"),
		OutDir:       os.Getenv("POSTER_OUT_DIR"),
		FetchTimeout: envDuration("FETCH_TIMEOUT_SECONDS", defaultFetchTimeout),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	secs, err := strconv.Atoi(v)
	if err != nil || secs <= 0 {
		return fallback
	}
	return time.Duration(secs) * time.Second
}
