package config

import (
	"os"
	"strconv"
)

// Env accessors with fallbacks. Composition roots load .env first; these
// helpers only read the resulting process environment.

func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func GetFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}
