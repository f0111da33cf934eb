package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with environment variables. A .env file in the
// working directory is loaded first when present; real environment variables
// win over .env entries (godotenv never overrides existing ones).
//
// Recognized variables:
//
//	USERDECK_BACKEND_ORIGIN  backend origin, e.g. http://localhost:3000
//	USERDECK_PAGE_START      1-based page the directory opens on
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v, ok := os.LookupEnv("USERDECK_BACKEND_ORIGIN"); ok && v != "" {
		cfg.BackendOrigin = v
	}
	if v, ok := os.LookupEnv("USERDECK_PAGE_START"); ok {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.PageStart = n
		}
	}
}
