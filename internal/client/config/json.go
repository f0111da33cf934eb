package config

import (
	"encoding/json"
	"os"

	"github.com/dpetrovs/userdeck/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Parsed values
// are copied into the runtime Config.
type JsonConfig struct {
	BackendOrigin string `json:"backend_origin"`
	PageStart     int    `json:"page_start"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// Lookup order for the JSON file path:
//  1. Command-line flags (-c or -config) via flagx.JsonConfigFlags().
//  2. If empty, no JSON is loaded and the function returns.
//
// Only fields present in the file override the config; zero values are
// ignored so the JSON file can stay partial. Panics on read or unmarshal
// errors (caller should recover if desired).
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.BackendOrigin != "" {
		cfg.BackendOrigin = jc.BackendOrigin
	}
	if jc.PageStart > 0 {
		cfg.PageStart = jc.PageStart
	}
}
