// Package config loads runtime configuration for the userdeck client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment variables, optionally via a .env file (see parseEnv).
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   origin of the backend server, e.g. http://localhost:3000
//	-p int      1-based page the directory opens on
//
// # JSON schema
//
//	{
//	  "backend_origin": "http://localhost:3000",
//	  "page_start": 1
//	}
//
// Primary API
//
//   - type Config                     - holds BackendOrigin and PageStart
//   - func LoadConfig() *Config       - builds Config by applying defaults, JSON, env, then flags
//   - func (*Config) LoadDefaults()   - sets sensible defaults
package config
