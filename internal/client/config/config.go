package config

// Config holds runtime settings for the userdeck client.
//
// Fields:
//   - BackendOrigin: scheme://host:port of the user-management backend. All
//     API paths and served profile images resolve against it.
//   - PageStart: the page the directory opens on.
//
// The origin is always injected into the API client from here, never read
// from a package constant, so tests can point the client at a mock backend.
type Config struct {
	BackendOrigin string
	PageStart     int
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BackendOrigin = "http://localhost:3000"
	c.PageStart = 1
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), environment variables and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
