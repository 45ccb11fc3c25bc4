package config

import "time"

// Config holds runtime settings for the blog CLI.
//
// Fields:
//   - BaseURL: origin of the blog platform REST API.
//   - RequestTimeout: per-request HTTP timeout.
//   - CacheDBPath: sqlite file for locally cached contact data.
//   - PageLimit: page size used by blog listings.
//   - PromptDelay: pause before follow-up verification prompts, so they do
//     not flash while a dialog is still closing.
//   - ResetToken: password-reset token carried by an emailed deep link,
//     consumed once at startup.
type Config struct {
	BaseURL        string
	RequestTimeout time.Duration
	CacheDBPath    string
	PageLimit      int
	PromptDelay    time.Duration
	ResetToken     string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "https://localhost:8006"
	c.RequestTimeout = 30 * time.Second
	c.CacheDBPath = "blogcli.db"
	c.PageLimit = 20
	c.PromptDelay = time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
