package model

import "time"

// Config holds the complete runtime configuration
type Config struct {
	HTTP   HTTPConfig   `yaml:"http" json:"http"`
	Cache  CacheConfig  `yaml:"cache" json:"cache"`
	Stats  StatsConfig  `yaml:"stats" json:"stats"`
	Output OutputConfig `yaml:"output" json:"output"`
}

// HTTPConfig controls the stats-endpoint HTTP client
type HTTPConfig struct {
	Timeout      time.Duration `yaml:"timeout" json:"timeout"`
	UserAgent    string        `yaml:"user_agent" json:"user_agent"`
	MaxBodyBytes int64         `yaml:"max_body_bytes" json:"max_body_bytes"`
	HTTPProxy    string        `yaml:"http_proxy,omitempty" json:"http_proxy,omitempty"`
	HTTPSProxy   string        `yaml:"https_proxy,omitempty" json:"https_proxy,omitempty"`
	NoProxy      string        `yaml:"no_proxy,omitempty" json:"no_proxy,omitempty"`
}

// CacheConfig controls caching of fetched stats listings
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled" json:"enabled"`
	Dir       string        `yaml:"dir" json:"dir"`
	MemoryTTL time.Duration `yaml:"memory_ttl" json:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl" json:"disk_ttl"`
}

// StatsConfig controls the remote stats source
type StatsConfig struct {
	Endpoint          string   `yaml:"endpoint" json:"endpoint"`
	Categories        []string `yaml:"categories" json:"categories"`
	RequestsPerSecond float64  `yaml:"requests_per_second" json:"requests_per_second"`
	Burst             int      `yaml:"burst" json:"burst"`
}

// OutputConfig controls report rendering
type OutputConfig struct {
	Verbose bool `yaml:"verbose" json:"verbose"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Timeout:      30 * time.Second,
			UserAgent:    "PathOfSearching/1.2 (+https://github.com/demetriusmayo/PathOfSearching)",
			MaxBodyBytes: 8_000_000,
		},
		Cache: CacheConfig{
			Enabled:   true,
			Dir:       "", // resolved to ~/.pathofsearching/cache at startup
			MemoryTTL: 15 * time.Minute,
			DiskTTL:   24 * time.Hour,
		},
		Stats: StatsConfig{
			Endpoint:          "https://www.pathofexile.com/api/trade/data/stats",
			Categories:        DefaultCategories(),
			RequestsPerSecond: 1,
			Burst:             2,
		},
		Output: OutputConfig{
			Verbose: false,
		},
	}
}
