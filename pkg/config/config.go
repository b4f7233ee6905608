package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration options for the probe
type Config struct {
	// Pages to probe
	Pages []string `yaml:"pages" json:"pages"`

	// Probe behaviour
	Probe ProbeConfig `yaml:"probe" json:"probe"`

	// Rate limiting configuration
	RateLimit RateLimitConfig `yaml:"rate_limit" json:"rate_limit"`

	// Facebook endpoint settings
	Facebook FacebookConfig `yaml:"facebook" json:"facebook"`

	// Logging configuration
	Logging LoggingConfig `yaml:"logging" json:"logging"`
}

// ProbeConfig holds the per-page probe budget
type ProbeConfig struct {
	PostCount    int           `yaml:"post_count" json:"post_count"`
	PageDepth    int           `yaml:"page_depth" json:"page_depth"`
	FetchTimeout time.Duration `yaml:"fetch_timeout" json:"fetch_timeout"`
}

// probeConfigYAML mirrors ProbeConfig with the timeout as a duration string
type probeConfigYAML struct {
	PostCount    int    `yaml:"post_count"`
	PageDepth    int    `yaml:"page_depth"`
	FetchTimeout string `yaml:"fetch_timeout"`
}

// MarshalYAML writes the fetch timeout as a duration string ("30s")
// rather than raw nanoseconds
func (p ProbeConfig) MarshalYAML() (interface{}, error) {
	return probeConfigYAML{
		PostCount:    p.PostCount,
		PageDepth:    p.PageDepth,
		FetchTimeout: p.FetchTimeout.String(),
	}, nil
}

// UnmarshalYAML accepts the timeout as a duration string ("30s") or
// plain seconds (30). Absent keys leave the current values untouched.
func (p *ProbeConfig) UnmarshalYAML(value *yaml.Node) error {
	var aux probeConfigYAML
	if err := value.Decode(&aux); err != nil {
		return err
	}

	if aux.PostCount > 0 {
		p.PostCount = aux.PostCount
	}
	if aux.PageDepth > 0 {
		p.PageDepth = aux.PageDepth
	}
	if aux.FetchTimeout != "" {
		d, err := time.ParseDuration(aux.FetchTimeout)
		if err != nil {
			secs, convErr := strconv.Atoi(aux.FetchTimeout)
			if convErr != nil {
				return fmt.Errorf("invalid fetch_timeout %q: %w", aux.FetchTimeout, err)
			}
			d = time.Duration(secs) * time.Second
		}
		if d > 0 {
			p.FetchTimeout = d
		}
	}

	return nil
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	RequestsPerMinute int `yaml:"requests_per_minute" json:"requests_per_minute"`
	BurstSize         int `yaml:"burst_size" json:"burst_size"`
}

// FacebookConfig holds Facebook-specific configuration
type FacebookConfig struct {
	BaseURL   string `yaml:"base_url" json:"base_url"`
	UserAgent string `yaml:"user_agent" json:"user_agent"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level string `yaml:"level" json:"level"`
	File  string `yaml:"file" json:"file"`
}

// DefaultConfig returns a Config instance with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Pages: []string{"PhuketTimeNews"},
		Probe: ProbeConfig{
			PostCount:    5,
			PageDepth:    3,
			FetchTimeout: 30 * time.Second,
		},
		RateLimit: RateLimitConfig{
			RequestsPerMinute: 30,
			BurstSize:         1,
		},
		Facebook: FacebookConfig{
			BaseURL:   "https://m.facebook.com",
			UserAgent: "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36",
		},
		Logging: LoggingConfig{
			Level: "info",
			File:  "",
		},
	}
}

// LoadFromEnv loads configuration from environment variables
func (c *Config) LoadFromEnv() error {
	// Pages
	if pages := os.Getenv("FBPROBE_PAGES"); pages != "" {
		var parsed []string
		for _, p := range strings.Split(pages, ",") {
			if p = strings.TrimSpace(p); p != "" {
				parsed = append(parsed, p)
			}
		}
		if len(parsed) > 0 {
			c.Pages = parsed
		}
	}

	// Probe budget
	if count := os.Getenv("FBPROBE_POST_COUNT"); count != "" {
		var val int
		fmt.Sscanf(count, "%d", &val)
		if val > 0 {
			c.Probe.PostCount = val
		}
	}
	if depth := os.Getenv("FBPROBE_PAGE_DEPTH"); depth != "" {
		var val int
		fmt.Sscanf(depth, "%d", &val)
		if val > 0 {
			c.Probe.PageDepth = val
		}
	}
	if timeout := os.Getenv("FBPROBE_FETCH_TIMEOUT"); timeout != "" {
		// Accept a duration string ("30s") or plain seconds ("30")
		if d, err := time.ParseDuration(timeout); err == nil && d > 0 {
			c.Probe.FetchTimeout = d
		} else {
			var secs int
			fmt.Sscanf(timeout, "%d", &secs)
			if secs > 0 {
				c.Probe.FetchTimeout = time.Duration(secs) * time.Second
			}
		}
	}

	// Rate limiting
	if rpm := os.Getenv("FBPROBE_REQUESTS_PER_MINUTE"); rpm != "" {
		var val int
		fmt.Sscanf(rpm, "%d", &val)
		if val > 0 {
			c.RateLimit.RequestsPerMinute = val
		}
	}

	// Facebook endpoint
	if baseURL := os.Getenv("FBPROBE_BASE_URL"); baseURL != "" {
		c.Facebook.BaseURL = baseURL
	}
	if userAgent := os.Getenv("FBPROBE_USER_AGENT"); userAgent != "" {
		c.Facebook.UserAgent = userAgent
	}

	// Logging
	if logLevel := os.Getenv("FBPROBE_LOG_LEVEL"); logLevel != "" {
		c.Logging.Level = logLevel
	}
	if logFile := os.Getenv("FBPROBE_LOG_FILE"); logFile != "" {
		c.Logging.File = logFile
	}

	return nil
}

// LoadFromFile loads configuration from a YAML file
func (c *Config) LoadFromFile(path string) error {
	// If path is empty, try default locations
	if path == "" {
		path = FindConfigFile()
		if path == "" {
			return nil // No config file found, not an error
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	return nil
}

// FindConfigFile searches for a config file in standard locations
func FindConfigFile() string {
	// Check in order of precedence
	locations := []string{
		".fbprobe.yaml",
		".fbprobe.yml",
		filepath.Join(os.Getenv("HOME"), ".config", "fbprobe", "config.yaml"),
		filepath.Join(os.Getenv("HOME"), ".config", "fbprobe", "config.yml"),
		filepath.Join(os.Getenv("HOME"), ".fbprobe.yaml"),
		filepath.Join(os.Getenv("HOME"), ".fbprobe.yml"),
	}

	for _, loc := range locations {
		if _, err := os.Stat(loc); err == nil {
			return loc
		}
	}

	return ""
}

// DefaultConfigPath returns the preferred location for a new config file
func DefaultConfigPath() string {
	return filepath.Join(os.Getenv("HOME"), ".config", "fbprobe", "config.yaml")
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	var errs []error

	// Validate pages
	if len(c.Pages) == 0 {
		errs = append(errs, errors.New("at least one page is required"))
	}
	for _, page := range c.Pages {
		if strings.TrimSpace(page) == "" {
			errs = append(errs, errors.New("page names cannot be empty"))
			break
		}
	}

	// Validate probe budget
	if c.Probe.PostCount <= 0 {
		errs = append(errs, errors.New("post count must be positive"))
	}
	if c.Probe.PageDepth <= 0 {
		errs = append(errs, errors.New("page depth must be positive"))
	}
	if c.Probe.FetchTimeout <= 0 {
		errs = append(errs, errors.New("fetch timeout must be positive"))
	}

	// Validate rate limiting
	if c.RateLimit.RequestsPerMinute <= 0 {
		errs = append(errs, errors.New("requests per minute must be positive"))
	}
	if c.RateLimit.BurstSize <= 0 {
		errs = append(errs, errors.New("burst size must be positive"))
	}

	// Validate Facebook endpoint
	if c.Facebook.BaseURL == "" {
		errs = append(errs, errors.New("base URL is required"))
	}
	if c.Facebook.UserAgent == "" {
		errs = append(errs, errors.New("user agent is required"))
	}

	// Validate logging
	validLogLevels := map[string]bool{
		"debug": true, "info": true, "warn": true, "error": true,
	}
	if !validLogLevels[strings.ToLower(c.Logging.Level)] {
		errs = append(errs, errors.New("invalid log level"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// Save saves the configuration to a file
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// Create directory if it doesn't exist
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// MergeCommandLineFlags merges command line flags into the configuration
func (c *Config) MergeCommandLineFlags(flags map[string]interface{}) {
	if pages, ok := flags["pages"].([]string); ok && len(pages) > 0 {
		c.Pages = pages
	}
	if posts, ok := flags["posts"].(int); ok && posts > 0 {
		c.Probe.PostCount = posts
	}
	if depth, ok := flags["page-depth"].(int); ok && depth > 0 {
		c.Probe.PageDepth = depth
	}
	if timeout, ok := flags["timeout"].(int); ok && timeout > 0 {
		c.Probe.FetchTimeout = time.Duration(timeout) * time.Second
	}
	if rpm, ok := flags["rate-limit"].(int); ok && rpm > 0 {
		c.RateLimit.RequestsPerMinute = rpm
	}
	if logLevel, ok := flags["log-level"].(string); ok && logLevel != "" {
		c.Logging.Level = logLevel
	}
}

// Load loads configuration from all sources with proper precedence
// Precedence order: Command line flags > Environment variables > .env file > Config file > Defaults
func Load(configPath string, flags map[string]interface{}) (*Config, error) {
	// Try to load .env files (don't fail if they don't exist)
	_ = godotenv.Load(".env")
	_ = godotenv.Load(filepath.Join(os.Getenv("HOME"), ".env"))
	_ = godotenv.Load(filepath.Join(os.Getenv("HOME"), ".fbprobe.env"))

	// Start with defaults
	config := DefaultConfig()

	// Load from config file
	if err := config.LoadFromFile(configPath); err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	// Override with environment variables (includes values from .env)
	if err := config.LoadFromEnv(); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	// Override with command line flags
	config.MergeCommandLineFlags(flags)

	// Validate final configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}
