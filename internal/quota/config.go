package quota

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/careerkit/career-tools/internal/tools"
)

// ToolConfig holds the quota settings for a single tool.
type ToolConfig struct {
	Limit  int           // Maximum requests per window
	Window time.Duration // Fixed window duration
}

// Config holds quota configuration for all tools.
type Config struct {
	Enabled         bool
	CleanupInterval time.Duration
	Tools           map[tools.Kind]ToolConfig
	Default         ToolConfig
}

// DefaultConfig returns the built-in quota configuration. Generation calls
// are expensive, so the limits are deliberately low.
func DefaultConfig() *Config {
	return &Config{
		Enabled:         true,
		CleanupInterval: 5 * time.Minute,
		Tools: map[tools.Kind]ToolConfig{
			tools.CoverLetter: {Limit: 5, Window: time.Hour},
			tools.Salary:      {Limit: 10, Window: time.Hour},
			tools.Leadership:  {Limit: 10, Window: time.Hour},
		},
		Default: ToolConfig{Limit: 10, Window: time.Hour},
	}
}

// LoadConfig loads quota configuration from environment variables, falling
// back to the defaults. Per-tool overrides use the tool kind in upper case,
// e.g. QUOTA_COVER_LETTER_LIMIT=3 and QUOTA_COVER_LETTER_WINDOW=30m.
func LoadConfig() *Config {
	cfg := DefaultConfig()

	cfg.Enabled = getEnvBool("QUOTA_ENABLED", cfg.Enabled)
	if !cfg.Enabled {
		return &Config{Enabled: false}
	}

	cfg.CleanupInterval = getEnvDuration("QUOTA_CLEANUP_INTERVAL", cfg.CleanupInterval)

	for _, kind := range tools.All() {
		prefix := "QUOTA_" + strings.ToUpper(string(kind))
		tc := cfg.Tools[kind]
		tc.Limit = getEnvInt(prefix+"_LIMIT", tc.Limit)
		tc.Window = getEnvDuration(prefix+"_WINDOW", tc.Window)
		cfg.Tools[kind] = tc
	}

	return cfg
}

// ForTool returns the quota settings for the given tool.
func (c *Config) ForTool(tool tools.Kind) ToolConfig {
	if tc, ok := c.Tools[tool]; ok {
		return tc
	}
	return c.Default
}

// longestWindow returns the largest configured window, used to decide when
// an idle window is safe to garbage collect.
func (c *Config) longestWindow() time.Duration {
	longest := c.Default.Window
	for _, tc := range c.Tools {
		if tc.Window > longest {
			longest = tc.Window
		}
	}
	return longest
}

// getEnvInt gets an environment variable as an integer with a default value.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvBool gets an environment variable as a boolean with a default value.
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvDuration gets an environment variable as a duration with a default value.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
