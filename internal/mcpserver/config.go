package mcpserver

import (
	"log/slog"
	"os"
	"strconv"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// MaxInlineSize caps inline document content in bytes.
	MaxInlineSize int64

	// MaxMergeSources caps the number of sources accepted by the merge tool.
	MaxMergeSources int

	// OutputFormat is the default rendering for tool output documents.
	OutputFormat string
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from CFGTOOLS_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		MaxInlineSize:   envInt64("CFGTOOLS_MAX_INLINE_SIZE", 10*1024*1024),
		MaxMergeSources: envInt("CFGTOOLS_MAX_MERGE_SOURCES", 20),
		OutputFormat:    envFormat("CFGTOOLS_OUTPUT_FORMAT", "yaml"),
	}
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return n
}

func envInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return n
}

// validFormats is the set of recognised output format values.
var validFormats = map[string]bool{
	"yaml": true,
	"json": true,
}

func envFormat(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	if !validFormats[v] {
		slog.Warn("invalid format env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return v
}
