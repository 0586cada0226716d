package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/dgallion1/lessonmark/internal/doctree"
)

type Config struct {
	Port string

	// Auth. Empty disables bearer auth on /api.
	APIKey string

	// Request limits
	MaxBodyBytes int64

	// Print documents
	PrintTTL             time.Duration
	PrintMaxDocs         int
	PrintCleanupInterval time.Duration

	// Rendering defaults
	DefaultMode doctree.Mode
	TermWidth   int
}

var defaults = map[string]any{
	"port":                   "8090",
	"api_key":                "",
	"max_body_bytes":         int64(1 << 20),
	"print_ttl":              15 * time.Minute,
	"print_max_docs":         256,
	"print_cleanup_interval": time.Minute,
	"default_mode":           string(doctree.ModeFeedback),
	"term_width":             80,
}

// Load resolves configuration from defaults and LESSONMARK_* environment variables.
func Load() (Config, error) {
	return LoadFrom(viper.New())
}

// LoadFrom resolves configuration with precedence: defaults < file < env.
// A config file is read only if one was set on v; a missing or unreadable
// file is an error.
func LoadFrom(v *viper.Viper) (Config, error) {
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
	if path := v.ConfigFileUsed(); path != "" {
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}
	v.SetEnvPrefix("lessonmark")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := Config{
		Port:                 v.GetString("port"),
		APIKey:               v.GetString("api_key"),
		MaxBodyBytes:         v.GetInt64("max_body_bytes"),
		PrintTTL:             v.GetDuration("print_ttl"),
		PrintMaxDocs:         v.GetInt("print_max_docs"),
		PrintCleanupInterval: v.GetDuration("print_cleanup_interval"),
		DefaultMode:          doctree.Mode(strings.ToLower(strings.TrimSpace(v.GetString("default_mode")))),
		TermWidth:            v.GetInt("term_width"),
	}

	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = 1 << 20
	}
	if cfg.PrintTTL <= 0 {
		cfg.PrintTTL = 15 * time.Minute
	}
	if cfg.PrintMaxDocs <= 0 {
		cfg.PrintMaxDocs = 256
	}
	if cfg.PrintCleanupInterval <= 0 {
		cfg.PrintCleanupInterval = time.Minute
	}
	if cfg.TermWidth < 0 {
		cfg.TermWidth = 0
	}

	return cfg, nil
}

func (c Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("port is required")
	}
	if n, err := strconv.Atoi(c.Port); err != nil || n <= 0 || n > 65535 {
		return fmt.Errorf("port must be a number between 1 and 65535, got %q", c.Port)
	}
	if _, err := doctree.ParseMode(string(c.DefaultMode), ""); err != nil || c.DefaultMode == "" {
		return fmt.Errorf("default_mode must be feedback or worksheet, got %q", c.DefaultMode)
	}
	return nil
}
