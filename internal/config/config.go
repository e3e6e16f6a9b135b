package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all PriceNexus configuration.
type Config struct {
	// Core settings
	Name    string `yaml:"name"`
	Version string `yaml:"version"`

	// AI bridge configuration
	Bridge BridgeConfig `yaml:"bridge"`

	// Authentication backend
	Auth AuthConfig `yaml:"auth"`

	// Search pipeline
	Search SearchConfig `yaml:"search"`

	// Product image generation
	Images ImagesConfig `yaml:"images"`

	// Assistant chat
	Chat ChatConfig `yaml:"chat"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// BridgeConfig configures the generative-AI bridge.
type BridgeConfig struct {
	APIKey      string `yaml:"api_key"`
	SearchModel string `yaml:"search_model"`
	ChatModel   string `yaml:"chat_model"`
	ImageModel  string `yaml:"image_model"`
	Timeout     string `yaml:"timeout"`
	MinInterval string `yaml:"min_interval"`
}

// AuthConfig configures the identity backend. With no API key the program
// runs the simulated sign-in flow instead.
type AuthConfig struct {
	APIKey         string `yaml:"api_key"`
	ProjectID      string `yaml:"project_id"`
	Timeout        string `yaml:"timeout"`
	SimulatedDelay string `yaml:"simulated_delay"`
}

// SearchConfig configures the acquisition pipeline.
type SearchConfig struct {
	Timeout string `yaml:"timeout"`
}

// ImagesConfig configures per-product image generation.
type ImagesConfig struct {
	Timeout string `yaml:"timeout"`
}

// ChatConfig configures the assistant panel.
type ChatConfig struct {
	Timeout string `yaml:"timeout"`
}

// LoggingConfig configures the category logger.
type LoggingConfig struct {
	Debug      bool     `yaml:"debug"`
	Level      string   `yaml:"level"`  // debug, info, warn, error
	Format     string   `yaml:"format"` // json, text
	Dir        string   `yaml:"dir"`
	Categories []string `yaml:"categories"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Name:    "PriceNexus",
		Version: "1.0.0",

		Bridge: BridgeConfig{
			SearchModel: "gemini-3-flash-preview",
			ChatModel:   "gemini-3-pro-preview",
			ImageModel:  "gemini-2.5-flash-image",
			Timeout:     "60s",
			MinInterval: "500ms",
		},

		Auth: AuthConfig{
			Timeout:        "15s",
			SimulatedDelay: "800ms",
		},

		Search: SearchConfig{
			Timeout: "60s",
		},

		Images: ImagesConfig{
			Timeout: "45s",
		},

		Chat: ChatConfig{
			Timeout: "30s",
		},

		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Dir:    "logs",
		},
	}
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Return defaults if config file doesn't exist
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Override with environment variables
	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		c.Bridge.APIKey = key
	}
	if key := os.Getenv("NEXUS_BRIDGE_API_KEY"); key != "" {
		c.Bridge.APIKey = key
	}
	if model := os.Getenv("NEXUS_SEARCH_MODEL"); model != "" {
		c.Bridge.SearchModel = model
	}
	if model := os.Getenv("NEXUS_CHAT_MODEL"); model != "" {
		c.Bridge.ChatModel = model
	}
	if key := os.Getenv("NEXUS_FIREBASE_API_KEY"); key != "" {
		c.Auth.APIKey = key
	}
	if project := os.Getenv("NEXUS_FIREBASE_PROJECT"); project != "" {
		c.Auth.ProjectID = project
	}
	if dir := os.Getenv("NEXUS_LOG_DIR"); dir != "" {
		c.Logging.Dir = dir
	}
	if os.Getenv("NEXUS_DEBUG") != "" {
		c.Logging.Debug = true
		c.Logging.Level = "debug"
	}
}

// BridgeConfigured reports whether the AI bridge has credentials.
func (c *Config) BridgeConfigured() bool {
	return c.Bridge.APIKey != ""
}

// AuthConfigured reports whether the identity backend has credentials.
func (c *Config) AuthConfigured() bool {
	return c.Auth.APIKey != ""
}

// GetBridgeTimeout returns the bridge call timeout as a duration.
func (c *Config) GetBridgeTimeout() time.Duration {
	return parseDuration(c.Bridge.Timeout, 60*time.Second)
}

// GetBridgeMinInterval returns the minimum gap between bridge calls.
func (c *Config) GetBridgeMinInterval() time.Duration {
	return parseDuration(c.Bridge.MinInterval, 500*time.Millisecond)
}

// GetAuthTimeout returns the identity backend timeout as a duration.
func (c *Config) GetAuthTimeout() time.Duration {
	return parseDuration(c.Auth.Timeout, 15*time.Second)
}

// GetSimulatedDelay returns the simulated sign-in delay as a duration.
func (c *Config) GetSimulatedDelay() time.Duration {
	return parseDuration(c.Auth.SimulatedDelay, 800*time.Millisecond)
}

// GetSearchTimeout returns the search pipeline timeout as a duration.
func (c *Config) GetSearchTimeout() time.Duration {
	return parseDuration(c.Search.Timeout, 60*time.Second)
}

// GetImageTimeout returns the image generation timeout as a duration.
func (c *Config) GetImageTimeout() time.Duration {
	return parseDuration(c.Images.Timeout, 45*time.Second)
}

// GetChatTimeout returns the assistant reply timeout as a duration.
func (c *Config) GetChatTimeout() time.Duration {
	return parseDuration(c.Chat.Timeout, 30*time.Second)
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}

// Validate checks settings that would only fail later at call time. Missing
// credentials are not errors here: the program degrades to demo mode instead.
func (c *Config) Validate() error {
	if c.Bridge.SearchModel == "" || c.Bridge.ChatModel == "" || c.Bridge.ImageModel == "" {
		return fmt.Errorf("bridge model names must not be empty")
	}
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "", "json", "text":
	default:
		return fmt.Errorf("invalid log format: %s", c.Logging.Format)
	}
	return nil
}
