package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
)

// Link is an external link shown in the sidebar and by :socials
type Link struct {
	Label string `json:"label"`
	URL   string `json:"url"`
	Icon  string `json:"icon,omitempty"`
}

// Config represents the termfolio configuration
type Config struct {
	Title       string        `json:"title"`
	StartPage   string        `json:"start_page"`
	Files       []string      `json:"files"`
	Links       []Link        `json:"links,omitempty"`
	ArchiveDir  string        `json:"archive_dir"`
	ContentDir  string        `json:"content_dir"`
	AssetPrefix string        `json:"asset_prefix"`
	LogFile     string        `json:"log_file"` // empty disables logging
	Interval    time.Duration `json:"-"` // Custom JSON handling below
	Theme       string        `json:"theme"`
}

// Themes lists the supported color themes in cycle order
var Themes = []string{"tokyo", "gruvbox"}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		Title:       "root@termfolio:~",
		StartPage:   "home",
		Files:       []string{"home", "about"},
		Links:       []Link{},
		ArchiveDir:  "_posts",
		ContentDir:  "content",
		AssetPrefix: "_backup/",
		LogFile:     "/tmp/termfolio.log",
		Interval:    30 * time.Second,
		Theme:       "tokyo",
	}
}

// ConfigPath returns the path to the config file
// Uses ~/.config on all platforms for consistency
// Can be overridden for testing
var ConfigPath = func() string {
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to XDG if home dir unavailable
		return filepath.Join(xdg.ConfigHome, "termfolio", "config.json")
	}
	return filepath.Join(home, ".config", "termfolio", "config.json")
}

// StateFilePath returns the path to the import state file
// Uses platform-specific XDG data directory
// Can be overridden for testing
var StateFilePath = func() string {
	return filepath.Join(xdg.DataHome, "termfolio", "state.json")
}

// EnvFile is the optional dotenv file read before environment overrides
var EnvFile = ".env"

type rawConfig struct {
	Title       string   `json:"title"`
	StartPage   string   `json:"start_page"`
	Files       []string `json:"files"`
	Links       []Link   `json:"links,omitempty"`
	ArchiveDir  string   `json:"archive_dir"`
	ContentDir  string   `json:"content_dir"`
	AssetPrefix string   `json:"asset_prefix"`
	LogFile     string   `json:"log_file"`
	Interval    string   `json:"interval"`
	Theme       string   `json:"theme,omitempty"`
}

// Load reads configuration from the config file, then applies environment overrides
func Load() (*Config, error) {
	cfg, err := loadFile()
	if err != nil {
		return nil, err
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	// Validate config
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	// Expand paths
	if err := cfg.ExpandPaths(); err != nil {
		return nil, fmt.Errorf("failed to expand paths: %w", err)
	}

	return cfg, nil
}

func loadFile() (*Config, error) {
	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		// Return default config if file doesn't exist
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	// Missing keys keep their defaults
	defaults := DefaultConfig()
	raw := rawConfig{
		Title:       defaults.Title,
		StartPage:   defaults.StartPage,
		Files:       defaults.Files,
		Links:       defaults.Links,
		ArchiveDir:  defaults.ArchiveDir,
		ContentDir:  defaults.ContentDir,
		AssetPrefix: defaults.AssetPrefix,
		LogFile:     defaults.LogFile,
		Interval:    defaults.Interval.String(),
		Theme:       defaults.Theme,
	}

	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	interval, err := time.ParseDuration(raw.Interval)
	if err != nil {
		return nil, fmt.Errorf("invalid interval format '%s': %w", raw.Interval, err)
	}

	links := raw.Links
	if links == nil {
		links = []Link{}
	}

	return &Config{
		Title:       raw.Title,
		StartPage:   raw.StartPage,
		Files:       raw.Files,
		Links:       links,
		ArchiveDir:  raw.ArchiveDir,
		ContentDir:  raw.ContentDir,
		AssetPrefix: raw.AssetPrefix,
		LogFile:     raw.LogFile,
		Interval:    interval,
		Theme:       raw.Theme,
	}, nil
}

// applyEnv loads EnvFile if present and applies TERMFOLIO_* overrides
func (c *Config) applyEnv() error {
	if err := godotenv.Load(EnvFile); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to load %s: %w", EnvFile, err)
	}

	overrides := map[string]*string{
		"TERMFOLIO_ARCHIVE_DIR":  &c.ArchiveDir,
		"TERMFOLIO_CONTENT_DIR":  &c.ContentDir,
		"TERMFOLIO_ASSET_PREFIX": &c.AssetPrefix,
		"TERMFOLIO_LOG_FILE":     &c.LogFile,
		"TERMFOLIO_THEME":        &c.Theme,
	}
	for key, field := range overrides {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			*field = v
		}
	}

	return nil
}

// Save writes configuration to the config file
func (c *Config) Save() error {
	configPath := ConfigPath()
	configDir := filepath.Dir(configPath)

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	raw := rawConfig{
		Title:       c.Title,
		StartPage:   c.StartPage,
		Files:       c.Files,
		Links:       c.Links,
		ArchiveDir:  c.ArchiveDir,
		ContentDir:  c.ContentDir,
		AssetPrefix: c.AssetPrefix,
		LogFile:     c.LogFile,
		Interval:    c.Interval.String(),
		Theme:       c.Theme,
	}

	data, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.ArchiveDir == "" {
		return fmt.Errorf("archive_dir cannot be empty")
	}
	if c.ContentDir == "" {
		return fmt.Errorf("content_dir cannot be empty")
	}
	if c.AssetPrefix == "" {
		return fmt.Errorf("asset_prefix cannot be empty")
	}
	if c.Interval <= 0 {
		return fmt.Errorf("interval must be positive")
	}
	if c.StartPage == "" {
		return fmt.Errorf("start_page cannot be empty")
	}
	if !c.HasFile(c.StartPage) {
		return fmt.Errorf("start_page '%s' is not listed in files", c.StartPage)
	}

	if !ValidTheme(c.Theme) {
		return fmt.Errorf("invalid theme '%s': must be one of: tokyo, gruvbox", c.Theme)
	}

	for _, link := range c.Links {
		if link.Label == "" || link.URL == "" {
			return fmt.Errorf("links need both a label and a url")
		}
	}

	return nil
}

// ValidTheme reports whether name is a supported theme
func ValidTheme(name string) bool {
	for _, t := range Themes {
		if t == name {
			return true
		}
	}
	return false
}

// NextTheme returns the theme after current, wrapping around
func NextTheme(current string) string {
	for i, t := range Themes {
		if t == current {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

// HasFile reports whether name is one of the configured content files
func (c *Config) HasFile(name string) bool {
	for _, f := range c.Files {
		if f == name {
			return true
		}
	}
	return false
}

// ContentPath returns the markdown path for a content file name
func (c *Config) ContentPath(name string) string {
	return filepath.Join(c.ContentDir, name+".md")
}

// ExpandPaths expands any ~ or relative paths to absolute paths
func (c *Config) ExpandPaths() error {
	var err error

	c.ArchiveDir, err = expandPath(c.ArchiveDir)
	if err != nil {
		return fmt.Errorf("failed to expand archive_dir: %w", err)
	}

	c.ContentDir, err = expandPath(c.ContentDir)
	if err != nil {
		return fmt.Errorf("failed to expand content_dir: %w", err)
	}

	c.LogFile, err = expandPath(c.LogFile)
	if err != nil {
		return fmt.Errorf("failed to expand log_file: %w", err)
	}

	return nil
}

// expandPath expands ~ to home directory and converts to absolute path
func expandPath(path string) (string, error) {
	if path == "" {
		return path, nil
	}

	// Expand ~ to home directory
	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		if len(path) == 1 {
			return homeDir, nil
		}
		path = filepath.Join(homeDir, path[1:])
	}

	// Convert to absolute path
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	return absPath, nil
}
