package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Item sources.
const (
	SourceFile     = "file"
	SourceDir      = "dir"
	SourceDatabase = "database"
)

// Inventory holds all configuration for the item engine.
type Inventory struct {
	LogLevel string `yaml:"log_level"`

	// Catalog source
	Source    string `yaml:"source"`     // file | dir | database
	ItemsPath string `yaml:"items_path"` // items.yml or a directory of *.yml

	// Localization overrides (optional)
	LanguagePath string `yaml:"language_path"`

	Lore Lore `yaml:"lore"`

	// Periodic reload; 0 disables it (SIGHUP still reloads)
	ReloadInterval time.Duration `yaml:"reload_interval"`

	// Database (source: database)
	Database DatabaseConfig `yaml:"database"`
}

// Lore holds the item lore pattern.
type Lore struct {
	Pattern   []string `yaml:"pattern"`
	Separator string   `yaml:"separator"`
}

// DatabaseConfig holds PostgreSQL connection parameters.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// DefaultLorePattern is the lore layout used when none is configured.
func DefaultLorePattern() []string {
	return []string{
		"_UNBREAKABLE_",
		"_DROP_",
		"_SEPARATOR_",
		"_LEVEL_",
		"_CLASS_",
		"_SEPARATOR_",
		"_LORE_",
		"_SEPARATOR_",
		"_SKILLS_",
		"_SEPARATOR_",
		"_STATS_",
	}
}

// DefaultInventory returns Inventory config with sensible defaults.
func DefaultInventory() Inventory {
	return Inventory{
		LogLevel:  "info",
		Source:    SourceFile,
		ItemsPath: "config/items.yml",
		Lore: Lore{
			Pattern:   DefaultLorePattern(),
			Separator: "&8----------------",
		},
		Database: DatabaseConfig{
			Host:     "127.0.0.1",
			Port:     5432,
			User:     "rpginventory",
			Password: "rpginventory",
			DBName:   "rpginventory",
			SSLMode:  "disable",
		},
	}
}

// Validate checks values that defaults can't fix.
func (c Inventory) Validate() error {
	switch c.Source {
	case SourceFile, SourceDir, SourceDatabase:
	default:
		return fmt.Errorf("unknown item source %q", c.Source)
	}
	if c.Source != SourceDatabase && c.ItemsPath == "" {
		return fmt.Errorf("items_path is required for source %q", c.Source)
	}
	if c.ReloadInterval < 0 {
		return fmt.Errorf("reload_interval must not be negative")
	}
	return nil
}

// Environment overrides.
const (
	EnvConfigPath = "RPGINV_CONFIG"
	EnvDBHost     = "RPGINV_DB_HOST"
	EnvDBPassword = "RPGINV_DB_PASSWORD"
	EnvLogLevel   = "RPGINV_LOG_LEVEL"
)

// ApplyEnv overrides secrets and deployment-specific values from the environment.
// Empty variables are ignored.
func (c *Inventory) ApplyEnv(getenv func(string) string) {
	if v := getenv(EnvDBHost); v != "" {
		c.Database.Host = v
	}
	if v := getenv(EnvDBPassword); v != "" {
		c.Database.Password = v
	}
	if v := getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
}

// LoadInventory loads config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadInventory(path string) (Inventory, error) {
	cfg := DefaultInventory()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if len(cfg.Lore.Pattern) == 0 {
		cfg.Lore.Pattern = DefaultLorePattern()
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("validating config %s: %w", path, err)
	}

	return cfg, nil
}
