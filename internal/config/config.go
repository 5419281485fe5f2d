// Package config provides centralized configuration management using Viper.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const appName = "contacto"

// Config holds all configuration values for contacto.
type Config struct {
	DataDir      string `mapstructure:"data_dir" yaml:"data_dir"`
	LogLevel     string `mapstructure:"log_level" yaml:"log_level"`
	LogFile      string `mapstructure:"log_file" yaml:"log_file"`
	ContactEmail string `mapstructure:"contact_email" yaml:"contact_email"`
	ContactPhone string `mapstructure:"contact_phone" yaml:"contact_phone"`
	ToastSeconds int    `mapstructure:"toast_seconds" yaml:"toast_seconds"`
	ExportDir    string `mapstructure:"export_dir" yaml:"export_dir"`
	Persist      bool   `mapstructure:"persist" yaml:"persist"`
}

// defaults is the single source for default values, used by Load and Default.
var defaults = map[string]any{
	"data_dir":      ".contacto",
	"log_level":     "info",
	"log_file":      "",
	"contact_email": "hola@gcloud.com.gt",
	"contact_phone": "+502 XXXX XXXX",
	"toast_seconds": 3,
	"export_dir":    "",
	"persist":       true,
}

// Default returns a Config populated with default values only.
func Default() *Config {
	return &Config{
		DataDir:      defaults["data_dir"].(string),
		LogLevel:     defaults["log_level"].(string),
		LogFile:      defaults["log_file"].(string),
		ContactEmail: defaults["contact_email"].(string),
		ContactPhone: defaults["contact_phone"].(string),
		ToastSeconds: defaults["toast_seconds"].(int),
		ExportDir:    defaults["export_dir"].(string),
		Persist:      defaults["persist"].(bool),
	}
}

// Load loads configuration with full precedence:
// CLI flags > ENV vars > project config > XDG global config > defaults
//
// CLI flags are applied by the caller on the returned value.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigName(appName)

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	// Setup ENV binding with CONTACTO_ prefix
	v.SetEnvPrefix("CONTACTO")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Explicit bindings so bool/int values parse from env even when no file
	// mentions the key.
	for key := range defaults {
		if err := v.BindEnv(key, "CONTACTO_"+strings.ToUpper(key)); err != nil {
			return nil, fmt.Errorf("binding %s env: %w", key, err)
		}
	}

	globalPath := GlobalPath()
	if fileExists(globalPath) {
		v.SetConfigFile(globalPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading global config: %w", err)
		}
	}

	// Project config merges on top of global
	projectPath := ProjectPath()
	if fileExists(projectPath) {
		v.SetConfigFile(projectPath)
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("merging project config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values that would otherwise fail later in confusing ways.
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("data_dir must not be empty")
	}
	if c.ToastSeconds <= 0 {
		return fmt.Errorf("toast_seconds must be positive, got %d", c.ToastSeconds)
	}
	return nil
}

// Exists returns true if any config file exists (global or project).
func Exists() bool {
	return fileExists(GlobalPath()) || fileExists(ProjectPath())
}

// GlobalPath returns the XDG global config path.
// Returns ~/.config/contacto/contacto.yml or $XDG_CONFIG_HOME/contacto/contacto.yml.
func GlobalPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName, appName+".yml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", appName, appName+".yml")
}

// ProjectPath returns the project-local config path, ./contacto.yml.
func ProjectPath() string {
	return appName + ".yml"
}

// WriteGlobal writes the config to the XDG global location.
func WriteGlobal(cfg *Config) error {
	path := GlobalPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	return write(path, cfg)
}

// WriteProject writes the config to the project-local location.
func WriteProject(cfg *Config) error {
	return write(ProjectPath(), cfg)
}

func write(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// fileExists checks if a file exists.
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
