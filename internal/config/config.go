// Package config provides loading and parsing of the phonebook configuration
// file using Viper. It defines the configuration schema, its defaults and the
// PHONEBOOK_* environment overrides.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mfulz/phonebook/internal/configloader"
	"github.com/mfulz/phonebook/internal/logging"
	"github.com/spf13/viper"
)

// FileName is the config file searched for by ResolveConfigPath.
const FileName = "phonebook.yaml"

// EnvPrefix prefixes environment overrides, e.g. PHONEBOOK_LOG_LEVEL.
const EnvPrefix = "PHONEBOOK"

// Config represents the full structure of the phonebook configuration file.
type Config struct {
	Logger   logging.Config `mapstructure:"log" yaml:"log"`
	Session  SessionConfig  `mapstructure:"session" yaml:"session"`
	Contacts ContactsConfig `mapstructure:"contacts" yaml:"contacts"`
}

// SessionConfig controls the interactive chat.
type SessionConfig struct {
	Prompt      string `mapstructure:"prompt" yaml:"prompt"`
	HistoryFile string `mapstructure:"history_file" yaml:"history_file"` // empty disables history
	Greeting    string `mapstructure:"greeting" yaml:"greeting"`         // printed once when chat starts
}

// ContactsConfig controls contact book semantics.
type ContactsConfig struct {
	StrictAdd bool `mapstructure:"strict_add" yaml:"strict_add"` // reject add for existing names
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	def := logging.DefaultConfig()
	v.SetDefault("log.level", def.Level)
	v.SetDefault("log.to_stdout", def.ToStdout)
	v.SetDefault("log.to_stderr", def.ToStderr)
	v.SetDefault("log.to_file", false)
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size", 10)
	v.SetDefault("log.max_age", 28)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.compress", false)

	v.SetDefault("session.prompt", "Enter a command: ")
	v.SetDefault("session.history_file", "")
	v.SetDefault("session.greeting", "Welcome to the assistant bot!")

	v.SetDefault("contacts.strict_add", false)
}

// Load reads the configuration into a typed struct. An explicit path must
// exist; without one the file is located via configloader.ResolveConfigPath
// and defaults are used when none is found.
func Load(v *viper.Viper, path string) (*Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path == "" {
		resolved, err := configloader.ResolveConfigPath(FileName)
		if err != nil && !errors.Is(err, configloader.ErrNoConfig) {
			return nil, err
		}
		path = resolved
	}

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error loading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config unmarshal failed: %w", err)
	}
	return &cfg, nil
}
