package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, for example
// ANAGRAMS_DICTIONARY_PATH.
const EnvPrefix = "ANAGRAMS"

// Config holds all configuration for the anagrams command
type Config struct {
	Dictionary DictionaryConfig `mapstructure:"dictionary"`
	Log        LogConfig        `mapstructure:"log"`
	Output     OutputConfig     `mapstructure:"output"`
}

// DictionaryConfig holds word list related configuration
type DictionaryConfig struct {
	Path      string `mapstructure:"path"`
	Normalise bool   `mapstructure:"normalise"`
}

// LogConfig holds logging related configuration
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// OutputConfig holds result related configuration
type OutputConfig struct {
	MinLength int `mapstructure:"min_length"`
}

// Load loads configuration from file and environment variables. An empty
// configPath uses defaults and the environment only.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("dictionary.path", "./words_alpha.txt")
	v.SetDefault("dictionary.normalise", true)
	v.SetDefault("log.level", "info")
	v.SetDefault("output.min_length", 1)
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Dictionary.Path == "" {
		return errors.New("dictionary path cannot be empty")
	}
	if _, err := c.Log.ZerologLevel(); err != nil {
		return err
	}
	if c.Output.MinLength < 1 {
		return fmt.Errorf("invalid output min length: %d", c.Output.MinLength)
	}
	return nil
}

// ZerologLevel parses the configured level name.
func (c LogConfig) ZerologLevel() (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(c.Level))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q: %w", c.Level, err)
	}
	return level, nil
}

// Path returns the first anagrams.yaml found in the working directory,
// ./configs or $HOME/.config/anagrams, or "" when there is none.
func Path() string {
	const name = "anagrams.yaml"

	dirs := []string{".", "./configs"}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".config", "anagrams"))
	}

	for _, dir := range dirs {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}
