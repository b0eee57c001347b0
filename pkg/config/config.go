/*
Package config manages TOML config for teny services.
*/
package config

import (
	"os"
	"path/filepath"

	"github.com/bastiangx/teny/internal/utils"
	"github.com/charmbracelet/log"
)

// Config holds the entire config structure
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Lexicon  LexiconConfig  `toml:"lexicon"`
	Spell    SpellConfig    `toml:"spell"`
	Morph    MorphConfig    `toml:"morph"`
	Complete CompleteConfig `toml:"complete"`
	Quality  QualityConfig  `toml:"quality"`
	HTTP     HTTPConfig     `toml:"http"`
	CLI      CliConfig      `toml:"cli"`
}

// ServerConfig has IPC server options.
type ServerConfig struct {
	MaxLimit int `toml:"max_limit"`
	MaxInput int `toml:"max_input"`
}

// LexiconConfig points at extra lexicon files. Empty Dir means the embedded lexicon only.
type LexiconConfig struct {
	Dir string `toml:"dir"`
}

// SpellConfig holds spell checker options.
type SpellConfig struct {
	MaxDistance  int `toml:"max_distance"`
	DefaultLimit int `toml:"default_limit"`
}

// MorphConfig holds lemmatizer options.
type MorphConfig struct {
	MinRootLength int `toml:"min_root_length"`
}

// CompleteConfig holds predictor and autocomplete options.
type CompleteConfig struct {
	MinInput     int `toml:"min_input"`
	MinPrefix    int `toml:"min_prefix"`
	DefaultLimit int `toml:"default_limit"`
}

// QualityConfig holds document checker options.
type QualityConfig struct {
	MinWordLength    int `toml:"min_word_length"`
	AlternativeLimit int `toml:"alternative_limit"`
}

// HTTPConfig holds the HTTP adapter options.
type HTTPConfig struct {
	Addr           string   `toml:"addr"`
	AllowedOrigins []string `toml:"allowed_origins"`
}

// CliConfig holds cli interface options.
type CliConfig struct {
	DefaultLimit int `toml:"default_limit"`
}

// GetConfigDir returns the config directory with fallback priority:
// 1. ~/.config/
// 2. ~/Library/Application Support/ (macOS)
// 3. Current executable dir
// 4. builtin defaults
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Errorf("Failed to get home directory: %v", err)
		execDir, execErr := utils.GetExecutableDir()
		if execErr != nil {
			return "", execErr
		}
		return execDir, nil
	}
	primaryPath := filepath.Join(homeDir, ".config", "teny")
	if result := utils.CheckDirStatus(primaryPath); result.Writable {
		return primaryPath, nil
	}
	macOSPath := filepath.Join(homeDir, "Library", "Application Support", "teny")
	if result := utils.CheckDirStatus(macOSPath); result.Writable {
		return macOSPath, nil
	}
	execDir, err := utils.GetExecutableDir()
	if err != nil {
		log.Errorf("Failed to get executable directory: %v", err)
		return "", err
	}
	return execDir, nil
}

// GetDefaultConfigPath returns the default path for config.toml
func GetDefaultConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.toml"), nil
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from --config flag
// 2. Default path: [UserConfigDir]/teny/config.toml
// 3. Builtin defaults
func LoadConfigWithPriority(customConfigPath string) (*Config, string, error) {
	if customConfigPath != "" {
		if _, statErr := os.Stat(customConfigPath); statErr == nil {
			config, err := LoadConfig(customConfigPath)
			if err != nil {
				log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customConfigPath, err)
			} else {
				log.Debugf("Loaded config from custom path: %s", customConfigPath)
				return config, customConfigPath, nil
			}
		} else {
			log.Warnf("Custom config file not found at %s: %v. Trying default path...", customConfigPath, statErr)
		}
	}
	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		log.Warnf("Failed to determine default config path: %v. Using built-in defaults...", err)
		return DefaultConfig(), "", nil
	}

	config, err := InitConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load/create config at default path %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), "", nil
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return config, defaultPath, nil
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			MaxLimit: 64,
			MaxInput: 10000,
		},
		Spell: SpellConfig{
			MaxDistance:  2,
			DefaultLimit: 5,
		},
		Morph: MorphConfig{
			MinRootLength: 3,
		},
		Complete: CompleteConfig{
			MinInput:     3,
			MinPrefix:    2,
			DefaultLimit: 5,
		},
		Quality: QualityConfig{
			MinWordLength:    3,
			AlternativeLimit: 3,
		},
		HTTP: HTTPConfig{
			Addr:           ":8080",
			AllowedOrigins: []string{"http://localhost:3000", "http://localhost:5173"},
		},
		CLI: CliConfig{
			DefaultLimit: 5,
		},
	}
}

// InitConfig loads config from file or creates default if missing
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)

	if err := utils.EnsureDir(configDir); err != nil {
		log.Warnf("Failed to create config directory %s: %v. Using built-in defaults...", configDir, err)
		return DefaultConfig(), nil
	}

	if !utils.FileExists(configPath) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return config, nil
	}

	config, err := LoadConfig(configPath)
	if err != nil {
		log.Warnf("Failed to load config from %s: %v. Using built-in defaults...", configPath, err)
		return DefaultConfig(), nil
	}
	return config, nil
}

// LoadConfig loads from a TOML file
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		return tryPartialParse(configPath)
	}
	return config, nil
}

// tryPartialParse keeps every section that still decodes and defaults the rest.
func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	tempConfig, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config, nil
	}

	if section, ok := utils.ExtractSection(tempConfig, "server"); ok {
		extractInts(section, map[string]*int{
			"max_limit": &config.Server.MaxLimit,
			"max_input": &config.Server.MaxInput,
		})
	}
	if section, ok := utils.ExtractSection(tempConfig, "lexicon"); ok {
		if val, ok := utils.ExtractString(section, "dir"); ok {
			config.Lexicon.Dir = val
		}
	}
	if section, ok := utils.ExtractSection(tempConfig, "spell"); ok {
		extractInts(section, map[string]*int{
			"max_distance":  &config.Spell.MaxDistance,
			"default_limit": &config.Spell.DefaultLimit,
		})
	}
	if section, ok := utils.ExtractSection(tempConfig, "morph"); ok {
		extractInts(section, map[string]*int{
			"min_root_length": &config.Morph.MinRootLength,
		})
	}
	if section, ok := utils.ExtractSection(tempConfig, "complete"); ok {
		extractInts(section, map[string]*int{
			"min_input":     &config.Complete.MinInput,
			"min_prefix":    &config.Complete.MinPrefix,
			"default_limit": &config.Complete.DefaultLimit,
		})
	}
	if section, ok := utils.ExtractSection(tempConfig, "quality"); ok {
		extractInts(section, map[string]*int{
			"min_word_length":   &config.Quality.MinWordLength,
			"alternative_limit": &config.Quality.AlternativeLimit,
		})
	}
	if section, ok := utils.ExtractSection(tempConfig, "http"); ok {
		extractHTTPConfig(section, &config.HTTP)
	}
	if section, ok := utils.ExtractSection(tempConfig, "cli"); ok {
		extractInts(section, map[string]*int{
			"default_limit": &config.CLI.DefaultLimit,
		})
	}
	return config, nil
}

// extractInts copies each present integer key into its target.
func extractInts(data map[string]any, targets map[string]*int) {
	for key, dst := range targets {
		if val, ok := utils.ExtractInt64(data, key); ok {
			*dst = val
		}
	}
}

func extractHTTPConfig(data map[string]any, http *HTTPConfig) {
	if val, ok := utils.ExtractString(data, "addr"); ok {
		http.Addr = val
	}
	if val, ok := utils.ExtractStrings(data, "allowed_origins"); ok {
		http.AllowedOrigins = val
	}
}

// RebuildConfigFile force creates a new config.toml at default
func RebuildConfigFile() error {
	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		return err
	}
	configDir := filepath.Dir(defaultPath)
	if err := utils.EnsureDir(configDir); err != nil {
		return err
	}
	return utils.SaveTOMLFile(DefaultConfig(), defaultPath)
}

// GetActiveConfigPath returns the absolute path of loaded config file
func GetActiveConfigPath(configPath string) string {
	if configPath == "" {
		if defaultPath, err := GetDefaultConfigPath(); err == nil {
			return defaultPath
		}
		return "unknown"
	}
	return utils.GetAbsolutePath(configPath)
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}

// Update changes the server limits and saves to file. Nil arguments keep the current value.
func (c *Config) Update(configPath string, maxLimit, maxInput *int, lexiconDir *string) error {
	if maxLimit != nil {
		c.Server.MaxLimit = *maxLimit
	}
	if maxInput != nil {
		c.Server.MaxInput = *maxInput
	}
	if lexiconDir != nil {
		c.Lexicon.Dir = *lexiconDir
	}
	return SaveConfig(c, configPath)
}
