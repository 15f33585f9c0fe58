/*
Package config manages the TOML config for acfield.
*/
package config

import (
	"os"
	"path/filepath"

	"github.com/bastiangx/acfield/internal/utils"
	"github.com/bastiangx/acfield/pkg/autocomplete"
	"github.com/bastiangx/acfield/pkg/geometry"
	"github.com/charmbracelet/log"
)

// Config holds the entire config structure
type Config struct {
	Engine EngineConfig    `toml:"engine"`
	Layout geometry.Layout `toml:"layout"`
	Vocab  VocabConfig     `toml:"vocab"`
}

// EngineConfig has the match mode and popup options.
type EngineConfig struct {
	MatchAtStart  bool `toml:"match_at_start"`
	AddOption     bool `toml:"add_option"`
	CaseSensitive bool `toml:"case_sensitive"`
	Overflow      bool `toml:"overflow"`
}

// VocabConfig holds the candidate source.
type VocabConfig struct {
	Path  string   `toml:"path"`
	Words []string `toml:"words"`
	Save  bool     `toml:"save_on_exit"`
}

// DefaultWords seeds the vocabulary when no other source is configured.
var DefaultWords = []string{
	"cat", "Cow", "dog", "rat", "Raccoon", "pig",
	"tiger", "elephant", "ant", "horse", "Anteater", "giraffe",
}

// GetConfigDir returns the config directory shared with vocabulary lookup.
// See utils.ConfigDir for the search order.
func GetConfigDir() (string, error) {
	return utils.ConfigDir()
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
// 2. Default path: [UserConfigDir]/acfield/config.toml
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
		Engine: EngineConfig{
			MatchAtStart:  false,
			AddOption:     false,
			CaseSensitive: false,
			Overflow:      true,
		},
		Layout: geometry.DefaultLayout(),
		Vocab: VocabConfig{
			Words: append([]string(nil), DefaultWords...),
		},
	}
}

// Autocomplete converts the config into controller settings.
func (c *Config) Autocomplete() autocomplete.Config {
	return autocomplete.Config{
		MatchAtStart:  c.Engine.MatchAtStart,
		AddOption:     c.Engine.AddOption,
		CaseSensitive: c.Engine.CaseSensitive,
		Overflow:      c.Engine.Overflow,
		Layout:        c.Layout,
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

// tryPartialParse keeps every well-typed key of a file that failed to
// decode as a whole.
func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	tempConfig, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config, nil
	}

	if section, ok := utils.ExtractSection(tempConfig, "engine"); ok {
		extractEngineConfig(section, &config.Engine)
	}
	if section, ok := utils.ExtractSection(tempConfig, "layout"); ok {
		extractLayoutConfig(section, &config.Layout)
	}
	if section, ok := utils.ExtractSection(tempConfig, "vocab"); ok {
		extractVocabConfig(section, &config.Vocab)
	}
	return config, nil
}

func extractEngineConfig(data map[string]any, engine *EngineConfig) {
	if val, ok := utils.ExtractBool(data, "match_at_start"); ok {
		engine.MatchAtStart = val
	}
	if val, ok := utils.ExtractBool(data, "add_option"); ok {
		engine.AddOption = val
	}
	if val, ok := utils.ExtractBool(data, "case_sensitive"); ok {
		engine.CaseSensitive = val
	}
	if val, ok := utils.ExtractBool(data, "overflow"); ok {
		engine.Overflow = val
	}
}

func extractLayoutConfig(data map[string]any, layout *geometry.Layout) {
	if val, ok := utils.ExtractInt64(data, "max_visible"); ok && val > 0 {
		layout.MaxVisible = val
	}
	if val, ok := utils.ExtractFloat(data, "padding"); ok {
		layout.Padding = val
	}
	if val, ok := utils.ExtractFloat(data, "add_padding"); ok {
		layout.AddPadding = val
	}
	if val, ok := utils.ExtractFloat(data, "match_rows_slack"); ok {
		layout.MatchRowsSlack = val
	}
	if val, ok := utils.ExtractFloat(data, "add_rows"); ok {
		layout.AddRows = val
	}
}

func extractVocabConfig(data map[string]any, vocab *VocabConfig) {
	if val, ok := utils.ExtractString(data, "path"); ok {
		vocab.Path = val
	}
	if val, ok := utils.ExtractStrings(data, "words"); ok {
		vocab.Words = val
	}
	if val, ok := utils.ExtractBool(data, "save_on_exit"); ok {
		vocab.Save = val
	}
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}
