// Package config loads roomctl settings from ~/.roomctl/config.toml with
// environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"

	configDirName  = ".roomctl"
	configFileName = "config.toml"

	configFileMode  = 0o600
	configDirMode   = 0o700
	tempFilePattern = ".config-*.toml.tmp"

	baseURLKey   = "api.base_url"
	tokenPathKey = "token.path"
	passEntryKey = "token.pass_entry"

	envPrefix = "ROOMCTL"

	defaultBaseURL   = "http://localhost:3000"
	defaultPassEntry = "roomctl/token"
)

// Config carries everything the commands need to reach the booking server
// and find the persisted token.
type Config struct {
	BaseURL   string
	TokenPath string
	PassEntry string
	Path      string
}

// Load reads ~/.roomctl/config.toml when present, falling back to defaults
// otherwise. ROOMCTL_API_URL overrides the configured base URL.
func Load(cfg *viper.Viper) (Config, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("resolve home directory: %w", err)
	}

	configDir := filepath.Join(homeDir, configDirName)

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(configDir)
	cfg.SetDefault(baseURLKey, defaultBaseURL)
	cfg.SetDefault(tokenPathKey, filepath.Join(configDir, "token"))
	cfg.SetDefault(passEntryKey, defaultPassEntry)

	cfg.SetEnvPrefix(envPrefix)
	if err := cfg.BindEnv(baseURLKey, "ROOMCTL_API_URL"); err != nil {
		return Config{}, fmt.Errorf("bind api url env: %w", err)
	}

	if err := cfg.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	baseURL := cfg.GetString(baseURLKey)
	if baseURL == "" {
		return Config{}, errors.New("api base url is empty")
	}

	return Config{
		BaseURL:   baseURL,
		TokenPath: cfg.GetString(tokenPathKey),
		PassEntry: cfg.GetString(passEntryKey),
		Path:      filepath.Join(configDir, configFileName),
	}, nil
}

type fileSchema struct {
	API struct {
		BaseURL string `toml:"base_url"`
	} `toml:"api"`
	Token struct {
		Path      string `toml:"path"`
		PassEntry string `toml:"pass_entry"`
	} `toml:"token"`
}

// WriteDefault writes the current settings to the config file so they can
// be edited by hand. The write goes through a temp file and rename.
func WriteDefault(config Config) error {
	var file fileSchema
	file.API.BaseURL = config.BaseURL
	file.Token.Path = config.TokenPath
	file.Token.PassEntry = config.PassEntry

	if err := os.MkdirAll(filepath.Dir(config.Path), configDirMode); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode config file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(config.Path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp config file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp config file: %w", err)
	}

	if err := tempFile.Chmod(configFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp config file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp config file: %w", err)
	}

	if err := os.Rename(tempName, config.Path); err != nil {
		return fmt.Errorf("replace config file: %w", err)
	}

	cleanup = false

	return nil
}
