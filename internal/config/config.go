// Package config loads the server configuration from flags, environment
// variables and an optional config file.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/naka-gawa/devfolio/internal/domain"
	"github.com/naka-gawa/devfolio/internal/gateway"
	"github.com/spf13/viper"
)

const DefaultAddr = ":5000"

type (
	GitHub struct {
		// Username is the account shown when a request names none.
		Username string
		// Token enables live GitHub data. Without it the proxy serves demo data.
		Token string
		// APIURL overrides https://api.github.com/, mostly for tests.
		APIURL string
	}

	GenAI struct {
		// APIKey enables AI explanations in the code analyzer.
		APIKey string
		Model  string
	}
)

type Config struct {
	Addr   string
	GitHub GitHub
	GenAI  GenAI
	// StaticDir, when set, serves static assets from disk instead of the
	// copies embedded in the binary.
	StaticDir string
	Verbose   bool
}

// ProfileURL is the external GitHub page of the configured account.
func (c *Config) ProfileURL() string {
	return "https://github.com/" + c.GitHub.Username
}

var envBindings = map[string]string{
	"port":            "PORT",
	"github.username": "GITHUB_USERNAME",
	"github.token":    "GITHUB_TOKEN",
	"github.api_url":  "GITHUB_API_URL",
	"genai.api_key":   "GEMINI_API_KEY",
	"genai.model":     "GEMINI_MODEL",
	"static_dir":      "STATIC_DIR",
}

// NewViper prepares a viper instance with defaults and environment bindings
// and reads the config file. An explicit configFile must exist; otherwise a
// devfolio.{yaml,toml,json} in the working directory is read if present.
func NewViper(configFile string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault("github.username", domain.FallbackLogin)
	v.SetDefault("genai.model", gateway.DefaultModel)
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("devfolio")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}
	return v, nil
}

// Load reads the configuration out of v. The listen address is taken from
// "addr" if set, else from PORT, else DefaultAddr.
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Addr: v.GetString("addr"),
		GitHub: GitHub{
			Username: strings.TrimSpace(v.GetString("github.username")),
			Token:    strings.TrimSpace(v.GetString("github.token")),
			APIURL:   v.GetString("github.api_url"),
		},
		GenAI: GenAI{
			APIKey: strings.TrimSpace(v.GetString("genai.api_key")),
			Model:  v.GetString("genai.model"),
		},
		StaticDir: v.GetString("static_dir"),
		Verbose:   v.GetBool("verbose"),
	}

	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
		if port := v.GetString("port"); port != "" {
			cfg.Addr = ":" + port
		}
	}
	if cfg.GitHub.Username == "" {
		return nil, errors.New("github.username must not be empty")
	}
	return cfg, nil
}
