// Copyright 2026 The Buzzhook Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// Default values applied when neither the config file nor the environment
// provides one.
const (
	DefaultListen       = ":45678"
	DefaultContextLabel = "buzzhook/banned-buzzwords"
	DefaultLogLevel     = "info"
)

// DefaultActions are the pull_request actions that trigger a check run.
var DefaultActions = []string{"opened", "synchronize"}

// DefaultBannedPatterns match word variants of the banned-term list. They
// are compiled case-insensitively into a single pattern by Pattern().
var DefaultBannedPatterns = []string{
	`utili[sz]e`,
	`synerg(?:y|i[sz]e)`,
	`growth hack(?:er|ing)?`,
	`leverag(?:e|ing)`,
}

// Config holds all process-lifetime settings. It is read-only after Load;
// nothing mutates it and no component holds a writable reference.
type Config struct {
	Listen   string       `yaml:"listen"`
	LogLevel string       `yaml:"log_level"`
	GitHub   GitHubConfig `yaml:"github"`
	Check    CheckConfig  `yaml:"check"`

	// SecretGenerated is true when the webhook secret was created at
	// startup instead of supplied. The serve command prints the secret in
	// that case so it can be pasted into the hook registration.
	SecretGenerated bool `yaml:"-"`
}

// GitHubConfig carries the API credentials and the shared webhook secret.
// The same secret must be used when registering the hook and when
// verifying deliveries.
type GitHubConfig struct {
	Token         string `yaml:"token"`
	WebhookSecret string `yaml:"webhook_secret"`
}

// CheckConfig configures the commit-message check.
type CheckConfig struct {
	ContextLabel   string   `yaml:"context"`
	Actions        []string `yaml:"actions"`
	BannedPatterns []string `yaml:"banned_patterns"`
}

// Load reads configuration from an optional YAML file, then lets
// environment variables (GITHUB_TOKEN, WEBHOOK_SECRET, BUZZHOOK_LISTEN)
// override, then fills defaults. A missing webhook secret is generated
// from crypto/rand.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	if v := os.Getenv("GITHUB_TOKEN"); v != "" {
		cfg.GitHub.Token = strings.TrimSpace(v)
	}
	if v := os.Getenv("WEBHOOK_SECRET"); v != "" {
		cfg.GitHub.WebhookSecret = strings.TrimSpace(v)
	}
	if v := os.Getenv("BUZZHOOK_LISTEN"); v != "" {
		cfg.Listen = v
	}

	applyDefaults(cfg)

	if cfg.GitHub.WebhookSecret == "" {
		secret, err := generateSecret()
		if err != nil {
			return nil, fmt.Errorf("generate webhook secret: %w", err)
		}
		cfg.GitHub.WebhookSecret = secret
		cfg.SecretGenerated = true
	}

	if _, err := cfg.Pattern(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Listen == "" {
		cfg.Listen = DefaultListen
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	if cfg.Check.ContextLabel == "" {
		cfg.Check.ContextLabel = DefaultContextLabel
	}
	if len(cfg.Check.Actions) == 0 {
		cfg.Check.Actions = append([]string(nil), DefaultActions...)
	}
	if len(cfg.Check.BannedPatterns) == 0 {
		cfg.Check.BannedPatterns = append([]string(nil), DefaultBannedPatterns...)
	}
}

// Pattern compiles the banned-term patterns into one case-insensitive
// regular expression.
func (c *Config) Pattern() (*regexp.Regexp, error) {
	expr := "(?i)" + strings.Join(c.Check.BannedPatterns, "|")
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("compile banned patterns: %w", err)
	}
	return re, nil
}

// RequireToken returns an error when no GitHub token is configured. The
// serve, hook and repos commands all need one; verification alone does not.
func (c *Config) RequireToken() error {
	if c.GitHub.Token == "" {
		return fmt.Errorf("missing GitHub token: set GITHUB_TOKEN or github.token in the config file")
	}
	return nil
}

// generateSecret returns 32 random bytes, hex encoded, matching the
// original registration flow so a fresh process can still register hooks.
func generateSecret() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
