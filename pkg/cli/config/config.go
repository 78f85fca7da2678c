package config

import (
	"os"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"
)

// App holds the optional TOML application configuration
type App struct {
	path string
}

// Flags returns CLI flags for application configuration
func (a *App) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "Path to TOML configuration file (optional)",
			Sources:     cli.EnvVars("CHIRON_CONFIG"),
			Destination: &a.path,
		},
	}
}

// Configure loads the application configuration, applying the TOML file on
// top of the defaults when one is given
func (a *App) Configure() (*AppConfig, error) {
	cfg := DefaultAppConfig()

	if a.path != "" {
		data, err := os.ReadFile(a.path)
		if err != nil {
			return nil, goerr.Wrap(ErrConfigNotFound, "failed to read configuration file",
				goerr.V("path", a.path),
			)
		}
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, goerr.Wrap(err, "failed to parse configuration file",
				goerr.V("path", a.path),
			)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, goerr.Wrap(err, "configuration validation failed",
			goerr.V("path", a.path),
		)
	}

	return &cfg, nil
}

// AppConfig represents the application configuration
type AppConfig struct {
	Chat   ChatConfig   `toml:"chat"`
	Answer AnswerConfig `toml:"answer"`
}

// ChatConfig configures the interactive loop
type ChatConfig struct {
	ExitTokens []string `toml:"exit_tokens"`
	Prompt     string   `toml:"prompt"`
	Farewell   string   `toml:"farewell"`
}

// AnswerConfig configures answer texts
type AnswerConfig struct {
	OutOfDomain string `toml:"out_of_domain"`
}

// DefaultAppConfig returns the built-in configuration
func DefaultAppConfig() AppConfig {
	return AppConfig{
		Chat: ChatConfig{
			ExitTokens: []string{"exit", "quit", "q"},
			Prompt:     "Query: ",
			Farewell:   "Goodbye!",
		},
	}
}

// Validate checks if the AppConfig is valid
func (c *AppConfig) Validate() error {
	if len(c.Chat.ExitTokens) == 0 {
		return goerr.Wrap(ErrInvalidConfig, "at least one exit token is required")
	}
	for i, token := range c.Chat.ExitTokens {
		if strings.TrimSpace(token) == "" {
			return goerr.Wrap(ErrInvalidConfig, "exit token cannot be blank", goerr.V("index", i))
		}
	}
	if c.Chat.Prompt == "" {
		return goerr.Wrap(ErrInvalidConfig, "chat prompt is required")
	}
	return nil
}

// IsExitToken reports whether input is a control command terminating the
// interactive loop. Matching is case-insensitive after trimming.
func (c *AppConfig) IsExitToken(input string) bool {
	input = strings.TrimSpace(input)
	for _, token := range c.Chat.ExitTokens {
		if strings.EqualFold(input, token) {
			return true
		}
	}
	return false
}
