// Package config loads pplparse settings from YAML.
package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/sqlc-dev/ppl/parser"
)

// Output formats understood by pplparse.
const (
	FormatExplain    = "explain"
	FormatJSON       = "json"
	FormatPPL        = "ppl"
	FormatNormalized = "normalized"
	FormatTokens     = "tokens"
)

// Config is the root configuration.
type Config struct {
	Parser  ParserConfig  `yaml:"parser"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// ParserConfig holds parser limits.
type ParserConfig struct {
	MaxQueryLength int  `yaml:"max_query_length"`
	MaxDepth       int  `yaml:"max_depth"`
	StrictLiterals bool `yaml:"strict_literals"`
}

// OutputConfig controls how parsed queries are printed.
type OutputConfig struct {
	Format string `yaml:"format"`
}

// LoggingConfig controls logrus.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // panic, fatal, error, warn, info, debug, trace
	Format string `yaml:"format"` // text or json
}

// Defaults returns the configuration used when no file is found.
func Defaults() *Config {
	return &Config{
		Parser: ParserConfig{
			MaxQueryLength: parser.DefaultMaxQueryLength,
			MaxDepth:       parser.DefaultMaxDepth,
		},
		Output: OutputConfig{
			Format: FormatExplain,
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

// Load reads configuration with ENV interpolation. When configPath is
// empty, PPL_CONFIG and then ./pplparse.yaml are tried; if neither exists
// the defaults are returned.
func Load(configPath string, getenv func(string) string) (*Config, error) {
	path, err := resolveConfigPath(configPath, getenv)
	if err != nil {
		return nil, err
	}
	if path == "" {
		return Defaults(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(data, getenv)
}

// Parse decodes YAML configuration data over the defaults.
func Parse(data []byte, getenv func(string) string) (*Config, error) {
	data = interpolateEnv(data, getenv)

	cfg := Defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for errors.
func Validate(cfg *Config) error {
	var errs []string
	switch cfg.Output.Format {
	case FormatExplain, FormatJSON, FormatPPL, FormatNormalized, FormatTokens:
	default:
		errs = append(errs, fmt.Sprintf("output.format: unknown format %q", cfg.Output.Format))
	}
	if _, err := log.ParseLevel(cfg.Logging.Level); err != nil {
		errs = append(errs, fmt.Sprintf("logging.level: %v", err))
	}
	switch cfg.Logging.Format {
	case "text", "json":
	default:
		errs = append(errs, fmt.Sprintf("logging.format: unknown format %q", cfg.Logging.Format))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

// ParserOptions returns the parser options described by the configuration.
// logger may be nil to disable tracing.
func (c *Config) ParserOptions(logger *log.Entry) []parser.Option {
	return []parser.Option{
		parser.WithMaxQueryLength(c.Parser.MaxQueryLength),
		parser.WithMaxDepth(c.Parser.MaxDepth),
		parser.WithStrictLiterals(c.Parser.StrictLiterals),
		parser.WithLogger(logger),
	}
}

// ConfigureLogger applies the logging settings to logger.
func (c *Config) ConfigureLogger(logger *log.Logger) error {
	level, err := log.ParseLevel(c.Logging.Level)
	if err != nil {
		return err
	}
	logger.SetLevel(level)
	if c.Logging.Format == "json" {
		logger.SetFormatter(&log.JSONFormatter{})
	} else {
		logger.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	}
	return nil
}

// resolveConfigPath finds the config file to use.
// Search order: explicit path > PPL_CONFIG env > ./pplparse.yaml.
func resolveConfigPath(explicit string, getenv func(string) string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("config file not found: %s", explicit)
		}
		return explicit, nil
	}

	if envPath := getenv("PPL_CONFIG"); envPath != "" {
		if _, err := os.Stat(envPath); err != nil {
			return "", fmt.Errorf("PPL_CONFIG file not found: %s", envPath)
		}
		return envPath, nil
	}

	if _, err := os.Stat("pplparse.yaml"); err == nil {
		return "pplparse.yaml", nil
	}
	return "", nil
}

// envPattern matches ${VAR} or ${VAR:-default}
var envPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

// interpolateEnv replaces ${VAR} and ${VAR:-default} patterns with environment values.
func interpolateEnv(data []byte, getenv func(string) string) []byte {
	return envPattern.ReplaceAllFunc(data, func(match []byte) []byte {
		parts := envPattern.FindSubmatch(match)
		if len(parts) < 2 {
			return match
		}

		value := getenv(string(parts[1]))
		if value == "" && len(parts) >= 3 && len(parts[2]) > 0 {
			value = string(parts[2])
		}
		return []byte(value)
	})
}
