package parser

import (
	log "github.com/sirupsen/logrus"
)

const (
	// DefaultMaxQueryLength is the default limit on query size in bytes.
	DefaultMaxQueryLength = 64 * 1024
	// DefaultMaxDepth is the default limit on nesting levels. Each
	// parenthesis, function call and NOT opens one level.
	DefaultMaxDepth = 128
)

// Config controls parser limits and diagnostics. Limits of zero or less
// are not enforced.
type Config struct {
	MaxQueryLength int
	MaxDepth       int
	// StrictLiterals rejects integer literals that overflow int64 and
	// datetime literals that cannot be parsed as dates or times.
	StrictLiterals bool
	// Logger receives rule traces and failures at debug level when set.
	Logger *log.Entry
}

// DefaultConfig returns the configuration used when no options are given.
func DefaultConfig() Config {
	return Config{
		MaxQueryLength: DefaultMaxQueryLength,
		MaxDepth:       DefaultMaxDepth,
	}
}

// Option adjusts a Config.
type Option func(*Config)

// WithConfig replaces the whole configuration.
func WithConfig(cfg Config) Option {
	return func(c *Config) { *c = cfg }
}

// WithMaxQueryLength sets the maximum query size in bytes.
func WithMaxQueryLength(n int) Option {
	return func(c *Config) { c.MaxQueryLength = n }
}

// WithMaxDepth sets the maximum nesting depth.
func WithMaxDepth(n int) Option {
	return func(c *Config) { c.MaxDepth = n }
}

// WithStrictLiterals enables literal validation.
func WithStrictLiterals(strict bool) Option {
	return func(c *Config) { c.StrictLiterals = strict }
}

// WithLogger enables debug tracing to logger.
func WithLogger(logger *log.Entry) Option {
	return func(c *Config) { c.Logger = logger }
}
