package config

import (
	"os"
	"path/filepath"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sqlc-dev/ppl/parser"
)

func noEnv(string) string { return "" }

func TestDefaults(t *testing.T) {
	cfg := Defaults()
	assert.Equal(t, parser.DefaultMaxQueryLength, cfg.Parser.MaxQueryLength)
	assert.Equal(t, parser.DefaultMaxDepth, cfg.Parser.MaxDepth)
	assert.False(t, cfg.Parser.StrictLiterals)
	assert.Equal(t, FormatExplain, cfg.Output.Format)
	assert.NoError(t, Validate(cfg))
}

func TestParse(t *testing.T) {
	data := []byte(`
parser:
  max_depth: 16
  strict_literals: true
output:
  format: json
logging:
  level: debug
`)
	cfg, err := Parse(data, noEnv)
	require.NoError(t, err)
	assert.Equal(t, 16, cfg.Parser.MaxDepth)
	assert.Equal(t, parser.DefaultMaxQueryLength, cfg.Parser.MaxQueryLength)
	assert.True(t, cfg.Parser.StrictLiterals)
	assert.Equal(t, FormatJSON, cfg.Output.Format)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
}

func TestParseInterpolatesEnv(t *testing.T) {
	env := map[string]string{"PPL_DEPTH": "8"}
	getenv := func(k string) string { return env[k] }
	data := []byte("parser:\n  max_depth: ${PPL_DEPTH}\n  max_query_length: ${PPL_LENGTH:-1024}\n")

	cfg, err := Parse(data, getenv)
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Parser.MaxDepth)
	assert.Equal(t, 1024, cfg.Parser.MaxQueryLength)
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"format", "output:\n  format: xml\n"},
		{"level", "logging:\n  level: loud\n"},
		{"logFormat", "logging:\n  format: csv\n"},
		{"yaml", "parser: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data), noEnv)
			assert.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pplparse.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output:\n  format: ppl\n"), 0o644))

	cfg, err := Load(path, noEnv)
	require.NoError(t, err)
	assert.Equal(t, FormatPPL, cfg.Output.Format)

	cfg, err = Load("", func(k string) string {
		if k == "PPL_CONFIG" {
			return path
		}
		return ""
	})
	require.NoError(t, err)
	assert.Equal(t, FormatPPL, cfg.Output.Format)

	_, err = Load(filepath.Join(dir, "missing.yaml"), noEnv)
	assert.Error(t, err)
}

func TestParserOptions(t *testing.T) {
	cfg := Defaults()
	cfg.Parser.MaxDepth = 3
	cfg.Parser.StrictLiterals = true

	got := parser.DefaultConfig()
	for _, opt := range cfg.ParserOptions(nil) {
		opt(&got)
	}
	assert.Equal(t, 3, got.MaxDepth)
	assert.True(t, got.StrictLiterals)
	assert.Nil(t, got.Logger)
}

func TestConfigureLogger(t *testing.T) {
	cfg := Defaults()
	cfg.Logging.Level = "debug"
	cfg.Logging.Format = "json"

	logger := log.New()
	require.NoError(t, cfg.ConfigureLogger(logger))
	assert.Equal(t, log.DebugLevel, logger.GetLevel())
	assert.IsType(t, &log.JSONFormatter{}, logger.Formatter)
}
