package schemaguard

import (
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zero-day-ai/schemaguard/kind"
)

func TestParseConfig(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		want    *Config
		wantErr bool
	}{
		{
			name: "full",
			data: "classification: loose\nmax_depth: 16\nlog_level: warn\n",
			want: &Config{Classification: "loose", MaxDepth: 16, LogLevel: "warn"},
		},
		{name: "empty", data: "", want: &Config{}},
		{name: "unknown classification", data: "classification: fuzzy\n", wantErr: true},
		{name: "negative depth", data: "max_depth: -1\n", wantErr: true},
		{name: "bad log level", data: "log_level: loud\n", wantErr: true},
		{name: "malformed yaml", data: "max_depth: [\n", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseConfig([]byte(tt.data))
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidConfig))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schemaguard.yaml")
	require.NoError(t, os.WriteFile(path, []byte("classification: strict\n"), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, kind.ClassificationStrict, cfg.Classification)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	var e *Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, KindConfiguration, e.Kind)
	assert.Equal(t, "LoadConfig", e.Op)
}

func TestConfigGetters(t *testing.T) {
	t.Run("nil config", func(t *testing.T) {
		var cfg *Config
		assert.Equal(t, kind.Strict, cfg.GetClassifier())
		assert.Equal(t, DefaultMaxDepth, cfg.GetMaxDepth())
		_, enabled := cfg.GetLogLevel()
		assert.False(t, enabled)
	})

	t.Run("populated config", func(t *testing.T) {
		cfg := &Config{Classification: "loose", MaxDepth: 5, LogLevel: "debug"}
		assert.Equal(t, kind.Loose, cfg.GetClassifier())
		assert.Equal(t, 5, cfg.GetMaxDepth())
		level, enabled := cfg.GetLogLevel()
		assert.True(t, enabled)
		assert.Equal(t, slog.LevelDebug, level)
	})
}

func TestDecodeJSON(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		want    any
		wantErr bool
	}{
		{name: "integer stays a number literal", data: `7`, want: json.Number("7")},
		{name: "nested", data: `{"a": [1, "b", null]}`, want: map[string]any{"a": []any{json.Number("1"), "b", nil}}},
		{name: "null", data: `null`, want: nil},
		{name: "trailing data", data: `1 2`, wantErr: true},
		{name: "empty", data: ``, wantErr: true},
		{name: "malformed", data: `{"a":`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeJSON([]byte(tt.data))
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrDecode))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeYAML(t *testing.T) {
	got, err := DecodeYAML([]byte("count: 3\nratio: 0.5\ntags: [a, b]\n"))
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"count": 3, "ratio": 0.5, "tags": []any{"a", "b"}}, got)

	_, err = DecodeYAML([]byte("a: [\n"))
	assert.True(t, errors.Is(err, ErrDecode))
}
