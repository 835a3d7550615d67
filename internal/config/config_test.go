package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/kanacards/internal/kana"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	sel, err := cfg.Selection()
	require.NoError(t, err)
	assert.Equal(t, kana.DefaultSelection().Groups(), sel.Groups())
	assert.Equal(t, 700*time.Millisecond, cfg.SettleDelay())
}

func TestLoad_EmptyPath(t *testing.T) {
	_, err := Load("")
	require.Error(t, err)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[study]
groups = ["Vowels", "K", "G"]
scripts = ["hiragana", "katakana"]
mode = "romaji-first"

[enrichment]
enabled = false
temperature = 0.2

[log]
level = "debug"
file = "-"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	sel, err := cfg.Selection()
	require.NoError(t, err)
	assert.Equal(t, []string{"Vowels", "K", "G"}, sel.Groups())
	assert.True(t, sel.HasScript(kana.Katakana))
	assert.Equal(t, kana.RomajiFirst, sel.Mode())

	assert.False(t, cfg.Enrichment.Enabled)
	ec := cfg.EnrichConfig()
	assert.Equal(t, 0.2, ec.Temperature)
	assert.Equal(t, Default().Enrichment.MaxTokens, ec.MaxTokens)
	assert.Equal(t, 20*time.Second, ec.Timeout)

	// Unset study fields keep their defaults.
	assert.Equal(t, 700, cfg.Study.SettleDelayMs)
	assert.Equal(t, "", cfg.LogFile())
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"unknown group", "[study]\ngroups = [\"Q\"]\n"},
		{"unknown script", "[study]\nscripts = [\"kanji\"]\n"},
		{"empty scripts", "[study]\nscripts = []\n"},
		{"bad mode", "[study]\nmode = \"sideways\"\n"},
		{"negative delay", "[study]\nsettle_delay_ms = -5\n"},
		{"temperature too high", "[enrichment]\ntemperature = 1.5\n"},
		{"timeout too short", "[enrichment]\ntimeout_ms = 10\n"},
		{"unknown key", "[study]\nshuffle = true\n"},
		{"malformed", "[study\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			require.Error(t, err)
		})
	}
}

func TestLogFile(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", "/tmp/state")

	cfg := Default()
	assert.Equal(t, filepath.Join("/tmp/state", "kanacards", "kanacards.log"), cfg.LogFile())

	cfg.Log.File = "/var/log/k.log"
	assert.Equal(t, "/var/log/k.log", cfg.LogFile())
}

func TestDefaultConfigPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/cfg")
	assert.Equal(t, filepath.Join("/tmp/cfg", "kanacards", "config.toml"), DefaultConfigPath())
}
