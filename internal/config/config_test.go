package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noGitConfig(t *testing.T) {
	t.Helper()
	gitConfigMock = func([]string, string) (string, error) { return "", nil }
	t.Cleanup(func() { gitConfigMock = nil })
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, ColorAuto, cfg.Color)
	assert.Equal(t, "dracula", cfg.Theme)
	assert.Equal(t, "@", cfg.DefaultRevision)
	assert.True(t, cfg.ShowIcons)
	assert.False(t, cfg.Verbose)
	assert.False(t, cfg.UTC)
	assert.Empty(t, cfg.DebugLog)
}

func TestParseConfig(t *testing.T) {
	tests := []struct {
		name   string
		data   map[string]any
		verify func(t *testing.T, cfg *AppConfig)
	}{
		{
			name: "all keys",
			data: map[string]any{
				"debug_log":        " /tmp/gitaid.log ",
				"color":            "Always",
				"theme":            "NORD",
				"default_revision": "HEAD~1",
				"verbose":          true,
				"utc":              "yes",
				"show_icons":       false,
			},
			verify: func(t *testing.T, cfg *AppConfig) {
				assert.Equal(t, "/tmp/gitaid.log", cfg.DebugLog)
				assert.Equal(t, ColorAlways, cfg.Color)
				assert.Equal(t, "nord", cfg.Theme)
				assert.Equal(t, "HEAD~1", cfg.DefaultRevision)
				assert.True(t, cfg.Verbose)
				assert.True(t, cfg.UTC)
				assert.False(t, cfg.ShowIcons)
			},
		},
		{
			name: "invalid values keep defaults",
			data: map[string]any{
				"color":            "sometimes",
				"theme":            "unknown",
				"default_revision": "   ",
				"verbose":          "maybe",
			},
			verify: func(t *testing.T, cfg *AppConfig) {
				assert.Equal(t, ColorAuto, cfg.Color)
				assert.Equal(t, "dracula", cfg.Theme)
				assert.Equal(t, "@", cfg.DefaultRevision)
				assert.False(t, cfg.Verbose)
			},
		},
		{
			name: "multi-value keeps last",
			data: map[string]any{
				"color":   []any{"never", "always"},
				"verbose": []any{"true", "false"},
			},
			verify: func(t *testing.T, cfg *AppConfig) {
				assert.Equal(t, ColorAlways, cfg.Color)
				assert.False(t, cfg.Verbose)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.verify(t, parseConfig(tt.data))
		})
	}
}

func TestNormalizeColor(t *testing.T) {
	assert.Equal(t, ColorAuto, NormalizeColor(""))
	assert.Equal(t, ColorAlways, NormalizeColor("ON"))
	assert.Equal(t, ColorNever, NormalizeColor("false"))
	assert.Empty(t, NormalizeColor("rainbow"))
}

func TestLoadConfigFromXDG(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	require.NoError(t, os.MkdirAll(filepath.Join(xdg, "gitaid"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(xdg, "gitaid", "config.yml"),
		[]byte("color: never\nverbose: true\n"), 0o600))

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, ColorNever, cfg.Color)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfigMissingDefaultIsFine(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigExplicitPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("theme: monokai\n"), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "monokai", cfg.Theme)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("color: [unclosed\n"), 0o600))

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "failed to parse"))
}

func TestLoadLayering(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("color: never\ntheme: nord\nutc: true\n"), 0o600))

	gitConfigMock = func(args []string, _ string) (string, error) {
		for _, a := range args {
			if a == "--global" {
				return "gitaid.color always\ngitaid.default_revision main\n", nil
			}
		}
		return "", nil
	}
	t.Cleanup(func() { gitConfigMock = nil })

	cfg, err := Load(path, t.TempDir(), []string{"gitaid.default_revision=topic", "gitaid.verbose=1"})
	require.NoError(t, err)

	assert.Equal(t, "nord", cfg.Theme)
	assert.True(t, cfg.UTC)
	assert.Equal(t, ColorAlways, cfg.Color)
	assert.Equal(t, "topic", cfg.DefaultRevision)
	assert.True(t, cfg.Verbose)
}

func TestLoadRejectsBadOverride(t *testing.T) {
	noGitConfig(t)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	_, err := Load("", "", []string{"color=always"})
	require.Error(t, err)
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	got, err := ExpandPath("~/gitaid.yaml")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "gitaid.yaml"), got)

	t.Setenv("GITAID_TEST_DIR", "/opt/conf")
	got, err = ExpandPath("$GITAID_TEST_DIR/c.yaml")
	require.NoError(t, err)
	assert.Equal(t, "/opt/conf/c.yaml", got)
}

func TestNormalizeThemeName(t *testing.T) {
	assert.Equal(t, "solarized-dark", NormalizeThemeName(" Solarized-Dark "))
	assert.Empty(t, NormalizeThemeName("neon"))
}
