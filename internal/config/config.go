// Package config loads gitaid settings from YAML, git config and command line
// overrides, in that order of precedence (last wins).
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/chmouel/gitaid/internal/models"
	"github.com/chmouel/gitaid/internal/theme"
	"gopkg.in/yaml.v3"
)

// Colour modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// AppConfig holds the settings shared by both helpers.
type AppConfig struct {
	DebugLog        string
	Color           string // auto, always or never
	Theme           string // see theme.AvailableThemes
	DefaultRevision string // merge commit inspected by git-merge-result without argument
	Verbose         bool   // list every provenance category
	UTC             bool   // pass commit dates to git in UTC
	ShowIcons       bool   // file icons in the interactive browser
}

// DefaultConfig returns the default configuration values.
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Color:           ColorAuto,
		Theme:           theme.DefaultDark(),
		DefaultRevision: models.DefaultRevision,
		ShowIcons:       true,
	}
}

func coerceBool(value any, defaultVal bool) bool {
	if value == nil {
		return defaultVal
	}

	switch v := value.(type) {
	case bool:
		return v
	case int:
		return v != 0
	case string:
		text := strings.ToLower(strings.TrimSpace(v))
		switch text {
		case "1", "true", "yes", "y", "on":
			return true
		case "0", "false", "no", "n", "off":
			return false
		}
	}
	return defaultVal
}

// lastString returns the value of a key that may have been given several
// times, keeping the last one like git does.
func lastString(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return strings.TrimSpace(v), true
	case []any:
		if len(v) == 0 {
			return "", false
		}
		return lastString(v[len(v)-1])
	}
	return "", false
}

func lastValue(value any) any {
	if list, ok := value.([]any); ok && len(list) > 0 {
		return list[len(list)-1]
	}
	return value
}

// NormalizeColor returns the canonical colour mode, or "" when unknown.
func NormalizeColor(mode string) string {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case ColorAuto, "":
		return ColorAuto
	case ColorAlways, "true", "on":
		return ColorAlways
	case ColorNever, "false", "off":
		return ColorNever
	}
	return ""
}

// apply overlays the keys present in data onto cfg. Unknown keys and invalid
// values are ignored.
func (cfg *AppConfig) apply(data map[string]any) {
	if debugLog, ok := lastString(data["debug_log"]); ok && debugLog != "" {
		cfg.DebugLog = debugLog
	}
	if color, ok := lastString(data["color"]); ok {
		if normalized := NormalizeColor(color); normalized != "" {
			cfg.Color = normalized
		}
	}
	if themeName, ok := lastString(data["theme"]); ok {
		if normalized := NormalizeThemeName(themeName); normalized != "" {
			cfg.Theme = normalized
		}
	}
	if rev, ok := lastString(data["default_revision"]); ok && rev != "" {
		cfg.DefaultRevision = rev
	}
	cfg.Verbose = coerceBool(lastValue(data["verbose"]), cfg.Verbose)
	cfg.UTC = coerceBool(lastValue(data["utc"]), cfg.UTC)
	cfg.ShowIcons = coerceBool(lastValue(data["show_icons"]), cfg.ShowIcons)
}

func parseConfig(data map[string]any) *AppConfig {
	cfg := DefaultConfig()
	cfg.apply(data)
	return cfg
}

func getConfigDir() string {
	if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
		return xdgConfigHome
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config")
}

// LoadConfig reads the YAML configuration. An explicit path must exist;
// otherwise config.yaml or config.yml under $XDG_CONFIG_HOME/gitaid is used
// when present.
func LoadConfig(configPath string) (*AppConfig, error) {
	var paths []string
	if configPath != "" {
		expanded, err := ExpandPath(configPath)
		if err != nil {
			return DefaultConfig(), err
		}
		if _, err := os.Stat(expanded); err != nil {
			return DefaultConfig(), fmt.Errorf("config file: %w", err)
		}
		paths = []string{expanded}
	} else {
		base := filepath.Join(getConfigDir(), "gitaid")
		paths = []string{
			filepath.Join(base, "config.yaml"),
			filepath.Join(base, "config.yml"),
		}
	}

	for _, path := range paths {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}

		// #nosec G304 -- path is either the user supplied config file or the XDG default
		data, err := os.ReadFile(path)
		if err != nil {
			return DefaultConfig(), fmt.Errorf("failed to read %s: %w", path, err)
		}

		var yamlData map[string]any
		if err := yaml.Unmarshal(data, &yamlData); err != nil {
			return DefaultConfig(), fmt.Errorf("failed to parse %s: %w", path, err)
		}
		return parseConfig(yamlData), nil
	}

	return DefaultConfig(), nil
}

// Load builds the effective configuration: YAML file, then global and
// repository git config, then command line overrides.
func Load(configPath, repoPath string, overrides []string) (*AppConfig, error) {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	if global, err := loadGitConfig(true, ""); err == nil {
		cfg.apply(global)
	}
	if repo := determineRepoPath(repoPath); repo != "" {
		if local, err := loadGitConfig(false, repo); err == nil {
			cfg.apply(local)
		}
	}

	if len(overrides) > 0 {
		if err := cfg.ApplyCLIOverrides(overrides); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// ApplyCLIOverrides applies --config=gitaid.key=value settings.
func (cfg *AppConfig) ApplyCLIOverrides(overrides []string) error {
	data, err := parseCLIConfigOverrides(overrides)
	if err != nil {
		return err
	}
	cfg.apply(data)
	return nil
}

// ExpandPath expands a leading ~ and environment variables in path.
func ExpandPath(path string) (string, error) {
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		path = filepath.Join(home, path[1:])
	}
	return os.ExpandEnv(path), nil
}

// NormalizeThemeName returns the canonical theme name if it is supported.
func NormalizeThemeName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, known := range theme.AvailableThemes() {
		if name == known {
			return name
		}
	}
	return ""
}
