package config

import (
	"errors"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGitConfigOutput(t *testing.T) {
	tests := []struct {
		name     string
		output   string
		expected map[string][]string
	}{
		{
			name: "single values",
			output: `gitaid.color always
gitaid.utc true
gitaid.theme nord`,
			expected: map[string][]string{
				"color": {"always"},
				"utc":   {"true"},
				"theme": {"nord"},
			},
		},
		{
			name: "multi-value keys",
			output: `gitaid.color never
gitaid.color always`,
			expected: map[string][]string{
				"color": {"never", "always"},
			},
		},
		{
			name:   "values with spaces",
			output: `gitaid.debug_log /tmp/my logs/gitaid.log`,
			expected: map[string][]string{
				"debug_log": {"/tmp/my logs/gitaid.log"},
			},
		},
		{
			name:   "bare boolean key",
			output: "gitaid.verbose",
			expected: map[string][]string{
				"verbose": {"true"},
			},
		},
		{
			name:     "empty output",
			output:   "",
			expected: map[string][]string{},
		},
		{
			name:     "whitespace only",
			output:   "   \n\n  ",
			expected: map[string][]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseGitConfigOutput(tt.output))
		})
	}
}

func TestConvertGitConfig(t *testing.T) {
	result := convertGitConfig(map[string][]string{
		"color": {"never", "always"},
		"theme": {"nord"},
		"empty": {},

		"default-revision": {"topic"},
	})
	assert.Equal(t, map[string]any{
		"color":            []any{"never", "always"},
		"theme":            "nord",
		"default_revision": "topic",
	}, result)
}

func TestLoadGitConfigArgs(t *testing.T) {
	var gotArgs []string
	var gotRepo string
	gitConfigMock = func(args []string, repoPath string) (string, error) {
		gotArgs = args
		gotRepo = repoPath
		return "gitaid.utc yes\n", nil
	}
	t.Cleanup(func() { gitConfigMock = nil })

	result, err := loadGitConfig(false, "/repo")
	require.NoError(t, err)
	assert.Equal(t, []string{"config", "--get-regexp", `^gitaid\.`, "--local"}, gotArgs)
	assert.Equal(t, "/repo", gotRepo)
	assert.Equal(t, map[string]any{"utc": "yes"}, result)

	_, err = loadGitConfig(true, "")
	require.NoError(t, err)
	assert.Equal(t, "--global", gotArgs[len(gotArgs)-1])
}

func TestLoadGitConfigError(t *testing.T) {
	gitConfigMock = func([]string, string) (string, error) {
		return "", errors.New("boom")
	}
	t.Cleanup(func() { gitConfigMock = nil })

	_, err := loadGitConfig(true, "")
	require.Error(t, err)
}

func TestDetermineRepoPath(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}
	dir := t.TempDir()
	cmd := exec.Command("git", "init")
	cmd.Dir = dir
	require.NoError(t, cmd.Run())

	assert.Equal(t, dir, determineRepoPath(dir))
}

func TestParseCLIConfigOverrides(t *testing.T) {
	tests := []struct {
		name      string
		overrides []string
		expected  map[string]any
		wantErr   bool
	}{
		{
			name:      "single",
			overrides: []string{"gitaid.color=never"},
			expected:  map[string]any{"color": "never"},
		},
		{
			name:      "repeated key",
			overrides: []string{"gitaid.color=never", "gitaid.color=always"},
			expected:  map[string]any{"color": []any{"never", "always"}},
		},
		{
			name:      "value with equals",
			overrides: []string{"gitaid.debug_log=/tmp/a=b.log"},
			expected:  map[string]any{"debug_log": "/tmp/a=b.log"},
		},
		{name: "missing equals", overrides: []string{"gitaid.color"}, wantErr: true},
		{name: "wrong prefix", overrides: []string{"lw.color=never"}, wantErr: true},
		{name: "empty key", overrides: []string{"gitaid.=x"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := parseCLIConfigOverrides(tt.overrides)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}
