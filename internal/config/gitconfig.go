package config

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// gitConfigPrefix namespaces gitaid settings in git config and --config.
const gitConfigPrefix = "gitaid."

// gitConfigMock allows tests to mock git config output.
var gitConfigMock func(args []string, repoPath string) (string, error)

// runGitConfig executes git config command and returns raw output.
func runGitConfig(args []string, repoPath string) (string, error) {
	if gitConfigMock != nil {
		return gitConfigMock(args, repoPath)
	}

	cmd := exec.Command("git", args...)
	if repoPath != "" {
		cmd.Dir = repoPath
	}

	output, err := cmd.Output()
	if err != nil {
		// git config returns exit code 1 when key not found (not an error)
		if exitErr, ok := err.(*exec.ExitError); ok && exitErr.ExitCode() == 1 {
			return "", nil
		}
		return "", err
	}
	return string(output), nil
}

// parseGitConfigOutput parses git config output into multi-value map.
// Input format: "gitaid.color always\ngitaid.utc true\n"
func parseGitConfigOutput(output string) map[string][]string {
	configMap := make(map[string][]string)

	for _, line := range strings.Split(strings.TrimSpace(output), "\n") {
		if line == "" {
			continue
		}

		// values may contain spaces
		key, value, ok := strings.Cut(line, " ")
		if !ok {
			// a bare key is git's way of writing a true boolean
			key, value = line, "true"
		}
		key = strings.TrimPrefix(strings.ToLower(key), gitConfigPrefix)
		configMap[key] = append(configMap[key], value)
	}

	return configMap
}

// convertGitConfig converts to the map shape apply expects. git variable
// names cannot hold underscores, so default-revision names default_revision.
func convertGitConfig(gitCfg map[string][]string) map[string]any {
	result := make(map[string]any)

	for key, values := range gitCfg {
		key = strings.ReplaceAll(key, "-", "_")
		switch len(values) {
		case 0:
			continue
		case 1:
			result[key] = values[0]
		default:
			anySlice := make([]any, len(values))
			for i, v := range values {
				anySlice[i] = v
			}
			result[key] = anySlice
		}
	}

	return result
}

// loadGitConfig reads gitaid.* values from global or repository git config.
func loadGitConfig(globalOnly bool, repoPath string) (map[string]any, error) {
	args := []string{"config", "--get-regexp", `^gitaid\.`}

	if globalOnly {
		args = append(args, "--global")
	} else {
		args = append(args, "--local")
	}

	output, err := runGitConfig(args, repoPath)
	if err != nil {
		return nil, err
	}

	return convertGitConfig(parseGitConfigOutput(output)), nil
}

// isInGitRepo checks if path is in a git repository.
func isInGitRepo(path string) bool {
	if path == "" {
		return false
	}
	cmd := exec.Command("git", "rev-parse", "--git-dir")
	cmd.Dir = path
	return cmd.Run() == nil
}

// determineRepoPath returns repo path for local git config lookup.
func determineRepoPath(repoPath string) string {
	if repoPath != "" && isInGitRepo(repoPath) {
		return repoPath
	}

	if wd, err := os.Getwd(); err == nil && isInGitRepo(wd) {
		return wd
	}

	return ""
}

// parseCLIConfigOverrides parses --config=gitaid.key=value format.
func parseCLIConfigOverrides(overrides []string) (map[string]any, error) {
	gitCfg := make(map[string][]string)

	for _, override := range overrides {
		fullKey, value, ok := strings.Cut(override, "=")
		if !ok {
			return nil, fmt.Errorf("invalid config override: %q, expected format: %skey=value (note: use = not space)", override, gitConfigPrefix)
		}

		if !strings.HasPrefix(fullKey, gitConfigPrefix) {
			return nil, fmt.Errorf("config override key must start with '%s': %q", gitConfigPrefix, fullKey)
		}

		key := strings.TrimPrefix(fullKey, gitConfigPrefix)
		if key == "" {
			return nil, fmt.Errorf("empty config key in override: %q", override)
		}
		gitCfg[key] = append(gitCfg[key], value)
	}

	return convertGitConfig(gitCfg), nil
}
