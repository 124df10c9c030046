package status

import (
	"errors"
	"testing"

	"github.com/chmouel/gitaid/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rec(x, y byte, path string) models.StatusRecord {
	return models.StatusRecord{IndexState: x, WorktreeState: y, Path: path}
}

func TestParseLine(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected models.StatusRecord
		wantErr  bool
	}{
		{
			name:     "worktree modified",
			line:     " M main.go",
			expected: rec(' ', 'M', "main.go"),
		},
		{
			name:     "staged added",
			line:     "A  docs/new.md",
			expected: rec('A', ' ', "docs/new.md"),
		},
		{
			name:     "untracked",
			line:     "?? scratch.txt",
			expected: rec('?', '?', "scratch.txt"),
		},
		{
			name:     "quoted path",
			line:     `?? "a b.txt"`,
			expected: rec('?', '?', "a b.txt"),
		},
		{
			name: "quoted rename",
			line: `R  "old.txt" -> "new.txt"`,
			expected: models.StatusRecord{
				IndexState: 'R', WorktreeState: ' ', Path: "new.txt", OriginalPath: "old.txt",
			},
		},
		{
			name: "bare rename",
			line: "RM src/a.go -> src/b.go",
			expected: models.StatusRecord{
				IndexState: 'R', WorktreeState: 'M', Path: "src/b.go", OriginalPath: "src/a.go",
			},
		},
		{
			name: "mixed rename quoting",
			line: `C  plain -> "with space"`,
			expected: models.StatusRecord{
				IndexState: 'C', WorktreeState: ' ', Path: "with space", OriginalPath: "plain",
			},
		},
		{
			name:     "octal escapes",
			line:     `M  "caf\303\251"`,
			expected: rec('M', ' ', "café"),
		},
		{name: "too short", line: "M", wantErr: true},
		{name: "unknown code", line: "XM file", wantErr: true},
		{name: "missing separator", line: "MMfile", wantErr: true},
		{name: "unquoted space", line: " M two words", wantErr: true},
		{name: "dangling arrow", line: "R  a -> ", wantErr: true},
		{name: "trailing garbage after rename", line: "R  a -> b c", wantErr: true},
		{name: "empty path", line: " M  ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLine(tt.line)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseReportsLineNumber(t *testing.T) {
	text := " M ok.go\n?? fine.txt\nbogus line\n"

	_, err := Parse(text)
	require.Error(t, err)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, 3, parseErr.Line)
	assert.Equal(t, "bogus line", parseErr.Text)
	assert.ErrorIs(t, err, ErrParse)
	assert.Contains(t, err.Error(), "line 3")
}

func TestParseEmpty(t *testing.T) {
	records, err := Parse("")
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		code     string
		expected Bucket
	}{
		{" M", AutoAddable},
		{" D", AutoAddable},
		{"M ", Staged},
		{"MM", Staged},
		{"A ", Staged},
		{"AM", Staged},
		{"D ", Staged},
		{"R ", Staged},
		{"C ", Staged},
		{"UU", Unmerged},
		{"AU", Unmerged},
		{"UD", Unmerged},
		{"DD", Unmerged},
		{"AA", Unmerged},
		{"??", Untracked},
		{"?M", Untracked},
		{"!!", Ignored},
		{"  ", Unchanged},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			got := Classify(rec(tt.code[0], tt.code[1], "f"))
			assert.Equal(t, tt.expected, got, "code %q", tt.code)
		})
	}
}

func TestClassifyStatusPartition(t *testing.T) {
	text := " M modified.go\n" +
		"M  staged.go\n" +
		"A  added.go\n" +
		"?? new.txt\n" +
		`R  "old name.txt" -> "new name.txt"` + "\n" +
		"   clean.go\n"

	c, err := ClassifyStatus(text)
	require.NoError(t, err)

	assert.Equal(t, []string{"added.go", "new name.txt", "staged.go"}, c.Staged)
	assert.Equal(t, []string{"modified.go"}, c.AutoAddable)
	assert.Equal(t, []string{"new.txt"}, c.Untracked)
	assert.Equal(t, []string{"clean.go"}, c.Unchanged)
	assert.Empty(t, c.Ignored)
	assert.Empty(t, c.Unmerged)
	assert.Equal(t, 6, c.Len())

	seen := map[string]int{}
	for _, b := range []Bucket{Unchanged, Staged, AutoAddable, Untracked, Unmerged, Ignored} {
		for _, p := range c.Paths(b) {
			seen[p]++
		}
	}
	for path, n := range seen {
		assert.Equal(t, 1, n, "path %s in %d buckets", path, n)
	}
}

func TestClassifyStatusConflict(t *testing.T) {
	_, err := ClassifyStatus("UU both.go\nAA added.go\n M fine.go\n")
	require.Error(t, err)

	var conflict *UnresolvedConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, []string{"added.go", "both.go"}, conflict.Paths)
	assert.ErrorIs(t, err, ErrUnresolvedConflict)
	assert.False(t, errors.Is(err, ErrPolicyViolation))
	assert.False(t, errors.Is(err, ErrParse))
}

func TestClassifyStatusIgnored(t *testing.T) {
	_, err := ClassifyStatus("!! build/\nUU both.go\n")
	require.Error(t, err)

	var policy *PolicyViolationError
	require.ErrorAs(t, err, &policy)
	assert.Equal(t, []string{"build/"}, policy.Paths)
	assert.ErrorIs(t, err, ErrPolicyViolation)
	assert.False(t, errors.Is(err, ErrUnresolvedConflict))
}

func TestClassifyStatusParseError(t *testing.T) {
	_, err := ClassifyStatus(" M ok.go\nZZ broken\n")
	require.ErrorIs(t, err, ErrParse)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, 2, parseErr.Line)
}

func TestBuildDuplicatePathKeepsFirst(t *testing.T) {
	c := Build([]models.StatusRecord{rec('M', ' ', "x"), rec(' ', 'M', "x")})
	assert.Equal(t, []string{"x"}, c.Staged)
	assert.Empty(t, c.AutoAddable)
}

func TestBucketString(t *testing.T) {
	assert.Equal(t, "auto-addable", AutoAddable.String())
	assert.Equal(t, "unknown", Bucket(42).String())
}
