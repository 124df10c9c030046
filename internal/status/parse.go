package status

import (
	"errors"
	"fmt"
	"strings"

	"github.com/chmouel/gitaid/internal/models"
	"github.com/chmouel/gitaid/internal/utils"
)

const renameSeparator = " -> "

var errShortLine = errors.New("line too short")

// Parse parses the full text of `git status --porcelain`. Every line must be
// a valid record; the first bad line aborts parsing.
func Parse(text string) ([]models.StatusRecord, error) {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil, nil
	}

	lines := strings.Split(text, "\n")
	records := make([]models.StatusRecord, 0, len(lines))
	for i, line := range lines {
		rec, err := ParseLine(line)
		if err != nil {
			return nil, &ParseError{Line: i + 1, Text: line, Err: err}
		}
		records = append(records, rec)
	}
	return records, nil
}

// ParseLine parses one porcelain record: two state codes, a space, a path and
// for renames and copies " -> " followed by the new path.
func ParseLine(line string) (models.StatusRecord, error) {
	var rec models.StatusRecord
	if len(line) < 4 {
		return rec, errShortLine
	}

	x, y := line[0], line[1]
	if !validCode(x) {
		return rec, fmt.Errorf("invalid index state %q", x)
	}
	if !validCode(y) {
		return rec, fmt.Errorf("invalid worktree state %q", y)
	}
	if line[2] != ' ' {
		return rec, fmt.Errorf("expected space after state codes, got %q", line[2])
	}
	rec.IndexState = x
	rec.WorktreeState = y

	first, rest, err := utils.CutPath(line[3:])
	if err != nil {
		return rec, err
	}
	if rest == "" {
		rec.Path = first
		return rec, nil
	}

	if !strings.HasPrefix(rest, renameSeparator) {
		return rec, fmt.Errorf("unexpected text after path: %q", rest)
	}
	second, rest, err := utils.CutPath(rest[len(renameSeparator):])
	if err != nil {
		return rec, err
	}
	if rest != "" {
		return rec, fmt.Errorf("unexpected text after path: %q", rest)
	}
	rec.OriginalPath = first
	rec.Path = second
	return rec, nil
}

func validCode(c byte) bool {
	return strings.IndexByte(models.StatusCodes, c) >= 0
}
