package provenance

import (
	"errors"
	"fmt"
	"strings"

	"github.com/chmouel/gitaid/internal/models"
	"github.com/chmouel/gitaid/internal/utils"
)

// ErrParse marks malformed ls-tree output.
var ErrParse = errors.New("cannot parse git ls-tree output")

// ParseError reports an ls-tree line without the "<mode> <type> <hash>\t<path>" shape.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("could not parse tree line %d: %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Is matches ErrParse.
func (e *ParseError) Is(target error) bool { return target == ErrParse }

// ParseTree parses `git ls-tree -r` output into a set of entries.
func ParseTree(text string) (Set[models.TreeEntry], error) {
	entries := make(Set[models.TreeEntry])
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return entries, nil
	}

	for i, line := range strings.Split(text, "\n") {
		entry, err := ParseTreeLine(line)
		if err != nil {
			return nil, &ParseError{Line: i + 1, Text: line, Err: err}
		}
		entries.Add(entry)
	}
	return entries, nil
}

// ParseTreeLine parses a single ls-tree line.
func ParseTreeLine(line string) (models.TreeEntry, error) {
	meta, path, ok := strings.Cut(line, "\t")
	if !ok {
		return models.TreeEntry{}, errors.New("missing tab before path")
	}
	fields := strings.Fields(meta)
	if len(fields) != 3 {
		return models.TreeEntry{}, fmt.Errorf("expected mode, type and hash, got %d fields", len(fields))
	}
	if path == "" {
		return models.TreeEntry{}, utils.ErrEmptyPath
	}
	path, err := utils.UnquotePath(path)
	if err != nil {
		return models.TreeEntry{}, err
	}
	return models.TreeEntry{
		Mode: fields[0],
		Type: fields[1],
		Hash: fields[2],
		Path: path,
	}, nil
}
