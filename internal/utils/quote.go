// Package utils holds small text helpers shared by the git output parsers.
package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrEmptyPath is returned when a path field has no characters.
var ErrEmptyPath = errors.New("empty path")

// CutPath splits the leading path field off s and returns it unquoted along
// with the unconsumed remainder. A field is either a bare run of non-space
// bytes or a double-quoted string using git's C-style escapes, which is how
// git prints names that contain spaces, quotes, control or non-ASCII bytes.
func CutPath(s string) (path, rest string, err error) {
	if s == "" {
		return "", "", ErrEmptyPath
	}
	if s[0] != '"' {
		end := strings.IndexByte(s, ' ')
		switch {
		case end == 0:
			return "", "", ErrEmptyPath
		case end < 0:
			end = len(s)
		}
		return s[:end], s[end:], nil
	}

	end := closingQuote(s)
	if end < 0 {
		return "", "", fmt.Errorf("unterminated quoted path %s", s)
	}
	path, err = UnquotePath(s[:end+1])
	if err != nil {
		return "", "", err
	}
	return path, s[end+1:], nil
}

// UnquotePath decodes a git C-style quoted path. Unquoted input is returned
// unchanged.
func UnquotePath(field string) (string, error) {
	if len(field) < 2 || field[0] != '"' || field[len(field)-1] != '"' {
		return field, nil
	}
	// git only emits escapes strconv understands: \a \b \t \n \v \f \r \" \\
	// and three digit octal bytes for anything outside printable ASCII.
	path, err := strconv.Unquote(field)
	if err != nil {
		return "", fmt.Errorf("invalid quoted path %s: %w", field, err)
	}
	if path == "" {
		return "", ErrEmptyPath
	}
	return path, nil
}

// closingQuote returns the index of the quote ending the string opened at
// s[0], skipping backslash escapes, or -1.
func closingQuote(s string) int {
	for i := 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '"':
			return i
		}
	}
	return -1
}
