package status

import (
	"errors"
	"fmt"
)

// Sentinel errors used to tell the failure kinds apart with errors.Is.
var (
	ErrParse              = errors.New("cannot parse git status output")
	ErrUnresolvedConflict = errors.New("unmerged files in tree")
	ErrPolicyViolation    = errors.New("git status reported ignored files")
)

// ParseError reports a status line that does not have the porcelain shape.
type ParseError struct {
	Line int    // 1-based
	Text string // raw line
	Err  error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("could not parse line %d: %q: %v", e.Line, e.Text, e.Err)
	}
	return fmt.Sprintf("could not parse line %d: %q", e.Line, e.Text)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Is matches ErrParse.
func (e *ParseError) Is(target error) bool { return target == ErrParse }

// UnresolvedConflictError lists conflicted paths. Only a human can fix these,
// retrying will not help.
type UnresolvedConflictError struct {
	Paths []string
}

func (e *UnresolvedConflictError) Error() string {
	return fmt.Sprintf("unmerged file(s) in tree: %q", e.Paths)
}

// Is matches ErrUnresolvedConflict.
func (e *UnresolvedConflictError) Is(target error) bool { return target == ErrUnresolvedConflict }

// PolicyViolationError lists ignored paths, which only show up when git was
// asked for them and point at a caller misconfiguration.
type PolicyViolationError struct {
	Paths []string
}

func (e *PolicyViolationError) Error() string {
	return fmt.Sprintf("git status reported ignored file(s) %q", e.Paths)
}

// Is matches ErrPolicyViolation.
func (e *PolicyViolationError) Is(target error) bool { return target == ErrPolicyViolation }
