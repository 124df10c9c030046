// Package git wraps the git commands used by gitaid.
package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	log "github.com/chmouel/gitaid/internal/log"
)

// LookupPath is used to find executables in PATH. It's exposed as a package variable
// so tests can mock it and avoid depending on system binaries being installed.
var LookupPath = exec.LookPath

// ErrGitNotFound is returned when no git executable is on PATH.
var ErrGitNotFound = errors.New("git executable not found in PATH")

// CommandError is a git invocation that exited non-zero. The exit code and
// stderr are git's own.
type CommandError struct {
	Args     []string
	ExitCode int
	Stderr   string
	Err      error
}

func (e *CommandError) Error() string {
	command := strings.Join(e.Args, " ")
	if e.Stderr != "" {
		return fmt.Sprintf("%s: %s", command, e.Stderr)
	}
	return fmt.Sprintf("%s: exit %d", command, e.ExitCode)
}

func (e *CommandError) Unwrap() error { return e.Err }

// Service runs git in a working directory.
type Service struct {
	dir    string
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// NewService returns a Service running git in dir; an empty dir means the
// process working directory.
func NewService(dir string) *Service {
	return &Service{
		dir:    dir,
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
}

// SetStdio replaces the streams handed to interactive commands.
func (s *Service) SetStdio(stdin io.Reader, stdout, stderr io.Writer) {
	s.stdin = stdin
	s.stdout = stdout
	s.stderr = stderr
}

// Dir returns the working directory git runs in.
func (s *Service) Dir() string {
	return s.dir
}

func (s *Service) debugf(format string, args ...any) {
	log.Printf(format, args...)
}

func prepareAllowedCommand(ctx context.Context, args []string) (*exec.Cmd, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("no command provided")
	}

	switch args[0] {
	case "git":
		if _, err := LookupPath("git"); err != nil {
			return nil, ErrGitNotFound
		}
		// #nosec G204 -- arguments for git command come from internal logic and are not shell interpolated
		return exec.CommandContext(ctx, "git", args[1:]...), nil
	default:
		return nil, fmt.Errorf("unsupported command %q", args[0])
	}
}

// RunGit executes a git command and returns its stdout untouched.
func (s *Service) RunGit(ctx context.Context, args []string) (string, error) {
	command := strings.Join(args, " ")
	if command == "" {
		command = "<empty>"
	}
	s.debugf("run: %s (cwd=%s)", command, s.dir)

	cmd, err := prepareAllowedCommand(ctx, args)
	if err != nil {
		s.debugf("error: %s: %v", command, err)
		return "", err
	}
	if s.dir != "" {
		cmd.Dir = s.dir
	}
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	output, err := cmd.Output()
	if err != nil {
		return "", s.commandError(command, args, err, strings.TrimSpace(stderr.String()))
	}

	s.debugf("ok: %s", command)
	return string(output), nil
}

// RunInteractive executes a git command wired to the service's stdio so git
// can start an editor or print its own progress.
func (s *Service) RunInteractive(ctx context.Context, args []string) error {
	command := strings.Join(args, " ")
	s.debugf("run (interactive): %s (cwd=%s)", command, s.dir)

	cmd, err := prepareAllowedCommand(ctx, args)
	if err != nil {
		s.debugf("error: %s: %v", command, err)
		return err
	}
	if s.dir != "" {
		cmd.Dir = s.dir
	}
	cmd.Stdin = s.stdin
	cmd.Stdout = s.stdout
	cmd.Stderr = s.stderr

	if err := cmd.Run(); err != nil {
		return s.commandError(command, args, err, "")
	}
	s.debugf("ok: %s", command)
	return nil
}

func (s *Service) commandError(command string, args []string, err error, stderr string) error {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		cmdErr := &CommandError{
			Args:     append([]string{}, args...),
			ExitCode: exitErr.ExitCode(),
			Stderr:   stderr,
			Err:      err,
		}
		s.debugf("error: %s (exit %d) %s", command, cmdErr.ExitCode, stderr)
		return cmdErr
	}
	s.debugf("error: %s: %v", command, err)
	return fmt.Errorf("%s: %w", command, err)
}

// Status returns `git status --porcelain` output.
func (s *Service) Status(ctx context.Context) (string, error) {
	return s.RunGit(ctx, []string{"git", "status", "--porcelain"})
}

// ListTree returns the recursive listing of treeish.
func (s *Service) ListTree(ctx context.Context, treeish string) (string, error) {
	if treeish == "" {
		return "", fmt.Errorf("empty tree-ish")
	}
	return s.RunGit(ctx, []string{"git", "ls-tree", "-r", treeish})
}

// Toplevel returns the root of the working tree.
func (s *Service) Toplevel(ctx context.Context) (string, error) {
	out, err := s.RunGit(ctx, []string{"git", "rev-parse", "--show-toplevel"})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// CommitOptions describes a `git commit` invocation.
type CommitOptions struct {
	Date    time.Time
	UTC     bool
	All     bool
	Message *string
	Paths   []string
}

// FormatDate renders t the way the commit date is passed to git: ISO 8601
// local time without offset, or UTC with an explicit offset.
func FormatDate(t time.Time, utc bool) string {
	layout := "2006-01-02T15:04:05"
	if t.Nanosecond() != 0 {
		layout += ".000000"
	}
	if utc {
		return t.UTC().Format(layout + "-07:00")
	}
	return t.Local().Format(layout)
}

// CommitArgs builds the git command line for opts.
func CommitArgs(opts CommitOptions) []string {
	args := []string{"git", "commit", "--date", FormatDate(opts.Date, opts.UTC)}
	if opts.All {
		args = append(args, "-a")
	}
	if opts.Message != nil {
		args = append(args, "-m", *opts.Message)
	}
	args = append(args, "--")
	return append(args, opts.Paths...)
}

// Commit runs `git commit` interactively with the computed date.
func (s *Service) Commit(ctx context.Context, opts CommitOptions) error {
	return s.RunInteractive(ctx, CommitArgs(opts))
}
