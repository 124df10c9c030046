// Package cli implements the command line operations of the gitaid helpers on
// top of the git service.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/chmouel/gitaid/internal/git"
	"github.com/chmouel/gitaid/internal/log"
	"github.com/chmouel/gitaid/internal/models"
	"github.com/chmouel/gitaid/internal/provenance"
	"github.com/chmouel/gitaid/internal/status"
)

var osStat = os.Stat

type gitService interface {
	Status(ctx context.Context) (string, error)
	ListTree(ctx context.Context, treeish string) (string, error)
	Toplevel(ctx context.Context) (string, error)
	Commit(ctx context.Context, opts git.CommitOptions) error
}

var _ gitService = (*git.Service)(nil)

// UsageError is a problem the user has to fix in the invocation or the
// working tree. Err, when set, is the underlying cause.
type UsageError struct {
	Msg string
	Err error
}

func (e *UsageError) Error() string {
	if e.Msg == "" && e.Err != nil {
		return e.Err.Error()
	}
	return e.Msg
}

func (e *UsageError) Unwrap() error { return e.Err }

// CommitOptions are the inputs of CommitTimed.
type CommitOptions struct {
	All     bool
	Message *string
	Paths   []string // as given on the command line
	Prefix  string   // GIT_PREFIX, prepended to Paths
	UTC     bool
	DryRun  bool
	Out     io.Writer // receives the dry-run command line
}

// CommitTimed commits the selected files with the author date set to the
// newest modification time among them.
func CommitTimed(ctx context.Context, svc gitService, opts CommitOptions) error {
	if opts.All && len(opts.Paths) > 0 {
		return &UsageError{Msg: "paths with -a does not make sense"}
	}
	paths := make([]string, 0, len(opts.Paths))
	for _, p := range opts.Paths {
		paths = append(paths, opts.Prefix+p)
	}

	text, err := svc.Status(ctx)
	if err != nil {
		return err
	}
	c, err := status.ClassifyStatus(text)
	if err != nil {
		if errors.Is(err, status.ErrUnresolvedConflict) {
			return &UsageError{Err: err}
		}
		return err
	}

	root, err := svc.Toplevel(ctx)
	if err != nil {
		return err
	}

	// status paths are relative to the top of the tree, command line paths to
	// the working directory
	selected := provenance.NewSet[string]()
	for _, p := range c.Staged {
		selected.Add(filepath.Join(root, p))
	}
	if opts.All {
		for _, p := range c.AutoAddable {
			selected.Add(filepath.Join(root, p))
		}
	}
	for _, p := range paths {
		selected.Add(p)
	}
	if selected.Len() == 0 {
		return &UsageError{Msg: "no changes added to commit"}
	}

	files := selected.Items()
	sort.Strings(files)
	mtime, err := latestModTime(files)
	if err != nil {
		return &UsageError{Err: err}
	}
	log.Printf("commit-timed: %d file(s), newest at %s", len(files), mtime.Format(time.RFC3339Nano))

	commit := git.CommitOptions{
		Date:    mtime,
		UTC:     opts.UTC,
		All:     opts.All,
		Message: opts.Message,
		Paths:   paths,
	}
	if opts.DryRun {
		out := opts.Out
		if out == nil {
			out = os.Stdout
		}
		_, err := fmt.Fprintln(out, shellJoin(git.CommitArgs(commit)))
		return err
	}
	return svc.Commit(ctx, commit)
}

func latestModTime(files []string) (time.Time, error) {
	var latest time.Time
	for _, f := range files {
		info, err := osStat(f)
		if err != nil {
			return time.Time{}, err
		}
		if info.ModTime().After(latest) {
			latest = info.ModTime()
		}
	}
	return latest, nil
}

func shellJoin(args []string) string {
	quoted := make([]string, len(args))
	for i, a := range args {
		quoted[i] = shellQuote(a)
	}
	return strings.Join(quoted, " ")
}

func shellQuote(s string) string {
	if s != "" && strings.IndexFunc(s, func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || strings.ContainsRune("-_./:+=@%,", r))
	}) < 0 {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// AnalyzeMerge lists rev and both of its parents and computes the provenance
// report.
func AnalyzeMerge(ctx context.Context, svc gitService, rev string) (*provenance.Report, error) {
	var listings [3]provenance.Set[models.TreeEntry]
	for i, ref := range []string{rev, rev + "^1", rev + "^2"} {
		text, err := svc.ListTree(ctx, ref)
		if err != nil {
			return nil, err
		}
		entries, err := provenance.ParseTree(text)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ref, err)
		}
		log.Printf("merge-result: %s has %d entries", ref, entries.Len())
		listings[i] = entries
	}

	return provenance.Analyze(provenance.MergeFileSets{
		Result:       listings[0],
		FirstParent:  listings[1],
		SecondParent: listings[2],
	})
}

// MergeOptions are the inputs of MergeResult.
type MergeOptions struct {
	Revision string
	Verbose  bool
	Marker   func(provenance.Kind) string
	Out      io.Writer
}

// MergeResult prints the provenance report of a merge commit.
func MergeResult(ctx context.Context, svc gitService, opts MergeOptions) error {
	report, err := AnalyzeMerge(ctx, svc, opts.Revision)
	if err != nil {
		return err
	}
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	return report.Render(out, provenance.RenderOptions{
		Verbose: opts.Verbose,
		Marker:  opts.Marker,
	})
}
