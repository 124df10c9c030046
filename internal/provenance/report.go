package provenance

import (
	"fmt"
	"io"
	"sort"

	"github.com/chmouel/gitaid/internal/models"
)

// Kind is a provenance category.
type Kind int

// Kinds in display order. The first four make up the default report.
const (
	Merged Kind = iota
	FromFirst
	FromSecond
	DeletedDuringMerge
	Unchanged
	DeletedFromFirstOnly
	DeletedFromSecondOnly
)

// Marker returns the two column tag printed in front of a path. The right
// column stands for the first parent, the left one for the second.
func (k Kind) Marker() string {
	switch k {
	case Merged:
		return "++"
	case FromFirst:
		return " +"
	case FromSecond:
		return "+ "
	case DeletedDuringMerge:
		return "--"
	case Unchanged:
		return "=="
	case DeletedFromFirstOnly:
		return " -"
	case DeletedFromSecondOnly:
		return "- "
	}
	return "??"
}

func (k Kind) String() string {
	switch k {
	case Merged:
		return "merged"
	case FromFirst:
		return "from first parent"
	case FromSecond:
		return "from second parent"
	case DeletedDuringMerge:
		return "deleted during merge"
	case Unchanged:
		return "unchanged"
	case DeletedFromFirstOnly:
		return "deleted from first parent"
	case DeletedFromSecondOnly:
		return "deleted from second parent"
	}
	return "unknown"
}

// Entry is one line of the detailed report.
type Entry struct {
	Kind  Kind
	Entry models.TreeEntry
}

// Path is the file path of the entry.
func (e Entry) Path() string { return e.Entry.Path }

func (r *Report) set(k Kind) Set[models.TreeEntry] {
	switch k {
	case Merged:
		return r.Merged
	case FromFirst:
		return r.FromFirst
	case FromSecond:
		return r.FromSecond
	case DeletedDuringMerge:
		return r.DeletedDuringMerge
	case Unchanged:
		return r.Unchanged
	case DeletedFromFirstOnly:
		return r.DeletedFromFirstOnly
	case DeletedFromSecondOnly:
		return r.DeletedFromSecondOnly
	}
	return nil
}

// Count returns the size of category k.
func (r *Report) Count(k Kind) int {
	return r.set(k).Len()
}

// Summary returns the one line verdict when every change comes from a single
// parent. Deletions confined to one side do not prevent a summary.
func (r *Report) Summary() (string, bool) {
	if r.DeletedDuringMerge.Len() == 0 && r.Merged.Len() == 0 && r.FromSecond.Len() == 0 {
		return fmt.Sprintf("All %d changed files are from first parent", r.FromFirst.Len()), true
	}
	if r.DeletedDuringMerge.Len() == 0 && r.Merged.Len() == 0 && r.FromFirst.Len() == 0 {
		return fmt.Sprintf("All %d changed files are from second parent", r.FromSecond.Len()), true
	}
	return "", false
}

// Entries lists the entries of the given kinds sorted by path. Entries sharing
// a path keep the order of kinds.
func (r *Report) Entries(kinds ...Kind) []Entry {
	var out []Entry
	for _, k := range kinds {
		for e := range r.set(k) {
			out = append(out, Entry{Kind: k, Entry: e})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Path() != out[j].Path() {
			return out[i].Path() < out[j].Path()
		}
		return out[i].Kind < out[j].Kind
	})
	return out
}

// DefaultKinds are the categories of the standard report.
var DefaultKinds = []Kind{Merged, FromFirst, FromSecond, DeletedDuringMerge}

// AllKinds adds the categories that are only shown on request.
var AllKinds = []Kind{Merged, FromFirst, FromSecond, DeletedDuringMerge, Unchanged, DeletedFromFirstOnly, DeletedFromSecondOnly}

// RenderOptions tweak Render.
type RenderOptions struct {
	// Verbose skips the summary and lists every category.
	Verbose bool
	// Marker decorates a marker before printing, for colour output.
	Marker func(k Kind) string
}

// Render writes either the summary line or one "<marker> <path>" line per
// entry.
func (r *Report) Render(w io.Writer, opts RenderOptions) error {
	kinds := DefaultKinds
	if opts.Verbose {
		kinds = AllKinds
	} else if summary, ok := r.Summary(); ok {
		_, err := fmt.Fprintln(w, summary)
		return err
	}

	for _, e := range r.Entries(kinds...) {
		marker := e.Kind.Marker()
		if opts.Marker != nil {
			marker = opts.Marker(e.Kind)
		}
		if _, err := fmt.Fprintf(w, "%s %s\n", marker, e.Path()); err != nil {
			return err
		}
	}
	return nil
}
