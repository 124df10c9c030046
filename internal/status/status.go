// Package status classifies `git status --porcelain` output into the buckets
// a commit helper cares about.
package status

import (
	"sort"

	"github.com/chmouel/gitaid/internal/models"
)

// Bucket is the classification of one path.
type Bucket int

// Buckets, one per path.
const (
	Unchanged Bucket = iota
	Staged
	AutoAddable
	Untracked
	Unmerged
	Ignored
)

var bucketNames = map[Bucket]string{
	Unchanged:   "unchanged",
	Staged:      "staged",
	AutoAddable: "auto-addable",
	Untracked:   "untracked",
	Unmerged:    "unmerged",
	Ignored:     "ignored",
}

func (b Bucket) String() string {
	if name, ok := bucketNames[b]; ok {
		return name
	}
	return "unknown"
}

// Classification partitions the reported paths. Each slice is sorted.
type Classification struct {
	Staged      []string
	AutoAddable []string
	Untracked   []string
	Unmerged    []string
	Ignored     []string
	Unchanged   []string
}

// Paths returns the paths in bucket b.
func (c *Classification) Paths(b Bucket) []string {
	switch b {
	case Staged:
		return c.Staged
	case AutoAddable:
		return c.AutoAddable
	case Untracked:
		return c.Untracked
	case Unmerged:
		return c.Unmerged
	case Ignored:
		return c.Ignored
	default:
		return c.Unchanged
	}
}

// Len is the number of classified paths across all buckets.
func (c *Classification) Len() int {
	return len(c.Staged) + len(c.AutoAddable) + len(c.Untracked) +
		len(c.Unmerged) + len(c.Ignored) + len(c.Unchanged)
}

// Classify decides the bucket of a single record. Conflicts win over
// everything else, then the index column decides.
func Classify(rec models.StatusRecord) Bucket {
	x, y := rec.IndexState, rec.WorktreeState
	switch {
	case x == 'U' || y == 'U':
		return Unmerged
	case x == 'D' && y == 'D', x == 'A' && y == 'A':
		// both deleted / both added
		return Unmerged
	case x == '?':
		return Untracked
	case x == '!':
		return Ignored
	case x == ' ' && y == ' ':
		return Unchanged
	case x == ' ':
		return AutoAddable
	default:
		return Staged
	}
}

// Build classifies records without enforcing any policy. A path reported more
// than once keeps the bucket of its first record.
func Build(records []models.StatusRecord) *Classification {
	seen := make(map[string]Bucket, len(records))
	for _, rec := range records {
		if _, ok := seen[rec.Path]; ok {
			continue
		}
		seen[rec.Path] = Classify(rec)
	}

	c := &Classification{}
	for path, b := range seen {
		switch b {
		case Staged:
			c.Staged = append(c.Staged, path)
		case AutoAddable:
			c.AutoAddable = append(c.AutoAddable, path)
		case Untracked:
			c.Untracked = append(c.Untracked, path)
		case Unmerged:
			c.Unmerged = append(c.Unmerged, path)
		case Ignored:
			c.Ignored = append(c.Ignored, path)
		default:
			c.Unchanged = append(c.Unchanged, path)
		}
	}
	for _, list := range [][]string{c.Staged, c.AutoAddable, c.Untracked, c.Unmerged, c.Ignored, c.Unchanged} {
		sort.Strings(list)
	}
	return c
}

// ClassifyStatus parses porcelain text and classifies it. Ignored files are a
// PolicyViolationError and conflicted files an UnresolvedConflictError; on
// any error no classification is returned.
func ClassifyStatus(text string) (*Classification, error) {
	records, err := Parse(text)
	if err != nil {
		return nil, err
	}

	c := Build(records)
	if len(c.Ignored) > 0 {
		return nil, &PolicyViolationError{Paths: c.Ignored}
	}
	if len(c.Unmerged) > 0 {
		return nil, &UnresolvedConflictError{Paths: c.Unmerged}
	}
	return c, nil
}
