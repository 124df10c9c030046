// Package provenance works out where the files of a merge commit came from by
// comparing the recursive listing of the merge with those of its two parents.
package provenance

import (
	"errors"
	"fmt"
	"sort"

	"github.com/chmouel/gitaid/internal/models"
)

// ErrInvariantViolation marks an internal logic fault in the analysis.
var ErrInvariantViolation = errors.New("provenance partition invariant violated")

// InvariantViolationError reports that the categories do not partition the
// union of the three listings.
type InvariantViolationError struct {
	Missing []string // in the listings but in no category
	Extra   []string // in a category but in no listing
	Total   int      // sum of category sizes
	Union   int      // size of the union of the listings
}

func (e *InvariantViolationError) Error() string {
	return fmt.Sprintf("%v: %d categorised entries for %d listed (missing %q, extra %q)",
		ErrInvariantViolation, e.Total, e.Union, e.Missing, e.Extra)
}

// Is matches ErrInvariantViolation.
func (e *InvariantViolationError) Is(target error) bool { return target == ErrInvariantViolation }

// MergeFileSets holds the listings of a merge commit and its parents.
type MergeFileSets struct {
	Result       Set[models.TreeEntry]
	FirstParent  Set[models.TreeEntry]
	SecondParent Set[models.TreeEntry]
}

// Report is the provenance of every entry of a merge.
type Report struct {
	Merged                Set[models.TreeEntry]
	Unchanged             Set[models.TreeEntry]
	FromFirst             Set[models.TreeEntry]
	FromSecond            Set[models.TreeEntry]
	DeletedDuringMerge    Set[models.TreeEntry]
	DeletedFromFirstOnly  Set[models.TreeEntry]
	DeletedFromSecondOnly Set[models.TreeEntry]
}

// Analyze splits the listings into provenance categories and verifies they
// cover every listed entry exactly once.
func Analyze(sets MergeFileSets) (*Report, error) {
	result, first, second := sets.Result, sets.FirstParent, sets.SecondParent

	r := &Report{
		Merged:                result.Difference(first, second),
		Unchanged:             result.Intersect(first).Intersect(second),
		FromFirst:             result.Difference(second).Intersect(first),
		FromSecond:            result.Difference(first).Intersect(second),
		DeletedDuringMerge:    first.Intersect(second).Difference(result),
		DeletedFromFirstOnly:  first.Difference(result, second),
		DeletedFromSecondOnly: second.Difference(result, first),
	}
	if err := checkPartition(r, sets); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Report) categories() []Set[models.TreeEntry] {
	return []Set[models.TreeEntry]{
		r.Merged,
		r.Unchanged,
		r.FromFirst,
		r.FromSecond,
		r.DeletedFromFirstOnly,
		r.DeletedFromSecondOnly,
		r.DeletedDuringMerge,
	}
}

func checkPartition(r *Report, sets MergeFileSets) error {
	all := sets.Result.Union(sets.FirstParent, sets.SecondParent)
	cats := r.categories()

	covered := make(Set[models.TreeEntry])
	total := 0
	for _, c := range cats {
		total += c.Len()
		covered = covered.Union(c)
	}
	if total == all.Len() && covered.Equal(all) {
		return nil
	}
	return &InvariantViolationError{
		Missing: sortedPaths(all.Difference(covered)),
		Extra:   sortedPaths(covered.Difference(all)),
		Total:   total,
		Union:   all.Len(),
	}
}

func sortedPaths(s Set[models.TreeEntry]) []string {
	paths := make([]string, 0, s.Len())
	for e := range s {
		paths = append(paths, e.Path)
	}
	sort.Strings(paths)
	return paths
}
