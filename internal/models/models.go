// Package models defines the data objects shared across gitaid packages.
package models

// StatusRecord is one parsed line of `git status --porcelain`.
type StatusRecord struct {
	IndexState    byte   // X column: ' ', M, A, D, R, C, U, ?, !
	WorktreeState byte   // Y column, same alphabet
	Path          string // Current path, after a rename when there is one
	OriginalPath  string // Source path of a rename or copy, empty otherwise
}

// Code returns the two character XY status code.
func (r StatusRecord) Code() string {
	return string([]byte{r.IndexState, r.WorktreeState})
}

// IsRename reports whether the record carries a source path.
func (r StatusRecord) IsRename() bool {
	return r.OriginalPath != ""
}

// TreeEntry is one line of `git ls-tree -r`.
type TreeEntry struct {
	Mode string // e.g. 100644
	Type string // blob, commit (submodule), tree
	Hash string
	Path string
}

// StatusCodes lists every valid porcelain v1 state character.
const StatusCodes = " MADRCU?!"

// DefaultRevision is the merge commit inspected when none is given.
const DefaultRevision = "@"
