// Package vtree contains the core domain types and interfaces for an in-memory
// hierarchical namespace: a tree of named directory and file nodes driven by a
// line-oriented command shell.
package vtree

import (
	"io"
	"iter"
)

// Tree defines the namespace operations that entrypoints (the shell, tests,
// startup loaders) need. Pathnames use "/" as separator; a leading "/" resolves
// from the root, anything else from the current directory.
type Tree interface {
	// Create adds a new node of the requested kind. Every intermediate segment
	// must already exist as a directory.
	Create(req CreateRequest) (NodeInfo, error)

	// Delete removes a file (kind File) or an empty directory (kind Directory)
	Delete(path string, kind Kind) error

	// Chdir moves the current directory. An empty path resets it to the root.
	Chdir(path string) error

	// Pwd returns the absolute path of the current directory
	Pwd() string

	// List returns the immediate children of the directory at path, or of the
	// current directory when path is empty, most recently created first.
	List(path string) (iter.Seq[Entry], error)

	// Walk visits every node below the root depth-first in pre-order.
	// Root children have depth 1.
	Walk(fn func(n NodeInfo, depth int) error) error

	// Find returns every node whose absolute path matches the glob pattern
	Find(pattern string) ([]NodeInfo, error)

	// Clear releases every node except the root and resets the current directory
	Clear()

	// Save writes the whole tree as flat records followed by the sentinel
	Save(w io.Writer) error

	// Reload replaces the tree with the one described by the records in r and
	// returns the number of nodes created.
	Reload(r io.Reader) (int, error)
}
