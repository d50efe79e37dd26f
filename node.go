package vtree

import (
	"github.com/pkg/errors"
)

// Kind discriminates directory nodes from file nodes
type Kind uint8

const (
	Directory Kind = iota
	File
)

// Single character codes used by listings and the persisted record format
const (
	DirectoryCode byte = 'd'
	FileCode      byte = 'f'
)

// Code returns the single character code of the kind ('d' or 'f')
func (k Kind) Code() byte {
	if k == File {
		return FileCode
	}
	return DirectoryCode
}

func (k Kind) String() string {
	switch k {
	case Directory:
		return "dir"
	case File:
		return "file"
	default:
		return "unknown"
	}
}

// KindFromCode parses a kind code as produced by [Kind.Code]
func KindFromCode(c byte) (Kind, error) {
	switch c {
	case DirectoryCode:
		return Directory, nil
	case FileCode:
		return File, nil
	default:
		return 0, errors.Wrapf(ErrInvalidArgument, "unknown kind code %q", c)
	}
}

// NodeInfo provides read-only access to node information for external consumers
type NodeInfo interface {
	// Name returns the node's name (last path component); empty for the root
	Name() string

	// Kind returns whether the node is a directory or a file
	Kind() Kind

	// Path returns the absolute path of the node; "/" for the root
	Path() (string, error)
}

// Entry is one row of a directory listing
type Entry struct {
	Name string
	Kind Kind
}
