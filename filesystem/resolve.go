package filesystem

import (
	"github.com/brettbedarf/vtree"
	"github.com/pkg/errors"
)

// Filter restricts the kind of the final node a resolution may return
type Filter uint8

const (
	Any Filter = iota
	MustBeDirectory
	MustBeFile
)

func (f Filter) accepts(k vtree.Kind) bool {
	switch f {
	case MustBeDirectory:
		return k == vtree.Directory
	case MustBeFile:
		return k == vtree.File
	default:
		return true
	}
}

// FilterFor returns the filter that only accepts kind k
func FilterFor(k vtree.Kind) Filter {
	if k == vtree.File {
		return MustBeFile
	}
	return MustBeDirectory
}

// Resolve walks segs from start and returns the node named by the last segment.
// Only the final node is checked against filter; a file met mid path has no
// children so the next lookup fails on its own. With no segments start is
// returned when it satisfies filter.
func Resolve(start *Node, segs []string, filter Filter) (*Node, error) {
	if len(segs) == 0 {
		if filter.accepts(start.kind) {
			return start, nil
		}
		return nil, errors.Wrapf(vtree.ErrPathNotFound, "start is a %s", start.kind)
	}

	cur := start
	for i, seg := range segs {
		child, ok := cur.GetChild(seg)
		if !ok {
			return nil, errors.Wrapf(vtree.ErrPathNotFound, "no such entry %q", seg)
		}
		if i == len(segs)-1 && !filter.accepts(child.kind) {
			return nil, errors.Wrapf(vtree.ErrPathNotFound, "%q is a %s", seg, child.kind)
		}
		cur = child
	}
	return cur, nil
}
