package filesystem

import (
	"iter"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/brettbedarf/vtree"
	"github.com/brettbedarf/vtree/config"
	"github.com/brettbedarf/vtree/internal/util"
	"github.com/pkg/errors"
)

// FileSystem is the Tree Store: the root node plus the current directory used
// to resolve relative paths. It is not safe for concurrent use.
type FileSystem struct {
	cfg     *config.Config
	root    *Node // Root of node tree; never deleted
	current *Node // never nil
}

var _ vtree.Tree = (*FileSystem)(nil)

func NewFS(cfg *config.Config) *FileSystem {
	if cfg == nil {
		cfg = config.NewDefaultConfig()
	}
	root := newRootNode()
	return &FileSystem{cfg: cfg, root: root, current: root}
}

func (fs *FileSystem) Root() *Node {
	return fs.root
}

// Current returns the current directory node
func (fs *FileSystem) Current() *Node {
	return fs.current
}

// start returns the node p resolves from
func (fs *FileSystem) start(p string) *Node {
	if IsAbs(p) {
		return fs.root
	}
	return fs.current
}

// split tokenizes p and enforces the configured segment limit
func (fs *FileSystem) split(p string) ([]string, error) {
	if p == "" {
		return nil, errors.Wrap(vtree.ErrInvalidArgument, "missing pathname")
	}
	segs := SplitPath(p)
	if len(segs) > fs.cfg.MaxSegments {
		return nil, errors.Wrapf(vtree.ErrInvalidArgument, "%s has %d segments, limit is %d", p, len(segs), fs.cfg.MaxSegments)
	}
	return segs, nil
}

// Create adds a directory or file node at req.Path. The parent must already
// exist and no sibling of either kind may carry the same name. The new node's
// depth may not exceed MaxSegments, so every node stays addressable by an
// absolute path.
func (fs *FileSystem) Create(req vtree.CreateRequest) (vtree.NodeInfo, error) {
	logger := util.GetLogger("FS.Create")

	if req.Kind != vtree.Directory && req.Kind != vtree.File {
		return nil, errors.Wrapf(vtree.ErrInvalidArgument, "unknown kind %d", req.Kind)
	}
	segs, err := fs.split(req.Path)
	if err != nil {
		return nil, err
	}
	if len(segs) == 0 {
		return nil, errors.Wrapf(vtree.ErrInvalidArgument, "%s has no name to create", req.Path)
	}
	name := segs[len(segs)-1]
	if len(name) > fs.cfg.MaxNameLen {
		return nil, errors.Wrapf(vtree.ErrInvalidArgument, "name %q is longer than %d bytes", name, fs.cfg.MaxNameLen)
	}

	parent, err := Resolve(fs.start(req.Path), segs[:len(segs)-1], MustBeDirectory)
	if err != nil {
		return nil, errors.Wrapf(err, "parent of %s", req.Path)
	}
	if depth := parent.Depth() + 1; depth > fs.cfg.MaxSegments {
		return nil, errors.Wrapf(vtree.ErrInvalidArgument, "%s would be %d levels deep, limit is %d", req.Path, depth, fs.cfg.MaxSegments)
	}
	if existing, ok := parent.GetChild(name); ok {
		return nil, errors.Wrapf(vtree.ErrAlreadyExists, "%s (%s)", req.Path, existing.kind)
	}

	node := NewNode(name, req.Kind)
	parent.AddChild(node)
	logger.Debug().Str("path", req.Path).Stringer("kind", req.Kind).Msg("Added node")
	return node, nil
}

// Delete removes the file (kind File) or empty directory (kind Directory)
// at p. Removing the current directory moves current to its parent.
func (fs *FileSystem) Delete(p string, kind vtree.Kind) error {
	logger := util.GetLogger("FS.Delete")

	segs, err := fs.split(p)
	if err != nil {
		return err
	}
	if len(segs) == 0 {
		return errors.Wrap(vtree.ErrInvalidArgument, "cannot remove the root")
	}

	parent, err := Resolve(fs.start(p), segs[:len(segs)-1], MustBeDirectory)
	if err != nil {
		return errors.Wrapf(err, "parent of %s", p)
	}
	target, err := Resolve(parent, segs[len(segs)-1:], FilterFor(kind))
	if err != nil {
		return err
	}
	if target.HasChildren() {
		return errors.Wrapf(vtree.ErrDirectoryNotEmpty, "%s has %d entries", p, len(target.children))
	}

	parent.RemoveChild(target.name)
	target.Del()
	if fs.current == target {
		fs.current = parent
	}
	logger.Debug().Str("path", p).Stringer("kind", kind).Msg("Removed node")
	return nil
}

// Chdir resolves p as a directory and makes it current. An empty path resets
// current to the root; on failure current is unchanged.
func (fs *FileSystem) Chdir(p string) error {
	if p == "" {
		fs.current = fs.root
		return nil
	}
	segs, err := fs.split(p)
	if err != nil {
		return err
	}
	dir, err := Resolve(fs.start(p), segs, MustBeDirectory)
	if err != nil {
		return err
	}
	fs.current = dir
	return nil
}

func (fs *FileSystem) Pwd() string {
	p, err := fs.current.Path()
	if err != nil {
		// current is never detached, fall back to root if that breaks
		util.GetLogger("FS.Pwd").Error().Err(err).Msg("Current directory is detached")
		fs.current = fs.root
		return "/"
	}
	return p
}

// List returns the children of the directory at p (current when empty)
func (fs *FileSystem) List(p string) (iter.Seq[vtree.Entry], error) {
	dir := fs.current
	if p != "" {
		segs, err := fs.split(p)
		if err != nil {
			return nil, err
		}
		if dir, err = Resolve(fs.start(p), segs, MustBeDirectory); err != nil {
			return nil, err
		}
	}

	children := dir.Children()
	return func(yield func(vtree.Entry) bool) {
		for _, c := range children {
			if !yield(vtree.Entry{Name: c.name, Kind: c.kind}) {
				return
			}
		}
	}, nil
}

// Walk visits every node below the root in pre-order, parents before
// children. Root children have depth 1. An error from fn stops the walk.
func (fs *FileSystem) Walk(fn func(n vtree.NodeInfo, depth int) error) error {
	return walkPre(fs.root, 0, func(n *Node, depth int) error {
		return fn(n, depth)
	})
}

func walkPre(n *Node, depth int, fn func(*Node, int) error) error {
	for _, c := range n.children {
		if err := fn(c, depth+1); err != nil {
			return err
		}
		if err := walkPre(c, depth+1, fn); err != nil {
			return err
		}
	}
	return nil
}

// walkPost visits every node below n children first
func walkPost(n *Node, fn func(*Node)) {
	for _, c := range n.children {
		walkPost(c, fn)
		fn(c)
	}
}

// Find returns every node whose absolute path matches the doublestar pattern.
// Relative patterns are anchored at the current directory.
func (fs *FileSystem) Find(pattern string) ([]vtree.NodeInfo, error) {
	if pattern == "" {
		return nil, errors.Wrap(vtree.ErrInvalidArgument, "missing pattern")
	}
	if !IsAbs(pattern) {
		pattern = joinPath(escapeMeta(fs.Pwd()), pattern)
	}
	if !doublestar.ValidatePattern(pattern) {
		return nil, errors.Wrapf(vtree.ErrInvalidArgument, "bad pattern %q", pattern)
	}

	var found []vtree.NodeInfo
	err := walkPre(fs.root, 0, func(n *Node, _ int) error {
		p, err := n.Path()
		if err != nil {
			return err
		}
		ok, err := doublestar.Match(pattern, p)
		if err != nil {
			return errors.Wrapf(vtree.ErrInvalidArgument, "bad pattern %q: %v", pattern, err)
		}
		if ok {
			found = append(found, n)
		}
		return nil
	})
	return found, err
}

// Clear releases every node below the root children first and resets the
// current directory to the root.
func (fs *FileSystem) Clear() {
	logger := util.GetLogger("FS.Clear")

	cnt := 0
	walkPost(fs.root, func(n *Node) {
		if n.index != nil {
			n.index.Clear()
		}
		n.children = nil
		n.parent = nil
		n.Del()
		cnt++
	})
	fs.root.children = nil
	fs.root.index.Clear()
	fs.current = fs.root
	logger.Info().Int("released", cnt).Msg("Cleared tree")
}

// Len returns the number of nodes below the root
func (fs *FileSystem) Len() int {
	cnt := 0
	_ = walkPre(fs.root, 0, func(*Node, int) error {
		cnt++
		return nil
	})
	return cnt
}
