package filesystem

import (
	"fmt"

	"github.com/brettbedarf/vtree"
	"github.com/puzpuzpuz/xsync/v4"
)

// Node is one entry of the namespace tree. Directories own their children;
// parent is a non-owning back reference used for path reconstruction.
type Node struct {
	name     string
	kind     vtree.Kind
	parent   *Node
	children []*Node                   // most recently added first
	index    *xsync.Map[string, *Node] // children by name; nil for files
	root     bool
	isDel    bool
}

var _ vtree.NodeInfo = (*Node)(nil)

// NewNode creates a detached Node.
//
// NOTE: Parent node is responsible for adding itself to the returned Node's
// parent ref when linking it as a child
func NewNode(name string, kind vtree.Kind) *Node {
	n := &Node{name: name, kind: kind}
	if kind == vtree.Directory {
		n.index = xsync.NewMap[string, *Node]()
	}
	return n
}

func newRootNode() *Node {
	n := NewNode("", vtree.Directory)
	n.root = true
	return n
}

// Name returns the node's name; empty for the root
func (n *Node) Name() string {
	return n.name
}

func (n *Node) Kind() vtree.Kind {
	return n.kind
}

func (n *Node) IsDir() bool {
	return n.kind == vtree.Directory
}

func (n *Node) Parent() *Node {
	return n.parent
}

func (n *Node) IsRoot() bool {
	return n.root
}

// Depth returns the number of ancestors of the node, which for an attached
// node is the segment count of its absolute path; 0 for the root
func (n *Node) Depth() int {
	d := 0
	for cur := n; cur.parent != nil; cur = cur.parent {
		d++
	}
	return d
}

// Path returns the absolute path of the node; "/" for the root.
//
// Returns an error if the node or an ancestor is detached or deleted, along
// with the path up to the first detached or deleted node
func (n *Node) Path() (string, error) {
	if n == nil {
		return "", fmt.Errorf("nil node")
	}
	if n.root {
		return "/", nil
	}
	if n.isDel {
		return "", fmt.Errorf("deleted node: %s", n.name)
	}
	p := n.parent
	// handle detached node
	if p == nil {
		return n.name, fmt.Errorf("detached node: %s", n.name)
	}

	pPath, err := p.Path()
	if pPath == "/" {
		return pPath + n.name, err
	}
	return pPath + "/" + n.name, err
}

// AddChild links child at the front of the node's children and sets the
// child's parent to this node. Adding to a file node is a no-op returning false.
func (n *Node) AddChild(child *Node) bool {
	if n.index == nil {
		return false
	}
	n.children = append([]*Node{child}, n.children...)
	n.index.Store(child.name, child)
	child.parent = n
	return true
}

// GetChild returns the child with the given name. Files have no children.
func (n *Node) GetChild(name string) (child *Node, ok bool) {
	if n.index == nil {
		return nil, false
	}
	return n.index.Load(name)
}

// RemoveChild unlinks the named child and returns it
func (n *Node) RemoveChild(name string) (*Node, bool) {
	if n.index == nil {
		return nil, false
	}
	child, exists := n.index.LoadAndDelete(name)
	if !exists {
		return nil, false
	}
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i:i], n.children[i+1:]...)
			break
		}
	}
	child.parent = nil
	return child, true
}

// Children returns the node's children in listing order. The returned slice
// must not be modified.
func (n *Node) Children() []*Node {
	return n.children
}

func (n *Node) HasChildren() bool {
	return len(n.children) > 0
}

func (n *Node) IsDel() bool {
	return n.isDel
}

// Del marks the node as deleted
func (n *Node) Del() {
	n.isDel = true
}
