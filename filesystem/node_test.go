package filesystem

import (
	"testing"

	"github.com/brettbedarf/vtree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(nodes []*Node) []string {
	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n.Name())
	}
	return out
}

func TestNode_AddChild(t *testing.T) {
	t.Parallel()

	parent := NewNode("parent", vtree.Directory)
	child := NewNode("child.txt", vtree.File)

	require.True(t, parent.AddChild(child))

	retrievedChild, exists := parent.GetChild("child.txt")
	require.True(t, exists)
	assert.Same(t, child, retrievedChild)
	assert.Same(t, parent, child.Parent())
}

func TestNode_AddChild_Prepends(t *testing.T) {
	t.Parallel()

	parent := NewNode("parent", vtree.Directory)
	for _, name := range []string{"a", "b", "c"} {
		parent.AddChild(NewNode(name, vtree.File))
	}

	assert.Equal(t, []string{"c", "b", "a"}, names(parent.Children()), "newest child must come first")
}

func TestNode_AddChild_ToFile(t *testing.T) {
	t.Parallel()

	file := NewNode("f", vtree.File)
	child := NewNode("x", vtree.File)

	assert.False(t, file.AddChild(child))
	assert.Nil(t, child.Parent())
	_, ok := file.GetChild("x")
	assert.False(t, ok, "files never have children")
}

func TestNode_GetChild(t *testing.T) {
	t.Parallel()

	parent := NewNode("parent", vtree.Directory)
	child := NewNode("child.txt", vtree.File)
	parent.AddChild(child)

	retrievedChild, exists := parent.GetChild("child.txt")
	assert.True(t, exists)
	assert.Same(t, child, retrievedChild)

	nonExistentChild, exists := parent.GetChild("nonexistent.txt")
	assert.False(t, exists)
	assert.Nil(t, nonExistentChild)
}

func TestNode_RemoveChild(t *testing.T) {
	t.Parallel()

	parent := NewNode("parent", vtree.Directory)
	for _, name := range []string{"a", "b", "c"} {
		parent.AddChild(NewNode(name, vtree.File))
	}

	removed, ok := parent.RemoveChild("b")
	require.True(t, ok)
	assert.Equal(t, "b", removed.Name())
	assert.Nil(t, removed.Parent(), "parent reference must be cleared")

	_, exists := parent.GetChild("b")
	assert.False(t, exists)
	assert.Equal(t, []string{"c", "a"}, names(parent.Children()))

	_, ok = parent.RemoveChild("nonexistent.txt")
	assert.False(t, ok)
}

func TestNode_RemoveChild_KeepsSnapshot(t *testing.T) {
	t.Parallel()

	parent := NewNode("parent", vtree.Directory)
	parent.AddChild(NewNode("a", vtree.File))
	parent.AddChild(NewNode("b", vtree.File))
	snapshot := parent.Children()

	parent.RemoveChild("b")

	assert.Equal(t, []string{"b", "a"}, names(snapshot), "earlier Children result must not change")
}

func TestNode_Path(t *testing.T) {
	t.Parallel()

	root := newRootNode()
	a := NewNode("a", vtree.Directory)
	b := NewNode("b", vtree.Directory)
	c := NewNode("c.txt", vtree.File)
	root.AddChild(a)
	a.AddChild(b)
	b.AddChild(c)

	tests := []struct {
		node *Node
		want string
	}{
		{root, "/"},
		{a, "/a"},
		{b, "/a/b"},
		{c, "/a/b/c.txt"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			p, err := tt.node.Path()
			require.NoError(t, err)
			assert.Equal(t, tt.want, p)
		})
	}
}

func TestNode_Path_Detached(t *testing.T) {
	t.Parallel()

	n := NewNode("orphan", vtree.File)
	p, err := n.Path()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "detached node")
	assert.Equal(t, "orphan", p)
}

func TestNode_Path_Deleted(t *testing.T) {
	t.Parallel()

	root := newRootNode()
	a := NewNode("a", vtree.Directory)
	root.AddChild(a)
	a.Del()

	_, err := a.Path()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deleted node")
	assert.True(t, a.IsDel())
}

func TestNode_Path_Nil(t *testing.T) {
	t.Parallel()

	var n *Node
	_, err := n.Path()
	assert.Error(t, err)
}

func TestNode_Root(t *testing.T) {
	t.Parallel()

	root := newRootNode()
	assert.True(t, root.IsRoot())
	assert.True(t, root.IsDir())
	assert.Empty(t, root.Name())
	assert.Nil(t, root.Parent())

	assert.False(t, NewNode("a", vtree.Directory).IsRoot(), "detached nodes are not the root")
}

func TestNode_Depth(t *testing.T) {
	t.Parallel()

	root := newRootNode()
	a := NewNode("a", vtree.Directory)
	b := NewNode("b", vtree.File)
	root.AddChild(a)
	a.AddChild(b)

	assert.Zero(t, root.Depth())
	assert.Equal(t, 1, a.Depth())
	assert.Equal(t, 2, b.Depth())
}
