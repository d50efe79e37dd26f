package filesystem

import (
	"testing"

	"github.com/brettbedarf/vtree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildResolveTree returns a root holding /a (dir), /a/b (dir), /a/b/f (file)
// and /g (file)
func buildResolveTree(t *testing.T) *Node {
	t.Helper()

	root := newRootNode()
	a := NewNode("a", vtree.Directory)
	b := NewNode("b", vtree.Directory)
	root.AddChild(a)
	a.AddChild(b)
	b.AddChild(NewNode("f", vtree.File))
	root.AddChild(NewNode("g", vtree.File))
	return root
}

func TestResolve(t *testing.T) {
	t.Parallel()

	root := buildResolveTree(t)

	tests := []struct {
		name     string
		segs     []string
		filter   Filter
		wantPath string
		wantErr  bool
	}{
		{"empty_dir_filter", nil, MustBeDirectory, "/", false},
		{"empty_any", nil, Any, "/", false},
		{"empty_file_filter", nil, MustBeFile, "", true},
		{"dir", []string{"a", "b"}, MustBeDirectory, "/a/b", false},
		{"file", []string{"a", "b", "f"}, MustBeFile, "/a/b/f", false},
		{"any_file", []string{"g"}, Any, "/g", false},
		{"kind_mismatch_final", []string{"a"}, MustBeFile, "", true},
		{"file_as_dir", []string{"g"}, MustBeDirectory, "", true},
		{"missing", []string{"a", "x"}, Any, "", true},
		{"through_file", []string{"g", "x"}, Any, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			n, err := Resolve(root, tt.segs, tt.filter)
			if tt.wantErr {
				assert.ErrorIs(t, err, vtree.ErrPathNotFound)
				assert.Nil(t, n)
				return
			}
			require.NoError(t, err)
			p, err := n.Path()
			require.NoError(t, err)
			assert.Equal(t, tt.wantPath, p)
		})
	}
}

func TestResolve_IntermediateNotKindChecked(t *testing.T) {
	t.Parallel()

	root := buildResolveTree(t)
	a, ok := root.GetChild("a")
	require.True(t, ok)

	// MustBeFile only applies to the last segment; "b" is a directory
	n, err := Resolve(a, []string{"b", "f"}, MustBeFile)
	require.NoError(t, err)
	assert.Equal(t, "f", n.Name())
}

func TestFilterFor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, MustBeDirectory, FilterFor(vtree.Directory))
	assert.Equal(t, MustBeFile, FilterFor(vtree.File))
}
