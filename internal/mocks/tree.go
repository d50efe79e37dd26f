package mocks

import (
	"io"
	"iter"

	"github.com/brettbedarf/vtree"
	"github.com/stretchr/testify/mock"
)

// MockTree implements vtree.Tree for testing across packages
type MockTree struct {
	mock.Mock
}

var _ vtree.Tree = (*MockTree)(nil)

func (m *MockTree) Create(req vtree.CreateRequest) (vtree.NodeInfo, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(vtree.NodeInfo), args.Error(1)
}

func (m *MockTree) Delete(path string, kind vtree.Kind) error {
	return m.Called(path, kind).Error(0)
}

func (m *MockTree) Chdir(path string) error {
	return m.Called(path).Error(0)
}

func (m *MockTree) Pwd() string {
	return m.Called().String(0)
}

func (m *MockTree) List(path string) (iter.Seq[vtree.Entry], error) {
	args := m.Called(path)

	// Allow plain slices for simple listings
	if entries, ok := args.Get(0).([]vtree.Entry); ok {
		return func(yield func(vtree.Entry) bool) {
			for _, e := range entries {
				if !yield(e) {
					return
				}
			}
		}, args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(iter.Seq[vtree.Entry]), args.Error(1)
}

func (m *MockTree) Walk(fn func(n vtree.NodeInfo, depth int) error) error {
	return m.Called(fn).Error(0)
}

func (m *MockTree) Find(pattern string) ([]vtree.NodeInfo, error) {
	args := m.Called(pattern)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]vtree.NodeInfo), args.Error(1)
}

func (m *MockTree) Clear() {
	m.Called()
}

func (m *MockTree) Save(w io.Writer) error {
	args := m.Called(w)

	// Handle function return types to let tests write through w
	if fn, ok := args.Get(0).(func(io.Writer) error); ok {
		return fn(w)
	}
	return args.Error(0)
}

func (m *MockTree) Reload(r io.Reader) (int, error) {
	args := m.Called(r)

	if fn, ok := args.Get(0).(func(io.Reader) (int, error)); ok {
		return fn(r)
	}
	return args.Int(0), args.Error(1)
}

// MockNode is a fixed vtree.NodeInfo
type MockNode struct {
	NodeName string
	NodeKind vtree.Kind
	NodePath string
	PathErr  error
}

func (n *MockNode) Name() string          { return n.NodeName }
func (n *MockNode) Kind() vtree.Kind      { return n.NodeKind }
func (n *MockNode) Path() (string, error) { return n.NodePath, n.PathErr }
