package filesystem

import (
	"io"

	"github.com/brettbedarf/vtree"
	"github.com/brettbedarf/vtree/internal/util"
	"github.com/brettbedarf/vtree/requests"
	"github.com/pkg/errors"
)

// Save writes one record per node in pre-order, so every parent precedes its
// children, followed by the sentinel. The root itself is not written.
// Siblings are written oldest first so that a reload, which prepends, gives
// back the same listing order.
func (fs *FileSystem) Save(w io.Writer) error {
	logger := util.GetLogger("FS.Save")

	enc := requests.NewEncoder(w)
	err := walkPreOldest(fs.root, func(n *Node) error {
		p, err := n.Path()
		if err != nil {
			return err
		}
		return enc.Encode(vtree.CreateRequest{Path: p, Kind: n.kind})
	})
	if err != nil {
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}
	logger.Info().Int("records", enc.Count()).Msg("Saved tree")
	return nil
}

// Reload replaces the tree with the records read from r. The input is parsed
// in full before anything changes, so a read or parse error leaves the tree
// as it was. Otherwise the tree is cleared, current is reset to the root and
// every record is replayed through Create.
//
// Returns the number of nodes created. Records that fail to replay are
// skipped and reported together in the returned error.
func (fs *FileSystem) Reload(r io.Reader) (int, error) {
	logger := util.GetLogger("FS.Reload")

	reqs, err := requests.DecodeAll(r)
	if err != nil {
		return 0, err
	}

	fs.Clear()
	created, skipped := 0, 0
	for _, req := range reqs {
		if _, err := fs.Create(req); err != nil {
			logger.Warn().Err(err).Str("path", req.Path).Msg("Skipping record")
			skipped++
			continue
		}
		created++
	}
	logger.Info().Int("created", created).Int("skipped", skipped).Msg("Reloaded tree")
	if skipped > 0 {
		return created, errors.Wrapf(vtree.ErrInvalidArgument, "%d of %d records skipped", skipped, len(reqs))
	}
	return created, nil
}

// walkPreOldest is a pre-order walk visiting siblings in creation order
func walkPreOldest(n *Node, fn func(*Node) error) error {
	for i := len(n.children) - 1; i >= 0; i-- {
		c := n.children[i]
		if err := fn(c); err != nil {
			return err
		}
		if err := walkPreOldest(c, fn); err != nil {
			return err
		}
	}
	return nil
}
