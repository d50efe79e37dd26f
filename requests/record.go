// Package requests encodes and decodes the flat record listing used to persist
// a tree. Each record is "<kind-code> <absolute-path>" on its own line and the
// listing ends with the sentinel record "x /".
package requests

import (
	"strings"

	"github.com/brettbedarf/vtree"
	"github.com/pkg/errors"
)

// Sentinel record terminating a listing
const (
	SentinelCode byte = 'x'
	Sentinel          = "x /"
)

// FormatRecord renders req as a single record line without the newline
func FormatRecord(req vtree.CreateRequest) (string, error) {
	if !strings.HasPrefix(req.Path, "/") {
		return "", errors.Wrapf(vtree.ErrInvalidArgument, "record path %q is not absolute", req.Path)
	}
	if strings.ContainsAny(req.Path, "\n\r") {
		return "", errors.Wrapf(vtree.ErrInvalidArgument, "record path %q spans lines", req.Path)
	}
	return string(req.Kind.Code()) + " " + req.Path, nil
}

// ParseRecord parses one record line. end is true for the sentinel, in which
// case req is zero.
func ParseRecord(line string) (req vtree.CreateRequest, end bool, err error) {
	line = strings.TrimRight(line, "\r")
	code, p, ok := strings.Cut(line, " ")
	if code == string(SentinelCode) {
		return req, true, nil
	}
	if !ok || len(code) != 1 {
		return req, false, errors.Wrapf(vtree.ErrInvalidArgument, "malformed record %q", line)
	}
	kind, err := vtree.KindFromCode(code[0])
	if err != nil {
		return req, false, errors.Wrapf(err, "record %q", line)
	}
	if !strings.HasPrefix(p, "/") {
		return req, false, errors.Wrapf(vtree.ErrInvalidArgument, "record path %q is not absolute", p)
	}
	return vtree.CreateRequest{Path: p, Kind: kind}, false, nil
}
