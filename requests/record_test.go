package requests

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/brettbedarf/vtree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRecord(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		line    string
		want    vtree.CreateRequest
		end     bool
		wantErr error
	}{
		{"dir", "d /a", vtree.NewDirRequest("/a"), false, nil},
		{"file_nested", "f /a/b/c.txt", vtree.NewFileRequest("/a/b/c.txt"), false, nil},
		{"crlf", "d /a\r", vtree.NewDirRequest("/a"), false, nil},
		{"name_with_space", "f /a/my file", vtree.NewFileRequest("/a/my file"), false, nil},
		{"sentinel", "x /", vtree.CreateRequest{}, true, nil},
		{"bare_sentinel", "x", vtree.CreateRequest{}, true, nil},
		{"unknown_kind", "q /a", vtree.CreateRequest{}, false, vtree.ErrInvalidArgument},
		{"no_path", "d", vtree.CreateRequest{}, false, vtree.ErrInvalidArgument},
		{"relative", "d a/b", vtree.CreateRequest{}, false, vtree.ErrInvalidArgument},
		{"long_code", "dd /a", vtree.CreateRequest{}, false, vtree.ErrInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req, end, err := ParseRecord(tt.line)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.end, end)
			assert.Equal(t, tt.want, req)
		})
	}
}

func TestFormatRecord(t *testing.T) {
	t.Parallel()

	line, err := FormatRecord(vtree.NewDirRequest("/a/b"))
	require.NoError(t, err)
	assert.Equal(t, "d /a/b", line)

	line, err = FormatRecord(vtree.NewFileRequest("/a/b/c"))
	require.NoError(t, err)
	assert.Equal(t, "f /a/b/c", line)

	_, err = FormatRecord(vtree.NewDirRequest("a"))
	assert.ErrorIs(t, err, vtree.ErrInvalidArgument)

	_, err = FormatRecord(vtree.NewFileRequest("/a\nb"))
	assert.ErrorIs(t, err, vtree.ErrInvalidArgument)
}

func TestEncoder(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	enc := NewEncoder(&buf)
	require.NoError(t, enc.Encode(vtree.NewDirRequest("/a")))
	require.NoError(t, enc.Encode(vtree.NewFileRequest("/a/b")))
	assert.Empty(t, buf.String(), "records are buffered until Close")

	require.NoError(t, enc.Close())
	assert.Equal(t, "d /a\nf /a/b\nx /\n", buf.String())
	assert.Equal(t, 2, enc.Count())
}

func TestEncoder_EmptyTree(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	enc := NewEncoder(&buf)
	require.NoError(t, enc.Close())
	assert.Equal(t, "x /\n", buf.String())
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestEncoder_WriteFailure(t *testing.T) {
	t.Parallel()

	enc := NewEncoder(failWriter{})
	require.NoError(t, enc.Encode(vtree.NewDirRequest("/a")))
	err := enc.Close()
	assert.ErrorIs(t, err, vtree.ErrIOFailure)
}

func TestDecoder_StopsAtSentinel(t *testing.T) {
	t.Parallel()

	in := "d /a\n\nf /a/b\nx /\nd /ignored\n"
	reqs, err := DecodeAll(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []vtree.CreateRequest{
		vtree.NewDirRequest("/a"),
		vtree.NewFileRequest("/a/b"),
	}, reqs)
}

func TestDecoder_MissingSentinel(t *testing.T) {
	t.Parallel()

	reqs, err := DecodeAll(strings.NewReader("d /a\nd /a/b"))
	require.NoError(t, err)
	assert.Len(t, reqs, 2)
}

func TestDecoder_NextAfterEnd(t *testing.T) {
	t.Parallel()

	dec := NewDecoder(strings.NewReader("x /\nd /a\n"))
	_, ok, err := dec.Next()
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = dec.Next()
	require.NoError(t, err)
	assert.False(t, ok, "decoder stays finished after the sentinel")
}

func TestDecoder_Malformed(t *testing.T) {
	t.Parallel()

	_, err := DecodeAll(strings.NewReader("d /a\nbogus\nx /\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, vtree.ErrInvalidArgument)
	assert.Contains(t, err.Error(), "line 2")
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	in := []vtree.CreateRequest{
		vtree.NewDirRequest("/a"),
		vtree.NewDirRequest("/a/b"),
		vtree.NewFileRequest("/a/b/c"),
		vtree.NewFileRequest("/d"),
	}
	var buf bytes.Buffer
	enc := NewEncoder(&buf)
	for _, req := range in {
		require.NoError(t, enc.Encode(req))
	}
	require.NoError(t, enc.Close())

	out, err := DecodeAll(&buf)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}
