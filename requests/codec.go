package requests

import (
	"bufio"
	"io"

	"github.com/brettbedarf/vtree"
	"github.com/pkg/errors"
)

// Encoder writes records to an underlying writer. Close must be called to
// emit the sentinel and flush.
type Encoder struct {
	w   *bufio.Writer
	cnt int
}

func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: bufio.NewWriter(w)}
}

// Encode writes one record
func (e *Encoder) Encode(req vtree.CreateRequest) error {
	line, err := FormatRecord(req)
	if err != nil {
		return err
	}
	if _, err := e.w.WriteString(line + "\n"); err != nil {
		return errors.Wrap(vtree.ErrIOFailure, err.Error())
	}
	e.cnt++
	return nil
}

// Count returns the number of records encoded so far, sentinel excluded
func (e *Encoder) Count() int {
	return e.cnt
}

// Close writes the sentinel and flushes buffered records. It does not close
// the underlying writer.
func (e *Encoder) Close() error {
	if _, err := e.w.WriteString(Sentinel + "\n"); err != nil {
		return errors.Wrap(vtree.ErrIOFailure, err.Error())
	}
	if err := e.w.Flush(); err != nil {
		return errors.Wrap(vtree.ErrIOFailure, err.Error())
	}
	return nil
}

// Decoder reads records line by line until the sentinel or end of input
type Decoder struct {
	s    *bufio.Scanner
	line int
	done bool
}

func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{s: bufio.NewScanner(r)}
}

// Next returns the next record. ok is false once the sentinel or end of input
// has been reached. Blank lines are skipped. Parse errors carry the line number.
func (d *Decoder) Next() (req vtree.CreateRequest, ok bool, err error) {
	for !d.done && d.s.Scan() {
		d.line++
		text := d.s.Text()
		if text == "" {
			continue
		}
		req, end, err := ParseRecord(text)
		if err != nil {
			return req, false, errors.Wrapf(err, "line %d", d.line)
		}
		if end {
			d.done = true
			return req, false, nil
		}
		return req, true, nil
	}
	d.done = true
	if err := d.s.Err(); err != nil {
		return req, false, errors.Wrap(vtree.ErrIOFailure, err.Error())
	}
	return req, false, nil
}

// DecodeAll reads every record up to the sentinel
func DecodeAll(r io.Reader) ([]vtree.CreateRequest, error) {
	dec := NewDecoder(r)
	var reqs []vtree.CreateRequest
	for {
		req, ok, err := dec.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return reqs, nil
		}
		reqs = append(reqs, req)
	}
}
