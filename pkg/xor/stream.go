package xor

import (
	"bytes"
	"fmt"
	"io"
)

// keyStream tracks the current position within a Key so the cipher can be
// applied across multiple reads or writes without restarting the cycle.
type keyStream struct {
	key  Key
	init int
	cur  int
}

func newKeyStream(key Key, offset int) (*keyStream, error) {
	if len(key) == 0 {
		return nil, ErrEmptyKey
	}
	if offset < 0 || offset >= len(key) {
		return nil, fmt.Errorf("offset %d out of range for key of len %d", offset, len(key))
	}
	return &keyStream{
		key:  key,
		init: offset,
		cur:  offset,
	}, nil
}

func (s *keyStream) apply(b []byte) {
	for i := range b {
		b[i] ^= s.key[s.cur]
		s.cur = (s.cur + 1) % len(s.key)
	}
}

func (s *keyStream) rewind() {
	s.cur = s.init
}

// Reader extends io.Reader, but also provides a way to reuse a key with a different source.
type Reader interface {
	io.Reader
	// Reset will use the provided io.Reader and rewind the key position to its initial offset.
	Reset(source io.Reader)
}

// Writer extends io.Writer, but also provides a way to reuse a key with a different target.
type Writer interface {
	io.Writer
	// Reset will use the provided io.Writer and rewind the key position to its initial offset.
	Reset(target io.Writer)
}

var _ Reader = (*reader)(nil)

type reader struct {
	source io.Reader
	stream *keyStream
}

// NewReader constructs a new Reader that screens every byte read from r with
// the given key, starting at offset.
func NewReader(r io.Reader, key Key, offset int) (Reader, error) {
	stream, err := newKeyStream(key, offset)
	if err != nil {
		return nil, err
	}
	return &reader{
		source: r,
		stream: stream,
	}, nil
}

func (r *reader) Read(out []byte) (int, error) {
	n, err := r.source.Read(out)
	r.stream.apply(out[:n])
	return n, err
}

func (r *reader) Reset(source io.Reader) {
	r.source = source
	r.stream.rewind()
}

var _ Writer = (*writer)(nil)

type writer struct {
	target io.Writer
	stream *keyStream
}

// NewWriter constructs a new Writer that screens every byte written to target
// with the given key, starting at offset.
func NewWriter(target io.Writer, key Key, offset int) (Writer, error) {
	stream, err := newKeyStream(key, offset)
	if err != nil {
		return nil, err
	}
	return &writer{
		target: target,
		stream: stream,
	}, nil
}

func (w *writer) Write(in []byte) (int, error) {
	buf := bytes.Clone(in)
	w.stream.apply(buf)
	return w.target.Write(buf)
}

func (w *writer) Reset(target io.Writer) {
	w.target = target
	w.stream.rewind()
}
