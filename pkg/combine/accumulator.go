package combine

import (
	"bytes"
	"io"
)

// Accumulator is a growable, append-only text buffer shared across encode
// calls. The combine functions only ever append to it; existing content is
// never read back or rewritten.
//
// An Accumulator provides no locking. Callers that share one across
// goroutines must serialize access themselves.
type Accumulator struct {
	buf []byte
}

// NewAccumulator creates an Accumulator, pre-sized to hold sizeHint bytes
// without growing. A zero or negative hint is fine, the buffer grows on
// demand either way. The zero value of Accumulator is also usable.
func NewAccumulator(sizeHint int) *Accumulator {
	acc := new(Accumulator)
	if sizeHint > 0 {
		acc.buf = make([]byte, 0, sizeHint)
	}
	return acc
}

// appendPair extends the buffer by name followed immediately by encoded, with
// no delimiter. This is the only way content enters an Accumulator, and it
// cannot partially apply.
func (a *Accumulator) appendPair(name string, encoded []byte) {
	a.buf = append(append(a.buf, name...), encoded...)
}

// Len returns the current content length in bytes.
func (a *Accumulator) Len() int {
	return len(a.buf)
}

// Bytes returns a copy of the accumulated content.
func (a *Accumulator) Bytes() []byte {
	return bytes.Clone(a.buf)
}

// String returns the accumulated content as a string.
func (a *Accumulator) String() string {
	return string(a.buf)
}

// WriteTo writes the accumulated content to w, satisfying io.WriterTo.
func (a *Accumulator) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(a.buf)
	return int64(n), err
}

// Reset discards all accumulated content, retaining the underlying buffer.
func (a *Accumulator) Reset() {
	a.buf = a.buf[:0]
}
