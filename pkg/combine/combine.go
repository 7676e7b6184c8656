package combine

import (
	"encoding/base64"
	"errors"
	"fmt"
	"sync"

	"github.com/packetmill/xorpack/pkg/xor"
)

var (
	// ErrInvalidArgument indicates that a required argument was absent.
	// Nothing is mutated when this is returned.
	ErrInvalidArgument = errors.New("missing required argument")
	// ErrShortBuffer indicates that a scratch buffer was sized below the
	// exact Base64 requirement. Scratch is always sized by that formula, so
	// seeing this error means a defect, not a runtime condition.
	ErrShortBuffer = errors.New("scratch buffer too small for encoded value")
)

// Scratch buffers below this size are pooled and reused across calls.
const pooledScratchSize = 512

var scratch = sync.Pool{
	New: func() any {
		return make([]byte, pooledScratchSize)
	},
}

func getScratch(n int) []byte {
	buf := scratch.Get().([]byte)
	if cap(buf) < n {
		return make([]byte, n)
	}
	return buf[:n]
}

func putScratch(buf []byte) {
	if cap(buf) > pooledScratchSize {
		return
	}
	scratch.Put(buf[:cap(buf)])
}

// encodeValue writes the standard, padded Base64 encoding of src into dst and
// returns the encoded slice. dst must hold at least EncodedLen(len(src))
// bytes, which is 4*ceil(len(src)/3).
func encodeValue(dst, src []byte) ([]byte, error) {
	need := base64.StdEncoding.EncodedLen(len(src))
	if len(dst) < need {
		return nil, fmt.Errorf("%w: need %d, have %d", ErrShortBuffer, need, len(dst))
	}
	base64.StdEncoding.Encode(dst, src)
	return dst[:need], nil
}

// Combiner screens values with a shared key and packs them into an
// Accumulator. The key is fixed at construction and read-only afterward, so
// a Combiner may be shared across goroutines.
type Combiner struct {
	key    xor.Key
	offset int
}

// CombinerOpt adjusts a Combiner during construction.
type CombinerOpt = func(*Combiner) error

// WithOffset sets the starting offset within the key, matching the offset the
// key was generated or stored with. The default is 0.
func WithOffset(offset int) CombinerOpt {
	return func(c *Combiner) error {
		if offset < 0 || offset >= len(c.key) {
			return fmt.Errorf("offset %d out of range for key of len %d", offset, len(c.key))
		}
		c.offset = offset
		return nil
	}
}

// NewCombiner creates a Combiner for the given key.
func NewCombiner(key xor.Key, opts ...CombinerOpt) (*Combiner, error) {
	if len(key) == 0 {
		return nil, xor.ErrEmptyKey
	}
	c := &Combiner{
		key: key,
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// EncodeAppend screens value in place with the Combiner's key, Base64 encodes
// the result, and appends name followed immediately by the encoded text to
// acc.
//
// On success, acc grows by exactly len(name) + 4*ceil(len(value)/3) bytes and
// value holds ciphertext. On any error, acc is untouched and value is
// unmodified.
func (c *Combiner) EncodeAppend(name string, value []byte, acc *Accumulator) error {
	switch {
	case len(name) == 0:
		return fmt.Errorf("%w: name", ErrInvalidArgument)
	case value == nil:
		return fmt.Errorf("%w: value", ErrInvalidArgument)
	case acc == nil:
		return fmt.Errorf("%w: accumulator", ErrInvalidArgument)
	}

	buf := getScratch(base64.StdEncoding.EncodedLen(len(value)))
	defer putScratch(buf)

	if err := c.key.TransformOffset(value, c.offset); err != nil {
		return err
	}
	encoded, err := encodeValue(buf, value)
	if err != nil {
		return err
	}
	acc.appendPair(name, encoded)
	return nil
}

// EncodeAppend is the one-shot form of Combiner.EncodeAppend for callers that
// don't hold a Combiner. The key starts at offset 0.
func EncodeAppend(name string, value []byte, key xor.Key, acc *Accumulator) error {
	c, err := NewCombiner(key)
	if err != nil {
		return err
	}
	return c.EncodeAppend(name, value, acc)
}
