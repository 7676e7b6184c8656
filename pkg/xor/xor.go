package xor

import (
	"errors"
	"fmt"
)

// ErrEmptyKey indicates that a zero-length key was given.
// A zero-length key has no cycle to repeat, so it must be rejected rather
// than silently leaving the data untouched.
var ErrEmptyKey = errors.New("cannot use empty key")

// Key is a repeating XOR key.
// It is read-only once created, and may therefore be shared across
// goroutines without synchronization.
type Key []byte

// Transform applies the repeating-key cipher to data in place, starting from
// the first key byte.
// Applying Transform twice with the same Key restores the original bytes.
func (k Key) Transform(data []byte) error {
	return k.TransformOffset(data, 0)
}

// TransformOffset applies the repeating-key cipher to data in place, starting
// from the key byte at offset.
// The offset must be in the range [0, len(k)).
func (k Key) TransformOffset(data []byte, offset int) error {
	if len(k) == 0 {
		return ErrEmptyKey
	}
	if offset < 0 || offset >= len(k) {
		return fmt.Errorf("offset %d out of range for key of len %d", offset, len(k))
	}
	cur := offset
	for i := range data {
		data[i] ^= k[cur]
		cur = (cur + 1) % len(k)
	}
	return nil
}
