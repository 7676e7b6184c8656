package xor

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
)

// GenKey will generate a Key with the given length from the OS entropy pool.
func GenKey(length int) (Key, error) {
	if length <= 0 {
		return nil, errors.New("asked to generate a key without length")
	}
	key := make(Key, length)
	n, err := rand.Read(key)
	if n < length {
		return nil, fmt.Errorf("failed to read requested bytes: %v", err)
	}
	return key, nil
}

// GenKeyAndOffset will generate a Key with the given length, along with a
// random starting offset within it.
func GenKeyAndOffset(length int) (Key, int, error) {
	key, err := GenKey(length)
	if err != nil {
		return nil, 0, err
	}
	buf := make([]byte, 4)
	if _, err := rand.Read(buf); err != nil {
		return nil, 0, err
	}
	return key, int(binary.BigEndian.Uint32(buf)) % length, nil
}
