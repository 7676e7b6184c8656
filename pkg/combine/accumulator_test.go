package combine

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccumulator(t *testing.T) {
	acc := NewAccumulator(16)
	assert.Zero(t, acc.Len())
	assert.Empty(t, acc.String())

	acc.appendPair("name", []byte("dmFsdWU="))
	assert.Equal(t, "namedmFsdWU=", acc.String())
	assert.Equal(t, 12, acc.Len())

	var out bytes.Buffer
	n, err := acc.WriteTo(&out)
	assert.NoError(t, err)
	assert.Equal(t, int64(12), n)
	assert.Equal(t, acc.String(), out.String())

	acc.Reset()
	assert.Zero(t, acc.Len())
}

func TestAccumulator_ZeroValue(t *testing.T) {
	var acc Accumulator
	acc.appendPair("a", []byte("Yg=="))
	assert.Equal(t, "aYg==", acc.String())
}

func TestAccumulator_BytesIsACopy(t *testing.T) {
	acc := new(Accumulator)
	acc.appendPair("a", []byte("Yg=="))
	snapshot := acc.Bytes()
	snapshot[0] = 'z'
	assert.Equal(t, "aYg==", acc.String())
}
