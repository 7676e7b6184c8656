package keyfile

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/packetmill/xorpack/pkg/xor"
	"github.com/stretchr/testify/assert"
)

func TestGenerate(t *testing.T) {
	f, err := Generate(DefaultKeyLength)
	assert.NoError(t, err)
	assert.Len(t, f.Key, DefaultKeyLength)
	assert.GreaterOrEqual(t, f.Offset, 0)
	assert.Less(t, f.Offset, DefaultKeyLength)
}

func TestGenerate_Neg(t *testing.T) {
	_, err := Generate(0)
	assert.Error(t, err)
}

func TestKeyFile_WriteRead(t *testing.T) {
	orig := &KeyFile{
		Key:    xor.Key{0xde, 0xad, 0xbe, 0xef},
		Offset: 2,
	}
	var buf bytes.Buffer
	assert.NoError(t, orig.Write(&buf))

	loaded := new(KeyFile)
	assert.NoError(t, loaded.Read(&buf))
	assert.Equal(t, orig.Key, loaded.Key)
	assert.Equal(t, orig.Offset, loaded.Offset)
}

func TestKeyFile_Write_Neg(t *testing.T) {
	var buf bytes.Buffer
	err := (&KeyFile{}).Write(&buf)
	assert.ErrorIs(t, err, ErrBadKeyFile)

	err = (&KeyFile{Key: xor.Key{0x01}, Offset: 1}).Write(&buf)
	assert.ErrorIs(t, err, ErrBadKeyFile)
	assert.Zero(t, buf.Len())
}

func TestKeyFile_Read_Neg(t *testing.T) {
	good := &KeyFile{Key: xor.Key{0xde, 0xad, 0xbe, 0xef}}
	var buf bytes.Buffer
	assert.NoError(t, good.Write(&buf))

	corrupted := buf.Bytes()
	corrupted[0] ^= 0xff
	err := new(KeyFile).Read(bytes.NewReader(corrupted))
	assert.ErrorIs(t, err, ErrBadKeyFile)

	buf.Reset()
	assert.NoError(t, good.Write(&buf))
	truncated := buf.Bytes()[:buf.Len()-2]
	err = new(KeyFile).Read(bytes.NewReader(truncated))
	assert.ErrorIs(t, err, ErrBadKeyFile)

	err = new(KeyFile).Read(bytes.NewReader(nil))
	assert.ErrorIs(t, err, ErrBadKeyFile)
}

func TestKeyFile_SaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.key")
	orig, err := Generate(16)
	assert.NoError(t, err)
	assert.NoError(t, orig.Save(path))

	loaded, err := Load(path)
	assert.NoError(t, err)
	assert.Equal(t, orig.Key, loaded.Key)
	assert.Equal(t, orig.Offset, loaded.Offset)
}

func TestDerive(t *testing.T) {
	pass := []byte("correct horse battery staple")
	salt := []byte("pepper grinder")

	keyA, err := Derive(pass, salt, 16)
	assert.NoError(t, err)
	assert.Len(t, keyA, 16)

	keyB, err := Derive(pass, salt, 16)
	assert.NoError(t, err)
	assert.Equal(t, keyA, keyB)

	keyC, err := Derive(pass, []byte("different salt"), 16)
	assert.NoError(t, err)
	assert.NotEqual(t, keyA, keyC)
}

func TestDerive_Neg(t *testing.T) {
	_, err := Derive(nil, []byte("salt"), 16)
	assert.ErrorIs(t, err, ErrEmptyPassphrase)
	_, err = Derive([]byte("pass"), nil, 16)
	assert.Error(t, err)
	_, err = Derive([]byte("pass"), []byte("salt"), 0)
	assert.Error(t, err)
}
