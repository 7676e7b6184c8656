package keyfile

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	bin "github.com/saylorsolutions/binmap"
	"golang.org/x/crypto/scrypt"

	"github.com/packetmill/xorpack/pkg/xor"
)

const (
	magicBytes  uint16 = 0xb0f5
	fileVersion uint8  = 1

	// DefaultKeyLength is a reasonable key length for most payloads.
	DefaultKeyLength = 32

	scryptIterations = 1 << 17
	scryptBlockSize  = 8
	scryptCpuCost    = 1
)

var (
	ErrEmptyPassphrase = errors.New("cannot use an empty passphrase")
	ErrBadKeyFile      = errors.New("unable to use key file")
)

// KeyFile pairs an XOR key with the starting offset it should be applied
// with.
type KeyFile struct {
	Key    xor.Key
	Offset int
}

type header struct {
	magic   uint16
	version uint8
	offset  uint32
	keyLen  uint32
}

func (h *header) mapper() bin.Mapper {
	return bin.MapSequence(
		bin.Int(&h.magic),
		bin.Byte(&h.version),
		bin.Int(&h.offset),
		bin.Int(&h.keyLen),
	)
}

// Generate creates a KeyFile with a fresh random key of the given length and
// a random starting offset within it.
func Generate(length int) (*KeyFile, error) {
	key, offset, err := xor.GenKeyAndOffset(length)
	if err != nil {
		return nil, err
	}
	return &KeyFile{
		Key:    key,
		Offset: offset,
	}, nil
}

// Derive produces a key of the given length from a passphrase and salt using
// scrypt. The same passphrase, salt, and length always yield the same key,
// so two parties can agree on a key without exchanging it.
func Derive(pass, salt []byte, length int) (xor.Key, error) {
	if len(pass) == 0 {
		return nil, ErrEmptyPassphrase
	}
	if len(salt) == 0 {
		return nil, errors.New("cannot derive a key without a salt")
	}
	if length <= 0 {
		return nil, errors.New("asked to derive a key without length")
	}
	key, err := scrypt.Key(pass, salt, scryptIterations, scryptBlockSize, scryptCpuCost, length)
	return xor.Key(key), err
}

func (f *KeyFile) validate() error {
	if len(f.Key) == 0 {
		return fmt.Errorf("%w: empty key", ErrBadKeyFile)
	}
	if f.Offset < 0 || f.Offset >= len(f.Key) {
		return fmt.Errorf("%w: offset %d out of range for key of len %d", ErrBadKeyFile, f.Offset, len(f.Key))
	}
	return nil
}

// Write emits the binary form of the KeyFile to w.
func (f *KeyFile) Write(w io.Writer) error {
	if err := f.validate(); err != nil {
		return err
	}
	h := header{
		magic:   magicBytes,
		version: fileVersion,
		offset:  uint32(f.Offset),
		keyLen:  uint32(len(f.Key)),
	}
	if err := h.mapper().Write(w, binary.BigEndian); err != nil {
		return err
	}
	_, err := w.Write(f.Key)
	return err
}

// Read populates the KeyFile from the binary form read from r.
func (f *KeyFile) Read(r io.Reader) error {
	var h header
	if err := h.mapper().Read(r, binary.BigEndian); err != nil {
		return fmt.Errorf("%w: %v", ErrBadKeyFile, err)
	}
	if h.magic != magicBytes {
		return fmt.Errorf("%w: unrecognized header", ErrBadKeyFile)
	}
	if h.version != fileVersion {
		return fmt.Errorf("%w: unsupported version %d", ErrBadKeyFile, h.version)
	}
	if h.keyLen == 0 {
		return fmt.Errorf("%w: empty key", ErrBadKeyFile)
	}
	if h.offset >= h.keyLen {
		return fmt.Errorf("%w: offset %d out of range for key of len %d", ErrBadKeyFile, h.offset, h.keyLen)
	}
	key := make(xor.Key, h.keyLen)
	if _, err := io.ReadFull(r, key); err != nil {
		return fmt.Errorf("%w: truncated key: %v", ErrBadKeyFile, err)
	}
	f.Key = key
	f.Offset = int(h.offset)
	return nil
}

// Save writes the KeyFile to path, truncating any existing file.
func (f *KeyFile) Save(path string) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		_ = out.Close()
	}()
	return f.Write(out)
}

// Load reads a KeyFile from path.
func Load(path string) (*KeyFile, error) {
	in, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = in.Close()
	}()
	f := new(KeyFile)
	if err := f.Read(in); err != nil {
		return nil, err
	}
	return f, nil
}
