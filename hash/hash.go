package hash

import (
	"bytes"
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"hash"
	"io"
	"unsafe"
)

// Hasher is the pluggable hash algorithm interface SkipList uses to
// draw node levels: a standard hash.Hash plus HashKey, which accepts
// any Go value rather than requiring the caller to serialize it first.
type Hasher interface {
	hash.Hash
	HashKey(key any) ([]byte, error)
}

// HashBytesToUint64 converts a byte slice to uint64
func HashBytesToUint64(data []byte) uint64 {
	return binary.LittleEndian.Uint64(data)
}

// keyToBytes converts a key of any type to a byte slice
func keyToBytes(key any) ([]byte, error) {
	switch k := key.(type) {
	case string:
		return []byte(k), nil
	case []byte:
		return k, nil
	default:
		return ToBinary(k)
	}
}

// ToBinary converts an interface{} to a byte slice. Fixed-size values
// (sized integers, floats, bools, and arrays or structs of them) are
// written little-endian at their natural width, with int and uint
// widened to 8 bytes; any other value is copied byte for byte from its
// interface representation.
func ToBinary(v interface{}) ([]byte, error) {
	switch x := v.(type) {
	case int:
		v = int64(x)
	case uint:
		v = uint64(x)
	}
	if binary.Size(v) > 0 {
		var buf bytes.Buffer
		if err := binary.Write(&buf, binary.LittleEndian, v); err == nil {
			return buf.Bytes(), nil
		}
	}
	size := int(unsafe.Sizeof(v))
	if size > 1<<30 {
		return nil, fmt.Errorf("input size too large: %d bytes", size)
	}
	b := make([]byte, size)
	switch size {
	case 1:
		b[0] = *(*uint8)(unsafe.Pointer(&v))
	case 2:
		binary.LittleEndian.PutUint16(b, *(*uint16)(unsafe.Pointer(&v)))
	case 4:
		binary.LittleEndian.PutUint32(b, *(*uint32)(unsafe.Pointer(&v)))
	case 8:
		binary.LittleEndian.PutUint64(b, *(*uint64)(unsafe.Pointer(&v)))
	default:
		copy(b, (*[1 << 30]byte)(unsafe.Pointer(&v))[:size])
	}
	return b, nil
}

// GenerateRandomKeys creates two cryptographically secure random uint64 values
func GenerateRandomKeys() (uint64, uint64, error) {
	var b [16]byte
	_, err := io.ReadFull(rand.Reader, b[:])
	if err != nil {
		return 0, 0, fmt.Errorf("failed to read random bytes: %w", err)
	}
	return binary.LittleEndian.Uint64(b[:8]), binary.LittleEndian.Uint64(b[8:]), nil
}

// Uint64ToBytes converts a uint64 to a byte slice
func Uint64ToBytes(value uint64) []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, value)
	return b
}
