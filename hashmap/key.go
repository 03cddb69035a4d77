package hashmap

import (
	"github.com/nutsdb/nutshash"
)

// KeyEncoder appends the byte representation of key to dst and returns the
// extended slice. The bytes are what the map feeds to its Hasher.
type KeyEncoder[K any] func(dst []byte, key K) []byte

// Uint64Key encodes a uint64 as 8 native-endian bytes. It works with every
// algorithm, including the fixed-width ones.
func Uint64Key(dst []byte, key uint64) []byte {
	var buf [nutshash.Size]byte
	nutshash.PutUint64(buf[:], key)
	return append(dst, buf[:]...)
}

// StringKey encodes a string as its raw bytes. It panics on the first
// operation when used with a fixed-width algorithm and a key that is not
// exactly 8 bytes long.
func StringKey(dst []byte, key string) []byte {
	return append(dst, key...)
}
