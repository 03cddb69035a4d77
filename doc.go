/*
Package nutshash implements a small family of fast, non-cryptographic 64-bit
hash functions that can back a hash table.

Usage

nutshash has two main types: Config and Hasher. A Config is an immutable
value holding an Algorithm and a Seed. A Hasher is a short-lived accumulator
minted from a Config: bytes are fed with Write and the digest is read with
Sum64. Every Hasher can hand back a Config seeded with its current state, so
a hash table can keep one Config and mint a fresh Hasher per key.

	cfg := nutshash.Config{Algorithm: nutshash.Murmur2_64A}
	h := cfg.New()
	h.Write([]byte("Hello world"))
	digest := h.Sum64()

The algorithms are:

	Identity64   the 8-byte key itself, for keys that are already hash-like
	U64Mixer     the 8-byte key multiplied by the 64-bit Fibonacci constant
	Murmur2_64A  MurmurHash64A over arbitrary byte strings, seed-chained per Write
	XXHash64     xxHash64, seed-chained the same way, used as a baseline

Identity64 and U64Mixer only accept 8-byte writes and panic on anything else.
Words are read in native byte order, so digests differ between little- and
big-endian machines.

None of the hashers are safe for concurrent use. Give every goroutine its
own Hasher.
*/
package nutshash
