// Package randsrc provides the random byte sources gibberish is generated
// from.
package randsrc

import (
	"crypto/rand"
	"encoding/binary"
	"io"
	mathrand "math/rand/v2"
)

// New returns a source of uniformly random bytes. A zero seed selects the
// operating system's cryptographic generator; any other seed yields a
// reproducible ChaCha8 stream.
func New(seed int64) io.Reader {
	if seed == 0 {
		return rand.Reader
	}
	return Seeded(seed)
}

// Seeded returns a deterministic stream for seed. Equal seeds yield equal
// streams. It is not safe for concurrent use.
func Seeded(seed int64) io.Reader {
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:8], uint64(seed))
	return mathrand.NewChaCha8(key)
}
