package gibberish

import (
	"encoding/binary"
	"errors"
	"io"
	"math/rand/v2"
)

func seededReader(seed uint64) io.Reader {
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:], seed)
	return rand.NewChaCha8(key)
}

var errSourceDown = errors.New("entropy pool unavailable")

type failingReader struct {
	after int // bytes delivered before failing
}

func (r *failingReader) Read(p []byte) (int, error) {
	if r.after <= 0 {
		return 0, errSourceDown
	}
	n := min(len(p), r.after)
	r.after -= n
	return n, nil
}
