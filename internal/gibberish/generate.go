package gibberish

import (
	"context"
	"fmt"
	"io"
)

// Fill reads len(buf) random bytes from src. A failing or short source is
// reported as ErrRandomSource.
func Fill(src io.Reader, buf []byte) error {
	if _, err := io.ReadFull(src, buf); err != nil {
		return fmt.Errorf("%w: %w", ErrRandomSource, err)
	}
	return nil
}

// FromRandom transforms buf, which must hold freshly acquired random bytes,
// and takes ownership of it.
func FromRandom(cfg Config, buf []byte) *Result {
	return &Result{
		Buffer: buf,
		Lines:  Transform(cfg, buf),
	}
}

// Generate acquires cfg.Size bytes from src and transforms them. No partial
// result is returned on error.
func Generate(ctx context.Context, cfg Config, src io.Reader) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	buf := make([]byte, cfg.Size)
	if err := Fill(src, buf); err != nil {
		return nil, err
	}
	return FromRandom(cfg, buf), nil
}
