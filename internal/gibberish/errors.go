package gibberish

import "errors"

var (
	// ErrRandomSource is returned when the random byte source fails or
	// delivers fewer bytes than requested.
	ErrRandomSource = errors.New("random source failed")

	// ErrInvalidText is returned by Scan for bytes that the generator could
	// not have produced.
	ErrInvalidText = errors.New("invalid gibberish text")
)
