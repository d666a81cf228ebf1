package options

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfiguration wraps every option validation failure.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrIncompatibleEOL is returned for an eol that the chosen encoding
	// cannot carry.
	ErrIncompatibleEOL = fmt.Errorf("%w: eol incompatible with encoding", ErrInvalidConfiguration)

	ErrParsingEnv  = fmt.Errorf("%w: failed to parse environment variables", ErrInvalidConfiguration)
	ErrParsingFile = fmt.Errorf("%w: failed to parse config file", ErrInvalidConfiguration)
)
