package gibberish

import "fmt"

// Encoding is the single-byte character encoding of the generated text.
type Encoding uint8

const (
	ASCII Encoding = iota
	Latin1
	Windows1252
)

func (e Encoding) String() string {
	switch e {
	case ASCII:
		return "ascii"
	case Latin1:
		return "latin1"
	case Windows1252:
		return "win1252"
	default:
		return "unknown"
	}
}

// EOL is the end-of-line marker written between lines.
type EOL uint8

const (
	LF EOL = iota
	CR
	CRLF
	NEL
)

var eolMarkers = [...][]byte{
	LF:   {10},
	CR:   {13},
	CRLF: {13, 10},
	NEL:  {133},
}

// Bytes returns the marker bytes. The returned slice must not be modified.
// It panics for a value outside the declared constants.
func (e EOL) Bytes() []byte {
	if int(e) >= len(eolMarkers) {
		panic(fmt.Sprintf("gibberish: invalid EOL %d", e))
	}
	return eolMarkers[e]
}

func (e EOL) String() string {
	switch e {
	case LF:
		return "lf"
	case CR:
		return "cr"
	case CRLF:
		return "crlf"
	case NEL:
		return "nel"
	default:
		return "unknown"
	}
}

// DefaultSize is the buffer size used when none is configured.
const DefaultSize = 16 * 1024

// Config describes one generation call. It is expected to be valid: Size is
// positive and NEL is only used with Latin1.
type Config struct {
	Encoding Encoding
	Size     int
	EOL      EOL
}

// DefaultConfig returns 16 KiB of ASCII text with LF line ends.
func DefaultConfig() Config {
	return Config{
		Encoding: ASCII,
		Size:     DefaultSize,
		EOL:      LF,
	}
}
