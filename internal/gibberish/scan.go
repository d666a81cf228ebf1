package gibberish

import (
	"bytes"
	"fmt"
)

// Scan checks that buf is text the generator could have produced for cfg
// and returns its line spans. For a generated buffer the spans equal the
// ones Transform returned.
func Scan(cfg Config, buf []byte) ([]LineSpan, error) {
	marker := cfg.EOL.Bytes()

	var lines []LineSpan
	start := 0
	for i := 0; i < len(buf); {
		if bytes.HasPrefix(buf[i:], marker) {
			if i == start {
				return nil, fmt.Errorf("%w: empty line at offset %d", ErrInvalidText, i)
			}
			lines = append(lines, LineSpan{Start: start, End: i})
			i += len(marker)
			start = i
			continue
		}
		if !IsText(buf[i], cfg.Encoding) {
			return nil, fmt.Errorf("%w: byte %d at offset %d is not a %s letter or space",
				ErrInvalidText, buf[i], i, cfg.Encoding)
		}
		i++
	}

	if start < len(buf) {
		lines = append(lines, LineSpan{Start: start, End: len(buf)})
	}
	return lines, nil
}
