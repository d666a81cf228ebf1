package gibberish

// cursor is the state of the random walk over word and line lengths.
type cursor struct {
	letters int // letters left in the current word
	words   int // words left in the current line
}

// wordLength yields 1..16.
func wordLength(b byte) int {
	return 1 + int(b%16)
}

// wordsPerLine yields 6..36. The floor keeps a line from being empty.
func wordsPerLine(a, b byte) int {
	return int(a>>4) + int(b>>4) + 6
}

// Transform rewrites buf in place into lines of pseudo-words for cfg and
// returns the span of every line. The word and line lengths come from buf
// itself, so no randomness beyond buf is consumed.
//
// The buffer length is used as the size; cfg.Size is not consulted.
func Transform(cfg Config, buf []byte) []LineSpan {
	size := len(buf)
	if size == 0 {
		return nil
	}
	marker := cfg.EOL.Bytes()

	var second byte
	if size > 1 {
		second = buf[1]
	}
	cur := cursor{
		letters: wordLength(buf[0]),
		words:   wordsPerLine(buf[0], second),
	}

	lines := make([]LineSpan, 0, size/128+1)
	start := 0

	for i := 0; i < size; i++ {
		if cur.letters > 0 {
			cur.letters--
			buf[i] = MapByte(buf[i], cfg.Encoding)
			continue
		}

		// Word boundary at i. The budgets for what follows are read from the
		// raw bytes at i (and i+1 for a new line) BEFORE they are overwritten
		// with a space or the marker. Changing this order changes the output.
		cur.letters = wordLength(buf[i])
		cur.words--
		if cur.words > 0 {
			buf[i] = ' '
			continue
		}

		if i+len(marker) > size {
			// Only reachable for CRLF on the last byte: the marker does not
			// fit, so the line stays open and ends at the buffer end.
			buf[i] = ' '
			continue
		}
		if i < size-1 {
			cur.words = wordsPerLine(buf[i], buf[i+1])
		}
		lines = append(lines, LineSpan{Start: start, End: i})
		i += copy(buf[i:], marker) - 1
		start = i + 1
	}

	if start < size {
		lines = append(lines, LineSpan{Start: start, End: size})
	}
	return lines
}
