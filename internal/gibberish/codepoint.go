package gibberish

// Letter ranges (inclusive):
//
//	ascii:   65-90, 97-122
//	latin1:  ascii + 192-214, 216-246, 248-255
//	win1252: latin1 + 138, 140, 142, 154, 156, 158, 159
//
// Windows-1252 uses 133 for an ellipsis where ISO-8859-1 has the NEL control
// character, which is why NEL is only offered with Latin1.

func isWin1252Extra(b byte) bool {
	switch b {
	case 138, 140, 142, 154, 156, 158, 159:
		return true
	}
	return false
}

// MapByte folds a random byte into a letter of enc. Bytes that already are
// letters are returned unchanged. For ASCII the byte is first reduced modulo
// 128 so the result never leaves the 7-bit letter ranges.
func MapByte(b byte, enc Encoding) byte {
	if enc == ASCII {
		b %= 128
	}

	switch {
	// 0-31 are control characters
	case b < 26:
		return b + 65 // A-Z
	case b < 32:
		return b + 71 // a-f

	// space, punctuation and digits
	case b < 58:
		return b + 65 // a-z
	case b < 65:
		return b + 45 // g-m

	case b < 91:
		return b
	case b < 97:
		return b + 19 // n-s
	case b < 123:
		return b

	// symbols, DEL and the first C1 controls
	case b < 130:
		return b - 7 // t-z

	case b < 153:
		if enc == Windows1252 && isWin1252Extra(b) {
			return b
		}
		return b + 62 // 192-214
	case b < 184:
		// skips 215, the multiplication sign
		if enc == Windows1252 && isWin1252Extra(b) {
			return b
		}
		return b + 63 // 216-246
	case b < 192:
		// skips 247, the division sign
		return b + 64 // 248-255

	case b == 215:
		return 223
	case b == 247:
		return 224
	}
	return b
}

// IsLetter reports whether b is a letter of enc.
func IsLetter(b byte, enc Encoding) bool {
	switch {
	case b >= 'A' && b <= 'Z', b >= 'a' && b <= 'z':
		return true
	case enc == ASCII:
		return false
	case b >= 192 && b != 215 && b != 247:
		return true
	}
	return enc == Windows1252 && isWin1252Extra(b)
}

// IsText reports whether b may appear inside a line: a space or a letter.
func IsText(b byte, enc Encoding) bool {
	return b == ' ' || IsLetter(b, enc)
}
