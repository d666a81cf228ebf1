package gibberish

import (
	"golang.org/x/text/encoding/charmap"
)

// LineSpan is the content region [Start, End) of one line. For every line
// but possibly the last, End is the offset of the line's EOL marker.
type LineSpan struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

func (s LineSpan) Len() int {
	return s.End - s.Start
}

// Result is a generated buffer and the spans of its lines.
type Result struct {
	Buffer []byte
	Lines  []LineSpan
}

// Line returns the content of line i without its EOL marker. The slice
// aliases Buffer.
func (r *Result) Line(i int) []byte {
	s := r.Lines[i]
	return r.Buffer[s.Start:s.End]
}

// UTF8 decodes the buffer from enc into UTF-8.
func (r *Result) UTF8(enc Encoding) ([]byte, error) {
	return Charmap(enc).NewDecoder().Bytes(r.Buffer)
}

// Charmap returns the code page used to decode text in enc. ASCII output is
// a subset of ISO-8859-1 and decodes through it.
func Charmap(enc Encoding) *charmap.Charmap {
	if enc == Windows1252 {
		return charmap.Windows1252
	}
	return charmap.ISO8859_1
}
