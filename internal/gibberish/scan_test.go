package gibberish

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScan(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		in      string
		want    []LineSpan
		wantErr bool
	}{
		{"single line", Config{EOL: LF}, "ab cd", []LineSpan{{0, 5}}, false},
		{"trailing marker", Config{EOL: LF}, "ab\ncd\n", []LineSpan{{0, 2}, {3, 5}}, false},
		{"crlf", Config{EOL: CRLF}, "ab\r\ncd", []LineSpan{{0, 2}, {4, 6}}, false},
		{"nel", Config{Encoding: Latin1, EOL: NEL}, "\xe9a\x85b", []LineSpan{{0, 2}, {3, 4}}, false},
		{"lone cr", Config{EOL: CRLF}, "ab\rcd", nil, true},
		{"wrong marker", Config{EOL: LF}, "ab\rcd", nil, true},
		{"digit", Config{EOL: LF}, "ab1", nil, true},
		{"latin1 in ascii", Config{EOL: LF}, "\xe9", nil, true},
		{"empty line", Config{EOL: LF}, "ab\n\ncd", nil, true},
		{"leading marker", Config{EOL: LF}, "\nab", nil, true},
		{"win1252 extra in latin1", Config{Encoding: Latin1, EOL: LF}, "a\x8a", nil, true},
		{"win1252 extra", Config{Encoding: Windows1252, EOL: LF}, "a\x8a", []LineSpan{{0, 2}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Scan(tt.cfg, []byte(tt.in))
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidText)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
