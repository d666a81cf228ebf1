package options

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lth/gibberish/internal/gibberish"
)

func TestDefaultConfig(t *testing.T) {
	cfg, err := Default().Config()
	require.NoError(t, err)
	assert.Equal(t, gibberish.DefaultConfig(), cfg)
}

func TestConfig(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want gibberish.Config
	}{
		{"latin1 nel", Options{"latin1", 32000, "nel"}, gibberish.Config{Encoding: gibberish.Latin1, Size: 32000, EOL: gibberish.NEL}},
		{"upper case", Options{"WIN1252", 10, "CRLF"}, gibberish.Config{Encoding: gibberish.Windows1252, Size: 10, EOL: gibberish.CRLF}},
		{"lf alias", Options{"ascii", 1, "\n"}, gibberish.Config{Encoding: gibberish.ASCII, Size: 1, EOL: gibberish.LF}},
		{"cr alias", Options{"ascii", 1, "\r"}, gibberish.Config{Encoding: gibberish.ASCII, Size: 1, EOL: gibberish.CR}},
		{"crlf alias", Options{"Latin1", 1, "\r\n"}, gibberish.Config{Encoding: gibberish.Latin1, Size: 1, EOL: gibberish.CRLF}},
		{"Nel", Options{"LATIN1", 1, "Nel"}, gibberish.Config{Encoding: gibberish.Latin1, Size: 1, EOL: gibberish.NEL}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.opts.Config()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		msg  string
	}{
		{"unknown encoding", Options{"base64", 1, "lf"}, "unrecognized value for encoding option: base64"},
		{"empty encoding", Options{"", 1, "lf"}, "unrecognized value for encoding option"},
		{"zero size", Options{"ascii", 0, "lf"}, `"size" option must be a positive integer`},
		{"negative size", Options{"ascii", -42, "lf"}, `"size" option must be a positive integer`},
		{"unknown eol", Options{"ascii", 1, "newline"}, `unrecognized value for eol option: "newline"`},
		{"ascii nel", Options{"ascii", 1, "nel"}, `eol option "nel" is invalid for ascii`},
		{"win1252 nel", Options{"win1252", 1, "nel"}, `eol option "nel" is invalid for win1252`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.opts.Config()
			require.ErrorIs(t, err, ErrInvalidConfiguration)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestNELIncompatibility(t *testing.T) {
	for _, enc := range []string{"ascii", "win1252"} {
		_, err := Options{Encoding: enc, Size: 100, EOL: "nel"}.Config()
		assert.ErrorIs(t, err, ErrIncompatibleEOL, enc)
	}

	_, err := Options{Encoding: "latin1", Size: 100, EOL: "nel"}.Config()
	assert.NoError(t, err)
}

func TestFromEnv(t *testing.T) {
	t.Setenv("GIBBERISH_ENCODING", "latin1")
	t.Setenv("GIBBERISH_SIZE", "32000")
	t.Setenv("GIBBERISH_EOL", "nel")

	o, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, Options{"latin1", 32000, "nel"}, o)
}

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv("GIBBERISH_ENCODING", "")
	os.Unsetenv("GIBBERISH_ENCODING")
	t.Setenv("GIBBERISH_SIZE", "")
	os.Unsetenv("GIBBERISH_SIZE")
	t.Setenv("GIBBERISH_EOL", "")
	os.Unsetenv("GIBBERISH_EOL")

	o, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, Default(), o)
}

func TestFromEnvInvalidSize(t *testing.T) {
	t.Setenv("GIBBERISH_SIZE", "nonsense")

	_, err := FromEnv()
	assert.ErrorIs(t, err, ErrParsingEnv)
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gibberish.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeFile(t, "encoding: win1252\neol: crlf\n")

	o, err := LoadFile(path, Default())
	require.NoError(t, err)
	assert.Equal(t, Options{"win1252", gibberish.DefaultSize, "crlf"}, o)
}

func TestLoadFileEmpty(t *testing.T) {
	o, err := LoadFile(writeFile(t, ""), Default())
	require.NoError(t, err)
	assert.Equal(t, Default(), o)
}

func TestLoadFileErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unknown key", "encoding: ascii\ncolour: red\n"},
		{"size not a number", "size: nonsense\n"},
		{"malformed", "encoding: [ascii\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFile(writeFile(t, tt.content), Default())
			assert.ErrorIs(t, err, ErrParsingFile)
		})
	}

	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"), Default())
	assert.ErrorIs(t, err, os.ErrNotExist)
}
