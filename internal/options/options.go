// Package options turns user supplied settings (environment, .env file, YAML
// file, command line) into a validated gibberish.Config.
package options

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/lth/gibberish/internal/gibberish"
)

// Options holds raw, unvalidated settings.
type Options struct {
	Encoding string `env:"GIBBERISH_ENCODING" envDefault:"ascii" yaml:"encoding"`
	Size     int    `env:"GIBBERISH_SIZE" envDefault:"16384" yaml:"size"`
	EOL      string `env:"GIBBERISH_EOL" envDefault:"lf" yaml:"eol"`
}

func Default() Options {
	return Options{
		Encoding: "ascii",
		Size:     gibberish.DefaultSize,
		EOL:      "lf",
	}
}

var dotenvLoaded sync.Once

// FromEnv reads options from the environment. A .env file in the working
// directory is loaded first if present; variables already set win.
func FromEnv() (Options, error) {
	dotenvLoaded.Do(func() {
		// the .env file is optional
		_ = godotenv.Load()
	})

	var o Options
	if err := env.Parse(&o); err != nil {
		return Options{}, errors.Join(ErrParsingEnv, err)
	}
	return o, nil
}

// LoadFile overlays the YAML file at path on base. Keys missing from the
// file keep their value from base; unknown keys are an error.
func LoadFile(path string, base Options) (Options, error) {
	f, err := os.Open(path)
	if err != nil {
		return Options{}, err
	}
	defer f.Close()

	o := base
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&o); err != nil && !errors.Is(err, io.EOF) {
		return Options{}, fmt.Errorf("%w: %s: %w", ErrParsingFile, path, err)
	}
	return o, nil
}

// Config validates o. Encoding and eol names are case-insensitive and the
// literal markers "\n", "\r" and "\r\n" are accepted for eol.
func (o Options) Config() (gibberish.Config, error) {
	enc, err := ParseEncoding(o.Encoding)
	if err != nil {
		return gibberish.Config{}, err
	}
	if o.Size <= 0 {
		return gibberish.Config{}, fmt.Errorf("%w: %q option must be a positive integer, got %d",
			ErrInvalidConfiguration, "size", o.Size)
	}
	eol, err := ParseEOL(o.EOL)
	if err != nil {
		return gibberish.Config{}, err
	}
	if eol == gibberish.NEL && enc != gibberish.Latin1 {
		return gibberish.Config{}, fmt.Errorf("%w: eol option \"nel\" is invalid for %s", ErrIncompatibleEOL, enc)
	}

	return gibberish.Config{
		Encoding: enc,
		Size:     o.Size,
		EOL:      eol,
	}, nil
}

func ParseEncoding(s string) (gibberish.Encoding, error) {
	switch strings.ToLower(s) {
	case "ascii":
		return gibberish.ASCII, nil
	case "latin1":
		return gibberish.Latin1, nil
	case "win1252":
		return gibberish.Windows1252, nil
	}
	return 0, fmt.Errorf("%w: unrecognized value for encoding option: %s", ErrInvalidConfiguration, s)
}

func ParseEOL(s string) (gibberish.EOL, error) {
	switch strings.ToLower(s) {
	case "lf", "\n":
		return gibberish.LF, nil
	case "cr", "\r":
		return gibberish.CR, nil
	case "crlf", "\r\n":
		return gibberish.CRLF, nil
	case "nel":
		return gibberish.NEL, nil
	}
	return 0, fmt.Errorf("%w: unrecognized value for eol option: %q", ErrInvalidConfiguration, s)
}
