// Package gibberish turns a buffer of uniformly random bytes into lines of
// random pseudo-words: letters and spaces only, in one of three single-byte
// encodings, separated by a configurable end-of-line marker.
//
// The transform is a single in-place pass. Word and line lengths are taken
// from the random bytes themselves, every byte inside a word is folded into
// the letter ranges of the target encoding, and the bytes that fall on a word
// boundary become a space or the EOL marker. The pass also records a LineSpan
// for every line so callers can address lines without rescanning.
//
// The package performs no option parsing; callers hand it a Config that has
// already been validated (see internal/options) and a source of random bytes.
package gibberish
