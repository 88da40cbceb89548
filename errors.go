package img2ascii

import "errors"

var (
	// ErrEmptyCharset indicates an operation that would leave the matcher
	// without any characters to normalize against.
	ErrEmptyCharset = errors.New("img2ascii: character set must contain at least one character")
	// ErrCharNotFound indicates a removal of a character that is not in
	// the active character set.
	ErrCharNotFound = errors.New("img2ascii: character not in active set")
	// ErrNoGlyphSource indicates a matcher was constructed without a
	// glyph source to compute brightness from.
	ErrNoGlyphSource = errors.New("img2ascii: glyph source is nil")
)
