package parser

import "fmt"

// ParseError is returned for any grammar violation: an unexpected token, an
// unterminated composite, a bad directive, or a missing required separator.
// Pos is the byte offset of the offending token. Partial parse state is
// always discarded on error — callers never receive a half-built Value.
type ParseError struct {
	Pos int
	Msg string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("glyph: parse error at byte %d: %s", e.Pos, e.Msg)
}
