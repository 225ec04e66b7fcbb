package lexer

import "fmt"

// Error is returned for any malformed token: unterminated string/bytes,
// bad base64, bad \uXXXX escape, or a stray byte that starts no valid
// token. Pos is the byte offset where the failure was detected.
type Error struct {
	Pos int
	Msg string
}

func (e *Error) Error() string {
	return fmt.Sprintf("glyph: lex error at byte %d: %s", e.Pos, e.Msg)
}
