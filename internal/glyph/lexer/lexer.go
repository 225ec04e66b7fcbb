package lexer

import (
	"encoding/base64"
	"strings"
	"unicode/utf8"
)

var reservedWords = map[string]bool{
	"t": true, "f": true, "true": true, "false": true, "null": true, "nil": true, "_": true,
}

// Lexer tokenizes a GLYPH text over a shared Cursor. The parser advances
// the Cursor directly between calls to Next to read table rows at byte
// level.
type Lexer struct {
	c *Cursor
}

// New builds a Lexer positioned at the start of src.
func New(src string) *Lexer {
	return &Lexer{c: NewCursor([]byte(src))}
}

// FromCursor builds a Lexer over an existing Cursor, continuing from its
// current position.
func FromCursor(c *Cursor) *Lexer {
	return &Lexer{c: c}
}

// Cursor exposes the underlying byte cursor so the parser's tabular reader
// can drop below tokenization.
func (l *Lexer) Cursor() *Cursor { return l.c }

func isBareChar(b byte) bool {
	switch {
	case b >= 'A' && b <= 'Z', b >= 'a' && b <= 'z', b >= '0' && b <= '9':
		return true
	case b == '_' || b == '-' || b == '.' || b == '/' || b == '+' || b == '@':
		return true
	default:
		return false
	}
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// Next scans and returns the next token.
func (l *Lexer) Next() (Token, error) {
	l.skipInsignificantWhitespace()

	if l.c.Eof() {
		return Token{Kind: TokEOF, Pos: l.c.Pos()}, nil
	}

	pos := l.c.Pos()
	b, _ := l.c.PeekByte()

	switch b {
	case '\n':
		l.c.Advance(1)
		return Token{Kind: TokNewline, Pos: pos}, nil
	case '{':
		l.c.Advance(1)
		return Token{Kind: TokLBrace, Pos: pos}, nil
	case '}':
		l.c.Advance(1)
		return Token{Kind: TokRBrace, Pos: pos}, nil
	case '[':
		l.c.Advance(1)
		return Token{Kind: TokLBracket, Pos: pos}, nil
	case ']':
		l.c.Advance(1)
		return Token{Kind: TokRBracket, Pos: pos}, nil
	case '(':
		l.c.Advance(1)
		return Token{Kind: TokLParen, Pos: pos}, nil
	case ')':
		l.c.Advance(1)
		return Token{Kind: TokRParen, Pos: pos}, nil
	case '=':
		l.c.Advance(1)
		return Token{Kind: TokEquals, Pos: pos}, nil
	case ':':
		l.c.Advance(1)
		return Token{Kind: TokColon, Pos: pos}, nil
	case ',':
		l.c.Advance(1)
		return Token{Kind: TokComma, Pos: pos}, nil
	case '|':
		l.c.Advance(1)
		return Token{Kind: TokPipe, Pos: pos}, nil
	case '^':
		l.c.Advance(1)
		return Token{Kind: TokCaret, Pos: pos}, nil
	case '@':
		l.c.Advance(1)
		return Token{Kind: TokAt, Pos: pos}, nil
	case '"':
		return l.scanString(pos)
	}

	if b == 0xE2 {
		if r, size := utf8.DecodeRune(l.remaining()); r == '∅' {
			l.c.Advance(size)
			return Token{Kind: TokNull, Text: "∅", Pos: pos}, nil
		}
	}

	if b == 'b' {
		if nb, ok3 := l.c.PeekAt(3); ok3 && nb == '"' {
			if b1, ok1 := l.c.PeekAt(1); ok1 && b1 == '6' {
				if b2, ok2 := l.c.PeekAt(2); ok2 && b2 == '4' {
					return l.scanBytes(pos)
				}
			}
		}
	}

	if isDigit(b) || b == '-' {
		return l.scanNumberOrIdent(pos)
	}

	if isBareChar(b) {
		return l.scanIdentRun(pos)
	}

	return Token{}, &Error{Pos: pos, Msg: "unexpected byte"}
}

func (l *Lexer) remaining() []byte {
	return l.c.src[l.c.Pos():]
}

func (l *Lexer) skipInsignificantWhitespace() {
	for {
		b, ok := l.c.PeekByte()
		if !ok {
			return
		}
		if b == ' ' || b == '\t' || b == '\r' {
			l.c.Advance(1)
			continue
		}
		return
	}
}

// scanBareRun consumes the maximal run of bareChar bytes starting at the
// cursor's current position and returns it.
func (l *Lexer) scanBareRun() string {
	start := l.c.Pos()
	for {
		b, ok := l.c.PeekByte()
		if !ok || !isBareChar(b) {
			break
		}
		l.c.Advance(1)
	}
	return l.c.Slice(start, l.c.Pos())
}

func (l *Lexer) scanIdentRun(pos int) (Token, error) {
	run := l.scanBareRun()
	return classifyRun(run, pos)
}

// scanNumberOrIdent implements §4.E: scan the maximal bareChar run, then
// classify it as Int/Float if it matches number shape exactly, otherwise
// fall through to IDENT/reserved-word classification (the digit/'-'-led
// identifier case).
func (l *Lexer) scanNumberOrIdent(pos int) (Token, error) {
	run := l.scanBareRun()
	if kind, ok := numberKind(run); ok {
		return Token{Kind: kind, Text: run, Pos: pos}, nil
	}
	return classifyRun(run, pos)
}

func classifyRun(run string, pos int) (Token, error) {
	if reservedWords[run] {
		switch run {
		case "null", "nil", "_":
			return Token{Kind: TokNull, Text: run, Pos: pos}, nil
		case "t", "true":
			return Token{Kind: TokBool, Text: run, Pos: pos, Bool: true}, nil
		case "f", "false":
			return Token{Kind: TokBool, Text: run, Pos: pos, Bool: false}, nil
		}
	}
	return Token{Kind: TokIdent, Text: run, Pos: pos}, nil
}

// numberKind reports whether run matches the number grammar exactly and,
// if so, whether it is Int or Float shaped.
func numberKind(run string) (TokenKind, bool) {
	i := 0
	n := len(run)
	if i < n && run[i] == '-' {
		i++
	}
	digitsStart := i
	for i < n && isDigit(run[i]) {
		i++
	}
	if i == digitsStart {
		return 0, false
	}
	isFloat := false
	if i < n && run[i] == '.' {
		i++
		fracStart := i
		for i < n && isDigit(run[i]) {
			i++
		}
		if i == fracStart {
			return 0, false
		}
		isFloat = true
	}
	if i < n && (run[i] == 'e' || run[i] == 'E') {
		i++
		if i < n && (run[i] == '+' || run[i] == '-') {
			i++
		}
		expStart := i
		for i < n && isDigit(run[i]) {
			i++
		}
		if i == expStart {
			return 0, false
		}
		isFloat = true
	}
	if i != n {
		return 0, false
	}
	if isFloat {
		return TokFloat, true
	}
	return TokInt, true
}

func (l *Lexer) scanString(pos int) (Token, error) {
	l.c.Advance(1) // opening quote
	var b strings.Builder
	for {
		ch, ok := l.c.PeekByte()
		if !ok {
			return Token{}, &Error{Pos: pos, Msg: "unterminated string"}
		}
		if ch == '"' {
			l.c.Advance(1)
			return Token{Kind: TokString, Text: b.String(), Pos: pos}, nil
		}
		if ch == '\\' {
			l.c.Advance(1)
			esc, ok := l.c.PeekByte()
			if !ok {
				return Token{}, &Error{Pos: pos, Msg: "unterminated escape"}
			}
			switch esc {
			case '"':
				b.WriteByte('"')
				l.c.Advance(1)
			case '\\':
				b.WriteByte('\\')
				l.c.Advance(1)
			case 'n':
				b.WriteByte('\n')
				l.c.Advance(1)
			case 'r':
				b.WriteByte('\r')
				l.c.Advance(1)
			case 't':
				b.WriteByte('\t')
				l.c.Advance(1)
			case 'u':
				l.c.Advance(1)
				r, err := l.readHex4(pos)
				if err != nil {
					return Token{}, err
				}
				b.WriteRune(r)
			default:
				return Token{}, &Error{Pos: l.c.Pos(), Msg: "unknown escape sequence"}
			}
			continue
		}
		// Consume one UTF-8 rune's worth of raw bytes.
		r, size := utf8.DecodeRune(l.remaining())
		if r == utf8.RuneError && size <= 1 {
			return Token{}, &Error{Pos: l.c.Pos(), Msg: "invalid UTF-8 in string"}
		}
		b.Write(l.c.src[l.c.Pos() : l.c.Pos()+size])
		l.c.Advance(size)
	}
}

func (l *Lexer) readHex4(pos int) (rune, error) {
	if l.c.Pos()+4 > l.c.Len() {
		return 0, &Error{Pos: pos, Msg: "incomplete \\u escape"}
	}
	hex := l.c.Slice(l.c.Pos(), l.c.Pos()+4)
	var v rune
	for _, ch := range hex {
		v <<= 4
		switch {
		case ch >= '0' && ch <= '9':
			v |= ch - '0'
		case ch >= 'a' && ch <= 'f':
			v |= ch - 'a' + 10
		case ch >= 'A' && ch <= 'F':
			v |= ch - 'A' + 10
		default:
			return 0, &Error{Pos: pos, Msg: "invalid \\u escape: not hex"}
		}
	}
	l.c.Advance(4)
	return v, nil
}

func (l *Lexer) scanBytes(pos int) (Token, error) {
	l.c.Advance(3) // "b64"
	q, _ := l.c.PeekByte()
	if q != '"' {
		return Token{}, &Error{Pos: pos, Msg: "expected '\"' after b64"}
	}
	l.c.Advance(1)
	start := l.c.Pos()
	for {
		ch, ok := l.c.PeekByte()
		if !ok {
			return Token{}, &Error{Pos: pos, Msg: "unterminated bytes literal"}
		}
		if ch == '"' {
			break
		}
		if ch == '\n' {
			return Token{}, &Error{Pos: pos, Msg: "unterminated bytes literal"}
		}
		l.c.Advance(1)
	}
	payload := l.c.Slice(start, l.c.Pos())
	l.c.Advance(1) // closing quote
	decoded, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return Token{}, &Error{Pos: pos, Msg: "invalid base64 in bytes literal"}
	}
	return Token{Kind: TokBytes, Text: string(decoded), Pos: pos}, nil
}
