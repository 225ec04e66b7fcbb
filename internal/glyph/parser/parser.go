// Package parser implements a single-pass recursive-descent reader for
// GLYPH text, with one-token lookahead over the lexer's stream. The
// tabular directive is the one production that drops below tokens to a raw
// byte cursor, shared explicitly with the lexer rather than through any
// package-level mutable state.
package parser

import (
	"strconv"
	"strings"

	"github.com/Neumenon/glyph/internal/glyph/lexer"
	"github.com/Neumenon/glyph/internal/glyph/tabular"
	"github.com/Neumenon/glyph/internal/glyph/value"
)

// Parser holds one token of lookahead over a Lexer. Trailing tokens after a
// parsed value are never checked here — callers that need strict
// end-of-input enforcement check p.AtEOF() themselves.
type Parser struct {
	lex *lexer.Lexer
	cur lexer.Token
}

// New builds a Parser positioned at the first token of text.
func New(text string) (*Parser, error) {
	p := &Parser{lex: lexer.New(text)}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return p, nil
}

// AtEOF reports whether the lookahead token is EOF.
func (p *Parser) AtEOF() bool { return p.cur.Kind == lexer.TokEOF }

// ConsumeNewlines advances past any NEWLINE tokens, leaving the lookahead
// on the first non-newline token. Strict callers use this so a trailing
// newline in a text file does not read as trailing garbage.
func (p *Parser) ConsumeNewlines() error {
	for p.cur.Kind == lexer.TokNewline {
		if err := p.advance(); err != nil {
			return err
		}
	}
	return nil
}

// Parse reads a single GLYPH value from text. Trailing tokens are ignored,
// per §4.F.
func Parse(text string) (value.Value, error) {
	p, err := New(text)
	if err != nil {
		return value.Value{}, err
	}
	return p.ParseValue()
}

func (p *Parser) advance() error {
	tok, err := p.lex.Next()
	if err != nil {
		return err
	}
	p.cur = tok
	return nil
}

// ParseValue reads exactly one value production from the current lookahead.
func (p *Parser) ParseValue() (value.Value, error) {
	tok := p.cur
	switch tok.Kind {
	case lexer.TokNull:
		if err := p.advance(); err != nil {
			return value.Value{}, err
		}
		return value.Null(), nil

	case lexer.TokBool:
		if err := p.advance(); err != nil {
			return value.Value{}, err
		}
		return value.Bool(tok.Bool), nil

	case lexer.TokInt:
		i, err := strconv.ParseInt(tok.Text, 10, 64)
		if err != nil {
			if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
				return value.Value{}, &value.RangeError{Msg: "integer literal overflows int64: " + tok.Text}
			}
			return value.Value{}, &ParseError{Pos: tok.Pos, Msg: "invalid integer literal: " + tok.Text}
		}
		if err := p.advance(); err != nil {
			return value.Value{}, err
		}
		return value.Int(i), nil

	case lexer.TokFloat:
		f, err := strconv.ParseFloat(tok.Text, 64)
		if err != nil {
			return value.Value{}, &ParseError{Pos: tok.Pos, Msg: "invalid float literal: " + tok.Text}
		}
		if err := p.advance(); err != nil {
			return value.Value{}, err
		}
		return value.Float(f), nil

	case lexer.TokString:
		if err := p.advance(); err != nil {
			return value.Value{}, err
		}
		return value.Str(tok.Text), nil

	case lexer.TokBytes:
		if err := p.advance(); err != nil {
			return value.Value{}, err
		}
		return value.Bytes([]byte(tok.Text)), nil

	case lexer.TokCaret:
		if err := p.advance(); err != nil {
			return value.Value{}, err
		}
		return p.parseID()

	case lexer.TokLBracket:
		return p.parseList()

	case lexer.TokLBrace:
		entries, err := p.parseMapEntries()
		if err != nil {
			return value.Value{}, err
		}
		return value.Map(entries...), nil

	case lexer.TokIdent:
		name := tok.Text
		if err := p.advance(); err != nil {
			return value.Value{}, err
		}
		switch p.cur.Kind {
		case lexer.TokLBrace:
			return p.parseStruct(name)
		case lexer.TokLParen:
			return p.parseSum(name)
		default:
			return value.Str(name), nil
		}

	case lexer.TokAt:
		if err := p.advance(); err != nil {
			return value.Value{}, err
		}
		return p.parseTabularDirective()

	default:
		return value.Value{}, &ParseError{Pos: tok.Pos, Msg: "unexpected token " + tok.Kind.String()}
	}
}

func (p *Parser) parseID() (value.Value, error) {
	tok := p.cur
	switch tok.Kind {
	case lexer.TokString:
		if err := p.advance(); err != nil {
			return value.Value{}, err
		}
		if idx := strings.IndexByte(tok.Text, ':'); idx >= 0 {
			return value.NewID(tok.Text[:idx], tok.Text[idx+1:]), nil
		}
		return value.NewID("", tok.Text), nil

	case lexer.TokIdent, lexer.TokBool, lexer.TokInt:
		first := tok.Text
		if err := p.advance(); err != nil {
			return value.Value{}, err
		}
		if p.cur.Kind == lexer.TokColon {
			if err := p.advance(); err != nil {
				return value.Value{}, err
			}
			second := p.cur
			switch second.Kind {
			case lexer.TokIdent, lexer.TokString, lexer.TokInt, lexer.TokBool:
				if err := p.advance(); err != nil {
					return value.Value{}, err
				}
				return value.NewID(first, second.Text), nil
			default:
				return value.Value{}, &ParseError{Pos: second.Pos, Msg: "expected id value after ':'"}
			}
		}
		return value.NewID("", first), nil

	default:
		return value.Value{}, &ParseError{Pos: tok.Pos, Msg: "expected id text after '^'"}
	}
}

func (p *Parser) parseList() (value.Value, error) {
	if err := p.advance(); err != nil { // consume '['
		return value.Value{}, err
	}
	var elems []value.Value
	for {
		switch p.cur.Kind {
		case lexer.TokRBracket:
			if err := p.advance(); err != nil {
				return value.Value{}, err
			}
			return value.ListFromSlice(elems), nil
		case lexer.TokComma, lexer.TokNewline:
			if err := p.advance(); err != nil {
				return value.Value{}, err
			}
		case lexer.TokEOF:
			return value.Value{}, &ParseError{Pos: p.cur.Pos, Msg: "unterminated list"}
		default:
			v, err := p.ParseValue()
			if err != nil {
				return value.Value{}, err
			}
			elems = append(elems, v)
		}
	}
}

func (p *Parser) parseStruct(typeName string) (value.Value, error) {
	entries, err := p.parseMapEntries()
	if err != nil {
		return value.Value{}, err
	}
	return value.Struct(typeName, entries...), nil
}

func (p *Parser) parseSum(tag string) (value.Value, error) {
	if err := p.advance(); err != nil { // consume '('
		return value.Value{}, err
	}
	if p.cur.Kind == lexer.TokRParen {
		if err := p.advance(); err != nil {
			return value.Value{}, err
		}
		return value.SumEmpty(tag), nil
	}
	v, err := p.ParseValue()
	if err != nil {
		return value.Value{}, err
	}
	if p.cur.Kind != lexer.TokRParen {
		return value.Value{}, &ParseError{Pos: p.cur.Pos, Msg: "expected ')' after sum payload"}
	}
	if err := p.advance(); err != nil {
		return value.Value{}, err
	}
	return value.SumOf(tag, v), nil
}

// parseMapEntries consumes a '{' ... '}' body shared by Map and Struct:
// each entry is (IDENT|STRING) (= | :) value, with ',' and NEWLINE accepted
// and ignored as separators.
func (p *Parser) parseMapEntries() ([]value.Entry, error) {
	if err := p.advance(); err != nil { // consume '{'
		return nil, err
	}
	var entries []value.Entry
	for {
		switch p.cur.Kind {
		case lexer.TokRBrace:
			if err := p.advance(); err != nil {
				return nil, err
			}
			return entries, nil
		case lexer.TokComma, lexer.TokNewline:
			if err := p.advance(); err != nil {
				return nil, err
			}
		case lexer.TokEOF:
			return nil, &ParseError{Pos: p.cur.Pos, Msg: "unterminated map/struct"}
		default:
			key, err := p.parseEntryKey()
			if err != nil {
				return nil, err
			}
			if p.cur.Kind != lexer.TokEquals && p.cur.Kind != lexer.TokColon {
				return nil, &ParseError{Pos: p.cur.Pos, Msg: "expected '=' or ':' after key"}
			}
			if err := p.advance(); err != nil {
				return nil, err
			}
			val, err := p.ParseValue()
			if err != nil {
				return nil, err
			}
			entries = append(entries, value.Field(key, val))
		}
	}
}

func (p *Parser) parseEntryKey() (string, error) {
	switch p.cur.Kind {
	case lexer.TokIdent, lexer.TokString:
		k := p.cur.Text
		if err := p.advance(); err != nil {
			return "", err
		}
		return k, nil
	default:
		return "", &ParseError{Pos: p.cur.Pos, Msg: "expected map/struct key"}
	}
}

// parseTabularDirective parses the body of an `@tab` directive; the '@' has
// already been consumed by the caller.
func (p *Parser) parseTabularDirective() (value.Value, error) {
	if p.cur.Kind != lexer.TokIdent || p.cur.Text != "tab" {
		return value.Value{}, &ParseError{Pos: p.cur.Pos, Msg: "expected 'tab' after '@'"}
	}
	if err := p.advance(); err != nil {
		return value.Value{}, err
	}

	if p.cur.Kind == lexer.TokNull { // optional "_"/"∅" schema placeholder
		if err := p.advance(); err != nil {
			return value.Value{}, err
		}
	}

	if p.cur.Kind != lexer.TokLBracket {
		return value.Value{}, &ParseError{Pos: p.cur.Pos, Msg: "expected '[' in tabular header"}
	}
	if err := p.advance(); err != nil {
		return value.Value{}, err
	}

	var cols []string
	for p.cur.Kind != lexer.TokRBracket {
		switch p.cur.Kind {
		case lexer.TokComma, lexer.TokNewline:
			if err := p.advance(); err != nil {
				return value.Value{}, err
			}
		case lexer.TokIdent, lexer.TokString:
			cols = append(cols, p.cur.Text)
			if err := p.advance(); err != nil {
				return value.Value{}, err
			}
		case lexer.TokEOF:
			return value.Value{}, &ParseError{Pos: p.cur.Pos, Msg: "unterminated tabular header"}
		default:
			return value.Value{}, &ParseError{Pos: p.cur.Pos, Msg: "expected column name"}
		}
	}
	if err := p.advance(); err != nil { // consume ']'
		return value.Value{}, err
	}

	for p.cur.Kind == lexer.TokNewline {
		if err := p.advance(); err != nil {
			return value.Value{}, err
		}
	}

	var rows []value.Value
	for {
		switch p.cur.Kind {
		case lexer.TokAt:
			if err := p.advance(); err != nil {
				return value.Value{}, err
			}
			if p.cur.Kind != lexer.TokIdent || p.cur.Text != "end" {
				return value.Value{}, &ParseError{Pos: p.cur.Pos, Msg: "expected 'end' after '@'"}
			}
			if err := p.advance(); err != nil {
				return value.Value{}, err
			}
			return value.ListFromSlice(rows), nil

		case lexer.TokNewline:
			if err := p.advance(); err != nil {
				return value.Value{}, err
			}

		case lexer.TokPipe:
			row, err := p.readTabularRow(cols)
			if err != nil {
				return value.Value{}, err
			}
			rows = append(rows, row)

		case lexer.TokEOF:
			return value.Value{}, &ParseError{Pos: p.cur.Pos, Msg: "unterminated tabular block"}

		default:
			return value.Value{}, &ParseError{Pos: p.cur.Pos, Msg: "expected '|' to start tabular row"}
		}
	}
}

// readTabularRow reads len(cols) cells at raw byte level starting right
// after the opening '|' already consumed as p.cur, then re-lexes from
// wherever the byte reader left the shared cursor.
func (p *Parser) readTabularRow(cols []string) (value.Value, error) {
	cur := p.lex.Cursor()
	entries := make([]value.Entry, 0, len(cols))
	for _, col := range cols {
		raw, err := readCellRaw(cur)
		if err != nil {
			return value.Value{}, err
		}
		unescaped := tabular.UnescapeCell(raw)
		trimmed := strings.TrimSpace(unescaped)

		var cellVal value.Value
		if trimmed == "" || trimmed == "∅" || trimmed == "_" {
			cellVal = value.Null()
		} else {
			v, err := Parse(trimmed)
			if err != nil {
				return value.Value{}, err
			}
			cellVal = v
		}
		entries = append(entries, value.Field(col, cellVal))
	}
	if err := p.advance(); err != nil { // re-lex from the cursor's post-row position
		return value.Value{}, err
	}
	return value.Map(entries...), nil
}

// readCellRaw consumes bytes from c until an unescaped '|', which it also
// consumes, returning the raw (still-escaped) cell text.
func readCellRaw(c *lexer.Cursor) (string, error) {
	start := c.Pos()
	for {
		b, ok := c.PeekByte()
		if !ok {
			return "", &ParseError{Pos: c.Pos(), Msg: "unterminated tabular row"}
		}
		switch b {
		case '\\':
			c.Advance(1)
			if _, ok2 := c.PeekByte(); !ok2 {
				return "", &ParseError{Pos: c.Pos(), Msg: "unterminated escape in tabular cell"}
			}
			c.Advance(1)
		case '|':
			text := c.Slice(start, c.Pos())
			c.Advance(1)
			return text, nil
		case '\n':
			return "", &ParseError{Pos: c.Pos(), Msg: "unterminated tabular row"}
		default:
			c.Advance(1)
		}
	}
}
