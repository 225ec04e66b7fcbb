package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allTokens(t *testing.T, src string) []Token {
	t.Helper()
	l := New(src)
	var toks []Token
	for {
		tok, err := l.Next()
		require.NoError(t, err)
		toks = append(toks, tok)
		if tok.Kind == TokEOF {
			return toks
		}
	}
}

func TestLexerPunctuation(t *testing.T) {
	toks := allTokens(t, "{}[]()=:,|^@")
	want := []TokenKind{
		TokLBrace, TokRBrace, TokLBracket, TokRBracket, TokLParen, TokRParen,
		TokEquals, TokColon, TokComma, TokPipe, TokCaret, TokAt, TokEOF,
	}
	require.Len(t, toks, len(want))
	for i, k := range want {
		assert.Equal(t, k, toks[i].Kind, "token %d", i)
	}
}

func TestLexerReservedWords(t *testing.T) {
	tests := []struct {
		src      string
		wantKind TokenKind
		wantBool bool
	}{
		{"t", TokBool, true},
		{"true", TokBool, true},
		{"f", TokBool, false},
		{"false", TokBool, false},
		{"null", TokNull, false},
		{"nil", TokNull, false},
		{"_", TokNull, false},
	}
	for _, tc := range tests {
		t.Run(tc.src, func(t *testing.T) {
			toks := allTokens(t, tc.src)
			require.Len(t, toks, 2)
			assert.Equal(t, tc.wantKind, toks[0].Kind)
			if tc.wantKind == TokBool {
				assert.Equal(t, tc.wantBool, toks[0].Bool)
			}
		})
	}
}

func TestLexerNullSymbol(t *testing.T) {
	toks := allTokens(t, "∅")
	require.Len(t, toks, 2)
	assert.Equal(t, TokNull, toks[0].Kind)
}

func TestLexerNumbers(t *testing.T) {
	tests := []struct {
		src      string
		wantKind TokenKind
	}{
		{"0", TokInt},
		{"-42", TokInt},
		{"3.14", TokFloat},
		{"-0.0", TokFloat},
		{"1e-5", TokFloat},
		{"1.5e+10", TokFloat},
		{"123abc", TokIdent},
		{"-abc", TokIdent},
	}
	for _, tc := range tests {
		t.Run(tc.src, func(t *testing.T) {
			toks := allTokens(t, tc.src)
			require.Len(t, toks, 2)
			assert.Equal(t, tc.wantKind, toks[0].Kind)
			assert.Equal(t, tc.src, toks[0].Text)
		})
	}
}

func TestLexerString(t *testing.T) {
	toks := allTokens(t, `"hello\nworldA"`)
	require.Len(t, toks, 2)
	assert.Equal(t, TokString, toks[0].Kind)
	assert.Equal(t, "hello\nworldA", toks[0].Text)
}

func TestLexerUnterminatedString(t *testing.T) {
	l := New(`"unterminated`)
	_, err := l.Next()
	require.Error(t, err)
	var lexErr *Error
	assert.ErrorAs(t, err, &lexErr)
}

func TestLexerBytes(t *testing.T) {
	toks := allTokens(t, `b64"aGVsbG8="`)
	require.Len(t, toks, 2)
	assert.Equal(t, TokBytes, toks[0].Kind)
	assert.Equal(t, "hello", toks[0].Text)
}

func TestLexerBytesInvalidBase64(t *testing.T) {
	l := New(`b64"!!!"`)
	_, err := l.Next()
	require.Error(t, err)
}

func TestLexerBareIdentNotConfusedWithBytes(t *testing.T) {
	toks := allTokens(t, "b64abc")
	require.Len(t, toks, 2)
	assert.Equal(t, TokIdent, toks[0].Kind)
	assert.Equal(t, "b64abc", toks[0].Text)
}

func TestLexerNewlineSignificant(t *testing.T) {
	toks := allTokens(t, "a\nb")
	require.Len(t, toks, 4)
	assert.Equal(t, TokIdent, toks[0].Kind)
	assert.Equal(t, TokNewline, toks[1].Kind)
	assert.Equal(t, TokIdent, toks[2].Kind)
	assert.Equal(t, TokEOF, toks[3].Kind)
}

func TestLexerWhitespaceInsignificant(t *testing.T) {
	toks := allTokens(t, "a   \t b")
	require.Len(t, toks, 3)
	assert.Equal(t, TokIdent, toks[0].Kind)
	assert.Equal(t, TokIdent, toks[1].Kind)
}

func TestLexerIdentCharset(t *testing.T) {
	toks := allTokens(t, "foo-bar.baz/qux+zap@host")
	require.Len(t, toks, 2)
	assert.Equal(t, TokIdent, toks[0].Kind)
	assert.Equal(t, "foo-bar.baz/qux+zap@host", toks[0].Text)
}

func TestLexerCursorRewindForTabularRows(t *testing.T) {
	l := New("@tab _ [a]\n|1|\n@end")
	tok, err := l.Next()
	require.NoError(t, err)
	assert.Equal(t, TokAt, tok.Kind)

	mark := l.Cursor().Pos()
	l.Cursor().SetPos(mark)
	assert.Equal(t, mark, l.Cursor().Pos())
}
