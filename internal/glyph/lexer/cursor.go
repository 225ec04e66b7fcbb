package lexer

// Cursor is a byte-position cursor over the source text. The lexer advances
// it while tokenizing; the tabular parser borrows it directly to read raw
// table rows, bypassing tokenization entirely for the duration of a
// `@tab ... @end` block. Each Lexer owns its own Cursor (a tabular cell's
// nested re-parse gets a fresh one) — no package global, so concurrent
// parses never share position state.
type Cursor struct {
	src []byte
	pos int
}

// NewCursor wraps src for byte-level traversal starting at offset 0.
func NewCursor(src []byte) *Cursor {
	return &Cursor{src: src}
}

// Pos returns the current byte offset.
func (c *Cursor) Pos() int { return c.pos }

// SetPos seeks to an absolute byte offset. The parser uses this to rewind
// after a lookahead token turns out to belong to raw tabular text.
func (c *Cursor) SetPos(p int) { c.pos = p }

// Len returns the total source length in bytes.
func (c *Cursor) Len() int { return len(c.src) }

// Eof reports whether the cursor has consumed the entire source.
func (c *Cursor) Eof() bool { return c.pos >= len(c.src) }

// PeekByte returns the byte at the current position without consuming it.
func (c *Cursor) PeekByte() (byte, bool) {
	if c.pos >= len(c.src) {
		return 0, false
	}
	return c.src[c.pos], true
}

// PeekAt returns the byte at pos+offset without moving the cursor.
func (c *Cursor) PeekAt(offset int) (byte, bool) {
	i := c.pos + offset
	if i < 0 || i >= len(c.src) {
		return 0, false
	}
	return c.src[i], true
}

// Advance moves the cursor forward n bytes.
func (c *Cursor) Advance(n int) { c.pos += n }

// Slice returns the raw bytes between two absolute offsets as a string.
func (c *Cursor) Slice(from, to int) string {
	return string(c.src[from:to])
}
