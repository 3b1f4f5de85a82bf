// Package scratch is a per-frame byte arena for building short strings, such
// as overlay labels, without going through fmt.
//
// Strings returned by View alias the arena. They stay valid until the next
// Reset, which is meant to happen once per frame.
package scratch

import (
	"strconv"
	"unicode/utf8"
	"unsafe"
)

type Buffer struct {
	buf []byte
}

// New returns a buffer with the given initial capacity.
func New(capacity int) *Buffer {
	if capacity <= 0 {
		capacity = 1024
	}
	return &Buffer{buf: make([]byte, 0, capacity)}
}

// Reset clears the buffer length without freeing memory.
func (b *Buffer) Reset() { b.buf = b.buf[:0] }

func (b *Buffer) Len() int { return len(b.buf) }
func (b *Buffer) Cap() int { return cap(b.buf) }

// Mark returns a bookmark to later slice the output.
func (b *Buffer) Mark() int { return len(b.buf) }

// View is a zero-copy string of everything written since mark.
func (b *Buffer) View(mark int) string {
	s := b.buf[mark:]
	if len(s) == 0 {
		return ""
	}
	return unsafe.String(&s[0], len(s))
}

// String copies everything written since mark.
func (b *Buffer) String(mark int) string { return string(b.buf[mark:]) }

// ----- Append primitives (chainable) -----

func (b *Buffer) S(s string) *Buffer {
	b.buf = append(b.buf, s...)
	return b
}

func (b *Buffer) C(c byte) *Buffer {
	b.buf = append(b.buf, c)
	return b
}

func (b *Buffer) R(r rune) *Buffer {
	b.buf = utf8.AppendRune(b.buf, r)
	return b
}

// I appends a base-10 integer.
func (b *Buffer) I(v int) *Buffer {
	b.buf = strconv.AppendInt(b.buf, int64(v), 10)
	return b
}

// F64 appends a float with prec digits after the decimal point.
func (b *Buffer) F64(v float64, prec int) *Buffer {
	b.buf = strconv.AppendFloat(b.buf, v, 'f', prec, 64)
	return b
}

// Pad appends n copies of c.
func (b *Buffer) Pad(n int, c byte) *Buffer {
	for i := 0; i < n; i++ {
		b.buf = append(b.buf, c)
	}
	return b
}

// IW appends v right-aligned in a field of width bytes.
func (b *Buffer) IW(v, width int) *Buffer {
	var tmp [20]byte
	digits := strconv.AppendInt(tmp[:0], int64(v), 10)
	b.Pad(width-len(digits), ' ')
	b.buf = append(b.buf, digits...)
	return b
}

// Field appends "label: v" and returns it as a view.
func (b *Buffer) Field(label string, v int) string {
	m := b.Mark()
	b.S(label).S(": ").I(v)
	return b.View(m)
}
