package ustring

import (
	"fmt"
	"unicode/utf16"
	"unsafe"
)

// NotFound is returned by the search operations when the pattern does
// not occur, and may be passed as a length or offset argument meaning
// "until the end of the string".
const NotFound = -1

// String is an implicitly shared wide string. The text is stored as
// UTF-16 code units without a byte order mark; indexing, lengths and
// search offsets all count code units, so a code point above the BMP
// occupies two positions.
//
// The zero value is the null string: empty, and distinct from an
// ordinary zero-length string built by FromString("").
//
// Use Clone to copy a String: the clone shares the code units and only
// a share count is bumped, which is what makes pass-by-value usage
// cheap. Mutating methods detach onto a private copy first, so a clone
// and its source never observe each other's changes.
//
// A plain Go struct copy also shares the buffer, without adjusting the
// count. Writing through such a copy is still isolated: a mutator only
// writes in place when its own handle claimed the buffer by an earlier
// write, so an unclaimed copy detaches first. The one thing a plain
// copy cannot give is the reverse guarantee: a handle that has already
// claimed its buffer keeps writing in place and does not know about
// copies taken of it in between. Use Clone whenever two handles
// outlive one another.
type String struct {
	d *buffer
}

// Null is the null string, provided for convenience. It equals the
// zero value of String.
var Null = String{}

// buf never returns nil: the null handle maps to the null sentinel.
func (s String) buf() *buffer {
	if s.d == nil {
		return nullBuffer
	}
	return s.d
}

// FromString decodes a Go (UTF-8) string. An empty input produces an
// empty, non-null String.
func FromString(s string) String {
	if len(s) == 0 {
		return String{d: emptyBuffer}
	}
	return String{d: newBuffer(decodeUTF8(s))}
}

// FromLatin1 treats each byte of s as a Latin-1 code point. An empty
// input produces an empty, non-null String.
func FromLatin1(s string) String {
	if len(s) == 0 {
		return String{d: emptyBuffer}
	}
	return String{d: newBuffer(decodeLatin1(s))}
}

// FromText decodes 8-bit character text in one of the 8-bit encodings.
// Passing a 16-bit encoding is a contract violation and returns
// ErrEncodingMismatch with the null string; the bytes are never
// reinterpreted as wide characters.
func FromText(s string, e Encoding) (String, error) {
	switch e {
	case Latin1:
		return FromLatin1(s), nil
	case UTF8:
		return FromString(s), nil
	}
	if e.wide() {
		return Null, fmt.Errorf("ustring: 8-bit text with %v: %w", e, ErrEncodingMismatch)
	}
	return Null, fmt.Errorf("ustring: unknown encoding %d", int(e))
}

// FromUTF16 decodes native code units that were read from a stream of
// the declared 16-bit order: UTF16 honors and strips a leading byte
// order mark, UTF16BE and UTF16LE byte-swap when the declared order
// differs from the platform's. Passing an 8-bit encoding is a contract
// violation and returns ErrEncodingMismatch with the null string.
func FromUTF16(units []uint16, e Encoding) (String, error) {
	if !e.wide() {
		if !e.Valid() {
			return Null, fmt.Errorf("ustring: unknown encoding %d", int(e))
		}
		return Null, fmt.Errorf("ustring: wide text with %v: %w", e, ErrEncodingMismatch)
	}
	decoded := decodeUTF16Units(units, e)
	if len(decoded) == 0 {
		return String{d: emptyBuffer}, nil
	}
	return String{d: newBuffer(decoded)}, nil
}

// FromBytes decodes a raw byte sequence, the usual construction path
// when reading tag data. All five encodings are accepted, since bytes
// can carry either character width.
func FromBytes(b []byte, e Encoding) (String, error) {
	if !e.Valid() {
		return Null, fmt.Errorf("ustring: unknown encoding %d", int(e))
	}
	var units []uint16
	switch e {
	case Latin1:
		units = decodeLatin1(string(b))
	case UTF8:
		units = decodeUTF8(string(b))
	default:
		units = decodeUTF16Bytes(b, e)
	}
	if len(units) == 0 {
		return String{d: emptyBuffer}, nil
	}
	return String{d: newBuffer(units)}, nil
}

// FromRune builds a one-character String; a code point above the BMP
// becomes a surrogate pair.
func FromRune(r rune) String {
	if r <= 0xFFFF {
		return String{d: newBuffer([]uint16{uint16(r)})}
	}
	first, second := utf16.EncodeRune(r)
	return String{d: newBuffer([]uint16{uint16(first), uint16(second)})}
}

// FromByte builds a one-character String from a Latin-1 byte.
func FromByte(c byte) String {
	return String{d: newBuffer([]uint16{uint16(c)})}
}

// Clone returns a shallow, implicitly shared copy. No character data
// is copied; the buffer's share count is incremented.
func (s String) Clone() String {
	if s.d == nil {
		return String{}
	}
	return String{d: s.d.acquire()}
}

// Assign replaces the handle's contents with a shared reference to
// other, releasing the previous buffer.
func (s *String) Assign(other String) {
	if s.d == other.d {
		return
	}
	old := s.d
	s.d = other.buf().acquire()
	if old != nil {
		old.release()
	}
}

// Clear resets the handle to the empty (non-null) string, releasing
// the previous buffer.
func (s *String) Clear() {
	if s.d != nil {
		s.d.release()
	}
	s.d = emptyBuffer
}

// detach ensures the handle exclusively owns its buffer so that it is
// safe to mutate in place. Exclusive means the share count is one AND
// this very handle claimed the buffer by a previous write: a plain
// struct copy aliases a buffer without touching the count, so the
// claim check is what pushes such a copy onto its own buffer on first
// write instead of corrupting its siblings. When already exclusive
// this only drops the stale export cache; otherwise the code units
// are deep-copied into a fresh buffer, claimed for this handle, and
// the old one is released.
func (s *String) detach() {
	b := s.buf()
	if !b.shared() && b.owner == uintptr(unsafe.Pointer(s)) {
		b.dropExport()
		return
	}
	units := make([]uint16, len(b.units))
	copy(units, b.units)
	b.release()
	nb := newBuffer(units)
	nb.owner = uintptr(unsafe.Pointer(s))
	s.d = nb
}

// Len returns the length of the string in UTF-16 code units.
func (s String) Len() int {
	return len(s.buf().units)
}

// IsEmpty reports whether the string has zero length. The null string
// is empty too; see IsNull.
func (s String) IsEmpty() bool {
	return len(s.buf().units) == 0
}

// IsNull reports whether this is the null string, i.e. "no string" as
// opposed to a string of length zero.
func (s String) IsNull() bool {
	return s.buf().null
}

// At returns the code unit at position i. It panics when i is out of
// range, like indexing a slice.
func (s String) At(i int) uint16 {
	return s.buf().units[i]
}

// SetAt writes the code unit at position i, detaching first. It panics
// when i is out of range.
func (s *String) SetAt(i int, c uint16) {
	if i < 0 || i >= len(s.buf().units) {
		panic("ustring: index out of range")
	}
	s.detach()
	s.d.units[i] = c
}

// UTF16 returns the internal code-unit sequence. The slice is a
// read-only view into the shared buffer; callers must not modify it.
func (s String) UTF16() []uint16 {
	return s.buf().units
}

// ShareCount returns the number of handles sharing this string's
// buffer. The null and empty sentinels report 0. Intended for tests
// and diagnostics of the copy-on-write behavior.
func (s String) ShareCount() int32 {
	b := s.buf()
	if b.pinned {
		return 0
	}
	return b.refs.Load()
}
