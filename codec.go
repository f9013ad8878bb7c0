package ustring

import (
	"encoding/binary"
	"errors"
	"unicode/utf16"
	"unicode/utf8"
)

// Encoding identifies an external text encoding understood by String.
// The numeric values match the encoding bytes used by ID3v2 frames.
type Encoding int

const (
	// Latin1 is ISO8859-1. 8 bit characters.
	Latin1 Encoding = 0
	// UTF16 is UTF-16 with a byte order mark. 16 bit characters.
	UTF16 Encoding = 1
	// UTF16BE is big endian UTF-16 without a byte order mark.
	UTF16BE Encoding = 2
	// UTF8 is UTF-8. Characters are 8 bits but can occupy up to 4 bytes.
	UTF8 Encoding = 3
	// UTF16LE is little endian UTF-16 without a byte order mark.
	UTF16LE Encoding = 4
)

// ErrEncodingMismatch is returned by constructors given an encoding
// whose character width does not match the source data. The memory is
// never reinterpreted; the resulting String is the null string.
var ErrEncodingMismatch = errors.New("ustring: encoding does not match source width")

func (e Encoding) String() string {
	switch e {
	case Latin1:
		return "Latin1"
	case UTF16:
		return "UTF16"
	case UTF16BE:
		return "UTF16BE"
	case UTF8:
		return "UTF8"
	case UTF16LE:
		return "UTF16LE"
	}
	return "Encoding(?)"
}

// Valid reports whether e is one of the five supported encodings.
func (e Encoding) Valid() bool {
	return e >= Latin1 && e <= UTF16LE
}

// wide reports whether e declares 16-bit characters.
func (e Encoding) wide() bool {
	return e == UTF16 || e == UTF16BE || e == UTF16LE
}

const bom = 0xFEFF

// byteOrder joins the read and append halves of encoding/binary's
// byte-order interfaces; the codec needs both directions.
type byteOrder interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// nativeOrder is the platform byte order. It is also the order assumed
// for a UTF16 stream whose byte order mark is missing, and the order
// written when encoding to UTF16.
var nativeOrder byteOrder = binary.NativeEndian

// nativeIsBig is true on big-endian platforms.
var nativeIsBig = binary.NativeEndian.Uint16([]byte{0x12, 0x34}) == 0x1234

// decodeLatin1 zero-extends each Latin-1 byte to one code unit.
func decodeLatin1(s string) []uint16 {
	units := make([]uint16, len(s))
	for i := 0; i < len(s); i++ {
		units[i] = uint16(s[i])
	}
	return units
}

// decodeUTF8 converts UTF-8 text to code units, producing a surrogate
// pair for every code point above the BMP. Invalid byte sequences
// decode to U+FFFD.
func decodeUTF8(s string) []uint16 {
	size := 0
	for _, c := range s {
		if c >= utf8.RuneSelf && c > 0xFFFF {
			size++
		}
		size++
	}
	units := make([]uint16, size)
	i := 0
	for _, c := range s {
		if c <= 0xFFFF {
			units[i] = uint16(c)
		} else {
			first, second := utf16.EncodeRune(c)
			units[i] = uint16(first)
			i++
			units[i] = uint16(second)
		}
		i++
	}
	return units
}

// decodeUTF16Bytes converts a UTF-16 byte stream to code units. For
// the UTF16 encoding the order comes from the byte order mark, which
// is stripped; without one the platform order is assumed. A trailing
// odd byte is dropped.
func decodeUTF16Bytes(b []byte, e Encoding) []uint16 {
	var order byteOrder
	switch e {
	case UTF16BE:
		order = binary.BigEndian
	case UTF16LE:
		order = binary.LittleEndian
	default:
		order = nativeOrder
		if len(b) >= 2 {
			if b[0] == 0xFE && b[1] == 0xFF {
				order = binary.BigEndian
				b = b[2:]
			} else if b[0] == 0xFF && b[1] == 0xFE {
				order = binary.LittleEndian
				b = b[2:]
			}
		}
	}
	units := make([]uint16, len(b)/2)
	for i := range units {
		units[i] = order.Uint16(b[2*i:])
	}
	return units
}

// decodeUTF16Units normalizes code units that were loaded from a
// stream of the declared order. For UTF16 the byte order mark, if
// present as the first unit, selects the order and is stripped; units
// read in the opposite order show up as 0xFFFE. For UTF16BE and
// UTF16LE each unit is byte-swapped when the declared order differs
// from the platform order.
func decodeUTF16Units(w []uint16, e Encoding) []uint16 {
	swap := false
	switch e {
	case UTF16BE:
		swap = !nativeIsBig
	case UTF16LE:
		swap = nativeIsBig
	default:
		if len(w) >= 1 {
			if w[0] == bom {
				w = w[1:]
			} else if w[0] == 0xFFFE {
				w = w[1:]
				swap = true
			}
		}
	}
	units := make([]uint16, len(w))
	for i, u := range w {
		if swap {
			u = u<<8 | u>>8
		}
		units[i] = u
	}
	return units
}

// latin1Sub replaces code units that Latin-1 cannot represent.
const latin1Sub = '?'

// encodeLatin1 narrows each code unit to one byte. Units above 0xFF
// are substituted with latin1Sub; export never fails.
func encodeLatin1(units []uint16) []byte {
	b := make([]byte, len(units))
	for i, u := range units {
		if u > 0xFF {
			b[i] = latin1Sub
		} else {
			b[i] = byte(u)
		}
	}
	return b
}

// encodeUTF8 converts code units to UTF-8, combining surrogate pairs.
// Unpaired surrogates encode as U+FFFD.
func encodeUTF8(units []uint16) []byte {
	return []byte(string(utf16.Decode(units)))
}

// encodeUTF16Bytes serializes code units in the order declared by e.
// UTF16 writes a byte order mark in the platform order; UTF16BE and
// UTF16LE write none.
func encodeUTF16Bytes(units []uint16, e Encoding) []byte {
	var order byteOrder
	withBOM := false
	switch e {
	case UTF16BE:
		order = binary.BigEndian
	case UTF16LE:
		order = binary.LittleEndian
	default:
		order = nativeOrder
		withBOM = true
	}
	b := make([]byte, 0, 2*len(units)+2)
	if withBOM {
		b = order.AppendUint16(b, bom)
	}
	for _, u := range units {
		b = order.AppendUint16(b, u)
	}
	return b
}
