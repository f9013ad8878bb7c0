package ustring

import "unicode/utf16"

// To8Bit returns the string in an 8-bit encoding: UTF-8 when unicode
// is true, Latin-1 otherwise. Export is total; with unicode false,
// code units outside Latin-1 come back as '?'. The result is an
// independent snapshot.
func (s String) To8Bit(unicode bool) string {
	return string(s.buf().export8(export8Enc(unicode)))
}

// CString returns the string's cached 8-bit byte form: UTF-8 when
// unicode is true, Latin-1 (with '?' substitution) otherwise.
//
// The slice is a borrowed view owned by the string's buffer. It stays
// valid until the next call to CString or To8Bit with a different
// encoding on any handle sharing the buffer, or until a mutation
// detaches. Callers must not modify or retain it across such calls;
// use To8Bit for a snapshot.
func (s String) CString(unicode bool) []byte {
	return s.buf().export8(export8Enc(unicode))
}

func export8Enc(unicode bool) Encoding {
	if unicode {
		return UTF8
	}
	return Latin1
}

// ToString returns the string as a native Go string, encoded UTF-8.
// Together with FromString this makes UTF-8 the lossless interchange
// form for foreign string types.
func (s String) ToString() string {
	return string(utf16.Decode(s.buf().units))
}

// String implements fmt.Stringer; it is equivalent to ToString.
func (s String) String() string {
	return s.ToString()
}

// Data serializes the string in any of the five encodings, the output
// path when writing tag data. Latin1 and UTF8 produce 8-bit data
// (Latin1 substituting '?' for unrepresentable units); UTF16 produces
// platform-order data with a byte order mark; UTF16BE and UTF16LE
// produce the declared order without one. An invalid encoding yields
// nil.
func (s String) Data(e Encoding) []byte {
	units := s.buf().units
	switch e {
	case Latin1:
		return encodeLatin1(units)
	case UTF8:
		return encodeUTF8(units)
	case UTF16, UTF16BE, UTF16LE:
		return encodeUTF16Bytes(units, e)
	}
	return nil
}
