package ustring

// Find returns the position of the first occurrence of pattern at or
// after offset, or NotFound. An empty pattern matches at any position
// up to and including the end of the string. An offset outside
// [0, Len()] yields NotFound.
func (s String) Find(pattern String, offset int) int {
	units := s.buf().units
	pat := pattern.buf().units
	if offset < 0 || offset > len(units) {
		return NotFound
	}
	if len(pat) == 0 {
		return offset
	}
	for i := offset; i+len(pat) <= len(units); i++ {
		if matchAt(units, pat, i) {
			return i
		}
	}
	return NotFound
}

// RFind returns the position of the last occurrence of pattern that
// begins at or before offset, or NotFound. Passing NotFound (or any
// offset beyond the string) searches from the end. An empty pattern
// matches at min(offset, Len()).
func (s String) RFind(pattern String, offset int) int {
	units := s.buf().units
	pat := pattern.buf().units
	if len(pat) == 0 {
		if offset < 0 || offset > len(units) {
			return len(units)
		}
		return offset
	}
	start := len(units) - len(pat)
	if offset >= 0 && offset < start {
		start = offset
	}
	for i := start; i >= 0; i-- {
		if matchAt(units, pat, i) {
			return i
		}
	}
	return NotFound
}

func matchAt(units, pat []uint16, at int) bool {
	for j, p := range pat {
		if units[at+j] != p {
			return false
		}
	}
	return true
}

// StartsWith reports whether the string begins with prefix. An empty
// prefix always matches.
func (s String) StartsWith(prefix String) bool {
	units := s.buf().units
	pat := prefix.buf().units
	if len(pat) > len(units) {
		return false
	}
	return matchAt(units, pat, 0)
}

// Split breaks the string on each non-overlapping occurrence of
// separator, scanning left to right. Consecutive separators produce
// empty fields and the result always has at least one element, so
// "a,b,,c" split on "," gives ["a" "b" "" "c"] and a string without
// the separator comes back whole. An empty separator never matches;
// the result is the whole string as a single element.
func (s String) Split(separator String) StringList {
	if separator.Len() == 0 {
		return StringList{s.Clone()}
	}
	var list StringList
	offset := 0
	for {
		pos := s.Find(separator, offset)
		if pos == NotFound {
			list = append(list, s.Substr(offset, NotFound))
			return list
		}
		list = append(list, s.Substr(offset, pos-offset))
		offset = pos + separator.Len()
	}
}

// Substr extracts the substring starting at position and continuing
// for n code units. Out-of-range arguments clamp: a position at or
// beyond the end yields an empty string, and n < 0 (conventionally
// NotFound) or n past the end means "until the end". The result never
// shares mutable state with the source; the full-range case shares the
// buffer, which the copy-on-write protocol keeps safe.
func (s String) Substr(position, n int) String {
	units := s.buf().units
	if position < 0 {
		position = 0
	}
	if position >= len(units) {
		return String{d: emptyBuffer}
	}
	if n < 0 || n > len(units)-position {
		n = len(units) - position
	}
	if position == 0 && n == len(units) {
		return s.Clone()
	}
	if n == 0 {
		return String{d: emptyBuffer}
	}
	sub := make([]uint16, n)
	copy(sub, units[position:position+n])
	return String{d: newBuffer(sub)}
}

// Append appends other to the string in place and returns s for
// chaining. The handle detaches before writing, so other holders of
// the previous buffer are unaffected.
func (s *String) Append(other String) *String {
	if other.Len() == 0 {
		return s
	}
	// other may share s's buffer; capture the units before detaching.
	src := other.buf().units
	s.detach()
	s.d.units = append(s.d.units, src...)
	return s
}

// AppendString appends a Go (UTF-8) string in place.
func (s *String) AppendString(text string) *String {
	if len(text) == 0 {
		return s
	}
	units := decodeUTF8(text)
	s.detach()
	s.d.units = append(s.d.units, units...)
	return s
}

// AppendLatin1 appends 8-bit Latin-1 text in place.
func (s *String) AppendLatin1(text string) *String {
	if len(text) == 0 {
		return s
	}
	units := decodeLatin1(text)
	s.detach()
	s.d.units = append(s.d.units, units...)
	return s
}

// AppendRune appends one code point in place; a code point above the
// BMP appends a surrogate pair.
func (s *String) AppendRune(r rune) *String {
	return s.Append(FromRune(r))
}

// AppendByte appends one Latin-1 byte in place.
func (s *String) AppendByte(c byte) *String {
	s.detach()
	s.d.units = append(s.d.units, uint16(c))
	return s
}

// Concat returns a new String holding a followed by b. Neither
// argument is modified.
func Concat(a, b String) String {
	au := a.buf().units
	bu := b.buf().units
	if len(au)+len(bu) == 0 {
		return String{d: emptyBuffer}
	}
	units := make([]uint16, 0, len(au)+len(bu))
	units = append(units, au...)
	units = append(units, bu...)
	return String{d: newBuffer(units)}
}

// Upper returns a copy with the ASCII letters a-z folded to upper
// case. All other code units pass through unchanged; this is not a
// locale-aware case mapping.
func (s String) Upper() String {
	units := s.buf().units
	if len(units) == 0 {
		return s.Clone()
	}
	up := make([]uint16, len(units))
	for i, u := range units {
		if u >= 'a' && u <= 'z' {
			u -= 'a' - 'A'
		}
		up[i] = u
	}
	return String{d: newBuffer(up)}
}

// asciiSpace is the fixed whitespace set trimmed by StripWhiteSpace:
// tab, newline, vertical tab, form feed, carriage return and space.
func asciiSpace(u uint16) bool {
	return u == '\t' || u == '\n' || u == '\v' || u == '\f' || u == '\r' || u == ' '
}

// StripWhiteSpace returns a copy with leading and trailing ASCII
// whitespace removed.
func (s String) StripWhiteSpace() String {
	units := s.buf().units
	begin := 0
	for begin < len(units) && asciiSpace(units[begin]) {
		begin++
	}
	end := len(units)
	for end > begin && asciiSpace(units[end-1]) {
		end--
	}
	return s.Substr(begin, end-begin)
}

// IsLatin1 reports whether every code unit is representable in
// Latin-1, i.e. within 0-0xFF.
func (s String) IsLatin1() bool {
	for _, u := range s.buf().units {
		if u > 0xFF {
			return false
		}
	}
	return true
}

// IsAscii reports whether every code unit is 7-bit ASCII.
func (s String) IsAscii() bool {
	for _, u := range s.buf().units {
		if u > 0x7F {
			return false
		}
	}
	return true
}

// Equal reports code-unit-wise equality. There is no normalization;
// two strings spelling one glyph differently compare unequal.
func (s String) Equal(other String) bool {
	a := s.buf().units
	b := other.buf().units
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// EqualLatin1 compares against narrow text, which is decoded as
// Latin-1 first, the same assumption the narrow constructors make.
func (s String) EqualLatin1(text string) bool {
	units := s.buf().units
	if len(units) != len(text) {
		return false
	}
	for i := 0; i < len(text); i++ {
		if units[i] != uint16(text[i]) {
			return false
		}
	}
	return true
}

// EqualUTF16 compares against a native code-unit sequence.
func (s String) EqualUTF16(units []uint16) bool {
	a := s.buf().units
	if len(a) != len(units) {
		return false
	}
	for i := range a {
		if a[i] != units[i] {
			return false
		}
	}
	return true
}

// Compare orders two strings by code-unit-wise lexicographic
// comparison, returning -1, 0 or +1.
func (s String) Compare(other String) int {
	a := s.buf().units
	b := other.buf().units
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}

// Less reports whether s orders before other. Suitable as a map or
// sort comparator.
func (s String) Less(other String) bool {
	return s.Compare(other) < 0
}
