// Package ustring implements an implicitly shared, copy-on-write wide
// string for media-metadata code, where tag fields, file names and
// comments are passed around by value far more often than they are
// modified.
//
// A String stores its text as UTF-16 code units. Copying one with
// Clone is O(1): the copy shares the underlying buffer and only the
// share count changes. The first mutation through any handle detaches
// it onto a private copy of the code units, so holders of the original
// never observe the change.
//
// Strings are constructed from, and exported to, the five encodings
// used by common tag formats: Latin-1, UTF-16 with a byte order mark,
// UTF-16BE, UTF-16LE and UTF-8. Internally there is never a BOM and
// the code units are plain native uint16 values; all byte-order work
// happens at the []byte boundary.
//
// The zero value of String is the null string, which is empty but
// distinguishable from an ordinary zero-length string:
//
//	var s ustring.String
//	s.IsNull()                     // true
//	ustring.FromString("").IsNull() // false
//
// Case mapping, whitespace trimming and numeric parsing are ASCII-only
// by contract. There is no Unicode normalization or collation;
// comparisons are code-unit-wise.
package ustring
