package ustring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTo8Bit(t *testing.T) {
	s := FromString("café")

	assert.Equal(t, "caf\xe9", s.To8Bit(false))
	assert.Equal(t, "café", s.To8Bit(true))
}

func TestLatin1ExportSubstitution(t *testing.T) {
	s := FromString("あtrack𝄞")

	got := s.To8Bit(false)
	// One '?' per code unit: the astral code point is two units.
	assert.Equal(t, "?track??", got)
}

func TestCStringCache(t *testing.T) {
	s := FromString("café")

	first := s.CString(false)
	second := s.CString(false)
	assert.Equal(t, &first[0], &second[0], "repeated export must reuse the cache")

	// Requesting the other encoding replaces the single cache slot.
	utf8Form := s.CString(true)
	assert.Equal(t, []byte("café"), utf8Form)
	again := s.CString(false)
	assert.Equal(t, []byte("caf\xe9"), again)
	assert.NotEqual(t, &first[0], &again[0], "cache slot was replaced in between")
}

func TestCacheInvalidatedByMutation(t *testing.T) {
	s := FromString("ab")
	before := s.CString(true)
	assert.Equal(t, []byte("ab"), before)

	s.AppendString("c")
	assert.Equal(t, []byte("abc"), s.CString(true))
}

func TestCachePerBuffer(t *testing.T) {
	s := FromString("shared")
	c := s.Clone()

	// The clone shares the buffer, so it also shares the cache.
	first := s.CString(true)
	fromClone := c.CString(true)
	assert.Equal(t, &first[0], &fromClone[0])

	// After the clone detaches, its cache starts empty and the
	// source's is untouched.
	c.AppendString("!")
	assert.Equal(t, []byte("shared"), s.CString(true))
	assert.Equal(t, []byte("shared!"), c.CString(true))
}

func TestDataEncodings(t *testing.T) {
	s := FromString("Hi")

	assert.Equal(t, []byte("Hi"), s.Data(Latin1))
	assert.Equal(t, []byte("Hi"), s.Data(UTF8))
	assert.Equal(t, []byte{0x00, 0x48, 0x00, 0x69}, s.Data(UTF16BE))
	assert.Equal(t, []byte{0x48, 0x00, 0x69, 0x00}, s.Data(UTF16LE))

	bommed := s.Data(UTF16)
	assert.Len(t, bommed, 6)
	if nativeIsBig {
		assert.Equal(t, []byte{0xFE, 0xFF}, bommed[:2])
	} else {
		assert.Equal(t, []byte{0xFF, 0xFE}, bommed[:2])
	}

	assert.Nil(t, s.Data(Encoding(9)))
}

func TestStringer(t *testing.T) {
	s := FromString("Track \U0001D11E")
	assert.Equal(t, "Track \U0001D11E", s.String())
	assert.Equal(t, s.ToString(), s.String())
}

func TestEmptyExports(t *testing.T) {
	empty := FromString("")
	assert.Equal(t, "", empty.To8Bit(false))
	assert.Equal(t, "", empty.To8Bit(true))
	assert.Empty(t, empty.Data(UTF8))

	var null String
	assert.Equal(t, "", null.ToString())
	assert.Empty(t, null.Data(Latin1))
}
