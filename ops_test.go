package ustring

import "testing"

func TestFind(t *testing.T) {
	s := FromString("OggS....OggS....OggS")

	tests := []struct {
		pattern string
		offset  int
		want    int
	}{
		{"OggS", 0, 0},
		{"OggS", 1, 8},
		{"OggS", 9, 16},
		{"OggS", 17, NotFound},
		{"FLAC", 0, NotFound},
		{"", 0, 0},
		{"", 5, 5},
		{"", 20, 20},
		{"OggS", 20, NotFound},
		{"OggS", 21, NotFound}, // beyond the end
		{"OggS", -1, NotFound},
	}
	for _, tc := range tests {
		if got := s.Find(FromString(tc.pattern), tc.offset); got != tc.want {
			t.Errorf("Find(%q, %d) = %d, want %d", tc.pattern, tc.offset, got, tc.want)
		}
	}
}

func TestFindSentinelDistinctFromZero(t *testing.T) {
	s := FromString("abc")
	if got := s.Find(FromString("a"), 0); got != 0 {
		t.Fatalf("expected a valid index 0, got %d", got)
	}
	if got := s.Find(FromString("z"), 0); got != NotFound {
		t.Fatalf("expected NotFound, got %d", got)
	}
	if NotFound == 0 {
		t.Fatal("NotFound must be distinct from every valid index")
	}
}

func TestRFind(t *testing.T) {
	s := FromString("OggS....OggS....OggS")

	tests := []struct {
		pattern string
		offset  int
		want    int
	}{
		{"OggS", NotFound, 16},
		{"OggS", 16, 16},
		{"OggS", 15, 8},
		{"OggS", 7, 0},
		{"OggS", 0, 0},
		{"FLAC", NotFound, NotFound},
		{"", NotFound, 20},
		{"", 5, 5},
	}
	for _, tc := range tests {
		if got := s.RFind(FromString(tc.pattern), tc.offset); got != tc.want {
			t.Errorf("RFind(%q, %d) = %d, want %d", tc.pattern, tc.offset, got, tc.want)
		}
	}
}

func TestSplit(t *testing.T) {
	tests := []struct {
		in   string
		sep  string
		want []string
	}{
		{"a,b,,c", ",", []string{"a", "b", "", "c"}},
		{"abc", ",", []string{"abc"}},
		{"", ",", []string{""}},
		{",", ",", []string{"", ""}},
		{"a, b, c", ", ", []string{"a", "b", "c"}},
		{"abc", "", []string{"abc"}},
		{"aaa", "aa", []string{"", "a"}}, // non-overlapping scan
	}
	for _, tc := range tests {
		got := FromString(tc.in).Split(FromString(tc.sep))
		if len(got) != len(tc.want) {
			t.Errorf("Split(%q, %q): %d elements, want %d", tc.in, tc.sep, len(got), len(tc.want))
			continue
		}
		for i := range got {
			if got[i].ToString() != tc.want[i] {
				t.Errorf("Split(%q, %q)[%d] = %q, want %q", tc.in, tc.sep, i, got[i].ToString(), tc.want[i])
			}
		}
	}
}

func TestSplitDoesNotDetachSource(t *testing.T) {
	s := FromString("a,b")
	_ = s.Split(FromString(","))
	if got := s.ToString(); got != "a,b" {
		t.Fatalf("source changed by split: %q", got)
	}
}

func TestStartsWith(t *testing.T) {
	s := FromString("ID3v2.4")
	if !s.StartsWith(FromString("ID3")) {
		t.Fatal("expected prefix match")
	}
	if !s.StartsWith(FromString("")) {
		t.Fatal("empty prefix always matches")
	}
	if s.StartsWith(FromString("ID3v2.4.0")) {
		t.Fatal("longer prefix must not match")
	}
	if s.StartsWith(FromString("id3")) {
		t.Fatal("comparison is case sensitive")
	}
}

func TestSubstr(t *testing.T) {
	s := FromString("title=Track 01")

	tests := []struct {
		pos, n int
		want   string
	}{
		{0, 5, "title"},
		{6, NotFound, "Track 01"},
		{6, 100, "Track 01"}, // n clamps to the end
		{0, NotFound, "title=Track 01"},
		{14, NotFound, ""}, // boundary: position == Len()
		{99, 3, ""},        // beyond the end clamps to empty
		{0, 0, ""},
	}
	for _, tc := range tests {
		got := s.Substr(tc.pos, tc.n)
		if got.ToString() != tc.want {
			t.Errorf("Substr(%d, %d) = %q, want %q", tc.pos, tc.n, got.ToString(), tc.want)
		}
		if got.IsNull() {
			t.Errorf("Substr(%d, %d) must not be null", tc.pos, tc.n)
		}
	}
}

func TestSubstrIsolation(t *testing.T) {
	s := FromString("abcdef")
	sub := s.Substr(0, NotFound) // whole range shares the buffer
	sub.AppendString("!")
	if got := s.ToString(); got != "abcdef" {
		t.Fatalf("source changed by substring mutation: %q", got)
	}
}

func TestAppendFamily(t *testing.T) {
	var s String // appending to the null string works
	s.Append(FromString("a"))
	s.AppendString("ß")
	s.AppendLatin1("\xe9")
	s.AppendRune(0x1D11E)
	s.AppendByte('!')

	if got := s.ToString(); got != "aßé\U0001D11E!" {
		t.Fatalf("unexpected result: %q", got)
	}
	if s.IsNull() {
		t.Fatal("a mutated string is no longer null")
	}
}

func TestAppendSelf(t *testing.T) {
	s := FromString("ab")
	s.Append(s)
	if got := s.ToString(); got != "abab" {
		t.Fatalf("self append: %q", got)
	}
}

func TestConcat(t *testing.T) {
	a := FromString("dir/")
	b := FromString("file.mp3")
	c := Concat(a, b)

	if got := c.ToString(); got != "dir/file.mp3" {
		t.Fatalf("Concat: %q", got)
	}
	if a.ToString() != "dir/" || b.ToString() != "file.mp3" {
		t.Fatal("Concat must not modify its arguments")
	}
	if got := Concat(Null, Null); !got.IsEmpty() {
		t.Fatalf("Concat of empties: %q", got.ToString())
	}
}

func TestUpperASCIIOnly(t *testing.T) {
	tests := []struct{ in, want string }{
		{"café", "CAFé"}, // only c, a, f fold; é passes through
		{"track 01", "TRACK 01"},
		{"ALREADY", "ALREADY"},
		{"", ""},
		{"あa", "あA"},
	}
	for _, tc := range tests {
		if got := FromString(tc.in).Upper().ToString(); got != tc.want {
			t.Errorf("Upper(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestStripWhiteSpace(t *testing.T) {
	tests := []struct{ in, want string }{
		{"  Track 01  ", "Track 01"},
		{"\t\n\v\f\r Track\r\n", "Track"},
		{"inner  space stays", "inner  space stays"},
		{" x", " x"}, // NBSP is not ASCII whitespace
		{"   ", ""},
		{"", ""},
	}
	for _, tc := range tests {
		if got := FromString(tc.in).StripWhiteSpace().ToString(); got != tc.want {
			t.Errorf("StripWhiteSpace(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestIsLatin1IsAscii(t *testing.T) {
	tests := []struct {
		in     string
		latin1 bool
		ascii  bool
	}{
		{"plain", true, true},
		{"café", true, false},
		{"あ", false, false},
		{"", true, true},
	}
	for _, tc := range tests {
		s := FromString(tc.in)
		if got := s.IsLatin1(); got != tc.latin1 {
			t.Errorf("IsLatin1(%q) = %v", tc.in, got)
		}
		if got := s.IsAscii(); got != tc.ascii {
			t.Errorf("IsAscii(%q) = %v", tc.in, got)
		}
	}
}

func TestEqualOverloads(t *testing.T) {
	s := FromString("café")

	if !s.EqualLatin1("caf\xe9") {
		t.Fatal("narrow comparison decodes as Latin-1 first")
	}
	if s.EqualLatin1("café") {
		t.Fatal("UTF-8 bytes are not Latin-1; these must differ")
	}
	if !s.EqualUTF16([]uint16{'c', 'a', 'f', 0xE9}) {
		t.Fatal("wide comparison against native units")
	}
	if !s.Equal(FromString("café")) {
		t.Fatal("value comparison")
	}
	if s.Equal(FromString("cafe")) {
		t.Fatal("distinct values compare unequal")
	}
}

func TestCompareAndLess(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"a", "b", -1},
		{"b", "a", 1},
		{"a", "a", 0},
		{"a", "ab", -1},
		{"ab", "a", 1},
		{"", "", 0},
		{"B", "a", -1}, // code-unit order, not case-insensitive
	}
	for _, tc := range tests {
		a, b := FromString(tc.a), FromString(tc.b)
		if got := a.Compare(b); got != tc.want {
			t.Errorf("Compare(%q, %q) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
		if got := a.Less(b); got != (tc.want < 0) {
			t.Errorf("Less(%q, %q) = %v", tc.a, tc.b, got)
		}
	}
}
