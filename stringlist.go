package ustring

// StringList is an ordered sequence of Strings, the shape produced by
// Split. It is a plain slice; the usual slice operations apply.
type StringList []String

// ToString concatenates the list's elements, inserting separator
// between consecutive elements.
func (l StringList) ToString(separator String) String {
	var out String
	for i, s := range l {
		if i > 0 {
			out.Append(separator)
		}
		out.Append(s)
	}
	if out.IsNull() {
		return String{d: emptyBuffer}
	}
	return out
}

// Contains reports whether the list holds an element equal to s.
func (l StringList) Contains(s String) bool {
	for _, e := range l {
		if e.Equal(s) {
			return true
		}
	}
	return false
}
