package indent

import "strings"

// String indents every non-empty line of s by levels steps of
// [DefaultStyle]. Blank lines stay blank, and a trailing newline is
// preserved rather than appended.
func String(s string, levels int) string {
	return DefaultStyle.Apply(s, levels)
}

// Apply indents every non-empty line of s by levels steps of this style.
func (st Style) Apply(s string, levels int) string {
	var b strings.Builder
	w := st.Writer(&b)
	for range levels {
		w.More()
	}
	w.WriteString(s) // strings.Builder never fails
	return b.String()
}
