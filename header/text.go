package header

// Unquote removes one layer of matching double or single quotes around s.
// Anything else, including a lone quote, is returned unchanged.
func Unquote(s string) string {
	if len(s) < 2 {
		return s
	}
	if q := s[0]; (q == '"' || q == '\'') && s[len(s)-1] == q {
		return s[1 : len(s)-1]
	}
	return s
}
