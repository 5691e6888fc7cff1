package warctext

// StringOps groups the byte-level whitespace and casing primitives shared
// by the WARC header parser and the HTML extractor's serializer. All
// functions operate on bytes; none decode multi-byte sequences, since
// spec-level whitespace and ASCII-case rules are defined byte-by-byte.

// isSpaceByte reports whether b is ASCII whitespace, matching the C
// isspace() set used by the original header-block grammar.
func isSpaceByte(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	default:
		return false
	}
}

// Strip removes leading and trailing ASCII whitespace from s.
func Strip(s []byte) []byte {
	start := 0
	for start < len(s) && isSpaceByte(s[start]) {
		start++
	}
	end := len(s)
	for end > start && isSpaceByte(s[end-1]) {
		end--
	}
	return s[start:end]
}

// StripString is the string convenience wrapper around Strip.
func StripString(s string) string {
	return string(Strip([]byte(s)))
}

// CollapseWS returns a copy of s in which every maximal run of whitespace
// bytes is replaced by a single space (0x20). Empty input yields empty
// output.
func CollapseWS(s []byte) []byte {
	out := make([]byte, 0, len(s))
	inRun := false
	for _, b := range s {
		if isSpaceByte(b) {
			if !inRun {
				out = append(out, ' ')
				inRun = true
			}
			continue
		}
		out = append(out, b)
		inRun = false
	}
	return out
}

// CollapseWSString is the string convenience wrapper around CollapseWS.
func CollapseWSString(s string) string {
	return string(CollapseWS([]byte(s)))
}

// ToLowerASCII maps A-Z to a-z in place on a copy of s; other bytes pass
// through unchanged.
func ToLowerASCII(s []byte) []byte {
	out := make([]byte, len(s))
	for i, b := range s {
		if b >= 'A' && b <= 'Z' {
			b += 'a' - 'A'
		}
		out[i] = b
	}
	return out
}

// ToLowerASCIIString is the string convenience wrapper around ToLowerASCII.
func ToLowerASCIIString(s string) string {
	return string(ToLowerASCII([]byte(s)))
}

// IndentNewlines inserts 2*depth spaces immediately after every '\n' in s.
func IndentNewlines(s string, depth int) string {
	if depth <= 0 || s == "" {
		return s
	}
	indent := make([]byte, 2*depth)
	for i := range indent {
		indent[i] = ' '
	}
	out := make([]byte, 0, len(s)+len(indent))
	for i := 0; i < len(s); i++ {
		out = append(out, s[i])
		if s[i] == '\n' {
			out = append(out, indent...)
		}
	}
	return string(out)
}
