package parsedresult

import "strings"

// matchPrefixedField extracts every field following prefix up to (but not
// including) an unescaped endChar. A backslash escapes endChar or another
// backslash; any other escape sequence is left untouched. trim controls
// whether surrounding whitespace is stripped from each match.
func matchPrefixedField(prefix, rawText string, endChar byte, trim bool) []string {
	var matches []string
	i := 0
	for {
		idx := strings.Index(rawText[i:], prefix)
		if idx < 0 {
			break
		}
		i += idx + len(prefix)

		start := i
		for i < len(rawText) {
			c := rawText[i]
			switch c {
			case '\\':
				// skip the escaped character entirely
				i += 2
				continue
			case endChar:
				matches = append(matches, unescapeBackslash(rawText[start:i], endChar))
				i++
				goto next
			}
			i++
		}
		// Unterminated field: take the rest of the string.
		matches = append(matches, unescapeBackslash(rawText[start:], endChar))
	next:
	}
	if trim {
		for i, m := range matches {
			matches[i] = strings.TrimSpace(m)
		}
	}
	if len(matches) == 0 {
		return nil
	}
	return matches
}

// matchSinglePrefixedField returns the first field extracted by
// matchPrefixedField, or "" if prefix does not occur.
func matchSinglePrefixedField(prefix, rawText string, endChar byte, trim bool) string {
	values := matchPrefixedField(prefix, rawText, endChar, trim)
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

// unescapeBackslash turns "\\<endChar>" and "\\\\" back into a literal
// endChar / backslash; any other backslash sequence passes through as-is.
func unescapeBackslash(s string, endChar byte) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '\\' && i+1 < len(s) && (s[i+1] == endChar || s[i+1] == '\\') {
			b.WriteByte(s[i+1])
			i++
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

func isStringOfDigits(s string, length int) bool {
	if len(s) != length {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
