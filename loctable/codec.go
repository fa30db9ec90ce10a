package loctable

import (
	"strings"
)

// The context field codec packs a namespace and a key into one string,
// separated by a comma. Literal commas and backslashes are escaped with a
// backslash, so that Unescape(Escape(s)) == s for every s.

// Escape escapes commas and backslashes in s.
func Escape(s string) string {
	if !strings.ContainsAny(s, `,\`) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 4)
	for i := 0; i < len(s); i++ {
		if c := s[i]; c == ',' || c == '\\' {
			b.WriteByte('\\')
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// Unescape reverts Escape. A backslash escapes any following byte; a
// trailing single backslash is kept.
func Unescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			i++
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// EscapeContext packs a namespace and a key into a context field.
func EscapeContext(namespace, key string) string {
	return Escape(namespace) + "," + Escape(key)
}

// UnescapeContext splits a context field into namespace and key. A field
// without an unescaped comma yields an empty namespace and the whole field
// as key.
func UnescapeContext(field string) (namespace, key string) {
	for i := 0; i < len(field); i++ {
		switch field[i] {
		case '\\':
			i++
		case ',':
			return Unescape(field[:i]), Unescape(field[i+1:])
		}
	}
	return "", Unescape(field)
}
