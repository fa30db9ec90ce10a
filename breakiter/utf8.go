package breakiter

import "unicode/utf8"

func decodeRune(s string) (rune, int) {
	return utf8.DecodeRuneInString(s)
}

// runeLen is the length of the rune as re-encoded by the segmenter.
func runeLen(r rune, size int) int {
	if r == utf8.RuneError && size == 1 {
		return 3
	}
	return size
}
