package check

import "unicode/utf8"

// checkMaxLineLength reports every line with more runes than allowed.
//
// Runes are counted, not bytes or grapheme clusters, so a combining accent
// counts as its own character.
func checkMaxLineLength(cx *Context) {
	limit := cx.Config.MaxLineLength

	for lineno, line := range cx.Lines {
		length := utf8.RuneCountInString(line)
		if uint64(length) > limit {
			cx.Error(lineno, 0, "line too long (has %d characters, the limit is %d)", length, limit)
		}
	}
}
