package check

import (
	"unicode"
	"unicode/utf8"
)

// checkIndentationStyle enforces the configured indentation kind and amount.
// It does nothing when no style is configured.
//
// Each line gets two independent checks: leading whitespace must not
// contain the other indentation character (reported once, at the first
// offending character), and the run of configured indentation characters
// must be a multiple of the configured amount.
func checkIndentationStyle(cx *Context) {
	style := cx.Config.IndentationStyle
	if style == nil {
		return
	}

	wrong := style.Kind.Other()

	for lineno, line := range cx.Lines {
		for _, ch := range line {
			if !unicode.IsSpace(ch) {
				break
			}
			if ch == wrong.Char() {
				cx.Error(lineno, 0, "line is indented with %s, expected %s", wrong, style.Kind)
				break
			}
		}

		if style.Amount == 0 {
			continue
		}

		count := leadingRun(line, style.Kind.Char())
		if uint64(count)%style.Amount != 0 {
			cx.Error(lineno, count, "line is indented with %d %s, expected a multiple of %d",
				count, style.Kind, style.Amount)
		}
	}
}

// leadingRun counts how many times ch repeats at the start of s.
func leadingRun(s string, ch rune) int {
	count := 0
	for len(s) > 0 {
		r, size := utf8.DecodeRuneInString(s)
		if r != ch {
			break
		}
		count++
		s = s[size:]
	}
	return count
}
