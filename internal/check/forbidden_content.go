package check

import (
	"regexp"
	"strings"
)

// checkForbiddenContent reports one failure per line and matching pattern.
// Lines keep their terminators, so patterns like `\r\n$` or `\t\n` work.
func checkForbiddenContent(cx *Context) {
	fc := cx.Config.ForbiddenContent

	for lineno, line := range cx.LinesWithEndings {
		for i, re := range fc.Patterns {
			// The column is not reported, existing configs rely on 0
			if matchesLine(re, line) {
				cx.Error(lineno, 0, "line matches forbidden string '%s'", fc.Sources[i])
			}
		}
	}
}

// matchesLine matches re against a line that may end in "\n". When the
// whole line does not match, the line without its final "\n" is tried as
// well, so every end-of-text anchor (`$` and also `\z`) matches right
// before that "\n" and `\t$` catches a trailing tab. A "\r" before the
// "\n" is kept, so `\t$` does not match "x\t\r\n".
func matchesLine(re *regexp.Regexp, line string) bool {
	if re.MatchString(line) {
		return true
	}
	if body, ok := strings.CutSuffix(line, "\n"); ok {
		return re.MatchString(body)
	}
	return false
}
