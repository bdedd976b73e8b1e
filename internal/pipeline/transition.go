package pipeline

import "regexp"

var (
	// FADE IN:, CUT TO BLACK., IRIS OUT.
	leftTransition = regexp.MustCompile(`^[ \t]*(\w+(?: \w+)* (?:UP|IN|OUT|BLACK|WITH)(?: ON)?[.:] *)$`)

	// CUT TO:, SMASH CUT TO:
	rightTransition = regexp.MustCompile(`^[ \t]*(\w+(?: \w+)* TO:)$`)
)

// markLeftTransitions tags transition lines set apart by blank lines.
// Without the blank lines the same words are ordinary action.
func markLeftTransitions(content string) string {
	return markTransitions(content, leftTransition)
}

// markRightTransitions tags "... TO:" lines set apart by blank lines.
func markRightTransitions(content string) string {
	return markTransitions(content, rightTransition)
}

func markTransitions(content string, pattern *regexp.Regexp) string {
	buf := splitLines(content)
	shape := blockShape{
		openAtStart: true,
		bodyless:    true,
		header:      pattern.MatchString,
	}

	for _, b := range scanBlocks(buf.text, shape) {
		buf.text[b.header] = pattern.ReplaceAllString(buf.text[b.header], "<transition>${1}</transition>")
	}
	return buf.String()
}
