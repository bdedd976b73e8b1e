package pipeline

import (
	"regexp"
	"strings"

	"github.com/dlclark/regexp2"
)

// Emphasis boundaries: the character before the opening marker, and the
// character after the closing marker. Mid-word markers never match.
const (
	asteriskOpen    = `([ \t\-_:;>])`
	asteriskClose   = `(?=[ \t\)\]<\-_&;:?!.,])`
	underscoreOpen  = `([ \t\-\*:;>])`
	underscoreClose = `(?=[ \t\)\]<\-\*&;:?!.,])`
)

var (
	// Any line not starting with a tag
	untaggedParagraph = regexp.MustCompile(`(?m)^([^\n<].*)`)

	boldItalicMarker = regexp2.MustCompile(asteriskOpen+`\*{3}([^\*\n]+)\*{3}`+asteriskClose, regexp2.None)
	boldMarker       = regexp2.MustCompile(asteriskOpen+`\*{2}([^\*\n]+)\*{2}`+asteriskClose, regexp2.None)
	italicMarker     = regexp2.MustCompile(asteriskOpen+`\*([^\*\n]+)\*`+asteriskClose, regexp2.None)
	underlineMarker  = regexp2.MustCompile(underscoreOpen+`_([^_\n]+)_`+underscoreClose, regexp2.None)

	// Adjacent paragraphs of the same kind split by a line break
	actionSeam = regexp.MustCompile(`</action>[ \t]*(\n)[ \t]*<action>`)
	talkSeam   = regexp.MustCompile(`</talk>[ \t]*(\n)[ \t]*<talk>`)

	actionSpan = regexp.MustCompile(`(?s)<action>.+?</action>`)
)

// Emphasis stages, applied strictly in this order so that *** is never read as ** plus *.
var (
	boldItalic = rule{"bold-italic", boldItalicMarker, "${1}<b><i>${2}</i></b>"}.stage()
	bold       = rule{"bold", boldMarker, "${1}<b>${2}</b>"}.stage()
	italic     = rule{"italic", italicMarker, "${1}<i>${2}</i>"}.stage()
	underline  = rule{"underline", underlineMarker, "${1}<u>${2}</u>"}.stage()
)

// markAction tags every remaining untagged line as action. It must run after
// every other line and block stage.
func markAction(content string) string {
	return untaggedParagraph.ReplaceAllString(content, "<action>${1}</action>")
}

// mergeAction joins consecutive action lines into one paragraph.
func mergeAction(content string) string {
	return actionSeam.ReplaceAllString(content, "${1}")
}

// expandActionTabs replaces tabs with four spaces, inside action only.
func expandActionTabs(content string) string {
	return actionSpan.ReplaceAllStringFunc(content, func(span string) string {
		return strings.ReplaceAll(span, "\t", "    ")
	})
}

// mergeTalk joins consecutive spoken lines of one dialogue block.
func mergeTalk(content string) string {
	return talkSeam.ReplaceAllString(content, "${1}")
}
