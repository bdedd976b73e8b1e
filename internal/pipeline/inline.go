package pipeline

import (
	"regexp"

	"github.com/dlclark/regexp2"
)

// Single-line conventions. Each pattern is anchored to line boundaries.
var (
	// "SOMETHING TO: " with trailing spaces is action, not a transition
	trailingSpaceTo = regexp.MustCompile(`(?m)^(.+ )TO: +$`)

	// Blank line, then a line without lowercase ending in two spaces
	twoSpaceCaps = regexp.MustCompile(`(?m)^[ \t]*\n([ \t]*[^\na-z]+)  $`)

	// /* boneyard */, possibly spanning lines
	boneyard = regexp.MustCompile(`(?s)/\*.+?\*/`)

	// [[note]] on a single line
	bracketNote = regexp.MustCompile(`\[\[([^\]\n]+?)\]\]`)

	// > centered <
	centered = regexp.MustCompile(`(?m)^[ \t]*>[ ]*(.+?)[ ]*<[ \t]*$`)

	// > forced transition
	forcedTransition = regexp.MustCompile(`(?m)^[ \t]*>[ \t]*(.*)$`)

	// .FORCED SLUG, but not an ellipsis
	forcedSlug = regexp2.MustCompile(`^\.(?!\.)[ \t]*(.*)$`, regexp2.Multiline)

	// # Section
	section = regexp.MustCompile(`(?m)^#+[ \t]+(.*)`)

	// = Synopsis
	synopsis = regexp.MustCompile(`(?m)^=[ \t]+(.*)`)

	// // comment
	lineComment = regexp.MustCompile(`(?m)^[ \t]*//\s?(.*)$`)
)

var forcedSlugs = rule{"forced-slugs", forcedSlug, "<slug>${1}</slug>"}.stage()

// forceActionTo keeps "... TO: " lines out of the transition stages.
// A blank line is inserted before the tagged line.
func forceActionTo(content string) string {
	return trailingSpaceTo.ReplaceAllString(content, "\n<action>${1}TO:</action>")
}

// forceActionCaps keeps capitalized lines ending in two spaces out of the
// dialogue and slugline stages.
func forceActionCaps(content string) string {
	return twoSpaceCaps.ReplaceAllString(content, "\n<action>${1}</action>")
}

// removeBoneyard drops /* ... */ blocks entirely, leaving an empty marker.
// The content cannot be kept: later stages would rewrite inside it.
func removeBoneyard(content string) string {
	return boneyard.ReplaceAllString(content, "<secret />")
}

func markBracketNotes(content string) string {
	return bracketNote.ReplaceAllString(content, "<note>${1}</note>")
}

func markCentered(content string) string {
	return centered.ReplaceAllString(content, "<center>${1}</center>")
}

func markForcedTransitions(content string) string {
	return forcedTransition.ReplaceAllString(content, "<transition>${1}</transition>")
}

// markSections wraps # section lines. They stay in the buffer as a hidden
// span since they never cross a line.
func markSections(content string) string {
	return section.ReplaceAllString(content, "<secret>${1}</secret>")
}

func markSynopses(content string) string {
	return synopsis.ReplaceAllString(content, "<secret>${1}</secret>")
}

func markLineComments(content string) string {
	return lineComment.ReplaceAllString(content, "<note>${1}</note>")
}
