package pipeline

import (
	"regexp"
	"strings"
)

const lowercase = "abcdefghijklmnopqrstuvwxyz"

var (
	// A tagged dialogue block, shortest match
	dialogueBlock = regexp.MustCompile(`(?s)<dialogue>\n.+?</dialogue>`)

	// The first line inside a block
	characterLine = regexp.MustCompile(`(<dialogue>\n)[ \t]*([^a-z\n]+)\n`)

	// (beat) on its own line
	parentheticalLine = regexp.MustCompile(`(?m)^[ \t]*(\([^)]+\))[ \t]*\n`)

	// Any line not yet tagged
	untaggedLine = regexp.MustCompile(`(?m)^[ \t]*([^<\n]+)$`)
)

// isCharacterName reports whether a line can name a speaker: some text,
// no lowercase letters and no tabs once leading whitespace is dropped.
func isCharacterName(line string) bool {
	name := strings.TrimLeft(line, " \t")
	return name != "" && !strings.ContainsAny(name, lowercase+"\t")
}

var dialogueShape = blockShape{header: isCharacterName}

// markDialogueBlocks wraps every blank, NAME, lines..., blank run in
// <dialogue> tags. The wrapped span starts at the name line; the tags sit on
// lines of their own between the surrounding blanks and the block.
func markDialogueBlocks(content string) string {
	buf := splitLines(content)
	blocks := scanBlocks(buf.text, dialogueShape)
	if len(blocks) == 0 {
		return content
	}

	out := make([]string, 0, len(buf.text)+2*len(blocks))
	next := 0
	for _, b := range blocks {
		out = append(out, buf.text[next:b.header]...)
		out = append(out, "<dialogue>")
		out = append(out, buf.text[b.header:b.end]...)
		out = append(out, "</dialogue>")
		next = b.end
	}
	out = append(out, buf.text[next:]...)

	buf.text = out
	return buf.String()
}

// withinDialogue applies a rewrite to every tagged dialogue block and nowhere else.
func withinDialogue(content string, pattern *regexp.Regexp, replacement string) string {
	return dialogueBlock.ReplaceAllStringFunc(content, func(block string) string {
		return pattern.ReplaceAllString(block, replacement)
	})
}

// markCharacters tags the name line opening each dialogue block.
func markCharacters(content string) string {
	return withinDialogue(content, characterLine, "${1}<character>${2}</character>\n")
}

// markParentheticals tags (parenthetical) lines inside dialogue blocks.
func markParentheticals(content string) string {
	return withinDialogue(content, parentheticalLine, "<paren>${1}</paren>\n")
}

// markTalk tags every remaining line of a dialogue block as spoken text.
// It must follow markCharacters and markParentheticals, whose lines it would
// otherwise claim.
func markTalk(content string) string {
	return withinDialogue(content, untaggedLine, "<talk>${1}</talk>")
}
