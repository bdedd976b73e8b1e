package pipeline

import "strings"

// lineBuffer is the buffer viewed as a sequence of lines. A final newline does
// not open another line.
type lineBuffer struct {
	text            []string
	trailingNewline bool
}

func splitLines(s string) lineBuffer {
	if s == "" {
		return lineBuffer{}
	}
	text := strings.Split(s, "\n")
	l := lineBuffer{text: text}
	if text[len(text)-1] == "" {
		l.text = text[:len(text)-1]
		l.trailingNewline = true
	}
	return l
}

func (l lineBuffer) String() string {
	s := strings.Join(l.text, "\n")
	if l.trailingNewline {
		s += "\n"
	}
	return s
}

// isBlank reports whether a line holds nothing but spaces and tabs.
func isBlank(line string) bool {
	return strings.Trim(line, " \t") == ""
}

// scanState is a state of the blank-line bounded block scanner.
type scanState int

const (
	awaitBlank scanState = iota
	awaitHeader
	accumulateBody
	requireTrailingBlank
)

// blockShape describes a construct framed by blank lines: a leading blank,
// one header line, body lines, and a trailing blank.
type blockShape struct {
	// openAtStart lets the first line of the document act as if preceded by a blank.
	openAtStart bool
	// bodyless constructs have no body: the blank must follow the header directly.
	// Otherwise at least one non-blank body line is required.
	bodyless bool
	header   func(line string) bool
}

// block locates one recognized construct. end is the index of the trailing
// blank line, which is left in place and may open the next block.
type block struct {
	header int
	end    int
}

// scanBlocks finds every construct of the given shape in document order.
// A header left open at the end of the document is not a block.
func scanBlocks(text []string, shape blockShape) []block {
	var found []block

	state := awaitBlank
	if shape.openAtStart {
		state = awaitHeader
	}
	header, body := 0, 0

	for i, line := range text {
		switch state {
		case awaitBlank:
			if isBlank(line) {
				state = awaitHeader
			}

		case awaitHeader:
			switch {
			case shape.header(line):
				header, body = i, 0
				state = accumulateBody
				if shape.bodyless {
					state = requireTrailingBlank
				}
			case isBlank(line):
				// consecutive blanks: keep waiting
			default:
				state = awaitBlank
			}

		case accumulateBody:
			if !isBlank(line) {
				body++
				continue
			}
			if body == 0 {
				state = awaitHeader
				continue
			}
			state = requireTrailingBlank
			fallthrough

		case requireTrailingBlank:
			if isBlank(line) {
				found = append(found, block{header: header, end: i})
				state = awaitHeader
			} else {
				state = awaitBlank
			}
		}
	}

	return found
}
