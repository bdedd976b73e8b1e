package pipeline

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/dlclark/regexp2"
)

// Entities emitted by the escaping stages.
const (
	AmpersandEntity  = "&#38;"
	FigureDashEntity = "&#8209;"
	AsteriskEntity   = "&#42;"
)

// Precompiled regex patterns for performance.
var (
	// Line ending normalization
	crlfOrCR = regexp.MustCompile(`\r\n?`)

	// A line holding only a rule of three or more = or -
	pageBreakLine = regexp.MustCompile(`(?m)^[ \t]*[=-]{3,}[ \t]*$`)

	// An ampersand that does not already start a numeric reference or one of
	// the common named ones; AT&T; and Q&A; are still escaped
	bareAmpersand = regexp2.MustCompile(`&(?!#[0-9]+;|#[xX][0-9a-fA-F]+;|(?:amp|lt|gt|quot|apos|nbsp);)`, regexp2.None)

	// Exactly two hyphens, no hyphen on either side
	doubleDash = regexp2.MustCompile(`(?<!-)--(?!-)`, regexp2.None)

	// Backslash-escaped asterisk
	escapedAsterisk = regexp.MustCompile(`\\\*`)
)

// rule is a rewrite whose pattern needs lookaround, which RE2 cannot express.
type rule struct {
	name        string
	re          *regexp2.Regexp
	replacement string
}

// stage turns the rule into a pipeline stage replacing every match.
func (r rule) stage() Stage {
	return Stage{
		Name: r.name,
		Apply: func(s string) (string, error) {
			return r.re.Replace(s, r.replacement, -1, -1)
		},
	}
}

var (
	escapeAmpersands   = rule{"ampersands", bareAmpersand, AmpersandEntity}.stage()
	escapeDoubleDashes = rule{"double-dashes", doubleDash, FigureDashEntity + FigureDashEntity}.stage()
)

// normalizeText replaces invalid UTF-8 with U+FFFD and converts \r\n and
// \r to \n. The lookaround stages decode the buffer as runes, so every
// stage must see the same valid text whether or not it matches.
func normalizeText(content string) string {
	content = strings.ToValidUTF8(content, string(utf8.RuneError))
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// markPageBreaks replaces === and --- rules with a page-break marker.
func markPageBreaks(content string) string {
	return pageBreakLine.ReplaceAllString(content, "<page-break />")
}

// escapeAsterisks neutralizes \* so emphasis never sees it.
func escapeAsterisks(content string) string {
	return escapedAsterisk.ReplaceAllString(content, AsteriskEntity)
}

// preEscapeStages marks page breaks, then escapes ampersands and double
// dashes. Already escaped text passes through unchanged.
func preEscapeStages() []Stage {
	return []Stage{
		pure("page-breaks", markPageBreaks),
		escapeAmpersands,
		escapeDoubleDashes,
	}
}

// preEscape applies the pre-escape stages on their own.
func preEscape(content string) (string, error) {
	for _, stage := range preEscapeStages() {
		out, err := stage.Apply(content)
		if err != nil {
			return "", err
		}
		content = out
	}
	return content, nil
}
