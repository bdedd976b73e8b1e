package pipeline

import "regexp"

var (
	// Blank, INT./EXT./I/E/EST. heading (bold or italic markers allowed), blank
	sceneHeading = regexp.MustCompile(`(?mi)^[ \t]*\n^[ \t]*((?:[*_]+)?(?:i\.?/e|int\.?/ext|ext|int|est)(?: +|. ?).*)\n^[ \t]*\n`)

	// Blank, then an all-uppercase line that is not already tagged
	goldmanSlugline = regexp.MustCompile(`(?m)^[ \t]*\n[ \t]*([^a-z<>\s][^a-z<>\n]*)$`)
)

// markSceneHeadings tags fully formed headings. The trailing blank line is
// consumed, so two headings sharing one blank are not both recognized here.
func markSceneHeadings(content string) string {
	return sceneHeading.ReplaceAllString(content, "\n<sceneheading>${1}</sceneheading>\n\n")
}

// markGoldmanSluglines tags capitalized lines after a blank as sluglines.
// It runs after markSceneHeadings so prefixed headings keep their own tag.
func markGoldmanSluglines(content string) string {
	return goldmanSlugline.ReplaceAllString(content, "\n<slug>${1}</slug>")
}
