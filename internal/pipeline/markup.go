package pipeline

import "strings"

// Fixed wrapper around the converted screenplay.
const (
	Header = `<div id="screenplay">`
	Footer = `</div>`
)

// tagMarkup maps each intermediate tag onto its final element and class.
// Tag names are disjoint, so the pairs may be applied in any order.
var tagMarkup = strings.NewReplacer(
	"<note>", `<p class="comment">`,
	"</note>", "</p>",
	"<secret />", "",
	"<page-break />", `<div class="page-break"></div>`,
	"<transition>", `<h3 class="right-transition">`,
	"</transition>", "</h3>",
	"<sceneheading>", `<h2 class="full-slugline">`,
	"</sceneheading>", "</h2>",
	"<slug>", `<h5 class="goldman-slugline">`,
	"</slug>", "</h5>",
	"<center>", `<p class="center">`,
	"</center>", "</p>",
	"<dialogue>", "<dl>",
	"</dialogue>", "</dl>",
	"<character>", `<dt class="character">`,
	"</character>", "</dt>",
	"<paren>", `<dd class="parenthetical">`,
	"</paren>", "</dd>",
	"<talk>", `<dd class="dialogue">`,
	"</talk>", "</dd>",
	"<action>", `<p class="action">`,
	"</action>", "</p>",
)

// MapTags replaces every intermediate tag with its final markup.
// Text outside tags is left untouched.
func MapTags(content string) string {
	return tagMarkup.Replace(content)
}

// Assemble wraps a converted body in the screenplay container. Header, body
// and footer each end with a newline.
func Assemble(body string) string {
	var sb strings.Builder
	sb.Grow(len(Header) + len(body) + len(Footer) + 3)
	sb.WriteString(Header)
	sb.WriteByte('\n')
	sb.WriteString(body)
	if !strings.HasSuffix(body, "\n") {
		sb.WriteByte('\n')
	}
	sb.WriteString(Footer)
	sb.WriteByte('\n')
	return sb.String()
}
