package pipeline

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Outline summarizes the structure of converted screenplay markup.
type Outline struct {
	SceneHeadings    int
	Sluglines        int
	Transitions      int
	DialogueBlocks   int
	ActionParagraphs int
	PageBreaks       int
	// Characters lists speaker names once each, in order of first appearance.
	// Extensions such as (V.O.) or (CONT'D) are dropped.
	Characters []string
}

// ExtractOutline parses converted markup (fragment or full document) and
// counts its screenplay elements.
func ExtractOutline(markup string) (*Outline, error) {
	doc, err := parseHTML(markup)
	if err != nil {
		return nil, err
	}

	o := &Outline{}
	seen := make(map[string]bool)
	walk(doc, func(n *html.Node) {
		if n.Type != html.ElementNode {
			return
		}
		switch {
		case n.DataAtom == atom.H2 && hasClass(n, "full-slugline"):
			o.SceneHeadings++
		case n.DataAtom == atom.H5 && hasClass(n, "goldman-slugline"):
			o.Sluglines++
		case n.DataAtom == atom.H3 && hasClass(n, "right-transition"):
			o.Transitions++
		case n.DataAtom == atom.Dl:
			o.DialogueBlocks++
		case n.DataAtom == atom.P && hasClass(n, "action"):
			o.ActionParagraphs++
		case n.DataAtom == atom.Div && hasClass(n, "page-break"):
			o.PageBreaks++
		case n.DataAtom == atom.Dt && hasClass(n, "character"):
			name := characterName(textContent(n))
			if name != "" && !seen[name] {
				seen[name] = true
				o.Characters = append(o.Characters, name)
			}
		}
	})

	return o, nil
}

// parseHTML parses HTML content, handling both full documents and fragments.
// Fragments are wrapped in a document node.
func parseHTML(content string) (*html.Node, error) {
	trimmed := strings.ToLower(strings.TrimSpace(content))

	if strings.HasPrefix(trimmed, "<!doctype") || strings.HasPrefix(trimmed, "<html") {
		return html.Parse(strings.NewReader(content))
	}

	// Fragment: parse with body context to avoid wrapping
	context := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Body,
		Data:     "body",
	}
	nodes, err := html.ParseFragment(strings.NewReader(content), context)
	if err != nil {
		return nil, err
	}

	container := &html.Node{Type: html.DocumentNode}
	for _, n := range nodes {
		container.AppendChild(n)
	}
	return container, nil
}

// walk visits n and its descendants depth-first.
func walk(n *html.Node, visit func(*html.Node)) {
	visit(n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, visit)
	}
}

func hasClass(n *html.Node, class string) bool {
	for _, attr := range n.Attr {
		if attr.Key != "class" {
			continue
		}
		for _, c := range strings.Fields(attr.Val) {
			if c == class {
				return true
			}
		}
	}
	return false
}

func textContent(n *html.Node) string {
	var sb strings.Builder
	walk(n, func(c *html.Node) {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
		}
	})
	return sb.String()
}

// characterName strips the extension from a cue: "JOHN (V.O.)" -> "JOHN".
func characterName(cue string) string {
	if i := strings.Index(cue, "("); i != -1 {
		cue = cue[:i]
	}
	return strings.TrimSpace(cue)
}
