package transform

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
)

const continuationMarker = "…"

// excerpt strips all markup, collapses whitespace, and truncates to at
// most maxLen runes with a continuation marker.
func excerpt(rawHTML string, maxLen int) string {
	doc, err := html.Parse(strings.NewReader(rawHTML))
	if err != nil {
		return ""
	}

	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			b.WriteString(" ")
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	text := strings.Join(strings.Fields(b.String()), " ")

	runes := []rune(text)
	if len(runes) <= maxLen {
		return text
	}

	cut := string(runes[:maxLen])
	// Break on a word boundary when one is near. LastIndex is a byte
	// offset, so measure the boundary in runes before comparing.
	if i := strings.LastIndex(cut, " "); i >= 0 && utf8.RuneCountInString(cut[:i]) > maxLen/2 {
		cut = cut[:i]
	}
	return cut + continuationMarker
}
