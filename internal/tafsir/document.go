// Package tafsir models the commentary text for one juz and assembles it
// into the plain-text document the summariser consumes.
package tafsir

import (
	"strings"

	"golang.org/x/net/html"
)

// Entry is one verse's worth of commentary: the verse key, the tafsir body
// as returned by the API (HTML), and the Uthmani script of the verse itself.
type Entry struct {
	VerseKey string
	Text     string
	Uthmani  string
}

// Separator joins entries in the plain-text document. The chunker relies on
// it as the only safe split boundary.
const Separator = "\n\n"

// PlainText flattens entries into a single document. Each entry is rendered
// as "[verse_key]" followed by its tag-stripped body; entries with an empty
// body are skipped.
func PlainText(entries []Entry) string {
	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		text := strings.TrimSpace(StripTags(e.Text))
		if text == "" {
			continue
		}
		parts = append(parts, "["+e.VerseKey+"]\n"+text)
	}
	return strings.Join(parts, Separator)
}

// WordCount counts whitespace-separated words.
func WordCount(s string) int {
	return len(strings.Fields(s))
}

// VerseKeys returns the set of verse keys present in the entries.
func VerseKeys(entries []Entry) map[string]bool {
	keys := make(map[string]bool, len(entries))
	for _, e := range entries {
		keys[e.VerseKey] = true
	}
	return keys
}

// StripTags removes HTML markup from a tafsir body, keeping only text
// content with entities decoded. Invalid markup degrades to whatever the
// parser can recover, never to an error.
func StripTags(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return s
	}
	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		return s
	}
	var buf strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style":
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return buf.String()
}
