package site

import (
	"regexp"
	"strings"
)

var verseRefRe = regexp.MustCompile(`\d{1,3}:\d{1,3}`)

// LinkifyVerses turns verse references (e.g. "4:148") in rendered summary
// HTML into anchors pointing at the matching tafsir card. Only references
// present in verseKeys become links. RE2 has no lookaround, so the boundary
// rules (no [#\w/-] before, no ["\w] after) are checked against the
// neighbouring bytes directly — this keeps references inside URLs, ids, and
// attribute values untouched.
func LinkifyVerses(html string, verseKeys map[string]bool) string {
	locs := verseRefRe.FindAllStringIndex(html, -1)
	if len(locs) == 0 {
		return html
	}

	var sb strings.Builder
	last := 0
	for _, loc := range locs {
		start, end := loc[0], loc[1]
		ref := html[start:end]
		if !verseKeys[ref] || !boundaryBefore(html, start) || !boundaryAfter(html, end) {
			continue
		}
		id := VerseID(ref)
		sb.WriteString(html[last:start])
		sb.WriteString(`<a href="#` + id + `" class="verse-ref" onclick="openVerse('` + id + `')">` + ref + `</a>`)
		last = end
	}
	sb.WriteString(html[last:])
	return sb.String()
}

// VerseID maps a verse key to its card element id: "4:148" -> "v-4-148".
func VerseID(verseKey string) string {
	return "v-" + strings.Replace(verseKey, ":", "-", 1)
}

func boundaryBefore(s string, i int) bool {
	if i == 0 {
		return true
	}
	switch c := s[i-1]; {
	case c == '#' || c == '/' || c == '-' || c == '_':
		return false
	case c >= '0' && c <= '9', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		return false
	}
	return true
}

func boundaryAfter(s string, i int) bool {
	if i >= len(s) {
		return true
	}
	switch c := s[i]; {
	case c == '"' || c == '_':
		return false
	case c >= '0' && c <= '9', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		return false
	}
	return true
}
