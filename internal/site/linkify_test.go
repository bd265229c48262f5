package site

import (
	"strings"
	"testing"
)

func TestLinkifyVerses(t *testing.T) {
	keys := map[string]bool{"4:148": true, "5:82": true}

	tests := []struct {
		name     string
		in       string
		wantLink bool
	}{
		{"known reference", "<p>see 4:148 here</p>", true},
		{"unknown reference", "<p>see 9:99 here</p>", false},
		{"inside id attribute", `<a href="#v-4-148">4</a>`, false},
		{"preceded by hash", "#4:148", false},
		{"leading digit changes the reference", "14:148 appears", false},
		{"followed by quote", `"4:148"`, false},
		{"at start of string", "4:148 opens the passage", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LinkifyVerses(tt.in, keys)
			hasLink := strings.Contains(got, `class="verse-ref"`)
			if hasLink != tt.wantLink {
				t.Errorf("LinkifyVerses(%q) = %q, wantLink=%v", tt.in, got, tt.wantLink)
			}
		})
	}
}

func TestLinkifyVerses_AnchorShape(t *testing.T) {
	got := LinkifyVerses("themes in 5:82 and later", map[string]bool{"5:82": true})
	want := `themes in <a href="#v-5-82" class="verse-ref" onclick="openVerse('v-5-82')">5:82</a> and later`
	if got != want {
		t.Errorf("got %q\nwant %q", got, want)
	}
}

func TestLinkifyVerses_MultipleReferences(t *testing.T) {
	keys := map[string]bool{"2:142": true, "2:253": true}
	got := LinkifyVerses("from 2:142 to 2:253.", keys)
	if strings.Count(got, `class="verse-ref"`) != 2 {
		t.Errorf("expected 2 links, got %q", got)
	}
}

func TestVerseID(t *testing.T) {
	if got := VerseID("4:148"); got != "v-4-148" {
		t.Errorf("VerseID = %q, want v-4-148", got)
	}
}
