// Package site renders the static pages: one page per generated juz plus an
// archive index, driven by embedded HTML templates.
package site

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/yuin/goldmark"

	"github.com/arefai/juzdigest/internal/juz"
	"github.com/arefai/juzdigest/internal/tafsir"
)

//go:embed templates/*.html
var templatesFS embed.FS

var templates = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

// arabicPreviewLen is the rune length of the collapsed card's Arabic snippet.
const arabicPreviewLen = 60

// PageData drives templates/page.html.
type PageData struct {
	JuzNumber     int
	JuzName       string
	JuzNameArabic string
	Date          string
	Summary       template.HTML
	WordCount     string
	Verses        []VerseCard
}

// VerseCard is one collapsible tafsir section on the juz page.
type VerseCard struct {
	VerseKey      string
	ID            string
	Uthmani       string
	ArabicPreview string
	// Body is the tafsir HTML as served by the API; it is trusted upstream
	// content and rendered as-is, matching the source site.
	Body template.HTML
}

// RenderPage builds the HTML page for one juz.
func RenderPage(juzNumber int, summaryMarkdown string, entries []tafsir.Entry, wordCount int, now time.Time) (string, error) {
	summaryHTML, err := MarkdownToHTML(summaryMarkdown)
	if err != nil {
		return "", fmt.Errorf("render summary: %w", err)
	}
	summaryHTML = LinkifyVerses(summaryHTML, tafsir.VerseKeys(entries))

	data := PageData{
		JuzNumber:     juzNumber,
		JuzName:       juz.Names[juzNumber],
		JuzNameArabic: juz.NamesArabic[juzNumber],
		Date:          now.Format("Monday, 02 January 2006"),
		Summary:       template.HTML(summaryHTML),
		WordCount:     groupThousands(wordCount),
	}
	for _, e := range entries {
		if strings.TrimSpace(e.Text) == "" {
			continue
		}
		data.Verses = append(data.Verses, VerseCard{
			VerseKey:      e.VerseKey,
			ID:            VerseID(e.VerseKey),
			Uthmani:       e.Uthmani,
			ArabicPreview: arabicPreview(e.Uthmani),
			Body:          template.HTML(e.Text),
		})
	}

	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, "page.html", data); err != nil {
		return "", fmt.Errorf("execute page template: %w", err)
	}
	return buf.String(), nil
}

// IndexData drives templates/index.html.
type IndexData struct {
	Latest *LatestCard
	Cards  []IndexCard
}

// LatestCard highlights the most recently generated juz.
type LatestCard struct {
	JuzNumber     int
	JuzName       string
	JuzNameArabic string
	Date          string
	WordCount     string
	Href          string
}

// IndexCard is one juz tile in the 30-card archive grid.
type IndexCard struct {
	JuzNumber     int
	JuzName       string
	JuzNameArabic string
	Date          string
	Href          string
	Generated     bool
}

// RenderIndex builds the archive index page from the manifest.
func RenderIndex(m Manifest) (string, error) {
	var data IndexData

	if latest, ok := m.Latest(); ok {
		entry, _ := m.Get(latest)
		data.Latest = &LatestCard{
			JuzNumber:     latest,
			JuzName:       juz.Names[latest],
			JuzNameArabic: juz.NamesArabic[latest],
			Date:          formatManifestDate(entry.Date, "Monday, 02 January 2006"),
			WordCount:     groupThousands(entry.WordCount),
			Href:          pageFilename(latest),
		}
	}

	for n := 1; n <= juz.Count; n++ {
		card := IndexCard{
			JuzNumber:     n,
			JuzName:       juz.Names[n],
			JuzNameArabic: juz.NamesArabic[n],
		}
		if entry, ok := m.Get(n); ok {
			card.Generated = true
			card.Date = formatManifestDate(entry.Date, "02 Jan 2006")
			card.Href = pageFilename(n)
		}
		data.Cards = append(data.Cards, card)
	}

	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, "index.html", data); err != nil {
		return "", fmt.Errorf("execute index template: %w", err)
	}
	return buf.String(), nil
}

// PageFilename returns the output filename for a juz page.
func PageFilename(juzNumber int) string {
	return pageFilename(juzNumber)
}

func pageFilename(juzNumber int) string {
	return fmt.Sprintf("juz-%d.html", juzNumber)
}

// MarkdownToHTML converts the model's markdown summary to HTML.
func MarkdownToHTML(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.New().Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("convert markdown: %w", err)
	}
	return buf.String(), nil
}

func arabicPreview(uthmani string) string {
	runes := []rune(uthmani)
	if len(runes) <= arabicPreviewLen {
		return uthmani
	}
	return string(runes[:arabicPreviewLen]) + "..."
}

func formatManifestDate(date, layout string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return t.Format(layout)
}

// groupThousands formats n with comma separators ("12345" -> "12,345").
func groupThousands(n int) string {
	s := fmt.Sprintf("%d", n)
	if n < 0 || len(s) <= 3 {
		return s
	}
	var sb strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		sb.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if sb.Len() > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(s[i : i+3])
	}
	return sb.String()
}
