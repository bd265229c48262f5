package summarize

import (
	"fmt"
	"strings"
)

// sectionDelimiter separates labelled per-chunk summaries in the merge input.
const sectionDelimiter = "\n\n---\n\n"

// ChunkPrompt asks for a per-section summary that will later be merged.
func ChunkPrompt(juzNumber int, chunk string) string {
	return fmt.Sprintf(`Summarise this section of Tafsir Ibn Kathir from Juz %d.
Cover the key themes, stories, rulings, and lessons. Be thorough — this will be merged with other section summaries.
Write 200-300 words.

%s`, juzNumber, chunk)
}

// MergePrompt combines labelled section summaries into the final summary
// request. Sections are labelled "Section 1" through "Section N" in order.
func MergePrompt(juzNumber int, sections []string) string {
	labelled := make([]string, len(sections))
	for i, s := range sections {
		labelled[i] = fmt.Sprintf("Section %d:\n%s", i+1, s)
	}

	return fmt.Sprintf(`You are writing the final summary for Juz %d of the Quran's Tafsir Ibn Kathir, for a Muslim audience.

Below are summaries of each section of the juz. Merge them into one cohesive summary that:
- Opens with which surahs/verses this juz covers
- Highlights the major themes, stories, and lessons
- Notes any key rulings or guidance mentioned
- References specific verses using the format surah:verse (e.g. 5:82, 6:1) when discussing key points, so readers can look them up
- Closes with the overarching message of the juz
- Is written in clear, accessible English
- Is around 500-700 words
- Flows naturally as one piece (not a list of sections)

Section summaries:

%s`, juzNumber, strings.Join(labelled, sectionDelimiter))
}

// SinglePrompt summarises the whole juz in one call when it fits in a
// single chunk.
func SinglePrompt(juzNumber int, text string) string {
	return fmt.Sprintf(`You are summarising Juz %d of the Quran's Tafsir Ibn Kathir for a Muslim audience.

Write a detailed overview summary that:
- Opens with which surahs/verses this juz covers
- Highlights the major themes, stories, and lessons
- Notes any key rulings or guidance mentioned
- References specific verses using the format surah:verse (e.g. 5:82, 6:1) when discussing key points, so readers can look them up
- Closes with the overarching message of the juz
- Is written in clear, accessible English
- Is around 400-600 words

Here is the full tafsir text:

%s`, juzNumber, text)
}
