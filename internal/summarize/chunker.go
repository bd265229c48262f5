package summarize

import "strings"

// DefaultChunkMaxChars is the character budget per chunk, sized well inside
// the model context window.
const DefaultChunkMaxChars = 120_000

// entrySeparator is the boundary between document entries. Chunks only ever
// split here, never inside an entry.
const entrySeparator = "\n\n"

// Chunk splits a document into pieces of at most maxChars, cutting only at
// entry boundaries. A document within budget comes back unchanged as the
// single chunk. A single entry larger than the budget becomes its own
// oversized chunk. Joining the chunks with the separator reproduces the
// original entry sequence in order.
func Chunk(text string, maxChars int) []string {
	if maxChars <= 0 {
		maxChars = DefaultChunkMaxChars
	}
	if len(text) <= maxChars {
		return []string{text}
	}

	entries := strings.Split(text, entrySeparator)

	var chunks []string
	var current []string
	currentLen := 0

	for _, entry := range entries {
		entryLen := len(entry) + len(entrySeparator)
		if currentLen+entryLen > maxChars && len(current) > 0 {
			chunks = append(chunks, strings.Join(current, entrySeparator))
			current = current[:0]
			currentLen = 0
		}
		current = append(current, entry)
		currentLen += entryLen
	}

	if len(current) > 0 {
		chunks = append(chunks, strings.Join(current, entrySeparator))
	}

	return chunks
}
