package quran

import (
	"fmt"

	"github.com/arefai/juzdigest/internal/tafsir"
)

// MockEntries returns canned tafsir entries for local development runs that
// must not touch the network.
func MockEntries(juzNumber int) []tafsir.Entry {
	return []tafsir.Entry{
		{
			VerseKey: fmt.Sprintf("%d:1", juzNumber),
			Uthmani:  "بِسْمِ ٱللَّهِ ٱلرَّحْمَـٰنِ ٱلرَّحِيمِ",
			Text: "<h2>Commentary on the Opening Verse</h2>" +
				"<p>Ibn Kathir explains that this verse establishes the foundational " +
				"theme of the surah. The scholars have noted its significance in " +
				"understanding the broader context of divine guidance.</p>" +
				"<p>Al-Tabari and others have reported that this verse was revealed " +
				"in connection with the events following the migration to Madinah.</p>",
		},
		{
			VerseKey: fmt.Sprintf("%d:2", juzNumber),
			Uthmani:  "ٱلْحَمْدُ لِلَّهِ رَبِّ ٱلْعَـٰلَمِينَ",
			Text: "<h2>The Command to Reflect</h2>" +
				"<p>This verse calls upon the believers to reflect deeply on the " +
				"signs of Allah in creation. Ibn Kathir draws upon multiple hadith " +
				"to illustrate how the Prophet (peace be upon him) exemplified this " +
				"quality of contemplation.</p>",
		},
		{
			VerseKey: fmt.Sprintf("%d:3", juzNumber),
			Uthmani:  "ٱلرَّحْمَـٰنِ ٱلرَّحِيمِ",
			Text: "<h2>Rulings and Guidance</h2>" +
				"<p>Here the tafsir elaborates on the specific rulings derived from " +
				"this verse, including matters of worship, social conduct, and the " +
				"importance of maintaining family ties. The scholars of fiqh have " +
				"derived several important principles from this passage.</p>",
		},
	}
}

// MockSummary returns a canned markdown summary for local runs.
func MockSummary(juzNumber int, juzName string) string {
	n := juzNumber
	return fmt.Sprintf(`## Juz %d — %s

This juz covers key themes of **divine guidance**, **reflection on creation**, and **practical rulings** for the Muslim community.

### Major Themes

The opening verse (%d:1) establishes the foundational message of the surah, connecting the believers to the broader narrative of prophetic history. Ibn Kathir draws upon classical scholarship to illuminate the depth of each verse.

In %d:2, we find a powerful call to reflect upon the signs of Allah in creation. The scholars have noted how this connects to the broader themes of gratitude and awareness.

### Key Rulings

- Matters of worship and their proper observance (%d:1)
- Social conduct and the rights of others (%d:2)
- The importance of maintaining family ties and community bonds (%d:3)

### Overarching Message

Juz %d calls upon the believers to combine faith with action, knowledge with practice, and individual devotion with communal responsibility. This is the path to success in both worlds.`,
		n, juzName, n, n, n, n, n, n)
}
