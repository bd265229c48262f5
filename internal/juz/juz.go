// Package juz holds static metadata for the 30 ajza of the Quran and the
// daily reading schedule that maps a calendar date onto a juz number.
package juz

import "time"

const Count = 30

// Names maps juz number to its transliterated name.
var Names = map[int]string{
	1: "Alif Lam Mim", 2: "Sayaqool", 3: "Tilkal Rusul",
	4: "Lan Tanaloo", 5: "Wal Muhsanat", 6: "La Yuhibbullah",
	7: "Wa Iza Sami'oo", 8: "Wa Lau Annana", 9: "Qalal Mala'u",
	10: "Wa A'lamu", 11: "Ya'tazeroon", 12: "Wa Ma Min Dabbah",
	13: "Wa Ma Ubarri'u", 14: "Rubama", 15: "Subhanallazi",
	16: "Qal Alam", 17: "Iqtaraba", 18: "Qad Aflaha",
	19: "Wa Qalallazina", 20: "A'man Khalaq", 21: "Utlu Ma Oohiya",
	22: "Wa Man Yaqnut", 23: "Wa Mali", 24: "Faman Azlamu",
	25: "Ilayhi Yuraddu", 26: "Ha Mim", 27: "Qala Fama Khatbukum",
	28: "Qad Sami Allahu", 29: "Tabarakallazi", 30: "Amma Yatasa'aloon",
}

// NamesArabic maps juz number to the Arabic words it is known by.
var NamesArabic = map[int]string{
	1: "الٓمٓ", 2: "سَيَقُولُ", 3: "تِلْكَ ٱلرُّسُلُ",
	4: "لَن تَنَالُوا۟", 5: "وَٱلْمُحْصَنَـٰتُ", 6: "لَا يُحِبُّ ٱللَّهُ",
	7: "وَإِذَا سَمِعُوا۟", 8: "وَلَوْ أَنَّنَا", 9: "قَالَ ٱلْمَلَأُ",
	10: "وَٱعْلَمُوٓا۟", 11: "يَعْتَذِرُونَ", 12: "وَمَا مِن دَآبَّةٍ",
	13: "وَمَآ أُبَرِّئُ", 14: "رُبَمَا", 15: "سُبْحَـٰنَ ٱلَّذِىٓ",
	16: "قَالَ أَلَمْ", 17: "ٱقْتَرَبَ", 18: "قَدْ أَفْلَحَ",
	19: "وَقَالَ ٱلَّذِينَ", 20: "أَمَّنْ خَلَقَ", 21: "ٱتْلُ مَآ أُوحِىَ",
	22: "وَمَن يَقْنُتْ", 23: "وَمَآ لِىَ", 24: "فَمَنْ أَظْلَمُ",
	25: "إِلَيْهِ يُرَدُّ", 26: "حمٓ", 27: "قَالَ فَمَا خَطْبُكُمْ",
	28: "قَدْ سَمِعَ ٱللَّهُ", 29: "تَبَـٰرَكَ ٱلَّذِى", 30: "عَمَّ يَتَسَآءَلُونَ",
}

// FirstVerse maps juz number to the verse key it opens with.
var FirstVerse = map[int]string{
	1: "1:1", 2: "2:142", 3: "2:253", 4: "3:93", 5: "4:24",
	6: "4:148", 7: "5:82", 8: "6:111", 9: "7:88", 10: "8:41",
	11: "9:93", 12: "11:6", 13: "12:53", 14: "15:1", 15: "17:1",
	16: "18:75", 17: "21:1", 18: "23:1", 19: "25:21", 20: "27:56",
	21: "29:46", 22: "33:31", 23: "36:28", 24: "39:32", 25: "41:47",
	26: "46:1", 27: "51:31", 28: "58:1", 29: "67:1", 30: "78:1",
}

// ForDate returns the juz scheduled for the given date, counting whole days
// from start: day 0 is juz 1, day 29 is juz 30. It returns 0 when the date
// falls outside the 30-day window.
func ForDate(now, start time.Time) int {
	day := int(midnight(now).Sub(midnight(start)).Hours() / 24)
	n := day + 1
	if n < 1 || n > Count {
		return 0
	}
	return n
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
