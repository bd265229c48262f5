package juz

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestForDate(t *testing.T) {
	start := date(2026, time.February, 17)

	tests := []struct {
		name string
		now  time.Time
		want int
	}{
		{"day zero is juz 1", date(2026, time.February, 17), 1},
		{"feb 23 is juz 7", date(2026, time.February, 23), 7},
		{"day 29 is juz 30", date(2026, time.March, 18), 30},
		{"before the window", date(2026, time.February, 16), 0},
		{"after the window", date(2026, time.March, 19), 0},
		{"time of day ignored", time.Date(2026, time.February, 23, 23, 59, 0, 0, time.UTC), 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ForDate(tt.now, start); got != tt.want {
				t.Errorf("ForDate(%v) = %d, want %d", tt.now, got, tt.want)
			}
		})
	}
}

func TestMetadataCoversAllJuz(t *testing.T) {
	for n := 1; n <= Count; n++ {
		if Names[n] == "" {
			t.Errorf("juz %d missing name", n)
		}
		if NamesArabic[n] == "" {
			t.Errorf("juz %d missing arabic name", n)
		}
		if FirstVerse[n] == "" {
			t.Errorf("juz %d missing first verse", n)
		}
	}
}
