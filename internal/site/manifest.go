package site

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

// ManifestEntry records one generated juz page.
type ManifestEntry struct {
	Date      string `json:"date"` // YYYY-MM-DD
	WordCount int    `json:"word_count"`
}

// Manifest maps juz number (as a string key, matching the on-disk JSON) to
// its generation record.
type Manifest map[string]ManifestEntry

// LoadManifest reads manifest.json; a missing file yields an empty manifest.
func LoadManifest(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Manifest{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	return m, nil
}

// Save writes the manifest back to disk.
func (m Manifest) Save(path string) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	return nil
}

// Set records a generated juz.
func (m Manifest) Set(juzNumber int, date string, wordCount int) {
	m[strconv.Itoa(juzNumber)] = ManifestEntry{Date: date, WordCount: wordCount}
}

// Get returns the entry for a juz, if present.
func (m Manifest) Get(juzNumber int) (ManifestEntry, bool) {
	e, ok := m[strconv.Itoa(juzNumber)]
	return e, ok
}

// Latest returns the highest generated juz number. Generation is sequential
// by day, so the highest number is always the most recent.
func (m Manifest) Latest() (int, bool) {
	latest := 0
	for k := range m {
		n, err := strconv.Atoi(k)
		if err != nil {
			continue
		}
		if n > latest {
			latest = n
		}
	}
	return latest, latest > 0
}
