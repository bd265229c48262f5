// Package quran is a client for the Quran.com v4 API, fetching tafsir and
// Uthmani verse text for a juz.
package quran

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/arefai/juzdigest/internal/tafsir"
)

// uthmaniBatchSize caps verse keys per request to keep URLs reasonable.
const uthmaniBatchSize = 50

// Client communicates with the Quran.com HTTP API.
type Client struct {
	baseURL          string
	tafsirResourceID int
	httpClient       *http.Client
}

func NewClient(baseURL string, tafsirResourceID int, timeout time.Duration) *Client {
	return &Client{
		baseURL:          strings.TrimSuffix(baseURL, "/"),
		tafsirResourceID: tafsirResourceID,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type juzsResponse struct {
	Juzs []struct {
		JuzNumber    int               `json:"juz_number"`
		VerseMapping map[string]string `json:"verse_mapping"`
	} `json:"juzs"`
}

type uthmaniResponse struct {
	Verses []struct {
		VerseKey    string `json:"verse_key"`
		TextUthmani string `json:"text_uthmani"`
	} `json:"verses"`
}

type tafsirResponse struct {
	Tafsir struct {
		Text string `json:"text"`
	} `json:"tafsir"`
}

// VerseKeys returns the ordered verse keys (e.g. "4:148") for a juz.
func (c *Client) VerseKeys(ctx context.Context, juzNumber int) ([]string, error) {
	var resp juzsResponse
	if err := c.getJSON(ctx, c.baseURL+"/juzs", &resp); err != nil {
		return nil, err
	}

	for _, j := range resp.Juzs {
		if j.JuzNumber != juzNumber {
			continue
		}
		return expandVerseMapping(j.VerseMapping)
	}
	return nil, fmt.Errorf("juz %d not found", juzNumber)
}

// expandVerseMapping turns {"4": "148-176", ...} into ordered verse keys,
// surahs in ascending order.
func expandVerseMapping(mapping map[string]string) ([]string, error) {
	surahs := make([]int, 0, len(mapping))
	for s := range mapping {
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("bad surah number %q: %w", s, err)
		}
		surahs = append(surahs, n)
	}
	sort.Ints(surahs)

	var keys []string
	for _, surah := range surahs {
		verseRange := mapping[strconv.Itoa(surah)]
		start, end, ok := strings.Cut(verseRange, "-")
		if !ok {
			return nil, fmt.Errorf("bad verse range %q for surah %d", verseRange, surah)
		}
		from, err := strconv.Atoi(start)
		if err != nil {
			return nil, fmt.Errorf("bad verse range %q: %w", verseRange, err)
		}
		to, err := strconv.Atoi(end)
		if err != nil {
			return nil, fmt.Errorf("bad verse range %q: %w", verseRange, err)
		}
		for v := from; v <= to; v++ {
			keys = append(keys, fmt.Sprintf("%d:%d", surah, v))
		}
	}
	return keys, nil
}

// UthmaniText fetches Uthmani script for the given verse keys, batched.
func (c *Client) UthmaniText(ctx context.Context, verseKeys []string) (map[string]string, error) {
	uthmani := make(map[string]string, len(verseKeys))
	for i := 0; i < len(verseKeys); i += uthmaniBatchSize {
		batch := verseKeys[i:min(i+uthmaniBatchSize, len(verseKeys))]
		u := c.baseURL + "/quran/verses/uthmani?verse_key=" + url.QueryEscape(strings.Join(batch, ","))
		var resp uthmaniResponse
		if err := c.getJSON(ctx, u, &resp); err != nil {
			return nil, err
		}
		for _, v := range resp.Verses {
			uthmani[v.VerseKey] = v.TextUthmani
		}
	}
	return uthmani, nil
}

// FetchJuz fetches tafsir and Uthmani text for every verse in a juz.
// Verses whose tafsir body is empty are skipped.
func (c *Client) FetchJuz(ctx context.Context, juzNumber int) ([]tafsir.Entry, error) {
	verseKeys, err := c.VerseKeys(ctx, juzNumber)
	if err != nil {
		return nil, fmt.Errorf("verse keys: %w", err)
	}

	uthmani, err := c.UthmaniText(ctx, verseKeys)
	if err != nil {
		return nil, fmt.Errorf("uthmani text: %w", err)
	}

	var entries []tafsir.Entry
	for _, vk := range verseKeys {
		u := fmt.Sprintf("%s/tafsirs/%d/by_ayah/%s", c.baseURL, c.tafsirResourceID, vk)
		var resp tafsirResponse
		if err := c.getJSON(ctx, u, &resp); err != nil {
			return nil, fmt.Errorf("tafsir %s: %w", vk, err)
		}
		if strings.TrimSpace(resp.Tafsir.Text) == "" {
			continue
		}
		entries = append(entries, tafsir.Entry{
			VerseKey: vk,
			Text:     resp.Tafsir.Text,
			Uthmani:  uthmani[vk],
		})
	}
	return entries, nil
}

func (c *Client) getJSON(ctx context.Context, u string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("get %s: %w", u, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("get %s: status %d: %s", u, resp.StatusCode, string(body))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", u, err)
	}
	return nil
}

// Close releases idle connections.
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}
