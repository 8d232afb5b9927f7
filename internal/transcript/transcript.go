// Package transcript fetches timed caption lines for a YouTube video from
// the timedtext endpoint. Captions are a best-effort input: callers treat
// any failure here as "no transcript" and carry on.
package transcript

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"html"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/NotMedic/PopUpVideo/pkg/models"
)

// ErrUnavailable signals that no transcript exists for the video, either
// because captions are disabled or because fetching is turned off entirely.
var ErrUnavailable = errors.New("transcript unavailable")

// DefaultBaseURL is the YouTube timedtext endpoint.
const DefaultBaseURL = "https://video.google.com/timedtext"

// Config holds transcript client configuration
type Config struct {
	Enabled  bool
	BaseURL  string
	Language string
	Timeout  time.Duration
}

// Client fetches transcripts over HTTP
type Client struct {
	cfg    Config
	client *http.Client
}

// NewClient creates a transcript client. A disabled config produces a client
// whose Fetch always reports ErrUnavailable without touching the network.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Language == "" {
		cfg.Language = "en"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	return &Client{
		cfg: cfg,
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// timedtext XML shape: <transcript><text start="1.3" dur="2.4">...</text></transcript>
type timedText struct {
	XMLName xml.Name       `xml:"transcript"`
	Lines   []timedTextRow `xml:"text"`
}

type timedTextRow struct {
	Start    float64 `xml:"start,attr"`
	Duration float64 `xml:"dur,attr"`
	Text     string  `xml:",chardata"`
}

// Fetch retrieves the ordered caption lines for a video id. Returns
// ErrUnavailable when captions are disabled, missing, or empty.
func (c *Client) Fetch(ctx context.Context, videoID string) ([]models.TranscriptEntry, error) {
	if !c.cfg.Enabled {
		return nil, ErrUnavailable
	}

	q := url.Values{}
	q.Set("lang", c.cfg.Language)
	q.Set("v", videoID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create transcript request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("transcript request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, ErrUnavailable
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read transcript response: %w", err)
	}

	// The endpoint answers 200 with an empty body when no track exists.
	if len(strings.TrimSpace(string(body))) == 0 {
		return nil, ErrUnavailable
	}

	var tt timedText
	if err := xml.Unmarshal(body, &tt); err != nil {
		return nil, fmt.Errorf("failed to parse transcript XML: %w", err)
	}
	if len(tt.Lines) == 0 {
		return nil, ErrUnavailable
	}

	entries := make([]models.TranscriptEntry, 0, len(tt.Lines))
	for _, line := range tt.Lines {
		text := strings.TrimSpace(html.UnescapeString(line.Text))
		if text == "" {
			continue
		}
		entries = append(entries, models.TranscriptEntry{
			Start:    int(line.Start),
			Duration: line.Duration,
			Text:     text,
		})
	}
	if len(entries) == 0 {
		return nil, ErrUnavailable
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Start < entries[j].Start
	})

	return entries, nil
}
