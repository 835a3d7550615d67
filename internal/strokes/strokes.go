// Package strokes downloads animated stroke-order diagrams from the animCJK
// project.
package strokes

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// DefaultBaseURL is the raw content root of the animCJK repository.
const DefaultBaseURL = "https://raw.githubusercontent.com/parsimonhi/animCJK/master"

const maxSVGBytes = 1 << 20

// ErrNotFound is returned when no diagram exists for a glyph.
var ErrNotFound = errors.New("stroke order diagram not found")

// Fetcher retrieves SVG diagrams by code point.
type Fetcher struct {
	baseURL string
	client  *http.Client
}

// NewFetcher creates a Fetcher. An empty baseURL uses DefaultBaseURL and a
// nil client gets a 15 second timeout.
func NewFetcher(baseURL string, client *http.Client) *Fetcher {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	return &Fetcher{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
	}
}

// IsKana reports whether r is in the hiragana, katakana or katakana
// phonetic extension blocks.
func IsKana(r rune) bool {
	return (r >= 0x3040 && r <= 0x309f) ||
		(r >= 0x30a0 && r <= 0x30ff) ||
		(r >= 0x31f0 && r <= 0x31ff)
}

// Candidates lists the URLs tried for glyph, in order. Only the first rune
// of glyph is used.
func (f *Fetcher) Candidates(glyph string) []string {
	r, _ := utf8.DecodeRuneInString(glyph)
	if r == utf8.RuneError {
		return nil
	}
	file := strconv.Itoa(int(r)) + ".svg"
	dirs := []string{"svgsJa", "svgsJaKana"}
	if IsKana(r) {
		dirs = []string{"svgsJaKana", "svgsJa"}
	}
	urls := make([]string, len(dirs))
	for i, d := range dirs {
		urls[i] = f.baseURL + "/" + d + "/" + file
	}
	return urls
}

// Fetch returns the SVG for glyph. Candidates that answer with a non-2xx
// status are skipped; ErrNotFound is returned when none succeed.
func (f *Fetcher) Fetch(ctx context.Context, glyph string) ([]byte, error) {
	urls := f.Candidates(glyph)
	if len(urls) == 0 {
		return nil, fmt.Errorf("no character provided: %w", ErrNotFound)
	}
	for _, u := range urls {
		body, ok, err := f.get(ctx, u)
		if err != nil {
			return nil, err
		}
		if ok {
			return body, nil
		}
	}
	return nil, fmt.Errorf("%s: %w", glyph, ErrNotFound)
}

func (f *Fetcher) get(ctx context.Context, url string) ([]byte, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, false, fmt.Errorf("build request: %w", err)
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, false, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, false, nil
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxSVGBytes))
	if err != nil {
		return nil, false, fmt.Errorf("read %s: %w", url, err)
	}
	return body, true, nil
}

var (
	delayRe    = regexp.MustCompile(`--d:\s*([0-9.]+)s`)
	durationRe = regexp.MustCompile(`--t:\s*([0-9.]+)s`)
	styleRe    = regexp.MustCompile(`<path[^>]*clip-path[^>]*style="([^"]*)"`)
)

// defaultStrokeSeconds is the stroke duration animCJK uses when a path has
// no --t variable.
const defaultStrokeSeconds = 0.8

// AnimationLength returns when the last stroke of an animCJK diagram
// finishes drawing.
func AnimationLength(svg []byte) time.Duration {
	var maxEnd float64
	for _, m := range styleRe.FindAllSubmatch(svg, -1) {
		style := string(m[1])
		d := 0.0
		if dm := delayRe.FindStringSubmatch(style); dm != nil {
			d, _ = strconv.ParseFloat(dm[1], 64)
		}
		t := defaultStrokeSeconds
		if tm := durationRe.FindStringSubmatch(style); tm != nil {
			t, _ = strconv.ParseFloat(tm[1], 64)
		}
		if d+t > maxEnd {
			maxEnd = d + t
		}
	}
	return time.Duration(maxEnd * float64(time.Second))
}
