package strokes

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleSVG = `<svg id="z12354">
<path id="z12354d1" d="M1 1" clip-path="url(#z12354c1)" style="--d:1s;"/>
<path id="z12354d2" d="M2 2" clip-path="url(#z12354c2)" style="--d:2s;--t:1.5s;"/>
</svg>`

type recorder struct {
	mu    sync.Mutex
	paths []string
}

func (r *recorder) add(p string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.paths = append(r.paths, p)
}

func serve(t *testing.T, rec *recorder, routes map[string]string) *Fetcher {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.add(r.URL.Path)
		body, ok := routes[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "image/svg+xml")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return NewFetcher(srv.URL+"/", srv.Client())
}

func TestCandidates(t *testing.T) {
	f := NewFetcher("", nil)

	assert.Equal(t, []string{
		DefaultBaseURL + "/svgsJaKana/12354.svg",
		DefaultBaseURL + "/svgsJa/12354.svg",
	}, f.Candidates("あ"))

	// Non-kana glyphs prefer the kanji directory.
	assert.Equal(t, []string{
		DefaultBaseURL + "/svgsJa/26085.svg",
		DefaultBaseURL + "/svgsJaKana/26085.svg",
	}, f.Candidates("日"))

	// Only the first rune counts.
	assert.Equal(t, f.Candidates("キ"), f.Candidates("キャ"))
	assert.Empty(t, f.Candidates(""))
}

func TestIsKana(t *testing.T) {
	assert.True(t, IsKana('あ'))
	assert.True(t, IsKana('ン'))
	assert.True(t, IsKana('ㇰ'))
	assert.False(t, IsKana('日'))
	assert.False(t, IsKana('a'))
}

func TestFetch_FirstCandidate(t *testing.T) {
	rec := &recorder{}
	f := serve(t, rec, map[string]string{"/svgsJaKana/12354.svg": sampleSVG})

	body, err := f.Fetch(context.Background(), "あ")
	require.NoError(t, err)
	assert.Equal(t, sampleSVG, string(body))
	assert.Equal(t, []string{"/svgsJaKana/12354.svg"}, rec.paths)
}

func TestFetch_FallsBack(t *testing.T) {
	rec := &recorder{}
	f := serve(t, rec, map[string]string{"/svgsJa/12450.svg": sampleSVG})

	body, err := f.Fetch(context.Background(), "ア")
	require.NoError(t, err)
	assert.Equal(t, sampleSVG, string(body))
	assert.Equal(t, []string{"/svgsJaKana/12450.svg", "/svgsJa/12450.svg"}, rec.paths)
}

func TestFetch_NotFound(t *testing.T) {
	rec := &recorder{}
	f := serve(t, rec, nil)

	_, err := f.Fetch(context.Background(), "ゐ")
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Len(t, rec.paths, 2)

	_, err = f.Fetch(context.Background(), "")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestFetch_Cancelled(t *testing.T) {
	rec := &recorder{}
	f := serve(t, rec, map[string]string{"/svgsJaKana/12354.svg": sampleSVG})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := f.Fetch(ctx, "あ")
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.False(t, errors.Is(err, ErrNotFound))
}

func TestAnimationLength(t *testing.T) {
	assert.Equal(t, 3500*time.Millisecond, AnimationLength([]byte(sampleSVG)))
	assert.Equal(t, time.Duration(0), AnimationLength([]byte("<svg/>")))
}
