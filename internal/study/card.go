package study

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/abhisek/kanacards/internal/enrich"
	"github.com/abhisek/kanacards/internal/kana"
)

// DefaultFetchTimeout bounds a single enrichment fetch.
const DefaultFetchTimeout = 25 * time.Second

// Enricher produces the mnemonic and example words for a card.
type Enricher interface {
	Enrich(ctx context.Context, glyph, reading string) (enrich.Result, error)
}

// Fetch is a pending enrichment lookup. Run it off the event loop and feed
// the result back through Session.Complete.
type Fetch struct {
	Token uint64
	Item  kana.Item

	ctx      context.Context
	enricher Enricher
	timeout  time.Duration
	logger   *slog.Logger
}

// Fetched is the completion of a Fetch.
type Fetched struct {
	Token  uint64
	Item   kana.Item
	Result enrich.Result
}

// Run performs the lookup. It never fails: any error, including the
// timeout, resolves to enrich.Fallback.
func (f *Fetch) Run() Fetched {
	ctx := f.ctx
	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	res, err := f.enricher.Enrich(ctx, f.Item.Glyph, f.Item.Romaji)
	if err != nil {
		if errors.Is(f.ctx.Err(), context.Canceled) {
			f.logger.Debug("enrichment cancelled",
				slog.String("glyph", f.Item.Glyph),
				slog.Uint64("token", f.Token))
		} else {
			f.logger.Warn("enrichment failed, using fallback",
				slog.String("glyph", f.Item.Glyph),
				slog.Any("error", err))
		}
		res = enrich.Fallback()
	}
	return Fetched{Token: f.Token, Item: f.Item, Result: res}
}

// card is the flip and enrichment state of the current item.
type card struct {
	flipped bool
	result  *enrich.Result
	loading bool

	token  uint64
	cancel context.CancelFunc
}

// reset clears the flip and enrichment state and invalidates any fetch in
// flight.
func (c *card) reset() {
	c.flipped = false
	c.result = nil
	c.loading = false
	c.token++
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}

// flip toggles the face and returns a fetch when the answer is revealed for
// the first time.
func (c *card) flip(item kana.Item, hasItem bool, e Enricher, timeout time.Duration, logger *slog.Logger) *Fetch {
	c.flipped = !c.flipped
	if !c.flipped || !hasItem || e == nil || c.result != nil || c.loading {
		return nil
	}

	c.token++
	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	c.loading = true
	return &Fetch{
		Token:    c.token,
		Item:     item,
		ctx:      ctx,
		enricher: e,
		timeout:  timeout,
		logger:   logger,
	}
}

// complete stores a fetch result. Results for a superseded token are
// dropped.
func (c *card) complete(ev Fetched) bool {
	if !c.loading || ev.Token != c.token {
		return false
	}
	res := ev.Result
	c.result = &res
	c.loading = false
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	return true
}
