// Package study implements the flashcard session engine: the shuffled queue
// over the selected pool, the flip and enrichment state of the current card,
// and the deferred display swap.
//
// A Session is not safe for concurrent use. All methods are meant to be
// called from the UI event loop; background work is handed back as Effects
// whose results re-enter through Complete and Settle.
package study

import (
	"log/slog"
	"time"

	"github.com/abhisek/kanacards/internal/deck"
	"github.com/abhisek/kanacards/internal/enrich"
	"github.com/abhisek/kanacards/internal/kana"
)

// Options configures a Session.
type Options struct {
	// Selection is the starting selection. The zero value uses
	// kana.DefaultSelection.
	Selection kana.Selection

	// Items is the dataset. Defaults to kana.All().
	Items []kana.Item

	// Rand drives shuffling. Nil uses math/rand/v2.
	Rand deck.Rand

	// Enricher fetches mnemonics on first reveal. Nil disables enrichment.
	Enricher Enricher

	FetchTimeout time.Duration
	SettleDelay  time.Duration
	Logger       *slog.Logger
}

// Effects is the background work a transition asks the caller to run.
type Effects struct {
	Fetch  *Fetch
	Settle *SettleTimer
}

// Session is one study session.
type Session struct {
	items    []kana.Item
	sel      kana.Selection
	queue    *deck.Queue[kana.Item]
	card     card
	display  *Display
	enricher Enricher
	timeout  time.Duration
	logger   *slog.Logger
}

// New creates a session. Call Start before use.
func New(opts Options) *Session {
	items := opts.Items
	if items == nil {
		items = kana.All()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	sel := opts.Selection
	if len(sel.Groups()) == 0 {
		sel = kana.DefaultSelection()
	}
	timeout := opts.FetchTimeout
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}
	return &Session{
		items:    items,
		sel:      sel,
		queue:    deck.NewQueue[kana.Item](opts.Rand),
		display:  NewDisplay(opts.SettleDelay),
		enricher: opts.Enricher,
		timeout:  timeout,
		logger:   logger,
	}
}

// Start begins the first round over the current pool.
func (s *Session) Start() Effects {
	wasFaceUp := s.card.flipped
	s.queue.StartRound(s.pool())
	return s.itemChanged(wasFaceUp)
}

// Next advances to the next card, reshuffling after the last one.
func (s *Session) Next() Effects {
	if s.queue.Size() == 0 {
		return Effects{}
	}
	wasFaceUp := s.card.flipped
	s.queue.Advance()
	return s.itemChanged(wasFaceUp)
}

// Flip turns the card over. Revealing the answer for the first time returns
// a fetch when an enricher is configured. While a swap is pending the card is
// still turning back, so the flip only finishes that and shows the new
// prompt.
func (s *Session) Flip() Effects {
	cur, ok := s.queue.Current()
	if !ok {
		return Effects{}
	}
	if s.Swapping() {
		s.display.Flipped()
		return Effects{}
	}
	f := s.card.flip(cur, ok, s.enricher, s.timeout, s.logger)
	if f != nil {
		s.logger.Debug("enrichment requested",
			slog.String("glyph", cur.Glyph),
			slog.Uint64("token", f.Token))
	}
	return Effects{Fetch: f}
}

// Complete applies a finished fetch. It reports false when the fetch was
// superseded by an item change.
func (s *Session) Complete(ev Fetched) bool {
	if !s.card.complete(ev) {
		s.logger.Debug("stale enrichment discarded",
			slog.String("glyph", ev.Item.Glyph),
			slog.Uint64("token", ev.Token))
		return false
	}
	return true
}

// Settle applies an expired display swap.
func (s *Session) Settle(ev Settled) bool {
	return s.display.Settle(ev)
}

// ToggleGroup adds or removes a group and reshuffles if the pool changed.
func (s *Session) ToggleGroup(g string) (Effects, error) {
	next, err := s.sel.ToggleGroup(g)
	if err != nil {
		return Effects{}, err
	}
	return s.applySelection(next), nil
}

// ToggleScript adds or removes a script and reshuffles if the pool changed.
func (s *Session) ToggleScript(sc kana.Script) (Effects, error) {
	next, err := s.sel.ToggleScript(sc)
	if err != nil {
		return Effects{}, err
	}
	return s.applySelection(next), nil
}

// ToggleDiacritics switches all diacritic groups on or off together.
func (s *Session) ToggleDiacritics() (Effects, error) {
	next, err := s.sel.ToggleDiacritics()
	if err != nil {
		return Effects{}, err
	}
	return s.applySelection(next), nil
}

// SetMode changes which face is shown first. The pool is unaffected.
func (s *Session) SetMode(m kana.Mode) (Effects, error) {
	next, err := s.sel.SetMode(m)
	if err != nil {
		return Effects{}, err
	}
	return s.applySelection(next), nil
}

// Close cancels any background work. The session must not be used after.
func (s *Session) Close() {
	s.card.reset()
	s.display.Close()
}

func (s *Session) applySelection(next kana.Selection) Effects {
	s.sel = next
	wasFaceUp := s.card.flipped
	if !s.queue.Reconcile(s.pool()) {
		return Effects{}
	}
	s.logger.Debug("pool changed, new round",
		slog.Int("pool", s.queue.Size()),
		slog.Any("groups", next.Groups()))
	return s.itemChanged(wasFaceUp)
}

func (s *Session) itemChanged(wasFaceUp bool) Effects {
	s.card.reset()
	cur, ok := s.queue.Current()
	return Effects{Settle: s.display.Change(cur, ok, wasFaceUp)}
}

func (s *Session) pool() []kana.Item {
	return kana.DerivePool(s.items, s.sel)
}

// Current returns the logical current item.
func (s *Session) Current() (kana.Item, bool) { return s.queue.Current() }

// Visible returns the item to render, which may lag Current while a swap
// settles.
func (s *Session) Visible() (kana.Item, bool) { return s.display.Visible() }

// Swapping reports whether a display swap is pending.
func (s *Session) Swapping() bool {
	_, ok := s.display.Pending()
	return ok
}

// Flipped reports whether the answer face is showing.
func (s *Session) Flipped() bool { return s.card.flipped }

// Loading reports whether an enrichment fetch is in flight.
func (s *Session) Loading() bool { return s.card.loading }

// Result returns the enrichment for the current item, if any.
func (s *Session) Result() (enrich.Result, bool) {
	if s.card.result == nil {
		return enrich.Result{}, false
	}
	return *s.card.result, true
}

// EnrichmentEnabled reports whether flips can fetch enrichment.
func (s *Session) EnrichmentEnabled() bool { return s.enricher != nil }

func (s *Session) Selection() kana.Selection { return s.sel }

func (s *Session) Mode() kana.Mode { return s.sel.Mode() }

func (s *Session) Seen() int { return s.queue.Seen() }

func (s *Session) PoolSize() int { return s.queue.Size() }

// Remaining returns the rest of the current cycle.
func (s *Session) Remaining() []kana.Item { return s.queue.Remaining() }

// Empty reports whether the selection yields no cards.
func (s *Session) Empty() bool {
	_, ok := s.queue.Current()
	return !ok
}
