package study

import (
	"context"
	"time"

	"github.com/abhisek/kanacards/internal/kana"
)

// DefaultSettleDelay matches the flip animation: a face-up card is turned
// over before its content changes.
const DefaultSettleDelay = 700 * time.Millisecond

// SettleTimer delivers a deferred display swap.
type SettleTimer struct {
	Token uint64
	Delay time.Duration

	ctx context.Context
}

// Settled reports that a settle timer expired.
type Settled struct {
	Token uint64
}

// Wait blocks until the delay elapses or the timer is cancelled. The bool is
// false when cancelled.
func (t *SettleTimer) Wait() (Settled, bool) {
	timer := time.NewTimer(t.Delay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return Settled{Token: t.Token}, true
	case <-t.ctx.Done():
		return Settled{}, false
	}
}

// Display tracks the item actually rendered, which lags the current item
// while a face-up card settles.
type Display struct {
	delay time.Duration

	visible    kana.Item
	hasVisible bool

	pending    kana.Item
	hasPending bool

	token  uint64
	cancel context.CancelFunc
}

// NewDisplay creates a display with the given settle delay.
func NewDisplay(delay time.Duration) *Display {
	if delay <= 0 {
		delay = DefaultSettleDelay
	}
	return &Display{delay: delay}
}

// Visible returns the item to render.
func (d *Display) Visible() (kana.Item, bool) {
	return d.visible, d.hasVisible
}

// Pending returns the item waiting to be shown.
func (d *Display) Pending() (kana.Item, bool) {
	return d.pending, d.hasPending
}

// Change records a new current item. wasFaceUp is the face rendered at the
// moment of the change. A returned timer must be waited on and its Settled
// fed back through Settle.
func (d *Display) Change(item kana.Item, ok bool, wasFaceUp bool) *SettleTimer {
	if !ok {
		d.stop()
		d.hasPending = false
		d.visible = kana.Item{}
		d.hasVisible = false
		return nil
	}
	if !d.hasPending && d.hasVisible && d.visible == item {
		return nil
	}
	if !wasFaceUp {
		// A face-down card shows the change at once and drops any
		// pending swap.
		d.stop()
		d.pending = kana.Item{}
		d.hasPending = false
		d.visible = item
		d.hasVisible = true
		return nil
	}
	if d.hasPending && d.pending == item {
		return nil
	}

	d.stop()
	d.pending = item
	d.hasPending = true
	d.token++
	ctx, cancel := context.WithCancel(context.Background())
	d.cancel = cancel
	return &SettleTimer{Token: d.token, Delay: d.delay, ctx: ctx}
}

// Flipped applies any pending swap right away. The card has finished
// turning back.
func (d *Display) Flipped() {
	d.apply()
}

// Settle applies the pending swap if ev belongs to the live timer.
func (d *Display) Settle(ev Settled) bool {
	if !d.hasPending || ev.Token != d.token {
		return false
	}
	d.apply()
	return true
}

// Close cancels any running timer.
func (d *Display) Close() {
	d.stop()
}

func (d *Display) apply() {
	if !d.hasPending {
		return
	}
	d.stop()
	d.visible = d.pending
	d.hasVisible = true
	d.pending = kana.Item{}
	d.hasPending = false
}

func (d *Display) stop() {
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
	d.token++
}
