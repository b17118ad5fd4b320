// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"sync"
	"sync/atomic"
	"time"
)

// Done wraps a Source and reports its completion exactly once: the first time
// the inner source returns io.EOF, the shared counter is decremented and the
// registered callback, if any, is invoked. Samples and metadata pass through
// untouched.
//
// The counter is a liveness tally shared with whoever schedules sources (a
// mixer typically increments it when registering a source and watches it drop
// back). Done never checks the counter's value: decrementing it at zero wraps
// around to math.MaxUint64 rather than failing, so the owner must not register
// more decrements than increments.
//
// Exactly one goroutine may drive NextSample on a given Done. SetOnDone may be
// called from any goroutine at any time, concurrently with consumption.
type Done struct {
	src        Source
	signal     *atomic.Uint64
	signalSent bool

	mu     sync.Mutex
	onDone func()
}

// NewDone wraps src. When src is first observed empty, signal is decremented
// by one. Nothing is decremented at construction time, even if the counter is
// already zero.
func NewDone(src Source, signal *atomic.Uint64) *Done {
	return &Done{
		src:    src,
		signal: signal,
	}
}

// Inner returns the wrapped source. Reading it, or even consuming it
// directly, does not trigger the completion bookkeeping; only samples pulled
// through the decorator do.
func (d *Done) Inner() Source {
	return d.src
}

// SetOnDone registers fn to run when the inner source is first observed
// empty. It replaces any previously registered callback. Passing nil clears
// the slot. The callback present at the moment exhaustion is detected is the
// one invoked; a callback registered after that moment never fires.
//
// fn runs synchronously on the goroutine driving NextSample and must be quick
// and non-blocking. A panic inside fn is not recovered.
func (d *Done) SetOnDone(fn func()) {
	d.mu.Lock()
	d.onDone = fn
	d.mu.Unlock()
}

// NextSample pulls from the inner source and forwards the result. On the
// first io.EOF it decrements the shared counter and fires the callback; every
// later call forwards io.EOF without further bookkeeping.
func (d *Done) NextSample() (float32, error) {
	v, err := d.src.NextSample()
	if err == io.EOF && !d.signalSent {
		// ^uint64(0) == -1; at zero this wraps instead of erroring.
		d.signal.Add(^uint64(0))
		d.signalSent = true

		d.mu.Lock()
		fn := d.onDone
		d.mu.Unlock()
		if fn != nil {
			fn()
		}
	}
	return v, err
}

func (d *Done) CurrentFrameLen() (int, bool) { return d.src.CurrentFrameLen() }
func (d *Done) Channels() int                { return d.src.Channels() }
func (d *Done) SampleRate() int              { return d.src.SampleRate() }

func (d *Done) TotalDuration() (time.Duration, bool) { return d.src.TotalDuration() }

// TrySeek delegates to the inner source. Seeking backwards after completion
// may make the inner source produce samples again, but the completion signal
// stays sent: the counter is decremented and the callback fired at most once
// per Done, ever.
func (d *Done) TrySeek(pos time.Duration) error {
	return d.src.TrySeek(pos)
}
