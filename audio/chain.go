// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"time"
)

// Chain plays sources back to back. The parts may have different formats;
// Channels and SampleRate always describe the part currently playing, so a
// switch between parts is a frame boundary consumers can detect via
// CurrentFrameLen.
type Chain struct {
	srcs []Source
	cur  int
}

func NewChain(srcs ...Source) *Chain {
	return &Chain{srcs: srcs}
}

// current is the part metadata queries describe. Once every part is
// exhausted the last one keeps answering, so metadata stays stable after the
// end of the stream.
func (c *Chain) current() Source {
	if len(c.srcs) == 0 {
		return Empty{}
	}
	if c.cur >= len(c.srcs) {
		return c.srcs[len(c.srcs)-1]
	}
	return c.srcs[c.cur]
}

func (c *Chain) NextSample() (float32, error) {
	for c.cur < len(c.srcs) {
		v, err := c.srcs[c.cur].NextSample()
		if err == io.EOF {
			c.cur++
			continue
		}
		return v, err
	}
	return 0, io.EOF
}

func (c *Chain) CurrentFrameLen() (int, bool) { return c.current().CurrentFrameLen() }
func (c *Chain) Channels() int                { return c.current().Channels() }
func (c *Chain) SampleRate() int              { return c.current().SampleRate() }

// TotalDuration is the sum of the parts, known only when every part knows its
// own duration.
func (c *Chain) TotalDuration() (time.Duration, bool) {
	var total time.Duration
	for _, src := range c.srcs {
		d, ok := src.TotalDuration()
		if !ok {
			return 0, false
		}
		total += d
	}
	return total, true
}

// TrySeek is not supported: a time offset is ambiguous across parts with
// different sample rates.
func (c *Chain) TrySeek(pos time.Duration) error {
	return ErrSeekNotSupported
}
