// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"time"
)

// Zero produces silence, either forever or for a fixed number of samples.
type Zero struct {
	channels   int
	sampleRate int

	// remaining samples when bounded; ignored when unbounded
	bounded   bool
	total     int
	remaining int
}

// NewZero creates an unbounded silence source. Its duration and frame length
// are unknown and it never returns io.EOF.
func NewZero(channels, sampleRate int) *Zero {
	return &Zero{
		channels:   channels,
		sampleRate: sampleRate,
	}
}

// NewZeroDur creates a silence source that plays for d and then ends.
func NewZeroDur(channels, sampleRate int, d time.Duration) *Zero {
	total := int(d.Seconds()*float64(sampleRate)) * channels

	return &Zero{
		channels:   channels,
		sampleRate: sampleRate,
		bounded:    true,
		total:      total,
		remaining:  total,
	}
}

func (z *Zero) NextSample() (float32, error) {
	if z.bounded {
		if z.remaining <= 0 {
			return 0, io.EOF
		}
		z.remaining--
	}
	return 0, nil
}

func (z *Zero) CurrentFrameLen() (int, bool) {
	if z.bounded {
		return z.remaining, true
	}
	return 0, false
}

func (z *Zero) Channels() int   { return z.channels }
func (z *Zero) SampleRate() int { return z.sampleRate }

func (z *Zero) TotalDuration() (time.Duration, bool) {
	if z.bounded {
		frames := z.total / z.channels
		return time.Duration(frames) * time.Second / time.Duration(z.sampleRate), true
	}
	return 0, false
}

// TrySeek repositions within the silence. For an unbounded source every
// position is valid and seeking is a no-op beyond resetting nothing; for a
// bounded source seeking past the end fails with ErrSeekOutOfRange and leaves
// the position untouched.
func (z *Zero) TrySeek(pos time.Duration) error {
	if pos < 0 {
		return ErrSeekOutOfRange
	}
	if !z.bounded {
		return nil
	}

	target := int(pos.Seconds()*float64(z.sampleRate)) * z.channels
	if target > z.total {
		return ErrSeekOutOfRange
	}
	z.remaining = z.total - target

	return nil
}
