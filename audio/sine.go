// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"math"
	"time"
)

const sineSampleRate = 44100

// Sine is an unbounded mono sine wave generator. It never returns io.EOF,
// reports no frame length and no total duration, and supports exact seeking
// (the phase is a pure function of the sample index).
type Sine struct {
	freq float64
	idx  int
}

// NewSine creates a sine generator at freq Hz, sampled at 44.1 kHz.
func NewSine(freq float64) *Sine {
	return &Sine{freq: freq}
}

func (s *Sine) NextSample() (float32, error) {
	t := float64(s.idx) / sineSampleRate
	s.idx++

	return float32(math.Sin(2 * math.Pi * s.freq * t)), nil
}

func (s *Sine) CurrentFrameLen() (int, bool)         { return 0, false }
func (s *Sine) Channels() int                        { return 1 }
func (s *Sine) SampleRate() int                      { return sineSampleRate }
func (s *Sine) TotalDuration() (time.Duration, bool) { return 0, false }

func (s *Sine) TrySeek(pos time.Duration) error {
	if pos < 0 {
		return ErrSeekOutOfRange
	}
	s.idx = int(pos.Seconds() * sineSampleRate)

	return nil
}
