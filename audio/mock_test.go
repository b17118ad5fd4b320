// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"time"
)

// scriptedSource is a test helper that plays a fixed slice of samples and
// then reports io.EOF forever. Its metadata and seek behavior are
// configurable so tests can verify decorators delegate faithfully.
type scriptedSource struct {
	samples    []float32
	pos        int
	channels   int
	sampleRate int

	frameLen   int
	frameKnown bool

	duration      time.Duration
	durationKnown bool

	// seekErr, when set, is returned by TrySeek without repositioning.
	// Otherwise TrySeek rewinds to the start, which "revives" an exhausted
	// source.
	seekErr   error
	seekCalls int

	nextCalls int
}

func newScriptedSource(samples ...float32) *scriptedSource {
	return &scriptedSource{
		samples:    samples,
		channels:   1,
		sampleRate: 44100,
	}
}

func (s *scriptedSource) NextSample() (float32, error) {
	s.nextCalls++
	if s.pos >= len(s.samples) {
		return 0, io.EOF
	}
	v := s.samples[s.pos]
	s.pos++
	return v, nil
}

func (s *scriptedSource) CurrentFrameLen() (int, bool) { return s.frameLen, s.frameKnown }
func (s *scriptedSource) Channels() int                { return s.channels }
func (s *scriptedSource) SampleRate() int              { return s.sampleRate }

func (s *scriptedSource) TotalDuration() (time.Duration, bool) {
	return s.duration, s.durationKnown
}

func (s *scriptedSource) TrySeek(pos time.Duration) error {
	s.seekCalls++
	if s.seekErr != nil {
		return s.seekErr
	}
	s.pos = 0
	return nil
}
