// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"io"
	"math"
	"time"

	"github.com/ik5/audsrc/audio"
)

// MockSource is a test helper that generates audio data for testing.
// It implements the audio.Source interface with a fully known length and
// exact seeking.
type MockSource struct {
	sampleRate   int
	channels     int
	totalSamples int // Total samples to generate (per channel)
	idx          int // Interleaved samples emitted so far
	waveform     func(sample int, channel int) float32
}

// NewMockSource creates a new mock audio source.
// totalSamples is the total number of samples per channel to generate.
// waveform is a function that generates sample values given sample index and channel.
func NewMockSource(sampleRate, channels, totalSamples int, waveform func(sample int, channel int) float32) *MockSource {
	return &MockSource{
		sampleRate:   sampleRate,
		channels:     channels,
		totalSamples: totalSamples,
		waveform:     waveform,
	}
}

// NewSilentSource creates a mock source that generates silence (all zeros).
func NewSilentSource(sampleRate, channels, totalSamples int) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(sample int, channel int) float32 {
		return 0.0
	})
}

// NewSineSource creates a mock source that generates a sine wave.
func NewSineSource(sampleRate, channels, totalSamples int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(sample int, channel int) float32 {
		t := float64(sample) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

// NewConstantSource creates a mock source with constant value.
func NewConstantSource(sampleRate, channels, totalSamples int, value float32) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(sample int, channel int) float32 {
		return value
	})
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }

// Reset rewinds the source to the start to allow re-reading.
func (m *MockSource) Reset() {
	m.idx = 0
}

func (m *MockSource) NextSample() (float32, error) {
	frame := m.idx / m.channels
	if frame >= m.totalSamples {
		return 0, io.EOF
	}

	ch := m.idx % m.channels
	m.idx++

	return m.waveform(frame, ch), nil
}

func (m *MockSource) CurrentFrameLen() (int, bool) {
	return m.totalSamples*m.channels - m.idx, true
}

func (m *MockSource) TotalDuration() (time.Duration, bool) {
	return time.Duration(m.totalSamples) * time.Second / time.Duration(m.sampleRate), true
}

func (m *MockSource) TrySeek(pos time.Duration) error {
	if pos < 0 {
		return audio.ErrSeekOutOfRange
	}

	frame := int(pos.Seconds() * float64(m.sampleRate))
	if frame > m.totalSamples {
		return audio.ErrSeekOutOfRange
	}
	m.idx = frame * m.channels

	return nil
}
