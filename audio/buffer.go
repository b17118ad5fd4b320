// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"time"

	goaudio "github.com/go-audio/audio"

	"github.com/ik5/audsrc/utils"
)

// Buffer is a seekable in-memory source over interleaved float32 samples.
// Unlike streaming sources it can be repositioned anywhere, including back to
// the start after it has been exhausted.
type Buffer struct {
	channels   int
	sampleRate int
	samples    []float32
	pos        int
}

// NewBuffer creates a source over samples. The slice is not copied; the
// caller must not mutate it while the source is in use.
func NewBuffer(channels, sampleRate int, samples []float32) *Buffer {
	return &Buffer{
		channels:   channels,
		sampleRate: sampleRate,
		samples:    samples,
	}
}

// FromIntBuffer creates a source from a go-audio integer buffer, normalizing
// samples to [-1, 1] according to the buffer's SourceBitDepth (16 when
// unset). This is the bridge from go-audio based producers into the
// pipeline.
func FromIntBuffer(buf *goaudio.IntBuffer) *Buffer {
	bitDepth := buf.SourceBitDepth
	if bitDepth == 0 {
		bitDepth = 16
	}

	samples := make([]float32, len(buf.Data))
	for i, v := range buf.Data {
		samples[i] = utils.IntToFloat32(v, bitDepth)
	}

	return NewBuffer(buf.Format.NumChannels, buf.Format.SampleRate, samples)
}

// FromFloatBuffer creates a source from a go-audio float buffer. Samples are
// assumed to already be in [-1, 1].
func FromFloatBuffer(buf *goaudio.FloatBuffer) *Buffer {
	samples := make([]float32, len(buf.Data))
	for i, v := range buf.Data {
		samples[i] = float32(v)
	}

	return NewBuffer(buf.Format.NumChannels, buf.Format.SampleRate, samples)
}

func (b *Buffer) NextSample() (float32, error) {
	if b.pos >= len(b.samples) {
		return 0, io.EOF
	}
	v := b.samples[b.pos]
	b.pos++

	return v, nil
}

func (b *Buffer) CurrentFrameLen() (int, bool) {
	return len(b.samples) - b.pos, true
}

func (b *Buffer) Channels() int   { return b.channels }
func (b *Buffer) SampleRate() int { return b.sampleRate }

func (b *Buffer) TotalDuration() (time.Duration, bool) {
	frames := len(b.samples) / b.channels

	return time.Duration(frames) * time.Second / time.Duration(b.sampleRate), true
}

// TrySeek repositions to pos. Seeking exactly to the end is allowed and
// leaves the source exhausted; seeking past it fails with ErrSeekOutOfRange
// and the position is untouched.
func (b *Buffer) TrySeek(pos time.Duration) error {
	if pos < 0 {
		return ErrSeekOutOfRange
	}

	target := int(pos.Seconds()*float64(b.sampleRate)) * b.channels
	if target > len(b.samples) {
		return ErrSeekOutOfRange
	}
	b.pos = target

	return nil
}
