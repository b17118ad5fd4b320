// SPDX-License-Identifier: EPL-2.0

// Package audio provides the pull-based sample source primitives.
//
// This package contains the building blocks of the source layer:
//   - Source interface, the contract every pipeline stage implements
//   - Done decorator for one-shot completion tracking
//   - Concrete sources: Empty, Zero, Sine, Buffer, Chain
//
// # Source Interface
//
// The Source interface is the seam all stages plug into:
//
//	type Source interface {
//	    NextSample() (float32, error)
//	    CurrentFrameLen() (int, bool)
//	    Channels() int
//	    SampleRate() int
//	    TotalDuration() (time.Duration, bool)
//	    TrySeek(pos time.Duration) error
//	}
//
// Decoders, generators and decorators all implement it, so any source can
// wrap, or be wrapped by, any other. A source is consumed destructively, one
// interleaved float32 sample at a time; NextSample returns io.EOF when the
// stream is finished and keeps returning io.EOF on every call after that.
//
// # Frames
//
// A frame is a run of samples over which the channel count and sample rate do
// not change. CurrentFrameLen reports how much of the current frame is left,
// when known. It is a hint for consumers that cache format metadata, never a
// way to detect the end of the stream; only io.EOF means the stream is done.
//
// # Completion Tracking
//
// Done wraps any source and reports its completion exactly once, by
// decrementing a shared counter and firing an optional callback:
//
//	var playing atomic.Uint64
//	playing.Add(1)
//
//	done := audio.NewDone(src, &playing)
//	done.SetOnDone(func() { /* runs once, on the consuming goroutine */ })
//
// A mixer that increments the counter per registered source can watch it drop
// back to zero to know when everything has finished playing. The counter has
// no floor: decrementing it at zero wraps around, so the owner must keep
// increments and decrements balanced.
//
// # Seeking
//
// TrySeek repositions a source to a time offset. Sources that cannot seek
// return ErrSeekNotSupported, positions outside the stream return
// ErrSeekOutOfRange, and in both cases the source remains usable at its old
// position. Seeking never panics.
//
// # Sample Format
//
// Audio samples are represented as float32 in the range [-1.0, 1.0]:
//   - 0.0 represents silence
//   - 1.0 represents maximum positive amplitude
//   - -1.0 represents maximum negative amplitude
//
// Multi-channel audio is interleaved: a frame of stereo audio is two
// consecutive samples, left then right.
//
// # go-audio Interop
//
// FromIntBuffer and FromFloatBuffer build a seekable in-memory Buffer source
// from github.com/go-audio buffers, normalizing integer PCM to [-1, 1]
// according to the buffer's bit depth. Anything that produces a go-audio
// buffer can feed the pipeline this way without a format decoder in between.
package audio
