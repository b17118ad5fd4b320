// SPDX-License-Identifier: EPL-2.0

// Package audsrc provides pull-based audio sample sources for Go applications.
//
// This package is the source layer of an audio pipeline: lazy producers of
// interleaved float32 samples that carry their own metadata (channel count,
// sample rate, frame boundaries, optional total duration) and can be stacked
// into pipelines. Mixers, players and encoders consume sources; decoders and
// generators produce them.
//
// # Quick Start
//
// Wrap any source in a Done decorator to find out when it finishes:
//
//	var playing atomic.Uint64
//	playing.Add(1)
//
//	done := audio.NewDone(src, &playing)
//	done.SetOnDone(func() { log.Println("finished") })
//
//	// Pull samples as usual; the counter drops and the callback fires
//	// exactly once, on the pull that first observes the end of the stream.
//	samples, _ := audsrc.Collect(done)
//
// # The Source Contract
//
// Everything composes over the audio.Source interface:
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
// NextSample returns io.EOF at the end of the stream and keeps returning it
// on every later call. See the audio subpackage for the full contract and the
// concrete sources (Empty, Zero, Sine, Buffer, Chain).
//
// # Collecting Samples
//
// Collect and CollectInt16 drain a source into a slice, which is convenient
// for tests, offline rendering and handing data to batch APIs:
//
//	pcm16, err := audsrc.CollectInt16(src)
//
// # go-audio Interop
//
// Sources can be built from github.com/go-audio buffers:
//
//	src := audio.FromIntBuffer(intBuffer)
//
// so any go-audio based decoder output can enter the pipeline without this
// package knowing about file formats.
//
// # Sample Format
//
// Audio samples are represented as float32 in the range [-1.0, 1.0], stored
// interleaved for multi-channel streams. CollectInt16 converts to 16-bit PCM
// on the way out.
package audsrc
