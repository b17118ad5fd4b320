// SPDX-License-Identifier: EPL-2.0

package audio

import "time"

// Source is a lazy, pull-based stream of interleaved float32 samples in
// [-1, 1], plus the metadata a consumer needs to interpret them.
//
// A Source is consumed destructively, one sample at a time. Decoders,
// generators and decorators all implement it, so any source can wrap, or be
// wrapped by, any other.
type Source interface {
	// NextSample returns the next interleaved sample, or io.EOF once the
	// stream is finished. After io.EOF has been returned it must keep
	// returning io.EOF on every further call; decorators rely on exhaustion
	// being observable repeatedly.
	NextSample() (float32, error)

	// CurrentFrameLen returns the number of samples left in the current
	// frame, the run of samples over which Channels and SampleRate are
	// guaranteed not to change. ok is false when the length is unknown or
	// the stream is unbounded. This is a hint only; end of stream is
	// signalled exclusively by NextSample returning io.EOF.
	CurrentFrameLen() (n int, ok bool)

	// Channels count (e.g., 1=mono, 2=stereo). May change across frame
	// boundaries.
	Channels() int

	// SampleRate of the stream in Hz. May change across frame boundaries.
	SampleRate() int

	// TotalDuration is an estimate of the total playback time. ok is false
	// when the duration is unknown or the stream is unbounded.
	TotalDuration() (d time.Duration, ok bool)

	// TrySeek repositions the stream to pos. Sources that cannot seek return
	// ErrSeekNotSupported; positions beyond the stream return
	// ErrSeekOutOfRange. On failure the source is left unchanged and still
	// usable.
	TrySeek(pos time.Duration) error
}
