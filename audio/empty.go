// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"time"
)

// Empty is a source that is exhausted from the start. It is useful as a
// placeholder in a pipeline slot that has nothing to play.
type Empty struct{}

func NewEmpty() Empty { return Empty{} }

func (Empty) NextSample() (float32, error)       { return 0, io.EOF }
func (Empty) CurrentFrameLen() (int, bool)       { return 0, true }
func (Empty) Channels() int                      { return 1 }
func (Empty) SampleRate() int                    { return 44100 }
func (Empty) TotalDuration() (time.Duration, bool) { return 0, true }

// TrySeek succeeds trivially; there is nothing to reposition in.
func (Empty) TrySeek(pos time.Duration) error { return nil }
