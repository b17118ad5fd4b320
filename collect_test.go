// SPDX-License-Identifier: EPL-2.0

package audsrc_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/ik5/audsrc"
	"github.com/ik5/audsrc/audio"
	"github.com/ik5/audsrc/internal/audiotest"
)

func TestCollect(t *testing.T) {
	t.Parallel()

	src := audiotest.NewConstantSource(8000, 2, 50, 0.25)

	samples, err := audsrc.Collect(src)
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	// 50 frames of stereo = 100 interleaved samples.
	if len(samples) != 100 {
		t.Fatalf("Collect() returned %d samples, want 100", len(samples))
	}
	for i, v := range samples {
		if v != 0.25 {
			t.Fatalf("samples[%d] = %v, want 0.25", i, v)
		}
	}
}

func TestCollect_EmptySource(t *testing.T) {
	t.Parallel()

	samples, err := audsrc.Collect(audio.NewEmpty())
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	if len(samples) != 0 {
		t.Errorf("Collect() returned %d samples from empty source, want 0", len(samples))
	}
}

func TestCollectInt16(t *testing.T) {
	t.Parallel()

	src := audio.NewBuffer(1, 8000, []float32{0, 0.5, -0.5, 1, -1})

	pcm16, err := audsrc.CollectInt16(src)
	if err != nil {
		t.Fatalf("CollectInt16() error = %v", err)
	}

	want := []int16{0, 16383, -16383, 32767, -32767}
	if len(pcm16) != len(want) {
		t.Fatalf("CollectInt16() returned %d samples, want %d", len(pcm16), len(want))
	}
	for i := range want {
		if pcm16[i] != want[i] {
			t.Errorf("pcm16[%d] = %d, want %d", i, pcm16[i], want[i])
		}
	}
}

func TestCollect_ThroughDone(t *testing.T) {
	t.Parallel()

	var playing atomic.Uint64
	playing.Store(1)

	src := audiotest.NewSineSource(8000, 1, 800, 440.0) // 100ms
	done := audio.NewDone(src, &playing)

	samples, err := audsrc.Collect(done)
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	if len(samples) != 800 {
		t.Errorf("Collect() returned %d samples, want 800", len(samples))
	}
	if got := playing.Load(); got != 0 {
		t.Errorf("playing = %d after Collect, want 0", got)
	}

	if d, ok := done.TotalDuration(); !ok || d != 100*time.Millisecond {
		t.Errorf("TotalDuration() = (%v, %v), want (100ms, true)", d, ok)
	}
}
