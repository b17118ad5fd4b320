// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"math"
	"testing"
	"time"
)

func TestSine_Metadata(t *testing.T) {
	t.Parallel()

	src := NewSine(440.0)

	if got := src.Channels(); got != 1 {
		t.Errorf("Channels() = %d, want 1", got)
	}
	if got := src.SampleRate(); got != 44100 {
		t.Errorf("SampleRate() = %d, want 44100", got)
	}
	if _, ok := src.CurrentFrameLen(); ok {
		t.Error("CurrentFrameLen() known for unbounded generator")
	}
	if _, ok := src.TotalDuration(); ok {
		t.Error("TotalDuration() known for unbounded generator")
	}
}

func TestSine_Waveform(t *testing.T) {
	t.Parallel()

	src := NewSine(440.0)

	// First sample of a sine is exactly zero.
	v, err := src.NextSample()
	if err != nil {
		t.Fatalf("NextSample() error = %v", err)
	}
	if v != 0 {
		t.Errorf("first sample = %v, want 0", v)
	}

	// All samples stay in [-1, 1] and the wave actually moves.
	var peak float32
	for _n := 0; _n < 44100; _n++ {
		v, err := src.NextSample()
		if err != nil {
			t.Fatalf("NextSample() error = %v", err)
		}
		if v < -1 || v > 1 {
			t.Fatalf("sample %v outside [-1, 1]", v)
		}
		if v > peak {
			peak = v
		}
	}

	if peak < 0.99 {
		t.Errorf("peak amplitude = %v, want close to 1", peak)
	}
}

func TestSine_Seek(t *testing.T) {
	t.Parallel()

	src := NewSine(440.0)

	// Burn some samples, then seek back to the start: the waveform must
	// repeat exactly.
	var first []float32
	for _n := 0; _n < 32; _n++ {
		v, _ := src.NextSample()
		first = append(first, v)
	}

	if err := src.TrySeek(0); err != nil {
		t.Fatalf("TrySeek(0) error = %v", err)
	}

	for i := 0; i < 32; i++ {
		v, _ := src.NextSample()
		if v != first[i] {
			t.Fatalf("sample[%d] after rewind = %v, want %v", i, v, first[i])
		}
	}

	// Seeking forward lands on the exact phase for that time.
	if err := src.TrySeek(time.Second); err != nil {
		t.Fatalf("TrySeek(1s) error = %v", err)
	}
	v, _ := src.NextSample()
	want := float32(math.Sin(2 * math.Pi * 440.0 * (44100.0 / 44100.0)))
	if v != want {
		t.Errorf("sample after seek = %v, want %v", v, want)
	}
}
