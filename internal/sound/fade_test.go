package sound

import (
	"math"
	"testing"

	"github.com/gopxl/beep"
)

func TestRamp_LinearToSilence(t *testing.T) {
	var r ramp
	if g, done := r.advance(1); done || g != 0 {
		t.Fatalf("expected an idle ramp to report its start gain, got %.2f done=%v", g, done)
	}
	r.start(0.2, 1.0)
	g, done := r.advance(0.5)
	if done || math.Abs(g-0.1) > 1e-9 {
		t.Fatalf("expected gain 0.1 halfway, got %.4f done=%v", g, done)
	}
	g, done = r.advance(0.5)
	if !done || g != 0 {
		t.Fatalf("expected silence at the end, got %.4f done=%v", g, done)
	}
}

func TestRamp_ZeroLengthEndsImmediately(t *testing.T) {
	var r ramp
	r.start(1, 0)
	if _, done := r.advance(0); !done {
		t.Fatalf("expected a zero-length fade to finish at once")
	}
}

func ones() beep.Streamer {
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			samples[i] = [2]float64{1, 1}
		}
		return len(samples), true
	})
}

func TestFader_AppliesGain(t *testing.T) {
	f := newFader(ones(), 0.5)
	buf := make([][2]float64, 8)
	n, ok := f.Stream(buf)
	if n != 8 || !ok {
		t.Fatalf("expected 8 samples, got %d ok=%v", n, ok)
	}
	for i, s := range buf {
		if s[0] != 0.5 || s[1] != 0.5 {
			t.Fatalf("sample %d: expected 0.5, got %v", i, s)
		}
	}
}

func TestFader_FadeOutThenDrained(t *testing.T) {
	f := newFader(ones(), 0.5)
	f.fadeOut(4)

	buf := make([][2]float64, 8)
	n, ok := f.Stream(buf)
	if n != 8 || !ok {
		t.Fatalf("expected the final buffer to be filled, got %d ok=%v", n, ok)
	}
	want := []float64{0.375, 0.25, 0.125, 0, 0, 0, 0, 0}
	for i, w := range want {
		if math.Abs(buf[i][0]-w) > 1e-9 {
			t.Fatalf("sample %d: expected %.3f, got %.3f", i, w, buf[i][0])
		}
	}
	if n, ok := f.Stream(buf); n != 0 || ok {
		t.Fatalf("expected a drained fader, got %d ok=%v", n, ok)
	}
}

func TestFader_Stop(t *testing.T) {
	f := newFader(ones(), 1)
	f.stop()
	if n, ok := f.Stream(make([][2]float64, 4)); n != 0 || ok {
		t.Fatalf("expected a stopped fader to be drained, got %d ok=%v", n, ok)
	}
	if f.Err() != nil {
		t.Fatalf("expected no error, got %v", f.Err())
	}
}
