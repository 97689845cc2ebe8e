package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// drain streams s to exhaustion and returns every left-channel sample.
func drain(s beep.Streamer) []float64 {
	var out []float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			out = append(out, buf[i][0])
		}
		if !ok || n == 0 {
			return out
		}
	}
}

func TestChimeLength(t *testing.T) {
	samples := drain(Chime(SampleRate, 3, 1))
	want := SampleRate.N(chimeLength)
	if len(samples) != want {
		t.Errorf("len = %d, want %d", len(samples), want)
	}
}

func TestChimeAmplitude(t *testing.T) {
	peak := 0.0
	for _, s := range drain(Chime(SampleRate, 1, 1)) {
		peak = math.Max(peak, math.Abs(s))
	}
	if peak == 0 {
		t.Fatal("chime is silent")
	}
	if peak > 0.4 {
		t.Errorf("peak = %f, want <= 0.4", peak)
	}
}

func TestChimeMuted(t *testing.T) {
	for i, s := range drain(Chime(SampleRate, 5, 0)) {
		if s != 0 {
			t.Fatalf("sample %d = %f, want 0", i, s)
		}
	}
}

func TestChimeClampsGroupSize(t *testing.T) {
	for _, n := range []int{-3, 0, 1, 100} {
		if len(drain(Chime(SampleRate, n, 1))) == 0 {
			t.Errorf("Chime(%d) produced no samples", n)
		}
	}
}

func TestGameOverToneLength(t *testing.T) {
	samples := drain(GameOverTone(SampleRate, 1))
	if len(samples) != SampleRate.N(gameOverLength) {
		t.Errorf("len = %d, want %d", len(samples), SampleRate.N(gameOverLength))
	}
}

func TestToneEnds(t *testing.T) {
	tone := NewTone(SampleRate, 440, 1, 10*time.Millisecond)
	drain(tone)
	buf := make([][2]float64, 16)
	if n, ok := tone.Stream(buf); n != 0 || ok {
		t.Errorf("Stream after end = (%d, %v), want (0, false)", n, ok)
	}
	if tone.Err() != nil {
		t.Errorf("Err = %v", tone.Err())
	}
}

func TestPlayerWithoutInit(t *testing.T) {
	p := NewPlayer(0.5, nil)

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("player panicked without initialization: %v", r)
		}
	}()

	p.PlayTurn(4)
	p.PlayGameOver()
	p.Close()
}
