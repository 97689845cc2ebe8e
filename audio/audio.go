// Package audio plays short synthesized cues for board events.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"
)

// SampleRate is the output rate of every cue.
const SampleRate = beep.SampleRate(44100)

// chimeScale is a C major pentatonic run; larger groups climb it.
var chimeScale = [...]float64{523.25, 587.33, 659.25, 783.99, 880.00, 1046.50, 1174.66, 1318.51}

const (
	chimeLength    = 180 * time.Millisecond
	gameOverLength = 700 * time.Millisecond
)

// Tone is a sine generator with a linear attack and an exponential decay.
// Slide changes the frequency over the tone's length (0 keeps it flat).
type Tone struct {
	sr     beep.SampleRate
	freq   float64
	slide  float64
	amp    float64
	pos    int
	length int
	phase  float64
}

// NewTone creates a tone of the given length. amp is the peak amplitude.
func NewTone(sr beep.SampleRate, freq, amp float64, length time.Duration) *Tone {
	return &Tone{sr: sr, freq: freq, amp: amp, length: sr.N(length)}
}

func (g *Tone) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.length {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.length {
			return i, true
		}
		progress := float64(g.pos) / float64(g.length)
		freq := g.freq * (1 + g.slide*progress)
		g.phase += 2 * math.Pi * freq / float64(g.sr)

		attack := math.Min(float64(g.pos)/float64(g.sr)/0.005, 1.0)
		sample := g.amp * attack * math.Exp(-4*progress) * math.Sin(g.phase)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *Tone) Err() error {
	return nil
}

// Chime returns the cue for a cleared group of n cells.
func Chime(sr beep.SampleRate, n int, volume float64) beep.Streamer {
	idx := min(max(n-1, 0), len(chimeScale)-1)
	return beep.Take(sr.N(chimeLength), NewTone(sr, chimeScale[idx], 0.4*volume, chimeLength))
}

// GameOverTone returns the falling cue played when a board finishes.
func GameOverTone(sr beep.SampleRate, volume float64) beep.Streamer {
	t := NewTone(sr, 440, 0.4*volume, gameOverLength)
	t.slide = -0.5
	return beep.Take(sr.N(gameOverLength), t)
}

// Player owns the speaker. All methods are no-ops until Init succeeds, so a
// machine without an audio device still runs the game.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	log         *zap.Logger
	initialized bool
}

// NewPlayer creates a player at volume (0 to 1).
func NewPlayer(volume float64, log *zap.Logger) *Player {
	if log == nil {
		log = zap.NewNop()
	}
	return &Player{mixer: &beep.Mixer{}, volume: volume, log: log}
}

// Init opens the speaker.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	p.log.Debug("audio ready", zap.Int("sample_rate", int(SampleRate)))
	return nil
}

// PlayTurn plays the chime for a group of n cells.
func (p *Player) PlayTurn(n int) {
	p.add(func() beep.Streamer { return Chime(SampleRate, n, p.volume) })
}

// PlayGameOver plays the game-over cue.
func (p *Player) PlayGameOver() {
	p.add(func() beep.Streamer { return GameOverTone(SampleRate, p.volume) })
}

func (p *Player) add(mk func() beep.Streamer) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Add(mk())
	speaker.Unlock()
}

// Close silences every playing cue.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}
