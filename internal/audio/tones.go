package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// note is one segment of a cue: a frequency sweep with a decaying envelope.
type note struct {
	from, to float64 // Hz
	dur      time.Duration
	volume   float64
	square   bool
}

var cueNotes = map[Cue][]note{
	CueEat: {
		{from: 660, to: 990, dur: 70 * time.Millisecond, volume: 0.25},
	},
	CueDanger: {
		{from: 220, to: 220, dur: 90 * time.Millisecond, volume: 0.2, square: true},
		{from: 196, to: 196, dur: 90 * time.Millisecond, volume: 0.2, square: true},
	},
	CueLevelUp: {
		{from: 523, to: 523, dur: 80 * time.Millisecond, volume: 0.25},
		{from: 659, to: 659, dur: 80 * time.Millisecond, volume: 0.25},
		{from: 784, to: 784, dur: 80 * time.Millisecond, volume: 0.25},
		{from: 1046, to: 1046, dur: 160 * time.Millisecond, volume: 0.25},
	},
	CueGameOver: {
		{from: 440, to: 330, dur: 200 * time.Millisecond, volume: 0.3},
		{from: 330, to: 110, dur: 400 * time.Millisecond, volume: 0.3},
	},
}

// cueStreamer builds a finite streamer for the cue, or nil for unknown cues.
func cueStreamer(c Cue) beep.Streamer {
	notes, ok := cueNotes[c]
	if !ok {
		return nil
	}
	streamers := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		streamers = append(streamers, newToneGenerator(sampleRate, n))
	}
	return beep.Seq(streamers...)
}

// ToneGenerator synthesizes a single note.
type ToneGenerator struct {
	sr    beep.SampleRate
	n     note
	pos   int
	total int
	phase float64
}

func newToneGenerator(sr beep.SampleRate, n note) *ToneGenerator {
	return &ToneGenerator{sr: sr, n: n, total: sr.N(n.dur)}
}

func (g *ToneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.total {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.total {
			return i, true
		}
		progress := float64(g.pos) / float64(g.total)
		freq := g.n.from + (g.n.to-g.n.from)*progress

		g.phase += 2 * math.Pi * freq / float64(g.sr)
		wave := math.Sin(g.phase)
		if g.n.square {
			wave = math.Copysign(0.6, wave)
		}

		// Short attack, exponential release
		attack := math.Min(float64(g.pos)/float64(g.sr.N(5*time.Millisecond)), 1.0)
		envelope := attack * math.Exp(-3*progress)
		sample := g.n.volume * envelope * wave

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ToneGenerator) Err() error {
	return nil
}
