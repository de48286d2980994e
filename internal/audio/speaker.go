package audio

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Speaker plays cues through the local audio device. The device is opened
// lazily on the first unmuted cue.
type Speaker struct {
	mu          sync.Mutex
	logger      *log.Logger
	mixer       *beep.Mixer
	muted       bool
	initialized bool
	failed      bool
	closed      bool
}

// NewSpeaker creates a speaker-backed player.
func NewSpeaker(logger *log.Logger, muted bool) *Speaker {
	return &Speaker{
		logger: logger,
		mixer:  &beep.Mixer{},
		muted:  muted,
	}
}

// Play queues a cue on the mixer.
func (s *Speaker) Play(c Cue) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.muted || !s.ensureInit() {
		return
	}

	streamer := cueStreamer(c)
	if streamer == nil {
		return
	}
	speaker.Lock()
	s.mixer.Add(streamer)
	speaker.Unlock()
}

// ensureInit opens the device once. Must be called with mu held.
func (s *Speaker) ensureInit() bool {
	if s.initialized {
		return true
	}
	if s.failed || s.closed {
		return false
	}

	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		s.failed = true
		if s.logger != nil {
			s.logger.Warn("audio disabled", "error", err)
		}
		return false
	}
	speaker.Play(s.mixer)
	s.initialized = true
	return true
}

// SetMuted enables or disables playback.
func (s *Speaker) SetMuted(muted bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.muted = muted
	if muted && s.initialized {
		speaker.Lock()
		s.mixer.Clear()
		speaker.Unlock()
	}
}

// Muted reports whether playback is disabled.
func (s *Speaker) Muted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.muted
}

// Close stops all queued cues. Later cues are ignored.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	if !s.initialized {
		return
	}
	speaker.Clear()
	s.initialized = false
}
