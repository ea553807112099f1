// Package audio plays short tones for game events.
package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"snake-rewind/internal/snake"
)

const sampleRate = beep.SampleRate(44100)

// Cue identifies one sound.
type Cue uint8

const (
	CueNone Cue = iota
	CueEat
	CueBadBerry
	CueHalt
	CueRewind
)

type tone struct {
	freq     float64
	duration time.Duration
	volume   float64
}

var tones = map[Cue]tone{
	CueEat:      {freq: 880, duration: 60 * time.Millisecond, volume: 0.5},
	CueBadBerry: {freq: 220, duration: 120 * time.Millisecond, volume: 0.5},
	CueHalt:     {freq: 110, duration: 300 * time.Millisecond, volume: 0.7},
	CueRewind:   {freq: 440, duration: 15 * time.Millisecond, volume: 0.2},
}

// CueFor maps a world event to its sound.
func CueFor(k snake.EventKind) Cue {
	switch k {
	case snake.EventAte:
		return CueEat
	case snake.EventBadBerry:
		return CueBadBerry
	case snake.EventHalted:
		return CueHalt
	case snake.EventRewound:
		return CueRewind
	}
	return CueNone
}

// Tone builds the finite streamer for cue at rate.
func Tone(rate beep.SampleRate, c Cue) (beep.Streamer, error) {
	t, ok := tones[c]
	if !ok {
		return nil, fmt.Errorf("no tone for cue %d", c)
	}
	sine, err := generators.SineTone(rate, t.freq)
	if err != nil {
		return nil, fmt.Errorf("sine tone: %w", err)
	}
	return &effects.Volume{
		Streamer: beep.Take(rate.N(t.duration), sine),
		Base:     2,
		Volume:   math.Log2(t.volume),
	}, nil
}

// Sounds mixes cues into the speaker. A zero or muted value plays nothing.
type Sounds struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	muted       bool
	initialized bool
}

// New returns an uninitialised sound player.
func New(muted bool) *Sounds {
	return &Sounds{mixer: &beep.Mixer{}, muted: muted}
}

// Init opens the speaker. Failure leaves the player silent.
func (s *Sounds) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.muted || s.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}
	speaker.Play(s.mixer)
	s.initialized = true
	return nil
}

// Play queues one cue.
func (s *Sounds) Play(c Cue) {
	if s == nil || c == CueNone {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.initialized || s.muted {
		return
	}
	st, err := Tone(sampleRate, c)
	if err != nil {
		return
	}
	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
}

// PlayEvents queues a cue for each distinct event kind in events.
func (s *Sounds) PlayEvents(events []snake.Event) {
	seen := make(map[Cue]bool, len(events))
	for _, e := range events {
		c := CueFor(e.Kind)
		if seen[c] {
			continue
		}
		seen[c] = true
		s.Play(c)
	}
}

// Close silences the mixer.
func (s *Sounds) Close() {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.initialized {
		return
	}
	speaker.Clear()
	s.mixer.Clear()
	s.initialized = false
}
