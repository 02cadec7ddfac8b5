package audio

import (
	"fmt"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	// DefaultSampleRate for all synthesized sound.
	DefaultSampleRate = beep.SampleRate(48000)
	// minPlayGap debounces rapid taps so overlapping effects don't pile up.
	minPlayGap = 50 * time.Millisecond
)

// NoteFrequencies maps note names to frequencies for melody playback.
var NoteFrequencies = map[string]float64{
	"C4": 261.63,
	"D4": 293.66,
	"E4": 329.63,
	"F4": 349.23,
	"G4": 392.00,
	"A4": 440.00,
	"B4": 493.88,
	"C5": 523.25,
}

// Manager owns the speaker and plays synthesized effects and notes into a
// shared mixer. Safe for concurrent use. All playback is best effort: an
// uninitialized or muted manager drops sounds silently.
type Manager struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	mixer       *beep.Mixer
	initialized bool
	muted       bool
	lastPlay    time.Time
}

func NewManager() *Manager {
	return &Manager{
		rate:  DefaultSampleRate,
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker. A no-op if already initialized.
func (m *Manager) Initialize() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.initialized {
		return nil
	}

	if err := speaker.Init(m.rate, m.rate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("initialize speaker: %w", err)
	}
	speaker.Play(m.mixer)
	m.initialized = true
	log.Printf("[Audio] Speaker initialized at %d Hz", m.rate)
	return nil
}

// Initialized reports whether the speaker is open.
func (m *Manager) Initialized() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.initialized
}

// ToggleMute flips the mute state and returns the new value.
func (m *Manager) ToggleMute() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.muted = !m.muted
	return m.muted
}

func (m *Manager) Muted() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.muted
}

// canPlay checks the initialized, muted, and debounce gates, and records the
// play time when it passes. Caller must hold the lock.
func (m *Manager) canPlay() bool {
	if !m.initialized || m.muted {
		return false
	}
	now := time.Now()
	if now.Sub(m.lastPlay) < minPlayGap {
		return false
	}
	m.lastPlay = now
	return true
}

// PlayNamed plays the named effect. Unknown names are ignored.
func (m *Manager) PlayNamed(name string) {
	m.mu.Lock()
	if !m.canPlay() {
		m.mu.Unlock()
		return
	}
	stream := BuildEffect(name, m.rate)
	m.mu.Unlock()

	if stream == nil {
		return
	}
	speaker.Lock()
	m.mixer.Add(stream)
	speaker.Unlock()
}

// PlayRandom picks one of the given effect names at random and plays it.
func (m *Manager) PlayRandom(names []string) {
	if len(names) == 0 {
		return
	}
	m.PlayNamed(names[rand.Intn(len(names))])
}

// PlayNote plays a named musical note, for nursery rhyme playback. Notes
// bypass the tap debounce so melodies keep time.
func (m *Manager) PlayNote(note string, duration time.Duration) {
	freq, ok := NoteFrequencies[note]
	if !ok {
		return
	}
	m.PlayFrequency(freq, duration)
}

// PlayFrequency plays a raw frequency for the given duration.
func (m *Manager) PlayFrequency(freq float64, duration time.Duration) {
	m.mu.Lock()
	if !m.initialized || m.muted {
		m.mu.Unlock()
		return
	}
	stream := tone(freq, duration, 0.2, m.rate)
	m.mu.Unlock()

	speaker.Lock()
	m.mixer.Add(stream)
	speaker.Unlock()
}

// Cleanup closes the speaker.
func (m *Manager) Cleanup() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.initialized {
		return
	}
	speaker.Close()
	m.initialized = false
}
