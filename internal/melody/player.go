package melody

import (
	"sync"
	"time"
)

// loopGap is the pause between repeats of a looping rhyme.
const loopGap = 500 * time.Millisecond

// NotePlayer sounds a single note. *audio.Manager satisfies it.
type NotePlayer interface {
	PlayFrequency(freq float64, duration time.Duration)
}

// Player steps through the rhyme carousel and schedules each note of the
// current rhyme on its own timer. Looping is on by default. Safe for
// concurrent use.
type Player struct {
	mu      sync.Mutex
	notes   NotePlayer
	index   int
	playing bool
	looping bool
	timers  []*time.Timer

	// generation invalidates timers scheduled by an earlier Play.
	generation int

	played     []string
	playedSeen map[string]bool
}

func NewPlayer(notes NotePlayer) *Player {
	return &Player{
		notes:      notes,
		looping:    true,
		playedSeen: make(map[string]bool),
	}
}

// Current returns the rhyme the carousel points at.
func (p *Player) Current() Rhyme {
	p.mu.Lock()
	defer p.mu.Unlock()
	return Rhymes[p.index]
}

func (p *Player) Index() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.index
}

func (p *Player) Playing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.playing
}

func (p *Player) Looping() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.looping
}

// Played lists the ids of rhymes started since the last ResetPlayed, each
// listed once, in first-played order.
func (p *Player) Played() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.played))
	copy(out, p.played)
	return out
}

// ResetPlayed clears the played list for a new session.
func (p *Player) ResetPlayed() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.played = nil
	p.playedSeen = make(map[string]bool)
}

// Play starts the current rhyme from the top. Restarts if already playing.
func (p *Player) Play() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.startLocked()
}

// Pause stops playback, cancelling every scheduled note.
func (p *Player) Pause() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopLocked()
}

// Stop is Pause under a name that reads better at shutdown.
func (p *Player) Stop() {
	p.Pause()
}

// TogglePlayPause flips playback and returns whether it is now playing.
func (p *Player) TogglePlayPause() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.playing {
		p.stopLocked()
	} else {
		p.startLocked()
	}
	return p.playing
}

// Next advances the carousel, wrapping at the end. If a rhyme was playing
// the next one starts.
func (p *Player) Next() {
	p.mu.Lock()
	defer p.mu.Unlock()
	wasPlaying := p.playing
	p.stopLocked()
	p.index = (p.index + 1) % len(Rhymes)
	if wasPlaying {
		p.startLocked()
	}
}

// Previous steps the carousel back, wrapping at the start.
func (p *Player) Previous() {
	p.mu.Lock()
	defer p.mu.Unlock()
	wasPlaying := p.playing
	p.stopLocked()
	p.index = (p.index - 1 + len(Rhymes)) % len(Rhymes)
	if wasPlaying {
		p.startLocked()
	}
}

// Select jumps to the rhyme at index. Out of range indexes are ignored.
func (p *Player) Select(index int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if index < 0 || index >= len(Rhymes) {
		return
	}
	wasPlaying := p.playing
	p.stopLocked()
	p.index = index
	if wasPlaying {
		p.startLocked()
	}
}

// ToggleLoop flips loop mode and returns the new value.
func (p *Player) ToggleLoop() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.looping = !p.looping
	return p.looping
}

// startLocked schedules every note of the current rhyme. Caller holds the
// lock.
func (p *Player) startLocked() {
	p.stopLocked()
	p.playing = true
	p.generation++
	gen := p.generation

	rhyme := Rhymes[p.index]
	if !p.playedSeen[rhyme.ID] {
		p.playedSeen[rhyme.ID] = true
		p.played = append(p.played, rhyme.ID)
	}

	secondsPerBeat := 60.0 / float64(rhyme.Tempo)
	offset := time.Duration(0)
	for _, n := range rhyme.Notes {
		length := time.Duration(n.Beats * secondsPerBeat * float64(time.Second))
		freq := n.Frequency()
		if freq > 0 {
			// Notes sound for 90% of their slot so they don't blur together.
			sound := time.Duration(float64(length) * 0.9)
			p.timers = append(p.timers, time.AfterFunc(offset, func() {
				p.mu.Lock()
				live := p.playing && p.generation == gen
				p.mu.Unlock()
				if live && p.notes != nil {
					p.notes.PlayFrequency(freq, sound)
				}
			}))
		}
		offset += length
	}

	// At the end either loop after a short breath or fall silent.
	if p.looping {
		p.timers = append(p.timers, time.AfterFunc(offset+loopGap, func() {
			p.mu.Lock()
			defer p.mu.Unlock()
			if p.playing && p.generation == gen && p.looping {
				p.startLocked()
			}
		}))
	} else {
		p.timers = append(p.timers, time.AfterFunc(offset, func() {
			p.mu.Lock()
			defer p.mu.Unlock()
			if p.generation == gen {
				p.playing = false
			}
		}))
	}
}

// stopLocked cancels all timers. Caller holds the lock.
func (p *Player) stopLocked() {
	p.playing = false
	p.generation++
	for _, t := range p.timers {
		t.Stop()
	}
	p.timers = nil
}
