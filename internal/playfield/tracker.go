package playfield

import (
	"sync"
	"time"

	"babysensory/internal/ageprofile"
	"babysensory/internal/scoreboard"
)

const sweepInterval = 5 * time.Second

// Tracker drives the object lifecycle: a spawn ticker at the profile's spawn
// delay, per-object phase timers after a touch, and a stale sweep. All timers
// are owned by the tracker and cancelled on Stop, so no callback can act on a
// torn-down session.
type Tracker struct {
	mu      sync.Mutex
	store   *Store
	score   *scoreboard.Engine
	profile ageprofile.Profile
	themeID string
	colors  []string
	emoji   string

	timers  []*time.Timer
	done    chan struct{}
	running bool

	// Optional hooks for broadcasting object changes. Set before Start.
	OnSpawn  func([]*Object)
	OnPhase  func(id int, phase Phase)
	OnRemove func(id int)
}

func NewTracker(store *Store, score *scoreboard.Engine) *Tracker {
	return &Tracker{
		store: store,
		score: score,
	}
}

// Configure sets the content parameters for the next run. Only valid while
// stopped; the server stops, reconfigures, and restarts on a theme change.
func (t *Tracker) Configure(themeID string, colors []string, emoji string, profile ageprofile.Profile) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.themeID = themeID
	t.colors = colors
	t.emoji = emoji
	t.profile = profile
}

func (t *Tracker) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.running
}

// Start launches the spawn and sweep loops. A no-op if already running.
func (t *Tracker) Start() {
	t.mu.Lock()
	if t.running {
		t.mu.Unlock()
		return
	}
	t.running = true
	t.done = make(chan struct{})
	done := t.done
	profile := t.profile
	colors := t.colors
	emoji := t.emoji
	t.mu.Unlock()

	go func() {
		spawnTicker := time.NewTicker(profile.SpawnDelay)
		sweepTicker := time.NewTicker(sweepInterval)
		defer spawnTicker.Stop()
		defer sweepTicker.Stop()

		for {
			select {
			case <-spawnTicker.C:
				batch := t.store.SpawnBatch(&profile, colors, emoji)
				if len(batch) > 0 && t.OnSpawn != nil {
					t.OnSpawn(batch)
				}
			case <-sweepTicker.C:
				for _, id := range t.store.RemoveStale(MaxObjectAge) {
					if t.OnRemove != nil {
						t.OnRemove(id)
					}
				}
			case <-done:
				return
			}
		}
	}()
}

// Stop halts the loops and cancels every outstanding phase timer. Live
// objects stay in the store until Clear.
func (t *Tracker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.running {
		return
	}
	t.running = false
	close(t.done)
	for _, timer := range t.timers {
		timer.Stop()
	}
	t.timers = nil
}

// Touch handles a touch on an object. The first touch moves it to
// celebrating, forwards the classified touch to the scoreboard, and schedules
// the rest of the lifecycle. Repeat touches return false and count nothing.
func (t *Tracker) Touch(id int) bool {
	obj, ok := t.store.Touch(id)
	if !ok {
		return false
	}

	t.mu.Lock()
	themeID := t.themeID
	behavior := t.profile.TouchBehavior
	t.mu.Unlock()

	if t.score != nil {
		t.score.RecordTouch(themeID, obj.Color)
	}
	if t.OnPhase != nil {
		t.OnPhase(id, PhaseCelebrating)
	}

	persistAt := behavior.CelebrationDuration
	fadeAt := persistAt + behavior.PersistDuration
	removeAt := fadeAt + FadeOutDuration

	t.afterFunc(persistAt, func() {
		if t.store.Advance(id, PhasePersisting) && t.OnPhase != nil {
			t.OnPhase(id, PhasePersisting)
		}
	})
	t.afterFunc(fadeAt, func() {
		if t.store.Advance(id, PhaseFadeOut) && t.OnPhase != nil {
			t.OnPhase(id, PhaseFadeOut)
		}
	})
	t.afterFunc(removeAt, func() {
		t.store.Remove(id)
		if t.OnRemove != nil {
			t.OnRemove(id)
		}
	})
	return true
}

func (t *Tracker) afterFunc(d time.Duration, fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.running {
		return
	}
	t.timers = append(t.timers, time.AfterFunc(d, fn))
}
