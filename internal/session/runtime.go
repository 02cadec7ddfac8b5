package session

import (
	"sync"
	"time"
)

const (
	// DefaultDuration matches the 20 minute play session.
	DefaultDuration = 20 * time.Minute
	// DefaultReseedInterval varies the animation layout mid-session.
	DefaultReseedInterval = 30 * time.Second
)

// Runtime drives the session countdown: a 1 second tick, a periodic seed bump
// to vary the layout, and completion on expiry. Pausing keeps the elapsed
// time; Start resumes.
type Runtime struct {
	mu             sync.Mutex
	duration       time.Duration
	reseedInterval time.Duration
	elapsed        time.Duration
	seedBump       int
	active         bool
	done           chan struct{}

	// Hooks fire outside the lock. Set before the first Start.
	OnTick     func(elapsed, total time.Duration)
	OnReseed   func(bump int)
	OnComplete func()
}

func NewRuntime(duration, reseedInterval time.Duration) *Runtime {
	if duration <= 0 {
		duration = DefaultDuration
	}
	if reseedInterval <= 0 {
		reseedInterval = DefaultReseedInterval
	}
	return &Runtime{
		duration:       duration,
		reseedInterval: reseedInterval,
	}
}

func (rt *Runtime) Active() bool {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	return rt.active
}

func (rt *Runtime) Elapsed() time.Duration {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	return rt.elapsed
}

func (rt *Runtime) Duration() time.Duration {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	return rt.duration
}

// SeedBump returns how many reseeds have happened this session. Adding it to
// the daily seed gives the current layout seed.
func (rt *Runtime) SeedBump() int {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	return rt.seedBump
}

// Reset zeroes the countdown for a fresh session. Only valid while paused.
func (rt *Runtime) Reset() {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	if rt.active {
		return
	}
	rt.elapsed = 0
	rt.seedBump = 0
}

// Start begins or resumes the countdown. A no-op if already running.
func (rt *Runtime) Start() {
	rt.mu.Lock()
	if rt.active {
		rt.mu.Unlock()
		return
	}
	rt.active = true
	rt.done = make(chan struct{})
	done := rt.done
	rt.mu.Unlock()

	go func() {
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if rt.tick() {
					return
				}
			case <-done:
				return
			}
		}
	}()
}

// tick advances one second and reports whether the session just completed.
func (rt *Runtime) tick() bool {
	rt.mu.Lock()
	rt.elapsed += time.Second
	elapsed := rt.elapsed
	total := rt.duration

	reseed := 0
	if rt.reseedInterval > 0 && elapsed%rt.reseedInterval == 0 && elapsed < total {
		rt.seedBump++
		reseed = rt.seedBump
	}

	completed := elapsed >= total
	if completed {
		rt.active = false
		close(rt.done)
	}
	rt.mu.Unlock()

	if rt.OnTick != nil {
		rt.OnTick(elapsed, total)
	}
	if reseed > 0 && rt.OnReseed != nil {
		rt.OnReseed(reseed)
	}
	if completed && rt.OnComplete != nil {
		rt.OnComplete()
	}
	return completed
}

// Pause halts the countdown, keeping the elapsed time.
func (rt *Runtime) Pause() {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	if !rt.active {
		return
	}
	rt.active = false
	close(rt.done)
}
