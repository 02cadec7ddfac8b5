// Package scoreboard accumulates touch interactions into session counters,
// streaks, and milestone celebrations. All operations are in-memory and cannot
// fail; persistence is the session recorder's job.
package scoreboard

import (
	"sync"
	"time"

	"babysensory/internal/events"
	"babysensory/internal/themes"
)

// MilestoneDisplayDuration is how long a milestone celebration stays active
// before the engine clears it.
const MilestoneDisplayDuration = 3 * time.Second

// Milestones are the touch totals that trigger a celebration, in order.
var Milestones = []int{10, 25, 50, 100, 150, 200, 250, 300, 400, 500}

// Snapshot is a point-in-time copy of the live counters.
type Snapshot struct {
	TotalTouches  int            `json:"totalTouches"`
	ObjectCounts  map[string]int `json:"objectCounts"`
	ColorCounts   map[string]int `json:"colorCounts"`
	CurrentStreak int            `json:"currentStreak"`
	BestStreak    int            `json:"bestStreak"`
	Milestone     int            `json:"milestone,omitempty"`
	Tracking      bool           `json:"tracking"`
}

// Summary is the end-of-session read. Counts are keyed by object type and
// friendly color name. Most-touched ties go to whichever key was counted
// first.
type Summary struct {
	TotalTouches     int
	ObjectCounts     map[string]int
	ColorCounts      map[string]int
	BestStreak       int
	MostTouchedType  string
	MostTouchedColor string
	MilestonesHit    []int
}

type Engine struct {
	mu sync.Mutex

	tracking bool

	totalTouches int
	objectCounts map[string]int
	objectOrder  []string
	colorCounts  map[string]int
	colorOrder   []string

	currentStreak  int
	bestStreak     int
	lastObjectType string

	milestone      int
	milestonesHit  []int
	milestoneTimer *time.Timer

	bus *events.Bus
}

// NewEngine creates an idle engine. The bus may be nil; events are then
// simply not published.
func NewEngine(bus *events.Bus) *Engine {
	return &Engine{
		objectCounts: make(map[string]int),
		colorCounts:  make(map[string]int),
		bus:          bus,
	}
}

func (e *Engine) StartTracking() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.tracking = true
}

func (e *Engine) StopTracking() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.tracking = false
}

func (e *Engine) Tracking() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.tracking
}

// Reset zeroes every counter and clears any active milestone. It does not
// change the tracking gate.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.totalTouches = 0
	e.objectCounts = make(map[string]int)
	e.objectOrder = nil
	e.colorCounts = make(map[string]int)
	e.colorOrder = nil
	e.currentStreak = 0
	e.bestStreak = 0
	e.lastObjectType = ""
	e.milestone = 0
	e.milestonesHit = nil
	if e.milestoneTimer != nil {
		e.milestoneTimer.Stop()
		e.milestoneTimer = nil
	}
}

// RecordTouch counts one touch of an object belonging to themeID with the
// given hex color. Touches while tracking is off are dropped. The streak
// resets to 1, not 0, when the object type changes.
func (e *Engine) RecordTouch(themeID, colorHex string) {
	e.mu.Lock()
	if !e.tracking {
		e.mu.Unlock()
		return
	}

	objectType := themes.ObjectType(themeID)
	colorName := themes.ColorName(colorHex)

	e.totalTouches++
	if _, seen := e.objectCounts[objectType]; !seen {
		e.objectOrder = append(e.objectOrder, objectType)
	}
	e.objectCounts[objectType]++
	if _, seen := e.colorCounts[colorName]; !seen {
		e.colorOrder = append(e.colorOrder, colorName)
	}
	e.colorCounts[colorName]++

	if objectType == e.lastObjectType {
		e.currentStreak++
	} else {
		e.currentStreak = 1
	}
	if e.currentStreak > e.bestStreak {
		e.bestStreak = e.currentStreak
	}
	e.lastObjectType = objectType

	milestoneHit := 0
	for _, m := range Milestones {
		if e.totalTouches == m {
			milestoneHit = m
			break
		}
	}
	if milestoneHit > 0 {
		e.milestone = milestoneHit
		e.milestonesHit = append(e.milestonesHit, milestoneHit)
		if e.milestoneTimer != nil {
			e.milestoneTimer.Stop()
		}
		e.milestoneTimer = time.AfterFunc(MilestoneDisplayDuration, func() {
			e.clearMilestone(milestoneHit)
		})
	}

	total := e.totalTouches
	streak := e.currentStreak
	bus := e.bus
	e.mu.Unlock()

	if bus != nil {
		bus.PublishTouch(events.TouchEvent{
			ObjectType: objectType,
			ColorName:  colorName,
			Total:      total,
			Streak:     streak,
		})
		if milestoneHit > 0 {
			bus.PublishMilestone(events.MilestoneEvent{Value: milestoneHit})
		}
	}
}

// clearMilestone removes the active milestone only if a later one has not
// replaced it in the meantime.
func (e *Engine) clearMilestone(value int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.milestone == value {
		e.milestone = 0
	}
}

func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return Snapshot{
		TotalTouches:  e.totalTouches,
		ObjectCounts:  copyCounts(e.objectCounts),
		ColorCounts:   copyCounts(e.colorCounts),
		CurrentStreak: e.currentStreak,
		BestStreak:    e.bestStreak,
		Milestone:     e.milestone,
		Tracking:      e.tracking,
	}
}

// Summary builds the end-of-session read. It does not reset anything.
func (e *Engine) Summary() Summary {
	e.mu.Lock()
	defer e.mu.Unlock()

	milestones := make([]int, len(e.milestonesHit))
	copy(milestones, e.milestonesHit)

	return Summary{
		TotalTouches:     e.totalTouches,
		ObjectCounts:     copyCounts(e.objectCounts),
		ColorCounts:      copyCounts(e.colorCounts),
		BestStreak:       e.bestStreak,
		MostTouchedType:  mostCounted(e.objectCounts, e.objectOrder),
		MostTouchedColor: mostCounted(e.colorCounts, e.colorOrder),
		MilestonesHit:    milestones,
	}
}

func copyCounts(m map[string]int) map[string]int {
	out := make(map[string]int, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// mostCounted walks keys in first-counted order so ties resolve to the
// earliest key, deterministically.
func mostCounted(counts map[string]int, order []string) string {
	best, max := "", 0
	for _, key := range order {
		if counts[key] > max {
			max = counts[key]
			best = key
		}
	}
	return best
}
