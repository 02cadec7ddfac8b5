package scoreboard

import (
	"testing"
	"time"

	"babysensory/internal/events"
)

func newTracking() *Engine {
	e := NewEngine(nil)
	e.StartTracking()
	return e
}

func TestRecordTouch_DroppedWhenNotTracking(t *testing.T) {
	e := NewEngine(nil)
	e.RecordTouch("ocean", "#0066FF")
	if got := e.Snapshot().TotalTouches; got != 0 {
		t.Errorf("TotalTouches = %d, want 0", got)
	}

	e.StartTracking()
	e.RecordTouch("ocean", "#0066FF")
	e.StopTracking()
	e.RecordTouch("ocean", "#0066FF")
	if got := e.Snapshot().TotalTouches; got != 1 {
		t.Errorf("TotalTouches = %d, want 1", got)
	}
}

func TestRecordTouch_Counts(t *testing.T) {
	e := newTracking()
	e.RecordTouch("ocean", "#0066FF")
	e.RecordTouch("ocean", "#00CCFF")
	e.RecordTouch("space", "#FFFFFF")

	snap := e.Snapshot()
	if snap.TotalTouches != 3 {
		t.Errorf("TotalTouches = %d, want 3", snap.TotalTouches)
	}
	if snap.ObjectCounts["bubble"] != 2 || snap.ObjectCounts["star"] != 1 {
		t.Errorf("ObjectCounts = %v", snap.ObjectCounts)
	}
	if snap.ColorCounts["Blue"] != 1 || snap.ColorCounts["Cyan"] != 1 || snap.ColorCounts["White"] != 1 {
		t.Errorf("ColorCounts = %v", snap.ColorCounts)
	}
}

func TestRecordTouch_UnknownThemeAndColor(t *testing.T) {
	e := newTracking()
	e.RecordTouch("volcano", "#ABCDEF")
	snap := e.Snapshot()
	if snap.ObjectCounts["unknown"] != 1 {
		t.Errorf("ObjectCounts = %v, want unknown:1", snap.ObjectCounts)
	}
	if snap.ColorCounts["Colorful"] != 1 {
		t.Errorf("ColorCounts = %v, want Colorful:1", snap.ColorCounts)
	}
}

func TestStreak_ResetsToOneOnTypeChange(t *testing.T) {
	e := newTracking()
	sequence := []string{"ocean", "ocean", "space", "ocean", "ocean", "ocean"}
	wantStreaks := []int{1, 2, 1, 1, 2, 3}

	for i, themeID := range sequence {
		e.RecordTouch(themeID, "#FFFFFF")
		if got := e.Snapshot().CurrentStreak; got != wantStreaks[i] {
			t.Errorf("touch %d: CurrentStreak = %d, want %d", i, got, wantStreaks[i])
		}
	}
	if got := e.Snapshot().BestStreak; got != 3 {
		t.Errorf("BestStreak = %d, want 3", got)
	}
}

func TestBestStreak_Monotone(t *testing.T) {
	e := newTracking()
	prev := 0
	for _, themeID := range []string{"ocean", "ocean", "ocean", "space", "ocean", "space"} {
		e.RecordTouch(themeID, "#FFFFFF")
		best := e.Snapshot().BestStreak
		if best < prev {
			t.Fatalf("BestStreak decreased from %d to %d", prev, best)
		}
		prev = best
	}
}

func TestMilestone_ExactMatchOnly(t *testing.T) {
	e := newTracking()
	for i := 0; i < 9; i++ {
		e.RecordTouch("ocean", "#FFFFFF")
		if m := e.Snapshot().Milestone; m != 0 {
			t.Fatalf("milestone %d active at %d touches", m, i+1)
		}
	}
	e.RecordTouch("ocean", "#FFFFFF")
	if m := e.Snapshot().Milestone; m != 10 {
		t.Errorf("Milestone = %d, want 10 at 10 touches", m)
	}
	e.RecordTouch("ocean", "#FFFFFF")
	// 11 touches: milestone value stays until the display timer clears it.
	if m := e.Snapshot().Milestone; m != 10 {
		t.Errorf("Milestone = %d, want 10 still active", m)
	}
}

func TestMilestone_AutoClears(t *testing.T) {
	e := newTracking()
	for i := 0; i < 10; i++ {
		e.RecordTouch("ocean", "#FFFFFF")
	}
	deadline := time.Now().Add(MilestoneDisplayDuration + 2*time.Second)
	for time.Now().Before(deadline) {
		if e.Snapshot().Milestone == 0 {
			return
		}
		time.Sleep(50 * time.Millisecond)
	}
	t.Error("milestone never cleared")
}

func TestReset(t *testing.T) {
	e := newTracking()
	for i := 0; i < 12; i++ {
		e.RecordTouch("ocean", "#0066FF")
	}
	e.Reset()

	snap := e.Snapshot()
	if snap.TotalTouches != 0 || snap.CurrentStreak != 0 || snap.BestStreak != 0 || snap.Milestone != 0 {
		t.Errorf("counters not zeroed: %+v", snap)
	}
	if len(snap.ObjectCounts) != 0 || len(snap.ColorCounts) != 0 {
		t.Errorf("count maps not cleared: %+v", snap)
	}
	if !snap.Tracking {
		t.Error("Reset should not change the tracking gate")
	}

	// Streak restarts from 1 after a reset.
	e.RecordTouch("ocean", "#0066FF")
	if got := e.Snapshot().CurrentStreak; got != 1 {
		t.Errorf("CurrentStreak after reset = %d, want 1", got)
	}
}

func TestSummary_MostTouchedWithTieBreak(t *testing.T) {
	e := newTracking()
	// ocean and space both reach 2; ocean was counted first.
	e.RecordTouch("ocean", "#0066FF")
	e.RecordTouch("space", "#FFFFFF")
	e.RecordTouch("space", "#FFFFFF")
	e.RecordTouch("ocean", "#0066FF")

	s := e.Summary()
	if s.MostTouchedType != "bubble" {
		t.Errorf("MostTouchedType = %q, want bubble (first counted wins ties)", s.MostTouchedType)
	}
	if s.TotalTouches != 4 || s.BestStreak != 2 {
		t.Errorf("summary = %+v", s)
	}
}

func TestSummary_MilestonesHit(t *testing.T) {
	e := newTracking()
	for i := 0; i < 25; i++ {
		e.RecordTouch("ocean", "#0066FF")
	}
	s := e.Summary()
	if len(s.MilestonesHit) != 2 || s.MilestonesHit[0] != 10 || s.MilestonesHit[1] != 25 {
		t.Errorf("MilestonesHit = %v, want [10 25]", s.MilestonesHit)
	}
}

func TestRecordTouch_PublishesEvents(t *testing.T) {
	bus := events.NewBus()
	e := NewEngine(bus)
	e.StartTracking()

	e.RecordTouch("ocean", "#0066FF")

	select {
	case ev := <-bus.Touches:
		if ev.ObjectType != "bubble" || ev.ColorName != "Blue" || ev.Total != 1 || ev.Streak != 1 {
			t.Errorf("touch event = %+v", ev)
		}
	case <-time.After(time.Second):
		t.Fatal("no touch event published")
	}

	for i := 0; i < 9; i++ {
		e.RecordTouch("ocean", "#0066FF")
	}
	select {
	case ev := <-bus.Milestones:
		if ev.Value != 10 {
			t.Errorf("milestone event = %+v, want 10", ev)
		}
	case <-time.After(time.Second):
		t.Fatal("no milestone event published")
	}
}
