package session

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestRuntime_CompletesOnExpiry(t *testing.T) {
	rt := NewRuntime(2*time.Second, time.Second)

	var completed atomic.Int32
	var reseeds atomic.Int32
	rt.OnComplete = func() { completed.Add(1) }
	rt.OnReseed = func(int) { reseeds.Add(1) }

	rt.Start()

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) && completed.Load() == 0 {
		time.Sleep(50 * time.Millisecond)
	}
	if completed.Load() != 1 {
		t.Fatalf("OnComplete fired %d times, want 1", completed.Load())
	}
	if rt.Active() {
		t.Error("runtime still active after completion")
	}
	if rt.Elapsed() != 2*time.Second {
		t.Errorf("Elapsed = %v, want 2s", rt.Elapsed())
	}
	// Reseed fires at the 1s mark only; the 2s mark is the expiry.
	if reseeds.Load() != 1 {
		t.Errorf("reseeds = %d, want 1", reseeds.Load())
	}
}

func TestRuntime_PauseKeepsElapsed(t *testing.T) {
	rt := NewRuntime(time.Hour, time.Hour)
	rt.Start()

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) && rt.Elapsed() == 0 {
		time.Sleep(50 * time.Millisecond)
	}
	rt.Pause()

	elapsed := rt.Elapsed()
	if elapsed == 0 {
		t.Fatal("no time elapsed before pause")
	}
	if rt.Active() {
		t.Error("runtime active after Pause")
	}
	time.Sleep(1200 * time.Millisecond)
	if rt.Elapsed() != elapsed {
		t.Error("elapsed advanced while paused")
	}
}

func TestRuntime_ResetOnlyWhilePaused(t *testing.T) {
	rt := NewRuntime(time.Hour, time.Hour)
	rt.Start()
	rt.Reset()
	rt.Pause()

	rt.Reset()
	if rt.Elapsed() != 0 || rt.SeedBump() != 0 {
		t.Errorf("Reset while paused did not zero: elapsed=%v bump=%d", rt.Elapsed(), rt.SeedBump())
	}
}

func TestRuntime_StartTwiceIsNoop(t *testing.T) {
	rt := NewRuntime(time.Hour, time.Hour)
	rt.Start()
	rt.Start()
	rt.Pause()
	// A second Pause must not panic on a closed channel.
	rt.Pause()
}
