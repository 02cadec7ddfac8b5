package melody

import (
	"sync"
	"testing"
	"time"
)

type fakeNotes struct {
	mu    sync.Mutex
	freqs []float64
}

func (f *fakeNotes) PlayFrequency(freq float64, duration time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.freqs = append(f.freqs, freq)
}

func (f *fakeNotes) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.freqs)
}

func (f *fakeNotes) first() float64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.freqs) == 0 {
		return 0
	}
	return f.freqs[0]
}

func waitForNotes(t *testing.T, f *fakeNotes, n int) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if f.count() >= n {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("only %d notes played, want at least %d", f.count(), n)
}

func TestCatalog(t *testing.T) {
	if len(Rhymes) != 5 {
		t.Fatalf("catalog has %d rhymes, want 5", len(Rhymes))
	}

	wantOrder := []string{"twinkle", "mary", "row", "baabaa", "spider"}
	for i, id := range wantOrder {
		if Rhymes[i].ID != id {
			t.Errorf("Rhymes[%d].ID = %q, want %q", i, Rhymes[i].ID, id)
		}
	}

	twinkle, ok := ByID("twinkle")
	if !ok {
		t.Fatal("ByID(twinkle) not found")
	}
	if twinkle.Tempo != 120 || twinkle.Emoji != "⭐" {
		t.Errorf("twinkle = %+v", twinkle)
	}
	if len(twinkle.Notes) != 42 {
		t.Errorf("twinkle has %d notes, want 42", len(twinkle.Notes))
	}
	if got := twinkle.Notes[0].Frequency(); got != 261.63 {
		t.Errorf("first note frequency = %v, want 261.63 (C4)", got)
	}

	if _, ok := ByID("wheels-on-the-bus"); ok {
		t.Error("ByID found a rhyme that is not in the catalog")
	}
}

func TestNoteRestIsSilent(t *testing.T) {
	if got := (Note{Pitch: "REST", Beats: 1}).Frequency(); got != 0 {
		t.Errorf("rest frequency = %v, want 0", got)
	}
	if got := (Note{Pitch: "H9", Beats: 1}).Frequency(); got != 0 {
		t.Errorf("unknown pitch frequency = %v, want 0", got)
	}
}

func TestPlayer_PlaySoundsFirstNote(t *testing.T) {
	notes := &fakeNotes{}
	p := NewPlayer(notes)

	p.Play()
	defer p.Stop()

	if !p.Playing() {
		t.Fatal("not playing after Play")
	}
	waitForNotes(t, notes, 1)
	if notes.first() != 261.63 {
		t.Errorf("first note = %v, want C4", notes.first())
	}
}

func TestPlayer_PauseStopsScheduledNotes(t *testing.T) {
	notes := &fakeNotes{}
	p := NewPlayer(notes)

	p.Play()
	waitForNotes(t, notes, 1)
	p.Pause()

	if p.Playing() {
		t.Error("still playing after Pause")
	}
	played := notes.count()
	time.Sleep(700 * time.Millisecond)
	if notes.count() != played {
		t.Errorf("notes kept playing after Pause: %d then %d", played, notes.count())
	}
}

func TestPlayer_CarouselWraps(t *testing.T) {
	p := NewPlayer(nil)

	p.Previous()
	if p.Current().ID != "spider" {
		t.Errorf("Previous from start = %q, want spider", p.Current().ID)
	}
	p.Next()
	if p.Current().ID != "twinkle" {
		t.Errorf("Next wrapped to %q, want twinkle", p.Current().ID)
	}

	for i := 0; i < len(Rhymes); i++ {
		p.Next()
	}
	if p.Current().ID != "twinkle" {
		t.Errorf("full lap ended on %q, want twinkle", p.Current().ID)
	}
}

func TestPlayer_SelectBounds(t *testing.T) {
	p := NewPlayer(nil)

	p.Select(2)
	if p.Current().ID != "row" {
		t.Errorf("Select(2) = %q, want row", p.Current().ID)
	}
	p.Select(99)
	p.Select(-1)
	if p.Current().ID != "row" {
		t.Errorf("out of range Select moved the carousel to %q", p.Current().ID)
	}
}

func TestPlayer_NextKeepsPlaying(t *testing.T) {
	notes := &fakeNotes{}
	p := NewPlayer(notes)

	p.Play()
	defer p.Stop()
	p.Next()

	if !p.Playing() {
		t.Error("Next while playing stopped playback")
	}
	if p.Current().ID != "mary" {
		t.Errorf("Current = %q, want mary", p.Current().ID)
	}
}

func TestPlayer_PlayedListDedupes(t *testing.T) {
	notes := &fakeNotes{}
	p := NewPlayer(notes)

	p.Play()
	p.Next()
	p.Pause()
	p.Play()

	got := p.Played()
	if len(got) != 2 || got[0] != "twinkle" || got[1] != "mary" {
		t.Errorf("Played = %v, want [twinkle mary]", got)
	}
	p.Stop()

	p.ResetPlayed()
	if len(p.Played()) != 0 {
		t.Error("Played not empty after ResetPlayed")
	}
}

func TestPlayer_ToggleLoop(t *testing.T) {
	p := NewPlayer(nil)
	if !p.Looping() {
		t.Fatal("looping should default on")
	}
	if p.ToggleLoop() {
		t.Error("ToggleLoop did not turn looping off")
	}
	if !p.ToggleLoop() {
		t.Error("second ToggleLoop did not turn looping back on")
	}
}

func TestPlayer_TogglePlayPause(t *testing.T) {
	notes := &fakeNotes{}
	p := NewPlayer(notes)
	defer p.Stop()

	if !p.TogglePlayPause() {
		t.Error("first toggle should start playback")
	}
	if p.TogglePlayPause() {
		t.Error("second toggle should pause")
	}
}
