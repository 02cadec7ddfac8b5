package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"babysensory/internal/audio"
	"babysensory/internal/broadcast"
	"babysensory/internal/events"
	"babysensory/internal/melody"
	"babysensory/internal/playfield"
	"babysensory/internal/profile"
	"babysensory/internal/scoreboard"
	"babysensory/internal/session"
	"babysensory/internal/wshub"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	dir := t.TempDir()

	bus := events.NewBus()
	sound := audio.NewManager()

	srv := &Server{
		Profiles:    profile.NewStore(filepath.Join(dir, "profile.json"), nil),
		Score:       scoreboard.NewEngine(bus),
		Objects:     playfield.NewStore(),
		Runtime:     session.NewRuntime(time.Hour, time.Hour),
		Recorder:    session.NewRecorder(nil, session.NewFileStore(filepath.Join(dir, "sessions.json")), nil),
		Melodies:    melody.NewPlayer(nil),
		Sound:       sound,
		Broadcaster: broadcast.NewBroadcaster(bus),
		Hub:         wshub.NewHub(),
		Bus:         bus,
		Metrics:     NewMetrics(prometheus.NewRegistry()),
		now:         time.Now,
	}
	srv.Tracker = playfield.NewTracker(srv.Objects, srv.Score)
	t.Cleanup(func() {
		srv.Tracker.Stop()
		srv.Runtime.Pause()
		srv.Melodies.Stop()
	})
	return srv
}

func newTestMux(srv *Server) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/state", srv.handleState)
	mux.HandleFunc("GET /api/content", srv.handleContent)
	mux.HandleFunc("GET /api/themes", srv.handleThemes)
	mux.HandleFunc("POST /api/theme", srv.handleThemeSelect)
	mux.HandleFunc("POST /api/session/start", srv.handleSessionStart)
	mux.HandleFunc("POST /api/session/pause", srv.handleSessionPause)
	mux.HandleFunc("POST /api/session/reset", srv.handleSessionReset)
	mux.HandleFunc("POST /api/touch/{id}", srv.handleTouch)
	mux.HandleFunc("GET /api/scoreboard", srv.handleScoreboard)
	mux.HandleFunc("GET /api/sessions", srv.handleSessions)
	mux.HandleFunc("GET /api/insights", srv.handleInsights)
	mux.HandleFunc("GET /api/melody", srv.handleMelodyState)
	mux.HandleFunc("POST /api/melody/select", srv.handleMelodySelect)
	mux.HandleFunc("POST /api/melody/{action}", srv.handleMelodyControl)
	mux.HandleFunc("/api/profile", srv.handleProfile)
	mux.HandleFunc("POST /api/sound/mute", srv.handleMute)
	mux.HandleFunc("GET /health", srv.handleHealth)
	return mux
}

func do(t *testing.T, mux *http.ServeMux, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	return rr
}

func decode(t *testing.T, rr *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(rr.Body.Bytes(), v); err != nil {
		t.Fatalf("decode %q: %v", rr.Body.String(), err)
	}
}

func TestHandleState(t *testing.T) {
	srv := newTestServer(t)
	mux := newTestMux(srv)

	rr := do(t, mux, "GET", "/api/state", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}

	var state struct {
		Theme struct {
			ID string `json:"id"`
		} `json:"theme"`
		AgeBucket string `json:"ageBucket"`
		Session   struct {
			Active   bool `json:"active"`
			Duration int  `json:"duration"`
		} `json:"session"`
	}
	decode(t, rr, &state)
	if state.Theme.ID == "" {
		t.Error("state has no theme")
	}
	if state.AgeBucket != "" {
		t.Errorf("ageBucket = %q, want empty before a profile exists", state.AgeBucket)
	}
	if state.Session.Active {
		t.Error("session active before start")
	}
	if state.Session.Duration != 3600 {
		t.Errorf("duration = %d, want 3600", state.Session.Duration)
	}
}

func TestHandleContent(t *testing.T) {
	srv := newTestServer(t)
	mux := newTestMux(srv)

	rr := do(t, mux, "GET", "/api/content", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}

	var body struct {
		Theme  string `json:"theme"`
		Seed   int    `json:"seed"`
		Layers []struct {
			Kind  string            `json:"kind"`
			Items []json.RawMessage `json:"items"`
		} `json:"layers"`
	}
	decode(t, rr, &body)
	// Without a profile the full theme composition comes back, not the
	// single-layer contrast fallback.
	if len(body.Layers) < 2 {
		t.Fatalf("layers = %d, want the unrestricted composition", len(body.Layers))
	}

	// Same seed, same content.
	rr2 := do(t, mux, "GET", "/api/content", "")
	if rr.Body.String() != rr2.Body.String() {
		t.Error("content not deterministic across reads")
	}
}

func TestHandleThemes(t *testing.T) {
	srv := newTestServer(t)
	mux := newTestMux(srv)

	rr := do(t, mux, "GET", "/api/themes", "")
	var views []themeView
	decode(t, rr, &views)
	if len(views) != 7 {
		t.Fatalf("themes = %d, want 7", len(views))
	}
	// No profile means no restriction.
	for _, v := range views {
		if !v.Enabled {
			t.Errorf("theme %s disabled without a profile", v.ID)
		}
	}

	// A saved profile restricts the list to its bucket.
	do(t, mux, "POST", "/api/profile", `{"name":"Maya","age_months":8}`)
	decode(t, do(t, mux, "GET", "/api/themes", ""), &views)
	enabled := 0
	for _, v := range views {
		if v.Enabled {
			enabled++
		}
	}
	if enabled == 0 || enabled == len(views) {
		t.Errorf("enabled = %d, want a strict subset of %d", enabled, len(views))
	}
}

func TestHandleThemeSelect(t *testing.T) {
	srv := newTestServer(t)
	mux := newTestMux(srv)

	rr := do(t, mux, "POST", "/api/theme", `{"theme":"nope"}`)
	if rr.Code != http.StatusBadRequest {
		t.Errorf("unknown theme status = %d, want 400", rr.Code)
	}

	rr = do(t, mux, "POST", "/api/theme", `{"theme":"space"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rr.Code, rr.Body.String())
	}
	var picked map[string]string
	decode(t, rr, &picked)
	if picked["theme"] != "space" {
		t.Errorf("theme = %q, want space", picked["theme"])
	}

	// Empty clears the override back to the daily pick.
	rr = do(t, mux, "POST", "/api/theme", `{"theme":""}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("clear status = %d", rr.Code)
	}

	var state struct {
		Overridden bool `json:"overridden"`
	}
	decode(t, do(t, mux, "GET", "/api/state", ""), &state)
	if state.Overridden {
		t.Error("override still set after clearing")
	}
}

func TestThemeSelectRefreshesLayout(t *testing.T) {
	srv := newTestServer(t)
	mux := newTestMux(srv)

	var before struct {
		Seed int `json:"seed"`
	}
	first := do(t, mux, "GET", "/api/content", "")
	decode(t, first, &before)

	// Switching away and back must not reproduce the old layout.
	do(t, mux, "POST", "/api/theme", `{"theme":"space"}`)
	do(t, mux, "POST", "/api/theme", `{"theme":""}`)

	var after struct {
		Seed int `json:"seed"`
	}
	second := do(t, mux, "GET", "/api/content", "")
	decode(t, second, &after)

	if after.Seed != before.Seed+2 {
		t.Errorf("seed = %d after two theme picks, want %d", after.Seed, before.Seed+2)
	}
	if first.Body.String() == second.Body.String() {
		t.Error("layout unchanged after theme round-trip")
	}
}

func TestSessionLifecycle(t *testing.T) {
	srv := newTestServer(t)
	mux := newTestMux(srv)

	rr := do(t, mux, "POST", "/api/session/start", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("start status = %d", rr.Code)
	}
	if !srv.Runtime.Active() || !srv.Tracker.Running() || !srv.Score.Tracking() {
		t.Error("start did not bring everything up")
	}

	// Reset while running is rejected.
	rr = do(t, mux, "POST", "/api/session/reset", "")
	if rr.Code != http.StatusConflict {
		t.Errorf("reset while running = %d, want 409", rr.Code)
	}

	rr = do(t, mux, "POST", "/api/session/pause", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("pause status = %d", rr.Code)
	}
	if srv.Runtime.Active() || srv.Tracker.Running() || srv.Score.Tracking() {
		t.Error("pause did not bring everything down")
	}

	rr = do(t, mux, "POST", "/api/session/reset", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("reset status = %d", rr.Code)
	}
	if srv.Runtime.Elapsed() != 0 {
		t.Error("reset did not zero the clock")
	}
}

func TestHandleTouch(t *testing.T) {
	srv := newTestServer(t)
	mux := newTestMux(srv)

	rr := do(t, mux, "POST", "/api/touch/abc", "")
	if rr.Code != http.StatusBadRequest {
		t.Errorf("bad id status = %d, want 400", rr.Code)
	}

	// An id that is not on the playfield is not an error, just not counted.
	rr = do(t, mux, "POST", "/api/touch/999", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("missing object status = %d", rr.Code)
	}
	var miss struct {
		Counted bool `json:"counted"`
	}
	decode(t, rr, &miss)
	if miss.Counted {
		t.Error("touch on missing object counted")
	}
}

func TestHandleProfileCRUD(t *testing.T) {
	srv := newTestServer(t)
	mux := newTestMux(srv)

	rr := do(t, mux, "GET", "/api/profile", "")
	if rr.Code != http.StatusNotFound {
		t.Errorf("empty profile status = %d, want 404", rr.Code)
	}

	rr = do(t, mux, "POST", "/api/profile", `{"name":"Maya","age_months":5}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("create status = %d: %s", rr.Code, rr.Body.String())
	}
	var created profile.Profile
	decode(t, rr, &created)
	if created.Name != "Maya" || created.AgeMonths != 5 {
		t.Errorf("created = %+v", created)
	}

	// Saving again updates in place.
	rr = do(t, mux, "POST", "/api/profile", `{"name":"Maya","age_months":11}`)
	var updated profile.Profile
	decode(t, rr, &updated)
	if updated.ID != created.ID || updated.AgeMonths != 11 {
		t.Errorf("updated = %+v", updated)
	}

	// The age bucket follows the profile.
	var state struct {
		AgeBucket string `json:"ageBucket"`
	}
	decode(t, do(t, mux, "GET", "/api/state", ""), &state)
	if state.AgeBucket != "10-12" {
		t.Errorf("ageBucket = %q, want 10-12", state.AgeBucket)
	}

	rr = do(t, mux, "POST", "/api/profile", `{"name":"","age_months":5}`)
	if rr.Code != http.StatusBadRequest {
		t.Errorf("invalid profile status = %d, want 400", rr.Code)
	}

	rr = do(t, mux, "DELETE", "/api/profile", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("delete status = %d", rr.Code)
	}
	rr = do(t, mux, "GET", "/api/profile", "")
	if rr.Code != http.StatusNotFound {
		t.Errorf("profile after delete = %d, want 404", rr.Code)
	}
}

func TestHandleSessionsAndInsightsEmpty(t *testing.T) {
	srv := newTestServer(t)
	mux := newTestMux(srv)

	rr := do(t, mux, "GET", "/api/sessions", "")
	var records []session.Record
	decode(t, rr, &records)
	if len(records) != 0 {
		t.Errorf("sessions = %v, want empty", records)
	}

	rr = do(t, mux, "GET", "/api/insights", "")
	if rr.Code != http.StatusOK {
		t.Errorf("insights status = %d", rr.Code)
	}
}

func TestHandleMelody(t *testing.T) {
	srv := newTestServer(t)
	mux := newTestMux(srv)

	rr := do(t, mux, "POST", "/api/melody/next", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("next status = %d", rr.Code)
	}
	var state struct {
		Current melody.Rhyme `json:"current"`
		Index   int          `json:"index"`
	}
	decode(t, rr, &state)
	if state.Current.ID != "mary" || state.Index != 1 {
		t.Errorf("after next: %+v", state)
	}

	rr = do(t, mux, "POST", "/api/melody/select", `{"index":4}`)
	decode(t, rr, &state)
	if state.Current.ID != "spider" {
		t.Errorf("after select 4: %+v", state)
	}

	rr = do(t, mux, "POST", "/api/melody/warp", "")
	if rr.Code != http.StatusBadRequest {
		t.Errorf("unknown action status = %d, want 400", rr.Code)
	}
}

func TestHandleMute(t *testing.T) {
	srv := newTestServer(t)
	mux := newTestMux(srv)

	var resp map[string]bool
	decode(t, do(t, mux, "POST", "/api/sound/mute", ""), &resp)
	if !resp["muted"] {
		t.Error("first toggle should mute")
	}
	decode(t, do(t, mux, "POST", "/api/sound/mute", ""), &resp)
	if resp["muted"] {
		t.Error("second toggle should unmute")
	}
}

func TestHandleHealth(t *testing.T) {
	srv := newTestServer(t)
	mux := newTestMux(srv)

	rr := do(t, mux, "GET", "/health", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("health status = %d", rr.Code)
	}
	var health map[string]any
	decode(t, rr, &health)
	if health["status"] != "ok" {
		t.Errorf("health = %v", health)
	}
}

func TestFinishSessionRecords(t *testing.T) {
	srv := newTestServer(t)

	srv.Score.StartTracking()
	srv.Score.RecordTouch("ocean", "#0066FF")
	srv.Score.RecordTouch("ocean", "#0066FF")

	srv.finishSession()

	history := srv.Recorder.History()
	if len(history) != 1 {
		t.Fatalf("history = %d records, want 1", len(history))
	}
	rec := history[0]
	if rec.Touches != 2 || !rec.CompletedFull {
		t.Errorf("record = %+v", rec)
	}
	if srv.Objects.Count() != 0 {
		t.Error("objects not cleared after completion")
	}
}
