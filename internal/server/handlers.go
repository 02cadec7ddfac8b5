package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"

	"babysensory/internal/ageprofile"
	"babysensory/internal/content"
	"babysensory/internal/melody"
	"babysensory/internal/profile"
	"babysensory/internal/session"
	"babysensory/internal/themes"
	"babysensory/internal/wshub"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[Handle] Encode error: %v\n", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// themeView is the wire shape of a theme entry.
type themeView struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Background string `json:"background"`
	Emoji      string `json:"emoji"`
	Enabled    bool   `json:"enabled"`
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	today := s.today()
	bucket := ""
	if prof := s.ageProfile(); prof != nil {
		bucket = prof.Key
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"date":       today.DateLabel,
		"theme":      themeView{ID: today.Theme.ID, Name: today.Theme.Name, Background: today.Theme.Background, Emoji: today.Theme.Emoji, Enabled: true},
		"overridden": today.Overridden,
		"seed":       s.currentSeed(),
		"ageBucket":  bucket,
		"scoreboard": s.Score.Snapshot(),
		"session": map[string]any{
			"active":   s.Runtime.Active(),
			"elapsed":  int(s.Runtime.Elapsed().Seconds()),
			"duration": int(s.Runtime.Duration().Seconds()),
		},
		"objects": s.Objects.GetList(),
		"melody": map[string]any{
			"current": s.Melodies.Current(),
			"playing": s.Melodies.Playing(),
			"looping": s.Melodies.Looping(),
		},
		"muted": s.Sound.Muted(),
	})
}

// handleContent returns the animation layers for the current theme, seed, and
// age bucket. The client renders these verbatim; equality of seed means
// equality of layout.
func (s *Server) handleContent(w http.ResponseWriter, r *http.Request) {
	today := s.today()

	layers := content.Layers(today.Theme.ID, today.Colors, s.currentSeed(), s.ageProfile())
	writeJSON(w, http.StatusOK, map[string]any{
		"theme":      today.Theme.ID,
		"background": today.Theme.Background,
		"seed":       s.currentSeed(),
		"sounds":     today.Sounds,
		"layers":     layers,
	})
}

func (s *Server) handleThemes(w http.ResponseWriter, r *http.Request) {
	prof := s.ageProfile()
	views := make([]themeView, 0, len(themes.Catalog))
	for _, t := range themes.Catalog {
		views = append(views, themeView{
			ID:         t.ID,
			Name:       t.Name,
			Background: t.Background,
			Emoji:      t.Emoji,
			Enabled:    prof == nil || prof.IsThemeEnabled(t.ID),
		})
	}
	writeJSON(w, http.StatusOK, views)
}

func (s *Server) handleThemeSelect(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Theme string `json:"theme"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}
	if body.Theme != "" && themes.ByID(body.Theme) == nil {
		writeError(w, http.StatusBadRequest, "unknown theme")
		return
	}

	s.setThemeOverride(body.Theme)
	log.Printf("[Handle:Theme] Override set to %q\n", body.Theme)

	// A theme change mid-session restarts spawning with the new palette.
	if s.Runtime.Active() {
		s.Tracker.Stop()
		s.Objects.Clear()
		s.configureTracker()
		s.Tracker.Start()
	}
	s.Hub.Broadcast(wshub.ServerMessage{Type: "theme"})
	writeJSON(w, http.StatusOK, map[string]string{"theme": s.today().Theme.ID})
}

// configureTracker points the playfield at today's theme and palette. Spawn
// pacing needs concrete timings, so without a profile the oldest bucket's
// timings apply.
func (s *Server) configureTracker() {
	today := s.today()
	prof := s.ageProfile()
	if prof == nil {
		oldest := ageprofile.Resolve(12)
		prof = &oldest
	}
	s.Tracker.Configure(today.Theme.ID, today.Colors, today.Theme.Emoji, *prof)
}

func (s *Server) handleSessionStart(w http.ResponseWriter, r *http.Request) {
	if s.Runtime.Active() {
		writeJSON(w, http.StatusOK, map[string]string{"status": "already running"})
		return
	}

	fresh := s.Runtime.Elapsed() == 0
	if fresh {
		s.Score.Reset()
		s.Melodies.ResetPlayed()
		s.Objects.Clear()
		s.Metrics.SessionsStarted.Inc()
	}

	s.Score.StartTracking()
	s.configureTracker()
	s.Tracker.Start()
	s.Runtime.Start()

	log.Printf("[Handle:Session] Started (fresh=%v)\n", fresh)
	s.Hub.Broadcast(wshub.ServerMessage{Type: "session", Phase: "started"})
	writeJSON(w, http.StatusOK, map[string]string{"status": "started"})
}

func (s *Server) handleSessionPause(w http.ResponseWriter, r *http.Request) {
	s.pauseSession()
	writeJSON(w, http.StatusOK, map[string]string{"status": "paused"})
}

func (s *Server) pauseSession() {
	s.Runtime.Pause()
	s.Tracker.Stop()
	s.Score.StopTracking()
	s.Melodies.Pause()
	s.Hub.Broadcast(wshub.ServerMessage{Type: "session", Phase: "paused"})
}

func (s *Server) handleSessionReset(w http.ResponseWriter, r *http.Request) {
	if s.Runtime.Active() {
		writeError(w, http.StatusConflict, "pause before resetting")
		return
	}
	s.Runtime.Reset()
	s.Score.Reset()
	s.Objects.Clear()
	s.Melodies.ResetPlayed()
	writeJSON(w, http.StatusOK, map[string]string{"status": "reset"})
}

// handleSessionFinish ends the session early and records it.
func (s *Server) handleSessionFinish(w http.ResponseWriter, r *http.Request) {
	if s.Runtime.Active() {
		s.pauseSession()
	}
	if s.Runtime.Elapsed() == 0 {
		writeError(w, http.StatusConflict, "no session to record")
		return
	}
	rec := s.recordSession(false)
	s.Runtime.Reset()
	writeJSON(w, http.StatusOK, rec)
}

// finishSession runs when the countdown expires.
func (s *Server) finishSession() {
	s.Tracker.Stop()
	s.Score.StopTracking()
	s.Melodies.Stop()

	rec := s.recordSession(true)
	s.Metrics.SessionsCompleted.Inc()
	s.Objects.Clear()

	log.Printf("[Session] Completed: %d touches, best streak %d\n", rec.Touches, rec.Streaks)
	s.Hub.Broadcast(wshub.ServerMessage{Type: "session", Phase: "completed"})
}

// recordSession builds the record from the live counters and persists it.
func (s *Server) recordSession(completedFull bool) session.Record {
	today := s.today()
	rec := session.FromSummary(
		s.Score.Summary(),
		today.Theme.Name,
		s.Runtime.Elapsed(),
		s.Melodies.Played(),
		completedFull,
	)
	s.Recorder.Save(rec)
	return rec
}

func (s *Server) handleTouch(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid object id")
		return
	}

	if !s.Tracker.Touch(id) {
		// Already touched or gone; the canvas may race the sweep.
		writeJSON(w, http.StatusOK, map[string]bool{"counted": false})
		return
	}

	today := s.today()
	s.Sound.PlayRandom(today.Sounds)

	writeJSON(w, http.StatusOK, map[string]any{
		"counted":    true,
		"scoreboard": s.Score.Snapshot(),
	})
}

func (s *Server) handleScoreboard(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.Score.Snapshot())
}

func (s *Server) handleSessions(w http.ResponseWriter, r *http.Request) {
	records := s.Recorder.History()
	if records == nil {
		records = []session.Record{}
	}
	writeJSON(w, http.StatusOK, records)
}

func (s *Server) handleMelodyState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"current": s.Melodies.Current(),
		"index":   s.Melodies.Index(),
		"playing": s.Melodies.Playing(),
		"looping": s.Melodies.Looping(),
		"all":     melody.Rhymes,
	})
}

func (s *Server) handleMelodyControl(w http.ResponseWriter, r *http.Request) {
	action := r.PathValue("action")
	switch action {
	case "play":
		s.Melodies.Play()
	case "pause":
		s.Melodies.Pause()
	case "toggle":
		s.Melodies.TogglePlayPause()
	case "next":
		s.Melodies.Next()
	case "previous":
		s.Melodies.Previous()
	case "loop":
		s.Melodies.ToggleLoop()
	default:
		writeError(w, http.StatusBadRequest, "unknown action")
		return
	}
	log.Printf("[Handle:Melody] %s -> %s\n", action, s.Melodies.Current().ID)
	s.handleMelodyState(w, r)
}

func (s *Server) handleMelodySelect(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Index int `json:"index"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}
	s.Melodies.Select(body.Index)
	s.handleMelodyState(w, r)
}

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		p, err := s.Profiles.Get()
		if errors.Is(err, profile.ErrNoProfile) {
			writeError(w, http.StatusNotFound, "no profile")
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, p)

	case http.MethodPost:
		var body struct {
			Name      string `json:"name"`
			AgeMonths int    `json:"age_months"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeError(w, http.StatusBadRequest, "invalid body")
			return
		}

		var p profile.Profile
		var err error
		if _, getErr := s.Profiles.Get(); errors.Is(getErr, profile.ErrNoProfile) {
			p, err = s.Profiles.Create(body.Name, body.AgeMonths)
		} else {
			p, err = s.Profiles.Update(body.Name, body.AgeMonths)
		}
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("[Handle:Profile] Saved %s (%d months)\n", p.Name, p.AgeMonths)
		writeJSON(w, http.StatusOK, p)

	case http.MethodDelete:
		if err := s.Profiles.Clear(); err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "cleared"})

	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (s *Server) handleMute(w http.ResponseWriter, r *http.Request) {
	muted := s.Sound.ToggleMute()
	writeJSON(w, http.StatusOK, map[string]bool{"muted": muted})
}

func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	msgChan := s.Broadcaster.Subscribe()
	defer s.Broadcaster.Unsubscribe(msgChan)

	for {
		select {
		case <-r.Context().Done():
			return
		case msg := <-msgChan:
			fmt.Fprintf(w, "event: %s\n", msg.Event)
			for _, line := range strings.Split(msg.Data, "\n") {
				fmt.Fprintf(w, "data: %s\n", line)
			}
			fmt.Fprint(w, "\n")
			flusher.Flush()
		}
	}
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		log.Printf("[Handle:WS] Accept error: %v\n", err)
		return
	}

	client := &wshub.Client{
		ViewerID: uuid.NewString(),
		Conn:     conn,
		Send:     make(chan []byte, 32),
	}
	s.Hub.Register(client)
	defer s.Hub.Unregister(client.ViewerID)

	ctx := r.Context()
	go client.WritePump(ctx)

	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			return
		}
		var msg wshub.ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			continue
		}
		switch msg.Type {
		case "touch":
			if s.Tracker.Touch(msg.ObjectID) {
				s.Sound.PlayRandom(s.today().Sounds)
			}
		case "mute":
			s.Sound.ToggleMute()
		}
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"active":  s.Runtime.Active(),
		"objects": s.Objects.Count(),
		"time":    time.Now().UTC().Format(time.RFC3339),
	})
}
