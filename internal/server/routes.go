package server

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"babysensory/internal/ageprofile"
	"babysensory/internal/audio"
	"babysensory/internal/broadcast"
	"babysensory/internal/config"
	"babysensory/internal/events"
	"babysensory/internal/melody"
	"babysensory/internal/playfield"
	"babysensory/internal/profile"
	"babysensory/internal/scoreboard"
	"babysensory/internal/session"
	"babysensory/internal/wshub"
)

func Run() error {
	appCfg := config.Load()

	if appCfg.ProfilesPath != "" {
		if err := ageprofile.LoadOverrides(appCfg.ProfilesPath); err != nil {
			log.Printf("[Config] Age profile overrides: %v (using built-ins)\n", err)
		}
	}

	dataDir := expandHome(appCfg.DataDir)

	// Local persistence cascade: SQLite first, JSON file as fallback.
	var local *session.LocalStore
	if store, err := session.OpenLocal(filepath.Join(dataDir, "sessions.db")); err != nil {
		log.Printf("[Session] SQLite unavailable: %v (falling back to JSON)\n", err)
	} else {
		local = store
	}
	fallback := session.NewFileStore(filepath.Join(dataDir, "sessions.json"))

	// Optional remote analytics mirror.
	var remote *session.RemoteStore
	if appCfg.DatabaseURL != "" {
		store, err := session.ConnectRemote(appCfg.DatabaseURL)
		if err != nil {
			log.Printf("[Session] Remote store unavailable: %v (running local only)\n", err)
		} else {
			if err := store.Migrate(); err != nil {
				log.Printf("[Session] Remote migration failed: %v\n", err)
			}
			remote = store
		}
	} else {
		log.Println("[Session] DATABASE_URL not set, running local only")
	}

	bus := events.NewBus()
	metrics := NewMetrics(prometheus.DefaultRegisterer)

	sound := audio.NewManager()
	if err := sound.Initialize(); err != nil {
		log.Printf("[Audio] Speaker unavailable: %v (running silent)\n", err)
	}

	var remoteSync profile.RemoteSync
	if remote != nil {
		remoteSync = remote
	}

	srv := &Server{
		Profiles:    profile.NewStore(filepath.Join(dataDir, "profile.json"), remoteSync),
		Score:       scoreboard.NewEngine(bus),
		Objects:     playfield.NewStore(),
		Runtime:     session.NewRuntime(time.Duration(appCfg.SessionDuration)*time.Second, time.Duration(appCfg.ReseedInterval)*time.Second),
		Recorder:    session.NewRecorder(local, fallback, remote),
		Melodies:    melody.NewPlayer(sound),
		Sound:       sound,
		Broadcaster: broadcast.NewBroadcaster(bus),
		Hub:         wshub.NewHub(),
		Bus:         bus,
		Metrics:     metrics,
		now:         time.Now,
	}
	srv.Tracker = playfield.NewTracker(srv.Objects, srv.Score)
	srv.Recorder.OnFailure = func(session.Record) { metrics.PersistenceFailures.Inc() }

	srv.Tracker.OnPhase = func(id int, phase playfield.Phase) {
		srv.Hub.Broadcast(wshub.ServerMessage{Type: "phase", ObjectID: id, Phase: string(phase)})
	}
	srv.Tracker.OnRemove = func(id int) {
		srv.Hub.Broadcast(wshub.ServerMessage{Type: "remove", ObjectID: id})
	}
	srv.Tracker.OnSpawn = func(batch []*playfield.Object) {
		srv.Hub.Broadcast(wshub.ServerMessage{Type: "spawn", Value: len(batch)})
	}

	srv.Runtime.OnReseed = func(int) {
		metrics.Reseeds.Inc()
		seed := srv.currentSeed()
		bus.PublishRefresh(events.RefreshEvent{Seed: seed})
		srv.Hub.Broadcast(wshub.ServerMessage{Type: "refresh", Seed: seed})
	}
	srv.Runtime.OnComplete = srv.finishSession

	// The broadcaster is the single bus consumer; tap it for metrics and the
	// websocket mirror.
	go func() {
		ch := srv.Broadcaster.Subscribe()
		for msg := range ch {
			switch msg.Event {
			case "touch":
				metrics.Touches.Inc()
			case "milestone":
				metrics.Milestones.Inc()
				srv.Hub.Broadcast(wshub.ServerMessage{Type: "milestone", Payload: []byte(msg.Data)})
			}
		}
	}()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/state", srv.handleState)
	mux.HandleFunc("GET /api/content", srv.handleContent)
	mux.HandleFunc("GET /api/themes", srv.handleThemes)
	mux.HandleFunc("POST /api/theme", srv.handleThemeSelect)
	mux.HandleFunc("POST /api/session/start", srv.handleSessionStart)
	mux.HandleFunc("POST /api/session/pause", srv.handleSessionPause)
	mux.HandleFunc("POST /api/session/reset", srv.handleSessionReset)
	mux.HandleFunc("POST /api/session/finish", srv.handleSessionFinish)
	mux.HandleFunc("POST /api/touch/{id}", srv.handleTouch)
	mux.HandleFunc("GET /api/scoreboard", srv.handleScoreboard)
	mux.HandleFunc("GET /api/sessions", srv.handleSessions)
	mux.HandleFunc("GET /api/insights", srv.handleInsights)
	mux.HandleFunc("GET /api/melody", srv.handleMelodyState)
	mux.HandleFunc("POST /api/melody/select", srv.handleMelodySelect)
	mux.HandleFunc("POST /api/melody/{action}", srv.handleMelodyControl)
	mux.HandleFunc("/api/profile", srv.handleProfile)
	mux.HandleFunc("POST /api/sound/mute", srv.handleMute)
	mux.HandleFunc("GET /events", srv.handleEvents)
	mux.HandleFunc("GET /ws", srv.handleWS)
	mux.HandleFunc("GET /health", srv.handleHealth)
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir("static"))))

	addr := "0.0.0.0:" + appCfg.Port
	fmt.Printf("Server listening on http://localhost:%s\n", appCfg.Port)
	return http.ListenAndServe(addr, mux)
}

// expandHome resolves a leading ~ against the user's home directory.
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
