package server

import (
	"sync"
	"time"

	"babysensory/internal/ageprofile"
	"babysensory/internal/audio"
	"babysensory/internal/broadcast"
	"babysensory/internal/daily"
	"babysensory/internal/events"
	"babysensory/internal/melody"
	"babysensory/internal/playfield"
	"babysensory/internal/profile"
	"babysensory/internal/scoreboard"
	"babysensory/internal/session"
	"babysensory/internal/wshub"
)

type Server struct {
	Profiles    *profile.Store
	Score       *scoreboard.Engine
	Objects     *playfield.Store
	Tracker     *playfield.Tracker
	Runtime     *session.Runtime
	Recorder    *session.Recorder
	Melodies    *melody.Player
	Sound       *audio.Manager
	Broadcaster *broadcast.Broadcaster
	Hub         *wshub.Hub
	Bus         *events.Bus
	Metrics     *Metrics

	// mu guards the theme override and seed nudge. The daily pick itself is
	// derived from the clock on every read so a session crossing midnight
	// rolls over naturally.
	mu            sync.Mutex
	themeOverride string
	seedNudge     int

	now func() time.Time
}

// today resolves the day's content, honoring a manual theme pick.
func (s *Server) today() daily.Content {
	s.mu.Lock()
	override := s.themeOverride
	s.mu.Unlock()
	return daily.Select(s.now(), override)
}

// ageProfile resolves the saved baby's age bucket, nil when no profile has
// been created yet.
func (s *Server) ageProfile() *ageprofile.Profile {
	return s.Profiles.AgeProfile()
}

// currentSeed is the daily seed plus the mid-session reseed bump plus the
// theme-change nudge.
func (s *Server) currentSeed() int {
	s.mu.Lock()
	nudge := s.seedNudge
	s.mu.Unlock()
	return s.today().Seed + s.Runtime.SeedBump() + nudge
}

// setThemeOverride records a manual theme pick; empty clears it back to the
// computed theme of the day. Every pick nudges the seed so switching away and
// back still lands on a fresh layout.
func (s *Server) setThemeOverride(themeID string) {
	s.mu.Lock()
	s.themeOverride = themeID
	s.seedNudge++
	s.mu.Unlock()
}
