// Package profile stores the baby profile: a name, an age in months, and the
// timestamps around them. The profile lives in a local JSON file and is
// mirrored to the remote store when one is connected.
package profile

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"babysensory/internal/ageprofile"
)

const (
	MinAgeMonths = 4
	MaxAgeMonths = 12
)

var (
	ErrNoProfile  = errors.New("no profile saved")
	ErrNameEmpty  = errors.New("name is required")
	ErrAgeOutside = fmt.Errorf("age must be between %d and %d months", MinAgeMonths, MaxAgeMonths)
)

// Profile identifies the baby the toy adapts to.
type Profile struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	AgeMonths int       `json:"age_months"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

// RemoteSync mirrors profile writes somewhere durable. *session.RemoteStore
// satisfies it.
type RemoteSync interface {
	UpsertProfile(id, name string, ageMonths int, createdAt time.Time) error
}

// Store keeps the profile in a JSON file. remote may be nil; mirror failures
// are logged and never block the local write.
type Store struct {
	mu     sync.Mutex
	path   string
	remote RemoteSync
}

func NewStore(path string, remote RemoteSync) *Store {
	return &Store{path: path, remote: remote}
}

func validate(name string, ageMonths int) error {
	if name == "" {
		return ErrNameEmpty
	}
	if ageMonths < MinAgeMonths || ageMonths > MaxAgeMonths {
		return ErrAgeOutside
	}
	return nil
}

// Get loads the saved profile. ErrNoProfile when none has been created.
func (s *Store) Get() (Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *Store) load() (Profile, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return Profile{}, ErrNoProfile
	}
	if err != nil {
		return Profile{}, fmt.Errorf("reading profile: %w", err)
	}
	var p Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return Profile{}, fmt.Errorf("decoding profile: %w", err)
	}
	return p, nil
}

func (s *Store) save(p Profile) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("creating profile dir: %w", err)
	}
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding profile: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("writing profile: %w", err)
	}
	return nil
}

func (s *Store) mirror(p Profile) {
	if s.remote == nil {
		return
	}
	go func() {
		if err := s.remote.UpsertProfile(p.ID, p.Name, p.AgeMonths, p.CreatedAt); err != nil {
			log.Printf("[Profile] Remote mirror failed: %v", err)
		}
	}()
}

// Create saves a new profile, replacing any existing one.
func (s *Store) Create(name string, ageMonths int) (Profile, error) {
	if err := validate(name, ageMonths); err != nil {
		return Profile{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p := Profile{
		ID:        uuid.NewString(),
		Name:      name,
		AgeMonths: ageMonths,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.save(p); err != nil {
		return Profile{}, err
	}
	s.mirror(p)
	return p, nil
}

// Update changes the saved profile's name and age, keeping its id.
func (s *Store) Update(name string, ageMonths int) (Profile, error) {
	if err := validate(name, ageMonths); err != nil {
		return Profile{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.load()
	if err != nil {
		return Profile{}, err
	}
	p.Name = name
	p.AgeMonths = ageMonths
	p.UpdatedAt = time.Now().UTC()
	if err := s.save(p); err != nil {
		return Profile{}, err
	}
	s.mirror(p)
	return p, nil
}

// Clear removes the saved profile. Clearing a missing profile is fine.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	err := os.Remove(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// AgeProfile resolves the saved profile's age bucket. Without a saved
// profile it returns nil, which callers treat as unrestricted content.
func (s *Store) AgeProfile() *ageprofile.Profile {
	p, err := s.Get()
	if err != nil {
		return nil
	}
	bucket := ageprofile.Resolve(p.AgeMonths)
	return &bucket
}
