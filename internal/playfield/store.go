package playfield

import (
	"math/rand"
	"sync"
	"time"

	"babysensory/internal/ageprofile"
)

// Store is the mutex-guarded set of live objects.
type Store struct {
	mu      sync.Mutex
	objects map[int]*Object
	nextID  int
}

func NewStore() *Store {
	return &Store{
		objects: make(map[int]*Object),
		nextID:  1,
	}
}

// SpawnBatch spawns a random count in [objectCount.min, objectCount.max] of
// new objects at non-edge positions, capped so the live set never exceeds the
// profile's max simultaneous objects. Returns the spawned objects, possibly
// none.
func (s *Store) SpawnBatch(profile *ageprofile.Profile, colors []string, emoji string) []*Object {
	s.mu.Lock()
	defer s.mu.Unlock()

	capacity := profile.MaxSimultaneousObjects - len(s.objects)
	if capacity <= 0 || len(colors) == 0 {
		return nil
	}

	lo, hi := int(profile.ObjectCount.Min), int(profile.ObjectCount.Max)
	n := lo
	if hi > lo {
		n += rand.Intn(hi - lo + 1)
	}
	if n > capacity {
		n = capacity
	}

	spawned := make([]*Object, 0, n)
	for i := 0; i < n; i++ {
		id := s.nextID
		s.nextID++
		obj := &Object{
			ID:               id,
			X:                10 + rand.Float64()*80,
			Y:                10 + rand.Float64()*80,
			Size:             profile.ObjectSize.Min + rand.Float64()*(profile.ObjectSize.Max-profile.ObjectSize.Min),
			Color:            colors[rand.Intn(len(colors))],
			Emoji:            emoji,
			HitboxMultiplier: profile.TouchBehavior.HitboxMultiplier,
			Phase:            PhaseIdle,
			SpawnedAt:        time.Now(),
		}
		s.objects[id] = obj
		spawned = append(spawned, obj)
	}
	return spawned
}

// Touch moves an idle object to celebrating and returns it. Only the first
// touch counts; an object already past idle returns false so multi-touch
// cannot double-count.
func (s *Store) Touch(id int) (*Object, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	obj, ok := s.objects[id]
	if !ok || obj.Phase != PhaseIdle {
		return nil, false
	}
	obj.Phase = PhaseCelebrating
	obj.TouchedAt = time.Now()
	return obj, true
}

// Advance moves an object to the given phase if it is still live. Returns
// false when the object has already been removed.
func (s *Store) Advance(id int, phase Phase) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	obj, ok := s.objects[id]
	if !ok {
		return false
	}
	obj.Phase = phase
	return true
}

func (s *Store) Remove(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, id)
}

func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.objects)
}

func (s *Store) Get(id int) *Object {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.objects[id]
}

func (s *Store) GetList() []*Object {
	s.mu.Lock()
	defer s.mu.Unlock()
	objectList := make([]*Object, 0, len(s.objects))
	for _, obj := range s.objects {
		objectList = append(objectList, obj)
	}
	return objectList
}

// RemoveStale deletes every object older than maxAge regardless of phase and
// returns the removed ids.
func (s *Store) RemoveStale(maxAge time.Duration) []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	cutoff := time.Now().Add(-maxAge)
	var removed []int
	for id, obj := range s.objects {
		if obj.SpawnedAt.Before(cutoff) {
			delete(s.objects, id)
			removed = append(removed, id)
		}
	}
	return removed
}

func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects = make(map[int]*Object)
	s.nextID = 1
}
