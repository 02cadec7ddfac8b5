package session

import "log"

// Recorder persists records through two independent channels: the local
// cascade (SQLite, then the JSON fallback) and the remote mirror. Failures
// are logged and never surfaced; a broken store must not interrupt play.
type Recorder struct {
	local    *LocalStore
	fallback *FileStore
	remote   *RemoteStore

	// OnFailure is called when a record could not be persisted locally at
	// all. Optional; set before the first Save.
	OnFailure func(rec Record)
}

// NewRecorder accepts nil for any store that is not configured.
func NewRecorder(local *LocalStore, fallback *FileStore, remote *RemoteStore) *Recorder {
	return &Recorder{
		local:    local,
		fallback: fallback,
		remote:   remote,
	}
}

// Save writes the record everywhere it can. The remote write happens in its
// own goroutine so a slow network never delays the caller.
func (r *Recorder) Save(rec Record) {
	saved := false
	if r.local != nil {
		if err := r.local.Add(rec); err != nil {
			log.Printf("[Session] local store: %v\n", err)
		} else {
			saved = true
		}
	}
	if !saved && r.fallback != nil {
		if err := r.fallback.Add(rec); err != nil {
			log.Printf("[Session] fallback store: %v\n", err)
		} else {
			saved = true
		}
	}
	if !saved {
		log.Printf("[Session] record %s not persisted locally\n", rec.ID)
		if r.OnFailure != nil {
			r.OnFailure(rec)
		}
	}

	if r.remote != nil {
		go func() {
			if err := r.remote.SaveSession(rec); err != nil {
				log.Printf("[Session] remote store: %v\n", err)
			}
		}()
	}
}

// History reads the session history from the local cascade, newest first.
func (r *Recorder) History() []Record {
	if r.local != nil {
		records, err := r.local.All()
		if err == nil {
			return records
		}
		log.Printf("[Session] local history: %v\n", err)
	}
	if r.fallback != nil {
		records, err := r.fallback.All()
		if err == nil {
			return records
		}
		log.Printf("[Session] fallback history: %v\n", err)
	}
	return nil
}
