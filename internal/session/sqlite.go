package session

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // pure Go driver, no CGO
)

// LocalStore is the primary durable store, a SQLite database on disk.
type LocalStore struct {
	db *sql.DB
}

// OpenLocal creates or opens the session database at the given path, creating
// parent directories and running the schema as needed.
func OpenLocal(dbPath string) (*LocalStore, error) {
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("session: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("session: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("session: cannot open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("session: cannot connect to database: %w", err)
	}

	store := &LocalStore{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("session: migration failed: %w", err)
	}
	return store, nil
}

func (s *LocalStore) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS sessions (
			id TEXT PRIMARY KEY,
			timestamp INTEGER NOT NULL,
			theme TEXT NOT NULL,
			duration INTEGER NOT NULL,
			touches INTEGER NOT NULL,
			color_counts TEXT NOT NULL,
			object_counts TEXT NOT NULL,
			nursery_rhymes_played TEXT NOT NULL,
			streaks INTEGER NOT NULL,
			milestones TEXT NOT NULL,
			completed_full INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_timestamp ON sessions(timestamp);
		CREATE INDEX IF NOT EXISTS idx_sessions_theme ON sessions(theme);
	`
	_, err := s.db.Exec(schema)
	return err
}

func (s *LocalStore) Close() error {
	return s.db.Close()
}

func (s *LocalStore) Add(rec Record) error {
	colorCounts, err := json.Marshal(rec.ColorCounts)
	if err != nil {
		return fmt.Errorf("session: encoding color counts: %w", err)
	}
	objectCounts, err := json.Marshal(rec.ObjectCounts)
	if err != nil {
		return fmt.Errorf("session: encoding object counts: %w", err)
	}
	rhymes, err := json.Marshal(rec.NurseryRhymesPlayed)
	if err != nil {
		return fmt.Errorf("session: encoding rhymes: %w", err)
	}
	milestones, err := json.Marshal(rec.Milestones)
	if err != nil {
		return fmt.Errorf("session: encoding milestones: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO sessions (id, timestamp, theme, duration, touches,
			color_counts, object_counts, nursery_rhymes_played,
			streaks, milestones, completed_full)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, rec.ID, rec.Timestamp, rec.Theme, rec.Duration, rec.Touches,
		string(colorCounts), string(objectCounts), string(rhymes),
		rec.Streaks, string(milestones), rec.CompletedFull)
	if err != nil {
		return fmt.Errorf("session: inserting record: %w", err)
	}
	return nil
}

// All returns every record, newest first.
func (s *LocalStore) All() ([]Record, error) {
	rows, err := s.db.Query(`
		SELECT id, timestamp, theme, duration, touches,
			color_counts, object_counts, nursery_rhymes_played,
			streaks, milestones, completed_full
		FROM sessions ORDER BY timestamp DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("session: querying records: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		var colorCounts, objectCounts, rhymes, milestones string
		if err := rows.Scan(&rec.ID, &rec.Timestamp, &rec.Theme, &rec.Duration,
			&rec.Touches, &colorCounts, &objectCounts, &rhymes,
			&rec.Streaks, &milestones, &rec.CompletedFull); err != nil {
			return nil, fmt.Errorf("session: scanning record: %w", err)
		}
		if err := json.Unmarshal([]byte(colorCounts), &rec.ColorCounts); err != nil {
			return nil, fmt.Errorf("session: decoding color counts: %w", err)
		}
		if err := json.Unmarshal([]byte(objectCounts), &rec.ObjectCounts); err != nil {
			return nil, fmt.Errorf("session: decoding object counts: %w", err)
		}
		if err := json.Unmarshal([]byte(rhymes), &rec.NurseryRhymesPlayed); err != nil {
			return nil, fmt.Errorf("session: decoding rhymes: %w", err)
		}
		if err := json.Unmarshal([]byte(milestones), &rec.Milestones); err != nil {
			return nil, fmt.Errorf("session: decoding milestones: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Recent returns records from the last n days, newest first.
func (s *LocalStore) Recent(days int) ([]Record, error) {
	all, err := s.All()
	if err != nil {
		return nil, err
	}
	cutoff := time.Now().AddDate(0, 0, -days).UnixMilli()
	recent := make([]Record, 0, len(all))
	for _, rec := range all {
		if rec.Timestamp >= cutoff {
			recent = append(recent, rec)
		}
	}
	return recent, nil
}

func (s *LocalStore) Clear() error {
	if _, err := s.db.Exec(`DELETE FROM sessions`); err != nil {
		return fmt.Errorf("session: clearing records: %w", err)
	}
	return nil
}
