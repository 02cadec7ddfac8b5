package session

import (
	"database/sql"
	"embed"
	"encoding/json"
	"fmt"
	"log"
	"time"

	_ "github.com/lib/pq"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// RemoteStore mirrors session records to PostgreSQL for analytics. All writes
// are best-effort; the caller decides how to react to errors (it logs them).
type RemoteStore struct {
	conn *sql.DB
}

func ConnectRemote(dsn string) (*RemoteStore, error) {
	conn, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening remote database: %w", err)
	}
	if err := conn.Ping(); err != nil {
		return nil, fmt.Errorf("pinging remote database: %w", err)
	}
	log.Println("[Session] Connected to PostgreSQL")
	return &RemoteStore{conn: conn}, nil
}

func (r *RemoteStore) Close() error {
	return r.conn.Close()
}

func (r *RemoteStore) Ping() error {
	return r.conn.Ping()
}

func (r *RemoteStore) Migrate() error {
	entries, err := migrationsFS.ReadDir("migrations")
	if err != nil {
		return fmt.Errorf("reading migrations dir: %w", err)
	}

	for _, entry := range entries {
		content, err := migrationsFS.ReadFile("migrations/" + entry.Name())
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", entry.Name(), err)
		}
		if _, err := r.conn.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", entry.Name(), err)
		}
		log.Printf("[Session] Applied migration: %s\n", entry.Name())
	}
	return nil
}

func (r *RemoteStore) SaveSession(rec Record) error {
	colorCounts, err := json.Marshal(rec.ColorCounts)
	if err != nil {
		return fmt.Errorf("encoding color counts: %w", err)
	}
	objectCounts, err := json.Marshal(rec.ObjectCounts)
	if err != nil {
		return fmt.Errorf("encoding object counts: %w", err)
	}
	rhymes, err := json.Marshal(rec.NurseryRhymesPlayed)
	if err != nil {
		return fmt.Errorf("encoding rhymes: %w", err)
	}
	milestones, err := json.Marshal(rec.Milestones)
	if err != nil {
		return fmt.Errorf("encoding milestones: %w", err)
	}

	_, err = r.conn.Exec(`
		INSERT INTO sessions (id, timestamp, theme, duration, touches,
			color_counts, object_counts, nursery_rhymes_played,
			streaks, milestones, completed_full)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`, rec.ID, rec.Timestamp, rec.Theme, rec.Duration, rec.Touches,
		colorCounts, objectCounts, rhymes,
		rec.Streaks, milestones, rec.CompletedFull)
	if err != nil {
		return fmt.Errorf("saving session: %w", err)
	}
	return nil
}

// Sessions returns up to limit records, newest first.
func (r *RemoteStore) Sessions(limit int) ([]Record, error) {
	rows, err := r.conn.Query(`
		SELECT id, timestamp, theme, duration, touches,
			color_counts, object_counts, nursery_rhymes_played,
			streaks, milestones, completed_full
		FROM sessions ORDER BY timestamp DESC LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying sessions: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		var colorCounts, objectCounts, rhymes, milestones []byte
		if err := rows.Scan(&rec.ID, &rec.Timestamp, &rec.Theme, &rec.Duration,
			&rec.Touches, &colorCounts, &objectCounts, &rhymes,
			&rec.Streaks, &milestones, &rec.CompletedFull); err != nil {
			return nil, fmt.Errorf("scanning session: %w", err)
		}
		if err := json.Unmarshal(colorCounts, &rec.ColorCounts); err != nil {
			return nil, fmt.Errorf("decoding color counts: %w", err)
		}
		if err := json.Unmarshal(objectCounts, &rec.ObjectCounts); err != nil {
			return nil, fmt.Errorf("decoding object counts: %w", err)
		}
		if err := json.Unmarshal(rhymes, &rec.NurseryRhymesPlayed); err != nil {
			return nil, fmt.Errorf("decoding rhymes: %w", err)
		}
		if err := json.Unmarshal(milestones, &rec.Milestones); err != nil {
			return nil, fmt.Errorf("decoding milestones: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// UpsertProfile mirrors the locally stored baby profile.
func (r *RemoteStore) UpsertProfile(id, name string, ageMonths int, createdAt time.Time) error {
	_, err := r.conn.Exec(`
		INSERT INTO baby_profiles (id, name, age_months, created_at, updated_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (id) DO UPDATE SET name = $2, age_months = $3, updated_at = now()
	`, id, name, ageMonths, createdAt)
	if err != nil {
		return fmt.Errorf("upserting profile: %w", err)
	}
	return nil
}
