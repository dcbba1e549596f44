package session

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/privameter/privameter/internal/assess"
)

// SQLiteStore persists session history to a sqlite database so dashboards
// survive restarts. Queryable columns are broken out; the full assessment is
// stored as a JSON blob alongside them.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (creating if needed) the session database at path.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	schema := `
	CREATE TABLE IF NOT EXISTS session_entries (
		id            INTEGER PRIMARY KEY AUTOINCREMENT,
		session_id    TEXT NOT NULL,
		artifact_id   TEXT NOT NULL,
		artifact_name TEXT DEFAULT '',
		kind          TEXT NOT NULL,
		overall_score INTEGER NOT NULL,
		risk_level    TEXT NOT NULL,
		assessment    TEXT NOT NULL,
		recorded_at   DATETIME NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_session_entries_session ON session_entries(session_id);
	CREATE INDEX IF NOT EXISTS idx_session_entries_recorded ON session_entries(recorded_at);
	`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Record(entry Entry) error {
	blob, err := json.Marshal(entry.Assessment)
	if err != nil {
		return fmt.Errorf("encoding assessment: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT INTO session_entries (session_id, artifact_id, artifact_name, kind, overall_score, risk_level, assessment, recorded_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.SessionID,
		entry.Assessment.ArtifactID,
		entry.Assessment.ArtifactName,
		string(entry.Assessment.Kind),
		entry.Assessment.OverallScore,
		string(entry.Assessment.RiskLevel),
		string(blob),
		entry.RecordedAt,
	)
	return err
}

func (s *SQLiteStore) List(sessionID string) ([]Entry, error) {
	rows, err := s.db.Query(
		`SELECT session_id, assessment, recorded_at
		 FROM session_entries WHERE session_id = ? ORDER BY id ASC`,
		sessionID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			entry Entry
			blob  string
			at    time.Time
		)
		if err := rows.Scan(&entry.SessionID, &blob, &at); err != nil {
			return nil, err
		}
		var a assess.PrivacyAssessment
		if err := json.Unmarshal([]byte(blob), &a); err != nil {
			return nil, fmt.Errorf("decoding assessment: %w", err)
		}
		entry.Assessment = a
		entry.RecordedAt = at
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func (s *SQLiteStore) Sessions() ([]string, error) {
	rows, err := s.db.Query(`SELECT DISTINCT session_id FROM session_entries ORDER BY session_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
