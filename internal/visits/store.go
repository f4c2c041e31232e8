// Package visits records privacy-conscious page and section visits in sqlite.
package visits

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// ErrDisabled is returned by a nil Store.
var ErrDisabled = errors.New("visit statistics disabled")

// Visit is one recorded request.
type Visit struct {
	ID        int64     `json:"id"`
	HashedIP  string    `json:"hashed_ip"`
	UserAgent string    `json:"user_agent"`
	Path      string    `json:"path"`
	Section   string    `json:"section,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// SectionCount is the number of visits that touched a section.
type SectionCount struct {
	Section string `json:"section"`
	Visits  int64  `json:"visits"`
}

// Stats summarises the store.
type Stats struct {
	TotalVisits    int64          `json:"total_visits"`
	UniqueVisitors int64          `json:"unique_visitors"`
	VisitsToday    int64          `json:"visits_today"`
	VisitsThisWeek int64          `json:"visits_this_week"`
	Sections       []SectionCount `json:"sections"`
	Recent         []Visit        `json:"recent"`
}

// Store is a sqlite-backed visit log. A nil *Store is valid and disabled.
type Store struct {
	db        *sql.DB
	salt      string
	retention time.Duration
	now       func() time.Time
}

const schema = `
CREATE TABLE IF NOT EXISTS visits (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	hashed_ip TEXT NOT NULL,
	user_agent TEXT,
	path TEXT,
	section TEXT,
	timestamp DATETIME NOT NULL
);
CREATE INDEX IF NOT EXISTS visits_timestamp ON visits (timestamp);`

// Open opens (creating if needed) the store at path and purges visits older
// than retention. A zero retention keeps everything.
func Open(ctx context.Context, path string, retention time.Duration) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open visits db: %w", err)
	}
	// sqlite allows one writer; serialise through a single connection.
	db.SetMaxOpenConns(1)
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create visits schema: %w", err)
	}
	salt, err := newSalt()
	if err != nil {
		db.Close()
		return nil, err
	}
	s := &Store{db: db, salt: salt, retention: retention, now: time.Now}
	if _, err := s.Cleanup(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the database.
func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	return s.db.Close()
}

// HashIP hashes ip with the store's salt. The salt lives only in memory, so
// hashes are stable per process and unlinkable across restarts.
func (s *Store) HashIP(ip string) string {
	sum := sha256.Sum256([]byte(ip + s.salt))
	return hex.EncodeToString(sum[:])[:16]
}

// Record stores a visit. The raw IP is hashed before it is written.
func (s *Store) Record(ctx context.Context, ip, userAgent, path, section string) error {
	if s == nil {
		return ErrDisabled
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO visits (hashed_ip, user_agent, path, section, timestamp) VALUES (?, ?, ?, ?, ?)`,
		s.HashIP(ip), userAgent, path, nullable(section), s.now().UTC())
	if err != nil {
		return fmt.Errorf("record visit: %w", err)
	}
	return nil
}

// Cleanup deletes visits older than the retention window and returns how many
// were removed.
func (s *Store) Cleanup(ctx context.Context) (int64, error) {
	if s == nil {
		return 0, ErrDisabled
	}
	if s.retention <= 0 {
		return 0, nil
	}
	res, err := s.db.ExecContext(ctx, `DELETE FROM visits WHERE timestamp < ?`, s.now().UTC().Add(-s.retention))
	if err != nil {
		return 0, fmt.Errorf("cleanup visits: %w", err)
	}
	n, _ := res.RowsAffected()
	return n, nil
}

// Stats summarises recorded visits.
func (s *Store) Stats(ctx context.Context) (*Stats, error) {
	if s == nil {
		return nil, ErrDisabled
	}
	now := s.now().UTC()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	stats := &Stats{}

	counts := []struct {
		dst   *int64
		query string
		args  []any
	}{
		{&stats.TotalVisits, `SELECT COUNT(*) FROM visits`, nil},
		{&stats.UniqueVisitors, `SELECT COUNT(DISTINCT hashed_ip) FROM visits`, nil},
		{&stats.VisitsToday, `SELECT COUNT(*) FROM visits WHERE timestamp >= ?`, []any{dayStart}},
		{&stats.VisitsThisWeek, `SELECT COUNT(*) FROM visits WHERE timestamp >= ?`, []any{now.Add(-7 * 24 * time.Hour)}},
	}
	for _, c := range counts {
		if err := s.db.QueryRowContext(ctx, c.query, c.args...).Scan(c.dst); err != nil {
			return nil, fmt.Errorf("visit stats: %w", err)
		}
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT section, COUNT(*) FROM visits
		WHERE section IS NOT NULL
		GROUP BY section
		ORDER BY COUNT(*) DESC, section`)
	if err != nil {
		return nil, fmt.Errorf("section stats: %w", err)
	}
	for rows.Next() {
		var sc SectionCount
		if err := rows.Scan(&sc.Section, &sc.Visits); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan section stats: %w", err)
		}
		stats.Sections = append(stats.Sections, sc)
	}
	rows.Close()

	stats.Recent, err = s.Recent(ctx, 50)
	if err != nil {
		return nil, err
	}
	return stats, nil
}

// Recent returns the latest visits, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Visit, error) {
	if s == nil {
		return nil, ErrDisabled
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, hashed_ip, COALESCE(user_agent, ''), COALESCE(path, ''), COALESCE(section, ''), timestamp
		FROM visits
		ORDER BY timestamp DESC, id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("recent visits: %w", err)
	}
	defer rows.Close()

	var out []Visit
	for rows.Next() {
		var v Visit
		if err := rows.Scan(&v.ID, &v.HashedIP, &v.UserAgent, &v.Path, &v.Section, &v.Timestamp); err != nil {
			return nil, fmt.Errorf("scan visit: %w", err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func newSalt() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	return hex.EncodeToString(b), nil
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
