// Package analytics records privacy-conscious page views: client IPs are
// stored only as salted, truncated hashes and old rows are purged.
package analytics

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Visit is one tracked page view.
type Visit struct {
	ID        int64     `json:"id"`
	HashedIP  string    `json:"hashed_ip"`
	UserAgent string    `json:"user_agent"`
	Path      string    `json:"path"`
	Section   string    `json:"section"`
	Theme     string    `json:"theme"`
	Timestamp time.Time `json:"timestamp"`
}

type SectionCount struct {
	Section string `json:"section"`
	Views   int64  `json:"views"`
}

type Stats struct {
	TotalVisits    int64          `json:"total_visits"`
	UniqueVisitors int64          `json:"unique_visitors"`
	VisitsToday    int64          `json:"visits_today"`
	VisitsThisWeek int64          `json:"visits_this_week"`
	SectionViews   []SectionCount `json:"section_views"`
	RecentVisits   []Visit        `json:"recent_visits"`
}

var schema = []string{`
CREATE TABLE IF NOT EXISTS visits (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	hashed_ip TEXT NOT NULL,
	user_agent TEXT,
	path TEXT,
	section TEXT,
	theme TEXT,
	ts INTEGER NOT NULL
)`,
	`CREATE INDEX IF NOT EXISTS visits_ts ON visits (ts)`,
}

const recentLimit = 50

type Store struct {
	db   *sql.DB
	salt string
	now  func() time.Time
}

// Open opens (and if needed creates) the visits database at dsn.
func Open(ctx context.Context, dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open analytics db: %w", err)
	}
	// One connection keeps in-memory databases alive and serialises writes.
	db.SetMaxOpenConns(1)

	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to create visits table: %w", err)
		}
	}

	salt, err := randomHex(32)
	if err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db, salt: salt, now: time.Now}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// HashIP hashes ip with the per-process salt. The result is stable for the
// lifetime of the process only.
func (s *Store) HashIP(ip string) string {
	sum := sha256.Sum256([]byte(ip + s.salt))
	return hex.EncodeToString(sum[:])[:16]
}

// Record stores a visit from the raw client IP ip. The hash and timestamp
// are derived here; those fields of v are ignored.
func (s *Store) Record(ctx context.Context, ip string, v Visit) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO visits (hashed_ip, user_agent, path, section, theme, ts)
		VALUES (?, ?, ?, ?, ?, ?)
	`, s.HashIP(ip), v.UserAgent, v.Path, v.Section, v.Theme, s.now().Unix())
	if err != nil {
		return fmt.Errorf("error recording visit: %w", err)
	}
	return nil
}

// Stats summarises the stored visits.
func (s *Store) Stats(ctx context.Context) (*Stats, error) {
	stats := &Stats{}
	now := s.now()
	y, m, d := now.Date()
	startOfDay := time.Date(y, m, d, 0, 0, 0, 0, now.Location())

	counts := []struct {
		dst   *int64
		query string
		args  []any
	}{
		{&stats.TotalVisits, "SELECT COUNT(*) FROM visits", nil},
		{&stats.UniqueVisitors, "SELECT COUNT(DISTINCT hashed_ip) FROM visits", nil},
		{&stats.VisitsToday, "SELECT COUNT(*) FROM visits WHERE ts >= ?", []any{startOfDay.Unix()}},
		{&stats.VisitsThisWeek, "SELECT COUNT(*) FROM visits WHERE ts >= ?", []any{now.AddDate(0, 0, -7).Unix()}},
	}
	for _, c := range counts {
		if err := s.db.QueryRowContext(ctx, c.query, c.args...).Scan(c.dst); err != nil {
			return nil, fmt.Errorf("query stats: %w", err)
		}
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT section, COUNT(*) AS views
		FROM visits
		WHERE section <> ''
		GROUP BY section
		ORDER BY views DESC, section
	`)
	if err != nil {
		return nil, fmt.Errorf("query section views: %w", err)
	}
	for rows.Next() {
		var sc SectionCount
		if err := rows.Scan(&sc.Section, &sc.Views); err != nil {
			rows.Close()
			return nil, err
		}
		stats.SectionViews = append(stats.SectionViews, sc)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	stats.RecentVisits, err = s.Recent(ctx, recentLimit)
	if err != nil {
		return nil, err
	}
	return stats, nil
}

// Recent returns up to limit visits, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Visit, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, hashed_ip, user_agent, path, section, theme, ts
		FROM visits
		ORDER BY ts DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query recent visits: %w", err)
	}
	defer rows.Close()

	var visits []Visit
	for rows.Next() {
		var v Visit
		var ts int64
		if err := rows.Scan(&v.ID, &v.HashedIP, &v.UserAgent, &v.Path, &v.Section, &v.Theme, &ts); err != nil {
			return nil, err
		}
		v.Timestamp = time.Unix(ts, 0)
		visits = append(visits, v)
	}
	return visits, rows.Err()
}

// Cleanup deletes visits older than maxAge and returns how many went.
func (s *Store) Cleanup(ctx context.Context, maxAge time.Duration) (int64, error) {
	cutoff := s.now().Add(-maxAge).Unix()
	res, err := s.db.ExecContext(ctx, "DELETE FROM visits WHERE ts < ?", cutoff)
	if err != nil {
		return 0, fmt.Errorf("error cleaning up old visits: %w", err)
	}
	return res.RowsAffected()
}

func randomHex(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate random bytes: %w", err)
	}
	return hex.EncodeToString(b), nil
}
