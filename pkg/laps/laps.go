// Package laps records completed laps in a SQLite database and summarizes
// them.
package laps

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/google/uuid"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// ErrNoLaps is returned by Stats when nothing has been recorded.
var ErrNoLaps = errors.New("no laps recorded")

// Lap is one completed lap.
type Lap struct {
	Session    string
	Number     int
	Seconds    float64
	MaxSpeed   float64
	Collisions int
	RecordedAt time.Time
}

// Stats summarizes a set of laps.
type Stats struct {
	Count  int
	Best   float64
	Mean   float64
	StdDev float64 // zero for a single lap
}

func (s Stats) String() string {
	return fmt.Sprintf("laps %d  best %.1fs  mean %.1fs  stddev %.2fs", s.Count, s.Best, s.Mean, s.StdDev)
}

// Store is a lap history database. Each Store has its own session id.
type Store struct {
	db      *sql.DB
	session string
}

// Open opens or creates the database at path and brings its schema up to
// date.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open lap database: %w", err)
	}
	if _, err := db.Exec(`PRAGMA busy_timeout = 5000`); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to configure lap database: %w", err)
	}
	if err := migrateUp(db); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db, session: uuid.NewString()}, nil
}

func migrateUp(db *sql.DB) error {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to read migrations: %w", err)
	}
	driver, err := sqlite.WithInstance(db, &sqlite.Config{})
	if err != nil {
		return fmt.Errorf("failed to create sqlite driver: %w", err)
	}
	// m is not closed: closing it would close db.
	m, err := migrate.NewWithInstance("iofs", src, "sqlite", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration up failed: %w", err)
	}
	return nil
}

// Session is the id laps recorded through this store are filed under.
func (s *Store) Session() string {
	return s.session
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record stores a lap for the current session.
func (s *Store) Record(number int, seconds, maxSpeed float64, collisions int) error {
	_, err := s.db.Exec(
		`INSERT INTO laps (session_id, lap_number, seconds, max_speed, collisions) VALUES (?, ?, ?, ?, ?)`,
		s.session, number, seconds, maxSpeed, collisions,
	)
	if err != nil {
		return fmt.Errorf("failed to record lap %d: %w", number, err)
	}
	return nil
}

// Laps lists the laps of a session in order. An empty session lists every
// lap.
func (s *Store) Laps(session string) ([]Lap, error) {
	rows, err := s.db.Query(
		`SELECT session_id, lap_number, seconds, max_speed, collisions, recorded_at
		   FROM laps
		  WHERE ? = '' OR session_id = ?
		  ORDER BY lap_id`,
		session, session,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query laps: %w", err)
	}
	defer rows.Close()

	var out []Lap
	for rows.Next() {
		var l Lap
		if err := rows.Scan(&l.Session, &l.Number, &l.Seconds, &l.MaxSpeed, &l.Collisions, &l.RecordedAt); err != nil {
			return nil, fmt.Errorf("failed to scan lap: %w", err)
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

// Stats summarizes a session, or every lap when session is empty.
func (s *Store) Stats(session string) (Stats, error) {
	laps, err := s.Laps(session)
	if err != nil {
		return Stats{}, err
	}
	if len(laps) == 0 {
		return Stats{}, ErrNoLaps
	}
	return Summarize(laps), nil
}

// Summarize computes lap statistics. It expects at least one lap.
func Summarize(laps []Lap) Stats {
	times := make([]float64, len(laps))
	for i, l := range laps {
		times[i] = l.Seconds
	}
	st := Stats{
		Count: len(times),
		Best:  floats.Min(times),
		Mean:  stat.Mean(times, nil),
	}
	if len(times) > 1 {
		st.StdDev = stat.StdDev(times, nil)
	}
	return st
}
