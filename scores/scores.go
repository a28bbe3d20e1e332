// Package scores keeps a local scoreboard of finished sessions in SQLite.
package scores

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/plus3/chomp/game"
	_ "modernc.org/sqlite"
)

// Entry is one finished session.
type Entry struct {
	ID        int64
	Player    string
	Level     string
	Score     int
	Total     int
	Outcome   string
	Frames    uint64
	CreatedAt time.Time
}

// FromSession builds an entry for a session that has just ended.
func FromSession(player string, s *game.Session, frames uint64) Entry {
	return Entry{
		Player:  player,
		Level:   s.Level.Name,
		Score:   s.Score,
		Total:   s.Total(),
		Outcome: s.State.String(),
		Frames:  frames,
	}
}

// DB wraps the SQLite connection
type DB struct {
	conn *sql.DB
	now  func() time.Time
}

// Open opens (or creates) the scoreboard at path.
func Open(path string) (*DB, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, err
	}

	db := &DB{conn: conn, now: time.Now}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, err
	}
	return db, nil
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		player TEXT NOT NULL DEFAULT '',
		level TEXT NOT NULL,
		score INTEGER NOT NULL,
		total INTEGER NOT NULL,
		outcome TEXT NOT NULL,
		frames INTEGER NOT NULL,
		created_at INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_runs_level_score ON runs(level, score DESC);
	`
	if _, err := db.conn.Exec(schema); err != nil {
		return fmt.Errorf("migrate scoreboard: %w", err)
	}
	return nil
}

// Record stores e and returns its id.
func (db *DB) Record(e Entry) (int64, error) {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = db.now()
	}
	res, err := db.conn.Exec(
		"INSERT INTO runs (player, level, score, total, outcome, frames, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
		e.Player, e.Level, e.Score, e.Total, e.Outcome, int64(e.Frames), e.CreatedAt.UnixMilli(),
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// Top returns the n best runs on a level: highest score first, then the
// fastest, then the oldest.
func (db *DB) Top(level string, n int) ([]Entry, error) {
	rows, err := db.conn.Query(
		`SELECT id, player, level, score, total, outcome, frames, created_at
		FROM runs WHERE level = ?
		ORDER BY score DESC, frames ASC, id ASC
		LIMIT ?`,
		level, n,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var (
			e       Entry
			frames  int64
			created int64
		)
		if err := rows.Scan(&e.ID, &e.Player, &e.Level, &e.Score, &e.Total, &e.Outcome, &frames, &created); err != nil {
			return nil, err
		}
		e.Frames = uint64(frames)
		e.CreatedAt = time.UnixMilli(created)
		out = append(out, e)
	}
	return out, rows.Err()
}

// Best returns the top run on a level, or nil if there is none.
func (db *DB) Best(level string) (*Entry, error) {
	top, err := db.Top(level, 1)
	if err != nil || len(top) == 0 {
		return nil, err
	}
	return &top[0], nil
}

// Count returns the number of recorded runs per outcome on a level.
func (db *DB) Count(level string) (map[string]int, error) {
	rows, err := db.conn.Query("SELECT outcome, COUNT(*) FROM runs WHERE level = ? GROUP BY outcome", level)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]int)
	for rows.Next() {
		var (
			outcome string
			n       int
		)
		if err := rows.Scan(&outcome, &n); err != nil {
			return nil, err
		}
		out[outcome] = n
	}
	return out, rows.Err()
}
