package history

import (
	"database/sql"
	"fmt"

	"wfind/internal/history/migrations"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db     *sql.DB
	hostID string
	clock  Clock
}

// NewSQLiteStore opens (or creates) the history database at path and
// brings its schema up to date. path can be a file path or ":memory:".
// clock may be nil, in which case the real clock is used.
func NewSQLiteStore(path, hostID string, clock Clock) (*SQLiteStore, error) {
	db, err := openConnection(path)
	if err != nil {
		return nil, err
	}

	if err := migrations.Up(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrating history database: %w", err)
	}

	if clock == nil {
		clock = RealClock{}
	}

	return &SQLiteStore{db: db, hostID: hostID, clock: clock}, nil
}

// openConnection opens and configures a SQLite connection with appropriate PRAGMAs.
func openConnection(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable foreign key constraints (SQLite default is OFF for backward compatibility)
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return db, nil
}

func (s *SQLiteStore) Begin(opID, pattern string) (*Record, error) {
	now := s.clock.Now().UTC()
	res, err := s.db.Exec(
		`INSERT INTO searches (op_id, host_id, pattern, status, started_at) VALUES (?, ?, ?, ?, ?)`,
		opID, s.hostID, pattern, StatusRunning, now,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting search record: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("reading inserted record id: %w", err)
	}
	return &Record{
		ID:        id,
		OpID:      opID,
		HostID:    s.hostID,
		Pattern:   pattern,
		Status:    StatusRunning,
		StartedAt: now,
	}, nil
}

func (s *SQLiteStore) Finish(id int64, matches int64, status string) error {
	now := s.clock.Now().UTC()
	res, err := s.db.Exec(
		`UPDATE searches SET matches = ?, status = ?, finished_at = ? WHERE id = ?`,
		matches, status, now, id,
	)
	if err != nil {
		return fmt.Errorf("finishing search record: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("no search record with id %d", id)
	}
	return nil
}

func (s *SQLiteStore) Recent(limit int) ([]*Record, error) {
	rows, err := s.db.Query(
		`SELECT id, op_id, host_id, pattern, matches, status, started_at, finished_at
		 FROM searches ORDER BY started_at DESC, id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("querying search records: %w", err)
	}
	defer rows.Close()

	var records []*Record
	for rows.Next() {
		var r Record
		if err := rows.Scan(&r.ID, &r.OpID, &r.HostID, &r.Pattern, &r.Matches,
			&r.Status, &r.StartedAt, &r.FinishedAt); err != nil {
			return nil, fmt.Errorf("scanning search record: %w", err)
		}
		records = append(records, &r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating search records: %w", err)
	}
	return records, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Compile-time check that SQLiteStore implements the Store interface
var _ Store = (*SQLiteStore)(nil)
