// Package history records search operations run through the CLI so
// that past enumerations can be reviewed later.
package history

import (
	"database/sql"
	"time"
)

// Statuses recorded for a finished search operation.
const (
	StatusRunning   = "running"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// Record is one logged search operation.
type Record struct {
	ID         int64
	OpID       string
	HostID     string
	Pattern    string
	Matches    int64
	Status     string
	StartedAt  time.Time
	FinishedAt sql.NullTime
}

// Store persists search records.
type Store interface {
	// Begin inserts a running record for the given operation and
	// pattern and returns it with its assigned ID.
	Begin(opID, pattern string) (*Record, error)

	// Finish marks a record completed or failed with its match count.
	Finish(id int64, matches int64, status string) error

	// Recent returns the most recent records, newest first, up to limit.
	Recent(limit int) ([]*Record, error)

	Close() error
}
