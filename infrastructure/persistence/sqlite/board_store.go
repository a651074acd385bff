// Package sqlite persists board snapshots in a local SQLite file, one row
// per client slot. It backs the traditional server entrypoint.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"colorboard/domain/core/aggregates"
	pkgerrors "colorboard/pkg/errors"
	"colorboard/pkg/utils"
)

const schema = `
CREATE TABLE IF NOT EXISTS boards (
	client_id  TEXT PRIMARY KEY,
	snapshot   TEXT NOT NULL,
	updated_at TEXT NOT NULL
);`

// BoardStore implements ports.BoardStore on SQLite
type BoardStore struct {
	db *sqlx.DB
}

type boardRow struct {
	ClientID  string `db:"client_id"`
	Snapshot  string `db:"snapshot"`
	UpdatedAt string `db:"updated_at"`
}

// NewBoardStore opens (creating if needed) the SQLite database at path
func NewBoardStore(path string) (*BoardStore, error) {
	db, err := sqlx.Connect("sqlite3", path)
	if err != nil {
		return nil, pkgerrors.NewStorageError("open sqlite database", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, pkgerrors.NewStorageError("create boards table", err)
	}
	return &BoardStore{db: db}, nil
}

// Close releases the database handle
func (s *BoardStore) Close() error {
	return s.db.Close()
}

// Load returns the stored snapshot for the client, (nil, nil) when absent
func (s *BoardStore) Load(ctx context.Context, clientID string) (*aggregates.Snapshot, error) {
	var row boardRow
	err := s.db.GetContext(ctx, &row,
		`SELECT client_id, snapshot, updated_at FROM boards WHERE client_id = ?`, clientID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, pkgerrors.NewStorageError("load board", err)
	}

	var snapshot aggregates.Snapshot
	if err := json.Unmarshal([]byte(row.Snapshot), &snapshot); err != nil {
		return nil, pkgerrors.NewStorageError("decode board snapshot", err)
	}
	return &snapshot, nil
}

// Save overwrites the client's stored snapshot
func (s *BoardStore) Save(ctx context.Context, clientID string, snapshot aggregates.Snapshot) error {
	blob, err := json.Marshal(snapshot)
	if err != nil {
		return pkgerrors.NewStorageError("encode board snapshot", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO boards (client_id, snapshot, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(client_id) DO UPDATE SET snapshot = excluded.snapshot, updated_at = excluded.updated_at`,
		clientID, string(blob), utils.NowRFC3339())
	if err != nil {
		return pkgerrors.NewStorageError("save board", err)
	}
	return nil
}

// Delete removes the client's stored snapshot
func (s *BoardStore) Delete(ctx context.Context, clientID string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM boards WHERE client_id = ?`, clientID)
	if err != nil {
		return pkgerrors.NewStorageError("delete board", err)
	}
	return nil
}
