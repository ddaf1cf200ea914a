// Package session persists editor sessions (open tabs, cursor positions,
// active tab) to a SQLite database so a workspace reopens where it left off.
package session

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"justcode/internal/log"
)

// Tab is one restored editor tab.
type Tab struct {
	Path      string
	CursorRow int
	CursorCol int
}

// Session is the persisted state for one workspace directory.
type Session struct {
	ID        string
	Workspace string
	Tabs      []Tab
	ActiveTab int
	UpdatedAt time.Time
}

// ErrNotFound is returned when no session exists for a workspace.
var ErrNotFound = errors.New("session not found")

const schema = `
CREATE TABLE IF NOT EXISTS sessions (
	id TEXT PRIMARY KEY,
	workspace TEXT NOT NULL UNIQUE,
	active_tab INTEGER NOT NULL DEFAULT 0,
	created_at INTEGER NOT NULL,
	updated_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS session_tabs (
	session_id TEXT NOT NULL REFERENCES sessions(id) ON DELETE CASCADE,
	position INTEGER NOT NULL,
	path TEXT NOT NULL,
	cursor_row INTEGER NOT NULL DEFAULT 0,
	cursor_col INTEGER NOT NULL DEFAULT 0,
	PRIMARY KEY (session_id, position)
);
`

// Store is a SQLite-backed session repository.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the session database at path. Use ":memory:" for
// an ephemeral store.
func Open(path string) (*Store, error) {
	dsn := path
	if path != ":memory:" {
		dsn = "file:" + path
	}
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening session db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("applying session schema: %w", err)
	}
	if _, err := db.Exec(`PRAGMA foreign_keys = ON`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save upserts the session for its workspace, replacing the tab list.
// A session without an ID is assigned one.
func (s *Store) Save(sess *Session) error {
	if sess.Workspace == "" {
		return fmt.Errorf("session workspace is empty")
	}
	if sess.ID == "" {
		sess.ID = uuid.NewString()
	}
	now := time.Now().Unix()

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.Exec(
		`INSERT INTO sessions (id, workspace, active_tab, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(workspace) DO UPDATE SET active_tab = excluded.active_tab, updated_at = excluded.updated_at`,
		sess.ID, sess.Workspace, sess.ActiveTab, now, now,
	)
	if err != nil {
		return fmt.Errorf("upserting session: %w", err)
	}

	// The conflict path keeps the existing row's id; read it back so the
	// tab rows attach to the right session.
	var id string
	if err := tx.QueryRow(`SELECT id FROM sessions WHERE workspace = ?`, sess.Workspace).Scan(&id); err != nil {
		return fmt.Errorf("reading session id: %w", err)
	}
	sess.ID = id

	if _, err := tx.Exec(`DELETE FROM session_tabs WHERE session_id = ?`, id); err != nil {
		return fmt.Errorf("clearing session tabs: %w", err)
	}
	for i, tab := range sess.Tabs {
		_, err := tx.Exec(
			`INSERT INTO session_tabs (session_id, position, path, cursor_row, cursor_col)
			 VALUES (?, ?, ?, ?, ?)`,
			id, i, tab.Path, tab.CursorRow, tab.CursorCol,
		)
		if err != nil {
			return fmt.Errorf("inserting session tab: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing session: %w", err)
	}

	log.Debug(log.CatSession, "session saved",
		"workspace", sess.Workspace, "tabs", len(sess.Tabs), "active", sess.ActiveTab)
	return nil
}

// Load retrieves the session for a workspace. Returns ErrNotFound when the
// workspace has no saved session.
func (s *Store) Load(workspace string) (*Session, error) {
	sess := &Session{Workspace: workspace}

	var updatedAt int64
	err := s.db.QueryRow(
		`SELECT id, active_tab, updated_at FROM sessions WHERE workspace = ?`,
		workspace,
	).Scan(&sess.ID, &sess.ActiveTab, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("loading session: %w", err)
	}
	sess.UpdatedAt = time.Unix(updatedAt, 0)

	rows, err := s.db.Query(
		`SELECT path, cursor_row, cursor_col FROM session_tabs
		 WHERE session_id = ? ORDER BY position`,
		sess.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("loading session tabs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var tab Tab
		if err := rows.Scan(&tab.Path, &tab.CursorRow, &tab.CursorCol); err != nil {
			return nil, fmt.Errorf("scanning session tab: %w", err)
		}
		sess.Tabs = append(sess.Tabs, tab)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating session tabs: %w", err)
	}

	// Clamp in case the saved active index outlived its tab.
	if sess.ActiveTab >= len(sess.Tabs) {
		sess.ActiveTab = max(len(sess.Tabs)-1, 0)
	}
	return sess, nil
}

// Delete removes the session for a workspace.
func (s *Store) Delete(workspace string) error {
	var id string
	err := s.db.QueryRow(`SELECT id FROM sessions WHERE workspace = ?`, workspace).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("finding session: %w", err)
	}

	// Delete tabs explicitly; foreign key enforcement depends on the
	// connection's pragma state.
	if _, err := s.db.Exec(`DELETE FROM session_tabs WHERE session_id = ?`, id); err != nil {
		return fmt.Errorf("deleting session tabs: %w", err)
	}
	if _, err := s.db.Exec(`DELETE FROM sessions WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}
	return nil
}
