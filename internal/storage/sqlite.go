package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/hammamikhairi/nextday/internal/domain"
	"github.com/hammamikhairi/nextday/internal/logger"
)

// Compile-time interface check.
var _ domain.SessionStore = (*SQLiteStore)(nil)

// timeLayout is fixed width so that timestamps sort lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// SQLiteStore keeps sessions in a SQLite database so an unfinished
// registration survives a restart.
type SQLiteStore struct {
	db  *sql.DB
	log *logger.Logger
}

// NewSQLiteStore opens (or creates) the database at path and ensures the
// schema exists.
func NewSQLiteStore(path string, log *logger.Logger) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	// One writer at a time; SQLite would otherwise return SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	s := &SQLiteStore{db: db, log: log}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}
	return s, nil
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) initSchema() error {
	schema := `
    CREATE TABLE IF NOT EXISTS sessions (
        id TEXT PRIMARY KEY,
        step INTEGER NOT NULL,
        phone TEXT NOT NULL,
        code TEXT NOT NULL,
        selected_address TEXT NOT NULL,
        created_at TEXT NOT NULL,
        updated_at TEXT NOT NULL
    );

    CREATE INDEX IF NOT EXISTS idx_sessions_updated_at ON sessions(updated_at);
    `

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}

// Save inserts or replaces a session.
func (s *SQLiteStore) Save(ctx context.Context, session *domain.Session) error {
	query := `
        INSERT INTO sessions (id, step, phone, code, selected_address, created_at, updated_at)
        VALUES (?, ?, ?, ?, ?, ?, ?)
        ON CONFLICT(id) DO UPDATE SET
            step = excluded.step,
            phone = excluded.phone,
            code = excluded.code,
            selected_address = excluded.selected_address,
            updated_at = excluded.updated_at
    `
	st := session.State
	_, err := s.db.ExecContext(ctx, query,
		session.ID, int(st.Step), st.Phone, st.Code, st.SelectedAddress,
		session.CreatedAt.UTC().Format(timeLayout),
		session.UpdatedAt.UTC().Format(timeLayout))
	if err != nil {
		return fmt.Errorf("saving session %s: %w", session.ID, err)
	}

	s.log.Debug("saved session %s (step=%s)", session.ID, st.Step)
	return nil
}

// Load retrieves a session by ID.
func (s *SQLiteStore) Load(ctx context.Context, id string) (*domain.Session, error) {
	row := s.db.QueryRowContext(ctx, `
        SELECT id, step, phone, code, selected_address, created_at, updated_at
        FROM sessions WHERE id = ?
    `, id)

	sess, err := scanSession(row)
	if errors.Is(err, sql.ErrNoRows) {
		s.log.Debug("session not found: %s", id)
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("loading session %s: %w", id, err)
	}
	return sess, nil
}

// Delete removes a session by ID.
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting session %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting session %s: %w", id, err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List returns all sessions, most recently updated first.
func (s *SQLiteStore) List(ctx context.Context) ([]*domain.Session, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT id, step, phone, code, selected_address, created_at, updated_at
        FROM sessions ORDER BY updated_at DESC
    `)
	if err != nil {
		return nil, fmt.Errorf("querying sessions: %w", err)
	}
	defer rows.Close()

	var out []*domain.Session
	for rows.Next() {
		sess, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning session: %w", err)
		}
		out = append(out, sess)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSession(row scanner) (*domain.Session, error) {
	var (
		sess                 domain.Session
		step                 int
		createdAt, updatedAt string
	)
	err := row.Scan(&sess.ID, &step, &sess.State.Phone, &sess.State.Code,
		&sess.State.SelectedAddress, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}
	sess.State.Step = domain.Step(step)

	if sess.CreatedAt, err = time.Parse(timeLayout, createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if sess.UpdatedAt, err = time.Parse(timeLayout, updatedAt); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &sess, nil
}
